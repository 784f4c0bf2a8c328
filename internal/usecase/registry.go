package usecase

import (
	"context"
	"fmt"
	"time"

	"glassfinder/internal/data/entity"
	"glassfinder/internal/data/repository"
	"glassfinder/internal/dto/response"
	"glassfinder/pkg/geocoder"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// profileAccessor is the per-kind storage facade the registry resolves
// link types to. Every method takes the repository explicitly so the
// same accessor works inside and outside a transaction.
type profileAccessor interface {
	create(ctx context.Context, repo *repository.Repository, userID uuid.UUID, attrs map[string]any) (any, error)
	fetch(ctx context.Context, repo *repository.Repository, userID uuid.UUID) (any, bool, error)
	update(ctx context.Context, repo *repository.Repository, userID uuid.UUID, values map[string]any) (any, error)
	setImage(ctx context.Context, repo *repository.Repository, userID uuid.UUID, url string) (any, error)
	removeByUser(ctx context.Context, repo *repository.Repository, userID uuid.UUID) error
}

// profileRegistry maps the closed LinkType enum onto accessors. The
// switch is exhaustive: anything outside the three kinds is rejected,
// never silently aliased to another kind.
type profileRegistry struct {
	geo geocoder.Geocoder
	log *zap.Logger
}

func newProfileRegistry(geo geocoder.Geocoder, log *zap.Logger) *profileRegistry {
	return &profileRegistry{
		geo: geo,
		log: log,
	}
}

func (pr *profileRegistry) resolve(linkType entity.LinkType) (profileAccessor, error) {
	switch linkType {
	case entity.LinkTypeShop:
		return &shopAccessor{registry: pr}, nil
	case entity.LinkTypeArtist:
		return &artistAccessor{}, nil
	case entity.LinkTypeBrand:
		return &brandAccessor{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLinkType, linkType)
	}
}

// ==================== ATTRIBUTE HELPERS ====================
// Profile attributes arrive as decoded JSON. Unknown keys are ignored;
// recognized keys are pulled out with these helpers.

func stringAttr(attrs map[string]any, key string) (string, bool) {
	value, ok := attrs[key].(string)
	return value, ok
}

func optionalStringAttr(attrs map[string]any, key string) *string {
	if value, ok := attrs[key].(string); ok && value != "" {
		return &value
	}
	return nil
}

func floatAttr(attrs map[string]any, key string) (float64, bool) {
	value, ok := attrs[key].(float64)
	return value, ok
}

func requiredStringAttr(attrs map[string]any, key string) (string, error) {
	value, ok := stringAttr(attrs, key)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s is required", ErrValidation, key)
	}
	return value, nil
}

// ==================== SHOP ====================

type shopAccessor struct {
	registry *profileRegistry
}

func (a *shopAccessor) create(ctx context.Context, repo *repository.Repository, userID uuid.UUID, attrs map[string]any) (any, error) {
	name, err := requiredStringAttr(attrs, "name")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	shop := &entity.Shop{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userID,
		Name:        name,
		Description: optionalStringAttr(attrs, "description"),
		Image:       optionalStringAttr(attrs, "image"),
	}
	shop.Email, _ = stringAttr(attrs, "email")
	shop.Phone, _ = stringAttr(attrs, "phone")
	shop.Street, _ = stringAttr(attrs, "street")
	shop.City, _ = stringAttr(attrs, "city")
	shop.State, _ = stringAttr(attrs, "state")
	shop.Zip, _ = stringAttr(attrs, "zip")

	if lat, ok := floatAttr(attrs, "lat"); ok {
		shop.Lat = &lat
	}
	if lng, ok := floatAttr(attrs, "lng"); ok {
		shop.Lng = &lng
	}

	a.geocodeIfMissing(ctx, shop)

	if err := repo.Shop.Create(ctx, shop); err != nil {
		return nil, err
	}

	return response.NewShopResponse(shop), nil
}

func (a *shopAccessor) fetch(ctx context.Context, repo *repository.Repository, userID uuid.UUID) (any, bool, error) {
	shop, err := repo.Shop.FindByUserID(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if shop == nil {
		return nil, false, nil
	}
	return response.NewShopResponse(shop), true, nil
}

func (a *shopAccessor) update(ctx context.Context, repo *repository.Repository, userID uuid.UUID, values map[string]any) (any, error) {
	shop, err := repo.Shop.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, fmt.Errorf("shop profile: %w", ErrNotFound)
	}

	addressChanged := false
	if name, ok := stringAttr(values, "name"); ok {
		shop.Name = name
	}
	if description, ok := stringAttr(values, "description"); ok {
		shop.Description = &description
	}
	if email, ok := stringAttr(values, "email"); ok {
		shop.Email = email
	}
	if phone, ok := stringAttr(values, "phone"); ok {
		shop.Phone = phone
	}
	if street, ok := stringAttr(values, "street"); ok {
		shop.Street = street
		addressChanged = true
	}
	if city, ok := stringAttr(values, "city"); ok {
		shop.City = city
		addressChanged = true
	}
	if state, ok := stringAttr(values, "state"); ok {
		shop.State = state
		addressChanged = true
	}
	if zip, ok := stringAttr(values, "zip"); ok {
		shop.Zip = zip
		addressChanged = true
	}

	if addressChanged {
		shop.Lat = nil
		shop.Lng = nil
	}
	a.geocodeIfMissing(ctx, shop)

	shop.UpdatedAt = time.Now()
	if err := repo.Shop.Update(ctx, shop); err != nil {
		return nil, err
	}

	return response.NewShopResponse(shop), nil
}

func (a *shopAccessor) setImage(ctx context.Context, repo *repository.Repository, userID uuid.UUID, url string) (any, error) {
	shop, err := repo.Shop.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, fmt.Errorf("shop profile: %w", ErrNotFound)
	}

	shop.Image = &url
	shop.UpdatedAt = time.Now()
	if err := repo.Shop.Update(ctx, shop); err != nil {
		return nil, err
	}

	return response.NewShopResponse(shop), nil
}

func (a *shopAccessor) removeByUser(ctx context.Context, repo *repository.Repository, userID uuid.UUID) error {
	return repo.Shop.DeleteByUserID(ctx, userID)
}

// geocodeIfMissing fills coordinates from the address. Geocoder
// failure leaves them empty; the shop just has no map pin yet.
func (a *shopAccessor) geocodeIfMissing(ctx context.Context, shop *entity.Shop) {
	if a.registry == nil || a.registry.geo == nil {
		return
	}
	if shop.Lat != nil && shop.Lng != nil {
		return
	}
	if shop.Street == "" || shop.City == "" {
		return
	}

	coords, err := a.registry.geo.Geocode(ctx, shop.FullAddress())
	if err != nil {
		a.registry.log.Warn("Failed to geocode shop address",
			zap.Error(err),
			zap.String("shop_id", shop.ID.String()),
		)
		return
	}
	if coords == nil {
		return
	}

	shop.Lat = &coords.Lat
	shop.Lng = &coords.Lng
}

// ==================== ARTIST ====================

type artistAccessor struct{}

func (a *artistAccessor) create(ctx context.Context, repo *repository.Repository, userID uuid.UUID, attrs map[string]any) (any, error) {
	name, err := requiredStringAttr(attrs, "name")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	artist := &entity.Artist{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: userID,
		Name:   name,
		Image:  optionalStringAttr(attrs, "image"),
	}
	artist.Description, _ = stringAttr(attrs, "description")
	artist.From, _ = stringAttr(attrs, "from")

	if err := repo.Artist.Create(ctx, artist); err != nil {
		return nil, err
	}

	return response.NewArtistResponse(artist), nil
}

func (a *artistAccessor) fetch(ctx context.Context, repo *repository.Repository, userID uuid.UUID) (any, bool, error) {
	artist, err := repo.Artist.FindByUserID(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if artist == nil {
		return nil, false, nil
	}
	return response.NewArtistResponse(artist), true, nil
}

func (a *artistAccessor) update(ctx context.Context, repo *repository.Repository, userID uuid.UUID, values map[string]any) (any, error) {
	artist, err := repo.Artist.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, fmt.Errorf("artist profile: %w", ErrNotFound)
	}

	if name, ok := stringAttr(values, "name"); ok {
		artist.Name = name
	}
	if description, ok := stringAttr(values, "description"); ok {
		artist.Description = description
	}
	if from, ok := stringAttr(values, "from"); ok {
		artist.From = from
	}

	artist.UpdatedAt = time.Now()
	if err := repo.Artist.Update(ctx, artist); err != nil {
		return nil, err
	}

	return response.NewArtistResponse(artist), nil
}

func (a *artistAccessor) setImage(ctx context.Context, repo *repository.Repository, userID uuid.UUID, url string) (any, error) {
	artist, err := repo.Artist.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, fmt.Errorf("artist profile: %w", ErrNotFound)
	}

	artist.Image = &url
	artist.UpdatedAt = time.Now()
	if err := repo.Artist.Update(ctx, artist); err != nil {
		return nil, err
	}

	return response.NewArtistResponse(artist), nil
}

func (a *artistAccessor) removeByUser(ctx context.Context, repo *repository.Repository, userID uuid.UUID) error {
	return repo.Artist.DeleteByUserID(ctx, userID)
}

// ==================== BRAND ====================

type brandAccessor struct{}

func (a *brandAccessor) create(ctx context.Context, repo *repository.Repository, userID uuid.UUID, attrs map[string]any) (any, error) {
	name, err := requiredStringAttr(attrs, "name")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	brand := &entity.Brand{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: userID,
		Name:   name,
		Site:   optionalStringAttr(attrs, "site"),
	}
	brand.Description, _ = stringAttr(attrs, "description")
	brand.From, _ = stringAttr(attrs, "from")

	if err := repo.Brand.Create(ctx, brand); err != nil {
		return nil, err
	}

	return response.NewBrandResponse(brand), nil
}

func (a *brandAccessor) fetch(ctx context.Context, repo *repository.Repository, userID uuid.UUID) (any, bool, error) {
	brand, err := repo.Brand.FindByUserID(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if brand == nil {
		return nil, false, nil
	}
	return response.NewBrandResponse(brand), true, nil
}

func (a *brandAccessor) update(ctx context.Context, repo *repository.Repository, userID uuid.UUID, values map[string]any) (any, error) {
	brand, err := repo.Brand.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, fmt.Errorf("brand profile: %w", ErrNotFound)
	}

	if name, ok := stringAttr(values, "name"); ok {
		brand.Name = name
	}
	if description, ok := stringAttr(values, "description"); ok {
		brand.Description = description
	}
	if from, ok := stringAttr(values, "from"); ok {
		brand.From = from
	}
	if site, ok := stringAttr(values, "site"); ok {
		brand.Site = &site
	}

	brand.UpdatedAt = time.Now()
	if err := repo.Brand.Update(ctx, brand); err != nil {
		return nil, err
	}

	return response.NewBrandResponse(brand), nil
}

func (a *brandAccessor) setImage(ctx context.Context, repo *repository.Repository, userID uuid.UUID, url string) (any, error) {
	// Brand profiles carry a site link, not an image.
	return nil, fmt.Errorf("%w: a brand profile has no image", ErrValidation)
}

func (a *brandAccessor) removeByUser(ctx context.Context, repo *repository.Repository, userID uuid.UUID) error {
	return repo.Brand.DeleteByUserID(ctx, userID)
}
