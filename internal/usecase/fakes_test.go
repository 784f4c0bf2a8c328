package usecase

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"glassfinder/internal/data/entity"
	"glassfinder/internal/data/repository"
	"glassfinder/internal/dto/request"
	"glassfinder/pkg/geocoder"
	"glassfinder/pkg/mailer"
	"glassfinder/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// In-memory stand-ins for the pgx-backed stores. Assembled through
// repository.WithStores, so WithTx runs callbacks directly and the
// workflow code is exercised unchanged.

const testPerPage = 8

// ==================== USERS ====================

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok || user.DeletedAt != nil {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.DeletedAt == nil && strings.EqualFold(user.Email, email) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ReadPage(_ context.Context, page, perPage int) (*repository.Page[entity.User], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return paginate(f.live(), page, perPage), nil
}

func (f *fakeUserRepo) ReadSingle(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeUserRepo) ReadAll(_ context.Context) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live(), nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return errors.New("user not found")
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok || user.DeletedAt != nil {
		return errors.New("user not found")
	}
	now := time.Now()
	user.DeletedAt = &now
	return nil
}

func (f *fakeUserRepo) live() []*entity.User {
	items := []*entity.User{}
	for _, user := range f.users {
		if user.DeletedAt == nil {
			clone := *user
			items = append(items, &clone)
		}
	}
	sortByCreated(items, func(u *entity.User) (time.Time, uuid.UUID) { return u.CreatedAt, u.ID })
	return items
}

// ==================== SHOPS ====================

type fakeShopRepo struct {
	mu         sync.Mutex
	shops      map[uuid.UUID]*entity.Shop
	failCreate bool
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{shops: map[uuid.UUID]*entity.Shop{}}
}

func (f *fakeShopRepo) Create(_ context.Context, shop *entity.Shop) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return errors.New("insert failed")
	}
	clone := *shop
	f.shops[shop.ID] = &clone
	return nil
}

func (f *fakeShopRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Shop, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, shop := range f.shops {
		if shop.DeletedAt == nil && shop.UserID == userID {
			clone := *shop
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeShopRepo) ReadPage(_ context.Context, page, perPage int, filters ...repository.Filter) (*repository.Page[entity.Shop], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return paginate(f.live(filters), page, perPage), nil
}

func (f *fakeShopRepo) ReadSingle(_ context.Context, id uuid.UUID) (*entity.Shop, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	shop, ok := f.shops[id]
	if !ok || shop.DeletedAt != nil {
		return nil, nil
	}
	clone := *shop
	return &clone, nil
}

func (f *fakeShopRepo) ReadAll(_ context.Context, filters ...repository.Filter) ([]*entity.Shop, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live(filters), nil
}

func (f *fakeShopRepo) Update(_ context.Context, shop *entity.Shop) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.shops[shop.ID]; !ok {
		return errors.New("shop not found")
	}
	clone := *shop
	f.shops[shop.ID] = &clone
	return nil
}

func (f *fakeShopRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	shop, ok := f.shops[id]
	if !ok || shop.DeletedAt != nil {
		return errors.New("shop not found")
	}
	now := time.Now()
	shop.DeletedAt = &now
	return nil
}

func (f *fakeShopRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, shop := range f.shops {
		if shop.DeletedAt == nil && shop.UserID == userID {
			now := time.Now()
			shop.DeletedAt = &now
			return nil
		}
	}
	return errors.New("shop not found")
}

func (f *fakeShopRepo) MapMarkers(_ context.Context) ([]*repository.MapMarker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	markers := []*repository.MapMarker{}
	for _, shop := range f.live(nil) {
		if shop.Lat != nil && shop.Lng != nil {
			markers = append(markers, &repository.MapMarker{
				ID:   shop.ID,
				Name: shop.Name,
				Lat:  *shop.Lat,
				Lng:  *shop.Lng,
			})
		}
	}
	return markers, nil
}

func (f *fakeShopRepo) live(filters []repository.Filter) []*entity.Shop {
	items := []*entity.Shop{}
	for _, shop := range f.shops {
		if shop.DeletedAt != nil {
			continue
		}
		if !matchShop(shop, filters) {
			continue
		}
		clone := *shop
		items = append(items, &clone)
	}
	sortByCreated(items, func(s *entity.Shop) (time.Time, uuid.UUID) { return s.CreatedAt, s.ID })
	return items
}

func matchShop(shop *entity.Shop, filters []repository.Filter) bool {
	for _, filter := range filters {
		if filter.Column == "user_id" && shop.UserID != filter.Value.(uuid.UUID) {
			return false
		}
	}
	return true
}

// ==================== ARTISTS ====================

type fakeArtistRepo struct {
	mu      sync.Mutex
	artists map[uuid.UUID]*entity.Artist
}

func newFakeArtistRepo() *fakeArtistRepo {
	return &fakeArtistRepo{artists: map[uuid.UUID]*entity.Artist{}}
}

func (f *fakeArtistRepo) Create(_ context.Context, artist *entity.Artist) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *artist
	f.artists[artist.ID] = &clone
	return nil
}

func (f *fakeArtistRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Artist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, artist := range f.artists {
		if artist.DeletedAt == nil && artist.UserID == userID {
			clone := *artist
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeArtistRepo) ReadPage(_ context.Context, page, perPage int, _ ...repository.Filter) (*repository.Page[entity.Artist], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return paginate(f.live(), page, perPage), nil
}

func (f *fakeArtistRepo) ReadSingle(_ context.Context, id uuid.UUID) (*entity.Artist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	artist, ok := f.artists[id]
	if !ok || artist.DeletedAt != nil {
		return nil, nil
	}
	clone := *artist
	return &clone, nil
}

func (f *fakeArtistRepo) ReadAll(_ context.Context, _ ...repository.Filter) ([]*entity.Artist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live(), nil
}

func (f *fakeArtistRepo) Update(_ context.Context, artist *entity.Artist) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.artists[artist.ID]; !ok {
		return errors.New("artist not found")
	}
	clone := *artist
	f.artists[artist.ID] = &clone
	return nil
}

func (f *fakeArtistRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	artist, ok := f.artists[id]
	if !ok || artist.DeletedAt != nil {
		return errors.New("artist not found")
	}
	now := time.Now()
	artist.DeletedAt = &now
	return nil
}

func (f *fakeArtistRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, artist := range f.artists {
		if artist.DeletedAt == nil && artist.UserID == userID {
			now := time.Now()
			artist.DeletedAt = &now
			return nil
		}
	}
	return errors.New("artist not found")
}

func (f *fakeArtistRepo) live() []*entity.Artist {
	items := []*entity.Artist{}
	for _, artist := range f.artists {
		if artist.DeletedAt == nil {
			clone := *artist
			items = append(items, &clone)
		}
	}
	sortByCreated(items, func(a *entity.Artist) (time.Time, uuid.UUID) { return a.CreatedAt, a.ID })
	return items
}

// ==================== BRANDS ====================

type fakeBrandRepo struct {
	mu     sync.Mutex
	brands map[uuid.UUID]*entity.Brand
}

func newFakeBrandRepo() *fakeBrandRepo {
	return &fakeBrandRepo{brands: map[uuid.UUID]*entity.Brand{}}
}

func (f *fakeBrandRepo) Create(_ context.Context, brand *entity.Brand) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *brand
	f.brands[brand.ID] = &clone
	return nil
}

func (f *fakeBrandRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Brand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, brand := range f.brands {
		if brand.DeletedAt == nil && brand.UserID == userID {
			clone := *brand
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeBrandRepo) ReadPage(_ context.Context, page, perPage int, _ ...repository.Filter) (*repository.Page[entity.Brand], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return paginate(f.live(), page, perPage), nil
}

func (f *fakeBrandRepo) ReadSingle(_ context.Context, id uuid.UUID) (*entity.Brand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	brand, ok := f.brands[id]
	if !ok || brand.DeletedAt != nil {
		return nil, nil
	}
	clone := *brand
	return &clone, nil
}

func (f *fakeBrandRepo) ReadAll(_ context.Context, _ ...repository.Filter) ([]*entity.Brand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live(), nil
}

func (f *fakeBrandRepo) Update(_ context.Context, brand *entity.Brand) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.brands[brand.ID]; !ok {
		return errors.New("brand not found")
	}
	clone := *brand
	f.brands[brand.ID] = &clone
	return nil
}

func (f *fakeBrandRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	brand, ok := f.brands[id]
	if !ok || brand.DeletedAt != nil {
		return errors.New("brand not found")
	}
	now := time.Now()
	brand.DeletedAt = &now
	return nil
}

func (f *fakeBrandRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, brand := range f.brands {
		if brand.DeletedAt == nil && brand.UserID == userID {
			now := time.Now()
			brand.DeletedAt = &now
			return nil
		}
	}
	return errors.New("brand not found")
}

func (f *fakeBrandRepo) live() []*entity.Brand {
	items := []*entity.Brand{}
	for _, brand := range f.brands {
		if brand.DeletedAt == nil {
			clone := *brand
			items = append(items, &clone)
		}
	}
	sortByCreated(items, func(b *entity.Brand) (time.Time, uuid.UUID) { return b.CreatedAt, b.ID })
	return items
}

// ==================== PIECES ====================

type fakePieceRepo struct {
	mu     sync.Mutex
	pieces map[uuid.UUID]*entity.Piece
}

func newFakePieceRepo() *fakePieceRepo {
	return &fakePieceRepo{pieces: map[uuid.UUID]*entity.Piece{}}
}

func (f *fakePieceRepo) Create(_ context.Context, piece *entity.Piece) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *piece
	f.pieces[piece.ID] = &clone
	return nil
}

func (f *fakePieceRepo) ReadPage(_ context.Context, page, perPage int, filters ...repository.Filter) (*repository.Page[entity.Piece], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return paginate(f.live(filters), page, perPage), nil
}

func (f *fakePieceRepo) ReadSingle(_ context.Context, id uuid.UUID) (*entity.Piece, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	piece, ok := f.pieces[id]
	if !ok || piece.DeletedAt != nil {
		return nil, nil
	}
	clone := *piece
	return &clone, nil
}

func (f *fakePieceRepo) ReadAll(_ context.Context, filters ...repository.Filter) ([]*entity.Piece, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live(filters), nil
}

func (f *fakePieceRepo) Count(_ context.Context, filters ...repository.Filter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.live(filters))), nil
}

func (f *fakePieceRepo) Update(_ context.Context, piece *entity.Piece) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.pieces[piece.ID]; !ok {
		return errors.New("piece not found")
	}
	clone := *piece
	f.pieces[piece.ID] = &clone
	return nil
}

func (f *fakePieceRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	piece, ok := f.pieces[id]
	if !ok || piece.DeletedAt != nil {
		return errors.New("piece not found")
	}
	now := time.Now()
	piece.DeletedAt = &now
	return nil
}

func (f *fakePieceRepo) live(filters []repository.Filter) []*entity.Piece {
	items := []*entity.Piece{}
	for _, piece := range f.pieces {
		if piece.DeletedAt != nil {
			continue
		}
		if !matchPiece(piece, filters) {
			continue
		}
		clone := *piece
		items = append(items, &clone)
	}
	sortByCreated(items, func(p *entity.Piece) (time.Time, uuid.UUID) { return p.CreatedAt, p.ID })
	return items
}

func matchPiece(piece *entity.Piece, filters []repository.Filter) bool {
	for _, filter := range filters {
		id := filter.Value.(uuid.UUID)
		switch filter.Column {
		case "user_id":
			if piece.UserID != id {
				return false
			}
		case "artist_id":
			if piece.ArtistID == nil || *piece.ArtistID != id {
				return false
			}
		case "brand_id":
			if piece.BrandID == nil || *piece.BrandID != id {
				return false
			}
		}
	}
	return true
}

// ==================== LINK REQUESTS ====================

type fakeLinkRequestRepo struct {
	mu       sync.Mutex
	requests map[uuid.UUID]*entity.LinkRequest
}

func newFakeLinkRequestRepo() *fakeLinkRequestRepo {
	return &fakeLinkRequestRepo{requests: map[uuid.UUID]*entity.LinkRequest{}}
}

func (f *fakeLinkRequestRepo) Create(_ context.Context, request *entity.LinkRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *request
	f.requests[request.ID] = &clone
	return nil
}

func (f *fakeLinkRequestRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.LinkRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return nil, nil
	}
	clone := *request
	return &clone, nil
}

func (f *fakeLinkRequestRepo) FindPendingByUserID(_ context.Context, userID uuid.UUID) (*entity.LinkRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, request := range f.requests {
		if request.UserID == userID && request.Status == entity.LinkRequestPending {
			clone := *request
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeLinkRequestRepo) ReadPage(_ context.Context, page, perPage int, filters ...repository.Filter) (*repository.Page[entity.LinkRequest], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := []*entity.LinkRequest{}
	for _, request := range f.requests {
		if !matchLinkRequest(request, filters) {
			continue
		}
		clone := *request
		items = append(items, &clone)
	}
	sortByCreated(items, func(r *entity.LinkRequest) (time.Time, uuid.UUID) { return r.CreatedAt, r.ID })
	return paginate(items, page, perPage), nil
}

func (f *fakeLinkRequestRepo) ReadAll(_ context.Context, filters ...repository.Filter) ([]*entity.LinkRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := []*entity.LinkRequest{}
	for _, request := range f.requests {
		if !matchLinkRequest(request, filters) {
			continue
		}
		clone := *request
		items = append(items, &clone)
	}
	sortByCreated(items, func(r *entity.LinkRequest) (time.Time, uuid.UUID) { return r.CreatedAt, r.ID })
	return items, nil
}

func (f *fakeLinkRequestRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.LinkRequestStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return errors.New("link request not found")
	}
	request.Status = status
	request.UpdatedAt = time.Now()
	return nil
}

func matchLinkRequest(request *entity.LinkRequest, filters []repository.Filter) bool {
	for _, filter := range filters {
		if filter.Column == "status" && string(request.Status) != filter.Value.(string) {
			return false
		}
	}
	return true
}

// ==================== SHOP-BRAND ASSOCIATIONS ====================

type fakeShopToBrandRepo struct {
	mu           sync.Mutex
	associations map[uuid.UUID]*entity.ShopToBrand
}

func newFakeShopToBrandRepo() *fakeShopToBrandRepo {
	return &fakeShopToBrandRepo{associations: map[uuid.UUID]*entity.ShopToBrand{}}
}

func (f *fakeShopToBrandRepo) Create(_ context.Context, association *entity.ShopToBrand) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *association
	f.associations[association.ID] = &clone
	return nil
}

func (f *fakeShopToBrandRepo) Find(_ context.Context, shopID, brandID uuid.UUID) (*entity.ShopToBrand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, association := range f.associations {
		if association.ShopID == shopID && association.BrandID == brandID {
			clone := *association
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeShopToBrandRepo) ListByShop(_ context.Context, shopID uuid.UUID) ([]*entity.ShopToBrand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := []*entity.ShopToBrand{}
	for _, association := range f.associations {
		if association.ShopID == shopID {
			clone := *association
			items = append(items, &clone)
		}
	}
	sortByCreated(items, func(a *entity.ShopToBrand) (time.Time, uuid.UUID) { return a.CreatedAt, a.ID })
	return items, nil
}

// ==================== OUTBOUND FAKES ====================

type fakeMailer struct {
	mu       sync.Mutex
	messages []mailer.Message
}

func (f *fakeMailer) Send(msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
	return nil
}

type fakeGeocoder struct {
	coords *geocoder.Coordinates
	err    error
}

func (f *fakeGeocoder) Geocode(_ context.Context, _ string) (*geocoder.Coordinates, error) {
	return f.coords, f.err
}

type fakeBlobStore struct {
	url string
}

func (f *fakeBlobStore) Store(_ context.Context, _ io.Reader, _ int64, _ string) (string, error) {
	return f.url, nil
}

// ==================== TEST HARNESS ====================

type testEnv struct {
	users        *fakeUserRepo
	shops        *fakeShopRepo
	artists      *fakeArtistRepo
	brands       *fakeBrandRepo
	pieces       *fakePieceRepo
	linkRequests *fakeLinkRequestRepo
	shopToBrands *fakeShopToBrandRepo

	mail  *fakeMailer
	geo   *fakeGeocoder
	blobs *fakeBlobStore

	repo   *repository.Repository
	auth   AuthService
	link   LinkService
	user   UserService
	shop   ShopService
	artist ArtistService
	brand  BrandService
	piece  PieceService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:        newFakeUserRepo(),
		shops:        newFakeShopRepo(),
		artists:      newFakeArtistRepo(),
		brands:       newFakeBrandRepo(),
		pieces:       newFakePieceRepo(),
		linkRequests: newFakeLinkRequestRepo(),
		shopToBrands: newFakeShopToBrandRepo(),
		mail:         &fakeMailer{},
		geo:          &fakeGeocoder{},
		blobs:        &fakeBlobStore{url: "https://cdn.test/images/blob"},
	}

	env.repo = repository.WithStores(
		env.users,
		env.shops,
		env.artists,
		env.brands,
		env.pieces,
		env.linkRequests,
		env.shopToBrands,
	)

	log := zap.NewNop()
	hasher := utils.NewHasher(4)
	tokens := utils.NewTokenIssuer("test-secret", 1)
	registry := newProfileRegistry(env.geo, log)

	env.auth = NewAuthService(env.repo, hasher, tokens, env.mail, log)
	env.link = NewLinkService(env.repo, registry, env.mail, env.blobs, testPerPage, log)
	env.user = NewUserService(env.repo, registry, testPerPage, log)
	env.shop = NewShopService(env.repo, testPerPage, log)
	env.artist = NewArtistService(env.repo, testPerPage, log)
	env.brand = NewBrandService(env.repo, testPerPage, log)
	env.piece = NewPieceService(env.repo, testPerPage, log)

	return env
}

// seedUser inserts a verified member account and returns it.
func (env *testEnv) seedUser(email string) *entity.User {
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        email,
		PasswordHash: "x",
		Verified:     true,
		Role:         entity.RoleMember,
	}
	_ = env.users.Create(context.Background(), user)
	return user
}

// linkAsArtist walks a user through the full request-approve cycle.
func linkAsArtist(t *testing.T, env *testEnv, email string) *entity.User {
	t.Helper()
	ctx := context.Background()
	user := env.seedUser(email)

	linkRequest, err := env.link.RequestLink(ctx, user.ID, &request.LinkRequest{
		Type:   "ARTIST",
		Config: map[string]any{"name": "Seeded Artist", "from": "Portland, OR"},
	})
	require.NoError(t, err)

	_, err = env.link.Approve(ctx, mustParse(t, linkRequest.ID))
	require.NoError(t, err)

	return user
}

func mustParse(t *testing.T, raw string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(raw)
	require.NoError(t, err)
	return id
}

func sortByCreated[T any](items []*T, key func(*T) (time.Time, uuid.UUID)) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if ti.Equal(tj) {
			return idi.String() < idj.String()
		}
		return ti.Before(tj)
	})
}

func paginate[T any](items []*T, page, perPage int) *repository.Page[T] {
	if page < 0 {
		page = 0
	}
	total := int64(len(items))

	start := page * perPage
	if start > len(items) {
		start = len(items)
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}

	return &repository.Page[T]{
		Items:      items[start:end],
		Page:       page,
		PerPage:    perPage,
		TotalCount: total,
		TotalPages: utils.CalculateTotalPages(total, perPage),
	}
}
