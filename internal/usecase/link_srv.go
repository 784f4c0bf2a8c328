package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"glassfinder/internal/data/entity"
	"glassfinder/internal/data/repository"
	"glassfinder/internal/dto/request"
	"glassfinder/internal/dto/response"
	"glassfinder/pkg/mailer"
	"glassfinder/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LinkService runs the linking workflow: members request a profile
// kind, admins approve or deny, and the linked profile is served and
// edited through the registry.
type LinkService interface {
	RequestLink(ctx context.Context, userID uuid.UUID, req *request.LinkRequest) (*response.LinkRequestResponse, error)
	FetchProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
	UploadImage(ctx context.Context, userID uuid.UUID, reader io.Reader, size int64, contentType string) (*response.ProfileResponse, error)
	ListRequests(ctx context.Context, page int, status string) (*response.PaginatedResponse[*response.LinkRequestResponse], error)
	Approve(ctx context.Context, requestID uuid.UUID) (*response.LinkRequestResponse, error)
	Deny(ctx context.Context, requestID uuid.UUID) (*response.LinkRequestResponse, error)
}

type linkService struct {
	repo     *repository.Repository
	registry *profileRegistry
	mail     mailer.Mailer
	blobs    storage.BlobStore
	perPage  int
	log      *zap.Logger
}

func NewLinkService(
	repo *repository.Repository,
	registry *profileRegistry,
	mail mailer.Mailer,
	blobs storage.BlobStore,
	perPage int,
	log *zap.Logger,
) LinkService {
	return &linkService{
		repo:     repo,
		registry: registry,
		mail:     mail,
		blobs:    blobs,
		perPage:  perPage,
		log:      log,
	}
}

// RequestLink opens a pending link request. The user's linked flag and
// type are set up front, so a second request (or any other linking
// attempt) conflicts until an admin resolves this one.
func (s *linkService) RequestLink(ctx context.Context, userID uuid.UUID, req *request.LinkRequest) (*response.LinkRequestResponse, error) {
	// 1. The requested kind must be one of the three valid ones
	linkType, err := entity.ParseLinkType(req.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLinkType, req.Type)
	}

	// 2. The profile attributes ride along as serialized JSON
	configJSON, err := json.Marshal(req.Config)
	if err != nil {
		return nil, fmt.Errorf("%w: config is not serializable", ErrValidation)
	}

	var (
		linkRequest *entity.LinkRequest
		email       string
	)

	// 3. Flag the user and open the request in one transaction
	err = s.repo.WithTx(ctx, func(r *repository.Repository) error {
		user, err := r.User.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		if user.Linked {
			pending, err := r.LinkRequest.FindPendingByUserID(ctx, userID)
			if err != nil {
				return err
			}
			if pending != nil {
				return fmt.Errorf("%w: a %s request is awaiting review", ErrAlreadyLinked, pending.Type)
			}
			return ErrAlreadyLinked
		}

		user.Linked = true
		user.Type = &linkType
		user.UpdatedAt = time.Now()
		if err := r.User.Update(ctx, user); err != nil {
			return err
		}

		now := time.Now()
		linkRequest = &entity.LinkRequest{
			BaseNoDelete: entity.BaseNoDelete{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			UserID: userID,
			Type:   linkType,
			Config: string(configJSON),
			Status: entity.LinkRequestPending,
		}
		if err := r.LinkRequest.Create(ctx, linkRequest); err != nil {
			return err
		}

		email = user.Email
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 4. Acknowledge by mail; delivery problems never undo the request
	s.sendMail(mailer.LinkRequestMail(email, linkType))

	s.log.Info("Link request opened",
		zap.String("user_id", userID.String()),
		zap.String("type", string(linkType)),
	)

	return response.NewLinkRequestResponse(linkRequest), nil
}

// FetchProfile resolves the caller's linked profile through the
// registry, tagged with the lifecycle state so pending and linked are
// never confused.
func (s *linkService) FetchProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error) {
	// 1. Load the user
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// 2. An unlinked user has no profile to resolve
	if !user.Linked || user.Type == nil {
		return &response.ProfileResponse{State: entity.StateUnlinked}, nil
	}

	// 3. Dispatch on the linked kind
	accessor, err := s.registry.resolve(*user.Type)
	if err != nil {
		return nil, err
	}

	link, exists, err := accessor.fetch(ctx, s.repo, userID)
	if err != nil {
		return nil, err
	}

	return &response.ProfileResponse{
		State: user.LinkState(exists),
		Type:  user.Type,
		Link:  link,
	}, nil
}

// UpdateProfile applies a partial update to the caller's linked
// profile. Keys the kind does not recognize are dropped.
func (s *linkService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	// 1. Only a fully linked user has a profile to edit
	user, accessor, err := s.linkedAccessor(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 2. Apply the recognized attributes
	link, err := accessor.update(ctx, s.repo, userID, req.Values)
	if err != nil {
		return nil, err
	}

	return &response.ProfileResponse{
		State: entity.StateLinked,
		Type:  user.Type,
		Link:  link,
	}, nil
}

// UploadImage stores the uploaded bytes and points the caller's
// profile image at the resulting URL.
func (s *linkService) UploadImage(ctx context.Context, userID uuid.UUID, reader io.Reader, size int64, contentType string) (*response.ProfileResponse, error) {
	// 1. Only a fully linked user has a profile to attach an image to
	user, accessor, err := s.linkedAccessor(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 2. Persist the blob first; an orphaned object is harmless, a
	//    dangling image URL is not
	url, err := s.blobs.Store(ctx, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	// 3. Point the profile at it
	link, err := accessor.setImage(ctx, s.repo, userID, url)
	if err != nil {
		return nil, err
	}

	return &response.ProfileResponse{
		State: entity.StateLinked,
		Type:  user.Type,
		Link:  link,
	}, nil
}

// ListRequests pages through link requests for the admin queue,
// optionally narrowed to one status.
func (s *linkService) ListRequests(ctx context.Context, page int, status string) (*response.PaginatedResponse[*response.LinkRequestResponse], error) {
	var filters []repository.Filter
	if status != "" {
		filters = append(filters, repository.Filter{Column: "status", Value: status})
	}

	result, err := s.repo.LinkRequest.ReadPage(ctx, page, s.perPage, filters...)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(
		response.NewLinkRequestResponses(result.Items),
		result.Page,
		result.PerPage,
		result.TotalCount,
		result.TotalPages,
	), nil
}

// Approve materializes the requested profile and marks the request
// APPROVED, atomically. If the profile cannot be created the request
// stays PENDING and the user is rolled back to unlinked.
func (s *linkService) Approve(ctx context.Context, requestID uuid.UUID) (*response.LinkRequestResponse, error) {
	// 1. The request must exist and still be open
	linkRequest, err := s.repo.LinkRequest.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if linkRequest == nil {
		return nil, ErrRequestNotFound
	}
	if linkRequest.Status != entity.LinkRequestPending {
		return nil, ErrRequestResolved
	}

	accessor, err := s.registry.resolve(linkRequest.Type)
	if err != nil {
		return nil, err
	}

	var attrs map[string]any
	if err := json.Unmarshal([]byte(linkRequest.Config), &attrs); err != nil {
		return nil, fmt.Errorf("%w: stored config is not valid JSON", ErrValidation)
	}

	// 2. Create the profile and resolve the request together
	var email string
	err = s.repo.WithTx(ctx, func(r *repository.Repository) error {
		user, err := r.User.FindByIDForUpdate(ctx, linkRequest.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		// Every resolver locks the user row first, so re-reading the
		// request under the lock catches a concurrent approve or deny
		fresh, err := r.LinkRequest.FindByID(ctx, linkRequest.ID)
		if err != nil {
			return err
		}
		if fresh == nil {
			return ErrRequestNotFound
		}
		if fresh.Status != entity.LinkRequestPending {
			return ErrRequestResolved
		}

		// Re-assert the flags; a failed earlier approval cleared them
		user.Linked = true
		user.Type = &linkRequest.Type
		user.UpdatedAt = time.Now()
		if err := r.User.Update(ctx, user); err != nil {
			return err
		}

		if _, err := accessor.create(ctx, r, user.ID, attrs); err != nil {
			return err
		}

		if err := r.LinkRequest.UpdateStatus(ctx, linkRequest.ID, entity.LinkRequestApproved); err != nil {
			return err
		}

		email = user.Email
		return nil
	})
	if err != nil {
		// 3. The transaction rolled back; undo the optimistic linked
		//    flag so the user can submit a corrected request. Losing a
		//    race to another resolver is not a rollback: the winner
		//    already settled the user's state.
		if !errors.Is(err, ErrRequestResolved) && !errors.Is(err, ErrRequestNotFound) {
			s.unlinkUser(ctx, linkRequest.UserID)
		}
		return nil, err
	}

	// 4. Tell the user the good news
	s.sendMail(mailer.LinkDecisionMail(email, linkRequest.Type, true))

	s.log.Info("Link request approved",
		zap.String("request_id", linkRequest.ID.String()),
		zap.String("user_id", linkRequest.UserID.String()),
		zap.String("type", string(linkRequest.Type)),
	)

	linkRequest.Status = entity.LinkRequestApproved
	return response.NewLinkRequestResponse(linkRequest), nil
}

// Deny marks the request DENIED and rolls the user back to unlinked so
// a new request can be submitted.
func (s *linkService) Deny(ctx context.Context, requestID uuid.UUID) (*response.LinkRequestResponse, error) {
	// 1. The request must exist and still be open
	linkRequest, err := s.repo.LinkRequest.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if linkRequest == nil {
		return nil, ErrRequestNotFound
	}
	if linkRequest.Status != entity.LinkRequestPending {
		return nil, ErrRequestResolved
	}

	// 2. Resolve the request and clear the optimistic flag together
	var email string
	err = s.repo.WithTx(ctx, func(r *repository.Repository) error {
		user, err := r.User.FindByIDForUpdate(ctx, linkRequest.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		fresh, err := r.LinkRequest.FindByID(ctx, linkRequest.ID)
		if err != nil {
			return err
		}
		if fresh == nil {
			return ErrRequestNotFound
		}
		if fresh.Status != entity.LinkRequestPending {
			return ErrRequestResolved
		}

		if err := r.LinkRequest.UpdateStatus(ctx, linkRequest.ID, entity.LinkRequestDenied); err != nil {
			return err
		}

		user.Linked = false
		user.Type = nil
		user.UpdatedAt = time.Now()
		if err := r.User.Update(ctx, user); err != nil {
			return err
		}

		email = user.Email
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 3. Notify the user
	s.sendMail(mailer.LinkDecisionMail(email, linkRequest.Type, false))

	s.log.Info("Link request denied",
		zap.String("request_id", linkRequest.ID.String()),
		zap.String("user_id", linkRequest.UserID.String()),
	)

	linkRequest.Status = entity.LinkRequestDenied
	return response.NewLinkRequestResponse(linkRequest), nil
}

// linkedAccessor loads the user and resolves the accessor for their
// linked kind, rejecting users who are not linked yet.
func (s *linkService) linkedAccessor(ctx context.Context, userID uuid.UUID) (*entity.User, profileAccessor, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}
	if !user.Linked || user.Type == nil {
		return nil, nil, ErrNotLinked
	}

	accessor, err := s.registry.resolve(*user.Type)
	if err != nil {
		return nil, nil, err
	}

	return user, accessor, nil
}

// unlinkUser is the compensating step when an approval transaction
// fails after the optimistic linked flag was set.
func (s *linkService) unlinkUser(ctx context.Context, userID uuid.UUID) {
	err := s.repo.WithTx(ctx, func(r *repository.Repository) error {
		user, err := r.User.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return nil
		}

		user.Linked = false
		user.Type = nil
		user.UpdatedAt = time.Now()
		return r.User.Update(ctx, user)
	})
	if err != nil {
		s.log.Error("Failed to roll user back to unlinked",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
	}
}

// sendMail delivers in the background; a mail failure is logged by the
// mailer and never fails the workflow that triggered it.
func (s *linkService) sendMail(msg mailer.Message) {
	go func() {
		_ = s.mail.Send(msg)
	}()
}
