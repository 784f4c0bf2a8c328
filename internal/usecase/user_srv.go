package usecase

import (
	"context"
	"time"

	"glassfinder/internal/data/entity"
	"glassfinder/internal/data/repository"
	"glassfinder/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService is the admin view over accounts.
type UserService interface {
	GetUsers(ctx context.Context, page int) (*response.PaginatedResponse[*response.UserResponse], error)
	GetUser(ctx context.Context, id uuid.UUID) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context) ([]*response.UserResponse, error)
	Remove(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	repo     *repository.Repository
	registry *profileRegistry
	perPage  int
	log      *zap.Logger
}

func NewUserService(repo *repository.Repository, registry *profileRegistry, perPage int, log *zap.Logger) UserService {
	return &userService{
		repo:     repo,
		registry: registry,
		perPage:  perPage,
		log:      log,
	}
}

func (s *userService) GetUsers(ctx context.Context, page int) (*response.PaginatedResponse[*response.UserResponse], error) {
	result, err := s.repo.User.ReadPage(ctx, page, s.perPage)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(
		userResponses(result.Items),
		result.Page,
		result.PerPage,
		result.TotalCount,
		result.TotalPages,
	), nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.ReadSingle(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return response.NewUserResponse(user), nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]*response.UserResponse, error) {
	users, err := s.repo.User.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	return userResponses(users), nil
}

// Remove deletes an account and whatever profile hangs off it, in one
// transaction so no orphaned profile survives the account.
func (s *userService) Remove(ctx context.Context, userID uuid.UUID) error {
	err := s.repo.WithTx(ctx, func(r *repository.Repository) error {
		user, err := r.User.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		// 1. The linked profile goes first. A pending user has the
		//    flag set but no profile row yet, so check before deleting.
		if user.Linked && user.Type != nil {
			accessor, err := s.registry.resolve(*user.Type)
			if err != nil {
				return err
			}
			_, exists, err := accessor.fetch(ctx, r, user.ID)
			if err != nil {
				return err
			}
			if exists {
				if err := accessor.removeByUser(ctx, r, user.ID); err != nil {
					return err
				}
			}
		}

		// 2. Then the account itself
		user.Linked = false
		user.Type = nil
		user.UpdatedAt = time.Now()
		if err := r.User.Update(ctx, user); err != nil {
			return err
		}
		return r.User.Delete(ctx, user.ID)
	})
	if err != nil {
		return err
	}

	s.log.Info("User removed", zap.String("user_id", userID.String()))
	return nil
}

func userResponses(users []*entity.User) []*response.UserResponse {
	responses := make([]*response.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, response.NewUserResponse(user))
	}
	return responses
}
