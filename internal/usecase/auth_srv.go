package usecase

import (
	"context"
	"strings"
	"time"

	"glassfinder/internal/data/entity"
	"glassfinder/internal/data/repository"
	"glassfinder/internal/dto/request"
	"glassfinder/internal/dto/response"
	"glassfinder/pkg/mailer"
	"glassfinder/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService covers the account lifecycle: registration, email
// verification, sign-in and password changes.
type AuthService interface {
	SignUp(ctx context.Context, req *request.SignUpRequest) (*response.UserResponse, error)
	SignIn(ctx context.Context, req *request.SignInRequest) (*response.AuthResponse, error)
	Verify(ctx context.Context, userID uuid.UUID, code string) (*response.UserResponse, error)
	ResendVerification(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, req *request.UpdatePasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	hasher *utils.Hasher
	tokens *utils.TokenIssuer
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	hasher *utils.Hasher,
	tokens *utils.TokenIssuer,
	mail mailer.Mailer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		mail:   mail,
		log:    log,
	}
}

// normalizeEmail trims whitespace and lowercases, matching the
// case-insensitive unique index on the users table.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp registers a new unverified account and mails the
// verification code.
func (s *authService) SignUp(ctx context.Context, req *request.SignUpRequest) (*response.UserResponse, error) {
	email := normalizeEmail(req.Email)

	// 1. The email must not belong to an existing account
	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	// 2. Hash the password; the raw value is never stored
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	// 3. Create the account with a fresh verification code
	code := utils.GenerateVerificationCode()
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:            email,
		PasswordHash:     hash,
		Verified:         false,
		VerificationCode: &code,
		Role:             entity.RoleMember,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, err
	}

	// 4. Mail the code; the account exists either way
	s.sendMail(mailer.VerificationMail(user.Email, user.ID.String(), code))

	s.log.Info("User signed up",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return response.NewUserResponse(user), nil
}

// SignIn checks the credentials and hands out a bearer token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *authService) SignIn(ctx context.Context, req *request.SignInRequest) (*response.AuthResponse, error) {
	// 1. Look up the account
	user, err := s.repo.User.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// 2. Compare against the stored hash
	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	// 3. Unverified accounts cannot sign in
	if !user.Verified {
		return nil, ErrUnverified
	}

	// 4. Issue the token
	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &response.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      response.NewUserResponse(user),
	}, nil
}

// Verify confirms the account with the mailed code. The code is
// single-use; a second attempt conflicts even with the right code.
func (s *authService) Verify(ctx context.Context, userID uuid.UUID, code string) (*response.UserResponse, error) {
	// 1. Load the account
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// 2. A verified account has no outstanding code to consume
	if user.Verified {
		return nil, ErrAlreadyVerified
	}

	// 3. The code must match the outstanding one
	if user.VerificationCode == nil {
		return nil, ErrNoVerificationCode
	}
	if *user.VerificationCode != code {
		return nil, ErrCodeMismatch
	}

	// 4. Flip the flag and retire the code
	user.Verified = true
	user.VerificationCode = nil
	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User verified", zap.String("user_id", user.ID.String()))

	return response.NewUserResponse(user), nil
}

// ResendVerification rotates the code and mails it again.
func (s *authService) ResendVerification(ctx context.Context, email string) error {
	// 1. Load the account
	user, err := s.repo.User.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	// 2. A verified account has nothing to resend
	if user.Verified {
		return ErrAlreadyVerified
	}

	// 3. Rotate the code; the old one stops working
	code := utils.GenerateVerificationCode()
	user.VerificationCode = &code
	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		return err
	}

	// 4. Mail the new code
	s.sendMail(mailer.VerificationMail(user.Email, user.ID.String(), code))

	return nil
}

// UpdatePassword replaces the password after checking the current one.
func (s *authService) UpdatePassword(ctx context.Context, userID uuid.UUID, req *request.UpdatePasswordRequest) error {
	// 1. Load the account
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	// 2. The current password gates the change
	if !s.hasher.Verify(req.CurrentPassword, user.PasswordHash) {
		return ErrWrongPassword
	}

	// 3. Store the new hash
	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		return err
	}

	s.log.Info("Password updated", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) sendMail(msg mailer.Message) {
	go func() {
		_ = s.mail.Send(msg)
	}()
}
