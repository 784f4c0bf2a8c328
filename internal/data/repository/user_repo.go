package repository

import (
	"context"
	"fmt"

	"glassfinder/internal/data/entity"
	"glassfinder/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ReadPage(ctx context.Context, page, perPage int) (*Page[entity.User], error)
	ReadSingle(ctx context.Context, id uuid.UUID) (*entity.User, error)
	ReadAll(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var userColumns = []string{
	"id", "email", "password", "verified", "verification_code",
	"linked", "type", "role", "created_at", "updated_at",
}

type userRepository struct {
	*CollectionReader[entity.User]
	db  database.Querier
	log *zap.Logger
}

func NewUserRepository(db database.Querier, log *zap.Logger) UserRepository {
	return &userRepository{
		CollectionReader: NewCollectionReader(db, log, "users", userColumns, true, scanUser),
		db:               db,
		log:              log,
	}
}

// ReadPage and ReadAll narrow the embedded reader's variadic forms to
// the filterless signatures the interface promises; a variadic method
// does not satisfy a non-variadic interface method.
func (ur *userRepository) ReadPage(ctx context.Context, page, perPage int) (*Page[entity.User], error) {
	return ur.CollectionReader.ReadPage(ctx, page, perPage)
}

func (ur *userRepository) ReadAll(ctx context.Context) ([]*entity.User, error) {
	return ur.CollectionReader.ReadAll(ctx)
}

func scanUser(row RowScanner) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Verified,
		&user.VerificationCode,
		&user.Linked,
		&user.Type,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password, verified, verification_code,
		                   linked, type, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Verified,
		user.VerificationCode,
		user.Linked,
		user.Type,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return ur.findOne(ctx, "id = $1", id)
}

// FindByIDForUpdate takes a row-level lock on the user. Only meaningful
// inside WithTx; linking transitions use it to serialize per user.
func (ur *userRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE id = $1 AND deleted_at IS NULL
		FOR UPDATE
	`, joinColumns(userColumns))

	user, err := scanUser(ur.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to lock user row",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("lock user %s: %w", id.String(), err)
	}

	return user, nil
}

// FindByEmail compares case-insensitively; the same normalization is
// applied by the unique index, so lookups and writes agree.
func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return ur.findOne(ctx, "LOWER(email) = LOWER($1)", email)
}

func (ur *userRepository) findOne(ctx context.Context, condition string, arg any) (*entity.User, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE %s AND deleted_at IS NULL
	`, joinColumns(userColumns), condition)

	user, err := scanUser(ur.db.QueryRow(ctx, query, arg))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user",
			zap.Error(err),
			zap.String("condition", condition),
		)
		return nil, fmt.Errorf("find user: %w", err)
	}

	return user, nil
}

func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET email = $2, password = $3, verified = $4, verification_code = $5,
		    linked = $6, type = $7, role = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Verified,
		user.VerificationCode,
		user.Linked,
		user.Type,
		user.Role,
		user.UpdatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found or already deleted", user.ID.String())
	}

	return nil
}

func (ur *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := ur.db.Exec(ctx, query, id)
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	ur.log.Info("User deleted", zap.String("id", id.String()))
	return nil
}
