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

type LinkRequestRepository interface {
	Create(ctx context.Context, request *entity.LinkRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LinkRequest, error)
	FindPendingByUserID(ctx context.Context, userID uuid.UUID) (*entity.LinkRequest, error)
	ReadPage(ctx context.Context, page, perPage int, filters ...Filter) (*Page[entity.LinkRequest], error)
	ReadAll(ctx context.Context, filters ...Filter) ([]*entity.LinkRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.LinkRequestStatus) error
}

var linkRequestColumns = []string{
	"id", "user_id", "type", "config", "status", "created_at", "updated_at",
}

type linkRequestRepository struct {
	*CollectionReader[entity.LinkRequest]
	db  database.Querier
	log *zap.Logger
}

func NewLinkRequestRepository(db database.Querier, log *zap.Logger) LinkRequestRepository {
	return &linkRequestRepository{
		CollectionReader: NewCollectionReader(db, log, "link_requests", linkRequestColumns, false, scanLinkRequest),
		db:               db,
		log:              log,
	}
}

func scanLinkRequest(row RowScanner) (*entity.LinkRequest, error) {
	var request entity.LinkRequest
	err := row.Scan(
		&request.ID,
		&request.UserID,
		&request.Type,
		&request.Config,
		&request.Status,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (lr *linkRequestRepository) Create(ctx context.Context, request *entity.LinkRequest) error {
	query := `
		INSERT INTO link_requests (id, user_id, type, config, status,
		                           created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := lr.db.Exec(ctx, query,
		request.ID,
		request.UserID,
		request.Type,
		request.Config,
		request.Status,
		request.CreatedAt,
		request.UpdatedAt,
	)

	if err != nil {
		lr.log.Error("Failed to create link request",
			zap.Error(err),
			zap.String("user_id", request.UserID.String()),
			zap.String("type", string(request.Type)),
		)
		return fmt.Errorf("create link request for user %s: %w", request.UserID.String(), err)
	}

	return nil
}

func (lr *linkRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LinkRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM link_requests WHERE id = $1
	`, joinColumns(linkRequestColumns))

	request, err := scanLinkRequest(lr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		lr.log.Error("Failed to find link request",
			zap.Error(err),
			zap.String("request_id", id.String()),
		)
		return nil, fmt.Errorf("find link request %s: %w", id.String(), err)
	}

	return request, nil
}

func (lr *linkRequestRepository) FindPendingByUserID(ctx context.Context, userID uuid.UUID) (*entity.LinkRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM link_requests
		WHERE user_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT 1
	`, joinColumns(linkRequestColumns))

	request, err := scanLinkRequest(lr.db.QueryRow(ctx, query, userID, entity.LinkRequestPending))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		lr.log.Error("Failed to find pending link request",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find pending link request for user %s: %w", userID.String(), err)
	}

	return request, nil
}

func (lr *linkRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.LinkRequestStatus) error {
	query := `
		UPDATE link_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := lr.db.Exec(ctx, query, id, status)
	if err != nil {
		lr.log.Error("Failed to update link request status",
			zap.Error(err),
			zap.String("request_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update link request %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("link request %s not found", id.String())
	}

	return nil
}
