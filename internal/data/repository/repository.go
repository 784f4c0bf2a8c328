package repository

import (
	"context"
	"fmt"

	"glassfinder/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Shop        ShopRepository
	Artist      ArtistRepository
	Brand       BrandRepository
	Piece       PieceRepository
	LinkRequest LinkRequestRepository
	ShopToBrand ShopToBrandRepository

	db  database.Querier
	log *zap.Logger
}

func NewRepository(db database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Shop:        NewShopRepository(db, log),
		Artist:      NewArtistRepository(db, log),
		Brand:       NewBrandRepository(db, log),
		Piece:       NewPieceRepository(db, log),
		LinkRequest: NewLinkRequestRepository(db, log),
		ShopToBrand: NewShopToBrandRepository(db, log),

		db:  db,
		log: log,
	}
}

// WithStores assembles a repository from pre-built stores. No database
// handle is attached, so WithTx runs its callback directly.
func WithStores(
	user UserRepository,
	shop ShopRepository,
	artist ArtistRepository,
	brand BrandRepository,
	piece PieceRepository,
	linkRequest LinkRequestRepository,
	shopToBrand ShopToBrandRepository,
) *Repository {
	return &Repository{
		User:        user,
		Shop:        shop,
		Artist:      artist,
		Brand:       brand,
		Piece:       piece,
		LinkRequest: linkRequest,
		ShopToBrand: shopToBrand,
		log:         zap.NewNop(),
	}
}

// WithTx runs fn against a Repository bound to a single transaction.
// Multi-step mutations (linking, approval, admin removal) go through
// here so a failure rolls every step back; pgx.Tx satisfies Querier, so
// the per-entity stores work unchanged inside the transaction.
func (r *Repository) WithTx(ctx context.Context, fn func(r *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(NewRepository(tx, r.log)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			r.log.Error("Failed to roll back transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
