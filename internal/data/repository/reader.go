package repository

import (
	"context"
	"fmt"
	"strings"

	"glassfinder/pkg/database"
	"glassfinder/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

// RowScanner is satisfied by both pgx.Row and pgx.Rows, so a single
// scan function serves single-item and collection reads.
type RowScanner interface {
	Scan(dest ...any) error
}

// Filter narrows a collection read by an exact column match. Filters
// compose with pagination without touching the ordering.
type Filter struct {
	Column string
	Value  any
}

// Page is one page of a collection plus the totals a client needs to
// walk the rest of it.
type Page[T any] struct {
	Items      []*T
	Page       int
	PerPage    int
	TotalCount int64
	TotalPages int
}

// CollectionReader is the shared offset-pagination contract embedded by
// every repository. Pages are zero-indexed, perPage is fixed per
// deployment, and the sort is made total by tie-breaking on the primary
// key so pagination stays stable under concurrent inserts.
type CollectionReader[T any] struct {
	db         database.Querier
	log        *zap.Logger
	table      string
	columns    string
	sortKey    string
	softDelete bool
	scan       func(row RowScanner) (*T, error)
}

func NewCollectionReader[T any](
	db database.Querier,
	log *zap.Logger,
	table string,
	columns []string,
	softDelete bool,
	scan func(row RowScanner) (*T, error),
) *CollectionReader[T] {
	return &CollectionReader[T]{
		db:         db,
		log:        log,
		table:      table,
		columns:    strings.Join(columns, ", "),
		sortKey:    "created_at",
		softDelete: softDelete,
		scan:       scan,
	}
}

// whereClause builds the WHERE fragment and its arguments. Soft-deleted
// rows are always excluded for tables that carry deleted_at.
func (r *CollectionReader[T]) whereClause(filters []Filter) (string, []any) {
	var conditions []string
	var args []any

	if r.softDelete {
		conditions = append(conditions, "deleted_at IS NULL")
	}
	for _, f := range filters {
		args = append(args, f.Value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", f.Column, len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// ReadPage returns one zero-indexed page. Out-of-range pages return an
// empty item set with the real totals, never an error.
func (r *CollectionReader[T]) ReadPage(ctx context.Context, page, perPage int, filters ...Filter) (*Page[T], error) {
	if page < 0 {
		page = 0
	}

	where, args := r.whereClause(filters)

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", r.table, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count collection",
			zap.Error(err),
			zap.String("table", r.table),
		)
		return nil, fmt.Errorf("count %s: %w", r.table, err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s%s ORDER BY %s ASC, id ASC LIMIT $%d OFFSET $%d",
		r.columns, r.table, where, r.sortKey, len(args)+1, len(args)+2,
	)
	args = append(args, perPage, utils.CalculateOffset(page, perPage))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to read collection page",
			zap.Error(err),
			zap.String("table", r.table),
			zap.Int("page", page),
		)
		return nil, fmt.Errorf("read %s page %d: %w", r.table, page, err)
	}
	defer rows.Close()

	items, err := r.collect(rows)
	if err != nil {
		return nil, err
	}

	return &Page[T]{
		Items:      items,
		Page:       page,
		PerPage:    perPage,
		TotalCount: total,
		TotalPages: utils.CalculateTotalPages(total, perPage),
	}, nil
}

// ReadSingle returns the item with the given id, or nil when absent.
func (r *CollectionReader[T]) ReadSingle(ctx context.Context, id uuid.UUID) (*T, error) {
	where, args := r.whereClause([]Filter{{Column: "id", Value: id}})
	query := fmt.Sprintf("SELECT %s FROM %s%s", r.columns, r.table, where)

	item, err := r.scan(r.db.QueryRow(ctx, query, args...))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to read single item",
			zap.Error(err),
			zap.String("table", r.table),
			zap.String("id", id.String()),
		)
		return nil, fmt.Errorf("read %s %s: %w", r.table, id.String(), err)
	}

	return item, nil
}

// ReadAll returns the entire collection in sort order. Administrative
// use only; paginated callers go through ReadPage.
func (r *CollectionReader[T]) ReadAll(ctx context.Context, filters ...Filter) ([]*T, error) {
	where, args := r.whereClause(filters)
	query := fmt.Sprintf(
		"SELECT %s FROM %s%s ORDER BY %s ASC, id ASC",
		r.columns, r.table, where, r.sortKey,
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to read full collection",
			zap.Error(err),
			zap.String("table", r.table),
		)
		return nil, fmt.Errorf("read all %s: %w", r.table, err)
	}
	defer rows.Close()

	return r.collect(rows)
}

// Count returns how many rows match the filters.
func (r *CollectionReader[T]) Count(ctx context.Context, filters ...Filter) (int64, error) {
	where, args := r.whereClause(filters)
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", r.table, where)

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count collection",
			zap.Error(err),
			zap.String("table", r.table),
		)
		return 0, fmt.Errorf("count %s: %w", r.table, err)
	}

	return count, nil
}

func (r *CollectionReader[T]) collect(rows pgx.Rows) ([]*T, error) {
	items := []*T{}
	for rows.Next() {
		item, err := r.scan(rows)
		if err != nil {
			r.log.Error("Failed to scan collection row",
				zap.Error(err),
				zap.String("table", r.table),
			)
			return nil, fmt.Errorf("scan %s row: %w", r.table, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error",
			zap.Error(err),
			zap.String("table", r.table),
		)
		return nil, fmt.Errorf("iterate %s rows: %w", r.table, err)
	}

	return items, nil
}
