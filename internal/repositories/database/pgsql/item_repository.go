package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sahajlabs/bahikhata/internal/apperrors"
	"github.com/sahajlabs/bahikhata/internal/core/domain"
	portsrepo "github.com/sahajlabs/bahikhata/internal/core/ports/repositories"
	"github.com/sahajlabs/bahikhata/internal/models"
	"github.com/sahajlabs/bahikhata/internal/utils/mapping"
)

const itemColumns = `item_id, name, hsn_code, price, gst_rate, unit, created_at, created_by, last_updated_at, last_updated_by`

type PgxItemRepository struct {
	BaseRepository
}

// newPgxItemRepository creates a new repository for item catalog data.
func newPgxItemRepository(pool *pgxpool.Pool) portsrepo.ItemRepository {
	return &PgxItemRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ItemRepository = (*PgxItemRepository)(nil)

func scanItem(row pgx.CollectableRow) (models.Item, error) {
	var item models.Item
	err := row.Scan(
		&item.ItemID,
		&item.Name,
		&item.HSNCode,
		&item.Price,
		&item.GSTRate,
		&item.Unit,
		&item.CreatedAt,
		&item.CreatedBy,
		&item.LastUpdatedAt,
		&item.LastUpdatedBy,
	)
	return item, err
}

// SaveItem inserts a new catalog item.
func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	modelItem := mapping.ToModelItem(item)

	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelItem.ItemID,
		modelItem.Name,
		modelItem.HSNCode,
		modelItem.Price,
		modelItem.GSTRate,
		modelItem.Unit,
		modelItem.CreatedAt,
		modelItem.CreatedBy,
		modelItem.LastUpdatedAt,
		modelItem.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("item %s: %w", modelItem.ItemID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save item %s: %w", modelItem.ItemID, err)
	}
	return nil
}

// FindItemByID retrieves a catalog item by its id.
func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1;`

	rows, err := r.Pool.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query item %s: %w", itemID, err)
	}

	modelItem, err := pgx.CollectOneRow(rows, scanItem)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find item by id %s: %w", itemID, err)
	}

	domainItem := mapping.ToDomainItem(modelItem)
	return &domainItem, nil
}

// ListItems retrieves the item catalog in creation order.
func (r *PgxItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at, item_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}

	modelItems, err := pgx.CollectRows(rows, scanItem)
	if err != nil {
		return nil, fmt.Errorf("failed to scan items: %w", err)
	}

	return mapping.ToDomainItemSlice(modelItems), nil
}
