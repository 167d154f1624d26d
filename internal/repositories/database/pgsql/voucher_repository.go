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

const voucherColumns = `voucher_id, voucher_date, voucher_type, voucher_number, party_account_id, narration, total_amount, created_at, created_by, last_updated_at, last_updated_by`

const voucherLineColumns = `line_item_id, voucher_id, line_no, item_id, account_id, description, qty, rate, amount, gst_rate, igst, cgst, sgst, is_debit`

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for voucher data.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepository {
	return &PgxVoucherRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.VoucherRepository = (*PgxVoucherRepository)(nil)

func scanVoucher(row pgx.CollectableRow) (models.Voucher, error) {
	var voucher models.Voucher
	err := row.Scan(
		&voucher.VoucherID,
		&voucher.VoucherDate,
		&voucher.VoucherType,
		&voucher.VoucherNumber,
		&voucher.PartyAccountID,
		&voucher.Narration,
		&voucher.TotalAmount,
		&voucher.CreatedAt,
		&voucher.CreatedBy,
		&voucher.LastUpdatedAt,
		&voucher.LastUpdatedBy,
	)
	return voucher, err
}

func scanVoucherLine(row pgx.CollectableRow) (models.VoucherLineItem, error) {
	var line models.VoucherLineItem
	err := row.Scan(
		&line.LineItemID,
		&line.VoucherID,
		&line.LineNo,
		&line.ItemID,
		&line.AccountID,
		&line.Description,
		&line.Qty,
		&line.Rate,
		&line.Amount,
		&line.GSTRate,
		&line.IGST,
		&line.CGST,
		&line.SGST,
		&line.IsDebit,
	)
	return line, err
}

// SaveVoucher inserts a voucher header and its lines in a single database
// transaction. Either everything is stored or nothing is.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelVoucher := mapping.ToModelVoucher(voucher)
	voucherQuery := `
		INSERT INTO vouchers (` + voucherColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, voucherQuery,
		modelVoucher.VoucherID,
		modelVoucher.VoucherDate,
		modelVoucher.VoucherType,
		modelVoucher.VoucherNumber,
		modelVoucher.PartyAccountID,
		modelVoucher.Narration,
		modelVoucher.TotalAmount,
		modelVoucher.CreatedAt,
		modelVoucher.CreatedBy,
		modelVoucher.LastUpdatedAt,
		modelVoucher.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("voucher %s: %w", modelVoucher.VoucherNumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert voucher %s: %w", modelVoucher.VoucherID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO voucher_line_items (` + voucherLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	for i, line := range voucher.LineItems {
		modelLine := mapping.ToModelVoucherLine(voucher.VoucherID, i+1, line)
		batch.Queue(lineQuery,
			modelLine.LineItemID,
			modelLine.VoucherID,
			modelLine.LineNo,
			modelLine.ItemID,
			modelLine.AccountID,
			modelLine.Description,
			modelLine.Qty,
			modelLine.Rate,
			modelLine.Amount,
			modelLine.GSTRate,
			modelLine.IGST,
			modelLine.CGST,
			modelLine.SGST,
			modelLine.IsDebit,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert lines for voucher %s: %w", modelVoucher.VoucherID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit voucher %s: %w", modelVoucher.VoucherID, err)
	}
	return nil
}

func (r *PgxVoucherRepository) findVoucher(ctx context.Context, where string, arg any) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE ` + where + `;`

	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query voucher: %w", err)
	}

	modelVoucher, err := pgx.CollectOneRow(rows, scanVoucher)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find voucher: %w", err)
	}

	lineQuery := `SELECT ` + voucherLineColumns + ` FROM voucher_line_items WHERE voucher_id = $1 ORDER BY line_no;`
	lineRows, err := r.Pool.Query(ctx, lineQuery, modelVoucher.VoucherID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for voucher %s: %w", modelVoucher.VoucherID, err)
	}

	modelLines, err := pgx.CollectRows(lineRows, scanVoucherLine)
	if err != nil {
		return nil, fmt.Errorf("failed to scan lines for voucher %s: %w", modelVoucher.VoucherID, err)
	}

	domainVoucher := mapping.ToDomainVoucher(modelVoucher, modelLines)
	return &domainVoucher, nil
}

// FindVoucherByID retrieves a voucher with its lines by id.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	return r.findVoucher(ctx, "voucher_id = $1", voucherID)
}

// FindVoucherByNumber retrieves a voucher with its lines by its human-readable
// voucher number.
func (r *PgxVoucherRepository) FindVoucherByNumber(ctx context.Context, voucherNumber string) (*domain.Voucher, error) {
	return r.findVoucher(ctx, "voucher_number = $1", voucherNumber)
}

// ListVouchers retrieves the full voucher history in creation order, each
// voucher carrying its lines in entry order.
func (r *PgxVoucherRepository) ListVouchers(ctx context.Context) ([]domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers ORDER BY created_at, voucher_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query vouchers: %w", err)
	}

	modelVouchers, err := pgx.CollectRows(rows, scanVoucher)
	if err != nil {
		return nil, fmt.Errorf("failed to scan vouchers: %w", err)
	}

	lineQuery := `SELECT ` + voucherLineColumns + ` FROM voucher_line_items ORDER BY voucher_id, line_no;`
	lineRows, err := r.Pool.Query(ctx, lineQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query voucher lines: %w", err)
	}

	modelLines, err := pgx.CollectRows(lineRows, scanVoucherLine)
	if err != nil {
		return nil, fmt.Errorf("failed to scan voucher lines: %w", err)
	}

	linesByVoucher := make(map[string][]models.VoucherLineItem, len(modelVouchers))
	for _, line := range modelLines {
		linesByVoucher[line.VoucherID] = append(linesByVoucher[line.VoucherID], line)
	}

	vouchers := make([]domain.Voucher, len(modelVouchers))
	for i, m := range modelVouchers {
		vouchers[i] = mapping.ToDomainVoucher(m, linesByVoucher[m.VoucherID])
	}
	return vouchers, nil
}
