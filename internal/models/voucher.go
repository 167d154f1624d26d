package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher represents a voucher header row. Lines live in voucher_line_items
// and are saved in the same database transaction.
type Voucher struct {
	VoucherID      string          `db:"voucher_id"`
	VoucherDate    time.Time       `db:"voucher_date"`
	VoucherType    string          `db:"voucher_type"`
	VoucherNumber  string          `db:"voucher_number"`
	PartyAccountID string          `db:"party_account_id"`
	Narration      string          `db:"narration"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	AuditFields
}

// VoucherLineItem represents one line of a voucher. LineNo preserves the
// order lines were entered in; posting depends on it.
type VoucherLineItem struct {
	LineItemID  string          `db:"line_item_id"`
	VoucherID   string          `db:"voucher_id"`
	LineNo      int             `db:"line_no"`
	ItemID      string          `db:"item_id"`
	AccountID   string          `db:"account_id"`
	Description string          `db:"description"`
	Qty         decimal.Decimal `db:"qty"`
	Rate        decimal.Decimal `db:"rate"`
	Amount      decimal.Decimal `db:"amount"`
	GSTRate     decimal.Decimal `db:"gst_rate"`
	IGST        decimal.Decimal `db:"igst"`
	CGST        decimal.Decimal `db:"cgst"`
	SGST        decimal.Decimal `db:"sgst"`
	IsDebit     bool            `db:"is_debit"`
}
