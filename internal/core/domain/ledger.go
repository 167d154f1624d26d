package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one row of a double-entry posting: a debit or a credit
// against a single account. Entries are derived from vouchers and recomputed
// wholesale whenever the voucher history or the chart of accounts changes;
// they are never mutated in place.
type LedgerEntry struct {
	EntryID     string          `json:"entryID"` // voucherID-<seq>, unique and reproducible
	Date        time.Time       `json:"date"`
	VoucherID   string          `json:"voucherID"`
	VoucherType VoucherType     `json:"voucherType"`
	AccountID   string          `json:"accountID"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}
