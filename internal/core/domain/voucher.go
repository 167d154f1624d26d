package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType enumerates the commercial transaction kinds a voucher can record.
type VoucherType string

const (
	Sales          VoucherType = "SALES"
	Purchase       VoucherType = "PURCHASE"
	Payment        VoucherType = "PAYMENT"
	Receipt        VoucherType = "RECEIPT"
	Contra         VoucherType = "CONTRA"
	Journal        VoucherType = "JOURNAL"
	DebitNote      VoucherType = "DEBIT_NOTE"
	CreditNote     VoucherType = "CREDIT_NOTE"
	ExpenseVoucher VoucherType = "EXPENSE"
)

// VoucherTypes lists every known voucher type.
var VoucherTypes = []VoucherType{
	Sales, Purchase, Payment, Receipt, Contra, Journal, DebitNote, CreditNote, ExpenseVoucher,
}

// IsValid reports whether t is one of the known voucher types.
func (t VoucherType) IsValid() bool {
	for _, known := range VoucherTypes {
		if t == known {
			return true
		}
	}
	return false
}

// VoucherLineItem is a single line of a voucher. CGST/SGST are populated for
// intra-state transactions, IGST for inter-state; in practice the two sets are
// mutually exclusive per line.
type VoucherLineItem struct {
	LineItemID  string          `json:"lineItemID"`
	ItemID      string          `json:"itemID,omitempty"` // Optional catalog reference
	AccountID   string          `json:"accountID"`
	Description string          `json:"description"`
	Qty         decimal.Decimal `json:"qty"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"` // qty x rate for item lines, entered directly otherwise
	GSTRate     decimal.Decimal `json:"gstRate"`
	IGST        decimal.Decimal `json:"igst"`
	CGST        decimal.Decimal `json:"cgst"`
	SGST        decimal.Decimal `json:"sgst"`
	IsDebit     bool            `json:"isDebit"` // UI hint only; posting derives orientation from the voucher type
}

// GrossAmount is the line amount including all tax components.
func (l VoucherLineItem) GrossAmount() decimal.Decimal {
	return l.Amount.Add(l.CGST).Add(l.SGST).Add(l.IGST)
}

// Voucher is the transaction header plus its ordered line items. Line order is
// insertion order; it has no accounting significance but fixes entry ordering.
type Voucher struct {
	VoucherID      string            `json:"voucherID"` // Primary Key
	Date           time.Time         `json:"date"`
	Type           VoucherType       `json:"type"`
	VoucherNumber  string            `json:"voucherNumber"` // Human-readable, unique within the ledger
	PartyAccountID string            `json:"partyAccountID"`
	LineItems      []VoucherLineItem `json:"lineItems"`
	Narration      string            `json:"narration"`
	TotalAmount    decimal.Decimal   `json:"totalAmount"` // Cached sum of line gross amounts
	AuditFields
}

// ComputeTotal recomputes the voucher total from its lines. The stored
// TotalAmount must always equal this sum.
func (v Voucher) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range v.LineItems {
		total = total.Add(line.GrossAmount())
	}
	return total
}

// LineAmountTotal sums only the principal line amounts, ignoring tax
// components. Receipt and Payment vouchers post this figure to the party.
func (v Voucher) LineAmountTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range v.LineItems {
		total = total.Add(line.Amount)
	}
	return total
}
