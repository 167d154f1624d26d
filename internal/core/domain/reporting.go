package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow is the per-account aggregate over the ledger entry set.
// At most one of NetDebit/NetCredit is positive.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
	NetDebit    decimal.Decimal `json:"netDebit"`
	NetCredit   decimal.Decimal `json:"netCredit"`
}

// PAndLReport nets income against expense accounts. NetProfit is negative for
// a net loss.
type PAndLReport struct {
	Income    decimal.Decimal `json:"income"`
	Expense   decimal.Decimal `json:"expense"`
	NetProfit decimal.Decimal `json:"netProfit"`
}

// GSTSummary aggregates tax-duty entries into input credit and output
// liability. NetPayable is negative when credit exceeds liability
// (refundable).
type GSTSummary struct {
	InputTax   decimal.Decimal `json:"inputTax"`
	OutputTax  decimal.Decimal `json:"outputTax"`
	NetPayable decimal.Decimal `json:"netPayable"`
}

// BalanceSide labels which side a running balance sits on.
type BalanceSide string

const (
	DebitBalance  BalanceSide = "Dr"
	CreditBalance BalanceSide = "Cr"
)

// LedgerBookLine is one entry of a per-account ledger book with the running
// balance after applying it. Balance is the absolute value; Side carries the
// sign.
type LedgerBookLine struct {
	EntryID     string          `json:"entryID"`
	Date        time.Time       `json:"date"`
	VoucherID   string          `json:"voucherID"`
	VoucherType VoucherType     `json:"voucherType"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
	Side        BalanceSide     `json:"side"`
}

// LedgerBook is the detailed transaction view of a single account.
type LedgerBook struct {
	AccountID      string           `json:"accountID"`
	AccountName    string           `json:"accountName"`
	OpeningBalance decimal.Decimal  `json:"openingBalance"`
	Lines          []LedgerBookLine `json:"lines"`
	ClosingBalance decimal.Decimal  `json:"closingBalance"`
	ClosingSide    BalanceSide      `json:"closingSide"`
}

// ComplianceFlags are advisory flags evaluated against a voucher draft before
// it is recorded. They are not ledger invariants.
type ComplianceFlags struct {
	EWayBillRequired   bool `json:"eWayBillRequired"`
	EInvoiceApplicable bool `json:"eInvoiceApplicable"`
}
