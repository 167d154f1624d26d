package dto

import (
	"github.com/shopspring/decimal"

	"github.com/sahajlabs/bahikhata/internal/core/domain"
)

// TrialBalanceRowResponse represents a row in the trial balance report.
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
	NetDebit    decimal.Decimal `json:"netDebit"`
	NetCredit   decimal.Decimal `json:"netCredit"`
}

// TrialBalanceResponse is the trial balance report. Orphans lists entries
// whose account id matched no account in the chart; a non-empty list means a
// posting is misrouted.
type TrialBalanceResponse struct {
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		NetDebit  decimal.Decimal `json:"netDebit"`
		NetCredit decimal.Decimal `json:"netCredit"`
	} `json:"totals"`
	Orphans []LedgerEntryResponse `json:"orphans,omitempty"`
}

// ProfitAndLossResponse is the profit and loss report.
type ProfitAndLossResponse struct {
	Income    decimal.Decimal `json:"income"`
	Expense   decimal.Decimal `json:"expense"`
	NetProfit decimal.Decimal `json:"netProfit"`
}

// GSTSummaryResponse is the GST input/output/payable report.
type GSTSummaryResponse struct {
	InputTax   decimal.Decimal `json:"inputTax"`
	OutputTax  decimal.Decimal `json:"outputTax"`
	NetPayable decimal.Decimal `json:"netPayable"`
}

// LedgerBookLineResponse is one line of a per-account ledger book.
type LedgerBookLineResponse struct {
	EntryID     string             `json:"entryID"`
	Date        string             `json:"date"`
	VoucherID   string             `json:"voucherID"`
	VoucherType domain.VoucherType `json:"voucherType"`
	Description string             `json:"description"`
	Debit       decimal.Decimal    `json:"debit"`
	Credit      decimal.Decimal    `json:"credit"`
	Balance     decimal.Decimal    `json:"balance"`
	Side        domain.BalanceSide `json:"side"`
}

// LedgerBookResponse is the detailed transaction view of a single account.
type LedgerBookResponse struct {
	AccountID      string                   `json:"accountID"`
	AccountName    string                   `json:"accountName"`
	OpeningBalance decimal.Decimal          `json:"openingBalance"`
	Lines          []LedgerBookLineResponse `json:"lines"`
	ClosingBalance decimal.Decimal          `json:"closingBalance"`
	ClosingSide    domain.BalanceSide       `json:"closingSide"`
}

// ComplianceResponse carries the advisory flags for a voucher draft.
type ComplianceResponse struct {
	EWayBillRequired   bool `json:"eWayBillRequired"`
	EInvoiceApplicable bool `json:"eInvoiceApplicable"`
}

// ToTrialBalanceResponse converts trial balance rows and orphan entries.
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow, orphans []domain.LedgerEntry) TrialBalanceResponse {
	resp := TrialBalanceResponse{Rows: make([]TrialBalanceRowResponse, len(rows))}

	netDebit := decimal.Zero
	netCredit := decimal.Zero
	for i, row := range rows {
		resp.Rows[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			AccountName: row.AccountName,
			DebitTotal:  row.DebitTotal,
			CreditTotal: row.CreditTotal,
			NetDebit:    row.NetDebit,
			NetCredit:   row.NetCredit,
		}
		netDebit = netDebit.Add(row.NetDebit)
		netCredit = netCredit.Add(row.NetCredit)
	}
	resp.Totals.NetDebit = netDebit
	resp.Totals.NetCredit = netCredit

	if len(orphans) > 0 {
		resp.Orphans = ToLedgerEntryResponses(orphans)
	}
	return resp
}

// ToProfitAndLossResponse converts a domain P&L report.
func ToProfitAndLossResponse(report domain.PAndLReport) ProfitAndLossResponse {
	return ProfitAndLossResponse{
		Income:    report.Income,
		Expense:   report.Expense,
		NetProfit: report.NetProfit,
	}
}

// ToGSTSummaryResponse converts a domain GST summary.
func ToGSTSummaryResponse(summary domain.GSTSummary) GSTSummaryResponse {
	return GSTSummaryResponse{
		InputTax:   summary.InputTax,
		OutputTax:  summary.OutputTax,
		NetPayable: summary.NetPayable,
	}
}

// ToLedgerBookResponse converts a domain ledger book.
func ToLedgerBookResponse(book domain.LedgerBook) LedgerBookResponse {
	resp := LedgerBookResponse{
		AccountID:      book.AccountID,
		AccountName:    book.AccountName,
		OpeningBalance: book.OpeningBalance,
		Lines:          make([]LedgerBookLineResponse, len(book.Lines)),
		ClosingBalance: book.ClosingBalance,
		ClosingSide:    book.ClosingSide,
	}
	for i, line := range book.Lines {
		resp.Lines[i] = LedgerBookLineResponse{
			EntryID:     line.EntryID,
			Date:        line.Date.Format(VoucherDateFormat),
			VoucherID:   line.VoucherID,
			VoucherType: line.VoucherType,
			Description: line.Description,
			Debit:       line.Debit,
			Credit:      line.Credit,
			Balance:     line.Balance,
			Side:        line.Side,
		}
	}
	return resp
}

// ToComplianceResponse converts domain compliance flags.
func ToComplianceResponse(flags domain.ComplianceFlags) ComplianceResponse {
	return ComplianceResponse{
		EWayBillRequired:   flags.EWayBillRequired,
		EInvoiceApplicable: flags.EInvoiceApplicable,
	}
}
