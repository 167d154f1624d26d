// Package accounting holds the pure posting and reporting engine: the
// transformation from vouchers to balanced ledger entries and the aggregations
// that derive reports from the entry set. Nothing in this package performs
// I/O, mutates its inputs, or returns errors; degenerate input yields empty
// output.
package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sahajlabs/bahikhata/internal/core/domain"
)

// TaxAccounts maps each GST tax role to the account id that accumulates it.
// It is resolved once per chart of accounts; posting never inspects account
// ids directly.
type TaxAccounts map[domain.TaxRole]string

// ResolveTaxAccounts builds the role index for a chart of accounts. When two
// accounts carry the same role the first one wins, matching chart iteration
// order everywhere else in the engine.
func ResolveTaxAccounts(accounts []domain.Account) TaxAccounts {
	tax := make(TaxAccounts)
	for _, acc := range accounts {
		if acc.TaxRole == domain.TaxRoleNone {
			continue
		}
		if _, taken := tax[acc.TaxRole]; !taken {
			tax[acc.TaxRole] = acc.AccountID
		}
	}
	return tax
}

// entryBuilder numbers entries sequentially within one voucher so that entry
// ids are reproducible across recomputations.
type entryBuilder struct {
	voucher domain.Voucher
	seq     int
	entries []domain.LedgerEntry
}

func (b *entryBuilder) add(accountID string, debit, credit decimal.Decimal, description string) {
	b.entries = append(b.entries, domain.LedgerEntry{
		EntryID:     fmt.Sprintf("%s-%d", b.voucher.VoucherID, b.seq),
		Date:        b.voucher.Date,
		VoucherID:   b.voucher.VoucherID,
		VoucherType: b.voucher.Type,
		AccountID:   accountID,
		Description: description,
		Debit:       debit,
		Credit:      credit,
	})
	b.seq++
}

// postingRule expands one voucher type into its ledger entries. Registering a
// rule here is the extension point for voucher types that are currently
// posted as no-ops.
type postingRule func(b *entryBuilder, v domain.Voucher, tax TaxAccounts)

var postingRules = map[domain.VoucherType]postingRule{
	domain.Sales:    postSales,
	domain.Purchase: postPurchase,
	domain.Receipt:  postReceipt,
	domain.Payment:  postPayment,
	// Contra, Journal, DebitNote, CreditNote and Expense vouchers are
	// recorded but produce no ledger entries yet. Their rules go here once
	// their posting semantics are settled.
	domain.Contra:         postNothing,
	domain.Journal:        postNothing,
	domain.DebitNote:      postNothing,
	domain.CreditNote:     postNothing,
	domain.ExpenseVoucher: postNothing,
}

// PostVoucher expands a voucher into its ordered double-entry ledger entries:
// the header entry against the party account first, then one block per line
// item (principal entry followed by IGST, CGST, SGST components) in line
// order. It is total and deterministic: unknown account ids are passed
// through verbatim, zero-amount lines still post zero-valued entries, and
// voucher types without a posting rule yield no entries.
func PostVoucher(v domain.Voucher, tax TaxAccounts) []domain.LedgerEntry {
	rule, ok := postingRules[v.Type]
	if !ok {
		return nil
	}
	b := &entryBuilder{voucher: v, seq: 1}
	rule(b, v, tax)
	return b.entries
}

func postSales(b *entryBuilder, v domain.Voucher, tax TaxAccounts) {
	// Debtor owes the gross invoice value.
	b.add(v.PartyAccountID, v.TotalAmount, decimal.Zero, fmt.Sprintf("Sales Invoice #%s", v.VoucherNumber))

	for _, line := range v.LineItems {
		b.add(line.AccountID, decimal.Zero, line.Amount, fmt.Sprintf("Sales: %s", line.Description))
		if line.IGST.IsPositive() {
			b.add(tax[domain.TaxRoleOutputIGST], decimal.Zero, line.IGST, fmt.Sprintf("Output IGST on %s", line.Description))
		}
		if line.CGST.IsPositive() {
			b.add(tax[domain.TaxRoleOutputCGST], decimal.Zero, line.CGST, fmt.Sprintf("Output CGST on %s", line.Description))
		}
		if line.SGST.IsPositive() {
			b.add(tax[domain.TaxRoleOutputSGST], decimal.Zero, line.SGST, fmt.Sprintf("Output SGST on %s", line.Description))
		}
	}
}

func postPurchase(b *entryBuilder, v domain.Voucher, tax TaxAccounts) {
	// Creditor is owed the gross invoice value.
	b.add(v.PartyAccountID, decimal.Zero, v.TotalAmount, fmt.Sprintf("Purchase Invoice #%s", v.VoucherNumber))

	for _, line := range v.LineItems {
		b.add(line.AccountID, line.Amount, decimal.Zero, fmt.Sprintf("Purchase: %s", line.Description))
		if line.IGST.IsPositive() {
			b.add(tax[domain.TaxRoleInputIGST], line.IGST, decimal.Zero, fmt.Sprintf("Input IGST on %s", line.Description))
		}
		if line.CGST.IsPositive() {
			b.add(tax[domain.TaxRoleInputCGST], line.CGST, decimal.Zero, fmt.Sprintf("Input CGST on %s", line.Description))
		}
		if line.SGST.IsPositive() {
			b.add(tax[domain.TaxRoleInputSGST], line.SGST, decimal.Zero, fmt.Sprintf("Input SGST on %s", line.Description))
		}
	}
}

func postReceipt(b *entryBuilder, v domain.Voucher, tax TaxAccounts) {
	// The party is the receiving cash/bank account; tax columns are ignored
	// on money vouchers.
	b.add(v.PartyAccountID, v.LineAmountTotal(), decimal.Zero, "Receipt from parties")
	for _, line := range v.LineItems {
		b.add(line.AccountID, decimal.Zero, line.Amount, fmt.Sprintf("Received from %s", line.Description))
	}
}

func postPayment(b *entryBuilder, v domain.Voucher, tax TaxAccounts) {
	// The party is the paying cash/bank account.
	b.add(v.PartyAccountID, decimal.Zero, v.LineAmountTotal(), "Payment to parties")
	for _, line := range v.LineItems {
		b.add(line.AccountID, line.Amount, decimal.Zero, fmt.Sprintf("Paid to %s", line.Description))
	}
}

func postNothing(*entryBuilder, domain.Voucher, TaxAccounts) {}

// RebuildLedger recomputes the full entry set from the voucher history in
// voucher order. Callers treat the result as a repeatable read: the same
// history and chart always reproduce the same entries, ids included.
func RebuildLedger(vouchers []domain.Voucher, accounts []domain.Account) []domain.LedgerEntry {
	tax := ResolveTaxAccounts(accounts)
	var entries []domain.LedgerEntry
	for _, v := range vouchers {
		entries = append(entries, PostVoucher(v, tax)...)
	}
	return entries
}
