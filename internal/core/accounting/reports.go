package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/sahajlabs/bahikhata/internal/core/domain"
)

// ProfitAndLoss nets income accounts against expense accounts over trial
// balance rows. Income contributes its net credit, expense its net debit; a
// negative NetProfit denotes a loss.
func ProfitAndLoss(rows []domain.TrialBalanceRow, accounts []domain.Account) domain.PAndLReport {
	groups := make(map[string]domain.AccountGroup, len(accounts))
	for _, acc := range accounts {
		groups[acc.AccountID] = acc.Group
	}

	income := decimal.Zero
	expense := decimal.Zero
	for _, row := range rows {
		switch groups[row.AccountID] {
		case domain.Income:
			income = income.Add(row.NetCredit)
		case domain.Expense:
			expense = expense.Add(row.NetDebit)
		}
	}

	return domain.PAndLReport{
		Income:    income,
		Expense:   expense,
		NetProfit: income.Sub(expense),
	}
}

// SummarizeGST partitions tax-duty entries by the tax role of their account:
// debits on input-role accounts accumulate input tax credit, credits on
// output-role accounts accumulate output tax liability. NetPayable is what is
// owed to the tax authority; negative means a refundable credit.
func SummarizeGST(entries []domain.LedgerEntry, accounts []domain.Account) domain.GSTSummary {
	roles := make(map[string]domain.TaxRole, len(accounts))
	for _, acc := range accounts {
		if acc.TaxRole != domain.TaxRoleNone {
			roles[acc.AccountID] = acc.TaxRole
		}
	}

	input := decimal.Zero
	output := decimal.Zero
	for _, entry := range entries {
		role, ok := roles[entry.AccountID]
		if !ok {
			continue
		}
		if role.IsInput() && entry.Debit.IsPositive() {
			input = input.Add(entry.Debit)
		}
		if role.IsOutput() && entry.Credit.IsPositive() {
			output = output.Add(entry.Credit)
		}
	}

	return domain.GSTSummary{
		InputTax:   input,
		OutputTax:  output,
		NetPayable: output.Sub(input),
	}
}

func balanceSide(balance decimal.Decimal) domain.BalanceSide {
	if balance.IsNegative() {
		return domain.CreditBalance
	}
	return domain.DebitBalance
}

// BuildLedgerBook filters the entry set down to one account and threads a
// running balance through it, starting from the account's opening balance.
// Entries are assumed chronological because vouchers post in creation order.
func BuildLedgerBook(entries []domain.LedgerEntry, account domain.Account) domain.LedgerBook {
	book := domain.LedgerBook{
		AccountID:      account.AccountID,
		AccountName:    account.Name,
		OpeningBalance: account.OpeningBalance,
	}

	balance := account.OpeningBalance
	for _, entry := range entries {
		if entry.AccountID != account.AccountID {
			continue
		}
		balance = balance.Add(entry.Debit).Sub(entry.Credit)
		book.Lines = append(book.Lines, domain.LedgerBookLine{
			EntryID:     entry.EntryID,
			Date:        entry.Date,
			VoucherID:   entry.VoucherID,
			VoucherType: entry.VoucherType,
			Description: entry.Description,
			Debit:       entry.Debit,
			Credit:      entry.Credit,
			Balance:     balance.Abs(),
			Side:        balanceSide(balance),
		})
	}

	book.ClosingBalance = balance.Abs()
	book.ClosingSide = balanceSide(balance)
	return book
}
