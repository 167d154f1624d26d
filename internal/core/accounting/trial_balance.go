package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/sahajlabs/bahikhata/internal/core/domain"
)

// TrialBalance aggregates ledger entries into per-account net debit/credit
// rows, in chart-of-accounts order. Accounts with no activity are omitted.
// Entries whose account id matches no account are not silently dropped: they
// are returned as the orphans slice so a misrouted posting stays observable.
func TrialBalance(entries []domain.LedgerEntry, accounts []domain.Account) ([]domain.TrialBalanceRow, []domain.LedgerEntry) {
	index := make(map[string]int, len(accounts))
	rows := make([]domain.TrialBalanceRow, len(accounts))
	for i, acc := range accounts {
		index[acc.AccountID] = i
		rows[i] = domain.TrialBalanceRow{
			AccountID:   acc.AccountID,
			AccountName: acc.Name,
			DebitTotal:  decimal.Zero,
			CreditTotal: decimal.Zero,
			NetDebit:    decimal.Zero,
			NetCredit:   decimal.Zero,
		}
	}

	var orphans []domain.LedgerEntry
	for _, entry := range entries {
		i, ok := index[entry.AccountID]
		if !ok {
			orphans = append(orphans, entry)
			continue
		}
		rows[i].DebitTotal = rows[i].DebitTotal.Add(entry.Debit)
		rows[i].CreditTotal = rows[i].CreditTotal.Add(entry.Credit)
	}

	result := make([]domain.TrialBalanceRow, 0, len(rows))
	for _, row := range rows {
		if row.DebitTotal.IsZero() && row.CreditTotal.IsZero() {
			continue
		}
		if row.DebitTotal.GreaterThan(row.CreditTotal) {
			row.NetDebit = row.DebitTotal.Sub(row.CreditTotal)
		} else {
			row.NetCredit = row.CreditTotal.Sub(row.DebitTotal)
		}
		result = append(result, row)
	}
	return result, orphans
}
