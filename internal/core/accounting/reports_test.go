package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahajlabs/bahikhata/internal/core/accounting"
	"github.com/sahajlabs/bahikhata/internal/core/domain"
)

func TestProfitAndLoss_SignConvention(t *testing.T) {
	chart := testChart()

	t.Run("profit when income exceeds expense", func(t *testing.T) {
		entries := accounting.RebuildLedger([]domain.Voucher{salesVoucher(), purchaseVoucher()}, chart)
		rows, _ := accounting.TrialBalance(entries, chart)

		report := accounting.ProfitAndLoss(rows, chart)

		assert.True(t, report.Income.Equal(dec(1000)))
		assert.True(t, report.Expense.Equal(dec(500)))
		assert.True(t, report.NetProfit.Equal(dec(500)))
		assert.True(t, report.NetProfit.IsPositive())
	})

	t.Run("loss is negative", func(t *testing.T) {
		entries := accounting.RebuildLedger([]domain.Voucher{purchaseVoucher()}, chart)
		rows, _ := accounting.TrialBalance(entries, chart)

		report := accounting.ProfitAndLoss(rows, chart)

		assert.True(t, report.Income.IsZero())
		assert.True(t, report.Expense.Equal(dec(500)))
		assert.True(t, report.NetProfit.Equal(dec(-500)))
	})
}

func TestSummarizeGST(t *testing.T) {
	chart := testChart()
	entries := accounting.RebuildLedger([]domain.Voucher{salesVoucher(), purchaseVoucher()}, chart)

	summary := accounting.SummarizeGST(entries, chart)

	// Sales output 90+90, purchase input 45+45.
	assert.True(t, summary.OutputTax.Equal(dec(180)))
	assert.True(t, summary.InputTax.Equal(dec(90)))
	assert.True(t, summary.NetPayable.Equal(dec(90)))
}

func TestSummarizeGST_RefundableWhenInputExceedsOutput(t *testing.T) {
	chart := testChart()
	entries := accounting.RebuildLedger([]domain.Voucher{purchaseVoucher()}, chart)

	summary := accounting.SummarizeGST(entries, chart)

	assert.True(t, summary.OutputTax.IsZero())
	assert.True(t, summary.InputTax.Equal(dec(90)))
	assert.True(t, summary.NetPayable.Equal(dec(-90)))
}

func TestSummarizeGST_IgnoresNonTaxAccounts(t *testing.T) {
	chart := testChart()
	entries := []domain.LedgerEntry{
		{EntryID: "a-1", AccountID: "acc_sales", Credit: dec(1000)},
		{EntryID: "a-2", AccountID: "acc_customer_a", Debit: dec(1000)},
	}

	summary := accounting.SummarizeGST(entries, chart)

	assert.True(t, summary.InputTax.IsZero())
	assert.True(t, summary.OutputTax.IsZero())
	assert.True(t, summary.NetPayable.IsZero())
}

func TestBuildLedgerBook_RunningBalance(t *testing.T) {
	chart := testChart()
	receipt := domain.Voucher{
		VoucherID:      "vch_r",
		Type:           domain.Receipt,
		PartyAccountID: "acc_hdfc",
		LineItems:      []domain.VoucherLineItem{{AccountID: "acc_customer_a", Description: "Tech Solutions Ltd", Amount: dec(1180)}},
	}
	entries := accounting.RebuildLedger([]domain.Voucher{salesVoucher(), receipt}, chart)

	var customer domain.Account
	for _, acc := range chart {
		if acc.AccountID == "acc_customer_a" {
			customer = acc
		}
	}

	book := accounting.BuildLedgerBook(entries, customer)

	require.Len(t, book.Lines, 2)
	// Sales debits the debtor 1180, the receipt credits it back down.
	assert.True(t, book.Lines[0].Balance.Equal(dec(1180)))
	assert.Equal(t, domain.DebitBalance, book.Lines[0].Side)
	assert.True(t, book.Lines[1].Balance.IsZero())
	assert.Equal(t, domain.DebitBalance, book.Lines[1].Side)
	assert.True(t, book.ClosingBalance.IsZero())
	assert.Equal(t, domain.DebitBalance, book.ClosingSide)
}

func TestBuildLedgerBook_StartsFromOpeningBalance(t *testing.T) {
	account := domain.Account{AccountID: "acc_hdfc", Name: "HDFC Bank", OpeningBalance: dec(150000)}
	entries := []domain.LedgerEntry{
		{EntryID: "v-1", AccountID: "acc_hdfc", Credit: dec(200000)},
	}

	book := accounting.BuildLedgerBook(entries, account)

	assert.True(t, book.OpeningBalance.Equal(dec(150000)))
	require.Len(t, book.Lines, 1)
	assert.True(t, book.Lines[0].Balance.Equal(dec(50000)))
	assert.Equal(t, domain.CreditBalance, book.Lines[0].Side)
	assert.True(t, book.ClosingBalance.Equal(dec(50000)))
	assert.Equal(t, domain.CreditBalance, book.ClosingSide)
}

func TestBuildLedgerBook_EmptyForInactiveAccount(t *testing.T) {
	account := domain.Account{AccountID: "acc_electricity", OpeningBalance: decimal.Zero}

	book := accounting.BuildLedgerBook(nil, account)

	assert.Empty(t, book.Lines)
	assert.True(t, book.ClosingBalance.IsZero())
	assert.Equal(t, domain.DebitBalance, book.ClosingSide)
}
