package services

import (
	"github.com/shopspring/decimal"

	"github.com/sahajlabs/bahikhata/internal/core/domain"
)

// DefaultAccounts is the starter chart of accounts seeded into an empty
// store. It covers cash and bank, trading accounts, one sample party on each
// side, and the six GST duty accounts with their tax roles.
func DefaultAccounts() []domain.Account {
	return []domain.Account{
		{AccountID: "acc_cash", Name: "Cash in Hand", Group: domain.Asset, SubGroup: domain.CashBank, OpeningBalance: decimal.NewFromInt(50000)},
		{AccountID: "acc_hdfc", Name: "HDFC Bank", Group: domain.Asset, SubGroup: domain.CashBank, OpeningBalance: decimal.NewFromInt(150000)},
		{AccountID: "acc_sales", Name: "Sales Account", Group: domain.Income, SubGroup: domain.SalesAccount},
		{AccountID: "acc_purchase", Name: "Purchase Account", Group: domain.Expense, SubGroup: domain.PurchaseAccount},
		{AccountID: "acc_customer_a", Name: "Tech Solutions Ltd (Customer)", Group: domain.Asset, SubGroup: domain.SundryDebtor},
		{AccountID: "acc_vendor_x", Name: "Office Mart (Supplier)", Group: domain.Liability, SubGroup: domain.SundryCreditor},
		{AccountID: "acc_input_cgst", Name: "Input CGST", Group: domain.Asset, SubGroup: domain.DutiesTaxes, TaxRole: domain.TaxRoleInputCGST},
		{AccountID: "acc_input_sgst", Name: "Input SGST", Group: domain.Asset, SubGroup: domain.DutiesTaxes, TaxRole: domain.TaxRoleInputSGST},
		{AccountID: "acc_input_igst", Name: "Input IGST", Group: domain.Asset, SubGroup: domain.DutiesTaxes, TaxRole: domain.TaxRoleInputIGST},
		{AccountID: "acc_output_cgst", Name: "Output CGST", Group: domain.Liability, SubGroup: domain.DutiesTaxes, TaxRole: domain.TaxRoleOutputCGST},
		{AccountID: "acc_output_sgst", Name: "Output SGST", Group: domain.Liability, SubGroup: domain.DutiesTaxes, TaxRole: domain.TaxRoleOutputSGST},
		{AccountID: "acc_output_igst", Name: "Output IGST", Group: domain.Liability, SubGroup: domain.DutiesTaxes, TaxRole: domain.TaxRoleOutputIGST},
		{AccountID: "acc_electricity", Name: "Electricity Expense", Group: domain.Expense, SubGroup: domain.IndirectExpense},
	}
}

// DefaultItems is the starter item catalog seeded into an empty store.
func DefaultItems() []domain.Item {
	return []domain.Item{
		{ItemID: "item_laptop", Name: "Dell Laptop", HSNCode: "8471", Price: decimal.NewFromInt(45000), GSTRate: decimal.NewFromInt(18), Unit: "Nos"},
		{ItemID: "item_mouse", Name: "Logitech Mouse", HSNCode: "8471", Price: decimal.NewFromInt(500), GSTRate: decimal.NewFromInt(18), Unit: "Nos"},
		{ItemID: "item_service", Name: "Consulting Service", HSNCode: "9983", Price: decimal.NewFromInt(5000), GSTRate: decimal.NewFromInt(18), Unit: "Hrs"},
		{ItemID: "item_paper", Name: "A4 Paper Rim", HSNCode: "4802", Price: decimal.NewFromInt(200), GSTRate: decimal.NewFromInt(12), Unit: "Pkt"},
	}
}
