package domain

import (
	"github.com/shopspring/decimal"
)

// AccountGroup defines the fundamental accounting classification of an account.
type AccountGroup string

const (
	Asset     AccountGroup = "ASSET"
	Liability AccountGroup = "LIABILITY"
	Equity    AccountGroup = "EQUITY"
	Income    AccountGroup = "INCOME"
	Expense   AccountGroup = "EXPENSE"
)

// AccountSubGroup refines the group into the ledger classifications used by
// Indian bookkeeping (Tally-style grouping).
type AccountSubGroup string

const (
	CurrentAsset    AccountSubGroup = "CURRENT_ASSET"
	FixedAsset      AccountSubGroup = "FIXED_ASSET"
	CashBank        AccountSubGroup = "CASH_BANK"
	SundryDebtor    AccountSubGroup = "SUNDRY_DEBTOR"   // Customers
	SundryCreditor  AccountSubGroup = "SUNDRY_CREDITOR" // Suppliers
	DutiesTaxes     AccountSubGroup = "DUTIES_TAXES"
	SalesAccount    AccountSubGroup = "SALES_ACCOUNT"
	PurchaseAccount AccountSubGroup = "PURCHASE_ACCOUNT"
	IndirectExpense AccountSubGroup = "INDIRECT_EXPENSE"
	DirectExpense   AccountSubGroup = "DIRECT_EXPENSE"
	CapitalAccount  AccountSubGroup = "CAPITAL_ACCOUNT"
)

// TaxRole tags a duties-and-taxes account with the GST component it
// accumulates. Posting resolves tax accounts through this tag instead of
// matching substrings in account ids.
type TaxRole string

const (
	TaxRoleNone       TaxRole = ""
	TaxRoleInputCGST  TaxRole = "INPUT_CGST"
	TaxRoleInputSGST  TaxRole = "INPUT_SGST"
	TaxRoleInputIGST  TaxRole = "INPUT_IGST"
	TaxRoleOutputCGST TaxRole = "OUTPUT_CGST"
	TaxRoleOutputSGST TaxRole = "OUTPUT_SGST"
	TaxRoleOutputIGST TaxRole = "OUTPUT_IGST"
)

// IsInput reports whether the role accumulates input tax credit.
func (r TaxRole) IsInput() bool {
	return r == TaxRoleInputCGST || r == TaxRoleInputSGST || r == TaxRoleInputIGST
}

// IsOutput reports whether the role accumulates output tax liability.
func (r TaxRole) IsOutput() bool {
	return r == TaxRoleOutputCGST || r == TaxRoleOutputSGST || r == TaxRoleOutputIGST
}

// Account represents a ledger account in the chart of accounts.
// Accounts are created once (seed or masters API) and treated as immutable
// for the lifetime of a ledger computation.
type Account struct {
	AccountID      string          `json:"accountID"` // Primary Key
	Name           string          `json:"name"`
	Group          AccountGroup    `json:"group"`
	SubGroup       AccountSubGroup `json:"subGroup"`
	TaxRole        TaxRole         `json:"taxRole,omitempty"`
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Positive = net debit, negative = net credit
	AuditFields
}
