package models

import (
	"github.com/shopspring/decimal"
)

// Account represents a row of the chart of accounts.
// TaxRole is empty for every account outside the DUTIES_TAXES sub-group.
type Account struct {
	AccountID      string          `db:"account_id"`
	Name           string          `db:"name"`
	AccountGroup   string          `db:"account_group"`
	SubGroup       string          `db:"sub_group"`
	TaxRole        string          `db:"tax_role"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	AuditFields
}
