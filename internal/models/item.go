package models

import (
	"github.com/shopspring/decimal"
)

// Item represents a row of the item catalog.
type Item struct {
	ItemID  string          `db:"item_id"`
	Name    string          `db:"name"`
	HSNCode string          `db:"hsn_code"`
	Price   decimal.Decimal `db:"price"`
	GSTRate decimal.Decimal `db:"gst_rate"`
	Unit    string          `db:"unit"`
	AuditFields
}
