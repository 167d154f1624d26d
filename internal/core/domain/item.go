package domain

import "github.com/shopspring/decimal"

// Item is a catalog entry used to pre-fill voucher lines. It carries no
// accounting semantics of its own.
type Item struct {
	ItemID  string          `json:"itemID"` // Primary Key
	Name    string          `json:"name"`
	HSNCode string          `json:"hsnCode"` // Harmonized System of Nomenclature code
	Price   decimal.Decimal `json:"price"`   // Unit price
	GSTRate decimal.Decimal `json:"gstRate"` // Percentage, e.g. 18
	Unit    string          `json:"unit"`    // Unit of measure, e.g. "Nos"
	AuditFields
}
