package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/sahajlabs/bahikhata/internal/core/domain"
)

// EWayBillThreshold is the consignment value above which goods movement
// requires an e-way bill. Fixed by regulation, not configuration.
var EWayBillThreshold = decimal.NewFromInt(50000)

// CheckCompliance evaluates the advisory GST compliance flags for a voucher
// draft. The total is recomputed from the lines so a draft without a cached
// total is evaluated correctly.
func CheckCompliance(v domain.Voucher, accounts []domain.Account) domain.ComplianceFlags {
	var flags domain.ComplianceFlags

	total := v.ComputeTotal()
	if total.GreaterThan(EWayBillThreshold) && (v.Type == domain.Sales || v.Type == domain.Purchase) {
		flags.EWayBillRequired = true
	}

	// B2B is approximated by the party being a sundry debtor or creditor.
	var party *domain.Account
	for i := range accounts {
		if accounts[i].AccountID == v.PartyAccountID {
			party = &accounts[i]
			break
		}
	}
	if party != nil && (party.SubGroup == domain.SundryDebtor || party.SubGroup == domain.SundryCreditor) &&
		(v.Type == domain.Sales || v.Type == domain.CreditNote) {
		flags.EInvoiceApplicable = true
	}

	return flags
}
