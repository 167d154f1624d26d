package mapping

import (
	"github.com/sahajlabs/bahikhata/internal/core/domain"
	"github.com/sahajlabs/bahikhata/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		Name:           d.Name,
		AccountGroup:   string(d.Group),
		SubGroup:       string(d.SubGroup),
		TaxRole:        string(d.TaxRole),
		OpeningBalance: d.OpeningBalance,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		Name:           m.Name,
		Group:          domain.AccountGroup(m.AccountGroup),
		SubGroup:       domain.AccountSubGroup(m.SubGroup),
		TaxRole:        domain.TaxRole(m.TaxRole),
		OpeningBalance: m.OpeningBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
