package mapping

import (
	"github.com/sahajlabs/bahikhata/internal/core/domain"
	"github.com/sahajlabs/bahikhata/internal/models"
)

// ToModelItem converts a domain Item to a model Item
func ToModelItem(d domain.Item) models.Item {
	return models.Item{
		ItemID:      d.ItemID,
		Name:        d.Name,
		HSNCode:     d.HSNCode,
		Price:       d.Price,
		GSTRate:     d.GSTRate,
		Unit:        d.Unit,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainItem converts a model Item to a domain Item
func ToDomainItem(m models.Item) domain.Item {
	return domain.Item{
		ItemID:      m.ItemID,
		Name:        m.Name,
		HSNCode:     m.HSNCode,
		Price:       m.Price,
		GSTRate:     m.GSTRate,
		Unit:        m.Unit,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainItemSlice converts a slice of model Items to a slice of domain Items
func ToDomainItemSlice(ms []models.Item) []domain.Item {
	ds := make([]domain.Item, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainItem(m)
	}
	return ds
}
