package mapping

import (
	"github.com/sahajlabs/bahikhata/internal/core/domain"
	"github.com/sahajlabs/bahikhata/internal/models"
)

// ToModelVoucher converts a domain Voucher header to a model Voucher.
// Lines are mapped separately; they live in their own table.
func ToModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		VoucherID:      d.VoucherID,
		VoucherDate:    d.Date,
		VoucherType:    string(d.Type),
		VoucherNumber:  d.VoucherNumber,
		PartyAccountID: d.PartyAccountID,
		Narration:      d.Narration,
		TotalAmount:    d.TotalAmount,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToModelVoucherLine converts one domain voucher line. LineNo records the
// position of the line within the voucher.
func ToModelVoucherLine(voucherID string, lineNo int, l domain.VoucherLineItem) models.VoucherLineItem {
	return models.VoucherLineItem{
		LineItemID:  l.LineItemID,
		VoucherID:   voucherID,
		LineNo:      lineNo,
		ItemID:      l.ItemID,
		AccountID:   l.AccountID,
		Description: l.Description,
		Qty:         l.Qty,
		Rate:        l.Rate,
		Amount:      l.Amount,
		GSTRate:     l.GSTRate,
		IGST:        l.IGST,
		CGST:        l.CGST,
		SGST:        l.SGST,
		IsDebit:     l.IsDebit,
	}
}

// ToDomainVoucher converts a model Voucher header plus its ordered lines.
func ToDomainVoucher(m models.Voucher, lines []models.VoucherLineItem) domain.Voucher {
	d := domain.Voucher{
		VoucherID:      m.VoucherID,
		Date:           m.VoucherDate,
		Type:           domain.VoucherType(m.VoucherType),
		VoucherNumber:  m.VoucherNumber,
		PartyAccountID: m.PartyAccountID,
		LineItems:      make([]domain.VoucherLineItem, len(lines)),
		Narration:      m.Narration,
		TotalAmount:    m.TotalAmount,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	for i, l := range lines {
		d.LineItems[i] = domain.VoucherLineItem{
			LineItemID:  l.LineItemID,
			ItemID:      l.ItemID,
			AccountID:   l.AccountID,
			Description: l.Description,
			Qty:         l.Qty,
			Rate:        l.Rate,
			Amount:      l.Amount,
			GSTRate:     l.GSTRate,
			IGST:        l.IGST,
			CGST:        l.CGST,
			SGST:        l.SGST,
			IsDebit:     l.IsDebit,
		}
	}
	return d
}
