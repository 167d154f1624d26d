package services

import (
	"context"

	"github.com/sahajlabs/bahikhata/internal/core/domain"
)

// LedgerSvcFacade rebuilds the derived ledger entry set from the stored
// voucher history. The rebuild is a full recompute: identical inputs always
// reproduce identical entries.
type LedgerSvcFacade interface {
	RebuildLedger(ctx context.Context) ([]domain.LedgerEntry, error)
}
