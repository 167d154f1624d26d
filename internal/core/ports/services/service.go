package services

import "context"

// ServiceContainer holds instances of all the application services. Handlers
// reach service functionality exclusively through this container.
type ServiceContainer struct {
	Account   AccountSvcFacade
	Item      ItemSvcFacade
	Voucher   VoucherSvcFacade
	Ledger    LedgerSvcFacade
	Reporting ReportingSvcFacade
}

// StaticDataService seeds reference data (the default chart of accounts and
// item catalog) into an empty store.
type StaticDataService interface {
	InitializeStaticData(ctx context.Context) error
}
