package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sahajlabs/bahikhata/internal/apperrors"
	portssvc "github.com/sahajlabs/bahikhata/internal/core/ports/services"
	"github.com/sahajlabs/bahikhata/internal/dto"
	"github.com/sahajlabs/bahikhata/internal/middleware"
)

// reportingHandler handles HTTP requests for derived financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	ledgerService    portssvc.LedgerSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade, ls portssvc.LedgerSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		ledgerService:    ls,
	}
}

// registerReportingRoutes registers the report and ledger routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := newReportingHandler(reportingService, ledgerService)

	rg.GET("/ledger", h.getLedger)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/profit-and-loss", h.getProfitAndLoss)
		reports.GET("/gst-summary", h.getGSTSummary)
		reports.GET("/ledger-book/:accountID", h.getLedgerBook)
	}
}

// getLedger godoc
// @Summary Get the full ledger
// @Description Rebuilds every ledger entry from the stored voucher history
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.LedgerEntryResponse
// @Failure 500 {object} map[string]string "Failed to rebuild ledger"
// @Router /ledger [get]
func (h *reportingHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.ledgerService.RebuildLedger(c.Request.Context())
	if err != nil {
		logger.Error("Failed to rebuild ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rebuild ledger"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponses(entries))
}

// getTrialBalance godoc
// @Summary Get the trial balance
// @Description Per-account net debit/credit rows plus orphaned entries
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 500 {object} map[string]string "Failed to compute trial balance"
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, orphans, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute trial balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(rows, orphans))
}

// getProfitAndLoss godoc
// @Summary Get the profit and loss report
// @Description Income, expense and net profit from the trial balance
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 500 {object} map[string]string "Failed to compute P&L"
// @Router /reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute profit and loss", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute P&L"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(*report))
}

// getGSTSummary godoc
// @Summary Get the GST summary
// @Description Input tax credit, output tax liability and net payable
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.GSTSummaryResponse
// @Failure 500 {object} map[string]string "Failed to compute GST summary"
// @Router /reports/gst-summary [get]
func (h *reportingHandler) getGSTSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.GSTSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute GST summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute GST summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToGSTSummaryResponse(*summary))
}

// getLedgerBook godoc
// @Summary Get the ledger book of an account
// @Description Dated entry history with a running balance from the opening balance
// @Tags reports
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.LedgerBookResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to build ledger book"
// @Router /reports/ledger-book/{accountID} [get]
func (h *reportingHandler) getLedgerBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	book, err := h.reportingService.LedgerBook(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for ledger book", slog.String("account_id", accountID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to build ledger book", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build ledger book"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerBookResponse(*book))
}
