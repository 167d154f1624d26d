package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sahajlabs/bahikhata/internal/apperrors"
	portssvc "github.com/sahajlabs/bahikhata/internal/core/ports/services"
	"github.com/sahajlabs/bahikhata/internal/dto"
	"github.com/sahajlabs/bahikhata/internal/middleware"
)

// voucherHandler handles HTTP requests related to vouchers.
type voucherHandler struct {
	voucherService   portssvc.VoucherSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

// newVoucherHandler creates a new voucherHandler.
func newVoucherHandler(vs portssvc.VoucherSvcFacade, rs portssvc.ReportingSvcFacade) *voucherHandler {
	return &voucherHandler{
		voucherService:   vs,
		reportingService: rs,
	}
}

// registerVoucherRoutes registers routes related to vouchers.
func registerVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := newVoucherHandler(voucherService, reportingService)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:id", h.getVoucherByID)
		vouchers.GET("/:id/entries", h.getVoucherEntries)
		vouchers.POST("/check-compliance", h.checkCompliance)
	}
}

// createVoucher godoc
// @Summary Record a voucher
// @Description Records a voucher; its ledger effect is derived on demand
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   voucher body dto.CreateVoucherRequest true "Voucher details"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Voucher number already exists"
// @Failure 500 {object} map[string]string "Failed to record voucher"
// @Router /vouchers [post]
func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	voucher, err := h.voucherService.CreateVoucher(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to reuse voucher number", slog.String("voucher_number", req.VoucherNumber))
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Voucher number '%s' already exists", req.VoucherNumber)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording voucher", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record voucher in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record voucher"})
		}
		return
	}

	logger.Info("Voucher recorded successfully", slog.String("voucher_id", voucher.VoucherID))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(*voucher))
}

// getVoucherByID godoc
// @Summary Get a voucher by id
// @Description Retrieves a voucher with its line items
// @Tags vouchers
// @Produce  json
// @Param   id path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 500 {object} map[string]string "Failed to retrieve voucher"
// @Router /vouchers/{id} [get]
func (h *voucherHandler) getVoucherByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("id")

	voucher, err := h.voucherService.GetVoucherByID(c.Request.Context(), voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Voucher not found", slog.String("voucher_id", voucherID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
		} else {
			logger.Error("Failed to get voucher from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve voucher"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(*voucher))
}

// listVouchers godoc
// @Summary List vouchers
// @Description Retrieves the full voucher history in creation order
// @Tags vouchers
// @Produce  json
// @Success 200 {object} dto.ListVouchersResponse
// @Failure 500 {object} map[string]string "Failed to list vouchers"
// @Router /vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	vouchers, err := h.voucherService.ListVouchers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list vouchers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vouchers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListVouchersResponse(vouchers))
}

// getVoucherEntries godoc
// @Summary Preview the ledger entries of a voucher
// @Description Expands a stored voucher into the double-entry lines it posts
// @Tags vouchers
// @Produce  json
// @Param   id path string true "Voucher ID"
// @Success 200 {object} dto.VoucherEntriesResponse
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 500 {object} map[string]string "Failed to derive entries"
// @Router /vouchers/{id}/entries [get]
func (h *voucherHandler) getVoucherEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("id")

	entries, err := h.voucherService.GetVoucherEntries(c.Request.Context(), voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Voucher not found for entry preview", slog.String("voucher_id", voucherID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
		} else {
			logger.Error("Failed to derive voucher entries", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive entries"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.VoucherEntriesResponse{
		VoucherID: voucherID,
		Entries:   dto.ToLedgerEntryResponses(entries),
	})
}

// checkCompliance godoc
// @Summary Check compliance flags for a voucher draft
// @Description Evaluates e-way bill and e-invoice applicability without recording anything
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   voucher body dto.CreateVoucherRequest true "Voucher draft"
// @Success 200 {object} dto.ComplianceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to check compliance"
// @Router /vouchers/check-compliance [post]
func (h *voucherHandler) checkCompliance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CheckCompliance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	flags, err := h.reportingService.CheckCompliance(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to check compliance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check compliance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToComplianceResponse(*flags))
}
