package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sahajlabs/bahikhata/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerAccountRoutes(v1, service.Account)
	registerItemRoutes(v1, service.Item)
	registerVoucherRoutes(v1, service.Voucher, service.Reporting)
	registerReportingRoutes(v1, service.Reporting, service.Ledger)
}
