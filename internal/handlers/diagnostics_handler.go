package handlers

import (
	"net/http"

	"credit-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// DiagnosticsHandler reports what the record store holds
type DiagnosticsHandler struct {
	accountService services.AccountServiceInterface
}

// NewDiagnosticsHandler creates a new diagnostics handler
func NewDiagnosticsHandler(accountService services.AccountServiceInterface) *DiagnosticsHandler {
	return &DiagnosticsHandler{accountService: accountService}
}

// GetDiagnostics always answers 200; an unreachable store shows up as accessible=false
// @Summary Store diagnostics
// @Tags Health
// @Produce json
// @Success 200 {object} models.StoreDiagnostics
// @Router /diagnostics [get]
func (h *DiagnosticsHandler) GetDiagnostics(c echo.Context) error {
	return c.JSON(http.StatusOK, h.accountService.Diagnostics(c.Request().Context(), getUserID(c)))
}
