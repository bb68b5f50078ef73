package handlers

import (
	"net/http"
	"time"

	"credit-tracker/internal/dto"
	"credit-tracker/internal/errors"
	"credit-tracker/internal/export"
	"credit-tracker/internal/metrics"
	"credit-tracker/internal/ordering"
	"credit-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler serves the record store endpoints
type AccountHandler struct {
	accountService services.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// ListAccounts returns every account of the owner ordered by position
// @Summary List accounts
// @Tags Accounts
// @Produce json
// @Success 200 {array} models.Account
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.accountService.ListAccounts(c.Request().Context(), getUserID(c))
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, accounts)
}

// CreateAccount appends a new account at the end of the order
// @Summary Create an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} models.Account
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	account, err := h.accountService.CreateAccount(c.Request().Context(), getUserID(c), req.ToPatch())
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, account)
}

// UpdateAccount applies a partial update to one account
// @Summary Update an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body dto.UpdateAccountRequest true "Fields to change"
// @Success 200 {object} models.Account
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return SendError(c, errors.AccountInvalidID)
	}

	var req dto.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	account, err := h.accountService.UpdateAccount(c.Request().Context(), getUserID(c), id, req.ToPatch())
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, account)
}

// DeleteAccount removes one account and closes the gap in the order
// @Summary Delete an account
// @Tags Accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return SendError(c, errors.AccountInvalidID)
	}

	if err := h.accountService.DeleteAccount(c.Request().Context(), getUserID(c), id); err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account deleted successfully"})
}

// ReorderAccount moves one account a single step and returns the new order
// @Summary Move an account up or down
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.ReorderRequest true "Account and direction"
// @Success 200 {array} models.Account
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_002 - Cannot move account in that direction"
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_003 - Invalid direction"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/reorder [post]
func (h *AccountHandler) ReorderAccount(c echo.Context) error {
	var req dto.ReorderRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	dir, err := ordering.ParseDirection(req.Direction)
	if err != nil {
		return SendError(c, errors.AccountInvalidDirection)
	}
	req.Direction = string(dir)

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	accounts, err := h.accountService.ReorderAccount(c.Request().Context(), getUserID(c), req.AccountID, dir)
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, accounts)
}

// MigrateAccounts replaces the stored collection with a client snapshot
// @Summary Bulk-replace accounts
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.MigrateRequest true "Accounts snapshot"
// @Success 200 {object} dto.MigrateResponse
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_005 - No accounts provided"
// @Router /accounts/migrate [post]
func (h *AccountHandler) MigrateAccounts(c echo.Context) error {
	var req dto.MigrateRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if len(req.Accounts) == 0 {
		return SendError(c, errors.AccountMigrationEmpty)
	}

	count, err := h.accountService.MigrateAccounts(c.Request().Context(), getUserID(c), req.Accounts)
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MigrateResponse{Success: true, Count: count})
}

// GetSummary returns the collection totals
// @Summary Account totals
// @Tags Accounts
// @Produce json
// @Success 200 {object} models.SummaryTotals
// @Router /accounts/summary [get]
func (h *AccountHandler) GetSummary(c echo.Context) error {
	totals, err := h.accountService.Summary(c.Request().Context(), getUserID(c))
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, totals)
}

// GetUpcomingPayments lists minimum payments due within ?days= days (default 30)
// @Summary Upcoming payments
// @Tags Accounts
// @Produce json
// @Param days query int false "Lookahead window in days"
// @Success 200 {array} models.UpcomingPayment
// @Router /accounts/upcoming [get]
func (h *AccountHandler) GetUpcomingPayments(c echo.Context) error {
	days := getIntParam(c, "days", 0)
	if days < 0 || days > 366 {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("days must be between 0 and 366"))
	}

	payments, err := h.accountService.UpcomingPayments(c.Request().Context(), getUserID(c), time.Duration(days)*24*time.Hour)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, payments)
}

// ExportCSV streams the accounts as a CSV attachment, optionally sorted by ?sort=&dir=
// @Summary Export accounts as CSV
// @Tags Accounts
// @Produce text/csv
// @Param sort query string false "Column to sort by"
// @Param dir query string false "asc or desc"
// @Success 200 {string} string "CSV document"
// @Router /accounts/export.csv [get]
func (h *AccountHandler) ExportCSV(c echo.Context) error {
	field, err := metrics.ParseSortField(c.QueryParam("sort"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	state := metrics.SortState{Field: field, Direction: metrics.Ascending}
	if c.QueryParam("dir") == string(metrics.Descending) {
		state.Direction = metrics.Descending
	}

	accounts, err := h.accountService.ListAccounts(c.Request().Context(), getUserID(c))
	if err != nil {
		return SendSystemError(c, err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, export.ContentType)
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+export.FileName+`"`)
	res.WriteHeader(http.StatusOK)
	return export.WriteCSV(res, metrics.Sort(accounts, state))
}
