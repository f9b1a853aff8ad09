package handlers

import (
	"context"
	"errors"
	"net/http"

	request "taller_central/internal/adapter/http/dto/request"
	response "taller_central/internal/adapter/http/dto/response"
	"taller_central/internal/domain/entities"
	"taller_central/internal/usecase"
	"taller_central/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)

// BudgetHandler handles HTTP requests for repair budgets.

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

func (h *BudgetHandler) Create(c *gin.Context) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudget(created))
}

func (h *BudgetHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetView(view))
}

func (h *BudgetHandler) GetByOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "service_id")
	if !ok {
		return
	}

	view, err := h.usecase.GetByOrder(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetView(view))
}

// List returns all budgets, or only the pending ones with `?status=pending`.
func (h *BudgetHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		budgets []entities.Budget
		err     error
	)
	switch c.Query("status") {
	case "":
		budgets, err = h.usecase.ListAll(ctx)
	case "pending":
		budgets, err = h.usecase.ListPending(ctx)
	default:
		appErr := pkg.NewDomainErrorSimple("INVALID_STATUS_FILTER", "Unknown status filter", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgets(budgets))
}

func (h *BudgetHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload request.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(updated))
}

func (h *BudgetHandler) Accept(c *gin.Context) {
	h.setAccepted(c, h.usecase.Accept)
}

func (h *BudgetHandler) Reject(c *gin.Context) {
	h.setAccepted(c, h.usecase.Reject)
}

func (h *BudgetHandler) setAccepted(
	c *gin.Context,
	updater func(ctx context.Context, id int) (entities.Budget, error),
) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	budget, err := updater(c.Request.Context(), id)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BudgetHandler) Earnings(c *gin.Context) {
	total, err := h.usecase.TotalEarnings(c.Request.Context())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.EarningsResponse{Total: total})
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrBudgetOrderRequired), errors.Is(err, usecase.ErrNegativeAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetAlreadyExists):
		return pkg.NewDomainErrorSimple("BUDGET_ALREADY_EXISTS", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetAccepted):
		return pkg.NewDomainErrorSimple("BUDGET_ACCEPTED", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
