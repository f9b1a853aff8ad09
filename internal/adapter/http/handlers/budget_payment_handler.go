package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "taller_central/internal/adapter/http/dto/response"
	"taller_central/internal/usecase"
	"taller_central/pkg"

	"github.com/gin-gonic/gin"
)

// BudgetPaymentHandler handles HTTP requests for budget payments.

type BudgetPaymentHandler struct {
	usecase usecase.IBudgetPaymentUseCase
}

func NewBudgetPaymentHandler(uc usecase.IBudgetPaymentUseCase) *BudgetPaymentHandler {
	return &BudgetPaymentHandler{usecase: uc}
}

// CreateByBudgetID charges the budget identified in the path through the
// payment gateway and records the outcome.
func (h *BudgetPaymentHandler) CreateByBudgetID(c *gin.Context) {
	budgetID, ok := parseIDParam(c, "budget_id")
	if !ok {
		return
	}
	log.Printf("[payment][handler] create start budget_id=%d", budgetID)

	mpPayload, err := readMPPayload(c)
	if err != nil {
		log.Printf("[payment][handler] invalid payload budget_id=%d err=%v", budgetID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), budgetID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed budget_id=%d err=%v", budgetID, err)
		appErr := mapBudgetPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success budget_id=%d payment_id=%s status=%s", budgetID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromBudgetPayment(created))
}

// GetByBudgetID returns the latest payment recorded for a budget.
func (h *BudgetPaymentHandler) GetByBudgetID(c *gin.Context) {
	budgetID, ok := parseIDParam(c, "budget_id")
	if !ok {
		return
	}

	payments, err := h.usecase.ListByBudgetID(c.Request.Context(), budgetID)
	if err != nil {
		appErr := mapBudgetPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromBudgetPayment(latest))
}

// readMPPayload accepts either a raw Mercado Pago payload or the
// `{"mp_payload": {...}}` envelope, and tolerates an empty body.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBudgetPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentBudgetRequired), errors.Is(err, usecase.ErrPaymentInvalidPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_REJECTED", "Payment provider rejected the request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentBudgetNotAccepted):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_ACCEPTED", "Budget is not accepted", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
