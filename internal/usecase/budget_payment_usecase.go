package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"taller_central/internal/domain/entities"
	"taller_central/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound          = errors.New("budget payment not found")
	ErrPaymentBudgetRequired    = errors.New("budget id is required")
	ErrPaymentInvalidPayload    = errors.New("invalid payment payload")
	ErrPaymentBudgetNotAccepted = errors.New("budget is not accepted")
	ErrPaymentGatewayNotSet     = errors.New("payment gateway not configured")
	ErrPaymentGatewayRejected   = errors.New("payment gateway rejected the request")
)

// IBudgetPaymentUseCase encapsulates charging an accepted budget through the
// payment gateway and persisting the outcome.

type IBudgetPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, budgetID int, payload json.RawMessage) (entities.BudgetPayment, error)
	GetByID(ctx context.Context, id string) (entities.BudgetPayment, error)
	ListByBudgetID(ctx context.Context, budgetID int) ([]entities.BudgetPayment, error)
}

type BudgetPaymentUseCase struct {
	repo    interfaces.IBudgetPaymentRepository
	budgets interfaces.IBudgetRepository
	gateway interfaces.IPaymentGateway
}

var _ IBudgetPaymentUseCase = (*BudgetPaymentUseCase)(nil)

func NewBudgetPaymentUseCase(
	repo interfaces.IBudgetPaymentRepository,
	budgets interfaces.IBudgetRepository,
	gateway interfaces.IPaymentGateway,
) *BudgetPaymentUseCase {
	return &BudgetPaymentUseCase{repo: repo, budgets: budgets, gateway: gateway}
}

func (u *BudgetPaymentUseCase) CreateAndApprove(ctx context.Context, budgetID int, payload json.RawMessage) (entities.BudgetPayment, error) {
	if budgetID == 0 {
		return entities.BudgetPayment{}, ErrPaymentBudgetRequired
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.BudgetPayment{}, ErrPaymentInvalidPayload
	}
	if u.gateway == nil {
		return entities.BudgetPayment{}, ErrPaymentGatewayNotSet
	}

	b, err := u.budgets.GetByID(ctx, budgetID)
	if err != nil {
		return entities.BudgetPayment{}, err
	}
	if b.ID == 0 {
		return entities.BudgetPayment{}, fmt.Errorf("%w: %d", ErrBudgetNotFound, budgetID)
	}
	if !b.Accepted {
		return entities.BudgetPayment{}, fmt.Errorf("%w: %d", ErrPaymentBudgetNotAccepted, budgetID)
	}

	// The stored budget total is the source of truth for the amount; the
	// caller cannot override it through the payload.
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil {
		return entities.BudgetPayment{}, ErrPaymentInvalidPayload
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = strconv.Itoa(budgetID)
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Budget %d", budgetID)
	}
	req["transaction_amount"] = float64(b.Total())
	payload, err = json.Marshal(req)
	if err != nil {
		return entities.BudgetPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed budget_id=%d err=%v", budgetID, err)
		if isGatewayRejection(err) {
			return entities.BudgetPayment{}, fmt.Errorf("%w: budget %d", ErrPaymentGatewayRejected, budgetID)
		}
		return entities.BudgetPayment{}, err
	}

	status := entities.PaymentStatusAprobado
	if providerStatus != "approved" {
		status = entities.PaymentStatusRechazado
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed budget_id=%d err=%v", budgetID, err)
	}

	p := entities.BudgetPayment{
		ID:         providerPaymentID,
		BudgetID:   budgetID,
		Amount:     b.Total(),
		Date:       time.Now().UTC(),
		Status:     status,
		RawPayload: providerResp,
		Payload:    parsed,
	}
	return u.repo.Create(ctx, p)
}

func (u *BudgetPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BudgetPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BudgetPayment{}, ErrPaymentNotFound
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetPayment{}, err
	}
	if p.ID == "" {
		return entities.BudgetPayment{}, fmt.Errorf("%w: %s", ErrPaymentNotFound, id)
	}
	return p, nil
}

func (u *BudgetPaymentUseCase) ListByBudgetID(ctx context.Context, budgetID int) ([]entities.BudgetPayment, error) {
	if budgetID == 0 {
		return nil, ErrPaymentBudgetRequired
	}
	return u.repo.ListByBudgetID(ctx, budgetID)
}

func isGatewayRejection(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") ||
		strings.Contains(msg, "\"status\":400") ||
		strings.Contains(msg, "\"error\":\"unauthorized\"") ||
		strings.Contains(msg, "\"status\":401")
}
