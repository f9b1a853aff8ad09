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

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid service order payload", http.StatusBadRequest)

// ServiceOrderHandler handles HTTP requests for service orders, including the
// review/repair/deliver lifecycle routes.

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

func (h *ServiceOrderHandler) Create(c *gin.Context) {
	var payload request.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(created))
}

func (h *ServiceOrderHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrderView(view))
}

// List returns orders filtered by the `status` query: pending, in_progress,
// ready or delivered. Without a filter it returns every order.
func (h *ServiceOrderHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		orders []entities.ServiceOrder
		err    error
	)
	switch c.Query("status") {
	case "":
		orders, err = h.usecase.ListAll(ctx)
	case "pending":
		orders, err = h.usecase.ListPendingReview(ctx)
	case "in_progress":
		orders, err = h.usecase.ListInProgress(ctx)
	case "ready":
		orders, err = h.usecase.ListReadyForDelivery(ctx)
	case "delivered":
		orders, err = h.usecase.ListDelivered(ctx)
	default:
		appErr := pkg.NewDomainErrorSimple("INVALID_STATUS_FILTER", "Unknown status filter", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

// ListByCustomer serves the nested customer route, so the path parameter is
// the customer id.
func (h *ServiceOrderHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	orders, err := h.usecase.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

func (h *ServiceOrderHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload request.UpdateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(updated))
}

// Review records the diagnosis and marks the order as reviewed. The body is
// optional; reviewing twice is a no-op.
func (h *ServiceOrderHandler) Review(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload request.ReviewServiceOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
			return
		}
	}

	order, err := h.usecase.MarkReviewed(c.Request.Context(), id, payload.Notes, payload.EstimatedCost)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) Repair(c *gin.Context) {
	h.transition(c, h.usecase.MarkRepaired)
}

func (h *ServiceOrderHandler) Deliver(c *gin.Context) {
	h.transition(c, h.usecase.MarkDelivered)
}

func (h *ServiceOrderHandler) transition(
	c *gin.Context,
	mark func(ctx context.Context, id int) (entities.ServiceOrder, error),
) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := mark(c.Request.Context(), id)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ServiceOrderHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderStats(stats))
}

func mapServiceOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderCustomerRequired), errors.Is(err, usecase.ErrOrderProductRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderDelivered):
		return pkg.NewDomainErrorSimple("ORDER_DELIVERED", err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrOrderNotReviewed), errors.Is(err, entities.ErrOrderNotRepaired):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
