package handlers

import (
	"errors"
	"net/http"

	request "taller_central/internal/adapter/http/dto/request"
	response "taller_central/internal/adapter/http/dto/response"
	"taller_central/internal/usecase"
	"taller_central/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPartPayload = pkg.NewDomainErrorSimple("INVALID_PART_INPUT", "Invalid spare part payload", http.StatusBadRequest)

// SparePartHandler handles spare part routes nested under a service order.

type SparePartHandler struct {
	usecase usecase.ISparePartUseCase
}

func NewSparePartHandler(uc usecase.ISparePartUseCase) *SparePartHandler {
	return &SparePartHandler{usecase: uc}
}

func (h *SparePartHandler) Add(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload request.CreateSparePartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPartPayload.HTTPStatus, errInvalidPartPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Add(c.Request.Context(), orderID, payload.ToInput())
	if err != nil {
		appErr := mapSparePartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSparePart(created))
}

func (h *SparePartHandler) ListByOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.usecase.ListByOrder(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapSparePartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSparePartListView(view))
}

func (h *SparePartHandler) Update(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	partID, ok := parseIDParam(c, "part_id")
	if !ok {
		return
	}

	var payload request.UpdateSparePartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPartPayload.HTTPStatus, errInvalidPartPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), orderID, partID, payload.ToPatch())
	if err != nil {
		appErr := mapSparePartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSparePart(updated))
}

func (h *SparePartHandler) Remove(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	partID, ok := parseIDParam(c, "part_id")
	if !ok {
		return
	}

	if err := h.usecase.Remove(c.Request.Context(), orderID, partID); err != nil {
		appErr := mapSparePartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapSparePartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPartNameRequired), errors.Is(err, usecase.ErrPartNegativeCost):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Spare part not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
