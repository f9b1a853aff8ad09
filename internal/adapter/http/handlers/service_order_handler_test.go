package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taller_central/internal/adapter/http/handlers/mocks"
	"taller_central/internal/domain/entities"
	"taller_central/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestServiceOrderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing product fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"customer_id":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown customer maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, usecase.ErrCustomerNotFound)

		r := gin.New()
		r.POST("/v1/services", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"customer_id":9,"product":"Lavadora"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success reports pending status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		uc.EXPECT().Create(gomock.Any(), usecase.ServiceOrderInput{CustomerID: 1, Product: "Lavadora", Fault: "no enciende"}).
			Return(entities.ServiceOrder{ID: 10, CustomerID: 1, Product: "Lavadora", Fault: "no enciende"}, nil)

		r := gin.New()
		r.POST("/v1/services", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"customer_id":1,"product":"Lavadora","fault":"no enciende"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != "Pendiente" {
			t.Fatalf("unexpected status: %v", body["status"])
		}
	})
}

func TestServiceOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("status filter routes to the right query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		uc.EXPECT().ListReadyForDelivery(gomock.Any()).Return([]entities.ServiceOrder{
			{ID: 10, Reviewed: true, Repaired: true},
		}, nil)

		r := gin.New()
		r.GET("/v1/services", h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/services?status=ready", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/services", h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/services?status=bogus", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("review with body forwards notes and estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		uc.EXPECT().MarkReviewed(gomock.Any(), 10, "cambiar bomba", 50).
			Return(entities.ServiceOrder{ID: 10, Reviewed: true, Notes: "cambiar bomba", EstimatedCost: 50}, nil)

		r := gin.New()
		r.POST("/v1/services/:id/review", h.Review)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/10/review", bytes.NewBufferString(`{"notes":"cambiar bomba","estimated_cost":50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != "Revisado" || body["estimated_cost"] != float64(50) {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("review with empty body still transitions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		uc.EXPECT().MarkReviewed(gomock.Any(), 10, "", 0).
			Return(entities.ServiceOrder{ID: 10, Reviewed: true}, nil)

		r := gin.New()
		r.POST("/v1/services/:id/review", h.Review)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/10/review", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("repair before review maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		uc.EXPECT().MarkRepaired(gomock.Any(), 10).Return(entities.ServiceOrder{}, entities.ErrOrderNotReviewed)

		r := gin.New()
		r.POST("/v1/services/:id/repair", h.Repair)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/10/repair", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("deliver unknown order maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		uc.EXPECT().MarkDelivered(gomock.Any(), 99).Return(entities.ServiceOrder{}, usecase.ErrOrderNotFound)

		r := gin.New()
		r.POST("/v1/services/:id/deliver", h.Deliver)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/99/deliver", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_Stats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIServiceOrderUseCase(ctrl)
	h := NewServiceOrderHandler(uc)

	uc.EXPECT().Stats(gomock.Any()).Return(entities.OrderStats{Total: 4, Pending: 1, Reviewed: 1, Repaired: 1, Delivered: 1}, nil)

	r := gin.New()
	r.GET("/v1/services/stats", h.Stats)

	req := httptest.NewRequest(http.MethodGet, "/v1/services/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["total"] != float64(4) || body["pending"] != float64(1) {
		t.Fatalf("unexpected stats: %v", body)
	}
}
