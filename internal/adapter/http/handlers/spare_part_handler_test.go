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

func TestSparePartHandler_Add(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns 201 with owning order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISparePartUseCase(ctrl)
		h := NewSparePartHandler(uc)

		uc.EXPECT().Add(gomock.Any(), 10, usecase.SparePartInput{Name: "bujía", Cost: 25}).
			Return(entities.SparePart{ID: 1, OrderID: 10, Name: "bujía", Cost: 25}, nil)

		r := gin.New()
		r.POST("/v1/services/:id/parts", h.Add)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/10/parts", bytes.NewBufferString(`{"name":"bujía","cost":25}`))
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
		if body["service_order_id"] != float64(10) || body["name"] != "bujía" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("unknown order maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISparePartUseCase(ctrl)
		h := NewSparePartHandler(uc)

		uc.EXPECT().Add(gomock.Any(), 99, gomock.Any()).
			Return(entities.SparePart{}, usecase.ErrOrderNotFound)

		r := gin.New()
		r.POST("/v1/services/:id/parts", h.Add)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/99/parts", bytes.NewBufferString(`{"name":"filtro"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("missing name returns 400 before the usecase runs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISparePartUseCase(ctrl)
		h := NewSparePartHandler(uc)

		r := gin.New()
		r.POST("/v1/services/:id/parts", h.Add)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/10/parts", bytes.NewBufferString(`{"cost":25}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestSparePartHandler_ListByOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISparePartUseCase(ctrl)
	h := NewSparePartHandler(uc)

	uc.EXPECT().ListByOrder(gomock.Any(), 10).Return(usecase.SparePartListView{
		Parts: []entities.SparePart{
			{ID: 1, OrderID: 10, Name: "bujía", Cost: 25},
			{ID: 2, OrderID: 10, Name: "filtro de aceite", Cost: 40},
		},
		Total: 65,
	}, nil)

	r := gin.New()
	r.GET("/v1/services/:id/parts", h.ListByOrder)

	req := httptest.NewRequest(http.MethodGet, "/v1/services/10/parts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["total"] != float64(65) {
		t.Fatalf("unexpected total: %v", body)
	}
	if parts, ok := body["parts"].([]any); !ok || len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %v", body["parts"])
	}
}

func TestSparePartHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("part from another order maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISparePartUseCase(ctrl)
		h := NewSparePartHandler(uc)

		uc.EXPECT().Update(gomock.Any(), 10, 7, gomock.Any()).
			Return(entities.SparePart{}, usecase.ErrPartNotFound)

		r := gin.New()
		r.PUT("/v1/services/:id/parts/:part_id", h.Update)

		req := httptest.NewRequest(http.MethodPut, "/v1/services/10/parts/7", bytes.NewBufferString(`{"cost":55}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns updated part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISparePartUseCase(ctrl)
		h := NewSparePartHandler(uc)

		uc.EXPECT().Update(gomock.Any(), 10, 1, gomock.Any()).
			Return(entities.SparePart{ID: 1, OrderID: 10, Name: "bujía", Cost: 55}, nil)

		r := gin.New()
		r.PUT("/v1/services/:id/parts/:part_id", h.Update)

		req := httptest.NewRequest(http.MethodPut, "/v1/services/10/parts/1", bytes.NewBufferString(`{"cost":55}`))
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
		if body["cost"] != float64(55) {
			t.Fatalf("unexpected cost: %v", body)
		}
	})
}

func TestSparePartHandler_Remove(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISparePartUseCase(ctrl)
		h := NewSparePartHandler(uc)

		uc.EXPECT().Remove(gomock.Any(), 10, 1).Return(nil)

		r := gin.New()
		r.DELETE("/v1/services/:id/parts/:part_id", h.Remove)

		req := httptest.NewRequest(http.MethodDelete, "/v1/services/10/parts/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("invalid part id returns 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISparePartUseCase(ctrl)
		h := NewSparePartHandler(uc)

		r := gin.New()
		r.DELETE("/v1/services/:id/parts/:part_id", h.Remove)

		req := httptest.NewRequest(http.MethodDelete, "/v1/services/10/parts/zero", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
