package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leaseflow/internal/adapter/http/handlers/mocks"
	"leaseflow/internal/domain/entities"
	"leaseflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	uc.EXPECT().List(gomock.Any(), "c-1").Return(nil, nil)

	r := gin.New()
	r.GET("/v1/contracts/:id/payments", h.ListPayments)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/v1/contracts/c-1/payments", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	// A contract without payments answers an empty array, not null.
	if body := w.Body.String(); body != "[]" {
		t.Fatalf("expected [], got %s", body)
	}
}

func TestPaymentHandler_RecordPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing due date rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts/:id/payments", h.RecordPayment)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/contracts/c-1/payments", bytes.NewBufferString(`{"amount":1200}`))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("inactive contract answers 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().Record(gomock.Any(), "c-1", gomock.Any()).
			Return(entities.ContractPayment{}, usecase.ErrContractNotActive)

		r := gin.New()
		r.POST("/v1/contracts/:id/payments", h.RecordPayment)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/contracts/c-1/payments",
			bytes.NewBufferString(`{"amount":1200,"dueDate":"2026-04-05T00:00:00Z"}`))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "CONTRACT_NOT_ACTIVE" {
			t.Fatalf("expected CONTRACT_NOT_ACTIVE, got %v", resp)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		due := time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Record(gomock.Any(), "c-1", gomock.AssignableToTypeOf(usecase.RecordPaymentInput{})).DoAndReturn(
			func(_ any, _ string, in usecase.RecordPaymentInput) (entities.ContractPayment, error) {
				if in.Amount != 1200 || !in.DueDate.Equal(due) {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.ContractPayment{ID: "p-1", Amount: 1200, DueDate: due, Status: entities.PaymentStatusPending}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/contracts/:id/payments", h.RecordPayment)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/contracts/c-1/payments",
			bytes.NewBufferString(`{"amount":1200,"dueDate":"2026-04-05T00:00:00Z","method":"bank_transfer"}`))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "p-1" || resp["status"] != "pending" {
			t.Fatalf("unexpected payment: %v", resp)
		}
	})

	t.Run("gateway unavailable answers 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().Record(gomock.Any(), "c-1", gomock.Any()).
			Return(entities.ContractPayment{}, usecase.ErrGatewayNotConfigured)

		r := gin.New()
		r.POST("/v1/contracts/:id/payments", h.RecordPayment)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/v1/contracts/c-1/payments",
			bytes.NewBufferString(`{"dueDate":"2026-04-05T00:00:00Z","gatewayPayload":{"payment_method_id":"pix"}}`))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_UpdatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("settled conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().Update(gomock.Any(), "c-1", "p-1", gomock.Any()).
			Return(entities.ContractPayment{}, usecase.ErrPaymentAlreadySettled)

		r := gin.New()
		r.PUT("/v1/contracts/:id/payments/:paymentId", h.UpdatePayment)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/v1/contracts/c-1/payments/p-1",
			bytes.NewBufferString(`{"status":"pending"}`))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("status forwarded as typed pointer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().Update(gomock.Any(), "c-1", "p-1", gomock.Any()).DoAndReturn(
			func(_ any, _, _ string, in usecase.UpdatePaymentInput) (entities.ContractPayment, error) {
				if in.Status == nil || *in.Status != entities.PaymentStatusPaid {
					t.Fatalf("expected paid status, got %+v", in)
				}
				return entities.ContractPayment{ID: "p-1", Status: entities.PaymentStatusPaid}, nil
			},
		)

		r := gin.New()
		r.PUT("/v1/contracts/:id/payments/:paymentId", h.UpdatePayment)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/v1/contracts/c-1/payments/p-1",
			bytes.NewBufferString(`{"status":"paid"}`))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
