package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Juangrcode/sk-cleanup-orders/internal/entities"
	"github.com/Juangrcode/sk-cleanup-orders/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) ListOrders(ctx context.Context) ([]entities.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]entities.Order)
	return orders, args.Error(1)
}

func (m *mockOrderService) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entities.Order), args.Error(1)
}

func (m *mockOrderService) CreateOrder(ctx context.Context, draft entities.OrderDraft) (entities.Order, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(entities.Order), args.Error(1)
}

func (m *mockOrderService) UpdateOrder(ctx context.Context, id string, draft entities.OrderDraft) (entities.Order, error) {
	args := m.Called(ctx, id, draft)
	return args.Get(0).(entities.Order), args.Error(1)
}

func (m *mockOrderService) DeleteOrder(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestRouter(svc *mockOrderService) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)
	return r
}

func validOrder() entities.Order {
	return entities.Order{
		ID:           "efa1439c-a967-4b97-a5c0-7b4e42fe87a3",
		OrderNumber:  1,
		UserID:       "6383daa25e6687g5f00a3457",
		Name:         "Jorge",
		PhoneNumber:  "3000000000",
		Description:  "This is a description about order.",
		DeliveryDate: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:       entities.StatusReceived,
		CreatedAt:    time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func validPayload() string {
	return `{
		"user_id": "6383daa25e6687g5f00a3457",
		"name": "Jorge",
		"phone_number": "3000000000",
		"description": "This is a description about order.",
		"delivery_date": "2022-01-01T00:00:00Z"
	}`
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(svc *mockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			mockBehavior: func(svc *mockOrderService) {
				svc.On("ListOrders", mock.Anything).
					Return([]entities.Order{validOrder()}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_number":1`,
		},
		{
			name: "empty list",
			mockBehavior: func(svc *mockOrderService) {
				svc.On("ListOrders", mock.Anything).
					Return([]entities.Order{}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "internal error",
			mockBehavior: func(svc *mockOrderService) {
				svc.On("ListOrders", mock.Anything).
					Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockOrderService)
			tc.mockBehavior(svc)
			r := newTestRouter(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "efa1439c-a967-4b97-a5c0-7b4e42fe87a3",
			mockBehavior: func(svc *mockOrderService) {
				svc.On("GetOrderByID", mock.Anything, "efa1439c-a967-4b97-a5c0-7b4e42fe87a3").
					Return(validOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"efa1439c-a967-4b97-a5c0-7b4e42fe87a3"`,
		},
		{
			name:    "not found",
			orderID: "not-exist",
			mockBehavior: func(svc *mockOrderService) {
				svc.On("GetOrderByID", mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "internal error",
			orderID: "123",
			mockBehavior: func(svc *mockOrderService) {
				svc.On("GetOrderByID", mock.Anything, "123").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockOrderService)
			tc.mockBehavior(svc)
			r := newTestRouter(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/orders/"+tc.orderID, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(mockOrderService)
		svc.On("CreateOrder", mock.Anything, mock.Anything).
			Return(validOrder(), nil).Once()
		r := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(validPayload()))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "received", resp["status"])
		assert.Equal(t, float64(1), resp["order_number"])
		svc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(mockOrderService)
		r := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{not json"))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "CreateOrder")
	})
}

func TestHTTPHandler_CreateOrder_Validation(t *testing.T) {
	payload := func(name, phone, description string) string {
		return fmt.Sprintf(`{
			"user_id": "6383daa25e6687g5f00a3457",
			"name": %q,
			"phone_number": %q,
			"description": %q,
			"delivery_date": "2022-01-01T00:00:00Z"
		}`, name, phone, description)
	}

	okName := "Jorge"
	okPhone := "3000000000"
	okDescription := "This is a description about order."

	testCases := []struct {
		name      string
		body      string
		wantValid bool
		wantField string
	}{
		{name: "name too short", body: payload(strings.Repeat("a", 2), okPhone, okDescription), wantField: "Name"},
		{name: "name min length", body: payload(strings.Repeat("a", 3), okPhone, okDescription), wantValid: true},
		{name: "name max length", body: payload(strings.Repeat("a", 50), okPhone, okDescription), wantValid: true},
		{name: "name too long", body: payload(strings.Repeat("a", 51), okPhone, okDescription), wantField: "Name"},
		{name: "phone too short", body: payload(okName, strings.Repeat("9", 8), okDescription), wantField: "PhoneNumber"},
		{name: "phone min length", body: payload(okName, strings.Repeat("9", 9), okDescription), wantValid: true},
		{name: "phone max length", body: payload(okName, strings.Repeat("9", 12), okDescription), wantValid: true},
		{name: "phone too long", body: payload(okName, strings.Repeat("9", 13), okDescription), wantField: "PhoneNumber"},
		{name: "description too short", body: payload(okName, okPhone, strings.Repeat("d", 9)), wantField: "Description"},
		{name: "description max length", body: payload(okName, okPhone, strings.Repeat("d", 200)), wantValid: true},
		{name: "description too long", body: payload(okName, okPhone, strings.Repeat("d", 201)), wantField: "Description"},
		{
			name: "missing user_id",
			body: `{
				"name": "Jorge",
				"phone_number": "3000000000",
				"description": "This is a description about order.",
				"delivery_date": "2022-01-01T00:00:00Z"
			}`,
			wantField: "UserID",
		},
		{
			name: "missing delivery_date",
			body: `{
				"user_id": "6383daa25e6687g5f00a3457",
				"name": "Jorge",
				"phone_number": "3000000000",
				"description": "This is a description about order."
			}`,
			wantField: "DeliveryDate",
		},
		{
			name: "unknown status",
			body: `{
				"user_id": "6383daa25e6687g5f00a3457",
				"name": "Jorge",
				"phone_number": "3000000000",
				"description": "This is a description about order.",
				"delivery_date": "2022-01-01T00:00:00Z",
				"status": "done"
			}`,
			wantField: "Status",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockOrderService)
			if tc.wantValid {
				svc.On("CreateOrder", mock.Anything, mock.Anything).
					Return(validOrder(), nil).Once()
			}
			r := newTestRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if tc.wantValid {
				assert.Equal(t, http.StatusCreated, rr.Code)
				svc.AssertExpectations(t)
				return
			}

			assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantField)
			svc.AssertNotCalled(t, "CreateOrder")
		})
	}
}

func TestHTTPHandler_UpdateOrder(t *testing.T) {
	updated := validOrder()
	updated.Status = entities.StatusInProcess

	testCases := []struct {
		name         string
		orderID      string
		body         string
		mockBehavior func(svc *mockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: updated.ID,
			body: `{
				"user_id": "6383daa25e6687g5f00a3457",
				"name": "Jorge",
				"phone_number": "3000000000",
				"description": "This is a description about order.",
				"delivery_date": "2022-01-01T00:00:00Z",
				"status": "inProcess"
			}`,
			mockBehavior: func(svc *mockOrderService) {
				svc.On("UpdateOrder", mock.Anything, updated.ID, mock.MatchedBy(func(d entities.OrderDraft) bool {
					return d.Status == entities.StatusInProcess
				})).Return(updated, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"inProcess"`,
		},
		{
			name:    "not found",
			orderID: "not-exist",
			body:    validPayload(),
			mockBehavior: func(svc *mockOrderService) {
				svc.On("UpdateOrder", mock.Anything, "not-exist", mock.Anything).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "validation failure",
			orderID:      updated.ID,
			body:         `{"user_id": "u", "name": "Jo", "phone_number": "3000000000", "description": "This is a description about order.", "delivery_date": "2022-01-01T00:00:00Z"}`,
			mockBehavior: func(svc *mockOrderService) {},
			wantStatus:   http.StatusUnprocessableEntity,
			wantBody:     `"Name"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockOrderService)
			tc.mockBehavior(svc)
			r := newTestRouter(svc)

			req := httptest.NewRequest(http.MethodPut, "/api/orders/"+tc.orderID, strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHTTPHandler_DeleteOrder(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "efa1439c-a967-4b97-a5c0-7b4e42fe87a3",
			mockBehavior: func(svc *mockOrderService) {
				svc.On("DeleteOrder", mock.Anything, "efa1439c-a967-4b97-a5c0-7b4e42fe87a3").
					Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_id":"efa1439c-a967-4b97-a5c0-7b4e42fe87a3"`,
		},
		{
			name:    "not found",
			orderID: "not-exist",
			mockBehavior: func(svc *mockOrderService) {
				svc.On("DeleteOrder", mock.Anything, "not-exist").
					Return(entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockOrderService)
			tc.mockBehavior(svc)
			r := newTestRouter(svc)

			req := httptest.NewRequest(http.MethodDelete, "/api/orders/"+tc.orderID, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
			svc.AssertExpectations(t)
		})
	}
}
