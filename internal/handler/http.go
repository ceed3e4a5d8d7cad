package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Juangrcode/sk-cleanup-orders/internal/entities"
	"github.com/Juangrcode/sk-cleanup-orders/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	ListOrders(ctx context.Context) ([]entities.Order, error)
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	CreateOrder(ctx context.Context, draft entities.OrderDraft) (entities.Order, error)
	UpdateOrder(ctx context.Context, id string, draft entities.OrderDraft) (entities.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Post("/", h.CreateOrder)
		r.Get("/{order_id}", h.GetOrderByID)
		r.Put("/{order_id}", h.UpdateOrder)
		r.Delete("/{order_id}", h.DeleteOrder)
	})
}

// ListOrders возвращает все заказы.
// @Summary      Получить все заказы
// @Tags         orders
// @Produce      json
// @Success      200  {array}   Order
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.ListOrders(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderEntityToJSON(order))
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// GetOrderByID возвращает заказ по ID.
// @Summary      Получить заказ по ID
// @Tags         orders
// @Produce      json
// @Param        order_id   path      string  true  "Уникальный идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{order_id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	order, err := h.svc.GetOrderByID(ctx, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CreateOrder создает заказ.
// @Summary      Создать заказ
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      OrderPayload  true  "Данные заказа"
// @Success      201  {object}  Order
// @Failure      422  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	order, err := h.svc.CreateOrder(ctx, PayloadToDraft(payload))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// UpdateOrder обновляет заказ по ID.
// @Summary      Обновить заказ
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_id   path      string        true  "Уникальный идентификатор заказа"
// @Param        order      body      OrderPayload  true  "Данные заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      422  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{order_id} [put]
func (h *HTTPHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	order, err := h.svc.UpdateOrder(ctx, orderID, PayloadToDraft(payload))

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// DeleteOrder удаляет заказ по ID.
// @Summary      Удалить заказ
// @Tags         orders
// @Produce      json
// @Param        order_id   path      string  true  "Уникальный идентификатор заказа"
// @Success      200  {object}  DeleteResponse
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{order_id} [delete]
func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	err := h.svc.DeleteOrder(ctx, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, DeleteResponse{OrderID: orderID}, http.StatusOK)
}

func (h *HTTPHandler) decodePayload(w http.ResponseWriter, r *http.Request) (OrderPayload, bool) {
	var payload OrderPayload
	if err := utils.DecodeBody(r, &payload); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return OrderPayload{}, false
	}

	if err := h.validate.Struct(payload); err != nil {
		utils.WriteValidationError(w, err)
		return OrderPayload{}, false
	}

	return payload, true
}
