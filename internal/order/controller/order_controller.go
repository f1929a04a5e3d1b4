package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"servicecenter/internal/auth/middleware"
	"servicecenter/internal/domain"
	"servicecenter/internal/dto"
	apperrors "servicecenter/internal/errors"
	"servicecenter/internal/respond"
)

type OrderUseCase interface {
	Dashboard(ctx context.Context, user domain.User) (*dto.DashboardResponse, error)
	ListOrders(ctx context.Context, user domain.User) (*dto.OrderListResponse, error)
	GetOrder(ctx context.Context, user domain.User, id string) (*dto.OrderDTO, error)
	Totals(ctx context.Context, user domain.User, id string) (*dto.TotalsDTO, error)
	CreateOrder(ctx context.Context, user domain.User, req dto.OrderRequest) (*dto.OrderDTO, error)
	UpdateOrder(ctx context.Context, user domain.User, id string, req dto.OrderRequest) (*dto.OrderDTO, error)
	DeleteOrder(ctx context.Context, user domain.User, id string) error
}

type OrderController struct {
	useCase OrderUseCase
	logger  *zap.Logger
}

func NewOrderController(useCase OrderUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *OrderController) Dashboard(w http.ResponseWriter, r *http.Request) {
	traceID, logger, user, ok := c.begin(w, r)
	if !ok {
		return
	}

	resp, err := c.useCase.Dashboard(r.Context(), user)
	if err != nil {
		respond.Error(w, traceID, err, logger)
		return
	}
	respond.JSON(w, http.StatusOK, resp, logger)
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	traceID, logger, user, ok := c.begin(w, r)
	if !ok {
		return
	}

	resp, err := c.useCase.ListOrders(r.Context(), user)
	if err != nil {
		respond.Error(w, traceID, err, logger)
		return
	}
	respond.JSON(w, http.StatusOK, resp, logger)
}

func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	traceID, logger, user, ok := c.begin(w, r)
	if !ok {
		return
	}

	resp, err := c.useCase.GetOrder(r.Context(), user, chi.URLParam(r, "orderId"))
	if err != nil {
		respond.Error(w, traceID, err, logger)
		return
	}
	respond.JSON(w, http.StatusOK, resp, logger)
}

func (c *OrderController) Totals(w http.ResponseWriter, r *http.Request) {
	traceID, logger, user, ok := c.begin(w, r)
	if !ok {
		return
	}

	resp, err := c.useCase.Totals(r.Context(), user, chi.URLParam(r, "orderId"))
	if err != nil {
		respond.Error(w, traceID, err, logger)
		return
	}
	respond.JSON(w, http.StatusOK, resp, logger)
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	traceID, logger, user, ok := c.begin(w, r)
	if !ok {
		return
	}

	req, ok := c.decode(w, r, traceID, logger)
	if !ok {
		return
	}

	resp, err := c.useCase.CreateOrder(r.Context(), user, req)
	if err != nil {
		respond.Error(w, traceID, err, logger)
		return
	}
	respond.JSON(w, http.StatusCreated, resp, logger)
}

func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	traceID, logger, user, ok := c.begin(w, r)
	if !ok {
		return
	}

	req, ok := c.decode(w, r, traceID, logger)
	if !ok {
		return
	}

	resp, err := c.useCase.UpdateOrder(r.Context(), user, chi.URLParam(r, "orderId"), req)
	if err != nil {
		respond.Error(w, traceID, err, logger)
		return
	}
	respond.JSON(w, http.StatusOK, resp, logger)
}

func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	traceID, logger, user, ok := c.begin(w, r)
	if !ok {
		return
	}

	if err := c.useCase.DeleteOrder(r.Context(), user, chi.URLParam(r, "orderId")); err != nil {
		respond.Error(w, traceID, err, logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *OrderController) begin(w http.ResponseWriter, r *http.Request) (string, *zap.Logger, domain.User, bool) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respond.Error(w, traceID, apperrors.NewUnauthorizedError("no session"), logger)
		return traceID, logger, domain.User{}, false
	}
	return traceID, logger.With(zap.String("userId", user.ID)), user, true
}

func (c *OrderController) decode(w http.ResponseWriter, r *http.Request, traceID string, logger *zap.Logger) (dto.OrderRequest, bool) {
	var req dto.OrderRequest
	r.Body = http.MaxBytesReader(w, r.Body, respond.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		respond.Error(w, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		}), logger)
		return req, false
	}
	return req, true
}
