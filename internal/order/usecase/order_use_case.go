package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"servicecenter/internal/access"
	"servicecenter/internal/domain"
	"servicecenter/internal/dto"
	apperrors "servicecenter/internal/errors"
)

type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	ListByMaster(ctx context.Context, masterID string) ([]domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, order domain.Order) error
	Update(ctx context.Context, order domain.Order) error
	Delete(ctx context.Context, id string) error
}

type MasterDirectory interface {
	ListMasters(ctx context.Context) ([]domain.Master, error)
}

type OrderUseCase struct {
	orders  OrderRepository
	masters MasterDirectory
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string
}

func NewOrderUseCase(orders OrderRepository, masters MasterDirectory, logger *zap.Logger) *OrderUseCase {
	return &OrderUseCase{
		orders:  orders,
		masters: masters,
		logger:  logger,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

// Dashboard builds the landing view for the user: the visible orders with their totals
// and, for a manager, every master with status counts over all orders.
func (uc *OrderUseCase) Dashboard(ctx context.Context, user domain.User) (*dto.DashboardResponse, error) {
	visible, err := uc.visibleOrders(ctx, user)
	if err != nil {
		return nil, err
	}

	masters, err := uc.masters.ListMasters(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing masters: %w", err)
	}

	resp := &dto.DashboardResponse{
		View:   string(access.SelectView(user)),
		User:   dto.UserFromDomain(user),
		Orders: toOrderDTOs(visible, masters),
		Stats:  dto.StatusCountsFromDomain(domain.CountByStatus(visible)),
	}

	if user.IsManager() {
		resp.Masters = dto.MasterSummariesFromDomain(domain.SummarizeMasters(masters, visible))
	}

	return resp, nil
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, user domain.User) (*dto.OrderListResponse, error) {
	visible, err := uc.visibleOrders(ctx, user)
	if err != nil {
		return nil, err
	}

	masters, err := uc.masters.ListMasters(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing masters: %w", err)
	}

	return &dto.OrderListResponse{
		Orders: toOrderDTOs(visible, masters),
		Count:  len(visible),
	}, nil
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, user domain.User, id string) (*dto.OrderDTO, error) {
	order, err := uc.findVisible(ctx, user, id)
	if err != nil {
		return nil, err
	}

	masters, err := uc.masters.ListMasters(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing masters: %w", err)
	}

	out := dto.OrderFromDomain(*order, domain.MasterNameOf(masters, order.MasterID))
	return &out, nil
}

func (uc *OrderUseCase) Totals(ctx context.Context, user domain.User, id string) (*dto.TotalsDTO, error) {
	order, err := uc.findVisible(ctx, user, id)
	if err != nil {
		return nil, err
	}

	out := dto.TotalsFromDomain(domain.CalculateTotals(*order))
	return &out, nil
}

// CreateOrder stores a new order under a fresh id. Empty status and dates default to
// pending and today; line items without an id get one.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, user domain.User, req dto.OrderRequest) (*dto.OrderDTO, error) {
	if !access.CanMutate(user) {
		return nil, apperrors.NewForbiddenError("only a manager can create orders")
	}

	today := uc.now().Format(domain.DateLayout)
	if req.Date == "" {
		req.Date = today
	}
	if req.InvoiceDate == "" {
		req.InvoiceDate = today
	}
	if req.Status == "" {
		req.Status = string(domain.OrderStatusPending)
	}

	order := req.ToDomain(uc.newID())
	return uc.save(ctx, user, order, uc.orders.Create, "order created")
}

// UpdateOrder replaces the stored order with the given id. Updating an id that is not
// stored changes nothing and is not an error.
func (uc *OrderUseCase) UpdateOrder(ctx context.Context, user domain.User, id string, req dto.OrderRequest) (*dto.OrderDTO, error) {
	if !access.CanMutate(user) {
		return nil, apperrors.NewForbiddenError("only a manager can update orders")
	}

	order := req.ToDomain(id)
	return uc.save(ctx, user, order, uc.orders.Update, "order updated")
}

func (uc *OrderUseCase) DeleteOrder(ctx context.Context, user domain.User, id string) error {
	if !access.CanMutate(user) {
		return apperrors.NewForbiddenError("only a manager can delete orders")
	}

	if err := uc.orders.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}

	uc.logger.Info("order deleted", zap.String("orderId", id), zap.String("userId", user.ID))
	return nil
}

func (uc *OrderUseCase) save(
	ctx context.Context,
	user domain.User,
	order domain.Order,
	store func(context.Context, domain.Order) error,
	logMsg string,
) (*dto.OrderDTO, error) {
	masters, err := uc.masters.ListMasters(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing masters: %w", err)
	}

	if err := validateOrder(order, masters); err != nil {
		return nil, err
	}

	uc.assignLineIDs(&order)
	order.RecalculateMaterials()

	if err := store(ctx, order); err != nil {
		return nil, fmt.Errorf("storing order: %w", err)
	}

	uc.logger.Info(logMsg,
		zap.String("orderId", order.ID),
		zap.String("documentNumber", order.DocumentNumber),
		zap.String("userId", user.ID),
	)

	out := dto.OrderFromDomain(order, domain.MasterNameOf(masters, order.MasterID))
	return &out, nil
}

func (uc *OrderUseCase) assignLineIDs(order *domain.Order) {
	for i := range order.Services {
		if order.Services[i].ID == "" {
			order.Services[i].ID = uc.newID()
		}
	}
	for i := range order.Materials {
		if order.Materials[i].ID == "" {
			order.Materials[i].ID = uc.newID()
		}
	}
}

// visibleOrders narrows at the store for masters and re-applies the visibility rule,
// so the result never depends on a store honoring the filter.
func (uc *OrderUseCase) visibleOrders(ctx context.Context, user domain.User) ([]domain.Order, error) {
	var (
		orders []domain.Order
		err    error
	)
	if user.IsManager() {
		orders, err = uc.orders.List(ctx)
	} else {
		orders, err = uc.orders.ListByMaster(ctx, user.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	return access.VisibleOrders(user, orders), nil
}

// findVisible reports an order outside the user's subset as not found.
func (uc *OrderUseCase) findVisible(ctx context.Context, user domain.User, id string) (*domain.Order, error) {
	order, err := uc.orders.FindByID(ctx, id)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("finding order: %w", err)
	}

	if !access.CanView(user, *order) {
		uc.logger.Warn("order outside visible set", zap.String("orderId", id), zap.String("userId", user.ID))
		return nil, apperrors.NewNotFoundError("order not found")
	}

	return order, nil
}

func toOrderDTOs(orders []domain.Order, masters []domain.Master) []dto.OrderDTO {
	out := make([]dto.OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.OrderFromDomain(o, domain.MasterNameOf(masters, o.MasterID)))
	}
	return out
}
