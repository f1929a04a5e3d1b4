package order

import (
	"go.uber.org/zap"

	"servicecenter/internal/order/controller"
	"servicecenter/internal/order/usecase"
)

func NewModule(orders usecase.OrderRepository, masters usecase.MasterDirectory, logger *zap.Logger) *controller.OrderController {
	uc := usecase.NewOrderUseCase(orders, masters, logger)
	return controller.NewOrderController(uc, logger)
}
