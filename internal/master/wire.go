package master

import (
	"go.uber.org/zap"

	"servicecenter/internal/domain"
	"servicecenter/internal/master/controller"
	"servicecenter/internal/master/repository"
	"servicecenter/internal/master/usecase"
)

type Module struct {
	Controller *controller.MasterController
	UseCase    *usecase.MasterUseCase
}

func NewModule(masters []domain.Master, orders usecase.OrderSource, logger *zap.Logger) *Module {
	repo := repository.NewRosterMasterRepository(masters)
	uc := usecase.NewMasterUseCase(repo, orders, logger)

	return &Module{
		Controller: controller.NewMasterController(uc, logger),
		UseCase:    uc,
	}
}
