package controller

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"servicecenter/internal/dto"
	"servicecenter/internal/respond"
)

type MasterUseCase interface {
	GetMasters(ctx context.Context) (*dto.MasterListResponse, error)
	GetStats(ctx context.Context) (*dto.MasterStatsResponse, error)
}

type MasterController struct {
	useCase MasterUseCase
	logger  *zap.Logger
}

func NewMasterController(useCase MasterUseCase, logger *zap.Logger) *MasterController {
	return &MasterController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *MasterController) List(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	resp, err := c.useCase.GetMasters(r.Context())
	if err != nil {
		respond.Error(w, traceID, err, logger)
		return
	}

	respond.JSON(w, http.StatusOK, resp, logger)
}

func (c *MasterController) Stats(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	resp, err := c.useCase.GetStats(r.Context())
	if err != nil {
		respond.Error(w, traceID, err, logger)
		return
	}

	respond.JSON(w, http.StatusOK, resp, logger)
}
