package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"servicecenter/internal/domain"
	"servicecenter/internal/dto"
)

type MasterRepository interface {
	List(ctx context.Context) ([]domain.Master, error)
}

type OrderSource interface {
	List(ctx context.Context) ([]domain.Order, error)
}

type MasterUseCase struct {
	masters MasterRepository
	orders  OrderSource
	logger  *zap.Logger
}

func NewMasterUseCase(masters MasterRepository, orders OrderSource, logger *zap.Logger) *MasterUseCase {
	return &MasterUseCase{
		masters: masters,
		orders:  orders,
		logger:  logger,
	}
}

// ListMasters returns the technician roster. It also serves as the master directory
// for the order use case.
func (uc *MasterUseCase) ListMasters(ctx context.Context) ([]domain.Master, error) {
	masters, err := uc.masters.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing masters: %w", err)
	}
	return masters, nil
}

func (uc *MasterUseCase) GetMasters(ctx context.Context) (*dto.MasterListResponse, error) {
	masters, err := uc.ListMasters(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.MasterDTO, 0, len(masters))
	for _, m := range masters {
		out = append(out, dto.MasterFromDomain(m))
	}
	return &dto.MasterListResponse{Masters: out}, nil
}

// GetStats counts every stored order per master, regardless of who asks.
func (uc *MasterUseCase) GetStats(ctx context.Context) (*dto.MasterStatsResponse, error) {
	masters, err := uc.ListMasters(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := uc.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	uc.logger.Debug("computed master stats", zap.Int("masters", len(masters)), zap.Int("orders", len(orders)))

	return &dto.MasterStatsResponse{
		Masters: dto.MasterSummariesFromDomain(domain.SummarizeMasters(masters, orders)),
	}, nil
}
