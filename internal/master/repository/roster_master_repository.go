package repository

import (
	"context"

	"servicecenter/internal/domain"
)

// RosterMasterRepository serves the technician list loaded at startup. It never changes.
type RosterMasterRepository struct {
	masters []domain.Master
}

func NewRosterMasterRepository(masters []domain.Master) *RosterMasterRepository {
	copied := make([]domain.Master, len(masters))
	copy(copied, masters)
	return &RosterMasterRepository{masters: copied}
}

func (r *RosterMasterRepository) List(ctx context.Context) ([]domain.Master, error) {
	out := make([]domain.Master, len(r.masters))
	copy(out, r.masters)
	return out, nil
}
