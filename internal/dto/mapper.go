package dto

import "servicecenter/internal/domain"

func UserFromDomain(u domain.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Login: u.Login,
		Role:  string(u.Role),
		Name:  u.Name,
	}
}

func TotalsFromDomain(t domain.Totals) TotalsDTO {
	return TotalsDTO{
		ServicesTotal:  t.ServicesTotal,
		MaterialsTotal: t.MaterialsTotal,
		Total:          t.Total,
	}
}

func StatusCountsFromDomain(s domain.MasterStats) StatusCountsDTO {
	return StatusCountsDTO{
		Total:      s.Total,
		Completed:  s.Completed,
		InProgress: s.InProgress,
		Pending:    s.Pending,
	}
}

func MasterFromDomain(m domain.Master) MasterDTO {
	return MasterDTO{ID: m.ID, Name: m.Name, Login: m.Login}
}

// OrderFromDomain computes the totals at mapping time; they are never stored.
func OrderFromDomain(o domain.Order, masterName string) OrderDTO {
	services := make([]ServiceDTO, len(o.Services))
	for i, s := range o.Services {
		services[i] = ServiceDTO{ID: s.ID, Name: s.Name, Description: s.Description, Price: s.Price}
	}

	materials := make([]MaterialDTO, len(o.Materials))
	for i, m := range o.Materials {
		materials[i] = MaterialDTO{
			ID:           m.ID,
			Name:         m.Name,
			Quantity:     m.Quantity,
			PricePerUnit: m.PricePerUnit,
			Total:        m.Total,
		}
	}

	return OrderDTO{
		ID:             o.ID,
		DocumentNumber: o.DocumentNumber,
		Date:           o.Date,
		Client:         o.Client,
		MasterID:       o.MasterID,
		MasterName:     masterName,
		RepairObject:   o.RepairObject,
		Description:    o.Description,
		ImageURL:       o.ImageURL,
		Services:       services,
		Materials:      materials,
		InvoiceNumber:  o.InvoiceNumber,
		InvoiceDate:    o.InvoiceDate,
		Supplier:       o.Supplier,
		Status:         string(o.Status),
		StatusLabel:    o.Status.Label(),
		Totals:         TotalsFromDomain(o.Totals()),
	}
}

// ToDomain builds an order from a request; material totals are derived here.
func (r OrderRequest) ToDomain(id string) domain.Order {
	services := make([]domain.Service, len(r.Services))
	for i, s := range r.Services {
		services[i] = domain.Service{ID: s.ID, Name: s.Name, Description: s.Description, Price: s.Price}
	}

	materials := make([]domain.Material, len(r.Materials))
	for i, m := range r.Materials {
		materials[i] = domain.NewMaterial(m.ID, m.Name, m.Quantity, m.PricePerUnit)
	}

	return domain.Order{
		ID:             id,
		DocumentNumber: r.DocumentNumber,
		Date:           r.Date,
		Client:         r.Client,
		MasterID:       r.MasterID,
		RepairObject:   r.RepairObject,
		Description:    r.Description,
		ImageURL:       r.ImageURL,
		Services:       services,
		Materials:      materials,
		InvoiceNumber:  r.InvoiceNumber,
		InvoiceDate:    r.InvoiceDate,
		Supplier:       r.Supplier,
		Status:         domain.OrderStatus(r.Status),
	}
}

func MasterSummariesFromDomain(summaries []domain.MasterSummary) []MasterStatsDTO {
	out := make([]MasterStatsDTO, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, MasterStatsDTO{
			MasterDTO: MasterFromDomain(s.Master),
			Stats:     StatusCountsFromDomain(s.Stats),
		})
	}
	return out
}
