package domain

import "github.com/shopspring/decimal"

type Totals struct {
	ServicesTotal  float64
	MaterialsTotal float64
	Total          float64
}

// CalculateTotals sums service prices and the stored material totals. It does not
// re-derive material totals, so an inconsistent Material.Total shows up as-is.
func CalculateTotals(o Order) Totals {
	services := decimal.Zero
	for _, s := range o.Services {
		services = services.Add(decimal.NewFromFloat(s.Price))
	}

	materials := decimal.Zero
	for _, m := range o.Materials {
		materials = materials.Add(decimal.NewFromFloat(m.Total))
	}

	return Totals{
		ServicesTotal:  services.InexactFloat64(),
		MaterialsTotal: materials.InexactFloat64(),
		Total:          services.Add(materials).InexactFloat64(),
	}
}

func (o Order) Totals() Totals {
	return CalculateTotals(o)
}
