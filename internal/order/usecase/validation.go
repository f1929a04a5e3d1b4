package usecase

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"servicecenter/internal/domain"
	apperrors "servicecenter/internal/errors"
)

func validateOrder(order domain.Order, masters []domain.Master) error {
	var details []apperrors.ValidationDetail
	add := func(field, msg string) {
		details = append(details, apperrors.ValidationDetail{Field: field, Message: msg})
	}

	required := []struct {
		field string
		value string
	}{
		{"documentNumber", order.DocumentNumber},
		{"date", order.Date},
		{"client", order.Client},
		{"repairObject", order.RepairObject},
		{"description", order.Description},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			add(r.field, r.field+" is required")
		}
	}

	if order.Date != "" && !isDate(order.Date) {
		add("date", "date must be YYYY-MM-DD")
	}
	if order.InvoiceDate != "" && !isDate(order.InvoiceDate) {
		add("invoiceDate", "invoiceDate must be YYYY-MM-DD")
	}

	if !order.Status.Valid() {
		add("status", "status must be one of pending, in_progress, completed")
	}

	if order.MasterID != "" && !knownMaster(masters, order.MasterID) {
		add("masterId", "unknown master "+order.MasterID)
	}

	for i, s := range order.Services {
		if strings.TrimSpace(s.Name) == "" {
			add(fmt.Sprintf("services[%d].name", i), "service name is required")
		}
		if s.Price < 0 {
			add(fmt.Sprintf("services[%d].price", i), "price must not be negative")
		}
	}

	for i, m := range order.Materials {
		if strings.TrimSpace(m.Name) == "" {
			add(fmt.Sprintf("materials[%d].name", i), "material name is required")
		}
		if m.Quantity < 1 {
			add(fmt.Sprintf("materials[%d].quantity", i), "quantity must be at least 1")
		}
		if m.PricePerUnit < 0 {
			add(fmt.Sprintf("materials[%d].pricePerUnit", i), "pricePerUnit must not be negative")
		}
	}

	checkAmounts(order, add)

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func isDate(s string) bool {
	_, err := time.Parse(domain.DateLayout, s)
	return err == nil
}

func knownMaster(masters []domain.Master, id string) bool {
	for _, m := range masters {
		if m.ID == id {
			return true
		}
	}
	return false
}

// checkAmounts rejects line totals and sums that do not fit in a finite float64.
func checkAmounts(order domain.Order, add func(field, msg string)) {
	services := decimal.Zero
	for _, s := range order.Services {
		services = services.Add(decimal.NewFromFloat(s.Price))
	}

	materials := decimal.Zero
	for i, m := range order.Materials {
		line := decimal.NewFromInt(int64(m.Quantity)).Mul(decimal.NewFromFloat(m.PricePerUnit))
		if !isFinite(line) {
			add(fmt.Sprintf("materials[%d].total", i), "quantity * pricePerUnit is out of range")
		}
		materials = materials.Add(line)
	}

	if !isFinite(services) {
		add("services", "services total is out of range")
	}
	if !isFinite(materials) {
		add("materials", "materials total is out of range")
	}
	if !isFinite(services.Add(materials)) {
		add("total", "order total is out of range")
	}
}

func isFinite(d decimal.Decimal) bool {
	f := d.InexactFloat64()
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
