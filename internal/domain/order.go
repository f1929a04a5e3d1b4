package domain

import "github.com/shopspring/decimal"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
)

// Any status may follow any other; only the value set is constrained.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted:
		return true
	}
	return false
}

func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusPending:
		return "Ожидает"
	case OrderStatusInProgress:
		return "В работе"
	case OrderStatusCompleted:
		return "Завершен"
	}
	return string(s)
}

// DateLayout is the format of Order.Date and Order.InvoiceDate.
const DateLayout = "2006-01-02"

type Order struct {
	ID             string
	DocumentNumber string
	Date           string
	Client         string
	MasterID       string
	RepairObject   string
	Description    string
	ImageURL       string
	Services       []Service
	Materials      []Material
	InvoiceNumber  string
	InvoiceDate    string
	Supplier       string
	Status         OrderStatus
}

func (o Order) IsAssigned() bool {
	return o.MasterID != ""
}

// Clone returns a copy that shares no slices with o.
func (o Order) Clone() Order {
	c := o
	if o.Services != nil {
		c.Services = append([]Service(nil), o.Services...)
	}
	if o.Materials != nil {
		c.Materials = append([]Material(nil), o.Materials...)
	}
	return c
}

// RecalculateMaterials re-derives every material total from quantity and unit price.
func (o *Order) RecalculateMaterials() {
	for i := range o.Materials {
		o.Materials[i].Recalculate()
	}
}

type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Material.Total must equal Quantity * PricePerUnit. The setters keep it that way;
// assigning Total directly bypasses the rule and nothing downstream re-checks it.
type Material struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Total        float64 `json:"total"`
}

func NewMaterial(id, name string, quantity int, pricePerUnit float64) Material {
	m := Material{
		ID:           id,
		Name:         name,
		Quantity:     quantity,
		PricePerUnit: pricePerUnit,
	}
	m.Recalculate()
	return m
}

func (m *Material) SetQuantity(quantity int) {
	m.Quantity = quantity
	m.Recalculate()
}

func (m *Material) SetPricePerUnit(price float64) {
	m.PricePerUnit = price
	m.Recalculate()
}

func (m *Material) Recalculate() {
	m.Total = decimal.NewFromInt(int64(m.Quantity)).
		Mul(decimal.NewFromFloat(m.PricePerUnit)).
		InexactFloat64()
}
