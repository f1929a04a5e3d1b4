package dto

type ServiceDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type MaterialDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Total        float64 `json:"total"`
}

// MaterialRequest has no total: it is always derived from quantity and unit price.
type MaterialRequest struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
}

type OrderRequest struct {
	DocumentNumber string            `json:"documentNumber"`
	Date           string            `json:"date"`
	Client         string            `json:"client"`
	MasterID       string            `json:"masterId"`
	RepairObject   string            `json:"repairObject"`
	Description    string            `json:"description"`
	ImageURL       string            `json:"imageUrl"`
	Services       []ServiceDTO      `json:"services"`
	Materials      []MaterialRequest `json:"materials"`
	InvoiceNumber  string            `json:"invoiceNumber"`
	InvoiceDate    string            `json:"invoiceDate"`
	Supplier       string            `json:"supplier"`
	Status         string            `json:"status"`
}

type TotalsDTO struct {
	ServicesTotal  float64 `json:"servicesTotal"`
	MaterialsTotal float64 `json:"materialsTotal"`
	Total          float64 `json:"total"`
}

type OrderDTO struct {
	ID             string        `json:"id"`
	DocumentNumber string        `json:"documentNumber"`
	Date           string        `json:"date"`
	Client         string        `json:"client"`
	MasterID       string        `json:"masterId"`
	MasterName     string        `json:"masterName"`
	RepairObject   string        `json:"repairObject"`
	Description    string        `json:"description"`
	ImageURL       string        `json:"imageUrl"`
	Services       []ServiceDTO  `json:"services"`
	Materials      []MaterialDTO `json:"materials"`
	InvoiceNumber  string        `json:"invoiceNumber"`
	InvoiceDate    string        `json:"invoiceDate"`
	Supplier       string        `json:"supplier"`
	Status         string        `json:"status"`
	StatusLabel    string        `json:"statusLabel"`
	Totals         TotalsDTO     `json:"totals"`
}

type OrderListResponse struct {
	Orders []OrderDTO `json:"orders"`
	Count  int        `json:"count"`
}

type StatusCountsDTO struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Pending    int `json:"pending"`
}

type DashboardResponse struct {
	View    string           `json:"view"`
	User    UserDTO          `json:"user"`
	Orders  []OrderDTO       `json:"orders"`
	Stats   StatusCountsDTO  `json:"stats"`
	Masters []MasterStatsDTO `json:"masters,omitempty"`
}
