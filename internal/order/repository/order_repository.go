package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"servicecenter/internal/domain"
	"servicecenter/internal/errors"
)

const orderColumns = `id, documentNumber, orderDate, client, masterId, repairObject, description,
	imageUrl, services, materials, invoiceNumber, invoiceDate, supplier, status`

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

func (r *MySQLOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM Orders ORDER BY seq`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *MySQLOrderRepository) ListByMaster(ctx context.Context, masterID string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM Orders WHERE masterId = ? ORDER BY seq`

	rows, err := r.db.QueryContext(ctx, query, masterID)
	if err != nil {
		return nil, fmt.Errorf("querying orders by master: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM Orders WHERE id = ? ORDER BY seq LIMIT 1`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return order, nil
}

func (r *MySQLOrderRepository) Create(ctx context.Context, order domain.Order) error {
	services, materials, err := marshalLines(order)
	if err != nil {
		return err
	}

	query := `INSERT INTO Orders (` + orderColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		order.ID, order.DocumentNumber, order.Date, order.Client, order.MasterID, order.RepairObject,
		order.Description, order.ImageURL, services, materials, order.InvoiceNumber, order.InvoiceDate,
		order.Supplier, string(order.Status),
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	return nil
}

// Update rewrites the row with the order's id. Zero affected rows is not an error.
func (r *MySQLOrderRepository) Update(ctx context.Context, order domain.Order) error {
	services, materials, err := marshalLines(order)
	if err != nil {
		return err
	}

	query := `
		UPDATE Orders SET documentNumber = ?, orderDate = ?, client = ?, masterId = ?, repairObject = ?,
		       description = ?, imageUrl = ?, services = ?, materials = ?, invoiceNumber = ?,
		       invoiceDate = ?, supplier = ?, status = ?
		WHERE id = ?
	`

	_, err = r.db.ExecContext(ctx, query,
		order.DocumentNumber, order.Date, order.Client, order.MasterID, order.RepairObject,
		order.Description, order.ImageURL, services, materials, order.InvoiceNumber,
		order.InvoiceDate, order.Supplier, string(order.Status),
		order.ID,
	)
	if err != nil {
		return fmt.Errorf("updating order: %w", err)
	}

	return nil
}

// Delete removes the row with the id. Zero affected rows is not an error.
func (r *MySQLOrderRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM Orders WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		order     domain.Order
		status    string
		services  []byte
		materials []byte
	)

	err := row.Scan(
		&order.ID, &order.DocumentNumber, &order.Date, &order.Client, &order.MasterID,
		&order.RepairObject, &order.Description, &order.ImageURL, &services, &materials,
		&order.InvoiceNumber, &order.InvoiceDate, &order.Supplier, &status,
	)
	if err != nil {
		return nil, err
	}

	order.Status = domain.OrderStatus(status)
	if err := json.Unmarshal(services, &order.Services); err != nil {
		return nil, fmt.Errorf("decoding services of order %s: %w", order.ID, err)
	}
	if err := json.Unmarshal(materials, &order.Materials); err != nil {
		return nil, fmt.Errorf("decoding materials of order %s: %w", order.ID, err)
	}

	return &order, nil
}

func scanOrders(rows *sql.Rows) ([]domain.Order, error) {
	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

func marshalLines(order domain.Order) ([]byte, []byte, error) {
	services := order.Services
	if services == nil {
		services = []domain.Service{}
	}
	materials := order.Materials
	if materials == nil {
		materials = []domain.Material{}
	}

	servicesJSON, err := json.Marshal(services)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding services: %w", err)
	}
	materialsJSON, err := json.Marshal(materials)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding materials: %w", err)
	}

	return servicesJSON, materialsJSON, nil
}
