// Package access decides which dashboard a user gets and which orders the user may see
// or change. The same predicates back the HTTP layer and the order use case.
package access

import "servicecenter/internal/domain"

type ViewKind string

const (
	ManagerDashboard ViewKind = "manager_dashboard"
	MasterDashboard  ViewKind = "master_dashboard"
)

func SelectView(user domain.User) ViewKind {
	if user.IsManager() {
		return ManagerDashboard
	}
	return MasterDashboard
}

// VisibleOrders returns all orders for a manager and, for a master, only the orders
// assigned to that master, keeping their relative order.
func VisibleOrders(user domain.User, orders []domain.Order) []domain.Order {
	if user.IsManager() {
		return orders
	}

	visible := []domain.Order{}
	for _, o := range orders {
		if CanView(user, o) {
			visible = append(visible, o)
		}
	}
	return visible
}

func CanView(user domain.User, order domain.Order) bool {
	return user.IsManager() || order.MasterID == user.ID
}

// CanMutate reports whether the user may create, update or delete orders.
func CanMutate(user domain.User) bool {
	return user.IsManager()
}
