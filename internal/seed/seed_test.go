package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"servicecenter/internal/domain"
)

func TestRoster_FourMastersAndOneManager(t *testing.T) {
	roster := Roster()

	managers := 0
	for _, c := range roster.Credentials {
		if c.Role == domain.RoleManager {
			managers++
		}
	}

	assert.Len(t, roster.Credentials, 5)
	assert.Equal(t, 1, managers)
	assert.Len(t, roster.Masters, 4)
}

func TestOrders_CoverAllStatuses(t *testing.T) {
	seen := map[domain.OrderStatus]bool{}
	for _, o := range Orders() {
		seen[o.Status] = true
		assert.NotEmpty(t, o.Services)
		assert.NotEmpty(t, o.Materials)
	}

	assert.Len(t, seen, 3)
}

func TestOrders_ReturnsFreshCopies(t *testing.T) {
	first := Orders()
	first[0].Services[0].Price = 1

	assert.Equal(t, 500.0, Orders()[0].Services[0].Price)
}
