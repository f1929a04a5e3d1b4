package domain

type Master struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Login string `yaml:"login"`
}

// UnassignedMasterName is shown for orders with no (or an unknown) master.
const UnassignedMasterName = "Не назначен"

type MasterStats struct {
	Total      int
	Completed  int
	InProgress int
	Pending    int
}

// CountByStatus tallies orders by status.
func CountByStatus(orders []Order) MasterStats {
	var s MasterStats
	for _, o := range orders {
		s.Total++
		switch o.Status {
		case OrderStatusCompleted:
			s.Completed++
		case OrderStatusInProgress:
			s.InProgress++
		case OrderStatusPending:
			s.Pending++
		}
	}
	return s
}

// Roster is the static identity data: login credentials and the technician list.
type Roster struct {
	Credentials []Credential `yaml:"credentials"`
	Masters     []Master     `yaml:"masters"`
}

// MasterSummary pairs a technician with the status counts of the orders assigned to them.
type MasterSummary struct {
	Master Master
	Stats  MasterStats
}

// MasterNameOf returns the display name of the master with the given id.
func MasterNameOf(masters []Master, id string) string {
	if id == "" {
		return UnassignedMasterName
	}
	for _, m := range masters {
		if m.ID == id {
			return m.Name
		}
	}
	return UnassignedMasterName
}

func SummarizeMasters(masters []Master, orders []Order) []MasterSummary {
	byMaster := make(map[string][]Order, len(masters))
	for _, o := range orders {
		if o.MasterID != "" {
			byMaster[o.MasterID] = append(byMaster[o.MasterID], o)
		}
	}

	summaries := make([]MasterSummary, 0, len(masters))
	for _, m := range masters {
		summaries = append(summaries, MasterSummary{
			Master: m,
			Stats:  CountByStatus(byMaster[m.ID]),
		})
	}
	return summaries
}
