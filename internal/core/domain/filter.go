package domain

import "fmt"

// Filter selects which subset of assets a view displays.
type Filter string

const (
	FilterAll         Filter = "all"
	FilterAssigned    Filter = "assigned"
	FilterFaulty      Filter = "faulty"
	FilterActiveUsers Filter = "activeUsers"
)

// ParseFilter maps user input to a Filter. Accepts the canonical names
// plus the flag-friendly "active-users" spelling.
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "", "all":
		return FilterAll, nil
	case "assigned":
		return FilterAssigned, nil
	case "faulty":
		return FilterFaulty, nil
	case "activeUsers", "active-users", "active_users":
		return FilterActiveUsers, nil
	}
	return FilterAll, fmt.Errorf("unknown filter %q (valid: all, assigned, faulty, active-users)", s)
}

// Label returns the human-readable name of the selected view.
func (f Filter) Label() string {
	switch f {
	case FilterAssigned:
		return "Assigned Assets"
	case FilterFaulty:
		return "Faulty Assets"
	case FilterActiveUsers:
		return "Assets Assigned to Active Users"
	default:
		return "All Assets"
	}
}

// Project returns the ordered subset of assets the filter selects, plus
// the view label. Order is preserved from the input collection. The
// active-users view builds the set of normalized assignees first and then
// keeps every record belonging to one of them.
func Project(assets []Asset, f Filter) ([]Asset, string) {
	switch f {
	case FilterAssigned:
		return filterByStatus(assets, StatusAssigned), f.Label()
	case FilterFaulty:
		return filterByStatus(assets, StatusFaulty), f.Label()
	case FilterActiveUsers:
		users := make(map[string]struct{})
		for _, a := range assets {
			if key, ok := ActiveUserKey(a.AssignedTo); ok {
				users[key] = struct{}{}
			}
		}
		var out []Asset
		for _, a := range assets {
			if a.AssignedTo == "" {
				continue
			}
			if key, ok := ActiveUserKey(a.AssignedTo); ok {
				if _, member := users[key]; member {
					out = append(out, a)
				}
			}
		}
		return out, f.Label()
	default:
		out := make([]Asset, len(assets))
		copy(out, assets)
		return out, FilterAll.Label()
	}
}

func filterByStatus(assets []Asset, status string) []Asset {
	var out []Asset
	for _, a := range assets {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}
