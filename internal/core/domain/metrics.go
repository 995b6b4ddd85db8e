package domain

// Metrics summarizes the current collection for the dashboard cards.
type Metrics struct {
	Total       int
	Assigned    int
	Faulty      int
	ActiveUsers int
}

// ComputeMetrics derives summary counts from a collection snapshot.
// Pure function, recomputed fresh on every call.
func ComputeMetrics(assets []Asset) Metrics {
	m := Metrics{Total: len(assets)}

	users := make(map[string]struct{})
	for _, a := range assets {
		switch a.Status {
		case StatusAssigned:
			m.Assigned++
		case StatusFaulty:
			m.Faulty++
		}
		if key, ok := ActiveUserKey(a.AssignedTo); ok {
			users[key] = struct{}{}
		}
	}
	m.ActiveUsers = len(users)

	return m
}
