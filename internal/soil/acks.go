package soil

import "sync"

// AckRegistry records which alerts a garden's user has dismissed and which
// alerts were active at the last evaluation. It is safe for concurrent use.
type AckRegistry struct {
	mu     sync.Mutex
	acks   map[string]map[string]struct{}
	active map[string]map[string]struct{}
}

// NewAckRegistry creates an empty registry.
func NewAckRegistry() *AckRegistry {
	return &AckRegistry{
		acks:   make(map[string]map[string]struct{}),
		active: make(map[string]map[string]struct{}),
	}
}

// Acknowledge marks alert id as dismissed for garden.
func (a *AckRegistry) Acknowledge(garden, id string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ids, ok := a.acks[garden]
	if !ok {
		ids = make(map[string]struct{})
		a.acks[garden] = ids
	}
	ids[id] = struct{}{}
}

// Reconcile applies recorded acknowledgements to a fresh evaluation and
// forgets acknowledgements for alerts that no longer fire, so a recurring
// condition is reported again.
func (a *AckRegistry) Reconcile(garden string, alerts []Alert) []Alert {
	a.mu.Lock()
	defer a.mu.Unlock()

	ids := a.acks[garden]
	active := make(map[string]struct{}, len(alerts))
	for i := range alerts {
		active[alerts[i].ID] = struct{}{}
		if _, ok := ids[alerts[i].ID]; ok {
			alerts[i].Acknowledged = true
		}
	}

	for id := range ids {
		if _, ok := active[id]; !ok {
			delete(ids, id)
		}
	}
	return alerts
}

// Raised records alerts as the garden's active set and returns those that
// were not active at the previous call.
func (a *AckRegistry) Raised(garden string, alerts []Alert) []Alert {
	a.mu.Lock()
	defer a.mu.Unlock()

	prev := a.active[garden]
	next := make(map[string]struct{}, len(alerts))
	var raised []Alert
	for _, alert := range alerts {
		next[alert.ID] = struct{}{}
		if _, ok := prev[alert.ID]; !ok {
			raised = append(raised, alert)
		}
	}
	a.active[garden] = next
	return raised
}
