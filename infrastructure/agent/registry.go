package agent

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mcpcatalog/domain"
)

// Registry manages the registered analysis backends and their fixed
// preference order.
type Registry struct {
	agents map[string]domain.Agent
	order  []string
}

// NewRegistry creates an empty registry with the given preference order.
func NewRegistry(order []string) *Registry {
	return &Registry{
		agents: make(map[string]domain.Agent),
		order:  order,
	}
}

// Register adds an agent under its name.
func (r *Registry) Register(a domain.Agent) {
	r.agents[a.Name()] = a
}

// Get returns the agent with the given name, or nil if not registered.
func (r *Registry) Get(name string) domain.Agent {
	return r.agents[name]
}

// Order returns the preference order the registry selects by.
func (r *Registry) Order() []string {
	return r.order
}

// Probe computes the availability of every registered agent. The result
// is valid for exactly one run; callers thread it through instead of
// re-probing, so selection stays deterministic within a run.
func (r *Registry) Probe() domain.Availability {
	availability := make(domain.Availability, len(r.agents))
	for name, a := range r.agents {
		availability[name] = a.Available()
	}
	return availability
}

// Select returns the preferred available agent. An explicit override
// wins only when that agent is itself available; otherwise the default
// order stands. The always-available in-session backend guarantees a
// non-empty selection in practice; ErrAgentUnavailable is returned only
// when every registered backend probes unavailable.
func (r *Registry) Select(
	availability domain.Availability,
	override string,
) (domain.Agent, error) {
	if override != "" {
		if a := r.agents[override]; a != nil && availability[override] {
			return a, nil
		}
		logger.Warnf(
			"Requested agent %q is not available, falling back to preference order",
			override,
		)
	}

	for _, name := range r.order {
		if a := r.agents[name]; a != nil && availability[name] {
			return a, nil
		}
	}

	return nil, domain.ErrAgentUnavailable
}
