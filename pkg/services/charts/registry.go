package charts

import (
	"fmt"
	"sync"

	"github.com/de-tools/chart-atlas/pkg/models/domain"
)

// Registry manages the chart variants that can be opened
type Registry interface {
	// Register adds a chart variant under its descriptor kind
	Register(c Chart) error
	// Get returns the variant registered for kind
	Get(kind domain.ChartKind) (Chart, error)
	// List returns the descriptors in registration order
	List() []domain.ChartDescriptor
}

type registry struct {
	mu     sync.RWMutex
	charts map[domain.ChartKind]Chart
	order  []domain.ChartKind
}

// NewRegistry creates an empty chart registry
func NewRegistry() Registry {
	return &registry{
		charts: make(map[domain.ChartKind]Chart),
	}
}

// DefaultRegistry registers every built-in variant.
func DefaultRegistry() Registry {
	r := NewRegistry()
	for _, c := range Builtin() {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *registry) Register(c Chart) error {
	if c == nil {
		return fmt.Errorf("chart cannot be nil")
	}
	kind := c.Descriptor().Kind
	if kind == "" {
		return fmt.Errorf("chart kind cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.charts[kind]; exists {
		return fmt.Errorf("chart %q is already registered", kind)
	}

	r.charts[kind] = c
	r.order = append(r.order, kind)
	return nil
}

func (r *registry) Get(kind domain.ChartKind) (Chart, error) {
	r.mu.RLock()
	c, exists := r.charts[kind]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownChart, kind)
	}
	return c, nil
}

func (r *registry) List() []domain.ChartDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptors := make([]domain.ChartDescriptor, 0, len(r.order))
	for _, kind := range r.order {
		descriptors = append(descriptors, r.charts[kind].Descriptor())
	}
	return descriptors
}
