package gateway

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/metinatakli/cinema-booking-engine/internal/domain"
)

// Registry maps uppercase payment-method names to adapters.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
}

func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

func (r *Registry) Register(method string, adapter Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.adapters[strings.ToUpper(method)] = adapter
}

// Resolve looks up the adapter for a payment method, case-insensitively.
// Unknown methods are the caller's problem: they get ErrGatewayNotFound,
// never a panic.
func (r *Registry) Resolve(method string) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, ok := r.adapters[strings.ToUpper(method)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrGatewayNotFound, method)
	}

	return adapter, nil
}

func (r *Registry) Methods() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	methods := make([]string, 0, len(r.adapters))
	for method := range r.adapters {
		methods = append(methods, method)
	}

	sort.Strings(methods)

	return methods
}
