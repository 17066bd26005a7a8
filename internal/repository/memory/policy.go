// Package memory holds in-process repository implementations. The policy
// table lives here: it is small, mutable, and administrative, so it is kept
// in memory behind a lock rather than in the database.
package memory

import (
	"context"
	"sync"

	"github.com/nova-forge/hrms-backend-go/internal/domain/leave"
)

type policyStore struct {
	mu    sync.RWMutex
	table map[string]int
}

// NewPolicyStore returns a leave.PolicyStore seeded with the given table
// (typically leave.DefaultPolicy()). The seed is copied.
func NewPolicyStore(seed map[string]int) leave.PolicyStore {
	table := make(map[string]int, len(seed))
	for name, days := range seed {
		table[name] = days
	}
	return &policyStore{table: table}
}

// All implements leave.PolicyStore.
func (p *policyStore) All(_ context.Context) (map[string]int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make(map[string]int, len(p.table))
	for name, days := range p.table {
		out[name] = days
	}
	return out, nil
}

// Allocation implements leave.PolicyStore.
func (p *policyStore) Allocation(_ context.Context, name string) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.table[name], nil
}

// Set implements leave.PolicyStore.
func (p *policyStore) Set(_ context.Context, name string, days int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.table[name] = days
	return nil
}
