package testfixtures

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-FacilityService/internal/audit"
	"github.com/m04kA/SMC-FacilityService/internal/authz"
)

// Permissions grants permission codes to users.
type Permissions struct {
	mu     sync.Mutex
	grants map[int64]map[string]bool
}

// NewPermissions returns an empty permission table.
func NewPermissions() *Permissions {
	return &Permissions{grants: make(map[int64]map[string]bool)}
}

// Grant gives userID the permission code.
func (p *Permissions) Grant(userID int64, code string) *Permissions {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.grants[userID] == nil {
		p.grants[userID] = make(map[string]bool)
	}
	p.grants[userID][code] = true
	return p
}

// Has reports whether userID holds the code.
func (p *Permissions) Has(_ context.Context, userID int64, code string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.grants[userID][code], nil
}

// Require returns authz.ErrForbidden when userID lacks the code.
func (p *Permissions) Require(ctx context.Context, userID int64, code string) error {
	ok, _ := p.Has(ctx, userID, code)
	if !ok {
		return authz.ErrForbidden
	}
	return nil
}

// Auditor records audit entries in memory.
type Auditor struct {
	mu      sync.Mutex
	entries []audit.Entry
}

// Record stores the entry.
func (a *Auditor) Record(_ context.Context, entry audit.Entry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
}

// Entries returns a copy of the recorded entries.
func (a *Auditor) Entries() []audit.Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]audit.Entry(nil), a.entries...)
}

// Actions returns the recorded actions in order.
func (a *Auditor) Actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	actions := make([]string, 0, len(a.entries))
	for _, e := range a.entries {
		actions = append(actions, e.Action)
	}
	return actions
}
