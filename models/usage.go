package models

import "sync"

//go:generate mockgen -source=usage.go -package=models -destination=usage_mock.go

// UsageRepo tracks per-account usage counters against tier limits.
//
// TryConsume is the single synchronization point for concurrent webhook
// deliveries on the same account: the limit check and the increment happen
// under one lock, so two deliveries can never both pass the check and push
// the count past the limit.
type UsageRepo interface {
	// Peek returns the account's current usage. Unseen accounts read as
	// {Count: 0, Tier: FREE}.
	Peek(accountID string) Usage
	// TryConsume atomically checks Count < table.Limit(Tier) and increments.
	// At the limit it returns ErrQuotaExceeded and leaves state unchanged.
	TryConsume(accountID string, table TierTable) (Usage, error)
	// Charge increments unconditionally. Used by the charge-on-success
	// policy, which defers billing until the issue exists.
	Charge(accountID string) Usage
	// SetTier overwrites the account's tier, preserving its count.
	SetTier(accountID string, tier Tier) Usage
	// TotalTickets returns the sum of all accounts' counts.
	TotalTickets() int
}

// UsageDataSource returns an in-memory UsageRepo with per-account locking.
// A single repo-wide lock would serialize unrelated accounts; here the
// repo lock only guards entry creation, and each account entry carries its
// own mutex for the check-then-increment.
func UsageDataSource() UsageRepo {
	return &usageRepo{
		entries: make(map[string]*usageEntry),
	}
}

type usageEntry struct {
	mu    sync.Mutex
	usage Usage
}

type usageRepo struct {
	mu      sync.RWMutex
	entries map[string]*usageEntry
}

func (r *usageRepo) entry(accountID string) *usageEntry {
	r.mu.RLock()
	e, ok := r.entries[accountID]
	r.mu.RUnlock()
	if ok {
		return e
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok = r.entries[accountID]; ok {
		return e
	}
	e = &usageEntry{usage: Usage{Count: 0, Tier: TierFree}}
	r.entries[accountID] = e
	return e
}

func (r *usageRepo) Peek(accountID string) Usage {
	e := r.entry(accountID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.usage
}

func (r *usageRepo) TryConsume(accountID string, table TierTable) (Usage, error) {
	e := r.entry(accountID)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.usage.Count >= table.Limit(e.usage.Tier) {
		return e.usage, ErrQuotaExceeded
	}
	e.usage.Count++
	return e.usage, nil
}

func (r *usageRepo) Charge(accountID string) Usage {
	e := r.entry(accountID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.usage.Count++
	return e.usage
}

func (r *usageRepo) SetTier(accountID string, tier Tier) Usage {
	e := r.entry(accountID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.usage.Tier = tier
	return e.usage
}

func (r *usageRepo) TotalTickets() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, e := range r.entries {
		e.mu.Lock()
		total += e.usage.Count
		e.mu.Unlock()
	}
	return total
}
