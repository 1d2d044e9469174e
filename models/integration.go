package models

import "sync"

//go:generate mockgen -source=integration.go -package=models -destination=integration_mock.go

// IntegrationRepo handles per-account integration settings.
type IntegrationRepo interface {
	// Set stores config for the account, overwriting any previous value.
	// It reports whether a config already existed.
	Set(accountID string, config IntegrationConfig) bool
	// Get retrieves the account's config, or ErrNotFound.
	Get(accountID string) (IntegrationConfig, error)
	// Count returns the number of configured accounts.
	Count() int
}

// IntegrationDataSource returns an in-memory IntegrationRepo. Configuration
// lives for the process lifetime only; durability is out of scope, and this
// interface is the seam for a transactional store if that changes.
func IntegrationDataSource() IntegrationRepo {
	return &integrationRepo{
		configs: make(map[string]IntegrationConfig),
	}
}

type integrationRepo struct {
	mu      sync.RWMutex
	configs map[string]IntegrationConfig
}

func (r *integrationRepo) Set(accountID string, config IntegrationConfig) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, existed := r.configs[accountID]
	r.configs[accountID] = config
	return existed
}

func (r *integrationRepo) Get(accountID string) (IntegrationConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	config, ok := r.configs[accountID]
	if !ok {
		return IntegrationConfig{}, ErrNotFound
	}
	return config, nil
}

func (r *integrationRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.configs)
}
