package models

import (
	"sync"
	"testing"
)

var testTable = TierTable{
	TierFree: {TicketLimit: 3, AIQuality: "basic"},
	TierPro:  {TicketLimit: 5, AIQuality: "advanced"},
}

func TestPeekDefaults(t *testing.T) {
	repo := UsageDataSource()
	usage := repo.Peek("unseen")
	if usage.Count != 0 || usage.Tier != TierFree {
		t.Errorf("Expected {0 FREE} found %v", usage)
	}
}

func TestTryConsumeAtLimit(t *testing.T) {
	repo := UsageDataSource()
	for i := 0; i < 3; i++ {
		if _, err := repo.TryConsume("acc", testTable); err != nil {
			t.Fatalf("consume %d: %v", i, err)
		}
	}
	usage, err := repo.TryConsume("acc", testTable)
	if err != ErrQuotaExceeded {
		t.Errorf("Expected ErrQuotaExceeded found %v", err)
	}
	if usage.Count != 3 {
		t.Errorf("Expected count 3 found %d", usage.Count)
	}
	if repo.Peek("acc").Count != 3 {
		t.Errorf("rejected consume changed state: %v", repo.Peek("acc"))
	}
}

func TestTryConsumeConcurrent(t *testing.T) {
	repo := UsageDataSource()
	repo.SetTier("acc", TierPro)

	const workers = 50
	var wg sync.WaitGroup
	allowed := make(chan struct{}, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.TryConsume("acc", testTable); err == nil {
				allowed <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(allowed)

	if got := len(allowed); got != 5 {
		t.Errorf("Expected 5 allowed found %d", got)
	}
	if got := repo.Peek("acc").Count; got != 5 {
		t.Errorf("Expected final count 5 found %d", got)
	}
}

func TestSetTierPreservesCount(t *testing.T) {
	repo := UsageDataSource()
	repo.TryConsume("acc", testTable)
	repo.TryConsume("acc", testTable)
	usage := repo.SetTier("acc", TierEnterprise)
	if usage.Count != 2 || usage.Tier != TierEnterprise {
		t.Errorf("Expected {2 ENTERPRISE} found %v", usage)
	}
}

func TestChargeIncrementsPastLimit(t *testing.T) {
	repo := UsageDataSource()
	for i := 0; i < 3; i++ {
		repo.TryConsume("acc", testTable)
	}
	// Charge is unconditional; the policy layer decides when to call it.
	usage := repo.Charge("acc")
	if usage.Count != 4 {
		t.Errorf("Expected count 4 found %d", usage.Count)
	}
}

func TestTotalTickets(t *testing.T) {
	repo := UsageDataSource()
	repo.TryConsume("a", testTable)
	repo.TryConsume("a", testTable)
	repo.TryConsume("b", testTable)
	if got := repo.TotalTickets(); got != 3 {
		t.Errorf("Expected 3 total found %d", got)
	}
}
