package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"budget-planner/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrSessionNotFound = errors.New("planning session not found")

// PlanSession is one wizard session: the stated inputs, the derived savings
// and pool, and the allocation ledger being edited. Sessions live in memory
// for the lifetime of the wizard screen.
type PlanSession struct {
	ID            uuid.UUID
	Year          int
	Month         int
	Income        decimal.Decimal
	SavingsRate   decimal.Decimal
	Savings       decimal.Decimal
	AvailablePool decimal.Decimal
	Ledger        *AllocationLedger

	mu         sync.Mutex
	lastAccess time.Time
}

// Lock guards session mutation. The planner service locks around every
// ledger operation so concurrent HTTP requests cannot interleave edits.
func (s *PlanSession) Lock() {
	s.mu.Lock()
}

// Unlock releases the session lock
func (s *PlanSession) Unlock() {
	s.mu.Unlock()
}

// Conflicting returns the ledger items matching the given conflicts
func (s *PlanSession) Conflicting(conflicts []Conflict) []models.Allocation {
	allocations := make([]models.Allocation, 0, len(conflicts))
	for _, c := range conflicts {
		allocations = append(allocations, c.Allocation)
	}
	return allocations
}

// LedgerStore keeps the live planning sessions, keyed by session ID. Idle
// sessions are evicted after the configured TTL.
type LedgerStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*PlanSession
	ttl      time.Duration
}

// NewLedgerStore creates a session store with the given idle TTL
func NewLedgerStore(ttl time.Duration) *LedgerStore {
	return &LedgerStore{
		sessions: make(map[uuid.UUID]*PlanSession),
		ttl:      ttl,
	}
}

// Put registers a session
func (ls *LedgerStore) Put(session *PlanSession) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	session.lastAccess = time.Now()
	ls.sessions[session.ID] = session
}

// Get returns a live session and refreshes its idle timer
func (ls *LedgerStore) Get(id uuid.UUID) (*PlanSession, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	session, ok := ls.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	session.lastAccess = time.Now()
	return session, nil
}

// Delete removes a session
func (ls *LedgerStore) Delete(id uuid.UUID) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	delete(ls.sessions, id)
}

// Len returns the number of live sessions
func (ls *LedgerStore) Len() int {
	ls.mu.RLock()
	defer ls.mu.RUnlock()

	return len(ls.sessions)
}

// Sweep evicts sessions idle for longer than the TTL and returns how many
// were removed
func (ls *LedgerStore) Sweep() int {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	evicted := 0
	for id, session := range ls.sessions {
		if time.Since(session.lastAccess) > ls.ttl {
			delete(ls.sessions, id)
			evicted++
		}
	}
	return evicted
}

// StartSweeping evicts expired sessions on the given interval until the
// context is canceled
func (ls *LedgerStore) StartSweeping(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := ls.Sweep(); evicted > 0 {
				slog.Debug("evicted expired planning sessions", "count", evicted)
			}
		}
	}
}
