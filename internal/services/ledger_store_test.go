package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LedgerStoreTestSuite defines the test suite for the session store
type LedgerStoreTestSuite struct {
	suite.Suite
	store *LedgerStore
}

// SetupTest runs before each test
func (s *LedgerStoreTestSuite) SetupTest() {
	s.store = NewLedgerStore(30 * time.Minute)
}

// TestLedgerStoreSuite runs the test suite
func TestLedgerStoreSuite(t *testing.T) {
	suite.Run(t, new(LedgerStoreTestSuite))
}

func (s *LedgerStoreTestSuite) newSession() *PlanSession {
	pool := decimal.NewFromInt(4800)
	return &PlanSession{
		ID:            uuid.New(),
		Year:          2026,
		Month:         9,
		Income:        decimal.NewFromInt(6000),
		SavingsRate:   decimal.NewFromInt(20),
		Savings:       decimal.NewFromInt(1200),
		AvailablePool: pool,
		Ledger:        NewAllocationLedger(pool, nil),
	}
}

func (s *LedgerStoreTestSuite) TestPutAndGet() {
	session := s.newSession()
	s.store.Put(session)

	got, err := s.store.Get(session.ID)

	s.Require().NoError(err)
	s.Equal(session.ID, got.ID)
	s.Equal(1, s.store.Len())
}

func (s *LedgerStoreTestSuite) TestGet_UnknownSession() {
	_, err := s.store.Get(uuid.New())

	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *LedgerStoreTestSuite) TestDelete() {
	session := s.newSession()
	s.store.Put(session)

	s.store.Delete(session.ID)

	_, err := s.store.Get(session.ID)
	s.ErrorIs(err, ErrSessionNotFound)
	s.Equal(0, s.store.Len())
}

func (s *LedgerStoreTestSuite) TestSweep_EvictsExpiredSessions() {
	store := NewLedgerStore(10 * time.Millisecond)

	expired := s.newSession()
	store.Put(expired)

	time.Sleep(25 * time.Millisecond)

	fresh := s.newSession()
	store.Put(fresh)

	evicted := store.Sweep()

	s.Equal(1, evicted)
	s.Equal(1, store.Len())

	_, err := store.Get(expired.ID)
	s.ErrorIs(err, ErrSessionNotFound)
	_, err = store.Get(fresh.ID)
	s.NoError(err)
}

// Reading a session refreshes its idle timer
func (s *LedgerStoreTestSuite) TestGet_RefreshesIdleTimer() {
	store := NewLedgerStore(30 * time.Millisecond)

	session := s.newSession()
	store.Put(session)

	time.Sleep(20 * time.Millisecond)
	_, err := store.Get(session.ID)
	s.Require().NoError(err)

	time.Sleep(20 * time.Millisecond)

	s.Equal(0, store.Sweep())
	s.Equal(1, store.Len())
}
