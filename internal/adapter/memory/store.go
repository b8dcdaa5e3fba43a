// Package memory implements the entity store in process memory.
// All repositories share one Store; data lives for the lifetime of the
// process unless a commit hook persists it elsewhere.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/edip-crm/internal/domain"
)

// CommitFunc is called with the full dataset after every committed write.
// An error rolls the write back.
type CommitFunc func(ctx context.Context, snap *domain.Snapshot) error

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithCommitHook registers fn to run after every committed write.
func WithCommitHook(fn CommitFunc) Option {
	return func(s *Store) { s.onCommit = fn }
}

// Store holds every entity in maps guarded by a RWMutex. Transactions hold
// txMu exclusively; reads outside a transaction hold it shared, so they only
// see committed data.
type Store struct {
	txMu sync.RWMutex
	mu   sync.RWMutex

	accounts      map[string]*domain.Account
	accountOrder  []string
	useCases      map[uuid.UUID]*domain.UseCase
	useCaseOrder  []uuid.UUID
	updates       map[uuid.UUID]*domain.Update
	updateOrder   []uuid.UUID
	platforms     map[platformKey]*domain.PlatformStatus
	platformOrder []platformKey
	businessAreas map[string]*domain.BusinessArea

	now      func() time.Time
	onCommit CommitFunc
}

type platformKey struct {
	bsnid    string
	platform domain.Platform
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	s.reset()
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) reset() {
	s.accounts = make(map[string]*domain.Account)
	s.accountOrder = nil
	s.useCases = make(map[uuid.UUID]*domain.UseCase)
	s.useCaseOrder = nil
	s.updates = make(map[uuid.UUID]*domain.Update)
	s.updateOrder = nil
	s.platforms = make(map[platformKey]*domain.PlatformStatus)
	s.platformOrder = nil
	s.businessAreas = make(map[string]*domain.BusinessArea)
}

// Accounts returns the account repository.
func (s *Store) Accounts() *AccountRepo { return &AccountRepo{s: s} }

// UseCases returns the use case repository.
func (s *Store) UseCases() *UseCaseRepo { return &UseCaseRepo{s: s} }

// Updates returns the update repository.
func (s *Store) Updates() *UpdateRepo { return &UpdateRepo{s: s} }

// PlatformStatuses returns the platform status repository.
func (s *Store) PlatformStatuses() *PlatformStatusRepo { return &PlatformStatusRepo{s: s} }

// BusinessAreas returns the business area registry.
func (s *Store) BusinessAreas() *BusinessAreaRepo { return &BusinessAreaRepo{s: s} }

// Ping always succeeds; it lets the store serve readiness checks.
func (s *Store) Ping(context.Context) error { return nil }

// ---------------------------------------------------------------------------
// Transactions
// ---------------------------------------------------------------------------

type (
	txCtxKey       struct{}
	snapshotCtxKey struct{}
)

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txCtxKey{}).(*Store)
	return owner == s
}

func (s *Store) inSnapshot(ctx context.Context) bool {
	owner, _ := ctx.Value(snapshotCtxKey{}).(*Store)
	return owner == s
}

// readLock takes the locks a read needs and returns their release.
func (s *Store) readLock(ctx context.Context) func() {
	if s.inTx(ctx) || s.inSnapshot(ctx) {
		s.mu.RLock()
		return s.mu.RUnlock
	}
	s.txMu.RLock()
	s.mu.RLock()
	return func() {
		s.mu.RUnlock()
		s.txMu.RUnlock()
	}
}

// RunInSnapshot runs fn while no transaction can commit, so every read made
// with the ctx passed to fn sees the same state. fn must not write.
func (s *Store) RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) || s.inSnapshot(ctx) {
		return fn(ctx)
	}
	s.txMu.RLock()
	defer s.txMu.RUnlock()
	return fn(context.WithValue(ctx, snapshotCtxKey{}, s))
}

// RunInTx executes fn with exclusive write access to the store.
// On error from fn or from the commit hook the store is restored to its state
// before the call. On panic the store is restored and the panic re-raised.
// A nested RunInTx joins the outer transaction.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	before := s.Snapshot()

	defer func() {
		if r := recover(); r != nil {
			s.restore(before)
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txCtxKey{}, s)); err != nil {
		s.restore(before)
		return err
	}

	if s.onCommit != nil {
		if err := s.onCommit(ctx, s.Snapshot()); err != nil {
			s.restore(before)
			return fmt.Errorf("commit: %w", err)
		}
	}

	return nil
}

// write runs a single mutation under the write lock, as its own transaction
// unless ctx already carries one.
func (s *Store) write(ctx context.Context, fn func() error) error {
	return s.RunInTx(ctx, func(context.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		return fn()
	})
}

// ---------------------------------------------------------------------------
// Snapshots
// ---------------------------------------------------------------------------

// Snapshot returns a deep copy of the dataset in insertion order.
func (s *Store) Snapshot() *domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &domain.Snapshot{
		TakenAt:          s.now().UTC(),
		Accounts:         make([]*domain.Account, 0, len(s.accountOrder)),
		UseCases:         make([]*domain.UseCase, 0, len(s.useCaseOrder)),
		Updates:          make([]*domain.Update, 0, len(s.updateOrder)),
		PlatformStatuses: make([]*domain.PlatformStatus, 0, len(s.platformOrder)),
		BusinessAreas:    make([]*domain.BusinessArea, 0, len(s.businessAreas)),
	}
	for _, id := range s.accountOrder {
		snap.Accounts = append(snap.Accounts, s.accounts[id].Clone())
	}
	for _, id := range s.useCaseOrder {
		uc := *s.useCases[id]
		snap.UseCases = append(snap.UseCases, &uc)
	}
	for _, id := range s.updateOrder {
		u := *s.updates[id]
		snap.Updates = append(snap.Updates, &u)
	}
	for _, k := range s.platformOrder {
		snap.PlatformStatuses = append(snap.PlatformStatuses, clonePlatformStatus(s.platforms[k]))
	}
	for _, name := range s.businessAreaNames() {
		ba := *s.businessAreas[name]
		snap.BusinessAreas = append(snap.BusinessAreas, &ba)
	}
	return snap
}

// Restore replaces the whole dataset with snap. Records are copied, so the
// caller may keep using snap.
func (s *Store) Restore(snap *domain.Snapshot) {
	s.restore(snap)
}

func (s *Store) restore(snap *domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	if snap == nil {
		return
	}
	for _, a := range snap.Accounts {
		s.accounts[a.BSNID] = a.Clone()
		s.accountOrder = append(s.accountOrder, a.BSNID)
	}
	for _, uc := range snap.UseCases {
		c := *uc
		s.useCases[uc.ID] = &c
		s.useCaseOrder = append(s.useCaseOrder, uc.ID)
	}
	for _, u := range snap.Updates {
		c := *u
		s.updates[u.ID] = &c
		s.updateOrder = append(s.updateOrder, u.ID)
	}
	for _, ps := range snap.PlatformStatuses {
		k := platformKey{ps.AccountBSNID, ps.Platform}
		s.platforms[k] = clonePlatformStatus(ps)
		s.platformOrder = append(s.platformOrder, k)
	}
	for _, ba := range snap.BusinessAreas {
		c := *ba
		s.businessAreas[ba.Name] = &c
	}
}

func (s *Store) businessAreaNames() []string {
	names := make([]string, 0, len(s.businessAreas))
	for name := range s.businessAreas {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func clonePlatformStatus(ps *domain.PlatformStatus) *domain.PlatformStatus {
	c := *ps
	if ps.EnablementTier != nil {
		t := *ps.EnablementTier
		c.EnablementTier = &t
	}
	return &c
}

func notFound(entity string, id any) error {
	return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
}
