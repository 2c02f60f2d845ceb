package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vietanh2810/activities-api/internal/domain"
	"github.com/vietanh2810/activities-api/internal/metrics"
)

// memStore backs every fake repository. fakeTx snapshots it so a failed unit
// of work leaves no trace, like a rolled back transaction.
type memStore struct {
	mu           sync.Mutex
	nextID       uint
	members      map[uint]domain.Member
	activities   map[uint]domain.Activity
	participants map[uint]domain.Participant
	entries      []domain.LedgerEntry
}

func newMemStore() *memStore {
	return &memStore{
		nextID:       100,
		members:      map[uint]domain.Member{},
		activities:   map[uint]domain.Activity{},
		participants: map[uint]domain.Participant{},
	}
}

type memSnapshot struct {
	nextID       uint
	members      map[uint]domain.Member
	activities   map[uint]domain.Activity
	participants map[uint]domain.Participant
	entries      []domain.LedgerEntry
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := memSnapshot{
		nextID:       s.nextID,
		members:      make(map[uint]domain.Member, len(s.members)),
		activities:   make(map[uint]domain.Activity, len(s.activities)),
		participants: make(map[uint]domain.Participant, len(s.participants)),
		entries:      append([]domain.LedgerEntry(nil), s.entries...),
	}
	for k, v := range s.members {
		snap.members[k] = v
	}
	for k, v := range s.activities {
		snap.activities[k] = v
	}
	for k, v := range s.participants {
		snap.participants[k] = v
	}
	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID = snap.nextID
	s.members = snap.members
	s.activities = snap.activities
	s.participants = snap.participants
	s.entries = snap.entries
}

func (s *memStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *memStore) addMember(m domain.Member) domain.Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == 0 {
		m.ID = s.id()
	}
	s.members[m.ID] = m
	return m
}

func (s *memStore) addActivity(a domain.Activity) domain.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == 0 {
		a.ID = s.id()
	}
	a.EnsureDetails()
	s.activities[a.ID] = a
	return a
}

func (s *memStore) balance(memberID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.members[memberID].Balance
}

func (s *memStore) ledger(memberID uint) []domain.LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.LedgerEntry
	for _, e := range s.entries {
		if e.MemberID == memberID {
			out = append(out, e)
		}
	}
	return out
}

type txKey struct{}

type fakeTx struct {
	mu    sync.Mutex
	store *memStore
}

func (t *fakeTx) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	snap := t.store.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		t.store.restore(snap)
		return err
	}
	return nil
}

type fakeMembers struct{ *memStore }

func (f fakeMembers) Create(_ context.Context, m domain.Member) (domain.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.members {
		if existing.Email == m.Email {
			return domain.Member{}, ErrMemberEmailExists
		}
	}
	m.ID = f.id()
	f.members[m.ID] = m
	return m, nil
}

func (f fakeMembers) FindByID(_ context.Context, id uint) (domain.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.members[id]
	if !ok {
		return domain.Member{}, ErrMemberNotFound
	}
	return m, nil
}

func (f fakeMembers) FindByIDForUpdate(ctx context.Context, id uint) (domain.Member, error) {
	return f.FindByID(ctx, id)
}

func (f fakeMembers) FindByEmail(_ context.Context, email string) (domain.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.members {
		if m.Email == email {
			return m, nil
		}
	}
	return domain.Member{}, ErrMemberNotFound
}

func (f fakeMembers) UpdateBalance(_ context.Context, id uint, balance int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.members[id]
	if !ok {
		return ErrMemberNotFound
	}
	m.Balance = balance
	f.members[id] = m
	return nil
}

func (f fakeMembers) UpdatePreferredCategories(_ context.Context, id uint, categories []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.members[id]
	if !ok {
		return ErrMemberNotFound
	}
	m.PreferredCategories = categories
	f.members[id] = m
	return nil
}

type fakeEntries struct{ *memStore }

func (f fakeEntries) Append(_ context.Context, e domain.LedgerEntry) (domain.LedgerEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e.ID = f.id()
	f.entries = append(f.entries, e)
	return e, nil
}

func (f fakeEntries) FindByMember(ctx context.Context, memberID uint) ([]domain.LedgerEntry, error) {
	return f.ledger(memberID), nil
}

type fakeActivities struct{ *memStore }

func (f fakeActivities) FindByID(_ context.Context, id uint) (domain.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.activities[id]
	if !ok {
		return domain.Activity{}, ErrActivityNotFound
	}
	return a, nil
}

func (f fakeActivities) FindSince(_ context.Context, since time.Time) ([]domain.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Activity
	for _, a := range f.activities {
		if !a.BeginAt.Before(since) {
			a.Event, a.Meeting, a.Formation, a.GeneralAssembly = nil, nil, nil, nil
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BeginAt.Before(out[j].BeginAt) })
	return out, nil
}

type fakeParticipants struct{ *memStore }

func (f fakeParticipants) Create(_ context.Context, p domain.Participant) (domain.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.participants {
		if existing.ActivityID == p.ActivityID && existing.MemberID == p.MemberID {
			return domain.Participant{}, ErrParticipantExists
		}
	}
	p.ID = f.id()
	f.participants[p.ID] = p
	return p, nil
}

func (f fakeParticipants) FindByID(_ context.Context, id uint) (domain.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.participants[id]
	if !ok {
		return domain.Participant{}, ErrParticipantNotFound
	}
	return p, nil
}

func (f fakeParticipants) FindByIDForUpdate(ctx context.Context, id uint) (domain.Participant, error) {
	return f.FindByID(ctx, id)
}

func (f fakeParticipants) FindByActivity(_ context.Context, activityID uint) ([]domain.Participant, error) {
	return f.filter(func(p domain.Participant) bool { return p.ActivityID == activityID }), nil
}

func (f fakeParticipants) FindByMember(_ context.Context, memberID uint) ([]domain.Participant, error) {
	return f.filter(func(p domain.Participant) bool { return p.MemberID == memberID }), nil
}

func (f fakeParticipants) filter(keep func(domain.Participant) bool) []domain.Participant {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Participant
	for _, p := range f.participants {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f fakeParticipants) Update(_ context.Context, id uint, patch domain.ParticipantPatch) (domain.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.participants[id]
	if !ok {
		return domain.Participant{}, ErrParticipantNotFound
	}
	if patch.Rate != nil {
		p.Rate = patch.Rate
	}
	if patch.Notes != nil {
		p.Notes = *patch.Notes
	}
	if patch.IsInterested != nil {
		p.IsInterested = *patch.IsInterested
	}
	if patch.IsTemp != nil {
		p.IsTemp = *patch.IsTemp
	}
	f.participants[id] = p
	return p, nil
}

func (f fakeParticipants) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.participants[id]; !ok {
		return ErrParticipantNotFound
	}
	delete(f.participants, id)
	return nil
}

type fixture struct {
	store         *memStore
	tx            *fakeTx
	ledger        *LedgerService
	participation *ParticipationService
}

func newFixture() *fixture {
	store := newMemStore()
	tx := &fakeTx{store: store}
	m := metrics.NewManager()

	ledger := NewLedgerService(tx, fakeMembers{store}, fakeEntries{store}, m)
	participation := NewParticipationService(tx, fakeActivities{store}, fakeParticipants{store}, ledger, m, 4)

	return &fixture{
		store:         store,
		tx:            tx,
		ledger:        ledger,
		participation: participation,
	}
}

func ptr[T any](v T) *T {
	return &v
}
