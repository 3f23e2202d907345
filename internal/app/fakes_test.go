package app_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-class-remind/internal/app"
	"github.com/KasumiMercury/primind-class-remind/internal/domain"
)

var ist = time.FixedZone("IST", 5*60*60+30*60)

type memEntryRepo struct {
	mu      sync.Mutex
	entries []*domain.ScheduleEntry
	saveErr error
	listErr error
}

func (r *memEntryRepo) Save(_ context.Context, entry *domain.ScheduleEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saveErr != nil {
		return r.saveErr
	}

	r.entries = append(r.entries, entry)

	return nil
}

func (r *memEntryRepo) FindByID(_ context.Context, id domain.EntryID) (*domain.ScheduleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		if e.ID().Equals(id) {
			return e, nil
		}
	}

	return nil, domain.ErrEntryNotFound
}

func (r *memEntryRepo) ListByUser(_ context.Context, userID domain.UserID) ([]*domain.ScheduleEntry, error) {
	return r.filter(func(e *domain.ScheduleEntry) bool {
		return e.UserID().Equals(userID)
	})
}

func (r *memEntryRepo) ListByUserAndDay(_ context.Context, userID domain.UserID, day domain.Weekday) ([]*domain.ScheduleEntry, error) {
	return r.filter(func(e *domain.ScheduleEntry) bool {
		return e.UserID().Equals(userID) && e.Day() == day
	})
}

func (r *memEntryRepo) filter(keep func(*domain.ScheduleEntry) bool) ([]*domain.ScheduleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listErr != nil {
		return nil, r.listErr
	}

	out := make([]*domain.ScheduleEntry, 0)
	for _, e := range r.entries {
		if keep(e) {
			out = append(out, e)
		}
	}

	return out, nil
}

func (r *memEntryRepo) Update(_ context.Context, entry *domain.ScheduleEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.ID().Equals(entry.ID()) {
			r.entries[i] = entry

			return nil
		}
	}

	return domain.ErrEntryNotFound
}

func (r *memEntryRepo) Delete(_ context.Context, id domain.EntryID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.ID().Equals(id) {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)

			return nil
		}
	}

	return domain.ErrEntryNotFound
}

func (r *memEntryRepo) DeleteByUserAndSource(_ context.Context, userID domain.UserID, source domain.EntrySource) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.entries[:0:0]
	var deleted int64

	for _, e := range r.entries {
		if e.UserID().Equals(userID) && e.Source() == source {
			deleted++

			continue
		}

		kept = append(kept, e)
	}

	r.entries = kept

	return deleted, nil
}

func (r *memEntryRepo) WithTx(_ context.Context, fn func(repo domain.ScheduleEntryRepository) error) error {
	r.mu.Lock()
	tx := &memEntryRepo{
		entries: append([]*domain.ScheduleEntry(nil), r.entries...),
		saveErr: r.saveErr,
	}
	r.mu.Unlock()

	if err := fn(tx); err != nil {
		return err
	}

	r.mu.Lock()
	r.entries = tx.entries
	r.mu.Unlock()

	return nil
}

func (r *memEntryRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

type memOverrides map[string]domain.Weekday

func (m memOverrides) OverrideDay(_ context.Context, _ domain.UserID, date string) (domain.Weekday, bool, error) {
	day, ok := m[date]

	return day, ok, nil
}

func newTodaySchedule(repo domain.ScheduleEntryRepository, overrides memOverrides) *app.TodaySchedule {
	days, err := domain.NewDayResolver(overrides, ist, nil)
	if err != nil {
		panic(err)
	}

	return app.NewTodaySchedule(repo, days)
}

type memSubscriptionRepo struct {
	mu       sync.Mutex
	subs     map[string]domain.PushSubscription
	order    []domain.UserID
	listErr  error
	cleared  []string
	clearErr error
}

func newMemSubscriptionRepo() *memSubscriptionRepo {
	return &memSubscriptionRepo{subs: make(map[string]domain.PushSubscription)}
}

func (r *memSubscriptionRepo) Save(_ context.Context, userID domain.UserID, sub domain.PushSubscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subs[userID.String()]; !ok {
		r.order = append(r.order, userID)
	}

	r.subs[userID.String()] = sub

	return nil
}

func (r *memSubscriptionRepo) FindByUserID(_ context.Context, userID domain.UserID) (domain.PushSubscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.subs[userID.String()]
	if !ok {
		return domain.PushSubscription{}, domain.ErrSubscriptionNotFound
	}

	return sub, nil
}

func (r *memSubscriptionRepo) ListWithSubscription(_ context.Context) ([]domain.UserSubscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listErr != nil {
		return nil, r.listErr
	}

	out := make([]domain.UserSubscription, 0, len(r.order))
	for _, id := range r.order {
		if sub, ok := r.subs[id.String()]; ok {
			out = append(out, domain.UserSubscription{UserID: id, Subscription: sub})
		}
	}

	return out, nil
}

func (r *memSubscriptionRepo) Clear(_ context.Context, userID domain.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.clearErr != nil {
		return r.clearErr
	}

	if _, ok := r.subs[userID.String()]; !ok {
		return domain.ErrSubscriptionNotFound
	}

	delete(r.subs, userID.String())
	r.cleared = append(r.cleared, userID.String())

	return nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	received []app.DueReminder
	err      error
}

func (n *recordingNotifier) Notify(_ context.Context, _ domain.UserID, reminder app.DueReminder) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.received = append(n.received, reminder)

	return n.err
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.received)
}

var errStoreDown = errors.New("store down")
