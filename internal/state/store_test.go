package state

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mbowen/daybook/internal/dates"
	"github.com/mbowen/daybook/internal/models"
)

func fixedNow(key string) func() time.Time {
	t, err := dates.Parse(key)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

// memProvider keeps the persisted document in memory and can be told to fail.
type memProvider struct {
	doc      models.Document
	saves    int
	failSave bool
}

func (p *memProvider) Init() error                            { return nil }
func (p *memProvider) LoadDocument() (models.Document, error) { return p.doc.Clone(), nil }
func (p *memProvider) SaveDocument(doc models.Document) error {
	if p.failSave {
		return errors.New("disk full")
	}
	p.doc = doc.Clone()
	p.saves++
	return nil
}
func (p *memProvider) Reset() error { p.doc = models.Default(); return nil }
func (p *memProvider) Close() error { return nil }
func (p *memProvider) Path() string { return "mem" }

func newTestStore(t *testing.T, provider *memProvider) *Store {
	t.Helper()
	store, err := NewStore(provider, zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return store
}

func TestApply_CommitsPersistsAndNotifies(t *testing.T) {
	provider := &memProvider{doc: models.Default()}
	store := newTestStore(t, provider)

	var notified []models.Document
	store.Subscribe(func(doc models.Document) { notified = append(notified, doc) })

	err := store.Apply(func(doc models.Document) (models.Document, error) {
		doc.Habits = append(doc.Habits, models.Habit{ID: "h1", Name: "Read", Category: models.CategoryStudy})
		return doc, nil
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if got := store.Document(); len(got.Habits) != 1 {
		t.Errorf("committed habits = %+v", got.Habits)
	}
	if provider.saves != 1 || len(provider.doc.Habits) != 1 {
		t.Errorf("persisted saves=%d habits=%+v", provider.saves, provider.doc.Habits)
	}
	if len(notified) != 1 || len(notified[0].Habits) != 1 {
		t.Errorf("notifications = %d", len(notified))
	}
}

func TestApply_ErrorLeavesStateUntouched(t *testing.T) {
	provider := &memProvider{doc: models.Default()}
	store := newTestStore(t, provider)
	store.Subscribe(func(models.Document) { t.Error("failed mutation must not notify") })

	wantErr := errors.New("invalid")
	err := store.Apply(func(doc models.Document) (models.Document, error) {
		doc.Habits = append(doc.Habits, models.Habit{ID: "h1"})
		return doc, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want the mutation error", err)
	}
	if got := store.Document(); len(got.Habits) != 0 {
		t.Errorf("document changed despite error: %+v", got.Habits)
	}
	if provider.saves != 0 {
		t.Errorf("saves = %d, want 0", provider.saves)
	}
}

func TestApply_SaveFailureKeepsCommit(t *testing.T) {
	provider := &memProvider{doc: models.Default(), failSave: true}
	store := newTestStore(t, provider)

	err := store.Apply(func(doc models.Document) (models.Document, error) {
		doc.Habits = append(doc.Habits, models.Habit{ID: "h1", Name: "Read", Category: models.CategoryStudy})
		return doc, nil
	})
	if err != nil {
		t.Fatalf("Apply should not surface the save failure: %v", err)
	}
	if got := store.Document(); len(got.Habits) != 1 {
		t.Error("in-memory commit should stand even when persistence fails")
	}
}

func TestDocument_ReturnsClone(t *testing.T) {
	provider := &memProvider{doc: models.Default()}
	store := newTestStore(t, provider)

	snapshot := store.Document()
	snapshot.History["2026-08-30"] = []string{"h1"}
	if got := store.Document(); len(got.History) != 0 {
		t.Error("mutating a snapshot leaked into the store")
	}
}

func TestVacationMonitor_ArchivesElapsedPeriodOnAttach(t *testing.T) {
	doc := models.Default()
	doc.VacationMode = models.VacationPeriod{Active: true, StartDate: "2026-07-01", EndDate: "2026-07-07"}
	provider := &memProvider{doc: doc}
	store := newTestStore(t, provider)

	monitor := NewVacationMonitor(store, fixedNow("2026-08-01"), zap.NewNop())
	monitor.Attach()

	got := store.Document()
	if got.VacationMode.Active {
		t.Error("elapsed vacation should be archived on startup")
	}
	if len(got.VacationHistory) != 1 {
		t.Fatalf("history = %+v, want one record", got.VacationHistory)
	}
	if got.VacationHistory[0].Days != 7 {
		t.Errorf("record days = %d, want 7", got.VacationHistory[0].Days)
	}
}

func TestVacationMonitor_LeavesOngoingPeriodAlone(t *testing.T) {
	doc := models.Default()
	doc.VacationMode = models.VacationPeriod{Active: true, StartDate: "2026-07-01", EndDate: "2026-07-07"}
	provider := &memProvider{doc: doc}
	store := newTestStore(t, provider)

	NewVacationMonitor(store, fixedNow("2026-07-03"), zap.NewNop()).Attach()

	got := store.Document()
	if !got.VacationMode.Active || len(got.VacationHistory) != 0 {
		t.Errorf("ongoing vacation was touched: %+v %+v", got.VacationMode, got.VacationHistory)
	}
}

func TestVacationMonitor_ArchivesWhenPeriodEndsMidSession(t *testing.T) {
	provider := &memProvider{doc: models.Default()}
	store := newTestStore(t, provider)
	NewVacationMonitor(store, fixedNow("2026-08-01"), zap.NewNop()).Attach()

	// Scheduling an already-past window triggers the subscriber archive, and
	// the archive's own notification must not recurse into a second record.
	err := store.Apply(func(doc models.Document) (models.Document, error) {
		doc.VacationMode = models.VacationPeriod{Active: true, StartDate: "2026-07-01", EndDate: "2026-07-07"}
		return doc, nil
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	got := store.Document()
	if got.VacationMode.Active {
		t.Error("past vacation should have been archived by the subscriber")
	}
	if len(got.VacationHistory) != 1 {
		t.Errorf("history = %+v, want exactly one record", got.VacationHistory)
	}
}
