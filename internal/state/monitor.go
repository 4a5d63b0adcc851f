package state

import (
	"time"

	"go.uber.org/zap"

	"github.com/mbowen/daybook/internal/analytics"
	"github.com/mbowen/daybook/internal/dates"
	"github.com/mbowen/daybook/internal/engine"
	"github.com/mbowen/daybook/internal/models"
)

// VacationMonitor archives the active vacation period once it has fully
// elapsed. It re-evaluates on every document change, including the change the
// archive itself produces; ArchiveVacation is a no-op on an inactive period,
// so the re-entrant notification terminates after one transition.
type VacationMonitor struct {
	store  *Store
	now    func() time.Time
	logger *zap.Logger
}

// NewVacationMonitor builds a monitor. A nil now falls back to time.Now.
func NewVacationMonitor(store *Store, now func() time.Time, logger *zap.Logger) *VacationMonitor {
	if now == nil {
		now = time.Now
	}
	return &VacationMonitor{store: store, now: now, logger: logger}
}

// Attach subscribes the monitor and runs one initial check so a vacation
// that ended while the program was not running is archived on startup.
func (m *VacationMonitor) Attach() {
	m.store.Subscribe(m.check)
	m.check(m.store.Document())
}

func (m *VacationMonitor) check(doc models.Document) {
	status := analytics.Status(doc.VacationMode, dates.Key(m.now()))
	if status == nil || status.State != analytics.VacationPast || !doc.VacationMode.Active {
		return
	}
	err := m.store.Apply(func(d models.Document) (models.Document, error) {
		return engine.ArchiveVacation(d), nil
	})
	if err != nil {
		m.logger.Warn("failed to archive vacation", zap.Error(err))
		return
	}
	m.logger.Info("archived completed vacation",
		zap.String("start", doc.VacationMode.StartDate),
		zap.String("end", doc.VacationMode.EndDate))
}
