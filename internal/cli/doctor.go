package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/mbowen/daybook/internal/dates"
	"github.com/mbowen/daybook/internal/models"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: store reachable
	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store reachable: OK\n")
		storeReachable = true
	}

	// Check 2: document validation (only if the store loaded)
	if storeReachable {
		if err := checkDocument(ctx.Store.Document()); err != nil {
			fmt.Printf("❌ Document validation: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Document validation: OK\n")
		}
	} else {
		fmt.Printf("⊘ Document validation: SKIPPED (store not reachable)\n")
	}

	// Check 3: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 4: clock/timezone sanity
	if err := checkClockTimezone(ctx.Now()); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 5: concurrent instances (warning only)
	if err := checkConcurrentInstances(); err != nil {
		fmt.Printf("⚠ Single instance: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single instance: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if _, err := ctx.Provider.LoadDocument(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	return nil
}

func checkDocument(doc models.Document) error {
	habitIDs := make(map[string]bool)
	for _, h := range doc.Habits {
		if habitIDs[h.ID] {
			return fmt.Errorf("duplicate goal ID found: %s", h.ID)
		}
		habitIDs[h.ID] = true
	}

	taskIDs := make(map[string]bool)
	for _, t := range doc.Tasks {
		if taskIDs[t.ID] {
			return fmt.Errorf("duplicate task ID found: %s", t.ID)
		}
		taskIDs[t.ID] = true
	}

	for key, ids := range doc.History {
		if !dates.Valid(key) {
			return fmt.Errorf("malformed ledger date key: %s", key)
		}
		if len(ids) == 0 {
			return fmt.Errorf("empty ledger entry for %s; toggles should have removed it", key)
		}
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	snapshots, err := ctx.Backups.ListSnapshots()
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}
	if len(snapshots) == 0 {
		return fmt.Errorf("no snapshots found - consider creating one with 'daybook backup create'")
	}
	return nil
}

func checkClockTimezone(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		fmt.Printf("   Note: timezone is UTC\n")
	}
	return nil
}

// checkConcurrentInstances warns when another daybook process is already
// running, since two writers race on the same store file.
func checkConcurrentInstances() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}
	self := os.Getpid()
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == "daybook" {
			return fmt.Errorf("another daybook process is running (pid %d)", p.Pid())
		}
	}
	return nil
}
