package cli

import (
	"fmt"
	"path/filepath"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	path, err := ctx.Backups.CreateSnapshot(ctx.Store.Document())
	if err != nil {
		return err
	}
	fmt.Printf("Snapshot written: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	snapshots, err := ctx.Backups.ListSnapshots()
	if err != nil {
		return err
	}
	if len(snapshots) == 0 {
		fmt.Println("No snapshots yet")
		return nil
	}
	fmt.Printf("Snapshots in %s:\n", ctx.Backups.SnapshotDir())
	for _, s := range snapshots {
		fmt.Printf("  %s  %s  %s\n",
			filepath.Base(s.Path),
			s.Timestamp.Format("2006-01-02 15:04:05"),
			dimStyle.Render(fmt.Sprintf("%d bytes", s.Size)))
	}
	return nil
}
