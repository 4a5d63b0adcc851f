package cli

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/mbowen/daybook/internal/engine"
	"github.com/mbowen/daybook/internal/models"
	"github.com/mbowen/daybook/internal/undo"
)

type UndoCmd struct{}

func (c *UndoCmd) Run(ctx *Context) error {
	return restorePending(ctx)
}

// restorePending takes the staged delete out of the undo slot and re-inserts
// it at the end of its collection.
func restorePending(ctx *Context) error {
	entry, ok := ctx.Undo.Undo()
	if !ok {
		fmt.Println("Nothing to undo")
		return nil
	}
	if err := ctx.Store.Apply(func(doc models.Document) (models.Document, error) {
		switch entry.Kind {
		case undo.KindHabit:
			return engine.RestoreHabit(doc, entry.Habit), nil
		case undo.KindTask:
			return engine.RestoreTask(doc, entry.Task), nil
		}
		return doc, fmt.Errorf("unknown undo entry kind %q", entry.Kind)
	}); err != nil {
		return err
	}
	fmt.Printf("Restored %q\n", entry.Name())
	return nil
}

// waitForUndo holds the undo window open on an interactive delete: pressing
// Enter before the deadline restores the entity, letting the window lapse
// finalizes the delete. force skips the wait for scripted use.
func waitForUndo(ctx *Context, force bool) error {
	entry, ok := ctx.Undo.Pending()
	if !ok {
		return nil
	}
	window := ctx.Undo.WindowLength()
	if force {
		fmt.Printf("Deleted %q\n", entry.Name())
		return nil
	}

	fmt.Printf("Deleted %q. Press Enter within %ds to undo... ", entry.Name(), int(window.Seconds()))
	pressed := make(chan struct{}, 1)
	go func() {
		reader := bufio.NewReader(os.Stdin)
		if _, err := reader.ReadString('\n'); err == nil {
			pressed <- struct{}{}
		}
	}()

	select {
	case <-pressed:
		return restorePending(ctx)
	case <-time.After(window + 100*time.Millisecond):
		// Past the deadline the controller has already expired the slot.
		fmt.Println("gone.")
		return nil
	}
}
