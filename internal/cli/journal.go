package cli

import (
	"fmt"
	"strings"

	"github.com/mbowen/daybook/internal/engine"
	"github.com/mbowen/daybook/internal/models"
)

type JournalWriteCmd struct {
	Date string   `arg:"" optional:"" default:"today" help:"Date (YYYY-MM-DD or 'today')."`
	Text []string `arg:"" optional:"" help:"Entry text; empty deletes the entry."`
}

func (c *JournalWriteCmd) Run(ctx *Context) error {
	dateKey, err := resolveDate(c.Date, ctx.Now)
	if err != nil {
		return err
	}
	text := strings.Join(c.Text, " ")
	if err := ctx.Store.Apply(func(doc models.Document) (models.Document, error) {
		return engine.SaveJournal(doc, dateKey, text)
	}); err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		fmt.Printf("Deleted journal entry for %s\n", dateKey)
	} else {
		fmt.Printf("Saved journal entry for %s\n", dateKey)
	}
	return nil
}

type JournalShowCmd struct {
	Date string `arg:"" optional:"" default:"today" help:"Date (YYYY-MM-DD or 'today')."`
}

func (c *JournalShowCmd) Run(ctx *Context) error {
	dateKey, err := resolveDate(c.Date, ctx.Now)
	if err != nil {
		return err
	}
	entry, ok := ctx.Store.Document().Journal[dateKey]
	if !ok {
		fmt.Printf("No journal entry for %s\n", dateKey)
		return nil
	}
	fmt.Println(headerStyle.Render(dateKey))
	fmt.Println(entry.Text)
	return nil
}
