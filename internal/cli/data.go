package cli

import (
	"errors"
	"fmt"

	"github.com/mbowen/daybook/internal/backup"
	"github.com/mbowen/daybook/internal/models"
)

type ExportCmd struct {
	Path string `arg:"" help:"Destination file for the JSON export."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	doc := ctx.Store.Document()
	if err := backup.Export(doc, c.Path); err != nil {
		return err
	}
	fmt.Printf("Exported to %s\n", c.Path)
	return nil
}

type ImportCmd struct {
	Path string `arg:"" help:"Exported JSON file to load."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	// Parse completely before touching the live document so a bad file
	// cannot leave it half-replaced.
	doc, err := backup.Import(c.Path)
	if err != nil {
		var perr *backup.ParseError
		if errors.As(err, &perr) {
			fmt.Println("Import failed, current data is unchanged")
		}
		return err
	}

	ok, err := confirm(fmt.Sprintf("Replace all current data with %s?", c.Path), ctx.Yes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled")
		return nil
	}

	if err := ctx.Store.Replace(doc); err != nil {
		return err
	}
	fmt.Printf("Imported %s\n", c.Path)
	return nil
}

type ResetCmd struct{}

func (c *ResetCmd) Run(ctx *Context) error {
	ok, err := confirm("Erase ALL data and start fresh? This cannot be undone.", ctx.Yes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled")
		return nil
	}

	if err := ctx.Store.Replace(models.Default()); err != nil {
		return err
	}
	if err := ctx.Provider.Reset(); err != nil {
		return err
	}
	fmt.Println("All data reset to defaults")
	return nil
}
