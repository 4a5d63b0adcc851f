package cli

import (
	"fmt"

	"github.com/mbowen/daybook/internal/engine"
	"github.com/mbowen/daybook/internal/models"
)

type ClassAddCmd struct {
	Name     string `arg:"" help:"Class name."`
	Code     string `short:"c" help:"Course code."`
	Days     string `short:"d" required:"" help:"Comma-separated meeting days."`
	Time     string `short:"t" help:"Meeting time, free text (e.g. '10:00 AM')."`
	Location string `short:"l" help:"Location, free text."`
	Color    string `help:"Display color (hex)."`
}

func (c *ClassAddCmd) Run(ctx *Context) error {
	days, err := parseWeekdays(c.Days)
	if err != nil {
		return err
	}
	in := engine.ClassInput{
		Code:     c.Code,
		Name:     c.Name,
		Time:     c.Time,
		Location: c.Location,
		Days:     days,
		Color:    c.Color,
	}
	if err := ctx.Store.Apply(func(doc models.Document) (models.Document, error) {
		return engine.SaveClass(doc, in, "")
	}); err != nil {
		return err
	}
	fmt.Printf("Added class: %s (%s)\n", c.Name, formatDays(days))
	return nil
}

type ClassEditCmd struct {
	Ref      string `arg:"" help:"Class id, name or code."`
	Name     string `help:"New name."`
	Code     string `short:"c" help:"New course code."`
	Days     string `short:"d" help:"New meeting days."`
	Time     string `short:"t" help:"New meeting time."`
	Location string `short:"l" help:"New location."`
	Color    string `help:"New display color."`
}

func (c *ClassEditCmd) Run(ctx *Context) error {
	cls, err := findClass(ctx.Store.Document(), c.Ref)
	if err != nil {
		return err
	}

	in := engine.ClassInput{
		Code:     cls.Code,
		Name:     cls.Name,
		Time:     cls.Time,
		Location: cls.Location,
		Days:     cls.Days,
		Color:    cls.Color,
	}
	if c.Name != "" {
		in.Name = c.Name
	}
	if c.Code != "" {
		in.Code = c.Code
	}
	if c.Days != "" {
		days, err := parseWeekdays(c.Days)
		if err != nil {
			return err
		}
		in.Days = days
	}
	if c.Time != "" {
		in.Time = c.Time
	}
	if c.Location != "" {
		in.Location = c.Location
	}
	if c.Color != "" {
		in.Color = c.Color
	}

	if err := ctx.Store.Apply(func(doc models.Document) (models.Document, error) {
		return engine.SaveClass(doc, in, cls.ID)
	}); err != nil {
		return err
	}
	fmt.Printf("Updated class: %s\n", in.Name)
	return nil
}

type ClassListCmd struct{}

func (c *ClassListCmd) Run(ctx *Context) error {
	doc := ctx.Store.Document()
	if len(doc.Classes) == 0 {
		fmt.Println("No classes yet")
		return nil
	}
	fmt.Println("Classes:")
	for _, cls := range doc.Classes {
		code := ""
		if cls.Code != "" {
			code = cls.Code + " "
		}
		fmt.Printf("  %s%s  %s", code, cls.Name, dimStyle.Render(formatDays(cls.Days)))
		if cls.Time != "" {
			fmt.Printf("  %s", dimStyle.Render(cls.Time))
		}
		if cls.Location != "" {
			fmt.Printf("  %s", dimStyle.Render("@ "+cls.Location))
		}
		fmt.Println()
	}
	return nil
}

type ClassDeleteCmd struct {
	Ref string `arg:"" help:"Class id, name or code."`
}

func (c *ClassDeleteCmd) Run(ctx *Context) error {
	cls, err := findClass(ctx.Store.Document(), c.Ref)
	if err != nil {
		return err
	}
	if err := ctx.Store.Apply(func(doc models.Document) (models.Document, error) {
		return engine.DeleteClass(doc, cls.ID)
	}); err != nil {
		return err
	}
	// Class deletion is not undoable.
	fmt.Printf("Deleted class %q\n", cls.Name)
	return nil
}
