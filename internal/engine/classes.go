package engine

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/mbowen/daybook/internal/models"
)

// ClassInput carries the editable fields of a class session.
type ClassInput struct {
	Code     string
	Name     string
	Time     string
	Location string
	Days     []int
	Color    string
}

// SaveClass upserts a class session. Unlike habits there is no duplicate-name
// check; several sections of the same course are legitimate.
func SaveClass(doc models.Document, in ClassInput, editID string) (models.Document, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return doc, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if len(in.Days) == 0 {
		return doc, &ValidationError{Field: "days", Reason: "select at least one day"}
	}
	days, err := normalizeWeekdays(in.Days)
	if err != nil {
		return doc, err
	}
	sort.Ints(days)

	cls := models.ClassSession{
		ID:       editID,
		Code:     in.Code,
		Name:     name,
		Time:     in.Time,
		Location: in.Location,
		Days:     days,
		Color:    in.Color,
	}

	next := doc.Clone()
	if editID != "" {
		for i, c := range next.Classes {
			if c.ID == editID {
				next.Classes[i] = cls
				return next, nil
			}
		}
		return doc, &NotFoundError{Kind: "class", ID: editID}
	}
	cls.ID = uuid.NewString()
	next.Classes = append(next.Classes, cls)
	return next, nil
}

// DeleteClass removes a class session. Class deletion is not undoable.
func DeleteClass(doc models.Document, id string) (models.Document, error) {
	for i, c := range doc.Classes {
		if c.ID == id {
			next := doc.Clone()
			next.Classes = append(next.Classes[:i], next.Classes[i+1:]...)
			return next, nil
		}
	}
	return doc, &NotFoundError{Kind: "class", ID: id}
}
