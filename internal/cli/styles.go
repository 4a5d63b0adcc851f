package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mbowen/daybook/internal/models"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308"))
	vacationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3182ce")).Bold(true)
	insightStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d69e2e"))
)

var categoryColors = map[models.Category]string{
	models.CategoryHealth:   "#e53e3e",
	models.CategoryStudy:    "#805ad5",
	models.CategoryWork:     "#dd6b20",
	models.CategorySocial:   "#38a169",
	models.CategoryPersonal: "#d69e2e",
	models.CategoryCreative: "#d53f8c",
	models.CategoryFinance:  "#3182ce",
	models.CategoryHome:     "#718096",
}

var tierColors = map[int]string{
	1: "#22c55e",
	2: "#eab308",
	3: "#ef4444",
}

func categoryStyle(c models.Category) lipgloss.Style {
	color, ok := categoryColors[c]
	if !ok {
		color = "#888888"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func tierStyle(tier int) lipgloss.Style {
	color, ok := tierColors[tier]
	if !ok {
		color = "#888888"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
