package main

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	BulletStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).PaddingRight(1)
	TextStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	DimTextStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	SpinnerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	FileStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).PaddingLeft(2)
	TimeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	StateStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).PaddingLeft(2)
	SelectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).PaddingLeft(2)
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	SectionStyle   = lipgloss.NewStyle().PaddingLeft(2)
	WarningStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 2).
			MarginLeft(2)
)
