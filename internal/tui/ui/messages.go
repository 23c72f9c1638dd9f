package ui

import (
	"github.com/borchsolutions/tablero/internal/filter"
	"github.com/borchsolutions/tablero/internal/service"
)

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// FiltersChangedMsg is sent by the filters view whenever a field changes.
type FiltersChangedMsg struct {
	Spec filter.Spec
}

// DashboardUpdatedMsg is broadcast after the dashboard is recomputed.
type DashboardUpdatedMsg struct {
	Dashboard *service.Dashboard
}
