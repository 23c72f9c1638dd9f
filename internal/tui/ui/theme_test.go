package ui

import (
	"testing"
)

func TestNewThemeProvider_Default(t *testing.T) {
	tp := NewThemeProvider("")

	if tp == nil {
		t.Fatal("expected non-nil ThemeProvider")
	}
	if tp.CurrentName() != DefaultTheme {
		t.Errorf("expected default theme %q, got %q", DefaultTheme, tp.CurrentName())
	}
}

func TestNewThemeProvider_WithTheme(t *testing.T) {
	tp := NewThemeProvider("nord")

	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme 'nord', got %q", tp.CurrentName())
	}
}

func TestNewThemeProvider_UnknownTheme(t *testing.T) {
	tp := NewThemeProvider("nonexistent-theme-xyz")

	if tp.CurrentName() != DefaultTheme {
		t.Errorf("expected fallback to %q, got %q", DefaultTheme, tp.CurrentName())
	}
}

func TestThemeProvider_SetTheme(t *testing.T) {
	tp := NewThemeProvider("")

	if !tp.SetTheme("nord") {
		t.Error("expected SetTheme to return true for a known theme")
	}
	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme 'nord', got %q", tp.CurrentName())
	}

	if tp.SetTheme("nonexistent-theme-xyz") {
		t.Error("expected SetTheme to return false for an unknown theme")
	}
	if tp.CurrentName() != "nord" {
		t.Error("unknown theme must not change the current theme")
	}
}

func TestThemeProvider_NextTheme(t *testing.T) {
	tp := NewThemeProvider("dracula")

	next := tp.NextTheme()
	if tp.CurrentName() != next {
		t.Errorf("CurrentName() = %q, NextTheme() returned %q", tp.CurrentName(), next)
	}
}

func TestThemeProvider_AvailableThemes(t *testing.T) {
	tp := NewThemeProvider("")
	themes := tp.AvailableThemes()

	if len(themes) == 0 {
		t.Fatal("expected at least one available theme")
	}
	found := false
	for i, theme := range themes {
		if i > 0 && theme < themes[i-1] {
			t.Errorf("themes not sorted: %q < %q", theme, themes[i-1])
		}
		if theme == "dracula" {
			found = true
		}
	}
	if !found {
		t.Error("expected 'dracula' in available themes")
	}
}

func TestThemeProvider_CurrentDisplayName(t *testing.T) {
	if NewThemeProvider("dracula").CurrentDisplayName() == "" {
		t.Error("expected non-empty display name")
	}
}
