package state

import (
	"staffgrip/internal/domain"
)

// AppState contains the UI-side application state. The roster itself lives in
// the store and the scroll offset lives in the windowing engine; this is
// everything else the view needs.
type AppState struct {
	// Selection state
	SelectedIndex int // index into the currently displayed list

	// Loading state
	Progress domain.LoadProgress

	// UI state
	StatusMessage    string
	ShowHelp         bool
	HelpScrollOffset int

	// Filter state
	FilterQuery string
	IsFiltered  bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}
