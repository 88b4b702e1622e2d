package views

import (
	"fmt"
	"strings"

	"staffgrip/internal/domain"
	"staffgrip/internal/windowing"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width           int
	Height          int
	Window          windowing.Window[domain.Employee]
	TotalCount      int // length of the displayed list, before windowing
	RosterCount     int // length of the full roster, ignoring filters
	SelectedIndex   int
	ScrollTop       float64
	ContainerHeight float64
	Loading         bool
	LoadedCount     int
	StatusMessage   string
	ShowHelp        bool
	HelpScroll      int
	FilterQuery     string
	IsFiltered      bool
	InputMode       string // "", "jump", "filter"
	TextInput       string
	ShowDepartment  bool
	ShowLocation    bool
}

// Renderer renders the roster list from a computed window
type Renderer struct {
	styles *Styles
	help   *HelpRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		styles: NewStyles(),
		help:   NewHelpRenderer(),
	}
}

// HelpPlain returns the full help text for the external pager
func (r *Renderer) HelpPlain() string {
	return r.help.Plain()
}

// Render produces the full screen content
func (r *Renderer) Render(vs ViewState) string {
	if vs.ShowHelp {
		return r.help.Render(vs.Height, vs.HelpScroll)
	}

	var b strings.Builder
	b.WriteString(r.renderHeader(vs))
	b.WriteString("\n")
	b.WriteString(r.renderList(vs))
	b.WriteString("\n")
	b.WriteString(r.renderStatusBar(vs))
	return b.String()
}

func (r *Renderer) renderHeader(vs ViewState) string {
	title := r.styles.Title.Render("staffgrip")
	if vs.Loading {
		title += " " + r.styles.Loading.Render(fmt.Sprintf("loading… %d", vs.LoadedCount))
	}
	if vs.IsFiltered {
		title += " " + r.styles.Filter.Render(fmt.Sprintf("[filter: %s]", vs.FilterQuery))
	}

	columns := fmt.Sprintf("  %-8s %-24s %-18s", "ID", "NAME", "TITLE")
	if vs.ShowDepartment {
		columns += fmt.Sprintf(" %-14s", "DEPARTMENT")
	}
	if vs.ShowLocation {
		columns += fmt.Sprintf(" %-10s", "LOCATION")
	}
	return title + "\n" + r.styles.Dim.Render(columns)
}

// renderList prints the rows of the computed window that actually intersect
// the viewport band. The window also carries overscan rows on either side;
// those exist for hosts that keep off-screen rows warm, and a terminal has
// nowhere to put them, so they are skipped here.
func (r *Renderer) renderList(vs ViewState) string {
	if vs.TotalCount == 0 {
		if vs.Loading {
			return r.styles.Dim.Render("  loading roster…")
		}
		if vs.IsFiltered {
			return r.styles.Dim.Render("  no employees match the filter")
		}
		return r.styles.Dim.Render("  roster is empty")
	}

	viewportEnd := vs.ScrollTop + vs.ContainerHeight
	lines := make([]string, 0, vs.Window.Len())
	for _, item := range vs.Window.Items {
		if item.End <= vs.ScrollTop || item.Start >= viewportEnd {
			continue
		}
		lines = append(lines, r.renderRow(vs, item))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderRow(vs ViewState, item windowing.Item[domain.Employee]) string {
	e := item.Value
	row := fmt.Sprintf("%-8s %-24s %-18s", e.ID, truncate(e.Name, 24), truncate(e.Title, 18))
	if vs.ShowDepartment {
		row += " " + r.styles.Department.Render(fmt.Sprintf("%-14s", truncate(e.Department, 14)))
	}
	if vs.ShowLocation {
		row += " " + r.styles.Location.Render(fmt.Sprintf("%-10s", truncate(e.Location, 10)))
	}

	if item.Index == vs.SelectedIndex {
		return r.styles.HighlightBg.Render("▶ " + row)
	}
	return "  " + row
}

func (r *Renderer) renderStatusBar(vs ViewState) string {
	switch vs.InputMode {
	case "jump":
		return r.styles.Filter.Render("go to index: ") + vs.TextInput
	case "filter":
		return r.styles.Filter.Render("filter: ") + vs.TextInput
	}

	var parts []string
	if vs.TotalCount > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d", vs.SelectedIndex+1, vs.TotalCount))
	}
	if vs.IsFiltered {
		parts = append(parts, fmt.Sprintf("%d of %d shown", vs.TotalCount, vs.RosterCount))
	}
	if vs.ScrollTop > 0 {
		parts = append(parts, "↑")
	}
	if float64(vs.TotalCount)*heightPerItem(vs) > vs.ScrollTop+vs.ContainerHeight {
		parts = append(parts, "↓")
	}
	if vs.StatusMessage != "" {
		parts = append(parts, vs.StatusMessage)
	}
	parts = append(parts, r.styles.Help.Render("? help  q quit"))
	return r.styles.Status.Render(strings.Join(parts, "  "))
}

// heightPerItem recovers the item height from the window when it has rows,
// falling back to the window total
func heightPerItem(vs ViewState) float64 {
	if vs.Window.Len() > 0 {
		first := vs.Window.Items[0]
		return first.End - first.Start
	}
	if vs.TotalCount > 0 {
		return vs.Window.TotalHeight / float64(vs.TotalCount)
	}
	return 0
}

// truncate shortens to max runes; slicing bytes would split multibyte names
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
