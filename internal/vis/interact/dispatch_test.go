package interact

import (
	"testing"

	"gioui.org/io/key"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name     string
		key      key.Name
		mods     key.Modifiers
		helpOpen bool
		want     Command
	}{
		{"escape closes help", key.NameEscape, 0, true, Command{Kind: CmdCloseHelp}},
		{"escape without help", key.NameEscape, 0, false, Command{}},
		{"plain down scrolls", key.NameDownArrow, 0, false, Command{Kind: CmdScroll, DY: LineScroll}},
		{"plain left scrolls", key.NameLeftArrow, 0, false, Command{Kind: CmdScroll, DX: -LineScroll}},
		{"ctrl up fixed scroll", key.NameUpArrow, key.ModCtrl, false, Command{Kind: CmdScroll, DY: -FixedScroll}},
		{"page down", key.NamePageDown, 0, false, Command{Kind: CmdScrollPage, DY: 1}},
		{"alt right nudges", key.NameRightArrow, key.ModAlt, false, Command{Kind: CmdNudge, DX: 1}},
		{"alt up nudges", key.NameUpArrow, key.ModAlt, false, Command{Kind: CmdNudge, DY: -1}},
		{"alt shift arrow ignored", key.NameUpArrow, key.ModAlt | key.ModShift, false, Command{}},
		{"ctrl left previous", key.NameLeftArrow, key.ModCtrl, false, Command{Kind: CmdPreviousPage}},
		{"ctrl right next", key.NameRightArrow, key.ModCtrl, false, Command{Kind: CmdNextPage}},
		{"P previous", "P", 0, false, Command{Kind: CmdPreviousPage}},
		{"N next", "N", 0, false, Command{Kind: CmdNextPage}},
		{"ctrl N ignored", "N", key.ModCtrl, false, Command{}},
		{"plus", "+", key.ModShift, false, Command{Kind: CmdZoomIn}},
		{"equals", "=", 0, false, Command{Kind: CmdZoomIn}},
		{"minus", "-", 0, false, Command{Kind: CmdZoomOut}},
		{"reload", "R", 0, false, Command{Kind: CmdReload}},
		{"help", "H", 0, false, Command{Kind: CmdOpenHelp}},
		{"open", "O", 0, false, Command{Kind: CmdOpen}},
		{"unbound", "Q", 0, false, Command{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Route(tt.key, tt.mods, tt.helpOpen); got != tt.want {
				t.Errorf("Route(%q, %v, %v) = %+v, want %+v", tt.key, tt.mods, tt.helpOpen, got, tt.want)
			}
		})
	}
}

func TestPlaceTooltip(t *testing.T) {
	bounds := core.Size{Width: 400, Height: 300}
	tip := core.Size{Width: 100, Height: 20}

	tests := []struct {
		name    string
		pointer core.Point
		want    core.Point
	}{
		{"below right", core.Point{X: 50, Y: 50}, core.Point{X: 62, Y: 62}},
		{"flip left", core.Point{X: 350, Y: 50}, core.Point{X: 238, Y: 62}},
		{"flip up", core.Point{X: 50, Y: 290}, core.Point{X: 62, Y: 258}},
		{"corner", core.Point{X: 400, Y: 300}, core.Point{X: 288, Y: 268}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlaceTooltip(tt.pointer, tip, bounds); got != tt.want {
				t.Errorf("PlaceTooltip(%v) = %v, want %v", tt.pointer, got, tt.want)
			}
		})
	}

	// A tooltip wider than the canvas stays at the margin.
	got := PlaceTooltip(core.Point{X: 10, Y: 10}, core.Size{Width: 500, Height: 20}, bounds)
	if got.X != TooltipMargin {
		t.Errorf("wide tooltip X = %v, want %v", got.X, TooltipMargin)
	}
}
