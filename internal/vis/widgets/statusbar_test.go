package widgets

import (
	"testing"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
	"github.com/elektrokombinacija/pdfcoord/internal/vis/state"
)

func TestCoordinateLine(t *testing.T) {
	tests := []struct {
		snap state.Snapshot
		want string
	}{
		{state.Snapshot{}, "X: -  Y: -"},
		{state.Snapshot{HasPointer: true, Coord: core.Point{X: 2.54, Y: 1.694}}, "X: 2.54cm  Y: 1.69cm"},
		{state.Snapshot{HasPointer: true}, "X: 0.00cm  Y: 0.00cm"},
	}

	for _, tt := range tests {
		if got := CoordinateLine(tt.snap); got != tt.want {
			t.Errorf("CoordinateLine(%+v) = %q, want %q", tt.snap, got, tt.want)
		}
	}
}
