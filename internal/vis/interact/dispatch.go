package interact

import "gioui.org/io/key"

// Scroll distances in CSS pixels.
const (
	LineScroll  = 40.0
	FixedScroll = 120.0
	NudgeStep   = 1.0
)

// CommandKind identifies what a key press asks the viewer to do.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdCloseHelp
	CmdScroll     // DX/DY in CSS pixels
	CmdScrollPage // DY is +1 or -1 visible pages
	CmdNudge      // DX/DY in CSS pixels
	CmdPreviousPage
	CmdNextPage
	CmdZoomIn
	CmdZoomOut
	CmdReload
	CmdOpenHelp
	CmdOpen
)

// Command is the result of routing a key press.
type Command struct {
	Kind   CommandKind
	DX, DY float64
}

// Route maps a key press to a command. Rules are checked in priority order
// and the first match wins.
func Route(name key.Name, mods key.Modifiers, helpOpen bool) Command {
	ctrl := mods.Contain(key.ModCtrl)
	alt := mods.Contain(key.ModAlt)
	shift := mods.Contain(key.ModShift)

	if name == key.NameEscape && helpOpen {
		return Command{Kind: CmdCloseHelp}
	}

	dx, dy, arrow := arrowDelta(name)

	if !alt {
		switch {
		case arrow && !ctrl:
			return Command{Kind: CmdScroll, DX: dx * LineScroll, DY: dy * LineScroll}
		case arrow && ctrl && dy != 0:
			return Command{Kind: CmdScroll, DY: dy * FixedScroll}
		case name == key.NamePageUp:
			return Command{Kind: CmdScrollPage, DY: -1}
		case name == key.NamePageDown:
			return Command{Kind: CmdScrollPage, DY: 1}
		}
	}

	if arrow && alt && !ctrl && !shift {
		return Command{Kind: CmdNudge, DX: dx * NudgeStep, DY: dy * NudgeStep}
	}

	if ctrl && !alt {
		switch name {
		case key.NameLeftArrow:
			return Command{Kind: CmdPreviousPage}
		case key.NameRightArrow:
			return Command{Kind: CmdNextPage}
		}
	}
	if ctrl || alt {
		return Command{}
	}

	switch name {
	case "P":
		return Command{Kind: CmdPreviousPage}
	case "N":
		return Command{Kind: CmdNextPage}
	case "+", "=":
		return Command{Kind: CmdZoomIn}
	case "-":
		return Command{Kind: CmdZoomOut}
	case "R":
		return Command{Kind: CmdReload}
	case "H":
		return Command{Kind: CmdOpenHelp}
	case "O":
		return Command{Kind: CmdOpen}
	}
	return Command{}
}

func arrowDelta(name key.Name) (dx, dy float64, ok bool) {
	switch name {
	case key.NameLeftArrow:
		return -1, 0, true
	case key.NameRightArrow:
		return 1, 0, true
	case key.NameUpArrow:
		return 0, -1, true
	case key.NameDownArrow:
		return 0, 1, true
	}
	return 0, 0, false
}
