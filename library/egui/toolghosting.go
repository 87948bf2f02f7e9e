package egui

import "github.com/goki/ki/kit"

// ToolGhosting says when a toolbar item is active
type ToolGhosting int32

//go:generate stringer -type=ToolGhosting

var KiT_ToolGhosting = kit.Enums.AddEnum(ToolGhostingN, kit.NotBitFlag, nil)

func (ev ToolGhosting) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *ToolGhosting) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// ActiveStopped is active only while the simulation is not running
	ActiveStopped ToolGhosting = iota

	// ActiveRunning is active only while the simulation is running
	ActiveRunning

	// ActiveAlways is always active
	ActiveAlways

	ToolGhostingN
)

// ToolbarItem describes one toolbar action
type ToolbarItem struct {
	Label   string
	Icon    string
	Tooltip string
	Active  ToolGhosting
	Func    func()
}
