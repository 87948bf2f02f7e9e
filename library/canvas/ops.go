package canvas

import "github.com/goki/ki/kit"

// Ops are the drawing primitives a Dispatcher can route to an axis.
type Ops int32

//go:generate stringer -type=Ops

var KiT_Ops = kit.Enums.AddEnum(OpsN, kit.NotBitFlag, nil)

func (ev Ops) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Ops) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// OpPlot draws a line, see LinePlotter
	OpPlot Ops = iota

	// OpScatter draws points, see ScatterPlotter
	OpScatter

	// OpBar draws bars, see BarPlotter
	OpBar

	OpsN
)
