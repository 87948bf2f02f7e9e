package canvas

import "github.com/goki/mat32"

// Series is one set of XY points handed to a drawing primitive.
// X and Y must have the same length.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// Axis is a single chart drawing surface produced by a Drawer.
// Drawing primitives are optional capabilities, see LinePlotter etc.
type Axis interface {
	SetTitle(title string)
	SetLegend(labels []string)
}

// LinePlotter draws a series as a connected line.
// It returns the name under which the backend stored the series.
type LinePlotter interface {
	Plot(s Series) (string, error)
}

// ScatterPlotter draws a series as unconnected points.
type ScatterPlotter interface {
	Scatter(s Series) (string, error)
}

// BarPlotter draws a series as bars.
type BarPlotter interface {
	Bar(s Series) (string, error)
}

// Drawer creates axes. index is the 0-based position of the new axis
// within grid, in row-major order.
type Drawer interface {
	NewAxis(grid Grid, index int) (Axis, error)
}

// Element is a recordable handle into the simulation data backend.
type Element interface {
	Path() string
	Name() string
}

// DataBackend resolves dropped identifiers and lists recordable elements.
// Lookup failures must wrap ErrLookupFailure.
type DataBackend interface {
	Lookup(path string) (Element, error)
	Recordables() []string
}

// Recorder creates recording tables sampling field of el over time.
type Recorder interface {
	CreateTable(el Element, field string) error
}

// MenuPresenter shows the recording mode menu at pos and returns
// immediately. Exactly one of choose or dismiss must be called later,
// from the UI event loop.
type MenuPresenter interface {
	ShowModeMenu(pos mat32.Vec2, choices []RecordModes, choose func(mode RecordModes) error, dismiss func())
}

// Context is the application context a Surface is built on.
type Context struct {
	Drawer   Drawer
	Data     DataBackend
	Recorder Recorder
	Menu     MenuPresenter
}
