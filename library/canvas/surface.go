package canvas

import (
	"fmt"
	"log"

	"github.com/Astera-org/simplot/library/estats"
	"github.com/goki/gi/oswin/mimedata"
	"github.com/goki/mat32"
)

// Options configure a Surface.
type Options struct {
	// LegendOrder sorts the data source labels shown on new subplots. Default Descending.
	LegendOrder LabelOrder
	// Logf receives diagnostics. Default log.Printf.
	Logf func(format string, args ...interface{})
}

// StatNames are the counters a Surface keeps in its Stats.
var StatNames = []string{"Subplots", "Plots", "Drops", "DropsRejected", "Recordings"}

// Surface is the plotting canvas: a grid of axes, a dispatcher drawing on
// the current one, and drag-and-drop recording of data elements.
type Surface struct {
	Ctx   *Context
	Opts  Options
	Stats estats.Stats

	reg  *Registry
	disp *Dispatcher
	drop *DropController
}

// NewSurface builds a surface on the given application context.
func NewSurface(ctx *Context, opts Options) *Surface {
	if opts.LegendOrder == nil {
		opts.LegendOrder = Descending
	}
	if opts.Logf == nil {
		opts.Logf = log.Printf
	}
	sf := &Surface{Ctx: ctx, Opts: opts}
	sf.Stats.Init()
	for _, nm := range StatNames {
		sf.Stats.SetInt(nm, 0)
	}
	sf.reg = NewRegistry(ctx.Drawer)
	sf.disp = &Dispatcher{Reg: sf.reg}
	sf.drop = &DropController{Data: ctx.Data, Recorder: ctx.Recorder, Menu: ctx.Menu, Logf: opts.Logf}
	sf.drop.OnDispatched = func(req DropRequest, err error) {
		if err == nil {
			sf.Stats.IncInt("Recordings")
		}
	}
	return sf
}

// AddSubplot adds an axis to a rows x cols grid, makes it current and
// gives it a legend of the data backend's recordable elements.
func (sf *Surface) AddSubplot(rows, cols int) (Axis, error) {
	sl, err := sf.reg.Allocate(Grid{Rows: rows, Cols: cols})
	if err != nil {
		return nil, err
	}
	sf.setLegend(sl)
	sf.Stats.IncInt("Subplots")
	return sl.Axis, nil
}

func (sf *Surface) setLegend(sl *Slot) {
	if sf.Ctx.Data == nil {
		return
	}
	sl.Axis.SetLegend(SortedLabels(sf.Ctx.Data.Recordables(), sf.Opts.LegendOrder))
}

// Dispatch draws s with op on the current axis, creating one if needed.
func (sf *Surface) Dispatch(op Ops, s Series) (string, error) {
	hadAxis := sf.reg.Current() != nil
	res, err := sf.disp.Dispatch(op, s)
	if !hadAxis && sf.reg.Current() != nil {
		sf.setLegend(sf.reg.Current())
		sf.Stats.IncInt("Subplots")
	}
	if err == nil {
		sf.Stats.IncInt("Plots")
	}
	return res, err
}

// PlotOn draws s as a line on axis id without making it current.
func (sf *Surface) PlotOn(id int, s Series) (string, error) {
	sl, has := sf.reg.Slot(id)
	if !has {
		return "", fmt.Errorf("%w: %d", ErrUnknownAxis, id)
	}
	res, err := sf.disp.DispatchTo(sl, OpPlot, s)
	if err == nil {
		sf.Stats.IncInt("Plots")
	}
	return res, err
}

// Plot draws s as a line on the current axis.
func (sf *Surface) Plot(s Series) (string, error) {
	return sf.Dispatch(OpPlot, s)
}

// Select makes axis id current.
func (sf *Surface) Select(id int) error {
	return sf.reg.Select(id)
}

// Current returns the current axis slot, or nil.
func (sf *Surface) Current() *Slot {
	return sf.reg.Current()
}

func (sf *Surface) Registry() *Registry         { return sf.reg }
func (sf *Surface) Controller() *DropController { return sf.drop }

// DragEnter reports whether a drag carrying md may enter the surface.
func (sf *Surface) DragEnter(md mimedata.Mimes) bool {
	return sf.drop.Accepts(md)
}

// DragMove reports whether a drag carrying md may move over the surface.
func (sf *Surface) DragMove(md mimedata.Mimes) bool {
	return sf.drop.Accepts(md)
}

// Drop handles a drop of md at pos, returning whether it was accepted.
func (sf *Surface) Drop(md mimedata.Mimes, pos mat32.Vec2) bool {
	sf.Stats.IncInt("Drops")
	ok := sf.drop.Drop(md, pos)
	if !ok {
		sf.Stats.IncInt("DropsRejected")
	}
	return ok
}
