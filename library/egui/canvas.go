package egui

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Astera-org/simplot/library/canvas"
	"github.com/emer/etable/eplot"
	"github.com/goki/gi/gi"
	"github.com/goki/gi/oswin"
	"github.com/goki/gi/oswin/dnd"
	"github.com/goki/gi/oswin/mimedata"
	"github.com/goki/ki/ki"
	"github.com/goki/mat32"
)

// PlotAxis is a TableAxis shown in an eplot.Plot2D, with a label listing
// its legend below it.
type PlotAxis struct {
	*TableAxis
	Plot2D  *eplot.Plot2D
	Sources *gi.Label
}

// Update pushes the axis table and params to the plot. It is safe to
// call from another goroutine.
func (pa *PlotAxis) Update() {
	plt := pa.Plot2D
	plt.Params.Title = pa.Title
	plt.Params.XAxisCol = XCol
	switch pa.Mode {
	case canvas.OpScatter:
		plt.Params.Type = eplot.XY
		plt.Params.Lines = false
		plt.Params.Points = true
	case canvas.OpBar:
		plt.Params.Type = eplot.Bar
	default:
		plt.Params.Type = eplot.XY
		plt.Params.Lines = true
		plt.Params.Points = false
	}
	plt.SetTable(pa.Table)
	for _, nm := range pa.SeriesNames() {
		plt.SetColParams(nm, true, false, 0, false, 0)
	}
	pa.Sources.SetText(strings.Join(pa.Legend, "  "))
	plt.GoUpdate()
}

// CanvasView is the gi widget hosting a grid of PlotAxis. It is the
// Drawer and MenuPresenter of its Surface and turns drag-and-drop events
// on its frame into Surface calls.
type CanvasView struct {
	Frame   *gi.Frame
	Grid    *gi.Layout
	Axes    []*PlotAxis
	Surface *canvas.Surface

	// Lock, if set, is held around every Surface call made from gui events,
	// guarding state shared with a running simulation.
	Lock sync.Locker

	cols int
}

// AddNewCanvasView adds a canvas frame to parent.
func AddNewCanvasView(parent ki.Ki, name string) *CanvasView {
	cv := &CanvasView{}
	cv.Frame = gi.AddNewFrame(parent, name, gi.LayoutVert)
	cv.Frame.SetStretchMax()
	cv.Grid = gi.AddNewLayout(cv.Frame, "grid", gi.LayoutGrid)
	cv.Grid.SetStretchMax()
	cv.Grid.SetProp("columns", 1)
	return cv
}

// SetSurface binds the view to sf and starts listening for drops.
func (cv *CanvasView) SetSurface(sf *canvas.Surface) {
	cv.Surface = sf
	cv.Frame.ConnectEvent(oswin.DNDFocusEvent, gi.RegPri, func(recv, send ki.Ki, sig int64, d interface{}) {
		de := d.(*dnd.FocusEvent)
		if de.Action == dnd.Enter && cv.dragEnter(de.Data) {
			de.SetProcessed()
		}
	})
	cv.Frame.ConnectEvent(oswin.DNDMoveEvent, gi.RegPri, func(recv, send ki.Ki, sig int64, d interface{}) {
		de := d.(*dnd.MoveEvent)
		if cv.dragMove(de.Data) {
			de.SetProcessed()
		}
	})
	cv.Frame.ConnectEvent(oswin.DNDEvent, gi.RegPri, func(recv, send ki.Ki, sig int64, d interface{}) {
		de := d.(*dnd.Event)
		if de.Action != dnd.DropOnTarget {
			return
		}
		pos := mat32.Vec2{X: float32(de.Where.X), Y: float32(de.Where.Y)}
		if cv.drop(de.Data, pos) {
			de.SetProcessed()
		}
	})
}

func (cv *CanvasView) locked(fn func()) {
	if cv.Lock != nil {
		cv.Lock.Lock()
		defer cv.Lock.Unlock()
	}
	fn()
}

func (cv *CanvasView) dragEnter(md mimedata.Mimes) (ok bool) {
	cv.locked(func() { ok = cv.Surface.DragEnter(md) })
	return
}

func (cv *CanvasView) dragMove(md mimedata.Mimes) (ok bool) {
	cv.locked(func() { ok = cv.Surface.DragMove(md) })
	return
}

func (cv *CanvasView) drop(md mimedata.Mimes, pos mat32.Vec2) (ok bool) {
	cv.locked(func() {
		// a drop means any earlier popup is gone
		cv.Surface.Controller().Dismiss()
		ok = cv.Surface.Drop(md, pos)
	})
	return
}

// NewAxis implements canvas.Drawer, adding a plot to the grid.
func (cv *CanvasView) NewAxis(grid canvas.Grid, index int) (canvas.Axis, error) {
	if cv.Frame == nil {
		return nil, fmt.Errorf("egui: canvas view has no frame")
	}
	updt := cv.Grid.UpdateStart()
	defer cv.Grid.UpdateEnd(updt)
	if grid.Cols != cv.cols {
		cv.cols = grid.Cols
		cv.Grid.SetProp("columns", grid.Cols)
	}
	nm := fmt.Sprintf("axis%d", index)
	lay := gi.AddNewLayout(cv.Grid, nm, gi.LayoutVert)
	lay.SetStretchMax()
	pa := &PlotAxis{TableAxis: NewTableAxis()}
	pa.Plot2D = lay.AddNewChild(eplot.KiT_Plot2D, "plot").(*eplot.Plot2D)
	pa.Sources = gi.AddNewLabel(lay, "sources", "")
	pa.OnChange = func(ax *TableAxis) { pa.Update() }
	cv.Axes = append(cv.Axes, pa)
	return pa, nil
}

// ShowModeMenu implements canvas.MenuPresenter with a gi popup menu.
func (cv *CanvasView) ShowModeMenu(pos mat32.Vec2, choices []canvas.RecordModes, choose func(mode canvas.RecordModes) error, dismiss func()) {
	var m gi.Menu
	for _, rm := range choices {
		rm := rm
		m.AddAction(gi.ActOpts{Label: rm.Label(), Tooltip: "record " + rm.Field() + " of the dropped element"}, cv.Frame.This(),
			func(recv, send ki.Ki, sig int64, data interface{}) {
				var err error
				cv.locked(func() { err = choose(rm) })
				if err != nil && !errors.Is(err, canvas.ErrNoPendingDrop) {
					gi.PromptDialog(cv.Frame.Viewport, gi.DlgOpts{Title: "Recording Failed", Prompt: err.Error()}, gi.AddOk, gi.NoCancel, nil, nil)
				}
			})
	}
	pvp := gi.PopupMenu(m, int(pos.X), int(pos.Y), cv.Frame.Viewport, "record-mode")
	pvp.NodeSignal().Connect(cv.Frame.This(), func(recv, send ki.Ki, sig int64, data interface{}) {
		if sig == int64(ki.NodeSignalDeleting) {
			// a drop may hold Lock here; dismiss ignores any later drop
			go cv.locked(dismiss)
		}
	})
}

// UpdateAll redraws every axis, e.g. after new rows were recorded.
func (cv *CanvasView) UpdateAll() {
	for _, pa := range cv.Axes {
		pa.Update()
	}
}
