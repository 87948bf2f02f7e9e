package egui

import (
	"fmt"
	"math"
	"sort"

	"github.com/Astera-org/simplot/library/canvas"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// XCol is the name of the shared X column of an axis table.
const XCol = "X"

// TableAxis is an axis that keeps what is drawn on it in an etable.Table:
// one X column holding the union of all series X values, and one column
// per series, NaN where a series has no point. It needs no display.
type TableAxis struct {
	Title  string        `desc:"axis title, e.g. A"`
	Legend []string      `desc:"labels of the data sources available for this axis"`
	Mode   canvas.Ops    `desc:"primitive used for the most recent draw"`
	Table  *etable.Table `view:"no-inline" desc:"drawn data, rebuilt on every draw"`

	// OnChange, if set, is called after every change to the axis.
	OnChange func(ax *TableAxis)

	series []canvas.Series
}

// NewTableAxis returns an empty axis.
func NewTableAxis() *TableAxis {
	ax := &TableAxis{Table: &etable.Table{}}
	ax.rebuild()
	return ax
}

func (ax *TableAxis) SetTitle(title string) {
	ax.Title = title
	ax.changed()
}

func (ax *TableAxis) SetLegend(labels []string) {
	ax.Legend = labels
	ax.changed()
}

// Plot draws s as a line.
func (ax *TableAxis) Plot(s canvas.Series) (string, error) {
	return ax.draw(canvas.OpPlot, s)
}

// Scatter draws s as points.
func (ax *TableAxis) Scatter(s canvas.Series) (string, error) {
	return ax.draw(canvas.OpScatter, s)
}

// Bar draws s as bars.
func (ax *TableAxis) Bar(s canvas.Series) (string, error) {
	return ax.draw(canvas.OpBar, s)
}

// SeriesNames returns the column names of all series, in draw order.
func (ax *TableAxis) SeriesNames() []string {
	nms := make([]string, len(ax.series))
	for i, s := range ax.series {
		nms[i] = s.Name
	}
	return nms
}

// draw adds s, replacing an earlier series of the same name, and returns
// the column name it is stored under.
func (ax *TableAxis) draw(op canvas.Ops, s canvas.Series) (string, error) {
	if len(s.X) != len(s.Y) {
		return "", fmt.Errorf("egui: series %q has %d x and %d y values", s.Name, len(s.X), len(s.Y))
	}
	if s.Name == "" || s.Name == XCol {
		s.Name = fmt.Sprintf("Y%d", len(ax.series))
	}
	replaced := false
	for i := range ax.series {
		if ax.series[i].Name == s.Name {
			ax.series[i] = s
			replaced = true
		}
	}
	if !replaced {
		ax.series = append(ax.series, s)
	}
	ax.Mode = op
	ax.rebuild()
	ax.changed()
	return s.Name, nil
}

func (ax *TableAxis) rebuild() {
	rows := make(map[float64]int)
	var xs []float64
	for _, s := range ax.series {
		for _, x := range s.X {
			if _, has := rows[x]; !has {
				rows[x] = 0
				xs = append(xs, x)
			}
		}
	}
	sort.Float64s(xs)
	for i, x := range xs {
		rows[x] = i
	}
	sch := etable.Schema{{Name: XCol, Type: etensor.FLOAT64}}
	for _, s := range ax.series {
		sch = append(sch, etable.Column{Name: s.Name, Type: etensor.FLOAT64})
	}
	dt := ax.Table
	dt.SetFromSchema(sch, len(xs))
	dt.SetMetaData("name", "Axis"+ax.Title)
	for row, x := range xs {
		dt.SetCellFloat(XCol, row, x)
		for _, s := range ax.series {
			dt.SetCellFloat(s.Name, row, math.NaN())
		}
	}
	for _, s := range ax.series {
		for i, x := range s.X {
			dt.SetCellFloat(s.Name, rows[x], s.Y[i])
		}
	}
}

func (ax *TableAxis) changed() {
	if ax.OnChange != nil {
		ax.OnChange(ax)
	}
}

// TableDrawer creates TableAxis axes, for running without a display.
type TableDrawer struct {
	Axes []*TableAxis
	Grid canvas.Grid `desc:"grid of the most recently created axis"`
}

// NewAxis implements canvas.Drawer.
func (td *TableDrawer) NewAxis(grid canvas.Grid, index int) (canvas.Axis, error) {
	ax := NewTableAxis()
	td.Axes = append(td.Axes, ax)
	td.Grid = grid
	return ax, nil
}
