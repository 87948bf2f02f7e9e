package canvas

import "fmt"

// Dispatcher routes drawing calls to the current axis of a Registry,
// creating a single 1x1 axis on first use.
type Dispatcher struct {
	Reg *Registry
}

// Dispatch runs op with s on the current axis and returns the backend result
// unchanged. ErrUnknownOperation is returned when the axis lacks op.
func (dp *Dispatcher) Dispatch(op Ops, s Series) (string, error) {
	if dp.Reg.Current() == nil {
		if _, err := dp.Reg.Allocate(Grid{Rows: 1, Cols: 1}); err != nil {
			return "", err
		}
	}
	return dp.DispatchTo(dp.Reg.Current(), op, s)
}

// DispatchTo runs op with s on the axis of sl, leaving the current axis alone.
func (dp *Dispatcher) DispatchTo(sl *Slot, op Ops, s Series) (string, error) {
	ax := sl.Axis
	switch op {
	case OpPlot:
		if p, ok := ax.(LinePlotter); ok {
			return p.Plot(s)
		}
	case OpScatter:
		if p, ok := ax.(ScatterPlotter); ok {
			return p.Scatter(s)
		}
	case OpBar:
		if p, ok := ax.(BarPlotter); ok {
			return p.Bar(s)
		}
	}
	return "", fmt.Errorf("%w: %v", ErrUnknownOperation, op)
}

// Plot is Dispatch(OpPlot, s).
func (dp *Dispatcher) Plot(s Series) (string, error) {
	return dp.Dispatch(OpPlot, s)
}
