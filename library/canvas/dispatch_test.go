package canvas

import (
	"errors"
	"testing"
)

func TestDispatchCreatesDefaultAxis(t *testing.T) {
	fd := &fakeDrawer{}
	dp := &Dispatcher{Reg: NewRegistry(fd)}
	res, err := dp.Plot(Series{Name: "v", X: []float64{0, 1}, Y: []float64{1, 2}})
	if err != nil {
		t.Fatal(err)
	}
	if res != "v" {
		t.Errorf("result not forwarded: %q", res)
	}
	if len(fd.calls) != 1 || fd.calls[0] != (Grid{1, 1}) {
		t.Errorf("expected one 1x1 allocation, got %v", fd.calls)
	}
	if _, err := dp.Dispatch(OpScatter, Series{Name: "w"}); err != nil {
		t.Fatal(err)
	}
	if len(fd.calls) != 1 {
		t.Errorf("second dispatch allocated again")
	}
	if got := fd.axes[0].drawn; len(got) != 2 || got[0] != "plot:v" || got[1] != "scatter:w" {
		t.Errorf("unexpected draw calls %v", got)
	}
}

func TestDispatchUsesCurrentAxis(t *testing.T) {
	fd := &fakeDrawer{}
	rg := NewRegistry(fd)
	rg.Allocate(Grid{1, 2})
	rg.Allocate(Grid{1, 2})
	rg.Select(0)
	dp := &Dispatcher{Reg: rg}
	dp.Plot(Series{Name: "a"})
	if len(fd.axes[0].drawn) != 1 || len(fd.axes[1].drawn) != 0 {
		t.Errorf("plot went to wrong axis")
	}
}

func TestDispatchUnknownOperation(t *testing.T) {
	fd := &fakeDrawer{}
	dp := &Dispatcher{Reg: NewRegistry(fd)}
	if _, err := dp.Dispatch(OpBar, Series{Name: "b"}); !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("fake axis has no Bar, expected ErrUnknownOperation, got %v", err)
	}
	if _, err := dp.Dispatch(Ops(42), Series{}); !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("expected ErrUnknownOperation for out of range op, got %v", err)
	}
}

func TestDispatchBackendError(t *testing.T) {
	dp := &Dispatcher{Reg: NewRegistry(&fakeDrawer{})}
	_, err := dp.Dispatch(OpScatter, Series{X: []float64{1}})
	if err == nil || errors.Is(err, ErrUnknownOperation) {
		t.Errorf("expected backend error to propagate, got %v", err)
	}
}
