package model

import (
	"errors"
	"math"
	"testing"

	"github.com/Astera-org/simplot/library/canvas"
)

func testModel(t *testing.T) *Model {
	md := New("model")
	if _, err := md.AddPool("compartment1", 1, 2, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := md.AddPool("compartment2", 0, 2, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := md.AddReac("compartment1", "compartment2", 1, 1); err != nil {
		t.Fatal(err)
	}
	return md
}

func TestLookup(t *testing.T) {
	md := testModel(t)
	for _, pth := range []string{"/model/compartment1", "/model//compartment1/", "compartment1"} {
		el, err := md.Lookup(pth)
		if err != nil {
			t.Errorf("lookup %q: %v", pth, err)
			continue
		}
		if el.Path() != "/model/compartment1" || el.Name() != "compartment1" {
			t.Errorf("lookup %q gave %s", pth, el.Path())
		}
	}
	for _, pth := range []string{"", "/model/nosuch", "/other/compartment1"} {
		if _, err := md.Lookup(pth); !errors.Is(err, canvas.ErrLookupFailure) {
			t.Errorf("lookup %q: expected ErrLookupFailure, got %v", pth, err)
		}
	}
}

func TestAddPoolErrors(t *testing.T) {
	md := testModel(t)
	if _, err := md.AddPool("compartment1", 0, 1, 0); err == nil {
		t.Error("duplicate pool accepted")
	}
	if _, err := md.AddPool("a/b", 0, 1, 0); err == nil {
		t.Error("pool name with slash accepted")
	}
	if _, err := md.AddReac("compartment1", "nosuch", 1, 1); err == nil {
		t.Error("reaction with unknown product accepted")
	}
}

func TestRecordables(t *testing.T) {
	md := testModel(t)
	nms := md.Recordables()
	if len(nms) != 2 || nms[0] != "compartment1" || nms[1] != "compartment2" {
		t.Errorf("unexpected recordables %v", nms)
	}
}

func TestStepConserves(t *testing.T) {
	md := testModel(t)
	for i := 0; i < 1000; i++ {
		md.Step(0.01)
	}
	a, _ := md.Pool("compartment1")
	b, _ := md.Pool("compartment2")
	if math.Abs(a.Conc+b.Conc-1) > 1e-9 {
		t.Errorf("mass not conserved: %g + %g", a.Conc, b.Conc)
	}
	if math.Abs(a.Conc-0.5) > 1e-3 {
		t.Errorf("expected equilibrium at 0.5, got %g", a.Conc)
	}
	if md.Steps.Cur != 1000 || math.Abs(md.Time-10) > 1e-9 {
		t.Errorf("steps %d time %g", md.Steps.Cur, md.Time)
	}
	if a.Range.Max != 1 || a.Range.Min > 0.501 {
		t.Errorf("unexpected range %v", a.Range)
	}
	md.Reinit()
	if a.Conc != 1 || md.Time != 0 || md.Steps.Cur != 0 {
		t.Errorf("reinit did not reset")
	}
}

func TestDecay(t *testing.T) {
	md := New("/model")
	pl, _ := md.AddPool("x", 1, 1, 0.5)
	md.Step(0.1)
	if math.Abs(pl.Conc-0.95) > 1e-12 {
		t.Errorf("expected 0.95, got %g", pl.Conc)
	}
}

func TestValue(t *testing.T) {
	md := testModel(t)
	pl, _ := md.Pool("compartment1")
	pl.Conc = 0.25
	want := map[string]float64{"Conc": 0.25, "init": 1, "n": 0.5, "nInit": 2}
	for fld, v := range want {
		got, err := pl.Value(fld)
		if err != nil || got != v {
			t.Errorf("%s: got %g %v, want %g", fld, got, err, v)
		}
	}
	if _, err := pl.Value("Vm"); err == nil {
		t.Error("unknown field accepted")
	}
}

func TestPaths(t *testing.T) {
	md := New("/model")
	md.AddPool("b", 1, 1, 0)
	md.AddPool("a", 1, 1, 0)
	pths := md.Paths()
	if len(pths) != 2 || pths[0] != "/model/a" || pths[1] != "/model/b" {
		t.Errorf("Expected sorted paths, got %v", pths)
	}
}
