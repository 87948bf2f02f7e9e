package canvas

import (
	"errors"
	"testing"
)

func TestAllocateGrid(t *testing.T) {
	fd := &fakeDrawer{}
	rg := NewRegistry(fd)
	grid := Grid{Rows: 2, Cols: 2}
	titles := []string{"A", "B", "C", "D"}
	for i := 0; i < 4; i++ {
		sl, err := rg.Allocate(grid)
		if err != nil {
			t.Fatalf("allocate %d: %v", i, err)
		}
		if sl.ID != i || sl.Title != titles[i] {
			t.Errorf("got slot %d %q, want %d %q", sl.ID, sl.Title, i, titles[i])
		}
		if fd.axes[i].title != titles[i] {
			t.Errorf("axis %d title not set: %q", i, fd.axes[i].title)
		}
		if rg.CurrentID() != i {
			t.Errorf("current %d after allocating %d", rg.CurrentID(), i)
		}
		if rg.NextID() != i+1 {
			t.Errorf("next id %d after %d allocations", rg.NextID(), i+1)
		}
	}
	_, err := rg.Allocate(grid)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	if rg.Len() != 4 || rg.NextID() != 4 || rg.CurrentID() != 3 || len(fd.calls) != 4 {
		t.Errorf("full grid allocation changed state: len %d next %d cur %d", rg.Len(), rg.NextID(), rg.CurrentID())
	}
	for i, sl := range rg.Slots() {
		if sl.ID != i {
			t.Errorf("slot %d out of order: %d", i, sl.ID)
		}
	}
}

func TestAllocateGrowingGrid(t *testing.T) {
	rg := NewRegistry(&fakeDrawer{})
	if _, err := rg.Allocate(Grid{1, 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := rg.Allocate(Grid{1, 1}); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("second axis in 1x1 grid should fail, got %v", err)
	}
	if _, err := rg.Allocate(Grid{1, 2}); err != nil {
		t.Errorf("second axis in 1x2 grid: %v", err)
	}
}

func TestAllocateBadGrid(t *testing.T) {
	rg := NewRegistry(&fakeDrawer{})
	if _, err := rg.Allocate(Grid{0, 3}); !errors.Is(err, ErrBadGrid) {
		t.Errorf("expected ErrBadGrid, got %v", err)
	}
	if rg.NextID() != 0 || rg.CurrentID() != -1 {
		t.Errorf("bad grid changed state")
	}
}

func TestAllocateDrawerFailure(t *testing.T) {
	rg := NewRegistry(&fakeDrawer{fail: true})
	if _, err := rg.Allocate(Grid{1, 1}); err == nil {
		t.Fatal("expected drawer error")
	}
	if rg.Len() != 0 || rg.NextID() != 0 || rg.Current() != nil {
		t.Errorf("failed allocation changed state")
	}
}

func TestSelect(t *testing.T) {
	rg := NewRegistry(&fakeDrawer{})
	if rg.Current() != nil {
		t.Fatal("new registry has a current axis")
	}
	for i := 0; i < 3; i++ {
		rg.Allocate(Grid{1, 3})
	}
	for i := 0; i < 2; i++ {
		if err := rg.Select(1); err != nil {
			t.Fatal(err)
		}
		if rg.CurrentID() != 1 || rg.Current().Title != "B" {
			t.Errorf("select 1: current %d", rg.CurrentID())
		}
	}
	if err := rg.Select(7); !errors.Is(err, ErrUnknownAxis) {
		t.Errorf("expected ErrUnknownAxis, got %v", err)
	}
	if rg.CurrentID() != 1 {
		t.Errorf("failed select changed current to %d", rg.CurrentID())
	}
}

func TestTitleFor(t *testing.T) {
	if TitleFor(0) != "A" || TitleFor(25) != "Z" {
		t.Errorf("titles: %s %s", TitleFor(0), TitleFor(25))
	}
}
