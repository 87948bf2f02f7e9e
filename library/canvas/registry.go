package canvas

import "fmt"

// Grid is the subplot layout an axis is allocated into.
type Grid struct {
	Rows int
	Cols int
}

// Cap returns the number of axes the grid can hold.
func (g Grid) Cap() int {
	return g.Rows * g.Cols
}

// Slot is one allocated axis.
type Slot struct {
	ID    int
	Axis  Axis
	Title string
}

// TitleFor returns the axis title for id: "A" for 0, "B" for 1 and so on.
func TitleFor(id int) string {
	return string(rune('A' + id))
}

// Registry owns the axes of a surface, keyed by creation order,
// and tracks which one is current.
type Registry struct {
	drawer    Drawer
	slots     map[int]*Slot
	order     []int
	nextID    int
	currentID int
}

// NewRegistry returns an empty registry creating its axes with drawer.
func NewRegistry(drawer Drawer) *Registry {
	return &Registry{drawer: drawer, slots: make(map[int]*Slot), currentID: -1}
}

// Allocate adds a new axis at the next free position of grid and makes it
// current. Nothing changes if the grid is full or the drawer fails.
func (rg *Registry) Allocate(grid Grid) (*Slot, error) {
	if grid.Rows <= 0 || grid.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadGrid, grid.Rows, grid.Cols)
	}
	if rg.nextID >= grid.Cap() {
		return nil, fmt.Errorf("%w: %d axes in %dx%d grid", ErrCapacityExceeded, rg.nextID, grid.Rows, grid.Cols)
	}
	ax, err := rg.drawer.NewAxis(grid, rg.nextID)
	if err != nil {
		return nil, fmt.Errorf("canvas: creating axis %d: %w", rg.nextID, err)
	}
	sl := &Slot{ID: rg.nextID, Axis: ax, Title: TitleFor(rg.nextID)}
	ax.SetTitle(sl.Title)
	rg.slots[sl.ID] = sl
	rg.order = append(rg.order, sl.ID)
	rg.currentID = sl.ID
	rg.nextID++
	return sl, nil
}

// Current returns the current axis, or nil if none has been allocated.
func (rg *Registry) Current() *Slot {
	if rg.currentID < 0 {
		return nil
	}
	return rg.slots[rg.currentID]
}

// Select makes the axis with given id current.
func (rg *Registry) Select(id int) error {
	if _, has := rg.slots[id]; !has {
		return fmt.Errorf("%w: %d", ErrUnknownAxis, id)
	}
	rg.currentID = id
	return nil
}

// Slot returns the axis with given id.
func (rg *Registry) Slot(id int) (*Slot, bool) {
	sl, has := rg.slots[id]
	return sl, has
}

// Slots returns all axes in creation order.
func (rg *Registry) Slots() []*Slot {
	sls := make([]*Slot, len(rg.order))
	for i, id := range rg.order {
		sls[i] = rg.slots[id]
	}
	return sls
}

func (rg *Registry) Len() int       { return len(rg.order) }
func (rg *Registry) NextID() int    { return rg.nextID }
func (rg *Registry) CurrentID() int { return rg.currentID }
