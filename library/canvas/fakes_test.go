package canvas

import (
	"errors"
	"fmt"

	"github.com/goki/mat32"
)

type fakeAxis struct {
	title  string
	legend []string
	drawn  []string
}

func (ax *fakeAxis) SetTitle(title string)     { ax.title = title }
func (ax *fakeAxis) SetLegend(labels []string) { ax.legend = labels }

func (ax *fakeAxis) Plot(s Series) (string, error) {
	ax.drawn = append(ax.drawn, "plot:"+s.Name)
	return s.Name, nil
}

func (ax *fakeAxis) Scatter(s Series) (string, error) {
	if len(s.X) != len(s.Y) {
		return "", errors.New("length mismatch")
	}
	ax.drawn = append(ax.drawn, "scatter:"+s.Name)
	return s.Name, nil
}

type fakeDrawer struct {
	calls []Grid
	axes  []*fakeAxis
	fail  bool
}

func (fd *fakeDrawer) NewAxis(grid Grid, index int) (Axis, error) {
	if fd.fail {
		return nil, errors.New("no display")
	}
	fd.calls = append(fd.calls, grid)
	ax := &fakeAxis{}
	fd.axes = append(fd.axes, ax)
	return ax, nil
}

type fakeElement struct {
	path string
}

func (el *fakeElement) Path() string { return el.path }
func (el *fakeElement) Name() string { return el.path[len("/model/"):] }

type fakeData struct {
	elements map[string]*fakeElement
}

func newFakeData(paths ...string) *fakeData {
	fd := &fakeData{elements: make(map[string]*fakeElement)}
	for _, p := range paths {
		fd.elements[p] = &fakeElement{path: p}
	}
	return fd
}

func (fd *fakeData) Lookup(path string) (Element, error) {
	el, has := fd.elements[path]
	if !has {
		return nil, fmt.Errorf("%w: %s", ErrLookupFailure, path)
	}
	return el, nil
}

func (fd *fakeData) Recordables() []string {
	var nms []string
	for _, el := range fd.elements {
		nms = append(nms, el.Name())
	}
	return nms
}

type recordCall struct {
	el    Element
	field string
}

type fakeRecorder struct {
	calls []recordCall
	fail  bool
}

func (fr *fakeRecorder) CreateTable(el Element, field string) error {
	if fr.fail {
		return errors.New("table exists")
	}
	fr.calls = append(fr.calls, recordCall{el, field})
	return nil
}

// fakeMenu keeps the continuations of the last menu so tests can pick.
type fakeMenu struct {
	shown   int
	pos     mat32.Vec2
	choices []RecordModes
	choose  func(RecordModes) error
	dismiss func()
}

func (fm *fakeMenu) ShowModeMenu(pos mat32.Vec2, choices []RecordModes, choose func(RecordModes) error, dismiss func()) {
	fm.shown++
	fm.pos = pos
	fm.choices = choices
	fm.choose = choose
	fm.dismiss = dismiss
}

func quiet(format string, args ...interface{}) {}
