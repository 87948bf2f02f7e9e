package sim

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/Astera-org/simplot/library/canvas"
	"github.com/Astera-org/simplot/library/egui"
	"github.com/Astera-org/simplot/library/elog"
	"github.com/Astera-org/simplot/library/estats"
	"github.com/Astera-org/simplot/library/model"
	"github.com/goki/gi/oswin/mimedata"
	"github.com/goki/mat32"
)

// Sim encapsulates the kinetic model, its recordings and the plotting canvas,
// and we define all the functionality as methods on this struct. The view
// tags on the fields give hints to how they are displayed in the GUI.
//
// Model, Recorder and Canvas are shared between the gui event loop and a
// running RunSteps; the exported methods take the sim lock around them.
type Sim struct {
	Model    *model.Model      `view:"no-inline" desc:"the kinetic model -- pools can be dragged onto the canvas to record them"`
	Recorder elog.Recorder     `view:"-" desc:"one recording table per recorded pool and field"`
	Canvas   *canvas.Surface   `view:"-" desc:"the plotting canvas"`
	Drawer   *egui.TableDrawer `view:"-" desc:"axes used when running without a window"`

	GUI     egui.GUI     `view:"-"`
	Stats   estats.Stats `view:"-" desc:"summary stats of the recordings, name:Min, name:Max, name:Mean"`
	Runner  Runner       `view:"-" desc:"callbacks around runs and steps"`
	Config  Config       `desc:"model and canvas setup"`
	CmdArgs CmdArgs      `view:"-" desc:"Arguments passed in through the command line"`

	Tag       string `desc:"extra tag string to add to any file names output from sim (e.g., log files)"`
	ViewOn    bool   `desc:"whether to update the canvas while running"`
	ViewEvery int    `desc:"update the canvas every this many steps while running"`

	mu        sync.Mutex
	tableAxes map[elog.TableKey]int
}

// FinalRows is the number of last rows summarized as name:Final stats.
const FinalRows = 10

// New creates new blank elements and initializes defaults
func (ss *Sim) New() {
	ss.Config.Defaults()
	ss.ViewOn = true
	ss.ViewEvery = 10
	ss.Stats.Init()
	ss.tableAxes = make(map[elog.TableKey]int)
}

// ConfigModel builds the model from the pools and reactions in Config.
func (ss *Sim) ConfigModel() error {
	ss.Model = model.New(ss.Config.Root)
	for _, pc := range ss.Config.Pools {
		if _, err := ss.Model.AddPool(pc.Name, pc.ConcInit, pc.Vol, pc.Decay); err != nil {
			return err
		}
	}
	for _, rc := range ss.Config.Reacs {
		if _, err := ss.Model.AddReac(rc.Sub, rc.Prd, rc.Kf, rc.Kb); err != nil {
			return err
		}
	}
	ss.Model.Reinit()
	return nil
}

// ConfigCanvas builds the canvas surface on the given drawer and menu,
// with the model as data backend and the recorder creating tables.
// A new recording is plotted on the axis that was current when it was dropped.
func (ss *Sim) ConfigCanvas(drawer canvas.Drawer, menu canvas.MenuPresenter) {
	if ss.Model == nil {
		if err := ss.ConfigModel(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	order, ok := canvas.LabelOrderByName(ss.Config.LegendOrder)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown legend order %q, using desc\n", ss.Config.LegendOrder)
	}
	ctx := &canvas.Context{Drawer: drawer, Data: ss.Model, Recorder: &ss.Recorder, Menu: menu}
	ss.Canvas = canvas.NewSurface(ctx, canvas.Options{LegendOrder: order})
	if ss.tableAxes == nil {
		ss.tableAxes = make(map[elog.TableKey]int)
	}
	ss.Recorder.OnCreate = func(lt *elog.LogTable) {
		if sl := ss.Canvas.Current(); sl != nil {
			ss.tableAxes[lt.Key] = sl.ID
		}
		ss.Recorder.RecordTable(lt, ss.Model.Time)
	}
}

// Locked runs fn holding the sim lock.
func (ss *Sim) Locked(fn func()) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	fn()
}

// Init restores the model to its initial state and clears all recordings,
// keeping the recorded elements.
func (ss *Sim) Init() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.GUI.StopNow = false
	if ss.Model == nil {
		if err := ss.ConfigModel(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
	}
	ss.Model.Reinit()
	ss.Recorder.Reset()
	for _, lt := range ss.Recorder.LogTables() {
		ss.Recorder.RecordTable(lt, 0)
	}
	ss.Stats.Init()
}

// Step advances the model one time step and records every table.
func (ss *Sim) Step() {
	ss.Runner.OnStepStart()
	ss.Locked(func() {
		ss.Model.Step(ss.Config.DT)
		if err := ss.Recorder.Record(ss.Model.Time); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	})
	ss.Runner.OnStepEnd()
}

// RunSteps runs up to n steps, stopping early when Stop is called or a
// callback asks to.
func (ss *Sim) RunSteps(n int) {
	ss.Runner.OnRunStart()
	for i := 0; i < n; i++ {
		if ss.GUI.StopNow || ss.Runner.StopEarly() {
			break
		}
		ss.Step()
	}
	ss.Runner.OnRunEnd()
	ss.GUI.StopNow = false
	ss.GUI.IsRunning = false
}

// Stop tells the sim to stop running
func (ss *Sim) Stop() {
	ss.GUI.StopNow = true
}

// PlotRecordings plots every recording on its axis, without changing the
// current axis. Recordings made with no current axis go to the current
// axis, created if needed.
func (ss *Sim) PlotRecordings() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.plotRecordings()
}

func (ss *Sim) plotRecordings() {
	for _, lt := range ss.Recorder.LogTables() {
		if id, has := ss.tableAxes[lt.Key]; has {
			if _, err := ss.Canvas.PlotOn(id, lt.Series()); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
			continue
		}
		if _, err := ss.Canvas.Plot(lt.Series()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		ss.tableAxes[lt.Key] = ss.Canvas.Current().ID
	}
}

// AddSubplot adds a subplot to a rows x cols grid of the canvas.
func (ss *Sim) AddSubplot(rows, cols int) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	_, err := ss.Canvas.AddSubplot(rows, cols)
	return err
}

// Record drops path on the canvas, as a drag from a tree view would.
// The mode is then chosen from the menu.
func (ss *Sim) Record(path string) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.Canvas.Drop(mimedata.NewText(path), mat32.Vec2{})
}

// ResetRecordings removes all recorded rows, keeping the recorded pools.
func (ss *Sim) ResetRecordings() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.Recorder.Reset()
}

// RecordScripted sets up a recording from a path:mode string, on a new
// subplot of the configured grid while it has room, else on the current axis.
func (ss *Sim) RecordScripted(menu *scriptMenu, rec string) error {
	i := strings.LastIndex(rec, ":")
	if i < 0 {
		return fmt.Errorf("record %q must be path:mode", rec)
	}
	pth, label := rec[:i], rec[i+1:]
	mode, ok := canvas.ModeForLabel(label)
	if !ok {
		return fmt.Errorf("record %q: unknown mode %q", rec, label)
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	grid := canvas.Grid{Rows: ss.Config.Rows, Cols: ss.Config.Cols}
	if ss.Canvas.Registry().NextID() < grid.Cap() {
		if _, err := ss.Canvas.AddSubplot(grid.Rows, grid.Cols); err != nil {
			return err
		}
	}
	menu.Mode = mode
	menu.Err = nil
	if !ss.Canvas.Drop(mimedata.NewText(pth), mat32.Vec2{}) {
		return fmt.Errorf("record %q: drop was rejected", rec)
	}
	return menu.Err
}

// SummaryStats sets Min, Max and Mean stats for every recording, over all
// rows and as name:Final over the last FinalRows rows.
func (ss *Sim) SummaryStats() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	for _, lt := range ss.Recorder.LogTables() {
		nm := lt.Series().Name
		ss.Stats.SetAggs(nm, lt.GetIdxView(), lt.Field)
		ix, isnew := lt.NamedIdxView("Final")
		if isnew && len(ix.Idxs) > FinalRows {
			ix.Idxs = ix.Idxs[len(ix.Idxs)-FinalRows:]
		}
		ss.Stats.SetAggs(nm+":Final", ix, lt.Field)
	}
}

// SummaryNames are the names of the stats set by SummaryStats.
func (ss *Sim) SummaryNames() []string {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	var nms []string
	for _, lt := range ss.Recorder.LogTables() {
		nm := lt.Series().Name
		nms = append(nms, nm+":Min", nm+":Max", nm+":Mean", nm+":Final:Mean")
	}
	return nms
}

// scriptMenu answers the mode menu with a preset mode, for runs
// without a window.
type scriptMenu struct {
	Mode canvas.RecordModes
	Err  error
}

func (sm *scriptMenu) ShowModeMenu(pos mat32.Vec2, choices []canvas.RecordModes, choose func(mode canvas.RecordModes) error, dismiss func()) {
	for _, ch := range choices {
		if ch == sm.Mode {
			sm.Err = choose(ch)
			return
		}
	}
	dismiss()
}
