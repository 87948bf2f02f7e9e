package common

import (
	"fmt"
	"math"
	"time"

	"github.com/Astera-org/simplot/library/sim"
)

// AddDefaultCallbacks adds run timing and the GUI view updates.
// Timing sets the RunSecs and RunSteps stats at the end of every run.
func AddDefaultCallbacks(ss *sim.Sim) {
	var start time.Time
	var startStep int
	timing := sim.StepCallbacks{
		Name: "timing",
		OnRunStart: func() {
			start = time.Now()
			startStep = ss.Model.Steps.Cur
		},
		OnRunEnd: func() {
			secs := time.Since(start).Seconds()
			ss.Locked(func() {
				ss.Stats.SetFloat("RunSecs", secs)
				ss.Stats.SetInt("RunSteps", ss.Model.Steps.Cur-startStep)
			})
			fmt.Printf("Ran to t=%g in %.3gs\n", ss.Model.Time, secs)
		},
	}
	ss.Runner.Callbacks = append(ss.Runner.Callbacks, timing)

	AddDefaultGUICallbacks(ss)
}

func AddDefaultGUICallbacks(ss *sim.Sim) {
	guiview := InitGUIViewHandler(ss)
	ss.Runner.Callbacks = append(ss.Runner.Callbacks, guiview.StepCallbacks)
}

// AddSteadyStateStop stops a run once no pool concentration changes by
// more than tol in a step.
func AddSteadyStateStop(ss *sim.Sim, tol float64) {
	prev := map[string]float64{}
	steady := false
	ss.Runner.Callbacks = append(ss.Runner.Callbacks, sim.StepCallbacks{
		Name: "steady state",
		OnRunStart: func() {
			steady = false
		},
		OnStepStart: func() {
			for _, pl := range ss.Model.Pools() {
				prev[pl.Pth] = pl.Conc
			}
		},
		OnStepEnd: func() {
			steady = true
			for _, pl := range ss.Model.Pools() {
				if math.Abs(pl.Conc-prev[pl.Pth]) > tol {
					steady = false
					return
				}
			}
		},
		StopEarly: func() bool {
			return steady
		},
	})
}

// GUIViewHandler updates the canvas while running.
type GUIViewHandler struct {
	sim.StepCallbacks
	ss *sim.Sim
}

func InitGUIViewHandler(ss *sim.Sim) *GUIViewHandler {
	gui := &GUIViewHandler{ss: ss}
	gui.StepCallbacks.Name = "gui view"
	gui.StepCallbacks.OnStepEnd = gui.OnStepEnd
	gui.StepCallbacks.OnRunEnd = gui.OnRunEnd
	return gui
}

func (guiview *GUIViewHandler) OnStepEnd() {
	ss := guiview.ss
	if !ss.ViewOn || ss.GUI.Win == nil || ss.ViewEvery <= 0 {
		return
	}
	if ss.Model.Steps.Cur%ss.ViewEvery == 0 {
		ss.UpdateView()
		ss.GUI.SetStatus(fmt.Sprintf("t=%g", ss.Model.Time))
	}
}

func (guiview *GUIViewHandler) OnRunEnd() {
	ss := guiview.ss
	if ss.GUI.Win == nil {
		return
	}
	ss.UpdateView()
	ss.GUI.SetStatus(fmt.Sprintf("Stopped at t=%g", ss.Model.Time))
	ss.GUI.ToolBar.UpdateActions()
}
