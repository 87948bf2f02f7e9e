package sim

import (
	"fmt"
	"strings"

	"github.com/Astera-org/simplot/library/canvas"
	"github.com/Astera-org/simplot/library/egui"
	"github.com/goki/gi/gi"
	"github.com/goki/ki/ki"
)

func GuiRun(TheSim *Sim, appname, title, about string) {
	TheSim.Init()
	win := TheSim.ConfigGui(appname, title, about)
	win.StartEventLoop()
}

// ConfigGui configures the GoGi gui interface for this simulation,
func (ss *Sim) ConfigGui(appname, title, about string) *gi.Window {
	ss.GUI.MakeWindow(ss, appname, title, about)
	cv := ss.GUI.Canvas
	ss.ConfigCanvas(cv, cv)
	cv.Lock = &ss.mu
	cv.SetSurface(ss.Canvas)
	dispatched := ss.Canvas.Controller().OnDispatched
	ss.Canvas.Controller().OnDispatched = func(req canvas.DropRequest, err error) {
		dispatched(req, err)
		if err != nil {
			ss.GUI.SetStatus(err.Error())
			return
		}
		ss.GUI.SetStatus(fmt.Sprintf("Recording %s of %s", req.Mode.Field(), req.Source.Path()))
		// called from a drop, which holds the sim lock
		ss.plotRecordings()
	}
	for _, rec := range ss.Config.Record {
		menu := &scriptMenu{}
		ss.Canvas.Controller().Menu = menu
		if err := ss.RecordScripted(menu, rec); err != nil {
			fmt.Println(err)
		}
	}
	ss.Canvas.Controller().Menu = cv

	ss.GUI.AddToolbarItem(egui.ToolbarItem{Label: "Init", Icon: "update",
		Tooltip: "Restores all pools to their initial concentration and clears the recordings.",
		Active:  egui.ActiveStopped,
		Func: func() {
			ss.Init()
			ss.UpdateView()
			ss.GUI.UpdateWindow()
		},
	})
	ss.GUI.AddToolbarItem(egui.ToolbarItem{Label: "Run",
		Icon:    "run",
		Tooltip: "Runs the configured number of steps, picking up from wherever it may have left off.",
		Active:  egui.ActiveStopped,
		Func: func() {
			if !ss.GUI.IsRunning {
				ss.GUI.IsRunning = true
				ss.GUI.ToolBar.UpdateActions()
				go ss.RunSteps(ss.Config.Steps)
			}
		},
	})
	ss.GUI.AddToolbarItem(egui.ToolbarItem{Label: "Stop",
		Icon:    "stop",
		Tooltip: "Interrupts running.  Hitting Run again will pick back up where it left off.",
		Active:  egui.ActiveRunning,
		Func: func() {
			ss.Stop()
		},
	})
	ss.GUI.AddToolbarItem(egui.ToolbarItem{Label: "Step",
		Icon:    "step-fwd",
		Tooltip: "Advances one time step.",
		Active:  egui.ActiveStopped,
		Func: func() {
			if !ss.GUI.IsRunning {
				ss.GUI.IsRunning = true
				ss.Step()
				ss.GUI.IsRunning = false
				ss.UpdateView()
				ss.GUI.UpdateWindow()
			}
		},
	})

	////////////////////////////////////////////////
	ss.GUI.ToolBar.AddSeparator("canvas")
	ss.GUI.AddToolbarItem(egui.ToolbarItem{Label: "Add Plot",
		Icon:    "plus",
		Tooltip: "Adds a subplot to a grid of the given rows x cols, and makes it current.",
		Active:  egui.ActiveAlways,
		Func: func() {
			gi.StringPromptDialog(ss.GUI.ViewPort, fmt.Sprintf("%d x %d", ss.Config.Rows, ss.Config.Cols), "rows x cols",
				gi.DlgOpts{Title: "Add Plot", Prompt: "Grid of the new subplot, e.g. 2 x 2"},
				ss.GUI.Win.This(), func(recv, send ki.Ki, sig int64, data interface{}) {
					dlg := send.(*gi.Dialog)
					if sig != int64(gi.DialogAccepted) {
						return
					}
					var rows, cols int
					val := gi.StringPromptDialogValue(dlg)
					if _, err := fmt.Sscanf(val, "%d x %d", &rows, &cols); err != nil {
						gi.PromptDialog(nil, gi.DlgOpts{Title: "Bad Grid", Prompt: "Could not read rows x cols from: " + val}, gi.AddOk, gi.NoCancel, nil, nil)
						return
					}
					if err := ss.AddSubplot(rows, cols); err != nil {
						gi.PromptDialog(nil, gi.DlgOpts{Title: "Add Plot Failed", Prompt: err.Error()}, gi.AddOk, gi.NoCancel, nil, nil)
						return
					}
					ss.GUI.SetStatus(fmt.Sprintf("Current plot: %s", ss.Canvas.Current().Title))
				})
		},
	})
	ss.GUI.AddToolbarItem(egui.ToolbarItem{Label: "Record",
		Icon:    "file-text",
		Tooltip: "Prompts for the path of a pool and records it on the current plot, as dropping it on the canvas would.",
		Active:  egui.ActiveAlways,
		Func: func() {
			gi.StringPromptDialog(ss.GUI.ViewPort, ss.Config.Root+"/", "path",
				gi.DlgOpts{Title: "Record", Prompt: "Enter the path of a pool, one of: " + strings.Join(ss.Model.Paths(), ", ")},
				ss.GUI.Win.This(), func(recv, send ki.Ki, sig int64, data interface{}) {
					dlg := send.(*gi.Dialog)
					if sig == int64(gi.DialogAccepted) {
						val := gi.StringPromptDialogValue(dlg)
						if !ss.Record(val) {
							gi.PromptDialog(nil, gi.DlgOpts{Title: "Not Recordable", Prompt: "Cannot record: " + val}, gi.AddOk, gi.NoCancel, nil, nil)
						}
					}
				})
		},
	})

	////////////////////////////////////////////////
	ss.GUI.ToolBar.AddSeparator("log")
	ss.GUI.AddToolbarItem(egui.ToolbarItem{Label: "Reset Recordings",
		Icon:    "reset",
		Tooltip: "Removes all recorded rows, keeping the recorded pools.",
		Active:  egui.ActiveStopped,
		Func: func() {
			ss.ResetRecordings()
			ss.UpdateView()
		},
	})
	ss.GUI.AddToolbarItem(egui.ToolbarItem{Label: "Stats",
		Icon:    "info",
		Tooltip: "Prints summary stats of all recordings.",
		Active:  egui.ActiveStopped,
		Func: func() {
			ss.SummaryStats()
			nms := ss.SummaryNames()
			ss.Locked(func() {
				fmt.Println(ss.Canvas.Stats.Print(canvas.StatNames))
				fmt.Println(ss.Stats.Print(nms))
			})
		},
	})
	ss.GUI.FinalizeGUI(false)
	return ss.GUI.Win
}

// UpdateView replots all recordings on the canvas
func (ss *Sim) UpdateView() {
	if ss.GUI.Canvas == nil {
		return
	}
	ss.Locked(func() {
		ss.plotRecordings()
		ss.GUI.Canvas.UpdateAll()
	})
}
