package egui

import (
	"github.com/goki/gi/gi"
	"github.com/goki/gi/giv"
	"github.com/goki/ki/ki"
	"github.com/goki/mat32"
)

// GUI is the main window of a simulation with a plotting canvas:
// a toolbar, a struct view of the simulation on the left and the
// canvas on the right.
type GUI struct {
	IsRunning bool `view:"-" desc:"true if sim is running"`
	StopNow   bool `view:"-" desc:"flag to stop running"`

	Win      *gi.Window  `view:"-" desc:"main GUI gui.Window"`
	ToolBar  *gi.ToolBar `view:"-" desc:"the master toolbar"`
	ViewPort *gi.Viewport2D
	Status   *gi.Label `view:"-" desc:"one line status below the canvas"`

	StructView *giv.StructView
	Canvas     *CanvasView
}

// UpdateWindow re-renders the whole window.
func (gui *GUI) UpdateWindow() {
	gui.ViewPort.SetNeedsFullRender()
}

// SetStatus shows msg in the status line; safe from other goroutines.
func (gui *GUI) SetStatus(msg string) {
	if gui.Status == nil {
		return
	}
	gui.Status.SetText(msg)
}

// MakeWindow creates the window with sim in the struct view and an empty canvas.
func (gui *GUI) MakeWindow(sim interface{}, appname, title, about string) {
	width := 1600
	height := 1200

	gi.SetAppName(appname)
	gi.SetAppAbout(about)

	gui.Win = gi.NewMainWindow(appname, title, width, height)

	gui.ViewPort = gui.Win.WinViewport2D()
	gui.ViewPort.UpdateStart()

	mfr := gui.Win.SetMainFrame()

	gui.ToolBar = gi.AddNewToolBar(mfr, "tbar")
	gui.ToolBar.SetStretchMaxWidth()

	split := gi.AddNewSplitView(mfr, "split")
	split.Dim = mat32.X
	split.SetStretchMax()

	gui.StructView = giv.AddNewStructView(split, "sv")
	gui.StructView.SetStruct(sim)

	right := gi.AddNewLayout(split, "right", gi.LayoutVert)
	right.SetStretchMax()
	gui.Canvas = AddNewCanvasView(right, "canvas")
	gui.Status = gi.AddNewLabel(right, "status", "Drop an element path on the canvas to record it")

	split.SetSplits(.2, .8)
}

func (gui *GUI) AddToolbarItem(item ToolbarItem) {
	opts := gi.ActOpts{Label: item.Label, Icon: item.Icon, Tooltip: item.Tooltip}
	switch item.Active {
	case ActiveStopped:
		opts.UpdateFunc = func(act *gi.Action) {
			act.SetActiveStateUpdt(!gui.IsRunning)
		}
	case ActiveRunning:
		opts.UpdateFunc = func(act *gi.Action) {
			act.SetActiveStateUpdt(gui.IsRunning)
		}
	}
	gui.ToolBar.AddAction(opts, gui.Win.This(), func(recv, send ki.Ki, sig int64, data interface{}) {
		item.Func()
	})
}

// FinalizeGUI completes the window and its menus; with closePrompt the
// user must confirm before losing unsaved recordings.
func (gui *GUI) FinalizeGUI(closePrompt bool) {
	vp := gui.Win.WinViewport2D()
	vp.UpdateEndNoSig(true)

	// main menu
	appnm := gi.AppName()
	mmen := gui.Win.MainMenu
	mmen.ConfigMenus([]string{appnm, "File", "Edit", "Window"})

	amen := gui.Win.MainMenu.ChildByName(appnm, 0).(*gi.Action)
	amen.Menu.AddAppMenu(gui.Win)

	emen := gui.Win.MainMenu.ChildByName("Edit", 1).(*gi.Action)
	emen.Menu.AddCopyCutPaste(gui.Win)

	if closePrompt {
		inQuitPrompt := false
		gi.SetQuitReqFunc(func() {
			if inQuitPrompt {
				return
			}
			inQuitPrompt = true
			gi.PromptDialog(vp, gi.DlgOpts{Title: "Really Quit?",
				Prompt: "Are you <i>sure</i> you want to quit and lose any unsaved recordings?"}, gi.AddOk, gi.AddCancel,
				gui.Win.This(), func(recv, send ki.Ki, sig int64, data interface{}) {
					if sig == int64(gi.DialogAccepted) {
						gi.Quit()
					} else {
						inQuitPrompt = false
					}
				})
		})
	}

	gui.Win.SetCloseCleanFunc(func(w *gi.Window) {
		go gi.Quit() // once main gui.Window is closed, quit
	})

	gui.Win.MainMenuUpdated()
}
