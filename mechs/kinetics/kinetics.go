package main

import (
	"fmt"
	"os"

	"github.com/Astera-org/simplot/library/common"
	"github.com/Astera-org/simplot/library/sim"
	"github.com/goki/gi/gimain"
)

var programName = "Kinetics"

func main() {
	// TheSim is the overall state for this simulation
	var TheSim sim.Sim
	TheSim.New()

	if err := Config(&TheSim, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if !TheSim.Config.GUI {
		if err := TheSim.RunFromArgs(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		gimain.Main(func() { // this starts gui -- requires valid OpenGL display connection (e.g., X11)
			sim.GuiRun(&TheSim, programName, "Kinetics", "Drag pools onto the canvas to record and plot their concentration.")
		})
	}
}

// Config configures all the elements using the standard functions
func Config(ss *sim.Sim, args []string) error {
	// Parse arguments before configuring the model, in case pools are set.
	if err := ss.ParseArgs(args); err != nil {
		return err
	}
	if err := ss.ConfigModel(); err != nil {
		return err
	}
	common.AddDefaultCallbacks(ss)
	return nil
}
