package sim

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Astera-org/simplot/library/canvas"
	"github.com/Astera-org/simplot/library/egui"
)

// recordList collects repeated -record flags.
type recordList []string

func (rl *recordList) String() string { return strings.Join(*rl, ",") }

func (rl *recordList) Set(val string) error {
	if !strings.Contains(val, ":") {
		return fmt.Errorf("record %q must be path:mode", val)
	}
	*rl = append(*rl, val)
	return nil
}

// CmdArgs are the command line arguments, they override the config file
type CmdArgs struct {
	ConfigFile string
	NoGui      bool
	Note       string
}

// ParseArgs loads the config file and applies command line overrides
// from args, usually os.Args[1:].
func (ss *Sim) ParseArgs(args []string) error {
	fs := flag.NewFlagSet("simplot", flag.ContinueOnError)
	fs.StringVar(&ss.CmdArgs.ConfigFile, "config", DefaultConfigFile, "TOML file with model and canvas setup")
	fs.BoolVar(&ss.CmdArgs.NoGui, "nogui", len(args) > 0, "if not passing any other args and want to run nogui, use nogui")
	fs.StringVar(&ss.CmdArgs.Note, "note", "", "user note -- describe the run params etc")
	fs.StringVar(&ss.Tag, "tag", "", "extra tag to add to file names saved from this run")
	steps := fs.Int("steps", 0, "number of steps to run, overrides config")
	rows := fs.Int("rows", 0, "subplot grid rows, overrides config")
	cols := fs.Int("cols", 0, "subplot grid columns, overrides config")
	dt := fs.Float64("dt", 0, "integration time step, overrides config")
	legend := fs.String("legend", "", "legend order, asc or desc, overrides config")
	logDir := fs.String("logdir", "", "directory for tsv recordings, overrides config")
	var records recordList
	fs.Var(&records, "record", "path:mode to record at start, mode Conc or Init; may be repeated")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := os.Stat(ss.CmdArgs.ConfigFile); err != nil && ss.CmdArgs.ConfigFile == DefaultConfigFile {
		ss.Config.Defaults()
	} else {
		ss.Config.Load(ss.CmdArgs.ConfigFile)
	}
	if *steps > 0 {
		ss.Config.Steps = *steps
	}
	if *rows > 0 {
		ss.Config.Rows = *rows
	}
	if *cols > 0 {
		ss.Config.Cols = *cols
	}
	if *dt > 0 {
		ss.Config.DT = *dt
	}
	if *legend != "" {
		ss.Config.LegendOrder = *legend
	}
	if *logDir != "" {
		ss.Config.LogDir = *logDir
	}
	if len(records) > 0 {
		ss.Config.Record = records
	}
	if ss.CmdArgs.NoGui {
		ss.Config.GUI = false
	}
	return nil
}

// RunFromArgs runs the configured recordings without a window and
// prints a summary of every recording.
func (ss *Sim) RunFromArgs() error {
	ss.Init()
	if ss.CmdArgs.Note != "" {
		fmt.Printf("note: %s\n", ss.CmdArgs.Note)
	}
	ss.Drawer = &egui.TableDrawer{}
	menu := &scriptMenu{}
	ss.ConfigCanvas(ss.Drawer, menu)
	for _, rec := range ss.Config.Record {
		if err := ss.RecordScripted(menu, rec); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	if ss.Config.LogDir != "" {
		if err := ss.OpenLogFiles(ss.Config.LogDir); err != nil {
			ss.Recorder.CloseLogFiles()
			return err
		}
	}
	fmt.Printf("Running %d steps of %g\n", ss.Config.Steps, ss.Config.DT)
	ss.RunSteps(ss.Config.Steps)
	ss.PlotRecordings()
	ss.SummaryStats()
	fmt.Println(ss.Canvas.Stats.Print(canvas.StatNames))
	fmt.Println(ss.Stats.Print(ss.SummaryNames()))
	return ss.Recorder.CloseLogFiles()
}
