package main

import (
	"path/filepath"
	"testing"

	"github.com/Astera-org/simplot/library/sim"
)

func TestConfig(t *testing.T) {
	var ss sim.Sim
	ss.New()
	if err := Config(&ss, []string{"-nogui", "-steps", "20"}); err != nil {
		t.Fatal(err)
	}
	if ss.Config.GUI {
		t.Errorf("Expected -nogui to turn off the GUI")
	}
	if ss.Config.Steps != 20 {
		t.Errorf("Expected 20 steps, got %d", ss.Config.Steps)
	}
	if len(ss.Model.Pools()) != 2 {
		t.Errorf("Expected the default two pools, got %d", len(ss.Model.Pools()))
	}
}

func TestRunFromArgs(t *testing.T) {
	var ss sim.Sim
	ss.New()
	dir := t.TempDir()
	args := []string{"-nogui", "-steps", "10", "-logdir", dir,
		"-record", "/model/compartment1:Conc", "-record", "/model/compartment2:Init"}
	if err := Config(&ss, args); err != nil {
		t.Fatal(err)
	}
	if err := ss.RunFromArgs(); err != nil {
		t.Fatal(err)
	}
	if n := len(ss.Recorder.LogTables()); n != 2 {
		t.Fatalf("Expected 2 recordings, got %d", n)
	}
	if n := ss.Canvas.Stats.Int("Recordings"); n != 2 {
		t.Errorf("Expected 2 recordings counted, got %d", n)
	}
	fnms, _ := filepath.Glob(filepath.Join(dir, "*.tsv"))
	if len(fnms) != 2 {
		t.Errorf("Expected 2 log files, got %v", fnms)
	}
}
