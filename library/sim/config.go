package sim

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultConfigFile is read when no -config flag is given.
const DefaultConfigFile = "simplot.toml"

type PoolConfig struct {
	Name     string
	ConcInit float64
	Vol      float64
	Decay    float64
}

type ReacConfig struct {
	Sub string
	Prd string
	Kf  float64
	Kb  float64
}

// Config is the model and canvas setup, read from a TOML file.
type Config struct {
	GUI         bool
	Root        string   `desc:"path all pools live under"`
	Rows        int      `desc:"subplot grid rows"`
	Cols        int      `desc:"subplot grid columns"`
	Steps       int      `desc:"steps per run"`
	DT          float64  `desc:"integration time step"`
	LegendOrder string   `desc:"asc or desc ordering of the source legend"`
	LogDir      string   `desc:"if set, recordings are written to tsv files in this directory"`
	Record      []string `desc:"path:mode recordings to set up at start, e.g. /model/compartment1:Conc"`
	Pools       []PoolConfig
	Reacs       []ReacConfig
}

// Defaults is a two compartment model with one reversible reaction.
func (config *Config) Defaults() {
	config.GUI = true
	config.Root = "/model"
	config.Rows = 2
	config.Cols = 2
	config.Steps = 200
	config.DT = 0.05
	config.LegendOrder = "desc"
	config.Pools = []PoolConfig{
		{Name: "compartment1", ConcInit: 1, Vol: 1, Decay: 0.05},
		{Name: "compartment2", ConcInit: 0, Vol: 1},
	}
	config.Reacs = []ReacConfig{
		{Sub: "compartment1", Prd: "compartment2", Kf: 0.5, Kb: 0.1},
	}
}

// Load sets defaults, then overrides them from fnm. A missing or bad file
// is reported on stderr and leaves the defaults in place.
func (config *Config) Load(fnm string) {
	config.Defaults()
	if fnm == "" {
		return
	}
	_, err := toml.DecodeFile(fnm, config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Using defaults")
		config.Defaults()
	}
}
