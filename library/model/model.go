// Package model is a small kinetic simulation: pools of molecules in
// compartments, exchanged by reversible first order reactions. Pools are
// addressed by path, e.g. /model/compartment1, and can be recorded.
package model

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/Astera-org/simplot/library/canvas"
	"github.com/emer/emergent/env"
	"github.com/emer/etable/minmax"
)

// Fields are the values a Pool can be sampled for.
var Fields = []string{"Conc", "init", "n", "nInit"}

// Pool is one molecular species in one compartment.
type Pool struct {
	Nm       string     `desc:"name of the pool, last element of its path"`
	Pth      string     `desc:"full path of the pool"`
	Conc     float64    `desc:"current concentration"`
	ConcInit float64    `desc:"initial concentration, restored by Reinit"`
	Vol      float64    `desc:"compartment volume, N = Conc * Vol"`
	Decay    float64    `desc:"first order degradation rate"`
	Range    minmax.F64 `view:"inline" desc:"range of Conc seen since Reinit"`
}

func (pl *Pool) Path() string { return pl.Pth }
func (pl *Pool) Name() string { return pl.Nm }

// N is the number of molecules in the pool.
func (pl *Pool) N() float64 { return pl.Conc * pl.Vol }

// NInit is the initial number of molecules in the pool.
func (pl *Pool) NInit() float64 { return pl.ConcInit * pl.Vol }

// Value returns the current value of field, one of Fields.
func (pl *Pool) Value(field string) (float64, error) {
	switch field {
	case "Conc":
		return pl.Conc, nil
	case "init":
		return pl.ConcInit, nil
	case "n":
		return pl.N(), nil
	case "nInit":
		return pl.NInit(), nil
	}
	return 0, fmt.Errorf("model: pool %s has no field %q", pl.Pth, field)
}

func (pl *Pool) reinit() {
	pl.Conc = pl.ConcInit
	pl.Range = minmax.F64{Min: pl.Conc, Max: pl.Conc}
}

func (pl *Pool) fitRange() {
	if pl.Conc < pl.Range.Min {
		pl.Range.Min = pl.Conc
	}
	if pl.Conc > pl.Range.Max {
		pl.Range.Max = pl.Conc
	}
}

// Reac converts Sub into Prd at rate Kf*Sub and back at rate Kb*Prd.
type Reac struct {
	Sub *Pool
	Prd *Pool
	Kf  float64
	Kb  float64
}

// Model holds all pools and reactions and advances them in time.
type Model struct {
	Root  string  `desc:"path under which all pools live"`
	Time  float64 `inactive:"+" desc:"simulated time"`
	Steps env.Ctr `inactive:"+" desc:"number of steps since Reinit"`
	Reacs []*Reac

	pools map[string]*Pool
	order []string
}

// New returns an empty model rooted at root, e.g. "/model".
func New(root string) *Model {
	return &Model{Root: path.Clean("/" + root), pools: make(map[string]*Pool)}
}

// AddPool adds a pool named nm under the model root.
func (md *Model) AddPool(nm string, concInit, vol, decay float64) (*Pool, error) {
	if nm == "" || strings.Contains(nm, "/") {
		return nil, fmt.Errorf("model: invalid pool name %q", nm)
	}
	pth := path.Join(md.Root, nm)
	if _, has := md.pools[pth]; has {
		return nil, fmt.Errorf("model: pool %s already exists", pth)
	}
	pl := &Pool{Nm: nm, Pth: pth, ConcInit: concInit, Vol: vol, Decay: decay}
	pl.reinit()
	md.pools[pth] = pl
	md.order = append(md.order, pth)
	return pl, nil
}

// AddReac adds a reversible reaction between two existing pools.
func (md *Model) AddReac(sub, prd string, kf, kb float64) (*Reac, error) {
	sp, err := md.Pool(sub)
	if err != nil {
		return nil, err
	}
	pp, err := md.Pool(prd)
	if err != nil {
		return nil, err
	}
	rc := &Reac{Sub: sp, Prd: pp, Kf: kf, Kb: kb}
	md.Reacs = append(md.Reacs, rc)
	return rc, nil
}

// Pool returns the pool at pth, which may also be a bare pool name.
func (md *Model) Pool(pth string) (*Pool, error) {
	if pth == "" {
		return nil, fmt.Errorf("%w: empty path", canvas.ErrLookupFailure)
	}
	if !strings.HasPrefix(pth, "/") {
		pth = path.Join(md.Root, pth)
	}
	pl, has := md.pools[path.Clean(pth)]
	if !has {
		return nil, fmt.Errorf("%w: %s", canvas.ErrLookupFailure, pth)
	}
	return pl, nil
}

// Lookup implements canvas.DataBackend.
func (md *Model) Lookup(pth string) (canvas.Element, error) {
	pl, err := md.Pool(pth)
	if err != nil {
		return nil, err
	}
	return pl, nil
}

// Recordables implements canvas.DataBackend, returning pool names in creation order.
func (md *Model) Recordables() []string {
	nms := make([]string, len(md.order))
	for i, pth := range md.order {
		nms[i] = md.pools[pth].Nm
	}
	return nms
}

// Paths returns all pool paths, sorted.
func (md *Model) Paths() []string {
	pths := append([]string(nil), md.order...)
	sort.Strings(pths)
	return pths
}

// Pools returns all pools in creation order.
func (md *Model) Pools() []*Pool {
	pls := make([]*Pool, len(md.order))
	for i, pth := range md.order {
		pls[i] = md.pools[pth]
	}
	return pls
}

// Reinit restores all pools to their initial concentration and resets time.
func (md *Model) Reinit() {
	for _, pl := range md.Pools() {
		pl.reinit()
	}
	md.Time = 0
	md.Steps.Init()
}

// Step advances the model by dt with forward Euler integration.
func (md *Model) Step(dt float64) {
	delta := make(map[*Pool]float64, len(md.order))
	for _, pl := range md.pools {
		delta[pl] -= pl.Decay * pl.Conc
	}
	for _, rc := range md.Reacs {
		rate := rc.Kf*rc.Sub.Conc - rc.Kb*rc.Prd.Conc
		delta[rc.Sub] -= rate
		delta[rc.Prd] += rate
	}
	for pl, d := range delta {
		pl.Conc += dt * d
		if pl.Conc < 0 {
			pl.Conc = 0
		}
		pl.fitRange()
	}
	md.Time += dt
	md.Steps.Incr()
}
