package estats

import (
	"fmt"
	"strings"
)

// Stats holds named values, e.g. interaction counters of a canvas
// or summaries of recordings, so they can be printed together.
type Stats struct {
	Floats  map[string]float64
	Strings map[string]string
	Ints    map[string]int
}

// Init must be called before use.
func (st *Stats) Init() {
	st.Floats = make(map[string]float64)
	st.Strings = make(map[string]string)
	st.Ints = make(map[string]int)
}

func (st *Stats) SetFloat(name string, value float64) {
	st.Floats[name] = value
}
func (st *Stats) SetString(name string, value string) {
	st.Strings[name] = value
}
func (st *Stats) SetInt(name string, value int) {
	st.Ints[name] = value
}

// IncInt adds one to the int stat of given name.
func (st *Stats) IncInt(name string) {
	st.Ints[name]++
}

func (st *Stats) Float(name string) float64 {
	return st.Floats[name]
}
func (st *Stats) String(name string) string {
	return st.Strings[name]
}
func (st *Stats) Int(name string) int {
	return st.Ints[name]
}

// Print returns "name: value" pairs for the given stats, tab separated.
// Names are looked up as int, then float, then string.
func (st *Stats) Print(names []string) string {
	var sb strings.Builder
	for i, nm := range names {
		if i > 0 {
			sb.WriteString("\t")
		}
		if v, ok := st.Ints[nm]; ok {
			fmt.Fprintf(&sb, "%s: %d", nm, v)
		} else if v, ok := st.Floats[nm]; ok {
			fmt.Fprintf(&sb, "%s: %.4g", nm, v)
		} else {
			fmt.Fprintf(&sb, "%s: %s", nm, st.Strings[nm])
		}
	}
	return sb.String()
}
