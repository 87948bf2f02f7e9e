package estats

import (
	"testing"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

func TestPrint(t *testing.T) {
	st := Stats{}
	st.Init()
	st.IncInt("Drops")
	st.IncInt("Drops")
	st.SetFloat("Time", 0.5)
	st.SetString("Last", "/model/a")
	got := st.Print([]string{"Drops", "Time", "Last"})
	if got != "Drops: 2\tTime: 0.5\tLast: /model/a" {
		t.Errorf("unexpected print: %q", got)
	}
}

func TestSetAggs(t *testing.T) {
	dt := &etable.Table{}
	dt.SetFromSchema(etable.Schema{{Name: "Conc", Type: etensor.FLOAT64}}, 3)
	for i, v := range []float64{2, 1, 3} {
		dt.SetCellFloat("Conc", i, v)
	}
	st := Stats{}
	st.Init()
	st.SetAggs("a", etable.NewIdxView(dt), "Conc")
	if st.Float("a:Min") != 1 || st.Float("a:Max") != 3 || st.Float("a:Mean") != 2 {
		t.Errorf("unexpected aggs: %v", st.Floats)
	}
}
