package elog

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Astera-org/simplot/library/canvas"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// LogPrec is precision for saving float values in logs
const LogPrec = 4

// Sampler is implemented by elements that can be recorded.
type Sampler interface {
	Value(field string) (float64, error)
}

// Recorder holds one recording table per element and field and appends
// a row to each of them on every Record call. It implements canvas.Recorder.
type Recorder struct {
	Tables map[TableKey]*LogTable
	Order  []TableKey `desc:"keys of Tables in creation order"`

	// OnCreate, if set, is called for every newly created table.
	OnCreate func(lt *LogTable)
}

// CreateTable starts recording field of el. Creating a table that already
// exists is a no-op.
func (lg *Recorder) CreateTable(el canvas.Element, field string) error {
	smp, ok := el.(Sampler)
	if !ok {
		return fmt.Errorf("elog: %s cannot be recorded", el.Path())
	}
	if _, err := smp.Value(field); err != nil {
		return err
	}
	if lg.Tables == nil {
		lg.Tables = make(map[TableKey]*LogTable)
	}
	key := GenTableKey(el.Path(), field)
	if _, has := lg.Tables[key]; has {
		return nil
	}
	dt := &etable.Table{}
	lg.configLogTable(dt, el, field)
	lt := NewLogTable(dt)
	lt.Key = key
	lt.Source = el
	lt.Field = field
	lg.Tables[key] = lt
	lg.Order = append(lg.Order, key)
	if lg.OnCreate != nil {
		lg.OnCreate(lt)
	}
	return nil
}

func (lg *Recorder) configLogTable(dt *etable.Table, el canvas.Element, field string) {
	dt.SetMetaData("name", el.Name()+field+"Log")
	dt.SetMetaData("desc", "Record of "+field+" of "+el.Path()+" over time")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))
	sch := etable.Schema{
		{Name: TimeCol, Type: etensor.FLOAT64},
		{Name: field, Type: etensor.FLOAT64},
	}
	dt.SetFromSchema(sch, 0)
}

// Record appends a row at time t to every table, sampling its element.
// Sampling errors are returned after all tables have been written.
func (lg *Recorder) Record(t float64) error {
	var firstErr error
	for _, key := range lg.Order {
		if err := lg.RecordTable(lg.Tables[key], t); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// RecordTable appends one row at time t to lt. A failed sample is
// recorded as 0.
func (lg *Recorder) RecordTable(lt *LogTable, t float64) error {
	val, err := lt.Source.(Sampler).Value(lt.Field)
	dt := lt.Table
	row := dt.Rows
	dt.SetNumRows(row + 1)
	dt.SetCellFloat(TimeCol, row, t)
	dt.SetCellFloat(lt.Field, row, val)
	lt.ResetIdxViews()
	if werr := lg.writeRow(lt, row); err == nil {
		err = werr
	}
	return err
}

func (lg *Recorder) writeRow(lt *LogTable, row int) error {
	if lt.File == nil {
		return nil
	}
	if !lt.WroteHeaders {
		if _, err := lt.Table.WriteCSVHeaders(lt.File, etable.Tab); err != nil {
			return err
		}
		lt.WroteHeaders = true
	}
	return lt.Table.WriteCSVRow(lt.File, row, etable.Tab)
}

// Table returns the recording table for key, or nil.
func (lg *Recorder) Table(key TableKey) *LogTable {
	return lg.Tables[key]
}

// LogTables returns all recording tables in creation order.
func (lg *Recorder) LogTables() []*LogTable {
	lts := make([]*LogTable, len(lg.Order))
	for i, key := range lg.Order {
		lts[i] = lg.Tables[key]
	}
	return lts
}

// Reset removes all rows from every table, keeping the tables.
func (lg *Recorder) Reset() {
	for _, lt := range lg.Tables {
		lt.Table.SetNumRows(0)
		lt.ResetIdxViews()
	}
}

// SetLogFile sets the file to which rows of the given table are written as
// they are recorded, tab separated with a header line. Rows already
// recorded are written first.
func (lg *Recorder) SetLogFile(key TableKey, fnm string) error {
	lt := lg.Tables[key]
	if lt == nil {
		return fmt.Errorf("elog: no table %s", key)
	}
	f, err := os.Create(fnm)
	if err != nil {
		return err
	}
	if lt.File != nil {
		if err := lt.File.Close(); err != nil {
			f.Close()
			return err
		}
	}
	lt.File = f
	lt.WroteHeaders = false
	for row := 0; row < lt.Table.Rows; row++ {
		if err := lg.writeRow(lt, row); err != nil {
			return err
		}
	}
	return nil
}

// CloseLogFiles closes all open log files, returning the first error.
func (lg *Recorder) CloseLogFiles() error {
	var firstErr error
	for _, key := range lg.Order {
		lt := lg.Tables[key]
		if lt.File == nil {
			continue
		}
		if err := lt.File.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		lt.File = nil
	}
	return firstErr
}
