package elog

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Astera-org/simplot/library/model"
)

func TestTableKey(t *testing.T) {
	tk := GenTableKey("/model/compartment1", "Conc")
	if tk != "/model/compartment1&Conc" {
		t.Errorf("Got unexpected tablekey " + string(tk))
	}
	pth, fld := tk.Parts()
	if pth != "/model/compartment1" || fld != "Conc" {
		t.Errorf("Error parsing tablekey: %s %s", pth, fld)
	}
}

type plainElement struct{}

func (plainElement) Path() string { return "/model/plain" }
func (plainElement) Name() string { return "plain" }

func testModel(t *testing.T) (*model.Model, *model.Pool) {
	md := model.New("/model")
	pl, err := md.AddPool("compartment1", 1, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	return md, pl
}

func TestCreateTable(t *testing.T) {
	_, pl := testModel(t)
	rc := Recorder{}
	var created []*LogTable
	rc.OnCreate = func(lt *LogTable) { created = append(created, lt) }
	if err := rc.CreateTable(pl, "Conc"); err != nil {
		t.Fatal(err)
	}
	if err := rc.CreateTable(pl, "Conc"); err != nil {
		t.Fatal(err)
	}
	if err := rc.CreateTable(pl, "init"); err != nil {
		t.Fatal(err)
	}
	if len(rc.Order) != 2 || len(created) != 2 {
		t.Fatalf("expected 2 tables, got %d (%d created)", len(rc.Order), len(created))
	}
	lt := rc.Table(GenTableKey("/model/compartment1", "Conc"))
	if lt == nil || lt.Table.ColByName("Conc") == nil || lt.Table.ColByName(TimeCol) == nil {
		t.Fatal("table missing columns")
	}
	if lt.Table.MetaData["name"] != "compartment1ConcLog" {
		t.Errorf("unexpected table name %q", lt.Table.MetaData["name"])
	}
	if err := rc.CreateTable(pl, "Vm"); err == nil {
		t.Error("unknown field accepted")
	}
	if err := rc.CreateTable(plainElement{}, "Conc"); err == nil {
		t.Error("element without values accepted")
	}
}

func TestRecord(t *testing.T) {
	md, pl := testModel(t)
	rc := Recorder{}
	rc.CreateTable(pl, "Conc")
	rc.CreateTable(pl, "init")
	for i := 0; i < 3; i++ {
		if err := rc.Record(md.Time); err != nil {
			t.Fatal(err)
		}
		md.Step(0.1)
	}
	lt := rc.LogTables()[0]
	if lt.Table.Rows != 3 {
		t.Fatalf("expected 3 rows, got %d", lt.Table.Rows)
	}
	s := lt.Series()
	if s.Name != "compartment1 Conc" || len(s.X) != 3 || s.Y[0] != 1 || s.Y[1] != 0.9 {
		t.Errorf("unexpected series %+v", s)
	}
	if s.X[2] <= s.X[1] {
		t.Errorf("time not increasing: %v", s.X)
	}
	if lt.GetIdxView().Len() != 3 {
		t.Errorf("index view has %d rows", lt.GetIdxView().Len())
	}
	ini := rc.LogTables()[1].Series()
	if ini.Y[2] != 1 {
		t.Errorf("init changed: %v", ini.Y)
	}
	rc.Reset()
	if lt.Table.Rows != 0 {
		t.Errorf("reset left %d rows", lt.Table.Rows)
	}
}

func TestLogFile(t *testing.T) {
	md, pl := testModel(t)
	rc := Recorder{}
	rc.CreateTable(pl, "Conc")
	fnm := filepath.Join(t.TempDir(), "conc.tsv")
	key := GenTableKey(pl.Path(), "Conc")
	if err := rc.SetLogFile(key, fnm); err != nil {
		t.Fatal(err)
	}
	if err := rc.SetLogFile("nosuch&Conc", fnm); err == nil {
		t.Error("log file for unknown table accepted")
	}
	rc.Record(md.Time)
	md.Step(0.1)
	rc.Record(md.Time)
	rc.CloseLogFiles()
	b, err := ioutil.ReadFile(fnm)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 3 {
		t.Errorf("expected header and 2 rows, got %q", string(b))
	}
}

func TestSetLogFileAgain(t *testing.T) {
	md, pl := testModel(t)
	rc := Recorder{}
	rc.CreateTable(pl, "Conc")
	key := GenTableKey(pl.Path(), "Conc")
	dir := t.TempDir()
	first := filepath.Join(dir, "first.tsv")
	second := filepath.Join(dir, "second.tsv")
	if err := rc.SetLogFile(key, first); err != nil {
		t.Fatal(err)
	}
	old := rc.Table(key).File
	rc.Record(md.Time)
	if err := rc.SetLogFile(key, second); err != nil {
		t.Fatal(err)
	}
	if _, err := old.Write([]byte("x")); err == nil {
		t.Error("replaced log file still open")
	}
	rc.Record(md.Time)
	if err := rc.CloseLogFiles(); err != nil {
		t.Fatal(err)
	}
	b, err := ioutil.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 3 {
		t.Errorf("expected header, earlier row and new row, got %q", string(b))
	}
}

func TestCloseLogFilesError(t *testing.T) {
	_, pl := testModel(t)
	rc := Recorder{}
	rc.CreateTable(pl, "Conc")
	key := GenTableKey(pl.Path(), "Conc")
	if err := rc.SetLogFile(key, filepath.Join(t.TempDir(), "conc.tsv")); err != nil {
		t.Fatal(err)
	}
	rc.Table(key).File.Close()
	if err := rc.CloseLogFiles(); err == nil {
		t.Error("expected an error closing an already closed file")
	}
	if rc.Table(key).File != nil {
		t.Error("file not cleared after close")
	}
}
