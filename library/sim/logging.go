package sim

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Astera-org/simplot/library/elog"
)

// RunName returns a name for this run that combines Tag and the model root
// -- add this to any file names that are saved.
func (ss *Sim) RunName() string {
	rn := ""
	if ss.Tag != "" {
		rn += ss.Tag + "_"
	}
	rn += strings.Trim(strings.ReplaceAll(ss.Config.Root, "/", "_"), "_")
	return rn
}

// LogFileName returns the default log file name for the given recording
func (ss *Sim) LogFileName(key elog.TableKey) string {
	pth, field := key.Parts()
	nm := strings.Trim(strings.ReplaceAll(pth, "/", "_"), "_")
	return ss.RunName() + "_" + nm + "_" + field + ".tsv"
}

// OpenLogFiles writes every recording to its own tsv file in dir.
func (ss *Sim) OpenLogFiles(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	for _, key := range ss.Recorder.Order {
		fnm := filepath.Join(dir, ss.LogFileName(key))
		fmt.Printf("Saving %s log to: %s\n", key, fnm)
		if err := ss.Recorder.SetLogFile(key, fnm); err != nil {
			return err
		}
	}
	return nil
}
