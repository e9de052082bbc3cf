package platform

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-ps"
)

// commLength is the length at which Linux truncates process names.
const commLength = 15

var processesFunc = ps.Processes

// ProcessSet is a snapshot of running executable names.
type ProcessSet struct {
	names map[string]struct{}
}

// NewProcessSet builds a snapshot from executable names.
func NewProcessSet(names ...string) ProcessSet {
	set := ProcessSet{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		if name == "" {
			continue
		}
		set.names[strings.ToLower(name)] = struct{}{}
	}
	return set
}

// Exists reports whether a process matching name was running at scan time.
// Matching is case-insensitive. A query longer than the kernel's name limit
// also matches its truncated form.
func (set ProcessSet) Exists(name string) bool {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return false
	}
	if _, ok := set.names[key]; ok {
		return true
	}
	if len(key) > commLength {
		_, ok := set.names[key[:commLength]]
		return ok
	}
	return false
}

// Len returns the number of distinct executable names.
func (set ProcessSet) Len() int {
	return len(set.names)
}

// ProcessScanner lists running processes.
type ProcessScanner interface {
	Scan() (ProcessSet, error)
}

type processScanner struct{}

// NewProcessScanner returns a scanner backed by the OS process table.
func NewProcessScanner() ProcessScanner {
	return processScanner{}
}

// Scan returns the current process table. On failure the returned set is
// empty, so every lookup reports the process as not found.
func (processScanner) Scan() (ProcessSet, error) {
	processes, err := processesFunc()
	if err != nil {
		return NewProcessSet(), fmt.Errorf("list processes: %w", err)
	}
	names := make([]string, 0, len(processes))
	for _, process := range processes {
		if process == nil {
			continue
		}
		names = append(names, process.Executable())
	}
	return NewProcessSet(names...), nil
}
