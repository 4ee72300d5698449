package platform

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/process"
)

// ProcessTable resolves executable names through gopsutil.
type ProcessTable struct{}

// NewProcessTable returns a gopsutil-backed ProcessNamer.
func NewProcessTable() *ProcessTable {
	return &ProcessTable{}
}

func (ProcessTable) ProcessName(pid int) (string, error) {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return "", fmt.Errorf("process %d: %w", pid, err)
	}
	name, err := p.Name()
	if err != nil {
		return "", fmt.Errorf("process %d name: %w", pid, err)
	}
	return name, nil
}
