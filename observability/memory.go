package observability

import (
	"os"
	"runtime"
	"sync"
	"whisperwall/contract"
	"whisperwall/domain"

	"github.com/shirou/gopsutil/process"
)

var _ contract.IMemoryProbe = (*MemoryProbe)(nil)

// MemoryProbe reads the resident set size of this process and the Go heap.
type MemoryProbe struct {
	once sync.Once
	proc *process.Process
	err  error
}

func NewMemoryProbe() *MemoryProbe {
	return &MemoryProbe{}
}

func (p *MemoryProbe) Sample() (domain.MemoryUsage, error) {
	p.once.Do(func() {
		p.proc, p.err = process.NewProcess(int32(os.Getpid()))
	})

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	usage := domain.MemoryUsage{HeapAlloc: m.Alloc}
	if p.err != nil {
		return usage, p.err
	}
	memInfo, err := p.proc.MemoryInfo()
	if err != nil {
		return usage, err
	}
	usage.RSS = memInfo.RSS
	return usage, nil
}
