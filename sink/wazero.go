package sink

import (
	"github.com/tetratelabs/wazero/api"

	gpulayout "github.com/wippyai/gpu-layout"
	"github.com/wippyai/gpu-layout/errors"
)

var (
	_ gpulayout.Memory      = (*Wazero)(nil)
	_ gpulayout.MemorySizer = (*Wazero)(nil)
)

// Wazero adapts wazero linear memory to gpulayout.Memory.
type Wazero struct {
	mem api.Memory
}

func NewWazero(mem api.Memory) *Wazero {
	return &Wazero{mem: mem}
}

// Read returns a view of linear memory. The view is invalidated if memory
// grows.
func (m *Wazero) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseSink, offset, length)
	}
	return data, nil
}

func (m *Wazero) Write(offset uint32, data []byte) error {
	if !m.mem.Write(offset, data) {
		return errors.OutOfBounds(errors.PhaseSink, offset, uint32(len(data)))
	}
	return nil
}

func (m *Wazero) Size() uint32 {
	return m.mem.Size()
}
