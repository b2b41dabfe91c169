// Package sink provides byte destinations for layout.Writer and sources for
// layout.Reader.
//
// Buffer is a fixed-capacity region, the host-side analogue of a mapped GPU
// buffer. MemoryWriter and MemoryReader stream through any offset-addressed
// gpulayout.Memory, and Wazero adapts WASM linear memory to that interface.
package sink
