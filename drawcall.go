package render

import "fmt"

// drawCall is one batching bucket: a texture, the program that samples
// it and the buffer collecting this frame's quads. All quads assigned
// to it render in a single GPU submission.
type drawCall struct {
	texture TextureID
	program Program
	buffer  *attributeBuffer
}

// drawCallRegistry is the append-only collection of draw calls. Indices
// are assigned in creation order starting at 0 and stay valid for the
// lifetime of the renderer; there is no deletion.
type drawCallRegistry struct {
	calls []drawCall
}

func (reg *drawCallRegistry) add(c drawCall) int {
	reg.calls = append(reg.calls, c)
	return len(reg.calls) - 1
}

// get returns the draw call at index. An out-of-range index is a
// programming error, not a recoverable condition: get panics with an
// *InvalidDrawCallError.
func (reg *drawCallRegistry) get(index int) *drawCall {
	if index < 0 || index >= len(reg.calls) {
		panic(&InvalidDrawCallError{Index: index, Count: len(reg.calls)})
	}
	return &reg.calls[index]
}

// InvalidDrawCallError is the panic value raised when a draw call index
// is out of range. Draw call indices come from CreateDrawCall (or the
// DrawCallSprites/DrawCallText built-ins), so an unknown index always
// indicates a bug in the calling code.
type InvalidDrawCallError struct {
	Index int // the offending index
	Count int // number of registered draw calls
}

func (e *InvalidDrawCallError) Error() string {
	return fmt.Sprintf("render: invalid draw call index %d (have %d draw calls)", e.Index, e.Count)
}
