package render

import "honnef.co/go/safeish"

// attributeBuffer pairs the CPU-side quad queue of a draw call with its
// GPU buffer. Quads accumulate over a frame and are uploaded in one go
// when the draw call is flushed.
type attributeBuffer struct {
	vbo   BufferID
	vao   VertexArrayID // zero on the legacy profile
	queue []Quad

	// allocated is the byte size of the GPU buffer. It only ever grows:
	// keeping the peak allocation avoids reallocation thrash when the
	// per-frame quad count is roughly stable.
	allocated int
}

// newAttributeBuffer creates the GPU-side objects for one draw call.
// On the modern profile the attribute layout is recorded into a vertex
// array object once; the legacy profile has no persistent object to
// carry that state, so attribute setup happens at every draw instead.
func newAttributeBuffer(b Backend, profile Profile, p Program) *attributeBuffer {
	buf := &attributeBuffer{}
	if profile != ProfileLegacy {
		buf.vao = b.NewVertexArray()
	}
	buf.vbo = b.NewBuffer()
	if profile != ProfileLegacy {
		b.EnableVertexAttribs(p)
	}
	return buf
}

// push appends a quad to the CPU queue. No GPU work happens here.
func (buf *attributeBuffer) push(q Quad) {
	buf.queue = append(buf.queue, q)
}

// upload writes the queued quads into the bound GPU buffer. The buffer
// is reallocated only when the payload outgrows the current allocation;
// equal or smaller payloads are written in place. Returns the number of
// queued vertices, 0 meaning nothing was uploaded.
func (buf *attributeBuffer) upload(b Backend) int {
	if len(buf.queue) == 0 {
		return 0
	}
	data := safeish.SliceCast[[]byte](buf.queue)
	if len(data) <= buf.allocated {
		b.BufferSubData(data)
	} else {
		b.BufferData(data)
		buf.allocated = len(data)
	}
	return len(buf.queue) * 6
}

// clear empties the queue, keeping its capacity for the next frame.
func (buf *attributeBuffer) clear() {
	buf.queue = buf.queue[:0]
}
