package handler

import (
	"bytes"
	"sync"
)

const initialBufferSize = 1024

// jsonBufferPool recycles encode buffers across responses
var jsonBufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return jsonBufferPool.Get().(*bytes.Buffer)
}

// putBuffer drops oversized buffers so one huge catalog listing does not pin
// memory in the pool
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*initialBufferSize {
		return
	}
	buf.Reset()
	jsonBufferPool.Put(buf)
}
