package handler

import (
	"bytes"
	"sync"
)

const (
	// a typical /status body with a few dozen items fits without growing
	initialBufferSize = 4 << 10

	// full bank dumps grow buffers past this; dropping them keeps the pool
	// from pinning that memory between requests
	maxPooledBufferSize = 256 << 10
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
