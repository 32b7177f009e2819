package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds buffers used to encode recorded frames.
var BufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// GetBuffer returns an empty buffer from BufferPool.
func GetBuffer() *bytes.Buffer {
	buf := BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns a buffer to BufferPool. Oversized buffers are dropped.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 {
		return
	}
	BufferPool.Put(buf)
}
