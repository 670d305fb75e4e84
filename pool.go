package mqttsn

import "sync"

// maxDatagramSize covers the largest UDP payload a gateway can send; the
// extended length format tops out at 65535 anyway.
const maxDatagramSize = 65535

// frameBufferPool reduces allocations on the receive path.
var frameBufferPool = sync.Pool{
	New: func() any {
		buf := make([]byte, maxDatagramSize)
		return &buf
	},
}

// getFrameBuffer returns a pooled receive buffer.
func getFrameBuffer() []byte {
	return *frameBufferPool.Get().(*[]byte)
}

// putFrameBuffer returns a receive buffer to the pool.
func putFrameBuffer(buf []byte) {
	if cap(buf) < maxDatagramSize {
		return
	}
	buf = buf[:cap(buf)]
	frameBufferPool.Put(&buf)
}
