package mqttsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameBufferPool(t *testing.T) {
	buf := getFrameBuffer()
	assert.Len(t, buf, maxDatagramSize)

	putFrameBuffer(buf)

	again := getFrameBuffer()
	assert.Len(t, again, maxDatagramSize)
	putFrameBuffer(again)
}

func TestFrameBufferPoolRejectsSmallBuffers(t *testing.T) {
	// Undersized buffers are dropped so the pool only hands out
	// full-size ones.
	putFrameBuffer(make([]byte, 16))

	buf := getFrameBuffer()
	assert.Len(t, buf, maxDatagramSize)
	putFrameBuffer(buf)
}
