package mqttsn

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()

	assert.Equal(t, 60*time.Second, o.keepAlive)
	assert.True(t, o.cleanSession)
	assert.Equal(t, 5*time.Second, o.retryTimeout)
	assert.Equal(t, 3, o.maxRetries)
	assert.IsType(t, &NoOpLogger{}, o.logger)
}

func TestApplyOptions(t *testing.T) {
	o := applyOptions(
		WithKeepAlive(30*time.Second),
		WithCleanSession(false),
		WithRetryTimeout(time.Second),
		WithMaxRetries(7),
		WithWill("w", []byte("gone"), QoS1, true),
		WithPredefinedTopic(5, "fixed"),
		WithPublishRate(2, 4),
	)

	assert.Equal(t, 30*time.Second, o.keepAlive)
	assert.False(t, o.cleanSession)
	assert.Equal(t, time.Second, o.retryTimeout)
	assert.Equal(t, 7, o.maxRetries)
	assert.Equal(t, "w", o.willTopic)
	assert.Equal(t, []byte("gone"), o.willPayload)
	assert.Equal(t, QoS1, o.willQoS)
	assert.True(t, o.willRetain)
	assert.Equal(t, "fixed", o.predefined[5])
	assert.Equal(t, float64(2), o.publishRate)
	assert.Equal(t, 4, o.publishBurst)
}

func TestOptionsIgnoreInvalidValues(t *testing.T) {
	o := applyOptions(
		WithRetryTimeout(0),
		WithMaxRetries(0),
		WithLogger(nil),
	)

	assert.Equal(t, 5*time.Second, o.retryTimeout)
	assert.Equal(t, 3, o.maxRetries)
	assert.NotNil(t, o.logger)
}
