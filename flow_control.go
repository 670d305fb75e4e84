package mqttsn

import (
	"context"

	"golang.org/x/time/rate"
)

// FlowController paces outgoing publishes. MQTT-SN gateways signal
// overload with Rejected(congestion); a limiter keeps a chatty sensor from
// provoking that in the first place, and Throttle halves the rate when the
// gateway complains anyway.
type FlowController struct {
	limiter *rate.Limiter
}

// NewFlowController creates a controller allowing up to publishesPerSecond
// sustained sends with the given burst. A zero or negative rate disables
// pacing.
func NewFlowController(publishesPerSecond float64, burst int) *FlowController {
	if publishesPerSecond <= 0 {
		return &FlowController{}
	}
	if burst < 1 {
		burst = 1
	}
	return &FlowController{
		limiter: rate.NewLimiter(rate.Limit(publishesPerSecond), burst),
	}
}

// Wait blocks until a send is permitted or the context is done.
func (f *FlowController) Wait(ctx context.Context) error {
	if f.limiter == nil {
		return nil
	}
	return f.limiter.Wait(ctx)
}

// Allow reports whether a send is permitted right now without blocking.
func (f *FlowController) Allow() bool {
	if f.limiter == nil {
		return true
	}
	return f.limiter.Allow()
}

// Throttle halves the sustained rate after a congestion rejection.
// The rate never drops below one publish per second.
func (f *FlowController) Throttle() {
	if f.limiter == nil {
		return
	}

	limit := f.limiter.Limit() / 2
	if limit < 1 {
		limit = 1
	}
	f.limiter.SetLimit(limit)
}

// Limit returns the current sustained rate, or zero when pacing is disabled.
func (f *FlowController) Limit() float64 {
	if f.limiter == nil {
		return 0
	}
	return float64(f.limiter.Limit())
}
