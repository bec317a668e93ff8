package metrics

import (
	"time"

	"github.com/probook/probook-api/internal/observability/errors"
	"github.com/probook/probook-api/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultNoop    = "noop"
)

// DispatchTick captures one pass of the offer dispatch loop for metric
// emission.
type DispatchTick struct {
	Result       string
	TasksHandled int
	Duration     time.Duration
	Err          error
}

// EmitDispatchTick emits standardised dispatch loop metrics.
func EmitDispatchTick(sink statsd.Sink, in DispatchTick) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"result": in.Result,
	}
	if in.Err != nil && in.Result == ResultError {
		if class := errors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("dispatch.tick", 1, tags)

	if in.TasksHandled > 0 {
		sink.Count("dispatch.tasks_handled", int64(in.TasksHandled), CloneTags(tags))
	}
	if in.Duration > 0 {
		sink.Timing("dispatch.tick_duration", in.Duration, CloneTags(tags))
	}
	if in.Err == nil {
		sink.Gauge("dispatch.last_success_epoch", float64(time.Now().Unix()), nil)
	}
}

// EmitOffersExpired records the outcome of an offer expiry sweep.
func EmitOffersExpired(sink statsd.Sink, expired int64, err error) {
	if sink == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	} else if expired == 0 {
		result = ResultNoop
	}
	tags := map[string]string{"result": result}
	sink.Count("offers.expiry_sweep", 1, tags)
	if expired > 0 {
		sink.Count("offers.expired", expired, CloneTags(tags))
	}
}

// CloneTags creates a shallow copy of a tag map, filtering out empty maps.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
