package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/toolagent/logging"
	"github.com/hupe1980/toolagent/observe"
	"github.com/hupe1980/toolagent/tool"
	"github.com/hupe1980/toolagent/toolcall"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// InvokerOptions configures an Invoker.
type InvokerOptions struct {
	Logger  logging.Logger
	Metrics *observe.Metrics
}

// Invoker resolves tool-call requests against a registry and executes them.
//
// Invoke never fails: unknown tools, argument errors, handler errors and
// handler panics are all rendered as text so the model can see them.
type Invoker struct {
	registry *tool.Registry
	logger   logging.Logger
	metrics  *observe.Metrics
}

// NewInvoker creates an Invoker for reg.
func NewInvoker(reg *tool.Registry, optFns ...func(o *InvokerOptions)) *Invoker {
	opts := InvokerOptions{
		Logger:  logging.NoOpLogger{},
		Metrics: observe.DefaultMetrics(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Invoker{
		registry: reg,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
	}
}

// Invoke executes req and returns the text of the resulting tool_result message.
func (inv *Invoker) Invoke(ctx context.Context, req toolcall.Request) string {
	result, _ := inv.invoke(ctx, inv.logger, req)
	return result
}

// invoke returns the result text and the call status (see observe.Status*).
func (inv *Invoker) invoke(ctx context.Context, logger logging.Logger, req toolcall.Request) (string, string) {
	ctx, span := observe.StartSpan(ctx, "agent.tool.call")
	defer span.End()
	span.SetAttributes(attribute.String("tool.name", req.Name))

	t, ok := inv.registry.Lookup(req.Name)
	if !ok {
		span.SetStatus(codes.Error, "tool not found")
		inv.metrics.RecordToolCall(ctx, req.Name, observe.StatusNotFound, 0)
		logger.Warn("agent.tool.not_found", "tool_name", req.Name)
		return fmt.Sprintf("Tool '%s' not found", req.Name), observe.StatusNotFound
	}

	start := time.Now()
	result, err := call(ctx, t, req.Parameters)
	dur := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		inv.metrics.RecordToolCall(ctx, req.Name, observe.StatusError, dur)
		logging.LogToolCall(logger, req.Name, dur, observe.StatusError, err)
		return fmt.Sprintf("Error executing tool '%s': %s", req.Name, err.Error()), observe.StatusError
	}

	inv.metrics.RecordToolCall(ctx, req.Name, observe.StatusOK, dur)
	logging.LogToolCall(logger, req.Name, dur, observe.StatusOK, nil)

	return result, observe.StatusOK
}

// call runs the handler and renders its result, converting a panic in
// either step into an error.
func call(ctx context.Context, t tool.Tool, args map[string]any) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	if args == nil {
		args = map[string]any{}
	}

	result, err := t.Call(ctx, args)
	if err != nil {
		return "", err
	}

	return tool.Stringify(result), nil
}
