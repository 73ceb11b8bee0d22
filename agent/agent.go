package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/toolagent/core"
	"github.com/hupe1980/toolagent/logging"
	"github.com/hupe1980/toolagent/model"
	"github.com/hupe1980/toolagent/observe"
	"github.com/hupe1980/toolagent/prompt"
	"github.com/hupe1980/toolagent/tool"
	"github.com/hupe1980/toolagent/toolcall"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Options configures an Agent. Use functional options with New to override
// defaults.
type Options struct {
	Config  Config
	Tools   []tool.Tool
	Logger  logging.Logger
	Metrics *observe.Metrics
}

// Agent runs the tool-calling loop against a model gateway.
//
// Configuration and registry are fixed at construction. Run keeps all
// per-run state on its own stack, so an Agent is safe for concurrent use
// when its gateway and tools are.
type Agent struct {
	gateway  model.Model
	config   Config
	registry *tool.Registry
	invoker  *Invoker
	logger   logging.Logger
	metrics  *observe.Metrics
}

// Result describes a finished run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string
	// Message is the final assistant message.
	Message core.Message
	// History is the conversation as sent with the last model call: the
	// system prompt (when tools exist), the caller's messages and every
	// tool_call/tool_result pair. After budget exhaustion it is the stripped
	// history headed by the max-iterations system message.
	History []core.Message
	// Iterations is the number of tools executed.
	Iterations int
	// State is the terminal state (StateDone or StateBudgetExhausted), or the
	// state the run was in when the gateway failed.
	State State
}

// New creates an Agent around gateway.
//
// Example:
//
//	a, err := agent.New(gateway, func(o *agent.Options) {
//	  o.Config.AgentName = "Travel Assistant"
//	  o.Tools = []tool.Tool{weatherTool}
//	})
func New(gateway model.Model, optFns ...func(o *Options)) (*Agent, error) {
	if gateway == nil {
		return nil, errors.New("agent: model gateway is nil")
	}

	opts := Options{
		Config:  DefaultConfig(),
		Logger:  logging.NoOpLogger{},
		Metrics: observe.DefaultMetrics(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	if opts.Metrics == nil {
		opts.Metrics = observe.DefaultMetrics()
	}

	opts.Config.Templates = opts.Config.Templates.WithDefaults()
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("agent: invalid config: %w", err)
	}

	registry, err := tool.NewRegistry(opts.Tools...)
	if err != nil {
		return nil, fmt.Errorf("agent: %w", err)
	}

	return &Agent{
		gateway:  gateway,
		config:   opts.Config,
		registry: registry,
		invoker: NewInvoker(registry, func(o *InvokerOptions) {
			o.Logger = opts.Logger
			o.Metrics = opts.Metrics
		}),
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}, nil
}

// Config returns the agent configuration.
func (a *Agent) Config() Config { return a.config }

// Registry returns the agent's tool registry.
func (a *Agent) Registry() *tool.Registry { return a.registry }

// Run answers the conversation in history. The returned message is always an
// assistant message. Only gateway failures are returned as errors; history
// is never modified.
func (a *Agent) Run(ctx context.Context, history []core.Message) (core.Message, error) {
	res, err := a.RunTrace(ctx, history)
	if err != nil {
		return core.Message{}, err
	}
	return res.Message, nil
}

// RunTrace is Run that also reports the working history, the number of
// executed tools and the terminal state.
func (a *Agent) RunTrace(ctx context.Context, history []core.Message) (Result, error) {
	res := Result{RunID: uuid.NewString(), State: StateAwaitingModel}
	logger := logging.With(a.logger, "run_id", res.RunID, "agent", a.config.AgentName)

	ctx, span := observe.StartSpan(ctx, "agent.run")
	defer span.End()
	span.SetAttributes(
		attribute.String("agent.run_id", res.RunID),
		attribute.String("agent.name", a.config.AgentName),
		attribute.String("agent.model", a.gateway.Info().Name),
	)

	a.metrics.ActiveRuns.Add(ctx, 1)
	defer a.metrics.ActiveRuns.Add(ctx, -1)

	logger.Info("agent.run.start", "messages", len(history), "tools", a.registry.Len())

	err := a.loop(ctx, logger, history, &res)

	span.SetAttributes(
		attribute.Int("agent.iterations", res.Iterations),
		attribute.String("agent.state", res.State.String()),
	)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		a.metrics.RecordRun(ctx, observe.StatusError, res.Iterations)
		logger.Error("agent.run.failed", "iterations", res.Iterations, "state", res.State, "error", err)
		return res, err
	}

	a.metrics.RecordRun(ctx, res.State.String(), res.Iterations)
	logger.Info("agent.run.finish", "iterations", res.Iterations, "state", res.State)

	return res, nil
}

func (a *Agent) loop(ctx context.Context, logger logging.Logger, history []core.Message, res *Result) error {
	working := core.CloneMessages(history)

	if a.registry.Len() > 0 {
		system, err := prompt.Build(a.config.Templates, a.config.identity(), a.registry)
		if err != nil {
			return fmt.Errorf("agent: build system prompt: %w", err)
		}
		working = append([]core.Message{core.NewSystemMessage(system)}, working...)
	}
	res.History = working

	for {
		a.transition(logger, res, StateAwaitingModel)

		text, err := a.generate(ctx, logger, working, res.Iterations+1)
		if err != nil {
			return fmt.Errorf("agent: model call (iteration %d): %w", res.Iterations+1, err)
		}

		req, ok := toolcall.Parse(text)
		if !ok {
			a.transition(logger, res, StateDone)
			res.Message = core.NewAssistantMessage(text)
			return nil
		}

		a.transition(logger, res, StateToolCallDetected)
		working = append(working, core.NewToolCallMessage(req.Name, text))

		result, status := a.invoker.invoke(ctx, logger, req)
		working = append(working, core.NewToolResultMessage(req.Name, result))
		res.History = working
		res.Iterations++

		logger.Debug("agent.tool.result", "tool_name", req.Name, "status", status, "iteration", res.Iterations)

		if res.Iterations >= a.config.MaxIterations {
			break
		}
	}

	a.transition(logger, res, StateBudgetExhausted)
	logger.Warn("agent.budget.exhausted", "max_iterations", a.config.MaxIterations)

	final, err := prompt.MaxIterations(a.config.Templates, a.config.identity())
	if err != nil {
		return fmt.Errorf("agent: build max-iterations prompt: %w", err)
	}

	forced := append([]core.Message{core.NewSystemMessage(final)}, core.WithoutRole(working, core.RoleSystem)...)
	res.History = forced

	text, err := a.generate(ctx, logger, forced, res.Iterations+1)
	if err != nil {
		return fmt.Errorf("agent: final model call after %d iterations: %w", res.Iterations, err)
	}

	// The forced answer is returned as is, even if it contains a directive.
	res.Message = core.NewAssistantMessage(text)
	return nil
}

func (a *Agent) generate(ctx context.Context, logger logging.Logger, messages []core.Message, iteration int) (string, error) {
	info := a.gateway.Info()

	ctx, span := observe.StartSpan(ctx, "agent.model.call")
	defer span.End()
	span.SetAttributes(
		attribute.String("model.name", info.Name),
		attribute.String("model.provider", string(info.Provider)),
		attribute.Int("agent.iteration", iteration),
	)

	start := time.Now()
	text, err := a.gateway.Generate(ctx, model.Request{
		Messages:    core.CloneMessages(messages),
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	})
	dur := time.Since(start)

	a.metrics.RecordModelCall(ctx, info.Name, dur, err)
	logging.LogModelCall(logger, info.Name, iteration, dur, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	return text, nil
}

func (a *Agent) transition(logger logging.Logger, res *Result, next State) {
	logger.Debug("agent.state", "from", res.State, "to", next, "iteration", res.Iterations)
	res.State = next
}
