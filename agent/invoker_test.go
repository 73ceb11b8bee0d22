package agent

import (
	"context"
	"testing"

	"github.com/hupe1980/toolagent/tool"
	"github.com/hupe1980/toolagent/toolcall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTool for testing dispatch without a FunctionTool.
type MockTool struct{ mock.Mock }

func (m *MockTool) Name() string        { return m.Called().String(0) }
func (m *MockTool) Description() string { return "mock tool" }

func (m *MockTool) Parameters() tool.Schema {
	return tool.Schema{"q": {Type: "string", Required: true}}
}

func (m *MockTool) Call(ctx context.Context, args map[string]any) (any, error) {
	ret := m.Called(ctx, args)
	return ret.Get(0), ret.Error(1)
}

func TestInvoker_DispatchesToTool(t *testing.T) {
	mt := &MockTool{}
	mt.On("Name").Return("search")
	mt.On("Call", mock.Anything, map[string]any{"q": "flights"}).Return([]string{"a", "b"}, nil).Once()
	mt.On("Call", mock.Anything, map[string]any{}).Return(nil, tool.NewToolError("search", "query required", tool.CodeValidation)).Once()

	reg, err := tool.NewRegistry(mt)
	require.NoError(t, err)
	inv := NewInvoker(reg)

	assert.Equal(t, `["a","b"]`, inv.Invoke(context.Background(), toolcall.Request{Name: "search", Parameters: map[string]any{"q": "flights"}}))
	assert.Equal(t, "Error executing tool 'search': query required", inv.Invoke(context.Background(), toolcall.Request{Name: "search"}))

	mt.AssertExpectations(t)
}

func TestInvoker(t *testing.T) {
	structured := tool.NewFunctionTool("get_flight_prices", "Flight prices", nil, func(context.Context, map[string]any) (any, error) {
		return map[string]any{"price": 420}, nil
	})
	nothing := tool.NewFunctionTool("noop", "Returns nil", nil, func(context.Context, map[string]any) (any, error) {
		return nil, nil
	})
	ctxAware := tool.NewFunctionTool("ctx", "Reads context", nil, func(ctx context.Context, _ map[string]any) (any, error) {
		return ctx.Value(ctxKey{}), nil
	})

	reg, err := tool.NewRegistry(weatherTool(), divideTool(), structured, nothing, ctxAware)
	require.NoError(t, err)
	inv := NewInvoker(reg)

	ctx := context.WithValue(context.Background(), ctxKey{}, "from-caller")

	tests := []struct {
		name string
		req  toolcall.Request
		want string
	}{
		{
			name: "string result",
			req:  toolcall.Request{Name: "get_weather", Parameters: map[string]any{"location": "Tokyo"}},
			want: "Weather in Tokyo: 72°F, sunny",
		},
		{
			name: "structured result",
			req:  toolcall.Request{Name: "get_flight_prices"},
			want: `{"price":420}`,
		},
		{
			name: "nil result",
			req:  toolcall.Request{Name: "noop"},
			want: "",
		},
		{
			name: "context is passed through",
			req:  toolcall.Request{Name: "ctx"},
			want: "from-caller",
		},
		{
			name: "not found",
			req:  toolcall.Request{Name: "missing"},
			want: "Tool 'missing' not found",
		},
		{
			name: "handler error",
			req:  toolcall.Request{Name: "divide_by_secret_number", Parameters: map[string]any{"numerator": 1.0}},
			want: "Error executing tool 'divide_by_secret_number': division by zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inv.Invoke(ctx, tt.req))
		})
	}
}

func TestInvoker_EmptyRegistry(t *testing.T) {
	inv := NewInvoker(nil)
	assert.Equal(t, "Tool 'x' not found", inv.Invoke(context.Background(), toolcall.Request{Name: "x"}))
}

type ctxKey struct{}
