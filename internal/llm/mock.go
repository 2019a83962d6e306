package llm

import (
	"context"
	"encoding/json"
	"sync"
)

const mockModel = "mock"

// MockResponse is one queued answer for a MockProvider. When Err is set it is
// returned instead of a response.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider answers from a FIFO queue and records every request in Calls.
// A synthetic mock (see NewSyntheticProvider) falls back to placeholder JSON
// shaped by the request schema once the queue is drained.
type MockProvider struct {
	mu         sync.Mutex
	queue      []MockResponse
	synthesize bool

	Calls []Request
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

// NewSyntheticProvider returns a mock that never runs dry. It backs the
// "mock" provider setting so the coach works without network access.
func NewSyntheticProvider() *MockProvider {
	return &MockProvider{synthesize: true}
}

func (m *MockProvider) ModelID() string {
	return mockModel
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, req)

	var next MockResponse
	switch {
	case len(m.queue) > 0:
		next, m.queue = m.queue[0], m.queue[1:]
	case m.synthesize:
		next = MockResponse{Content: placeholder(req)}
	default:
		return nil, &ErrProviderUnavailable{}
	}

	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{Content: next.Content, Usage: next.Usage, Model: mockModel, StopReason: StopEnd}, nil
}

func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// placeholder builds content for req: JSON matching its schema, or a short
// sentence when the request is unstructured.
func placeholder(req Request) json.RawMessage {
	if req.Schema == nil {
		return json.RawMessage(`"Keep going. Every attempt teaches you something."`)
	}
	data, err := json.Marshal(sample(req.Schema.Definition, "mock"))
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return data
}

// sample returns the smallest value that satisfies def, naming string
// values after the property they fill.
func sample(def map[string]any, name string) any {
	if enum, ok := def["enum"].([]any); ok && len(enum) > 0 {
		return enum[0]
	}

	typ, _ := def["type"].(string)
	switch typ {
	case "object":
		out := map[string]any{}
		props, _ := def["properties"].(map[string]any)
		for key, v := range props {
			if sub, ok := v.(map[string]any); ok {
				out[key] = sample(sub, key)
			}
		}
		return out
	case "array":
		items, _ := def["items"].(map[string]any)
		n := 1
		if minItems, ok := number(def["minItems"]); ok && minItems > 1 {
			n = minItems
		}
		list := make([]any, n)
		for i := range list {
			list[i] = sample(items, name)
		}
		return list
	case "number", "integer":
		return 0
	case "boolean":
		return false
	default:
		return "mock " + name
	}
}

func number(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}
