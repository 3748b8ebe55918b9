package provider

// Mock is a canned provider for tests.
type Mock struct {
	Response string
	Err      error
	Handler  func(system, user string) string
}

// NewMock creates a mock provider with a fixed response.
func NewMock(response string) *Mock {
	return &Mock{Response: response}
}

// NewMockHandler creates a mock provider backed by a handler function.
func NewMockHandler(handler func(system, user string) string) *Mock {
	return &Mock{Handler: handler}
}

// Prompt returns the canned response, the handler result, or the configured
// error.
func (m *Mock) Prompt(system, user string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.Handler != nil {
		return m.Handler(system, user), nil
	}
	return m.Response, nil
}
