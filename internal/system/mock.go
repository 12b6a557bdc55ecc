package system

import (
	"context"
	"fmt"
	"sync"
)

// MockRunner implements Runner for testing.
type MockRunner struct {
	mu sync.Mutex

	// Commands records all executed commands.
	Commands []Command

	// Responses maps a program name to the error its run returns.
	Responses map[string]MockResponse

	// DefaultResponse is used when no matching response is found.
	DefaultResponse MockResponse
}

// MockResponse defines what a mocked process writes and returns.
type MockResponse struct {
	Output []byte
	Err    error
}

// NewMockRunner creates a new MockRunner.
func NewMockRunner() *MockRunner {
	return &MockRunner{
		Commands:  make([]Command, 0),
		Responses: make(map[string]MockResponse),
	}
}

// AddResponse sets the response for a program.
func (m *MockRunner) AddResponse(program string, output []byte, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[program] = MockResponse{Output: output, Err: err}
}

func (m *MockRunner) Run(ctx context.Context, c Command) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(c.Argv) == 0 {
		return fmt.Errorf("mock: empty command")
	}
	m.Commands = append(m.Commands, c)

	resp, ok := m.Responses[c.Argv[0]]
	if !ok {
		resp = m.DefaultResponse
	}
	if len(resp.Output) > 0 && c.Stdout != nil {
		if _, err := c.Stdout.Write(resp.Output); err != nil {
			return err
		}
	}
	return resp.Err
}

// LastCommand returns the most recently executed command.
func (m *MockRunner) LastCommand() (Command, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Commands) == 0 {
		return Command{}, false
	}
	return m.Commands[len(m.Commands)-1], true
}

// Reset clears all recorded commands.
func (m *MockRunner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Commands = make([]Command, 0)
}
