package planner

import (
	"context"
	"errors"
)

// stubClient is a scripted completion provider for tests.
type stubClient struct {
	resp       string
	err        error
	calls      int
	lastPrompt string
}

func (s *stubClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.resp, nil
}

var errProviderDown = errors.New("provider unavailable")
