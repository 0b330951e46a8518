package llm

import (
	"context"
	"time"
)

// Mock is a canned Generator for tests and offline debugging. It never
// touches the network.
type Mock struct {
	Reply     string
	Fragments []string
	Err       error

	// Delay makes the call block so cancellation paths can be exercised.
	Delay time.Duration

	Calls int
}

func (m *Mock) Generate(ctx context.Context, _ *Request) (*Response, error) {
	m.Calls++

	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.Delay):
		}
	}

	if m.Err != nil {
		return nil, m.Err
	}
	return &Response{Text: m.Reply, Fragments: m.Fragments}, nil
}
