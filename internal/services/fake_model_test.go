package services

import (
	"context"
	"sync"
)

// fakeModel replays queued completions in order; once the queue is drained
// it keeps returning the last one.
type fakeModel struct {
	mu        sync.Mutex
	responses []string
	err       error
	prompts   []string
}

func newFakeModel(responses ...string) *fakeModel {
	return &fakeModel{responses: responses}
}

func (f *fakeModel) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", nil
	}

	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

func (f *fakeModel) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}
