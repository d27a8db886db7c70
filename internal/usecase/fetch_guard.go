package usecase

import (
	"context"
	"sync"
)

// fetchGuard keeps one sequence number per fetch target. A collaborator
// response is applied only if its token is still the latest for the target;
// a newer Begin or a Cancel discards it and cancels its context.
type fetchGuard struct {
	mu      sync.Mutex
	seq     map[string]uint64
	cancels map[string]context.CancelFunc
}

func newFetchGuard() *fetchGuard {
	return &fetchGuard{
		seq:     map[string]uint64{},
		cancels: map[string]context.CancelFunc{},
	}
}

func (g *fetchGuard) Begin(ctx context.Context, target string) (context.Context, uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cancel, ok := g.cancels[target]; ok {
		cancel()
	}
	g.seq[target]++
	fetchCtx, cancel := context.WithCancel(ctx)
	g.cancels[target] = cancel
	return fetchCtx, g.seq[target]
}

func (g *fetchGuard) Valid(target string, token uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seq[target] == token
}

// Done releases the context of a finished fetch if it is still current.
func (g *fetchGuard) Done(target string, token uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.seq[target] != token {
		return
	}
	if cancel, ok := g.cancels[target]; ok {
		cancel()
		delete(g.cancels, target)
	}
}

func (g *fetchGuard) Cancel(target string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cancelLocked(target)
}

func (g *fetchGuard) CancelAll() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for target := range g.seq {
		g.cancelLocked(target)
	}
}

func (g *fetchGuard) cancelLocked(target string) {
	g.seq[target]++
	if cancel, ok := g.cancels[target]; ok {
		cancel()
		delete(g.cancels, target)
	}
}
