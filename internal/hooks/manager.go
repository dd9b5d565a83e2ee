package hooks

import (
	"context"
	"fmt"
	"sync"

	"github.com/wexinc/profilecard/internal/config"
)

// Manager runs the hooks registered for each activation. Activations come
// from the UI loop, so Dispatch runs hooks in the background and Wait
// collects them on shutdown.
type Manager struct {
	hooks map[Event][]Hook
	// Logger is called for each hook execution (optional).
	Logger func(event Event, hook Hook, result *HookResult)

	wg sync.WaitGroup
}

// NewManager creates a new hook manager with the given hooks.
// Hooks for events the view never fires are dropped.
func NewManager(hooks ...Hook) *Manager {
	m := &Manager{hooks: make(map[Event][]Hook)}
	for _, h := range hooks {
		if !h.Event().IsValid() {
			continue
		}
		m.hooks[h.Event()] = append(m.hooks[h.Event()], h)
	}
	return m
}

// NewManagerFromConfig creates a Manager from configuration.
func NewManagerFromConfig(cfg config.HooksConfig) (*Manager, error) {
	hooks, err := CreateHooksFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating hooks from config: %w", err)
	}
	return NewManager(hooks...), nil
}

// Hooks returns the hooks registered for event.
func (m *Manager) Hooks(event Event) []Hook {
	return m.hooks[event]
}

// Has returns true if any hook handles event.
func (m *Manager) Has(event Event) bool {
	return len(m.hooks[event]) > 0
}

// Execute runs the hooks for hookCtx.Event in order and returns their
// results. A hook that cannot start is recorded as a failed result; the
// remaining hooks still run unless ctx is done.
func (m *Manager) Execute(ctx context.Context, hookCtx *HookContext) []*HookResult {
	hooks := m.hooks[hookCtx.Event]
	results := make([]*HookResult, 0, len(hooks))

	for _, hook := range hooks {
		if ctx.Err() != nil {
			break
		}

		result, err := hook.Execute(ctx, hookCtx)
		if err != nil {
			result = &HookResult{
				Success:  false,
				Error:    fmt.Sprintf("execution error: %v", err),
				ExitCode: 1,
			}
		}
		results = append(results, result)

		if m.Logger != nil {
			m.Logger(hookCtx.Event, hook, result)
		}
	}

	return results
}

// Dispatch runs the hooks for hookCtx.Event in a background goroutine.
// It does nothing when no hook handles the event.
func (m *Manager) Dispatch(ctx context.Context, hookCtx HookContext) {
	if !m.Has(hookCtx.Event) {
		return
	}
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.Execute(ctx, &hookCtx)
	}()
}

// Wait blocks until every dispatched hook has finished.
func (m *Manager) Wait() {
	m.wg.Wait()
}
