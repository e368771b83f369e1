package areatab

import (
	"sync"

	"github.com/areatab/areatab/pkg/diag"
	"github.com/areatab/areatab/pkg/reconcile"
)

// Hook function types for reconciliation events
type (
	// ChangeAppliedHook is called for every change instruction a
	// reconciliation run emits
	ChangeAppliedHook func(change reconcile.ChangeInstruction)

	// TableUnmatchedHook is called when an imported handle has no
	// counterpart in the record set
	TableUnmatchedHook func(handle string)

	// DiagnosticHook is called for every diagnostic a run accumulates
	DiagnosticHook func(d diag.Diagnostic)
)

// Compile-time interface check to ensure proper implementation.
var _ Hooks = (*client)(nil)

// Hooks provides access to event callback registration.
type Hooks interface {
	// OnChangeApplied registers a callback for emitted change instructions
	OnChangeApplied(ChangeAppliedHook)

	// OnTableUnmatched registers a callback for unmatched imported handles
	OnTableUnmatched(TableUnmatchedHook)

	// OnDiagnostic registers a callback for accumulated diagnostics
	OnDiagnostic(DiagnosticHook)
}

// hooks manages event callbacks for reconciliation outcomes.
type hooks struct {
	mu               sync.RWMutex
	onChangeApplied  []ChangeAppliedHook
	onTableUnmatched []TableUnmatchedHook
	onDiagnostic     []DiagnosticHook
}

// newHooks creates a new hooks instance.
func newHooks() *hooks {
	return &hooks{}
}

// OnChangeApplied registers a callback for emitted change instructions.
func (c *client) OnChangeApplied(fn ChangeAppliedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onChangeApplied = append(c.hooks.onChangeApplied, fn)
}

// OnTableUnmatched registers a callback for unmatched imported handles.
func (c *client) OnTableUnmatched(fn TableUnmatchedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onTableUnmatched = append(c.hooks.onTableUnmatched, fn)
}

// OnDiagnostic registers a callback for accumulated diagnostics.
func (c *client) OnDiagnostic(fn DiagnosticHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onDiagnostic = append(c.hooks.onDiagnostic, fn)
}

// triggerResult fans a reconciliation result out to the registered
// callbacks. Diagnostics fire the generic hook always and the
// unmatched-table hook additionally for unmatched handles.
func (h *hooks) triggerResult(result *reconcile.Result) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, change := range result.Changes {
		for _, hook := range h.onChangeApplied {
			hook(change)
		}
	}

	for _, d := range result.Diagnostics {
		for _, hook := range h.onDiagnostic {
			hook(d)
		}
		if d.Kind == diag.KindUnmatchedHandle {
			for _, hook := range h.onTableUnmatched {
				hook(d.Handle)
			}
		}
	}
}
