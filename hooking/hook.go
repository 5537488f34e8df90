// Package hooking lets schedulers and other simulation objects expose
// instrumentation points. A hook attached to an object observes what the
// object does without changing its behavior.
package hooking

// A HookPos identifies one instrumentation point of a hookable object.
// Positions are compared by pointer, so each one is declared once as a
// package-level variable.
type HookPos struct {
	Name string
}

// HookCtx carries everything a hook can see about the site that triggered
// it: the object being observed, the position within that object, and the
// item being processed. Detail is position-specific extra data and may be
// nil.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// A Hook is a piece of code that a hookable object invokes at its
// instrumentation points.
type Hook interface {
	Func(ctx HookCtx)
}

// Hookable is an object that hooks can attach to.
type Hookable interface {
	// AcceptHook attaches a hook. Attaching the same hook twice panics.
	AcceptHook(hook Hook)

	// NumHooks returns the number of attached hooks.
	NumHooks() int

	// Hooks returns the attached hooks in attachment order.
	Hooks() []Hook
}

// HookableBase implements Hookable and is meant to be embedded.
type HookableBase struct {
	hooks []Hook
}

// AcceptHook attaches a hook. Attaching the same hook twice panics.
func (h *HookableBase) AcceptHook(hook Hook) {
	for _, attached := range h.hooks {
		if attached == hook {
			panic("hook is already attached")
		}
	}

	h.hooks = append(h.hooks, hook)
}

// NumHooks returns the number of attached hooks.
func (h *HookableBase) NumHooks() int {
	return len(h.hooks)
}

// Hooks returns the attached hooks in attachment order.
func (h *HookableBase) Hooks() []Hook {
	return h.hooks
}

// InvokeHook calls every attached hook with the given context, in attachment
// order.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hooks {
		hook.Func(ctx)
	}
}
