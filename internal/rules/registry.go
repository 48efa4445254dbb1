package rules

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

var (
	// ErrDuplicateRule reports registration under an already-taken OpID.
	// Registrations never overwrite silently; shadowing a builtin rule by
	// accident would corrupt every later differentiation.
	ErrDuplicateRule = errors.New("duplicate rule")

	// ErrFrozenRegistry reports registration after the registry entered
	// its read-only phase.
	ErrFrozenRegistry = errors.New("registry is frozen")

	// ErrUnsupportedOperation reports a lookup of an operation with no
	// registered rule.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// Registry maps operation identifiers to differentiation rules.
//
// A Registry has a two-phase lifecycle: an open phase during which Register
// populates it, then a frozen phase during which only lookups occur. The
// first Lookup (or an explicit Freeze) ends the open phase. Once frozen
// the table never mutates again, so concurrent lookups from any number of
// goroutines are safe.
type Registry struct {
	mu     sync.RWMutex
	rules  map[OpID]Rule
	frozen atomic.Bool
}

// NewRegistry returns an empty, open registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[OpID]Rule)}
}

// Builtin returns an open registry pre-populated with the elementary
// rule set.
func Builtin() *Registry {
	r := NewRegistry()
	if err := RegisterBuiltins(r); err != nil {
		// Unreachable on a fresh registry: the builtin table has no
		// duplicate identifiers.
		panic(err)
	}
	return r
}

// Register adds a rule for op. It fails with ErrDuplicateRule if op is
// already registered and with ErrFrozenRegistry once evaluation has begun;
// in either case the registry is left unchanged.
func (r *Registry) Register(op OpID, arity int, compute Compute) error {
	if op == "" {
		return fmt.Errorf("register: empty operation identifier")
	}
	if arity < 1 {
		return fmt.Errorf("register %q: arity must be at least 1, got %d", op, arity)
	}
	if compute == nil {
		return fmt.Errorf("register %q: nil compute", op)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen.Load() {
		return fmt.Errorf("register %q: %w", op, ErrFrozenRegistry)
	}
	if _, ok := r.rules[op]; ok {
		return fmt.Errorf("register %q: %w", op, ErrDuplicateRule)
	}
	r.rules[op] = Rule{Arity: arity, Compute: compute}
	return nil
}

// Lookup returns the rule for op. The first lookup freezes the registry:
// evaluation has begun, so the registration phase is over.
func (r *Registry) Lookup(op OpID) (Rule, error) {
	if !r.frozen.Load() {
		r.Freeze()
	}

	r.mu.RLock()
	rule, ok := r.rules[op]
	r.mu.RUnlock()
	if !ok {
		return Rule{}, fmt.Errorf("lookup %q: %w", op, ErrUnsupportedOperation)
	}
	return rule, nil
}

// Freeze ends the registration phase. Idempotent.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen.Store(true)
	r.mu.Unlock()
}

// Frozen reports whether the registration phase has ended.
func (r *Registry) Frozen() bool {
	return r.frozen.Load()
}

// Ops returns the registered operation identifiers in sorted order.
func (r *Registry) Ops() []OpID {
	r.mu.RLock()
	ops := make([]OpID, 0, len(r.rules))
	for op := range r.rules {
		ops = append(ops, op)
	}
	r.mu.RUnlock()

	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}
