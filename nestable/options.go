package nestable

import (
	"log/slog"
	"slices"

	"github.com/hasbyte1/go-nestable/config"
	"github.com/hasbyte1/go-nestable/reactive"
)

// DefaultName labels lists created without [WithName].
const DefaultName = "nestable"

// DefaultIDKey is the field or map key [List.ByID] reads when no
// [WithIDKey] option is given. Struct fields match case-insensitively,
// so ID, Id and id all qualify.
const DefaultIDKey = "id"

// Op names the list operation reported to [Hooks].
type Op int

const (
	// OpPopulate is the initial push of a list's starting values.
	OpPopulate Op = iota
	// OpExtend is one [List.Extend].
	OpExtend
	// OpReplaceAll is one [List.ReplaceAll].
	OpReplaceAll
	// OpRemove is one successful [Item.Remove].
	OpRemove
	// OpUpdate is one [Item.Update] of a live item.
	OpUpdate
)

func (o Op) String() string {
	switch o {
	case OpPopulate:
		return "populate"
	case OpExtend:
		return "extend"
	case OpReplaceAll:
		return "replace_all"
	case OpRemove:
		return "remove"
	case OpUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// Hooks receives lifecycle events from every list it is attached to.
// Calls happen synchronously inside the operation's transaction.
type Hooks interface {
	// ItemConstructed is called once per constructor invocation.
	ItemConstructed(list string)
	// Mutated is called once per transaction that changed the list.
	Mutated(list string, op Op, added, removed int)
}

type options struct {
	name    string
	idKey   string
	mode    config.Mode
	logger  *slog.Logger
	runtime *reactive.Runtime
	hooks   []Hooks
}

// Option configures a list at construction time.
type Option func(*options)

// WithName sets the label used in logs and metrics.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithIDKey sets the (dot-notation) field path read by [List.ByID].
func WithIDKey(key string) Option {
	return func(o *options) { o.idKey = key }
}

// WithMode overrides the mode read from NESTABLE_ENV.
func WithMode(mode config.Mode) Option {
	return func(o *options) { o.mode = mode }
}

// WithLogger sets the logger. Defaults to [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRuntime binds the list to rt instead of [reactive.Default]. Lists
// that must notify together have to share a runtime, and lists used from
// different goroutines must not: a runtime, the default one included,
// belongs to a single goroutine.
func WithRuntime(rt *reactive.Runtime) Option {
	return func(o *options) { o.runtime = rt }
}

// WithHooks attaches lifecycle hooks, e.g. a metrics recorder.
func WithHooks(hooks ...Hooks) Option {
	return func(o *options) { o.hooks = append(o.hooks, hooks...) }
}

func buildOptions(opts []Option) options {
	o := options{
		name:  DefaultName,
		idKey: DefaultIDKey,
		mode:  config.CurrentMode(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.runtime == nil {
		o.runtime = reactive.Default()
	}
	o.hooks = slices.DeleteFunc(o.hooks, func(h Hooks) bool { return h == nil })
	return o
}
