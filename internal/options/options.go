// Package options implements the generic functional-option plumbing shared
// by the configurable entry points of this module.
//
// A package exposing options aliases Option for its own type and builds
// concrete options with New or NoError:
//
//	type DecoderOption = options.Option[*Decoder]
//
//	func WithAllowPartial() DecoderOption {
//	    return options.NoError(func(d *Decoder) { d.allowPartial = true })
//	}
package options

// Option configures a value of type T. Implementations are created with
// New or NoError; the apply method is unexported so all options funnel
// through this package.
type Option[T any] interface {
	apply(T) error
}

type optionFunc[T any] struct {
	fn func(T) error
}

func (o optionFunc[T]) apply(target T) error {
	return o.fn(target)
}

// New wraps a fallible configuration function as an Option.
func New[T any](fn func(T) error) Option[T] {
	return optionFunc[T]{fn: fn}
}

// NoError wraps an infallible configuration function as an Option.
func NoError[T any](fn func(T)) Option[T] {
	return optionFunc[T]{fn: func(target T) error {
		fn(target)

		return nil
	}}
}

// Apply runs opts against target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
