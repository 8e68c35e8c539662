// Package container provides small generic containers.
package container

import "fmt"

// Option holds a value that may be absent. The zero value is absent.
type Option[T any] struct {
	v   T
	set bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{v: v, set: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (opt Option[T]) String() string {
	if !opt.set {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", opt.v)
}

// Get returns the value and whether it is present.
func (opt Option[T]) Get() (T, bool) {
	return opt.v, opt.set
}

// GetOr returns the value if present and alt otherwise.
func (opt Option[T]) GetOr(alt T) T {
	if opt.set {
		return opt.v
	}
	return alt
}

func (opt Option[T]) Set() bool { return opt.set }
