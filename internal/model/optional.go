package model

// Optional holds a value that may be absent
type Optional[T comparable] struct {
	value T
	valid bool
}

// Some wraps a present value
func Some[T comparable](value T) Optional[T] {
	return Optional[T]{value: value, valid: true}
}

// None returns an absent value
func None[T comparable]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.valid
}

// IsPresent returns true if a value is held
func (o Optional[T]) IsPresent() bool {
	return o.valid
}

// OrElse returns the held value, or fallback when absent
func (o Optional[T]) OrElse(fallback T) T {
	if !o.valid {
		return fallback
	}
	return o.value
}
