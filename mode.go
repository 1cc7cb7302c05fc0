package lax

// Mode type represents the division semantics carried by a [Number].
// The zero value is the identity mode, in which dividing by zero returns
// the dividend unchanged.
//
// Mode is implemented as a single flag stored in inverted form, so that
// the useful default does not require explicit construction.
// This design ensures safe concurrency for multiple goroutines accessing
// the same Mode value.
type Mode struct {
	strict bool
}

// IdentityMode returns the default mode, in which dividing by zero
// returns the dividend unchanged.
// It is equivalent to the zero value of Mode.
func IdentityMode() Mode {
	return Mode{}
}

// StrictMode returns a mode in which dividing by zero fails
// with [ErrDivisionByZero].
func StrictMode() Mode {
	return Mode{strict: true}
}

// Div0Identity reports whether dividing by zero returns the dividend
// unchanged under this mode.
func (m Mode) Div0Identity() bool {
	return !m.strict
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the Mode value.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Mode) String() string {
	if m.strict {
		return "strict"
	}
	return "identity"
}
