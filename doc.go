/*
Package lax implements floating-point values with configurable division
semantics.
It wraps an ordinary float64 together with a [Mode] that decides what
happens when the divisor is zero: under the default identity mode the
dividend is returned unchanged, while under strict mode the operation
fails with [ErrDivisionByZero].

# Features

  - Immutable numeric values, ensuring safe usage across multiple goroutines
  - Identity-preserving division by zero, selectable per value
  - Arithmetic with plain Go numbers in either operand position
  - Value-only equality that never fails, even for non-numeric operands
  - Conversion to and from [decimal.Decimal] for exact decimal views

# Representation

The package consists of two main types: Number and Mode.
A Number represents a numeric value and consists of a Mode and a float64
value.
The Mode is a small immutable configuration carried by every Number;
its zero value enables identity-preserving division, so Number{} behaves
like an ordinary zero under the default semantics.

# Operations

Binary operations accept either another Number or any plain Go integer or
float.
A plain operand is coerced using the mode of the Number it is combined
with, and every result carries the mode of the value the method was
invoked on.
The reflected variants (AddFrom, SubFrom, MulFrom, DivFrom) place the
plain operand on the left, which matters for the non-commutative
operations.

# Special values

Arithmetic on NaN and infinities follows IEEE 754 and never fails.
The only arithmetic errors are [ErrDivisionByZero], raised when dividing
by zero under strict mode, and [ErrOperandType], raised when an operand
is neither a plain number nor a Number.

[decimal.Decimal]: https://pkg.go.dev/github.com/govalues/decimal#Decimal
*/
package lax
