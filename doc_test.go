package lax_test

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
	"github.com/laxnum/lax"
)

// In this example, dividing by zero returns the dividend unchanged,
// since the default mode preserves identity.
func Example_identityDivision() {
	x := lax.New(5)
	q, err := x.Div(0)
	if err != nil {
		panic(err)
	}
	fmt.Println(q.Float64())

	y := lax.New(10)
	q, err = y.Div(2)
	if err != nil {
		panic(err)
	}
	fmt.Println(q.Float64())
	// Output:
	// 5
	// 5
}

// In this example, the strict mode turns division by zero into an error
// that the caller must handle.
func Example_strictDivision() {
	x := lax.NewWithMode(5, lax.StrictMode())
	_, err := x.Div(0)
	fmt.Println(errors.Is(err, lax.ErrDivisionByZero))
	fmt.Println(err)
	// Output:
	// true
	// computing [5 / 0]: division by zero
}

// In this example, the plain operand appears on the left of a
// non-commutative operation, so SubFrom computes 5 - x, not x - 5.
func ExampleNumber_SubFrom() {
	x := lax.New(3)
	r, err := x.SubFrom(5)
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Float64())
	// Output: 2
}

func ExampleNumber_Neg() {
	x := lax.New(4)
	fmt.Println(x.Neg())
	fmt.Println(x.Neg().Neg())
	// Output:
	// -4
	// 4
}

func ExampleNumber_Equal() {
	x := lax.New(5)
	fmt.Println(x.Equal(5))
	fmt.Println(x.Equal(lax.New(5)))
	fmt.Println(x.Equal("5"))
	// Output:
	// true
	// true
	// false
}

func ExampleNumber_Decimal() {
	x := lax.New(5.25)
	d, err := x.Decimal()
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 5.25
}

func ExampleNewFromDecimal() {
	d := decimal.MustParse("10.5")
	x, err := lax.NewFromDecimal(d)
	if err != nil {
		panic(err)
	}
	q, err := x.Div(0)
	if err != nil {
		panic(err)
	}
	fmt.Println(q.Float64())
	// Output: 10.5
}

func ExampleNumber_WithMode() {
	x := lax.New(5).WithMode(lax.StrictMode())
	fmt.Println(x.Mode())
	// Output: strict
}
