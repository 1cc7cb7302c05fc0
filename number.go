package lax

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

var (
	// ErrDivisionByZero is returned when dividing by a zero-valued operand
	// and the dividend's mode does not preserve identity.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOperandType is returned when an arithmetic operand is neither
	// a plain Go number nor a [Number].
	ErrOperandType = errors.New("unsupported operand type")
)

// Number type represents a numeric value with configurable division semantics.
// Its zero value corresponds to 0 under the identity mode.
// Number is designed to be safe for concurrent use by multiple goroutines.
type Number struct {
	mode  Mode    // division semantics
	value float64 // numeric value
}

// New returns a number with the given value and the default identity mode.
// See also constructor [NewWithMode].
func New(value float64) Number {
	return Number{value: value}
}

// NewWithMode returns a number with the given value and mode.
// See also constructor [New] and method [Number.WithMode].
func NewWithMode(value float64, m Mode) Number {
	return Number{value: value, mode: m}
}

// NewFromDecimal converts a decimal to a (possibly rounded) number with
// the default identity mode.
// This conversion may lose data, as float64 has a smaller precision than
// the decimal type.
// See also method [Number.Decimal].
//
// NewFromDecimal returns an error if the decimal cannot be represented
// as a float64.
func NewFromDecimal(d decimal.Decimal) (Number, error) {
	f, ok := d.Float64()
	if !ok {
		return Number{}, fmt.Errorf("converting decimal %v: out of float64 range", d)
	}
	return New(f), nil
}

// toNumber coerces an operand into a number carrying mode m.
// A plain operand never keeps a default mode of its own; it always borrows
// the mode of the typed operand it is being combined with.
func toNumber(v any, m Mode) (Number, error) {
	switch v := v.(type) {
	case Number:
		return Number{value: v.value, mode: m}, nil
	case float64:
		return Number{value: v, mode: m}, nil
	case float32:
		return Number{value: float64(v), mode: m}, nil
	case int:
		return Number{value: float64(v), mode: m}, nil
	case int8:
		return Number{value: float64(v), mode: m}, nil
	case int16:
		return Number{value: float64(v), mode: m}, nil
	case int32:
		return Number{value: float64(v), mode: m}, nil
	case int64:
		return Number{value: float64(v), mode: m}, nil
	case uint:
		return Number{value: float64(v), mode: m}, nil
	case uint8:
		return Number{value: float64(v), mode: m}, nil
	case uint16:
		return Number{value: float64(v), mode: m}, nil
	case uint32:
		return Number{value: float64(v), mode: m}, nil
	case uint64:
		return Number{value: float64(v), mode: m}, nil
	default:
		return Number{}, fmt.Errorf("coercing %T: %w", v, ErrOperandType)
	}
}

// Float64 returns the underlying float64 value, discarding the mode.
// See also constructor [New].
func (a Number) Float64() float64 {
	return a.value
}

// Mode returns the division semantics of the number.
func (a Number) Mode() Mode {
	return a.mode
}

// WithMode returns a number with the same value and the given mode.
func (a Number) WithMode(m Mode) Number {
	return Number{value: a.value, mode: m}
}

// Decimal returns the decimal representation of the number.
// See also constructor [NewFromDecimal].
//
// Decimal returns an error if:
//   - the value is a special value (NaN or Inf);
//   - the integer part of the value has more than [decimal.MaxPrec] digits.
func (a Number) Decimal() (decimal.Decimal, error) {
	if math.IsNaN(a.value) || math.IsInf(a.value, 0) {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: special value", a)
	}
	s := strconv.FormatFloat(a.value, 'f', -1, 64)
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", a, err)
	}
	return d, nil
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
//
// Sign returns 0 if the value is NaN.
func (a Number) Sign() int {
	switch {
	case a.value < 0:
		return -1
	case a.value > 0:
		return 1
	}
	return 0
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Number) IsNeg() bool {
	return a.value < 0
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Number) IsPos() bool {
	return a.value > 0
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
//
// The comparison is exact, so negative zero counts as zero.
func (a Number) IsZero() bool {
	return a.value == 0
}

// IsNaN reports whether the value is an IEEE 754 "not-a-number".
func (a Number) IsNaN() bool {
	return math.IsNaN(a.value)
}

// IsInf reports whether the value is an infinity of either sign.
func (a Number) IsInf() bool {
	return math.IsInf(a.value, 0)
}

// Abs returns the absolute value of the number.
func (a Number) Abs() Number {
	return Number{value: math.Abs(a.value), mode: a.mode}
}

// Neg returns a number with the opposite sign.
// The mode is unchanged.
func (a Number) Neg() Number {
	return Number{value: -a.value, mode: a.mode}
}

// CopySign returns a number with the same sign as number b.
// The mode of number b is ignored.
func (a Number) CopySign(b Number) Number {
	return Number{value: math.Copysign(a.value, b.value), mode: a.mode}
}

// Add returns the sum of number a and operand v, which may be a Number or
// any plain Go integer or float.
// The result carries the mode of number a.
//
// Add returns an error if the operand is not a supported numeric type.
func (a Number) Add(v any) (Number, error) {
	b, err := toNumber(v, a.mode)
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v + %v]: %w", a, v, err)
	}
	return Number{value: a.value + b.value, mode: a.mode}, nil
}

// Sub returns the difference between number a and operand v, which may be
// a Number or any plain Go integer or float.
// The result carries the mode of number a.
//
// Sub returns an error if the operand is not a supported numeric type.
func (a Number) Sub(v any) (Number, error) {
	b, err := toNumber(v, a.mode)
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v - %v]: %w", a, v, err)
	}
	return Number{value: a.value - b.value, mode: a.mode}, nil
}

// Mul returns the product of number a and operand v, which may be a Number
// or any plain Go integer or float.
// The result carries the mode of number a.
//
// Mul returns an error if the operand is not a supported numeric type.
func (a Number) Mul(v any) (Number, error) {
	b, err := toNumber(v, a.mode)
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v * %v]: %w", a, v, err)
	}
	return Number{value: a.value * b.value, mode: a.mode}, nil
}

// Div returns the quotient of number a and operand v, which may be a Number
// or any plain Go integer or float.
// The result carries the mode of number a.
//
// If the divisor is zero (negative zero included, compared exactly) and the
// mode of number a preserves identity, Div returns number a unchanged.
//
// Div returns an error if:
//   - the operand is not a supported numeric type;
//   - the divisor is zero and the mode of number a is strict.
func (a Number) Div(v any) (Number, error) {
	b, err := toNumber(v, a.mode)
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v / %v]: %w", a, v, err)
	}
	if b.value == 0 {
		if a.mode.Div0Identity() {
			return a, nil
		}
		return Number{}, fmt.Errorf("computing [%v / %v]: %w", a, v, ErrDivisionByZero)
	}
	return Number{value: a.value / b.value, mode: a.mode}, nil
}

// AddFrom returns the sum of operand v and number a, with the operand in
// the left position.
// The operand is first coerced using the mode of number a, and then the
// usual left-to-right addition is applied.
// See also method [Number.Add].
//
// AddFrom returns an error if the operand is not a supported numeric type.
func (a Number) AddFrom(v any) (Number, error) {
	b, err := toNumber(v, a.mode)
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v + %v]: %w", v, a, err)
	}
	return b.Add(a)
}

// SubFrom returns the difference between operand v and number a, with the
// operand in the left position, so x.SubFrom(5) computes 5 - x.
// The operand is first coerced using the mode of number a, and then the
// usual left-to-right subtraction is applied; the operation is never
// rewritten as a negated a - v.
// See also method [Number.Sub].
//
// SubFrom returns an error if the operand is not a supported numeric type.
func (a Number) SubFrom(v any) (Number, error) {
	b, err := toNumber(v, a.mode)
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v - %v]: %w", v, a, err)
	}
	return b.Sub(a)
}

// MulFrom returns the product of operand v and number a, with the operand
// in the left position.
// The operand is first coerced using the mode of number a, and then the
// usual left-to-right multiplication is applied.
// See also method [Number.Mul].
//
// MulFrom returns an error if the operand is not a supported numeric type.
func (a Number) MulFrom(v any) (Number, error) {
	b, err := toNumber(v, a.mode)
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v * %v]: %w", v, a, err)
	}
	return b.Mul(a)
}

// DivFrom returns the quotient of operand v and number a, with the operand
// in the left position, so x.DivFrom(10) computes 10 / x.
// The operand is first coerced using the mode of number a, and then the
// usual left-to-right division is applied, including the zero-divisor rule
// of [Number.Div] with the coerced operand as the dividend.
//
// DivFrom returns an error if:
//   - the operand is not a supported numeric type;
//   - number a is zero and its mode is strict.
func (a Number) DivFrom(v any) (Number, error) {
	b, err := toNumber(v, a.mode)
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v / %v]: %w", v, a, err)
	}
	return b.Div(a)
}

// Equal reports whether number a and operand v have equal values.
// The mode is excluded from the comparison, and a plain numeric operand
// is compared after conversion to float64.
// Equal never fails: it returns false for any unsupported operand type.
// NaN compares unequal to everything, including itself, per IEEE 754.
func (a Number) Equal(v any) bool {
	b, err := toNumber(v, a.mode)
	if err != nil {
		return false
	}
	return a.value == b.value
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a number.
// The mode is not rendered.
// See also method [Number.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Number) String() string {
	return strconv.FormatFloat(a.value, 'g', -1, 64)
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example | Description               |
//	| ------ | ------- | ------------------------- |
//	| %s, %v | 5.25    | Number                    |
//	| %q     | "5.25"  | Quoted number             |
//	| %f     | 5.250   | Fixed-point notation      |
//	| %e     | 5.25e0  | Scientific notation       |
//
// The '-' format flag can be used with all verbs.
// Precision is supported for the %f and %e verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Number) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 'f', 'F':
		prec := -1
		if p, ok := state.Precision(); ok {
			prec = p
		}
		text = strconv.FormatFloat(a.value, 'f', prec, 64)
	case 'e', 'E':
		prec := -1
		if p, ok := state.Precision(); ok {
			prec = p
		}
		text = strconv.FormatFloat(a.value, byte(verb), prec, 64)
	case 's', 'S', 'v', 'V':
		text = a.String()
	case 'q', 'Q':
		text = strconv.Quote(a.String())
	default:
		//nolint:errcheck
		state.Write([]byte("%!"))
		//nolint:errcheck
		state.Write([]byte{byte(verb)})
		//nolint:errcheck
		state.Write([]byte("(lax.Number=" + a.String() + ")"))
		return
	}

	// Calculating padding
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > len(text) {
		if state.Flag('-') {
			tspaces = w - len(text)
		} else {
			lspaces = w - len(text)
		}
	}

	buf := make([]byte, 0, lspaces+len(text)+tspaces)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	buf = append(buf, text...)
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	//nolint:errcheck
	state.Write(buf)
}
