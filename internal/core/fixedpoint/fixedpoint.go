// Package fixedpoint implements checked unsigned 128-bit scaled-integer
// arithmetic used for every cost and budget figure.
package fixedpoint

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
)

// MaxDecimals is the largest scale whose power of ten fits in 128 bits.
const MaxDecimals = 38

var (
	// ErrOverflow is returned when an operand, an intermediate product or a
	// result falls outside the unsigned 128-bit range.
	ErrOverflow = errors.New("fixed-point overflow")
	// ErrDivisionByZero is returned by Divide and Quo for a zero divisor.
	ErrDivisionByZero = errors.New("fixed-point division by zero")
)

// Max is the largest representable amount, 2^128 - 1.
var Max = decimal.NewFromBigInt(
	new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)), 0,
)

// maxDigits is the number of decimal digits of Max.
const maxDigits = 39

// Check reports ErrOverflow for negative, fractional or oversized values.
// The exponent is bounded before any comparison, so values such as
// 1e20000000 are rejected without being expanded.
func Check(v decimal.Decimal) error {
	if v.Sign() < 0 {
		return ErrOverflow
	}
	if v.IsZero() {
		return nil
	}
	exp := int64(v.Exponent())
	if exp < -maxDigits || exp > maxDigits || int64(v.NumDigits())+exp > maxDigits {
		return ErrOverflow
	}
	if !v.IsInteger() || v.GreaterThan(Max) {
		return ErrOverflow
	}
	return nil
}

// Pow10 returns 10^decimals.
func Pow10(decimals uint32) (decimal.Decimal, error) {
	if decimals > MaxDecimals {
		return decimal.Decimal{}, ErrOverflow
	}
	return decimal.New(1, int32(decimals)), nil
}

// Multiply computes floor(a * b / 10^decimals).
func Multiply(a, b decimal.Decimal, decimals uint32) (decimal.Decimal, error) {
	product, err := Mul(a, b)
	if err != nil {
		return decimal.Decimal{}, err
	}
	factor, err := Pow10(decimals)
	if err != nil {
		return decimal.Decimal{}, err
	}
	q, _ := product.QuoRem(factor, 0)
	return q, nil
}

// Divide computes floor(a * 10^decimals / b).
func Divide(a, b decimal.Decimal, decimals uint32) (decimal.Decimal, error) {
	if err := checkAll(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	if b.IsZero() {
		return decimal.Decimal{}, ErrDivisionByZero
	}
	scaled, err := Scale(a, decimals)
	if err != nil {
		return decimal.Decimal{}, err
	}
	q, _ := scaled.QuoRem(b, 0)
	return q, nil
}

// Scale computes a * 10^decimals.
func Scale(a decimal.Decimal, decimals uint32) (decimal.Decimal, error) {
	factor, err := Pow10(decimals)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return Mul(a, factor)
}

// Mul is a checked a * b.
func Mul(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := checkAll(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	p := a.Mul(b)
	if err := Check(p); err != nil {
		return decimal.Decimal{}, err
	}
	return p, nil
}

// Add is a checked a + b.
func Add(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := checkAll(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	s := a.Add(b)
	if err := Check(s); err != nil {
		return decimal.Decimal{}, err
	}
	return s, nil
}

// Quo computes floor(a / b).
func Quo(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := checkAll(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	if b.IsZero() {
		return decimal.Decimal{}, ErrDivisionByZero
	}
	q, _ := a.QuoRem(b, 0)
	return q, nil
}

func checkAll(values ...decimal.Decimal) error {
	for _, v := range values {
		if err := Check(v); err != nil {
			return err
		}
	}
	return nil
}
