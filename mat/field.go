// SPDX-License-Identifier: MIT

// Package mat: generic field-element arithmetic.
//
// Field is the constraint the generic LU decomposition is written against:
// one algorithmic skeleton serves float64 (through the real decomposition)
// and any exact field (through lu.FieldDecomposition). A field has the four
// arithmetic operations plus additive/multiplicative identities; it has NO
// ordering, which is why the generic LU pivots on "first non-zero" rather
// than "largest magnitude".
//
// Rat is the reference implementation over math/big rationals, giving exact
// arithmetic for tests and for inputs where rounding is unacceptable.
package mat

import "math/big"

// Field constrains a self-referential field-element type T: every operation
// returns a fresh value and never mutates its receiver or argument.
type Field[T any] interface {
	// Add returns receiver + x.
	Add(x T) T
	// Sub returns receiver − x.
	Sub(x T) T
	// Mul returns receiver × x.
	Mul(x T) T
	// Div returns receiver ÷ x. Division by the additive identity is a
	// programmer error; LU's pivoting guarantees it never happens.
	Div(x T) T
	// Neg returns the additive inverse of the receiver.
	Neg() T
	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool
	// Zero returns the additive identity of the field.
	Zero() T
	// One returns the multiplicative identity of the field.
	One() T
}

// Rat is an immutable rational field element backed by math/big.
// The zero value of Rat is the additive identity and is safe to use.
type Rat struct {
	v *big.Rat // nil means exactly zero
}

// NewRat returns the rational num/den. den must be non-zero (programmer
// error otherwise; big.Rat panics, matching the option-constructor policy).
func NewRat(num, den int64) Rat {
	return Rat{v: big.NewRat(num, den)}
}

// rat returns the backing value, substituting a shared zero for nil.
func (r Rat) rat() *big.Rat {
	if r.v == nil {
		return new(big.Rat)
	}

	return r.v
}

// Add returns r + x.
func (r Rat) Add(x Rat) Rat { return Rat{v: new(big.Rat).Add(r.rat(), x.rat())} }

// Sub returns r − x.
func (r Rat) Sub(x Rat) Rat { return Rat{v: new(big.Rat).Sub(r.rat(), x.rat())} }

// Mul returns r × x.
func (r Rat) Mul(x Rat) Rat { return Rat{v: new(big.Rat).Mul(r.rat(), x.rat())} }

// Div returns r ÷ x.
func (r Rat) Div(x Rat) Rat { return Rat{v: new(big.Rat).Quo(r.rat(), x.rat())} }

// Neg returns −r.
func (r Rat) Neg() Rat { return Rat{v: new(big.Rat).Neg(r.rat())} }

// IsZero reports whether r is the additive identity.
func (r Rat) IsZero() bool { return r.v == nil || r.v.Sign() == 0 }

// Zero returns the additive identity.
func (r Rat) Zero() Rat { return Rat{} }

// One returns the multiplicative identity.
func (r Rat) One() Rat { return Rat{v: big.NewRat(1, 1)} }

// Cmp compares r and x, returning -1, 0 or +1. Not part of Field — fields
// are unordered — but handy in tests.
func (r Rat) Cmp(x Rat) int { return r.rat().Cmp(x.rat()) }

// String formats r as num/den.
func (r Rat) String() string { return r.rat().RatString() }
