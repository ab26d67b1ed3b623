// SPDX-License-Identifier: MIT

package mat_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/mat"
)

func TestRat_Arithmetic(t *testing.T) {
	half := mat.NewRat(1, 2)
	third := mat.NewRat(1, 3)

	if got := half.Add(third).String(); got != "5/6" {
		t.Fatalf("1/2 + 1/3: got %s, want 5/6", got)
	}
	if got := half.Sub(third).String(); got != "1/6" {
		t.Fatalf("1/2 - 1/3: got %s, want 1/6", got)
	}
	if got := half.Mul(third).String(); got != "1/6" {
		t.Fatalf("1/2 * 1/3: got %s, want 1/6", got)
	}
	if got := half.Div(third).String(); got != "3/2" {
		t.Fatalf("1/2 / 1/3: got %s, want 3/2", got)
	}
	if got := half.Neg().String(); got != "-1/2" {
		t.Fatalf("-(1/2): got %s, want -1/2", got)
	}
}

func TestRat_ZeroValueIsAdditiveIdentity(t *testing.T) {
	var zero mat.Rat
	if !zero.IsZero() {
		t.Fatal("zero value is not the additive identity")
	}

	half := mat.NewRat(1, 2)
	if got := half.Add(zero); got.Cmp(half) != 0 {
		t.Fatalf("x + 0: got %s, want %s", got, half)
	}
	if !half.Sub(half).IsZero() {
		t.Fatal("x - x is not zero")
	}
	if got := half.Mul(half.One()); got.Cmp(half) != 0 {
		t.Fatalf("x * 1: got %s, want %s", got, half)
	}
	if !half.Mul(zero).IsZero() {
		t.Fatal("x * 0 is not zero")
	}
}

func TestRat_ImmutableOperations(t *testing.T) {
	a := mat.NewRat(2, 3)
	b := mat.NewRat(1, 3)
	_ = a.Add(b)
	_ = a.Neg()

	if a.String() != "2/3" || b.String() != "1/3" {
		t.Fatalf("operands mutated: a=%s b=%s", a, b)
	}
}
