package lit

import "fmt"

// Undef is returned where no literal is available.
const Undef = Lit(0)

// Lit is a literal: a 1-indexed DIMACS variable with a sign. Positive values
// denote a positive literal, negative values a negated one. dplls has no
// watched-literal data structure that needs L and ~L bit-adjacent, so a Lit
// is just the signed DIMACS integer it was parsed from.
type Lit int

// New returns a literal for variable v (1-indexed) with the given sign.
func New(v int, neg bool) Lit {
	if neg {
		return Lit(-v)
	}
	return Lit(v)
}

// NewFromInt returns the literal for a signed DIMACS integer.
func NewFromInt(i int) Lit {
	return Lit(i)
}

// Not negates a literal.
func (l Lit) Not() Lit {
	return -l
}

// Sign returns true if the literal is negative.
func (l Lit) Sign() bool {
	return l < 0
}

// Var returns the literal's 1-indexed variable.
func (l Lit) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Int returns the literal as a signed DIMACS integer.
func (l Lit) Int() int {
	return int(l)
}

// String implements the Stringer interface.
func (l Lit) String() string {
	if l.Sign() {
		return fmt.Sprintf("-%d", l.Var())
	}
	return fmt.Sprintf("%d", l.Var())
}
