package sat

import "fmt"

// Lit is a literal encoded in the dense space 1..2n: values 1..n are the
// positive polarity of the corresponding variable, values n+1..2n the
// negative polarity of variable l-n. The encoding depends on the number of
// variables n, so all conversions take it as a parameter.
type Lit int

// Encode converts a signed DIMACS literal (k or -k with 1 <= k <= n) to the
// dense encoding.
func Encode(signed int, n int) Lit {
	if signed < 0 {
		return Lit(-signed + n)
	}
	return Lit(signed)
}

// Opposite returns the literal with flipped polarity. It wraps at 2n so that
// Opposite is an involution: l.Opposite(n).Opposite(n) == l.
func (l Lit) Opposite(n int) Lit {
	if int(l) > n {
		return l - Lit(n)
	}
	return l + Lit(n)
}

// Var returns the literal's variable in 1..n.
func (l Lit) Var(n int) int {
	if int(l) > n {
		return int(l) - n
	}
	return int(l)
}

// IsPositive returns true if and only if the literal represents the value of
// its boolean variable (i.e. not its negation).
func (l Lit) IsPositive(n int) bool {
	return int(l) <= n
}

// Signed converts the literal back to its signed DIMACS form.
func (l Lit) Signed(n int) int {
	if int(l) > n {
		return -(int(l) - n)
	}
	return int(l)
}

func (l Lit) String() string {
	return fmt.Sprintf("%d", int(l))
}
