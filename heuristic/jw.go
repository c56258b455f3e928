package heuristic

// jwHeuristic is the Jeroslow-Wang heuristic: rank by the larger of a
// variable's two Jeroslow-Wang sums, ∑ 2^-len(C) over active clauses
// containing that literal.
type jwHeuristic struct{}

func (jwHeuristic) Name() string { return JW }

func (jwHeuristic) Greater(a, b VariableView, ctx Context) bool {
	return maxf(a.JWPos(), a.JWNeg()) > maxf(b.JWPos(), b.JWNeg())
}

func (jwHeuristic) PickPolarity(v VariableView) bool {
	return v.JWPos() > v.JWNeg()
}
