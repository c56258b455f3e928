package solver

import "github.com/kmarius/dplls/tribool"

// noVar is the sentinel clause.satVar value meaning "no variable has
// satisfied this clause yet". Variables are 1-indexed, so 0 is free.
const noVar = 0

// mark distinguishes a forced assignment (unit propagation, pure-literal
// elimination) from a branching assignment (the heuristic's choice).
type mark uint8

const (
	forced mark = iota
	branching
)

// variable holds all per-variable bookkeeping the solver maintains
// incrementally as clauses are satisfied and shrunk. Fields mirror
// spec §3 exactly; nothing here is recomputed from scratch after parsing.
type variable struct {
	index int // 1-indexed DIMACS variable
	value tribool.Tribool

	posOcc []int // clause indices where this variable appears positively
	negOcc []int // clause indices where this variable appears negatively

	posOccStatic int // len(posOcc), fixed after parsing
	negOccStatic int // len(negOcc), fixed after parsing

	posActive int // occurrences of +v in active clauses
	negActive int // occurrences of -v in active clauses

	posByLen map[int]int // active clause length -> count of active +v occurrences of that length
	negByLen map[int]int

	jwPos float64 // sum of 2^-len(C) over active clauses containing +v
	jwNeg float64

	backtrackCount int // cumulative count of trail-unwinds touching this variable
	heapPos        int // index into the heap's array, 0 if not present
}

func newVariable(index int) *variable {
	return &variable{
		index:    index,
		value:    tribool.Undef,
		posByLen: map[int]int{},
		negByLen: map[int]int{},
	}
}

// occ returns the occurrence list for the literal's polarity: pos when
// positive is true, neg otherwise.
func (v *variable) occ(positive bool) []int {
	if positive {
		return v.posOcc
	}
	return v.negOcc
}

func (v *variable) active(positive bool) int {
	if positive {
		return v.posActive
	}
	return v.negActive
}

func (v *variable) setActive(positive bool, n int) {
	if positive {
		v.posActive = n
	} else {
		v.negActive = n
	}
}

func (v *variable) byLen(positive bool) map[int]int {
	if positive {
		return v.posByLen
	}
	return v.negByLen
}

func (v *variable) jw(positive bool) float64 {
	if positive {
		return v.jwPos
	}
	return v.jwNeg
}

func (v *variable) setJW(positive bool, f float64) {
	if positive {
		v.jwPos = f
	} else {
		v.jwNeg = f
	}
}

// Index implements heuristic.VariableView.
func (v *variable) Index() int { return v.index }

// PosOccStatic implements heuristic.VariableView.
func (v *variable) PosOccStatic() int { return v.posOccStatic }

// NegOccStatic implements heuristic.VariableView.
func (v *variable) NegOccStatic() int { return v.negOccStatic }

// PosActive implements heuristic.VariableView.
func (v *variable) PosActive() int { return v.posActive }

// NegActive implements heuristic.VariableView.
func (v *variable) NegActive() int { return v.negActive }

// BacktrackCount implements heuristic.VariableView.
func (v *variable) BacktrackCount() int { return v.backtrackCount }

// JWPos implements heuristic.VariableView.
func (v *variable) JWPos() float64 { return v.jwPos }

// JWNeg implements heuristic.VariableView.
func (v *variable) JWNeg() float64 { return v.jwNeg }

// PosByLen implements heuristic.VariableView.
func (v *variable) PosByLen(length int) int { return v.posByLen[length] }

// NegByLen implements heuristic.VariableView.
func (v *variable) NegByLen(length int) int { return v.negByLen[length] }
