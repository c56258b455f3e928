// Package encoding reads the DIMACS CNF format: a free-form stream of
// whitespace-separated tokens, comment lines starting with "c", one problem
// line "p cnf NVARS NCLAUSES", and the clauses themselves as runs of signed
// integers terminated by 0.
package encoding

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ParseError reports a malformed DIMACS input, identifying the line on
// which the offending token was found.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dimacs: line %d: %s", e.Line, e.Msg)
}

// Formula is the result of parsing a DIMACS document: the clauses as signed
// DIMACS literals, the declared variable and clause counts from the problem
// line, and the variables that appear with only one polarity across the
// whole formula (statically pure).
type Formula struct {
	Clauses  [][]int
	NVars    int
	NClauses int
	PureVars []int
}

// Parse reads a DIMACS CNF document from r. Duplicate literals within a
// clause are collapsed and tautological clauses (containing both a literal
// and its negation) are dropped, matching the solver's own formula-store
// semantics so a formula round-trips identically whether deduplication
// happens here or in solver.AddClause.
func Parse(r io.Reader) (*Formula, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	f := &Formula{}
	sawProblem := false
	posSeen := map[int]bool{}
	negSeen := map[int]bool{}

	var cur []int
	curSeen := map[int]bool{}
	tautology := false

	flush := func() {
		if len(cur) == 0 {
			return
		}
		if !tautology {
			clause := make([]int, len(cur))
			copy(clause, cur)
			f.Clauses = append(f.Clauses, clause)
		}
		cur = nil
		curSeen = map[int]bool{}
		tautology = false
	}

	line := 0
	for sc.Scan() {
		line++
		fields := splitFields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "c":
			continue
		case "p":
			if sawProblem {
				return nil, &ParseError{Line: line, Msg: "duplicate problem line"}
			}
			nvars, nclauses, err := parseProblemLine(fields, line)
			if err != nil {
				return nil, err
			}
			f.NVars, f.NClauses = nvars, nclauses
			sawProblem = true
			continue
		}

		if !sawProblem {
			return nil, &ParseError{Line: line, Msg: "clause literal before problem line"}
		}

		for _, tok := range fields {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &ParseError{Line: line, Msg: fmt.Sprintf("invalid token %q", tok)}
			}

			if n == 0 {
				flush()
				continue
			}

			v := n
			if v < 0 {
				v = -v
			}
			if v > f.NVars {
				return nil, &ParseError{Line: line, Msg: fmt.Sprintf("variable %d exceeds declared count %d", v, f.NVars)}
			}

			if curSeen[-n] {
				tautology = true
			} else if !curSeen[n] {
				curSeen[n] = true
				cur = append(cur, n)
			}

			if n > 0 {
				posSeen[v] = true
			} else {
				negSeen[v] = true
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()

	if !sawProblem {
		return nil, &ParseError{Line: line, Msg: "missing problem line"}
	}

	for v := 1; v <= f.NVars; v++ {
		if posSeen[v] != negSeen[v] {
			f.PureVars = append(f.PureVars, v)
		}
	}

	return f, nil
}

func parseProblemLine(fields []string, line int) (nvars, nclauses int, err error) {
	if len(fields) != 4 || fields[1] != "cnf" {
		return 0, 0, &ParseError{Line: line, Msg: `malformed problem line, expected "p cnf NVARS NCLAUSES"`}
	}
	nvars, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, &ParseError{Line: line, Msg: "malformed variable count in problem line"}
	}
	nclauses, err = strconv.Atoi(fields[3])
	if err != nil {
		return 0, 0, &ParseError{Line: line, Msg: "malformed clause count in problem line"}
	}
	return nvars, nclauses, nil
}

func splitFields(line string) []string {
	var out []string
	start := -1
	for i, r := range line {
		if r == ' ' || r == '\t' || r == '\r' {
			if start >= 0 {
				out = append(out, line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, line[start:])
	}
	return out
}
