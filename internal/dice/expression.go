package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is one NdM group of an expression. A negative Count subtracts the group.
type Term struct {
	Count int
	Sides int
}

// Expression is a damage expression: a sum of dice terms plus a flat modifier.
type Expression struct {
	Terms []Term
	Flat  int
}

// ParseExpression parses standard notation such as "1d8", "2d6+1" or
// "1d10+1d6-1". Multiplication, division, parentheses and variables are not
// part of damage notation; use EvaluateFormula for bonus formulas.
func ParseExpression(s string) (Expression, error) {
	tokens, err := tokenize(s)
	if err != nil {
		return Expression{}, err
	}

	var expr Expression
	sign := 1
	expectOperand := true
	for _, tok := range tokens {
		if expectOperand {
			switch tok.kind {
			case tokenOperator:
				if tok.op != '-' && tok.op != '+' {
					return Expression{}, fmt.Errorf("dice: unexpected %q in %q", tok.op, s)
				}
				if tok.op == '-' {
					sign = -sign
				}
				continue
			case tokenDice:
				expr.Terms = append(expr.Terms, Term{Count: sign * tok.count, Sides: tok.sides})
			case tokenNumber:
				expr.Flat += sign * tok.value
			default:
				return Expression{}, fmt.Errorf("dice: unsupported token in damage expression %q", s)
			}
			expectOperand = false
			continue
		}

		if tok.kind != tokenOperator || (tok.op != '+' && tok.op != '-') {
			return Expression{}, fmt.Errorf("dice: expected + or - in %q", s)
		}
		sign = 1
		if tok.op == '-' {
			sign = -1
		}
		expectOperand = true
	}

	if expectOperand {
		return Expression{}, fmt.Errorf("dice: expression %q ends with an operator", s)
	}
	return expr, nil
}

// MustParseExpression parses s and panics on error. Useful for fixed tables.
func MustParseExpression(s string) Expression {
	expr, err := ParseExpression(s)
	if err != nil {
		panic("dice: MustParseExpression failed for " + s + ": " + err.Error())
	}
	return expr
}

// DoubleDice returns a copy with every dice term's count doubled. The flat
// modifier is left alone, which is the critical hit rule.
func (e Expression) DoubleDice() Expression {
	doubled := Expression{
		Terms: make([]Term, len(e.Terms)),
		Flat:  e.Flat,
	}
	for i, term := range e.Terms {
		doubled.Terms[i] = Term{Count: term.Count * 2, Sides: term.Sides}
	}
	return doubled
}

// String renders the expression in canonical notation, e.g. "2d10+4d8-1".
func (e Expression) String() string {
	var b strings.Builder
	for i, term := range e.Terms {
		count := term.Count
		switch {
		case count < 0:
			b.WriteByte('-')
			count = -count
		case i > 0:
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(count))
		b.WriteByte('d')
		b.WriteString(strconv.Itoa(term.Sides))
	}

	switch {
	case e.Flat > 0 && len(e.Terms) > 0:
		b.WriteString("+" + strconv.Itoa(e.Flat))
	case e.Flat != 0 || len(e.Terms) == 0:
		b.WriteString(strconv.Itoa(e.Flat))
	}
	return b.String()
}

// TermResult holds the draws for one term of an expression.
type TermResult struct {
	Term     Term
	Rolls    []int
	Subtotal int // signed sum of Rolls
}

// ExpressionResult is the audit trail of rolling an Expression.
type ExpressionResult struct {
	Expression Expression
	Terms      []TermResult
	DiceTotal  int
	Flat       int
	Total      int
}

// Rolls flattens every die drawn, term by term.
func (r *ExpressionResult) Rolls() []int {
	var out []int
	for _, term := range r.Terms {
		out = append(out, term.Rolls...)
	}
	return out
}

// RollExpression draws every term independently with roller and sums them with
// the flat modifier.
func RollExpression(roller Roller, expr Expression) (*ExpressionResult, error) {
	result := &ExpressionResult{
		Expression: expr,
		Terms:      make([]TermResult, 0, len(expr.Terms)),
		Flat:       expr.Flat,
	}

	for _, term := range expr.Terms {
		count := term.Count
		sign := 1
		if count < 0 {
			count = -count
			sign = -1
		}

		rolled, err := roller.Roll(count, term.Sides, 0)
		if err != nil {
			return nil, fmt.Errorf("rolling %dd%d: %w", count, term.Sides, err)
		}

		subtotal := sign * rolled.RawTotal
		result.Terms = append(result.Terms, TermResult{
			Term:     term,
			Rolls:    rolled.Rolls,
			Subtotal: subtotal,
		})
		result.DiceTotal += subtotal
	}

	result.Total = result.DiceTotal + result.Flat
	return result, nil
}
