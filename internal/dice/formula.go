package dice

import (
	"errors"
	"fmt"
)

// Variables maps roll data paths (without the leading '@') to values,
// e.g. "abilities.str.mod" or "prof".
type Variables map[string]int

var errDivideByZero = errors.New("dice: division by zero")

// EvaluateFormula evaluates a bonus formula such as "1d4", "@abilities.wis.mod+2"
// or "(@prof*2)/3". Dice are drawn from roller; division truncates toward zero.
func EvaluateFormula(roller Roller, formula string, vars Variables) (int, error) {
	tokens, err := tokenize(formula)
	if err != nil {
		return 0, err
	}

	p := &formulaParser{tokens: tokens, roller: roller, vars: vars, source: formula}
	value, err := p.expression()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.tokens) {
		return 0, fmt.Errorf("dice: unexpected trailing input in %q", formula)
	}
	return value, nil
}

// formulaParser implements the grammar
//
//	expression = term { ("+" | "-") term }
//	term       = unary { ("*" | "/") unary }
//	unary      = "-" unary | primary
//	primary    = number | dice | variable | "(" expression ")"
type formulaParser struct {
	tokens []token
	pos    int
	roller Roller
	vars   Variables
	source string
}

func (p *formulaParser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *formulaParser) expression() (int, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokenOperator || (tok.op != '+' && tok.op != '-') {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return 0, err
		}
		if tok.op == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *formulaParser) term() (int, error) {
	left, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokenOperator || (tok.op != '*' && tok.op != '/') {
			return left, nil
		}
		p.pos++
		right, err := p.unary()
		if err != nil {
			return 0, err
		}
		if tok.op == '*' {
			left *= right
			continue
		}
		if right == 0 {
			return 0, errDivideByZero
		}
		left /= right
	}
}

func (p *formulaParser) unary() (int, error) {
	tok, ok := p.peek()
	if ok && tok.kind == tokenOperator && (tok.op == '-' || tok.op == '+') {
		p.pos++
		value, err := p.unary()
		if err != nil {
			return 0, err
		}
		if tok.op == '-' {
			return -value, nil
		}
		return value, nil
	}
	return p.primary()
}

func (p *formulaParser) primary() (int, error) {
	tok, ok := p.peek()
	if !ok {
		return 0, fmt.Errorf("dice: unexpected end of %q", p.source)
	}
	p.pos++

	switch tok.kind {
	case tokenNumber:
		return tok.value, nil
	case tokenDice:
		if p.roller == nil {
			return 0, fmt.Errorf("dice: no roller for %dd%d", tok.count, tok.sides)
		}
		result, err := p.roller.Roll(tok.count, tok.sides, 0)
		if err != nil {
			return 0, err
		}
		return result.RawTotal, nil
	case tokenVariable:
		value, found := p.vars[tok.name]
		if !found {
			return 0, fmt.Errorf("dice: unknown variable @%s", tok.name)
		}
		return value, nil
	case tokenLeftParen:
		value, err := p.expression()
		if err != nil {
			return 0, err
		}
		closing, ok := p.peek()
		if !ok || closing.kind != tokenRightParen {
			return 0, fmt.Errorf("dice: missing ) in %q", p.source)
		}
		p.pos++
		return value, nil
	default:
		return 0, fmt.Errorf("dice: unexpected token in %q", p.source)
	}
}
