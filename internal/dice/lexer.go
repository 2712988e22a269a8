package dice

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenDice
	tokenVariable
	tokenOperator
	tokenLeftParen
	tokenRightParen
)

type token struct {
	kind  tokenKind
	value int    // tokenNumber
	count int    // tokenDice
	sides int    // tokenDice
	name  string // tokenVariable, without the leading '@'
	op    byte   // tokenOperator
}

// tokenize splits a dice formula into tokens. Bracketed flavor annotations
// such as "1d4[fire]" are skipped.
func tokenize(formula string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(formula); {
		c := formula[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '[':
			end := strings.IndexByte(formula[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("dice: unterminated flavor text in %q", formula)
			}
			i += end + 1
		case c == '+' || c == '-' || c == '*' || c == '/':
			tokens = append(tokens, token{kind: tokenOperator, op: c})
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokenLeftParen})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokenRightParen})
			i++
		case c == '@':
			j := i + 1
			for j < len(formula) && isIdent(formula[j]) {
				j++
			}
			if j == i+1 {
				return nil, fmt.Errorf("dice: empty variable name in %q", formula)
			}
			tokens = append(tokens, token{kind: tokenVariable, name: formula[i+1 : j]})
			i = j
		case isDigit(c) || c == 'd' || c == 'D':
			tok, next, err := scanNumberOrDice(formula, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i = next
		default:
			return nil, fmt.Errorf("dice: unexpected %q in %q", c, formula)
		}
	}

	if len(tokens) == 0 {
		return nil, fmt.Errorf("dice: empty expression")
	}
	return tokens, nil
}

func scanNumberOrDice(formula string, start int) (token, int, error) {
	j := start
	for j < len(formula) && isDigit(formula[j]) {
		j++
	}

	if j < len(formula) && (formula[j] == 'd' || formula[j] == 'D') {
		count := 1
		if j > start {
			n, err := strconv.Atoi(formula[start:j])
			if err != nil {
				return token{}, 0, fmt.Errorf("dice: invalid die count in %q: %w", formula, err)
			}
			count = n
		}
		if count < 1 || count > MaxDiceCount {
			return token{}, 0, fmt.Errorf("dice: die count must be 1-%d in %q", MaxDiceCount, formula)
		}

		k := j + 1
		for k < len(formula) && isDigit(formula[k]) {
			k++
		}
		if k == j+1 {
			return token{}, 0, fmt.Errorf("dice: missing die sides in %q", formula)
		}
		sides, err := strconv.Atoi(formula[j+1 : k])
		if err != nil {
			return token{}, 0, fmt.Errorf("dice: invalid die sides in %q: %w", formula, err)
		}
		if sides < 1 || sides > MaxDieSides {
			return token{}, 0, fmt.Errorf("dice: die sides must be 1-%d in %q", MaxDieSides, formula)
		}
		return token{kind: tokenDice, count: count, sides: sides}, k, nil
	}

	n, err := strconv.Atoi(formula[start:j])
	if err != nil {
		return token{}, 0, fmt.Errorf("dice: invalid number in %q: %w", formula, err)
	}
	return token{kind: tokenNumber, value: n}, j, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdent(c byte) bool {
	return isDigit(c) || c == '_' || c == '.' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
