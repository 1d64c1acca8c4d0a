// Package parser turns infix polynomial expressions such as
// "2*x^3 - (x+1)*(x-1)" into poly.Polynomial values. It runs a
// conventional three-stage pipeline: a scanner producing tokens, a
// shunting-yard pass producing reverse Polish order, and an RPN evaluator
// over polynomial values.
//
// Supported syntax: decimal numbers, a single variable letter (whichever
// letter appears first; mixing letters is an error), the operators
// + - * / ^, unary sign, and parentheses. Exponents must be non-negative
// integer constants, and division is only defined by non-zero constants.
package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode"

	"github.com/cwbudde/algo-poly/poly"
)

// Errors returned by Parse.
var (
	ErrEmptyExpression       = errors.New("parser: empty expression")
	ErrUnexpectedEnd         = errors.New("parser: unexpected end of expression")
	ErrInvalidToken          = errors.New("parser: invalid token")
	ErrInvalidNumber         = errors.New("parser: invalid number")
	ErrInvalidVariable       = errors.New("parser: invalid variable")
	ErrInvalidExponent       = errors.New("parser: exponent must be a non-negative integer constant")
	ErrDivisionByZero        = errors.New("parser: division by zero")
	ErrNonConstantDivisor    = errors.New("parser: division by a non-constant polynomial")
	ErrOperandExpected       = errors.New("parser: operand expected")
	ErrUnbalancedParentheses = errors.New("parser: unbalanced parentheses")
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokVariable
	tokOperator
	tokOpenParen
	tokCloseParen
)

type operator int

const (
	opPlus operator = iota
	opMinus
	opMultiply
	opDivide
	opPower
	opUnaryPlus
	opUnaryMinus
)

type token struct {
	kind tokenKind
	num  float64
	op   operator
	pos  int
}

// Parse evaluates the infix expression into a polynomial.
func Parse(expr string) (poly.Polynomial[float64], error) {
	tokens, err := scan(expr)
	if err != nil {
		return poly.Zero[float64](), err
	}
	if len(tokens) == 0 {
		return poly.Zero[float64](), ErrEmptyExpression
	}

	rpn, err := shuntingYard(tokens)
	if err != nil {
		return poly.Zero[float64](), err
	}

	return evalRPN(rpn)
}

// scan tokenizes the expression, classifying +/- as unary when they
// follow nothing, another operator, or an opening parenthesis.
func scan(expr string) ([]token, error) {
	var tokens []token
	variable := rune(0)

	runes := []rune(expr)
	for i := 0; i < len(runes); {
		r := runes[i]

		switch {
		case unicode.IsSpace(r):
			i++

		case unicode.IsDigit(r) || r == '.':
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			v, err := strconv.ParseFloat(string(runes[start:i]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at %d", ErrInvalidNumber, string(runes[start:i]), start)
			}
			tokens = append(tokens, token{kind: tokNumber, num: v, pos: start})

		case unicode.IsLetter(r):
			if variable == 0 {
				variable = r
			} else if r != variable {
				return nil, fmt.Errorf("%w: %q at %d, expected %q", ErrInvalidVariable, r, i, variable)
			}
			tokens = append(tokens, token{kind: tokVariable, pos: i})
			i++

		case r == '(':
			tokens = append(tokens, token{kind: tokOpenParen, pos: i})
			i++

		case r == ')':
			tokens = append(tokens, token{kind: tokCloseParen, pos: i})
			i++

		case r == '+' || r == '-' || r == '*' || r == '/' || r == '^':
			op, err := classifyOperator(r, tokens)
			if err != nil {
				return nil, fmt.Errorf("%w at %d", err, i)
			}
			tokens = append(tokens, token{kind: tokOperator, op: op, pos: i})
			i++

		default:
			return nil, fmt.Errorf("%w: %q at %d", ErrInvalidToken, r, i)
		}
	}

	return tokens, nil
}

func classifyOperator(r rune, prev []token) (operator, error) {
	unaryPosition := len(prev) == 0 ||
		prev[len(prev)-1].kind == tokOperator ||
		prev[len(prev)-1].kind == tokOpenParen

	switch r {
	case '+':
		if unaryPosition {
			return opUnaryPlus, nil
		}
		return opPlus, nil
	case '-':
		if unaryPosition {
			return opUnaryMinus, nil
		}
		return opMinus, nil
	case '*':
		if unaryPosition {
			return 0, ErrOperandExpected
		}
		return opMultiply, nil
	case '/':
		if unaryPosition {
			return 0, ErrOperandExpected
		}
		return opDivide, nil
	default: // '^'
		if unaryPosition {
			return 0, ErrOperandExpected
		}
		return opPower, nil
	}
}

func precedence(op operator) int {
	switch op {
	case opPlus, opMinus:
		return 1
	case opMultiply, opDivide:
		return 2
	case opUnaryPlus, opUnaryMinus:
		return 3
	default: // opPower
		return 4
	}
}

func rightAssociative(op operator) bool {
	return op == opPower || op == opUnaryPlus || op == opUnaryMinus
}

// shuntingYard reorders the token stream into reverse Polish order.
func shuntingYard(tokens []token) ([]token, error) {
	var output, stack []token

	for _, t := range tokens {
		switch t.kind {
		case tokNumber, tokVariable:
			output = append(output, t)

		case tokOperator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind != tokOperator {
					break
				}
				if precedence(top.op) > precedence(t.op) ||
					(precedence(top.op) == precedence(t.op) && !rightAssociative(t.op)) {
					output = append(output, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, t)

		case tokOpenParen:
			stack = append(stack, t)

		case tokCloseParen:
			for {
				if len(stack) == 0 {
					return nil, ErrUnbalancedParentheses
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokOpenParen {
					break
				}
				output = append(output, top)
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.kind == tokOpenParen {
			return nil, ErrUnbalancedParentheses
		}
		output = append(output, top)
	}

	return output, nil
}

// evalRPN evaluates the reverse Polish token stream over a stack of
// polynomial values.
func evalRPN(rpn []token) (poly.Polynomial[float64], error) {
	var stack []poly.Polynomial[float64]

	pop := func() (poly.Polynomial[float64], bool) {
		if len(stack) == 0 {
			return poly.Zero[float64](), false
		}
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return p, true
	}

	for _, t := range rpn {
		switch t.kind {
		case tokNumber:
			stack = append(stack, poly.Constant(t.num))

		case tokVariable:
			stack = append(stack, poly.X[float64]())

		case tokOperator:
			result, err := applyOperator(t.op, pop)
			if err != nil {
				return poly.Zero[float64](), err
			}
			stack = append(stack, result)
		}
	}

	if len(stack) != 1 {
		return poly.Zero[float64](), ErrUnexpectedEnd
	}
	return stack[0], nil
}

func applyOperator(op operator, pop func() (poly.Polynomial[float64], bool)) (poly.Polynomial[float64], error) {
	zero := poly.Zero[float64]()

	if op == opUnaryMinus || op == opUnaryPlus {
		operand, ok := pop()
		if !ok {
			return zero, ErrOperandExpected
		}
		if op == opUnaryMinus {
			return operand.Neg(), nil
		}
		return operand, nil
	}

	right, ok := pop()
	if !ok {
		return zero, ErrOperandExpected
	}
	left, ok := pop()
	if !ok {
		return zero, ErrOperandExpected
	}

	switch op {
	case opPlus:
		return left.Add(right), nil
	case opMinus:
		return left.Sub(right), nil
	case opMultiply:
		return left.Mul(right), nil
	case opDivide:
		if !right.IsConstant() {
			return zero, ErrNonConstantDivisor
		}
		if right.IsZero() {
			return zero, ErrDivisionByZero
		}
		return left.DivScalar(right.At(0)), nil
	default: // opPower
		if !right.IsConstant() {
			return zero, ErrInvalidExponent
		}
		exp := right.At(0)
		if exp < 0 || exp != math.Trunc(exp) {
			return zero, ErrInvalidExponent
		}
		return left.Pow(uint(exp)), nil
	}
}
