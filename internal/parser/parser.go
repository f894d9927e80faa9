// Package parser implements the syntax analysis for let-lang.
//
// Expressions are parsed with an explicit operand stack and operator stack
// (operator-precedence parsing). Three constructs recurse instead of using
// the stacks: parenthesized groups, assignment value/body suffixes, and the
// statement terminator, which ends the current parse.
package parser

import (
	"let-lang/internal/ast"
	"let-lang/internal/diag"
	"let-lang/internal/span"
	"let-lang/internal/token"
)

const (
	precAdditive = 1 // + -
	precMultiply = 2 // * /
)

// precedence returns the binding strength of a binary operator.
func precedence(kind token.Kind) int {
	switch kind {
	case token.PLUS, token.MINUS:
		return precAdditive
	case token.STAR, token.SLASH:
		return precMultiply
	default:
		return 0
	}
}

// Parse parses one statement from the front of tokens. It returns the
// expression and the number of tokens consumed, including any terminator,
// so a caller sequencing several statements can advance and call again.
// End of input acts as an implicit terminator.
func Parse(tokens []token.Token) (ast.Expr, int, error) {
	expr, consumed, _, err := parse(tokens, false)
	return expr, consumed, err
}

// stopCause records how a sub-parse ended.
type stopCause int

const (
	stopEnd        stopCause = iota // ran out of tokens
	stopTerminator                  // consumed a ';'
	stopParen                       // consumed a ')'
)

type parser struct {
	tokens   []token.Token
	pos      int
	operands []ast.Expr
	ops      []token.Token // pending binary operator tokens
}

// parse consumes tokens until a terminator, an unmatched close parenthesis
// (legal only when nested), or end of input. Assignment propagates its
// body's stop cause, so a group closed inside an assignment body still
// counts as closed for the enclosing open parenthesis.
func parse(tokens []token.Token, nested bool) (ast.Expr, int, stopCause, error) {
	p := &parser{tokens: tokens}

	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]

		switch tok.Kind {
		case token.INT:
			p.push(&ast.IntLiteral{ExprBase: ast.ExprBase{Span: tok.Span}, Value: tok.Value})
			p.pos++

		case token.IDENT:
			p.push(&ast.VarRef{ExprBase: ast.ExprBase{Span: tok.Span}, Name: tok.Lexeme})
			p.pos++

		case token.PLUS, token.MINUS, token.STAR, token.SLASH:
			// Reduce every pending operator of equal or higher precedence
			// before pushing, so chains stay left-associative even when a
			// lower-precedence operator is buried under a higher one.
			for len(p.ops) > 0 && precedence(tok.Kind) <= precedence(p.top().Kind) {
				if err := p.reduceTop(); err != nil {
					return nil, 0, 0, err
				}
			}
			p.ops = append(p.ops, tok)
			p.pos++

		case token.ASSIGN:
			expr, cause, err := p.parseAssign(tok, nested)
			if err != nil {
				return nil, 0, 0, err
			}
			p.push(expr)
			return p.finish(cause)

		case token.LPAREN:
			p.pos++
			inner, n, cause, err := parse(p.tokens[p.pos:], true)
			if err != nil {
				return nil, 0, 0, err
			}
			p.pos += n
			if cause != stopParen {
				return nil, 0, 0, diag.Errorf("E2001", tok.Span, "unbalanced parentheses")
			}
			p.push(inner)

		case token.RPAREN:
			if !nested {
				return nil, 0, 0, diag.Errorf("E2001", tok.Span, "unbalanced parentheses")
			}
			p.pos++
			return p.finish(stopParen)

		case token.SEMICOLON:
			p.pos++
			return p.finish(stopTerminator)

		default:
			return nil, 0, 0, diag.Errorf("E2003", tok.Span, "unexpected token %q", tok.Lexeme)
		}
	}

	return p.finish(stopEnd)
}

// parseAssign handles '=': the most recently pushed operand must be a bare
// variable reference; the value and the rest of the statement (the body)
// are parsed by right-recursive sub-parses at the same nesting depth.
func (p *parser) parseAssign(tok token.Token, nested bool) (ast.Expr, stopCause, error) {
	if len(p.operands) == 0 {
		return nil, 0, diag.Errorf("E2002", tok.Span, "unexpected assignment")
	}
	target, ok := p.pop().(*ast.VarRef)
	if !ok {
		return nil, 0, diag.Errorf("E2002", tok.Span, "unexpected assignment")
	}
	p.pos++

	value, n, _, err := parse(p.tokens[p.pos:], nested)
	if err != nil {
		return nil, 0, err
	}
	p.pos += n

	body, n, cause, err := parse(p.tokens[p.pos:], nested)
	if err != nil {
		return nil, 0, err
	}
	p.pos += n

	sp := span.Cover(target.GetSpan(), body.GetSpan())
	return &ast.Assign{
		ExprBase: ast.ExprBase{Span: sp},
		Name:     target.Name,
		Value:    value,
		Body:     body,
	}, cause, nil
}

// ---- stack helpers ----

func (p *parser) push(expr ast.Expr) {
	p.operands = append(p.operands, expr)
}

func (p *parser) pop() ast.Expr {
	expr := p.operands[len(p.operands)-1]
	p.operands = p.operands[:len(p.operands)-1]
	return expr
}

func (p *parser) top() token.Token {
	return p.ops[len(p.ops)-1]
}

// reduceTop pops the top operator with the top two operands and pushes the
// combined binary expression back as an operand.
func (p *parser) reduceTop() error {
	op := p.top()
	p.ops = p.ops[:len(p.ops)-1]

	if len(p.operands) < 2 {
		return diag.Errorf("E2003", op.Span, "operator %q is missing an operand", op.Lexeme)
	}
	right := p.pop()
	left := p.pop()

	base := ast.ExprBase{Span: span.Cover(left.GetSpan(), right.GetSpan())}
	switch op.Kind {
	case token.PLUS:
		p.push(&ast.Sum{ExprBase: base, Left: left, Right: right})
	case token.MINUS:
		p.push(&ast.Difference{ExprBase: base, Left: left, Right: right})
	case token.STAR:
		p.push(&ast.Product{ExprBase: base, Left: left, Right: right})
	case token.SLASH:
		p.push(&ast.Quotient{ExprBase: base, Left: left, Right: right})
	default:
		return diag.Errorf("E2003", op.Span, "unexpected operator %q", op.Lexeme)
	}
	return nil
}

// finish drains all pending operators and returns the single completed
// expression. Anything other than exactly one operand left on the stack is
// a malformed arrangement.
func (p *parser) finish(cause stopCause) (ast.Expr, int, stopCause, error) {
	for len(p.ops) > 0 {
		if err := p.reduceTop(); err != nil {
			return nil, 0, 0, err
		}
	}

	switch len(p.operands) {
	case 1:
		return p.operands[0], p.pos, cause, nil
	case 0:
		return nil, 0, 0, diag.Errorf("E2003", p.hereSpan(), "expected an expression")
	default:
		extra := p.operands[1]
		return nil, 0, 0, diag.Errorf("E2003", extra.GetSpan(), "missing operator between expressions")
	}
}

// hereSpan returns a span for the current (or last) token position.
func (p *parser) hereSpan() span.Span {
	if len(p.tokens) == 0 {
		return span.Span{}
	}
	i := p.pos
	if i >= len(p.tokens) {
		i = len(p.tokens) - 1
	}
	return p.tokens[i].Span
}
