/*
File   : gomonkey/parser/precedence.go

Operator precedence constants for the Pratt parser. Higher number binds
tighter.

Precedence ladder (lowest to highest):
 1. LOWEST
 2. EQUALS       (== !=)
 3. LESSGREATER  (< >)
 4. SUM          (+ -)
 5. PRODUCT      (* /)
 6. PREFIX       (unary ! -)
 7. CALL         (the ( that opens a function call)

Example: "a + b * c" parses as "(a + (b * c))" because PRODUCT outranks
SUM.
*/
package parser

import "github.com/gomonkey/gomonkey/token"

type precedence int

const (
	LOWEST precedence = iota + 1
	EQUALS
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
	CALL
)

// precedences maps each infix-capable token to its precedence. Any token
// absent from this table has precedence LOWEST.
var precedences = map[token.Type]precedence{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
}

func precedenceOf(tok token.Type) precedence {
	if p, ok := precedences[tok]; ok {
		return p
	}
	return LOWEST
}
