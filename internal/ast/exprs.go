package ast

import "github.com/loxlang/lox/pkg/token"

// Assign is `name = value`. Emitted by the parser only when the left-hand
// side of `=` parsed as a Variable.
type Assign struct {
	base
	Name  token.Token
	Value Expr
}

func NewAssign(name token.Token, value Expr) *Assign {
	return &Assign{base: newBase(), Name: name, Value: value}
}

// Binary is `left op right` for arithmetic, comparison, and equality
// operators.
type Binary struct {
	base
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewBinary(left Expr, operator token.Token, right Expr) *Binary {
	return &Binary{base: newBase(), Left: left, Operator: operator, Right: right}
}

// Call is `callee(args...)`. Paren is the closing `)`, used to anchor
// arity and "not callable" runtime errors.
type Call struct {
	base
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func NewCall(callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{base: newBase(), Callee: callee, Paren: paren, Args: args}
}

// Get is `object.name`, a property read.
type Get struct {
	base
	Object Expr
	Name   token.Token
}

func NewGet(object Expr, name token.Token) *Get {
	return &Get{base: newBase(), Object: object, Name: name}
}

// Grouping is a parenthesized expression, kept distinct from its inner
// expression so pretty-printing can reproduce the parentheses.
type Grouping struct {
	base
	Expression Expr
}

func NewGrouping(expression Expr) *Grouping {
	return &Grouping{base: newBase(), Expression: expression}
}

// Literal is a constant value baked in at parse time: a number, string,
// boolean, or nil.
type Literal struct {
	base
	Value any
}

func NewLiteral(value any) *Literal {
	return &Literal{base: newBase(), Value: value}
}

// Logical is `left and right` / `left or right`. Kept distinct from
// Binary because its operands short-circuit.
type Logical struct {
	base
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewLogical(left Expr, operator token.Token, right Expr) *Logical {
	return &Logical{base: newBase(), Left: left, Operator: operator, Right: right}
}

// Set is `object.name = value`, a property write. Emitted by the parser
// only when the left-hand side of `=` parsed as a Get.
type Set struct {
	base
	Object Expr
	Name   token.Token
	Value  Expr
}

func NewSet(object Expr, name token.Token, value Expr) *Set {
	return &Set{base: newBase(), Object: object, Name: name, Value: value}
}

// Super is `super.method`. Keyword is the `super` token itself, used as
// the resolver-distance lookup key; Method is the identifier after `.`.
type Super struct {
	base
	Keyword token.Token
	Method  token.Token
}

func NewSuper(keyword, method token.Token) *Super {
	return &Super{base: newBase(), Keyword: keyword, Method: method}
}

// This is the `this` keyword used as an expression.
type This struct {
	base
	Keyword token.Token
}

func NewThis(keyword token.Token) *This {
	return &This{base: newBase(), Keyword: keyword}
}

// Unary is `op right` for `!` and unary `-`.
type Unary struct {
	base
	Operator token.Token
	Right    Expr
}

func NewUnary(operator token.Token, right Expr) *Unary {
	return &Unary{base: newBase(), Operator: operator, Right: right}
}

// Variable is a bare identifier used as an expression.
type Variable struct {
	base
	Name token.Token
}

func NewVariable(name token.Token) *Variable {
	return &Variable{base: newBase(), Name: name}
}

func (*Assign) exprNode()   {}
func (*Binary) exprNode()   {}
func (*Call) exprNode()     {}
func (*Get) exprNode()      {}
func (*Grouping) exprNode() {}
func (*Literal) exprNode()  {}
func (*Logical) exprNode()  {}
func (*Set) exprNode()      {}
func (*Super) exprNode()    {}
func (*This) exprNode()     {}
func (*Unary) exprNode()    {}
func (*Variable) exprNode() {}
