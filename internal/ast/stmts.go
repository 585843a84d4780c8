package ast

import "github.com/loxlang/lox/pkg/token"

// Block is `{ stmts... }`. Executed in a fresh child environment.
type Block struct {
	Statements []Stmt
}

func NewBlock(statements []Stmt) *Block { return &Block{Statements: statements} }

// Class is `class Name < Super { methods... }`. Superclass is nil when
// there is no `<` clause.
type Class struct {
	Name       token.Token
	Superclass *Variable
	Methods    []*Function
}

func NewClass(name token.Token, superclass *Variable, methods []*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

// Expression is a bare expression statement, evaluated for its side
// effects and then discarded.
type Expression struct {
	Expr Expr
}

func NewExpression(expr Expr) *Expression { return &Expression{Expr: expr} }

// Function is `fun name(params) { body }`, and is reused verbatim for
// method declarations inside a Class.
type Function struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func NewFunction(name token.Token, params []token.Token, body []Stmt) *Function {
	return &Function{Name: name, Params: params, Body: body}
}

// If is `if (cond) then else?`. Else is nil when there is no else clause.
type If struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func NewIf(condition Expr, then, els Stmt) *If {
	return &If{Condition: condition, Then: then, Else: els}
}

// Print is `print expr;`.
type Print struct {
	Expr Expr
}

func NewPrint(expr Expr) *Print { return &Print{Expr: expr} }

// Return is `return value?;`. Value is nil for a bare `return;`.
type Return struct {
	Keyword token.Token
	Value   Expr
}

func NewReturn(keyword token.Token, value Expr) *Return {
	return &Return{Keyword: keyword, Value: value}
}

// Var is `var name = init?;`. Init is nil when the declaration has no
// initializer, in which case the interpreter defines the variable as nil.
type Var struct {
	Name token.Token
	Init Expr
}

func NewVar(name token.Token, init Expr) *Var { return &Var{Name: name, Init: init} }

// While is `while (cond) body`. The desugared `for` loop produces one of
// these.
type While struct {
	Condition Expr
	Body      Stmt
}

func NewWhile(condition Expr, body Stmt) *While { return &While{Condition: condition, Body: body} }

func (*Block) stmtNode()      {}
func (*Class) stmtNode()      {}
func (*Expression) stmtNode() {}
func (*Function) stmtNode()   {}
func (*If) stmtNode()         {}
func (*Print) stmtNode()      {}
func (*Return) stmtNode()     {}
func (*Var) stmtNode()        {}
func (*While) stmtNode()      {}
