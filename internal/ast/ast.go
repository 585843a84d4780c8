// Package ast defines the immutable, tagged statement and expression trees
// produced by the parser and walked by the resolver and interpreter.
// Every expression node carries a process-unique identity: the resolver
// keys its locals map on that identity rather than on the node's
// address, so a copy of a node carries the same identity as its original
// while distinct nodes never share one.
package ast

import "github.com/google/uuid"

// NodeID is the process-unique identity carried by every expression node.
// It is also reused for Callable/Class/Instance runtime value identity,
// so equality-by-identity is the same kind of comparison throughout the
// interpreter.
type NodeID = uuid.UUID

// NewNodeID allocates a fresh identity. The zero Lexer, Parser, and
// Interpreter never reuse one: every call produces a distinct id, even for
// structurally identical nodes.
func NewNodeID() NodeID {
	return uuid.New()
}

// Expr is any expression node. ID is stable for the lifetime of the node
// and is what the resolver's locals map and the interpreter's lookups key
// on.
type Expr interface {
	ID() NodeID
	exprNode()
}

// Stmt is any statement node.
type Stmt interface {
	stmtNode()
}

// base is embedded by every Expr to provide identity without repeating the
// id field and method in each node type.
type base struct {
	id NodeID
}

// ID returns the node's process-unique identity.
func (b base) ID() NodeID { return b.id }

func newBase() base { return base{id: NewNodeID()} }
