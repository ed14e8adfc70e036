package ast

// Node is the base interface for all AST nodes.
type Node interface {
	Positioner
	Hash() uint64
}

// Expr is the interface for all expression nodes in the AST.
type Expr interface {
	Node
	// ExprName is a short name for the expression variant, for diagnostics
	ExprName() string
	// Describe is a human-readable name for the expression variant
	Describe() string
	exprNode() // Marker method to distinguish expressions
}
