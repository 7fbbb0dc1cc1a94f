package ast

import "fmt"

// Node is the sum type every concrete AST struct in this package satisfies.
// It intentionally exposes only what the workspace and visitor need:
// identity, source location (both optional, see the embeddable bases
// below), and immediate children in declaration order.
type Node interface {
	Kind() NodeKind
	NodeID() NodeID
	HasID() bool
	SrcString() string
	HasSrc() bool
	Children() []Node
}

// Expression, Statement and TypeName are category markers, not distinct
// node kinds in their own right. Solidity's AST nests these as a tagged
// union, but we keep that as an interface rather than runtime
// polymorphism layered on top of the sum type (see design notes, §9).
type Expression interface {
	Node
	expressionNode()
}

type Statement interface {
	Node
	statementNode()
}

type TypeName interface {
	Node
	typeNameNode()
}

// YulStatementNode and YulExpressionNode play the same role within inline
// assembly blocks.
type YulStatementNode interface {
	Node
	yulStatementNode()
}

type YulExpressionNode interface {
	Node
	yulExpressionNode()
}

// Regular carries the NodeID + src pair every "regular" Solidity AST node
// has (§3.2). Embed it to satisfy the id/src half of Node.
type Regular struct {
	Id     NodeID `json:"id"`
	Source string `json:"src"`
}

func (r Regular) NodeID() NodeID    { return r.Id }
func (r Regular) HasID() bool       { return true }
func (r Regular) SrcString() string { return r.Source }
func (r Regular) HasSrc() bool      { return true }

// YulBase carries only a src string, as Yul nodes have no NodeID of their
// own in the compiler's emitted AST.
type YulBase struct {
	Source string `json:"src"`
}

func (y YulBase) NodeID() NodeID    { return 0 }
func (y YulBase) HasID() bool       { return false }
func (y YulBase) SrcString() string { return y.Source }
func (y YulBase) HasSrc() bool      { return true }

// Sourceless carries neither. No node type in this package embeds it;
// the Yul leave/break/continue statements carry a YulBase like the other
// Yul forms.
type Sourceless struct{}

func (Sourceless) NodeID() NodeID    { return 0 }
func (Sourceless) HasID() bool       { return false }
func (Sourceless) SrcString() string { return "" }
func (Sourceless) HasSrc() bool      { return false }

// SourceLocation is the decoded form of a compiler "S:L:F" src string.
type SourceLocation struct {
	Start     int
	Length    int
	FileIndex int
	Valid     bool
}

// ParseSourceLocation decodes "start:length:file_index". An empty or
// malformed string yields a zero-value, invalid SourceLocation rather than
// an error: many Yul-sourceless nodes simply have none, and the spec
// requires the rest of ingestion to tolerate that (§6).
func ParseSourceLocation(src string) SourceLocation {
	var start, length, file int
	n, err := fmt.Sscanf(src, "%d:%d:%d", &start, &length, &file)
	if err != nil || n != 3 {
		return SourceLocation{}
	}
	return SourceLocation{Start: start, Length: length, FileIndex: file, Valid: true}
}

// Generic is the universal node wrapper (C1) for any nodeType this model
// doesn't give a dedicated struct to. It still participates fully in
// ingestion and traversal: it keeps its id/src when present and recurses
// into whatever children the decoder found nested inside it.
type Generic struct {
	Regular
	RawKind      string
	GenericChild []Node
}

func (g *Generic) Kind() NodeKind   { return KindGeneric }
func (g *Generic) Children() []Node { return g.GenericChild }
