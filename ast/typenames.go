package ast

// ElementaryTypeName represents a builtin type reference such as `uint256`,
// `address payable`, or `bool` used in declaration position.
type ElementaryTypeName struct {
	Regular
	Name            string
	StateMutability StateMutability // only meaningful for "address"
}

func (n *ElementaryTypeName) Kind() NodeKind   { return KindElementaryTypeName }
func (n *ElementaryTypeName) Children() []Node { return nil }
func (n *ElementaryTypeName) typeNameNode()    {}

// UserDefinedTypeName represents a reference to a contract, struct, enum,
// or user-defined value type by (possibly qualified) name.
type UserDefinedTypeName struct {
	Regular
	Name                  string
	ReferencedDeclaration NodeID
	PathNode              *IdentifierPath
}

func (n *UserDefinedTypeName) Kind() NodeKind { return KindUserDefinedTypeName }
func (n *UserDefinedTypeName) Children() []Node {
	if n.PathNode == nil {
		return nil
	}
	return []Node{n.PathNode}
}
func (n *UserDefinedTypeName) typeNameNode() {}

// ArrayTypeName represents `T[]` or `T[N]`.
type ArrayTypeName struct {
	Regular
	BaseType TypeName
	Length   Expression // nil for dynamic arrays
}

func (n *ArrayTypeName) Kind() NodeKind { return KindArrayTypeName }
func (n *ArrayTypeName) Children() []Node {
	out := make([]Node, 0, 2)
	if n.BaseType != nil {
		out = append(out, n.BaseType)
	}
	if n.Length != nil {
		out = append(out, n.Length)
	}
	return out
}
func (n *ArrayTypeName) typeNameNode() {}

// Mapping represents `mapping(K => V)`.
type Mapping struct {
	Regular
	KeyType   TypeName
	ValueType TypeName
}

func (n *Mapping) Kind() NodeKind { return KindMapping }
func (n *Mapping) Children() []Node {
	out := make([]Node, 0, 2)
	if n.KeyType != nil {
		out = append(out, n.KeyType)
	}
	if n.ValueType != nil {
		out = append(out, n.ValueType)
	}
	return out
}
func (n *Mapping) typeNameNode() {}

// FunctionTypeName represents `function(T) returns (U)` used as a type,
// e.g. in a state variable or parameter declaration.
type FunctionTypeName struct {
	Regular
	Visibility       Visibility
	StateMutability  StateMutability
	Parameters       *ParameterList
	ReturnParameters *ParameterList
}

func (n *FunctionTypeName) Kind() NodeKind { return KindFunctionTypeName }
func (n *FunctionTypeName) Children() []Node {
	out := make([]Node, 0, 2)
	if n.Parameters != nil {
		out = append(out, n.Parameters)
	}
	if n.ReturnParameters != nil {
		out = append(out, n.ReturnParameters)
	}
	return out
}
func (n *FunctionTypeName) typeNameNode() {}
