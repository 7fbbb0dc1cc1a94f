package ast

// SourceUnit bundles every top-level declaration from a single compiled
// file. It is the root of every per-file tree the workspace ingests.
type SourceUnit struct {
	Regular
	AbsolutePath    string
	SourceText      string // raw source text, attached post-decode (§4.1 step 1)
	ExportedSymbols map[string][]NodeID
	Nodes           []Node
}

func (n *SourceUnit) Kind() NodeKind   { return KindSourceUnit }
func (n *SourceUnit) Children() []Node { return n.Nodes }

// PragmaDirective represents a `pragma solidity ...;` line.
type PragmaDirective struct {
	Regular
	Literals []string
}

func (n *PragmaDirective) Kind() NodeKind   { return KindPragmaDirective }
func (n *PragmaDirective) Children() []Node { return nil }

// ImportDirective represents a Solidity `import` statement.
type ImportDirective struct {
	Regular
	AbsolutePath  string
	File          string
	UnitAlias     string
	SymbolAliases map[string]string
	SourceUnitID  NodeID // the id of the imported SourceUnit, if resolved
}

func (n *ImportDirective) Kind() NodeKind   { return KindImportDirective }
func (n *ImportDirective) Children() []Node { return nil }

// InheritanceSpecifier is one entry of `contract X is Y(args), Z`.
type InheritanceSpecifier struct {
	Regular
	BaseName               *IdentifierPath
	ReferencedDeclaration  NodeID
	Arguments              []Expression
}

func (n *InheritanceSpecifier) Kind() NodeKind { return KindInheritanceSpecifier }
func (n *InheritanceSpecifier) Children() []Node {
	out := make([]Node, 0, len(n.Arguments)+1)
	if n.BaseName != nil {
		out = append(out, n.BaseName)
	}
	for _, a := range n.Arguments {
		out = append(out, a)
	}
	return out
}

// UsingForDirective represents `using X for Y;`.
type UsingForDirective struct {
	Regular
	LibraryName *IdentifierPath
	TypeName    TypeName // nil means "using X for *"
	Global      bool
}

func (n *UsingForDirective) Kind() NodeKind { return KindUsingForDirective }
func (n *UsingForDirective) Children() []Node {
	var out []Node
	if n.LibraryName != nil {
		out = append(out, n.LibraryName)
	}
	if n.TypeName != nil {
		out = append(out, n.TypeName)
	}
	return out
}

// ContractDefinition is the central entity of the model (§3.3).
type ContractDefinition struct {
	Regular
	Name                    string
	Scope                   NodeID
	ContractKind            ContractKind
	IsAbstract              bool
	FullyImplemented        bool
	BaseContracts           []*InheritanceSpecifier
	LinearizedBaseContracts []NodeID
	Members                 []Node // using-for, state-var, function, modifier, event, error, struct, enum, UDVT, in source order
	Documentation           string
}

func (n *ContractDefinition) Kind() NodeKind { return KindContractDefinition }

func (n *ContractDefinition) Children() []Node {
	out := make([]Node, 0, len(n.BaseContracts)+len(n.Members))
	for _, b := range n.BaseContracts {
		out = append(out, b)
	}
	out = append(out, n.Members...)
	return out
}

// StructDefinition represents `struct S { ... }`.
type StructDefinition struct {
	Regular
	Name          string
	CanonicalName string
	Scope         NodeID
	Visibility    Visibility
	Members       []*VariableDeclaration
}

func (n *StructDefinition) Kind() NodeKind { return KindStructDefinition }
func (n *StructDefinition) Children() []Node {
	out := make([]Node, len(n.Members))
	for i, m := range n.Members {
		out[i] = m
	}
	return out
}

// EnumDefinition represents `enum E { ... }`.
type EnumDefinition struct {
	Regular
	Name          string
	CanonicalName string
	Members       []*EnumValue
}

func (n *EnumDefinition) Kind() NodeKind { return KindEnumDefinition }
func (n *EnumDefinition) Children() []Node {
	out := make([]Node, len(n.Members))
	for i, m := range n.Members {
		out[i] = m
	}
	return out
}

// EnumValue is one member of an EnumDefinition.
type EnumValue struct {
	Regular
	Name string
}

func (n *EnumValue) Kind() NodeKind   { return KindEnumValue }
func (n *EnumValue) Children() []Node { return nil }

// ErrorDefinition represents a custom Solidity error declaration.
type ErrorDefinition struct {
	Regular
	Name          string
	Parameters    *ParameterList
	Documentation string
}

func (n *ErrorDefinition) Kind() NodeKind { return KindErrorDefinition }
func (n *ErrorDefinition) Children() []Node {
	if n.Parameters == nil {
		return nil
	}
	return []Node{n.Parameters}
}

// EventDefinition represents `event E(...)`.
type EventDefinition struct {
	Regular
	Name          string
	CanonicalName string // derived in post: "ContractName.EventName"
	Anonymous     bool
	Parameters    *ParameterList
}

func (n *EventDefinition) Kind() NodeKind { return KindEventDefinition }
func (n *EventDefinition) Children() []Node {
	if n.Parameters == nil {
		return nil
	}
	return []Node{n.Parameters}
}

// VariableDeclaration represents a state variable, a local variable, or a
// function/event/error parameter — Solidity reuses one node kind for all
// three, distinguished by StateVariable and StorageLocation.
type VariableDeclaration struct {
	Regular
	Name            string
	Scope           NodeID
	StateVariable   bool
	Constant        bool
	Indexed         bool
	Visibility      Visibility
	StorageLocation StorageLocation
	TypeName        TypeName
	Value           Expression // initializer, if any
	TypeString      string
	FunctionSelector string // set only for auto-generated public-getter state vars
}

func (n *VariableDeclaration) Kind() NodeKind { return KindVariableDeclaration }
func (n *VariableDeclaration) Children() []Node {
	var out []Node
	if n.TypeName != nil {
		out = append(out, n.TypeName)
	}
	if n.Value != nil {
		out = append(out, n.Value)
	}
	return out
}

// ParameterList wraps a list of VariableDeclarations; it is reused for
// function inputs, outputs, and several other declaration forms.
type ParameterList struct {
	Regular
	Parameters []*VariableDeclaration
}

func (n *ParameterList) Kind() NodeKind { return KindParameterList }
func (n *ParameterList) Children() []Node {
	out := make([]Node, len(n.Parameters))
	for i, p := range n.Parameters {
		out[i] = p
	}
	return out
}

// OverrideSpecifier represents an explicit `override(A, B)` clause.
type OverrideSpecifier struct {
	Regular
	Overrides []*IdentifierPath
}

func (n *OverrideSpecifier) Kind() NodeKind { return KindOverrideSpecifier }
func (n *OverrideSpecifier) Children() []Node {
	out := make([]Node, len(n.Overrides))
	for i, o := range n.Overrides {
		out[i] = o
	}
	return out
}

// FunctionDefinition represents any of Function/Constructor/Fallback/
// Receive/FreeFunction (§3.4).
type FunctionDefinition struct {
	Regular
	Name             string
	FunctionKind     FunctionKind
	Visibility       Visibility
	StateMutability  StateMutability
	Virtual          bool
	Implemented      bool
	Scope            NodeID
	FunctionSelector string
	Modifiers        []*ModifierInvocation
	Parameters       *ParameterList
	ReturnParameters *ParameterList
	Overrides        *OverrideSpecifier
	Body             *Block
	Documentation    string
}

func (n *FunctionDefinition) Kind() NodeKind { return KindFunctionDefinition }
func (n *FunctionDefinition) Children() []Node {
	out := make([]Node, 0, 4+len(n.Modifiers))
	if n.Parameters != nil {
		out = append(out, n.Parameters)
	}
	if n.ReturnParameters != nil {
		out = append(out, n.ReturnParameters)
	}
	for _, m := range n.Modifiers {
		out = append(out, m)
	}
	if n.Overrides != nil {
		out = append(out, n.Overrides)
	}
	if n.Body != nil {
		out = append(out, n.Body)
	}
	return out
}

// IsConstructor reports whether this definition is a contract constructor.
func (n *FunctionDefinition) IsConstructor() bool { return n.FunctionKind == FunctionKindConstructor }

// ModifierDefinition represents `modifier m(...) { ...; _; }`.
type ModifierDefinition struct {
	Regular
	Name       string
	Visibility Visibility
	Virtual    bool
	Parameters *ParameterList
	Overrides  *OverrideSpecifier
	Body       *Block
}

func (n *ModifierDefinition) Kind() NodeKind { return KindModifierDefinition }
func (n *ModifierDefinition) Children() []Node {
	var out []Node
	if n.Parameters != nil {
		out = append(out, n.Parameters)
	}
	if n.Overrides != nil {
		out = append(out, n.Overrides)
	}
	if n.Body != nil {
		out = append(out, n.Body)
	}
	return out
}

// ModifierInvocation is one `onlyOwner` / `A.onlyOwner()` entry in a
// function's modifier list.
type ModifierInvocation struct {
	Regular
	ModifierName Node // *Identifier or *IdentifierPath
	Arguments    []Expression
}

func (n *ModifierInvocation) Kind() NodeKind { return KindModifierInvocation }
func (n *ModifierInvocation) Children() []Node {
	out := make([]Node, 0, len(n.Arguments)+1)
	if n.ModifierName != nil {
		out = append(out, n.ModifierName)
	}
	for _, a := range n.Arguments {
		out = append(out, a)
	}
	return out
}

// UserDefinedValueTypeDefinition represents `type T is underlying;`.
type UserDefinedValueTypeDefinition struct {
	Regular
	Name           string
	UnderlyingType TypeName
}

func (n *UserDefinedValueTypeDefinition) Kind() NodeKind { return KindUserDefinedValueTypeDefinition }
func (n *UserDefinedValueTypeDefinition) Children() []Node {
	if n.UnderlyingType == nil {
		return nil
	}
	return []Node{n.UnderlyingType}
}

// StructuredDocumentation represents a NatSpec `/// ...` comment block.
type StructuredDocumentation struct {
	Regular
	Text string
}

func (n *StructuredDocumentation) Kind() NodeKind   { return KindStructuredDocumentation }
func (n *StructuredDocumentation) Children() []Node { return nil }
