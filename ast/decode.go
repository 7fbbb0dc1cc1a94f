package ast

import (
	"encoding/json"
	"fmt"
)

// rawEnvelope peeks at the nodeType field every standalone-solc-JSON node
// carries before we know which concrete struct to decode into.
type rawEnvelope struct {
	NodeType string `json:"nodeType"`
}

// DecodeNode decodes one node of the modern standalone solc AST JSON
// format — and everything nested beneath it — into the sum type (§4.1 step
// 1). Unlike the combined-json format, fields are named per kind
// ("nodes", "body", "expression", ...) rather than a uniform children
// array, so each kind gets its own decode function; anything this model
// doesn't carry a dedicated struct for falls through to decodeGeneric,
// which still recovers id/src and keeps recursing so traversal never loses
// a subtree outright.
func DecodeNode(raw json.RawMessage) (Node, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var env rawEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("ast: decode envelope: %w", err)
	}
	switch NodeKind(env.NodeType) {
	case KindSourceUnit:
		return decodeSourceUnit(raw)
	case KindPragmaDirective:
		return decodeSimple(raw, &PragmaDirective{})
	case KindImportDirective:
		return decodeSimple(raw, &ImportDirective{})
	case KindInheritanceSpecifier:
		return decodeInheritanceSpecifier(raw)
	case KindUsingForDirective:
		return decodeUsingForDirective(raw)
	case KindContractDefinition:
		return decodeContractDefinition(raw)
	case KindStructDefinition:
		return decodeStructDefinition(raw)
	case KindEnumDefinition:
		return decodeEnumDefinition(raw)
	case KindEnumValue:
		return decodeSimple(raw, &EnumValue{})
	case KindErrorDefinition:
		return decodeErrorDefinition(raw)
	case KindEventDefinition:
		return decodeEventDefinition(raw)
	case KindVariableDeclaration:
		return decodeVariableDeclaration(raw)
	case KindParameterList:
		return decodeParameterList(raw)
	case KindOverrideSpecifier:
		return decodeOverrideSpecifier(raw)
	case KindFunctionDefinition:
		return decodeFunctionDefinition(raw)
	case KindModifierDefinition:
		return decodeModifierDefinition(raw)
	case KindModifierInvocation:
		return decodeModifierInvocation(raw)
	case KindUserDefinedValueTypeDefinition:
		return decodeUserDefinedValueTypeDefinition(raw)
	case KindStructuredDocumentation:
		return decodeSimple(raw, &StructuredDocumentation{})

	case KindBlock:
		return decodeBlock(raw)
	case KindUncheckedBlock:
		return decodeUncheckedBlock(raw)
	case KindExpressionStatement:
		return decodeExpressionStatement(raw)
	case KindVariableDeclarationStatement:
		return decodeVariableDeclarationStatement(raw)
	case KindIfStatement:
		return decodeIfStatement(raw)
	case KindForStatement:
		return decodeForStatement(raw)
	case KindWhileStatement:
		return decodeWhileStatement(raw)
	case KindDoWhileStatement:
		return decodeDoWhileStatement(raw)
	case KindReturn:
		return decodeReturn(raw)
	case KindBreak:
		return decodeSimple(raw, &Break{})
	case KindContinue:
		return decodeSimple(raw, &Continue{})
	case KindPlaceholderStatement:
		return decodeSimple(raw, &PlaceholderStatement{})
	case KindEmitStatement:
		return decodeEmitStatement(raw)
	case KindRevertStatement:
		return decodeRevertStatement(raw)
	case KindTryStatement:
		return decodeTryStatement(raw)
	case KindTryCatchClause:
		return decodeTryCatchClause(raw)
	case KindInlineAssembly:
		return decodeInlineAssembly(raw)

	case KindFunctionCall:
		return decodeFunctionCall(raw)
	case KindFunctionCallOptions:
		return decodeFunctionCallOptions(raw)
	case KindMemberAccess:
		return decodeMemberAccess(raw)
	case KindIndexAccess:
		return decodeIndexAccess(raw)
	case KindIndexRangeAccess:
		return decodeIndexRangeAccess(raw)
	case KindIdentifier:
		return decodeSimple(raw, &Identifier{})
	case KindIdentifierPath:
		return decodeSimple(raw, &IdentifierPath{})
	case KindLiteral:
		return decodeLiteral(raw)
	case KindAssignment:
		return decodeAssignment(raw)
	case KindBinaryOperation:
		return decodeBinaryOperation(raw)
	case KindUnaryOperation:
		return decodeUnaryOperation(raw)
	case KindConditional:
		return decodeConditional(raw)
	case KindElementaryTypeNameExpression:
		return decodeElementaryTypeNameExpression(raw)
	case KindNewExpression:
		return decodeNewExpression(raw)
	case KindTupleExpression:
		return decodeTupleExpression(raw)

	case KindElementaryTypeName:
		return decodeSimple(raw, &ElementaryTypeName{})
	case KindUserDefinedTypeName:
		return decodeUserDefinedTypeName(raw)
	case KindArrayTypeName:
		return decodeArrayTypeName(raw)
	case KindMapping:
		return decodeMapping(raw)
	case KindFunctionTypeName:
		return decodeFunctionTypeName(raw)

	default:
		return decodeGeneric(raw, env.NodeType)
	}
}

// decodeSimple handles the common case of a node whose fields are all
// scalar: unmarshal directly into dst (which already embeds Regular) with
// no child recursion needed.
func decodeSimple[T Node](raw json.RawMessage, dst T) (Node, error) {
	if err := json.Unmarshal(raw, dst); err != nil {
		return nil, fmt.Errorf("ast: decode %T: %w", dst, err)
	}
	return dst, nil
}

// decodeGeneric recovers id/src and recurses into every JSON value that
// itself looks like a node (has a nodeType field) or an array of such
// values, so a compiler AST addition this model hasn't caught up with
// still traverses instead of silently vanishing.
func decodeGeneric(raw json.RawMessage, nodeType string) (Node, error) {
	var base Regular
	if err := json.Unmarshal(raw, &base); err != nil {
		return nil, fmt.Errorf("ast: decode generic %s: %w", nodeType, err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("ast: decode generic %s fields: %w", nodeType, err)
	}
	g := &Generic{Regular: base, RawKind: nodeType}
	for _, v := range fields {
		g.GenericChild = append(g.GenericChild, decodeGenericValue(v)...)
	}
	return g, nil
}

func decodeGenericValue(raw json.RawMessage) []Node {
	trimmed := trimLeadingSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '{':
		var env rawEnvelope
		if json.Unmarshal(raw, &env) == nil && env.NodeType != "" {
			if n, err := DecodeNode(raw); err == nil && n != nil {
				return []Node{n}
			}
		}
	case '[':
		var items []json.RawMessage
		if json.Unmarshal(raw, &items) == nil {
			var out []Node
			for _, item := range items {
				out = append(out, decodeGenericValue(item)...)
			}
			return out
		}
	}
	return nil
}

func trimLeadingSpace(b []byte) []byte {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\t' || b[i] == '\n' || b[i] == '\r') {
		i++
	}
	return b[i:]
}

// --- declarations -----------------------------------------------------

func decodeSourceUnit(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		AbsolutePath    string              `json:"absolutePath"`
		ExportedSymbols map[string][]NodeID `json:"exportedSymbols"`
		Nodes           []json.RawMessage   `json:"nodes"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode SourceUnit: %w", err)
	}
	nodes, err := decodeNodeList(w.Nodes)
	if err != nil {
		return nil, err
	}
	return &SourceUnit{
		Regular:         w.Regular,
		AbsolutePath:    w.AbsolutePath,
		ExportedSymbols: w.ExportedSymbols,
		Nodes:           nodes,
	}, nil
}

func decodeInheritanceSpecifier(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		BaseName  json.RawMessage   `json:"baseName"`
		Arguments []json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode InheritanceSpecifier: %w", err)
	}
	baseName, err := decodeIdentifierPathPtr(w.BaseName)
	if err != nil {
		return nil, err
	}
	args, err := decodeExpressionList(w.Arguments)
	if err != nil {
		return nil, err
	}
	return &InheritanceSpecifier{Regular: w.Regular, BaseName: baseName, Arguments: args}, nil
}

func decodeUsingForDirective(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		LibraryName json.RawMessage `json:"libraryName"`
		TypeName    json.RawMessage `json:"typeName"`
		Global      bool            `json:"global"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode UsingForDirective: %w", err)
	}
	lib, err := decodeIdentifierPathPtr(w.LibraryName)
	if err != nil {
		return nil, err
	}
	tn, err := decodeTypeNamePtr(w.TypeName)
	if err != nil {
		return nil, err
	}
	return &UsingForDirective{Regular: w.Regular, LibraryName: lib, TypeName: tn, Global: w.Global}, nil
}

func decodeContractDefinition(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Name                    string            `json:"name"`
		Scope                   NodeID            `json:"scope"`
		ContractKind            ContractKind      `json:"contractKind"`
		Abstract                bool              `json:"abstract"`
		FullyImplemented        bool              `json:"fullyImplemented"`
		BaseContracts           []json.RawMessage `json:"baseContracts"`
		LinearizedBaseContracts []NodeID          `json:"linearizedBaseContracts"`
		Nodes                   []json.RawMessage `json:"nodes"`
		Documentation           json.RawMessage   `json:"documentation"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode ContractDefinition: %w", err)
	}
	var bases []*InheritanceSpecifier
	for _, b := range w.BaseContracts {
		n, err := DecodeNode(b)
		if err != nil {
			return nil, err
		}
		if is, ok := n.(*InheritanceSpecifier); ok {
			bases = append(bases, is)
		}
	}
	members, err := decodeNodeList(w.Nodes)
	if err != nil {
		return nil, err
	}
	return &ContractDefinition{
		Regular:                 w.Regular,
		Name:                    w.Name,
		Scope:                   w.Scope,
		ContractKind:            w.ContractKind,
		IsAbstract:              w.Abstract,
		FullyImplemented:        w.FullyImplemented,
		BaseContracts:           bases,
		LinearizedBaseContracts: w.LinearizedBaseContracts,
		Members:                 members,
		Documentation:           decodeDocText(w.Documentation),
	}, nil
}

func decodeStructDefinition(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Name          string            `json:"name"`
		CanonicalName string            `json:"canonicalName"`
		Scope         NodeID            `json:"scope"`
		Visibility    Visibility        `json:"visibility"`
		Members       []json.RawMessage `json:"members"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode StructDefinition: %w", err)
	}
	members, err := decodeVariableDeclarationList(w.Members)
	if err != nil {
		return nil, err
	}
	return &StructDefinition{Regular: w.Regular, Name: w.Name, CanonicalName: w.CanonicalName, Scope: w.Scope, Visibility: w.Visibility, Members: members}, nil
}

func decodeEnumDefinition(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Name          string            `json:"name"`
		CanonicalName string            `json:"canonicalName"`
		Members       []json.RawMessage `json:"members"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode EnumDefinition: %w", err)
	}
	var members []*EnumValue
	for _, m := range w.Members {
		n, err := DecodeNode(m)
		if err != nil {
			return nil, err
		}
		if ev, ok := n.(*EnumValue); ok {
			members = append(members, ev)
		}
	}
	return &EnumDefinition{Regular: w.Regular, Name: w.Name, CanonicalName: w.CanonicalName, Members: members}, nil
}

func decodeErrorDefinition(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Name          string          `json:"name"`
		Parameters    json.RawMessage `json:"parameters"`
		Documentation json.RawMessage `json:"documentation"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode ErrorDefinition: %w", err)
	}
	params, err := decodeParameterListPtr(w.Parameters)
	if err != nil {
		return nil, err
	}
	return &ErrorDefinition{Regular: w.Regular, Name: w.Name, Parameters: params, Documentation: decodeDocText(w.Documentation)}, nil
}

func decodeEventDefinition(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Name       string          `json:"name"`
		Anonymous  bool            `json:"anonymous"`
		Parameters json.RawMessage `json:"parameters"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode EventDefinition: %w", err)
	}
	params, err := decodeParameterListPtr(w.Parameters)
	if err != nil {
		return nil, err
	}
	return &EventDefinition{Regular: w.Regular, Name: w.Name, Anonymous: w.Anonymous, Parameters: params}, nil
}

func decodeVariableDeclaration(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Name             string          `json:"name"`
		Scope            NodeID          `json:"scope"`
		StateVariable    bool            `json:"stateVariable"`
		Constant         bool            `json:"constant"`
		Indexed          bool            `json:"indexed"`
		Visibility       Visibility      `json:"visibility"`
		StorageLocation  StorageLocation `json:"storageLocation"`
		TypeName         json.RawMessage `json:"typeName"`
		Value            json.RawMessage `json:"value"`
		TypeDescriptions struct {
			TypeString string `json:"typeString"`
		} `json:"typeDescriptions"`
		FunctionSelector string `json:"functionSelector"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode VariableDeclaration: %w", err)
	}
	tn, err := decodeTypeNamePtr(w.TypeName)
	if err != nil {
		return nil, err
	}
	val, err := decodeExpressionPtr(w.Value)
	if err != nil {
		return nil, err
	}
	return &VariableDeclaration{
		Regular: w.Regular, Name: w.Name, Scope: w.Scope, StateVariable: w.StateVariable,
		Constant: w.Constant, Indexed: w.Indexed, Visibility: w.Visibility, StorageLocation: w.StorageLocation,
		TypeName: tn, Value: val, TypeString: w.TypeDescriptions.TypeString, FunctionSelector: w.FunctionSelector,
	}, nil
}

func decodeParameterList(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Parameters []json.RawMessage `json:"parameters"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode ParameterList: %w", err)
	}
	params, err := decodeVariableDeclarationList(w.Parameters)
	if err != nil {
		return nil, err
	}
	return &ParameterList{Regular: w.Regular, Parameters: params}, nil
}

func decodeOverrideSpecifier(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Overrides []json.RawMessage `json:"overrides"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode OverrideSpecifier: %w", err)
	}
	var out []*IdentifierPath
	for _, o := range w.Overrides {
		p, err := decodeIdentifierPathPtr(o)
		if err != nil {
			return nil, err
		}
		if p != nil {
			out = append(out, p)
		}
	}
	return &OverrideSpecifier{Regular: w.Regular, Overrides: out}, nil
}

func decodeFunctionDefinition(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Name             string            `json:"name"`
		Kind             FunctionKind      `json:"kind"`
		Visibility       Visibility        `json:"visibility"`
		StateMutability  StateMutability   `json:"stateMutability"`
		Virtual          bool              `json:"virtual"`
		Implemented      bool              `json:"implemented"`
		Scope            NodeID            `json:"scope"`
		FunctionSelector string            `json:"functionSelector"`
		Modifiers        []json.RawMessage `json:"modifiers"`
		Parameters       json.RawMessage   `json:"parameters"`
		ReturnParameters json.RawMessage   `json:"returnParameters"`
		Overrides        json.RawMessage   `json:"overrides"`
		Body             json.RawMessage   `json:"body"`
		Documentation    json.RawMessage   `json:"documentation"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode FunctionDefinition: %w", err)
	}
	var mods []*ModifierInvocation
	for _, m := range w.Modifiers {
		n, err := DecodeNode(m)
		if err != nil {
			return nil, err
		}
		if mi, ok := n.(*ModifierInvocation); ok {
			mods = append(mods, mi)
		}
	}
	params, err := decodeParameterListPtr(w.Parameters)
	if err != nil {
		return nil, err
	}
	rets, err := decodeParameterListPtr(w.ReturnParameters)
	if err != nil {
		return nil, err
	}
	overrides, err := decodeOverrideSpecifierPtr(w.Overrides)
	if err != nil {
		return nil, err
	}
	body, err := decodeBlockPtr(w.Body)
	if err != nil {
		return nil, err
	}
	return &FunctionDefinition{
		Regular: w.Regular, Name: w.Name, FunctionKind: w.Kind, Visibility: w.Visibility,
		StateMutability: w.StateMutability, Virtual: w.Virtual, Implemented: w.Implemented, Scope: w.Scope,
		FunctionSelector: w.FunctionSelector, Modifiers: mods, Parameters: params, ReturnParameters: rets,
		Overrides: overrides, Body: body, Documentation: decodeDocText(w.Documentation),
	}, nil
}

func decodeModifierDefinition(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Name       string          `json:"name"`
		Visibility Visibility      `json:"visibility"`
		Virtual    bool            `json:"virtual"`
		Parameters json.RawMessage `json:"parameters"`
		Overrides  json.RawMessage `json:"overrides"`
		Body       json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode ModifierDefinition: %w", err)
	}
	params, err := decodeParameterListPtr(w.Parameters)
	if err != nil {
		return nil, err
	}
	overrides, err := decodeOverrideSpecifierPtr(w.Overrides)
	if err != nil {
		return nil, err
	}
	body, err := decodeBlockPtr(w.Body)
	if err != nil {
		return nil, err
	}
	return &ModifierDefinition{Regular: w.Regular, Name: w.Name, Visibility: w.Visibility, Virtual: w.Virtual, Parameters: params, Overrides: overrides, Body: body}, nil
}

func decodeModifierInvocation(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		ModifierName json.RawMessage   `json:"modifierName"`
		Arguments    []json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode ModifierInvocation: %w", err)
	}
	name, err := DecodeNode(w.ModifierName)
	if err != nil {
		return nil, err
	}
	args, err := decodeExpressionList(w.Arguments)
	if err != nil {
		return nil, err
	}
	return &ModifierInvocation{Regular: w.Regular, ModifierName: name, Arguments: args}, nil
}

func decodeUserDefinedValueTypeDefinition(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Name           string          `json:"name"`
		UnderlyingType json.RawMessage `json:"underlyingType"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode UserDefinedValueTypeDefinition: %w", err)
	}
	tn, err := decodeTypeNamePtr(w.UnderlyingType)
	if err != nil {
		return nil, err
	}
	return &UserDefinedValueTypeDefinition{Regular: w.Regular, Name: w.Name, UnderlyingType: tn}, nil
}

func decodeDocText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var doc struct {
		Text string `json:"text"`
	}
	if json.Unmarshal(raw, &doc) == nil {
		return doc.Text
	}
	return ""
}

// --- statements ---------------------------------------------------------

func decodeBlock(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Statements []json.RawMessage `json:"statements"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode Block: %w", err)
	}
	stmts, err := decodeStatementList(w.Statements)
	if err != nil {
		return nil, err
	}
	return &Block{Regular: w.Regular, Statements: stmts}, nil
}

func decodeUncheckedBlock(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Statements []json.RawMessage `json:"statements"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode UncheckedBlock: %w", err)
	}
	stmts, err := decodeStatementList(w.Statements)
	if err != nil {
		return nil, err
	}
	return &UncheckedBlock{Regular: w.Regular, Statements: stmts}, nil
}

func decodeExpressionStatement(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Expression json.RawMessage `json:"expression"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode ExpressionStatement: %w", err)
	}
	e, err := decodeExpressionPtr(w.Expression)
	if err != nil {
		return nil, err
	}
	return &ExpressionStatement{Regular: w.Regular, Expr: e}, nil
}

func decodeVariableDeclarationStatement(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Declarations []json.RawMessage `json:"declarations"`
		InitialValue json.RawMessage   `json:"initialValue"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode VariableDeclarationStatement: %w", err)
	}
	decls := make([]*VariableDeclaration, 0, len(w.Declarations))
	for _, d := range w.Declarations {
		if len(d) == 0 || string(d) == "null" {
			decls = append(decls, nil)
			continue
		}
		n, err := DecodeNode(d)
		if err != nil {
			return nil, err
		}
		vd, _ := n.(*VariableDeclaration)
		decls = append(decls, vd)
	}
	val, err := decodeExpressionPtr(w.InitialValue)
	if err != nil {
		return nil, err
	}
	return &VariableDeclarationStatement{Regular: w.Regular, Declarations: decls, InitialValue: val}, nil
}

func decodeIfStatement(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Condition  json.RawMessage `json:"condition"`
		TrueBody   json.RawMessage `json:"trueBody"`
		FalseBody  json.RawMessage `json:"falseBody"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode IfStatement: %w", err)
	}
	cond, err := decodeExpressionPtr(w.Condition)
	if err != nil {
		return nil, err
	}
	tb, err := decodeStatementPtr(w.TrueBody)
	if err != nil {
		return nil, err
	}
	fb, err := decodeStatementPtr(w.FalseBody)
	if err != nil {
		return nil, err
	}
	return &IfStatement{Regular: w.Regular, Condition: cond, TrueBody: tb, FalseBody: fb}, nil
}

func decodeForStatement(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		InitializationExpression json.RawMessage `json:"initializationExpression"`
		Condition                json.RawMessage `json:"condition"`
		LoopExpression           json.RawMessage `json:"loopExpression"`
		Body                     json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode ForStatement: %w", err)
	}
	initS, err := decodeStatementPtr(w.InitializationExpression)
	if err != nil {
		return nil, err
	}
	cond, err := decodeExpressionPtr(w.Condition)
	if err != nil {
		return nil, err
	}
	loopS, err := decodeStatementPtr(w.LoopExpression)
	if err != nil {
		return nil, err
	}
	body, err := decodeStatementPtr(w.Body)
	if err != nil {
		return nil, err
	}
	return &ForStatement{Regular: w.Regular, InitializationExpression: initS, Condition: cond, LoopExpression: loopS, Body: body}, nil
}

func decodeWhileStatement(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Condition json.RawMessage `json:"condition"`
		Body      json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode WhileStatement: %w", err)
	}
	cond, err := decodeExpressionPtr(w.Condition)
	if err != nil {
		return nil, err
	}
	body, err := decodeStatementPtr(w.Body)
	if err != nil {
		return nil, err
	}
	return &WhileStatement{Regular: w.Regular, Condition: cond, Body: body}, nil
}

func decodeDoWhileStatement(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Condition json.RawMessage `json:"condition"`
		Body      json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode DoWhileStatement: %w", err)
	}
	cond, err := decodeExpressionPtr(w.Condition)
	if err != nil {
		return nil, err
	}
	body, err := decodeStatementPtr(w.Body)
	if err != nil {
		return nil, err
	}
	return &DoWhileStatement{Regular: w.Regular, Condition: cond, Body: body}, nil
}

func decodeReturn(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Expression               json.RawMessage `json:"expression"`
		FunctionReturnParameters NodeID          `json:"functionReturnParameters"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode Return: %w", err)
	}
	e, err := decodeExpressionPtr(w.Expression)
	if err != nil {
		return nil, err
	}
	return &Return{Regular: w.Regular, Expr: e, FunctionReturnParameters: w.FunctionReturnParameters}, nil
}

func decodeEmitStatement(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		EventCall json.RawMessage `json:"eventCall"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode EmitStatement: %w", err)
	}
	n, err := DecodeNode(w.EventCall)
	if err != nil {
		return nil, err
	}
	fc, _ := n.(*FunctionCall)
	return &EmitStatement{Regular: w.Regular, EventCall: fc}, nil
}

func decodeRevertStatement(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		ErrorCall json.RawMessage `json:"errorCall"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode RevertStatement: %w", err)
	}
	n, err := DecodeNode(w.ErrorCall)
	if err != nil {
		return nil, err
	}
	fc, _ := n.(*FunctionCall)
	return &RevertStatement{Regular: w.Regular, ErrorCall: fc}, nil
}

func decodeTryStatement(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		ExternalCall json.RawMessage   `json:"externalCall"`
		Clauses      []json.RawMessage `json:"clauses"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode TryStatement: %w", err)
	}
	call, err := decodeExpressionPtr(w.ExternalCall)
	if err != nil {
		return nil, err
	}
	var clauses []*TryCatchClause
	for _, c := range w.Clauses {
		n, err := DecodeNode(c)
		if err != nil {
			return nil, err
		}
		if tc, ok := n.(*TryCatchClause); ok {
			clauses = append(clauses, tc)
		}
	}
	return &TryStatement{Regular: w.Regular, ExternalCall: call, Clauses: clauses}, nil
}

func decodeTryCatchClause(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		ErrorName  string          `json:"errorName"`
		Parameters json.RawMessage `json:"parameters"`
		Block      json.RawMessage `json:"block"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode TryCatchClause: %w", err)
	}
	params, err := decodeParameterListPtr(w.Parameters)
	if err != nil {
		return nil, err
	}
	block, err := decodeBlockPtr(w.Block)
	if err != nil {
		return nil, err
	}
	return &TryCatchClause{Regular: w.Regular, ErrorName: w.ErrorName, Parameters: params, Block: block}, nil
}

func decodeInlineAssembly(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		AST json.RawMessage `json:"AST"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode InlineAssembly: %w", err)
	}
	body, err := decodeYulBlockPtr(w.AST)
	if err != nil {
		return nil, err
	}
	return &InlineAssembly{Regular: w.Regular, Body: body}, nil
}

// --- expressions ----------------------------------------------------------

func decodeFunctionCall(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Kind            FunctionCallKind  `json:"kind"`
		Expression      json.RawMessage   `json:"expression"`
		Arguments       []json.RawMessage `json:"arguments"`
		Names           []string          `json:"names"`
		TryCall         bool              `json:"tryCall"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode FunctionCall: %w", err)
	}
	e, err := decodeExpressionPtr(w.Expression)
	if err != nil {
		return nil, err
	}
	args, err := decodeExpressionList(w.Arguments)
	if err != nil {
		return nil, err
	}
	return &FunctionCall{Regular: w.Regular, CallKind: w.Kind, Expr: e, Arguments: args, Names: w.Names, TryCall: w.TryCall}, nil
}

func decodeFunctionCallOptions(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Expression json.RawMessage   `json:"expression"`
		Options    []json.RawMessage `json:"options"`
		Names      []string          `json:"names"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode FunctionCallOptions: %w", err)
	}
	e, err := decodeExpressionPtr(w.Expression)
	if err != nil {
		return nil, err
	}
	opts, err := decodeExpressionList(w.Options)
	if err != nil {
		return nil, err
	}
	return &FunctionCallOptions{Regular: w.Regular, Expr: e, Options: opts, Names: w.Names}, nil
}

func decodeMemberAccess(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Expression            json.RawMessage `json:"expression"`
		MemberName            string          `json:"memberName"`
		ReferencedDeclaration NodeID          `json:"referencedDeclaration"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode MemberAccess: %w", err)
	}
	e, err := decodeExpressionPtr(w.Expression)
	if err != nil {
		return nil, err
	}
	return &MemberAccess{Regular: w.Regular, Expr: e, MemberName: w.MemberName, ReferencedDeclaration: w.ReferencedDeclaration}, nil
}

func decodeIndexAccess(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		BaseExpression  json.RawMessage `json:"baseExpression"`
		IndexExpression json.RawMessage `json:"indexExpression"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode IndexAccess: %w", err)
	}
	base, err := decodeExpressionPtr(w.BaseExpression)
	if err != nil {
		return nil, err
	}
	idx, err := decodeExpressionPtr(w.IndexExpression)
	if err != nil {
		return nil, err
	}
	return &IndexAccess{Regular: w.Regular, Base: base, Index: idx}, nil
}

func decodeIndexRangeAccess(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		BaseExpression  json.RawMessage `json:"baseExpression"`
		StartExpression json.RawMessage `json:"startExpression"`
		EndExpression   json.RawMessage `json:"endExpression"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode IndexRangeAccess: %w", err)
	}
	base, err := decodeExpressionPtr(w.BaseExpression)
	if err != nil {
		return nil, err
	}
	start, err := decodeExpressionPtr(w.StartExpression)
	if err != nil {
		return nil, err
	}
	end, err := decodeExpressionPtr(w.EndExpression)
	if err != nil {
		return nil, err
	}
	return &IndexRangeAccess{Regular: w.Regular, Base: base, StartExpression: start, EndExpression: end}, nil
}

func decodeLiteral(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Kind            LiteralKind `json:"kind"`
		Value           string      `json:"value"`
		Subdenomination string      `json:"subdenomination"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode Literal: %w", err)
	}
	return &Literal{Regular: w.Regular, LiteralKind: w.Kind, Value: w.Value, Subdenomination: w.Subdenomination}, nil
}

func decodeAssignment(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Operator      string          `json:"operator"`
		LeftHandSide  json.RawMessage `json:"leftHandSide"`
		RightHandSide json.RawMessage `json:"rightHandSide"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode Assignment: %w", err)
	}
	lhs, err := decodeExpressionPtr(w.LeftHandSide)
	if err != nil {
		return nil, err
	}
	rhs, err := decodeExpressionPtr(w.RightHandSide)
	if err != nil {
		return nil, err
	}
	return &Assignment{Regular: w.Regular, Operator: w.Operator, LeftHandSide: lhs, RightHandSide: rhs}, nil
}

func decodeBinaryOperation(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Operator        string          `json:"operator"`
		LeftExpression  json.RawMessage `json:"leftExpression"`
		RightExpression json.RawMessage `json:"rightExpression"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode BinaryOperation: %w", err)
	}
	l, err := decodeExpressionPtr(w.LeftExpression)
	if err != nil {
		return nil, err
	}
	r, err := decodeExpressionPtr(w.RightExpression)
	if err != nil {
		return nil, err
	}
	return &BinaryOperation{Regular: w.Regular, Operator: w.Operator, LeftExpression: l, RightExpression: r}, nil
}

func decodeUnaryOperation(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Operator      string          `json:"operator"`
		Prefix        bool            `json:"prefix"`
		SubExpression json.RawMessage `json:"subExpression"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode UnaryOperation: %w", err)
	}
	sub, err := decodeExpressionPtr(w.SubExpression)
	if err != nil {
		return nil, err
	}
	return &UnaryOperation{Regular: w.Regular, Operator: w.Operator, Prefix: w.Prefix, SubExpression: sub}, nil
}

func decodeConditional(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Condition       json.RawMessage `json:"condition"`
		TrueExpression  json.RawMessage `json:"trueExpression"`
		FalseExpression json.RawMessage `json:"falseExpression"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode Conditional: %w", err)
	}
	cond, err := decodeExpressionPtr(w.Condition)
	if err != nil {
		return nil, err
	}
	t, err := decodeExpressionPtr(w.TrueExpression)
	if err != nil {
		return nil, err
	}
	f, err := decodeExpressionPtr(w.FalseExpression)
	if err != nil {
		return nil, err
	}
	return &Conditional{Regular: w.Regular, Condition: cond, TrueExpression: t, FalseExpression: f}, nil
}

func decodeElementaryTypeNameExpression(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		TypeName json.RawMessage `json:"typeName"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode ElementaryTypeNameExpression: %w", err)
	}
	tn, err := decodeTypeNamePtr(w.TypeName)
	if err != nil {
		return nil, err
	}
	return &ElementaryTypeNameExpression{Regular: w.Regular, TypeName: tn}, nil
}

func decodeNewExpression(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		TypeName json.RawMessage `json:"typeName"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode NewExpression: %w", err)
	}
	tn, err := decodeTypeNamePtr(w.TypeName)
	if err != nil {
		return nil, err
	}
	return &NewExpression{Regular: w.Regular, TypeName: tn}, nil
}

func decodeTupleExpression(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Components    []json.RawMessage `json:"components"`
		IsInlineArray bool              `json:"isInlineArray"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode TupleExpression: %w", err)
	}
	comps := make([]Expression, 0, len(w.Components))
	for _, c := range w.Components {
		e, err := decodeExpressionPtr(c)
		if err != nil {
			return nil, err
		}
		comps = append(comps, e)
	}
	return &TupleExpression{Regular: w.Regular, Components: comps, IsInlineArray: w.IsInlineArray}, nil
}

// --- type names -----------------------------------------------------------

func decodeUserDefinedTypeName(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Name                  string          `json:"name"`
		ReferencedDeclaration NodeID          `json:"referencedDeclaration"`
		PathNode              json.RawMessage `json:"pathNode"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode UserDefinedTypeName: %w", err)
	}
	path, err := decodeIdentifierPathPtr(w.PathNode)
	if err != nil {
		return nil, err
	}
	return &UserDefinedTypeName{Regular: w.Regular, Name: w.Name, ReferencedDeclaration: w.ReferencedDeclaration, PathNode: path}, nil
}

func decodeArrayTypeName(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		BaseType json.RawMessage `json:"baseType"`
		Length   json.RawMessage `json:"length"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode ArrayTypeName: %w", err)
	}
	bt, err := decodeTypeNamePtr(w.BaseType)
	if err != nil {
		return nil, err
	}
	length, err := decodeExpressionPtr(w.Length)
	if err != nil {
		return nil, err
	}
	return &ArrayTypeName{Regular: w.Regular, BaseType: bt, Length: length}, nil
}

func decodeMapping(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		KeyType   json.RawMessage `json:"keyType"`
		ValueType json.RawMessage `json:"valueType"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode Mapping: %w", err)
	}
	k, err := decodeTypeNamePtr(w.KeyType)
	if err != nil {
		return nil, err
	}
	v, err := decodeTypeNamePtr(w.ValueType)
	if err != nil {
		return nil, err
	}
	return &Mapping{Regular: w.Regular, KeyType: k, ValueType: v}, nil
}

func decodeFunctionTypeName(raw json.RawMessage) (Node, error) {
	var w struct {
		Regular
		Visibility       Visibility      `json:"visibility"`
		StateMutability  StateMutability `json:"stateMutability"`
		Parameters       json.RawMessage `json:"parameterTypes"`
		ReturnParameters json.RawMessage `json:"returnParameterTypes"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("ast: decode FunctionTypeName: %w", err)
	}
	params, err := decodeParameterListPtr(w.Parameters)
	if err != nil {
		return nil, err
	}
	rets, err := decodeParameterListPtr(w.ReturnParameters)
	if err != nil {
		return nil, err
	}
	return &FunctionTypeName{Regular: w.Regular, Visibility: w.Visibility, StateMutability: w.StateMutability, Parameters: params, ReturnParameters: rets}, nil
}

// --- Yul --------------------------------------------------------------

func decodeYulBlockPtr(raw json.RawMessage) (*YulBlock, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	n, err := decodeYulNode(raw)
	if err != nil {
		return nil, err
	}
	b, _ := n.(*YulBlock)
	return b, nil
}

// decodeYulNode mirrors DecodeNode for the Yul node set, which the
// compiler tags with its own nodeType vocabulary nested under "AST".
func decodeYulNode(raw json.RawMessage) (Node, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var env rawEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("ast: decode yul envelope: %w", err)
	}
	switch NodeKind(env.NodeType) {
	case KindYulBlock:
		var w struct {
			YulBase
			Statements []json.RawMessage `json:"statements"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		stmts := make([]YulStatementNode, 0, len(w.Statements))
		for _, s := range w.Statements {
			n, err := decodeYulNode(s)
			if err != nil {
				return nil, err
			}
			if ys, ok := n.(YulStatementNode); ok {
				stmts = append(stmts, ys)
			}
		}
		return &YulBlock{YulBase: w.YulBase, Statements: stmts}, nil

	case KindYulLiteral:
		var w struct {
			YulBase
			Value string `json:"value"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &YulLiteral{YulBase: w.YulBase, Value: w.Value}, nil

	case KindYulIdentifier:
		var w struct {
			YulBase
			Name string `json:"name"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &YulIdentifier{YulBase: w.YulBase, Name: w.Name}, nil

	case KindYulFunctionCall:
		var w struct {
			YulBase
			FunctionName json.RawMessage   `json:"functionName"`
			Arguments    []json.RawMessage `json:"arguments"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		fn, err := decodeYulNode(w.FunctionName)
		if err != nil {
			return nil, err
		}
		fnIdent, _ := fn.(*YulIdentifier)
		args := make([]YulExpressionNode, 0, len(w.Arguments))
		for _, a := range w.Arguments {
			n, err := decodeYulNode(a)
			if err != nil {
				return nil, err
			}
			if ye, ok := n.(YulExpressionNode); ok {
				args = append(args, ye)
			}
		}
		return &YulFunctionCall{YulBase: w.YulBase, FunctionName: fnIdent, Arguments: args}, nil

	case KindYulIf:
		var w struct {
			YulBase
			Condition json.RawMessage `json:"condition"`
			Body      json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		cond, err := decodeYulExpressionPtr(w.Condition)
		if err != nil {
			return nil, err
		}
		body, err := decodeYulBlockPtr(w.Body)
		if err != nil {
			return nil, err
		}
		return &YulIf{YulBase: w.YulBase, Condition: cond, Body: body}, nil

	case KindYulSwitch:
		var w struct {
			YulBase
			Expression json.RawMessage   `json:"expression"`
			Cases      []json.RawMessage `json:"cases"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		expr, err := decodeYulExpressionPtr(w.Expression)
		if err != nil {
			return nil, err
		}
		var cases []*YulCase
		for _, c := range w.Cases {
			n, err := decodeYulNode(c)
			if err != nil {
				return nil, err
			}
			if yc, ok := n.(*YulCase); ok {
				cases = append(cases, yc)
			}
		}
		return &YulSwitch{YulBase: w.YulBase, Expr: expr, Cases: cases}, nil

	case KindYulCase:
		var w struct {
			YulBase
			Value json.RawMessage `json:"value"`
			Body  json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		var lit *YulLiteral
		if len(w.Value) > 0 && string(w.Value) != "null" && string(w.Value) != `"default"` {
			n, err := decodeYulNode(w.Value)
			if err != nil {
				return nil, err
			}
			lit, _ = n.(*YulLiteral)
		}
		body, err := decodeYulBlockPtr(w.Body)
		if err != nil {
			return nil, err
		}
		return &YulCase{YulBase: w.YulBase, Value: lit, Body: body}, nil

	case KindYulForLoop:
		var w struct {
			YulBase
			Pre       json.RawMessage `json:"pre"`
			Condition json.RawMessage `json:"condition"`
			Post      json.RawMessage `json:"post"`
			Body      json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		pre, err := decodeYulBlockPtr(w.Pre)
		if err != nil {
			return nil, err
		}
		cond, err := decodeYulExpressionPtr(w.Condition)
		if err != nil {
			return nil, err
		}
		post, err := decodeYulBlockPtr(w.Post)
		if err != nil {
			return nil, err
		}
		body, err := decodeYulBlockPtr(w.Body)
		if err != nil {
			return nil, err
		}
		return &YulForLoop{YulBase: w.YulBase, Pre: pre, Condition: cond, Post: post, Body: body}, nil

	case KindYulAssignment:
		var w struct {
			YulBase
			VariableNames []json.RawMessage `json:"variableNames"`
			Value         json.RawMessage   `json:"value"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		var names []*YulIdentifier
		for _, v := range w.VariableNames {
			n, err := decodeYulNode(v)
			if err != nil {
				return nil, err
			}
			if id, ok := n.(*YulIdentifier); ok {
				names = append(names, id)
			}
		}
		val, err := decodeYulExpressionPtr(w.Value)
		if err != nil {
			return nil, err
		}
		return &YulAssignment{YulBase: w.YulBase, VariableNames: names, Value: val}, nil

	case KindYulVariableDeclaration:
		var w struct {
			YulBase
			Variables []json.RawMessage `json:"variables"`
			Value     json.RawMessage   `json:"value"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		var vars []*YulTypedName
		for _, v := range w.Variables {
			n, err := decodeYulNode(v)
			if err != nil {
				return nil, err
			}
			if tn, ok := n.(*YulTypedName); ok {
				vars = append(vars, tn)
			}
		}
		val, err := decodeYulExpressionPtr(w.Value)
		if err != nil {
			return nil, err
		}
		return &YulVariableDeclaration{YulBase: w.YulBase, Variables: vars, Value: val}, nil

	case KindYulTypedName:
		var w struct {
			YulBase
			Name string `json:"name"`
			Type string `json:"type"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &YulTypedName{YulBase: w.YulBase, Name: w.Name, Type: w.Type}, nil

	case KindYulExpressionStatement:
		var w struct {
			YulBase
			Expression json.RawMessage `json:"expression"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		expr, err := decodeYulExpressionPtr(w.Expression)
		if err != nil {
			return nil, err
		}
		return &YulExpressionStatement{YulBase: w.YulBase, Expr: expr}, nil

	case KindYulFunctionDefinition:
		var w struct {
			YulBase
			Name            string            `json:"name"`
			Parameters      []json.RawMessage `json:"parameters"`
			ReturnVariables []json.RawMessage `json:"returnVariables"`
			Body            json.RawMessage   `json:"body"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		params := make([]*YulTypedName, 0, len(w.Parameters))
		for _, p := range w.Parameters {
			n, err := decodeYulNode(p)
			if err != nil {
				return nil, err
			}
			if tn, ok := n.(*YulTypedName); ok {
				params = append(params, tn)
			}
		}
		rets := make([]*YulTypedName, 0, len(w.ReturnVariables))
		for _, r := range w.ReturnVariables {
			n, err := decodeYulNode(r)
			if err != nil {
				return nil, err
			}
			if tn, ok := n.(*YulTypedName); ok {
				rets = append(rets, tn)
			}
		}
		body, err := decodeYulBlockPtr(w.Body)
		if err != nil {
			return nil, err
		}
		return &YulFunctionDefinition{YulBase: w.YulBase, Name: w.Name, Parameters: params, ReturnVariables: rets, Body: body}, nil

	case KindYulLeave:
		var w struct{ YulBase }
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &YulLeave{YulBase: w.YulBase}, nil

	case KindYulBreak:
		var w struct{ YulBase }
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &YulBreak{YulBase: w.YulBase}, nil

	case KindYulContinue:
		var w struct{ YulBase }
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &YulContinue{YulBase: w.YulBase}, nil

	default:
		return nil, nil
	}
}

func decodeYulExpressionPtr(raw json.RawMessage) (YulExpressionNode, error) {
	n, err := decodeYulNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	e, _ := n.(YulExpressionNode)
	return e, nil
}

// --- shared decode helpers -------------------------------------------------

func decodeNodeList(raw []json.RawMessage) ([]Node, error) {
	out := make([]Node, 0, len(raw))
	for _, r := range raw {
		n, err := DecodeNode(r)
		if err != nil {
			return nil, err
		}
		if n != nil {
			out = append(out, n)
		}
	}
	return out, nil
}

func decodeExpressionPtr(raw json.RawMessage) (Expression, error) {
	n, err := DecodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	e, _ := n.(Expression)
	return e, nil
}

func decodeExpressionList(raw []json.RawMessage) ([]Expression, error) {
	out := make([]Expression, 0, len(raw))
	for _, r := range raw {
		e, err := decodeExpressionPtr(r)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func decodeStatementPtr(raw json.RawMessage) (Statement, error) {
	n, err := DecodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	s, _ := n.(Statement)
	return s, nil
}

func decodeStatementList(raw []json.RawMessage) ([]Statement, error) {
	out := make([]Statement, 0, len(raw))
	for _, r := range raw {
		s, err := decodeStatementPtr(r)
		if err != nil {
			return nil, err
		}
		if s != nil {
			out = append(out, s)
		}
	}
	return out, nil
}

func decodeTypeNamePtr(raw json.RawMessage) (TypeName, error) {
	n, err := DecodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	t, _ := n.(TypeName)
	return t, nil
}

func decodeIdentifierPathPtr(raw json.RawMessage) (*IdentifierPath, error) {
	n, err := DecodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	p, _ := n.(*IdentifierPath)
	return p, nil
}

func decodeParameterListPtr(raw json.RawMessage) (*ParameterList, error) {
	n, err := DecodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	p, _ := n.(*ParameterList)
	return p, nil
}

func decodeOverrideSpecifierPtr(raw json.RawMessage) (*OverrideSpecifier, error) {
	n, err := DecodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	o, _ := n.(*OverrideSpecifier)
	return o, nil
}

func decodeBlockPtr(raw json.RawMessage) (*Block, error) {
	n, err := DecodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	b, _ := n.(*Block)
	return b, nil
}

func decodeVariableDeclarationList(raw []json.RawMessage) ([]*VariableDeclaration, error) {
	out := make([]*VariableDeclaration, 0, len(raw))
	for _, r := range raw {
		n, err := DecodeNode(r)
		if err != nil {
			return nil, err
		}
		if vd, ok := n.(*VariableDeclaration); ok {
			out = append(out, vd)
		}
	}
	return out, nil
}
