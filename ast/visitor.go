package ast

// Visitor is implemented by anything that wants to walk the tree built by
// this package. Each concrete node kind gets a pre-order VisitX hook,
// returning whether Walk should recurse into that node's children, and a
// post-order EndVisitX hook. This mirrors the teacher's per-kind dispatch
// idiom, generalized to the full node set (§4.2).
//
// Embed BaseVisitor to pick up no-op defaults for every hook you don't
// care about, the way Go's own go/ast.Visitor callers embed nothing but
// implement Visit — except here the per-kind granularity matches the
// protocol's requirement that a detector override only the hooks its
// pattern needs.
type Visitor interface {
	VisitSourceUnit(n *SourceUnit) (bool, error)
	EndVisitSourceUnit(n *SourceUnit) error
	VisitPragmaDirective(n *PragmaDirective) (bool, error)
	EndVisitPragmaDirective(n *PragmaDirective) error
	VisitImportDirective(n *ImportDirective) (bool, error)
	EndVisitImportDirective(n *ImportDirective) error
	VisitInheritanceSpecifier(n *InheritanceSpecifier) (bool, error)
	EndVisitInheritanceSpecifier(n *InheritanceSpecifier) error
	VisitUsingForDirective(n *UsingForDirective) (bool, error)
	EndVisitUsingForDirective(n *UsingForDirective) error
	VisitContractDefinition(n *ContractDefinition) (bool, error)
	EndVisitContractDefinition(n *ContractDefinition) error
	VisitStructDefinition(n *StructDefinition) (bool, error)
	EndVisitStructDefinition(n *StructDefinition) error
	VisitEnumDefinition(n *EnumDefinition) (bool, error)
	EndVisitEnumDefinition(n *EnumDefinition) error
	VisitEnumValue(n *EnumValue) (bool, error)
	EndVisitEnumValue(n *EnumValue) error
	VisitErrorDefinition(n *ErrorDefinition) (bool, error)
	EndVisitErrorDefinition(n *ErrorDefinition) error
	VisitEventDefinition(n *EventDefinition) (bool, error)
	EndVisitEventDefinition(n *EventDefinition) error
	VisitVariableDeclaration(n *VariableDeclaration) (bool, error)
	EndVisitVariableDeclaration(n *VariableDeclaration) error
	VisitParameterList(n *ParameterList) (bool, error)
	EndVisitParameterList(n *ParameterList) error
	VisitOverrideSpecifier(n *OverrideSpecifier) (bool, error)
	EndVisitOverrideSpecifier(n *OverrideSpecifier) error
	VisitFunctionDefinition(n *FunctionDefinition) (bool, error)
	EndVisitFunctionDefinition(n *FunctionDefinition) error
	VisitModifierDefinition(n *ModifierDefinition) (bool, error)
	EndVisitModifierDefinition(n *ModifierDefinition) error
	VisitModifierInvocation(n *ModifierInvocation) (bool, error)
	EndVisitModifierInvocation(n *ModifierInvocation) error
	VisitUserDefinedValueTypeDefinition(n *UserDefinedValueTypeDefinition) (bool, error)
	EndVisitUserDefinedValueTypeDefinition(n *UserDefinedValueTypeDefinition) error
	VisitStructuredDocumentation(n *StructuredDocumentation) (bool, error)
	EndVisitStructuredDocumentation(n *StructuredDocumentation) error

	VisitBlock(n *Block) (bool, error)
	EndVisitBlock(n *Block) error
	VisitUncheckedBlock(n *UncheckedBlock) (bool, error)
	EndVisitUncheckedBlock(n *UncheckedBlock) error
	VisitExpressionStatement(n *ExpressionStatement) (bool, error)
	EndVisitExpressionStatement(n *ExpressionStatement) error
	VisitVariableDeclarationStatement(n *VariableDeclarationStatement) (bool, error)
	EndVisitVariableDeclarationStatement(n *VariableDeclarationStatement) error
	VisitIfStatement(n *IfStatement) (bool, error)
	EndVisitIfStatement(n *IfStatement) error
	VisitForStatement(n *ForStatement) (bool, error)
	EndVisitForStatement(n *ForStatement) error
	VisitWhileStatement(n *WhileStatement) (bool, error)
	EndVisitWhileStatement(n *WhileStatement) error
	VisitDoWhileStatement(n *DoWhileStatement) (bool, error)
	EndVisitDoWhileStatement(n *DoWhileStatement) error
	VisitReturn(n *Return) (bool, error)
	EndVisitReturn(n *Return) error
	VisitBreak(n *Break) (bool, error)
	EndVisitBreak(n *Break) error
	VisitContinue(n *Continue) (bool, error)
	EndVisitContinue(n *Continue) error
	VisitPlaceholderStatement(n *PlaceholderStatement) (bool, error)
	EndVisitPlaceholderStatement(n *PlaceholderStatement) error
	VisitEmitStatement(n *EmitStatement) (bool, error)
	EndVisitEmitStatement(n *EmitStatement) error
	VisitRevertStatement(n *RevertStatement) (bool, error)
	EndVisitRevertStatement(n *RevertStatement) error
	VisitTryStatement(n *TryStatement) (bool, error)
	EndVisitTryStatement(n *TryStatement) error
	VisitTryCatchClause(n *TryCatchClause) (bool, error)
	EndVisitTryCatchClause(n *TryCatchClause) error
	VisitInlineAssembly(n *InlineAssembly) (bool, error)
	EndVisitInlineAssembly(n *InlineAssembly) error

	VisitFunctionCall(n *FunctionCall) (bool, error)
	EndVisitFunctionCall(n *FunctionCall) error
	VisitFunctionCallOptions(n *FunctionCallOptions) (bool, error)
	EndVisitFunctionCallOptions(n *FunctionCallOptions) error
	VisitMemberAccess(n *MemberAccess) (bool, error)
	EndVisitMemberAccess(n *MemberAccess) error
	VisitIndexAccess(n *IndexAccess) (bool, error)
	EndVisitIndexAccess(n *IndexAccess) error
	VisitIndexRangeAccess(n *IndexRangeAccess) (bool, error)
	EndVisitIndexRangeAccess(n *IndexRangeAccess) error
	VisitIdentifier(n *Identifier) (bool, error)
	EndVisitIdentifier(n *Identifier) error
	VisitIdentifierPath(n *IdentifierPath) (bool, error)
	EndVisitIdentifierPath(n *IdentifierPath) error
	VisitLiteral(n *Literal) (bool, error)
	EndVisitLiteral(n *Literal) error
	VisitAssignment(n *Assignment) (bool, error)
	EndVisitAssignment(n *Assignment) error
	VisitBinaryOperation(n *BinaryOperation) (bool, error)
	EndVisitBinaryOperation(n *BinaryOperation) error
	VisitUnaryOperation(n *UnaryOperation) (bool, error)
	EndVisitUnaryOperation(n *UnaryOperation) error
	VisitConditional(n *Conditional) (bool, error)
	EndVisitConditional(n *Conditional) error
	VisitElementaryTypeNameExpression(n *ElementaryTypeNameExpression) (bool, error)
	EndVisitElementaryTypeNameExpression(n *ElementaryTypeNameExpression) error
	VisitNewExpression(n *NewExpression) (bool, error)
	EndVisitNewExpression(n *NewExpression) error
	VisitTupleExpression(n *TupleExpression) (bool, error)
	EndVisitTupleExpression(n *TupleExpression) error

	VisitElementaryTypeName(n *ElementaryTypeName) (bool, error)
	EndVisitElementaryTypeName(n *ElementaryTypeName) error
	VisitUserDefinedTypeName(n *UserDefinedTypeName) (bool, error)
	EndVisitUserDefinedTypeName(n *UserDefinedTypeName) error
	VisitArrayTypeName(n *ArrayTypeName) (bool, error)
	EndVisitArrayTypeName(n *ArrayTypeName) error
	VisitMapping(n *Mapping) (bool, error)
	EndVisitMapping(n *Mapping) error
	VisitFunctionTypeName(n *FunctionTypeName) (bool, error)
	EndVisitFunctionTypeName(n *FunctionTypeName) error

	VisitYulBlock(n *YulBlock) (bool, error)
	EndVisitYulBlock(n *YulBlock) error
	VisitYulLiteral(n *YulLiteral) (bool, error)
	EndVisitYulLiteral(n *YulLiteral) error
	VisitYulIdentifier(n *YulIdentifier) (bool, error)
	EndVisitYulIdentifier(n *YulIdentifier) error
	VisitYulFunctionCall(n *YulFunctionCall) (bool, error)
	EndVisitYulFunctionCall(n *YulFunctionCall) error
	VisitYulIf(n *YulIf) (bool, error)
	EndVisitYulIf(n *YulIf) error
	VisitYulSwitch(n *YulSwitch) (bool, error)
	EndVisitYulSwitch(n *YulSwitch) error
	VisitYulCase(n *YulCase) (bool, error)
	EndVisitYulCase(n *YulCase) error
	VisitYulForLoop(n *YulForLoop) (bool, error)
	EndVisitYulForLoop(n *YulForLoop) error
	VisitYulAssignment(n *YulAssignment) (bool, error)
	EndVisitYulAssignment(n *YulAssignment) error
	VisitYulVariableDeclaration(n *YulVariableDeclaration) (bool, error)
	EndVisitYulVariableDeclaration(n *YulVariableDeclaration) error
	VisitYulTypedName(n *YulTypedName) (bool, error)
	EndVisitYulTypedName(n *YulTypedName) error
	VisitYulExpressionStatement(n *YulExpressionStatement) (bool, error)
	EndVisitYulExpressionStatement(n *YulExpressionStatement) error
	VisitYulFunctionDefinition(n *YulFunctionDefinition) (bool, error)
	EndVisitYulFunctionDefinition(n *YulFunctionDefinition) error
	VisitYulLeave(n *YulLeave) (bool, error)
	EndVisitYulLeave(n *YulLeave) error
	VisitYulBreak(n *YulBreak) (bool, error)
	EndVisitYulBreak(n *YulBreak) error
	VisitYulContinue(n *YulContinue) (bool, error)
	EndVisitYulContinue(n *YulContinue) error

	VisitGeneric(n *Generic) (bool, error)
	EndVisitGeneric(n *Generic) error

	// VisitImmediateChildren is delivered once per node that has children
	// and whose VisitX returned true, before any of those children are
	// visited, with the node kind erased — the single hook a
	// detector needs to build a parent/child index without implementing
	// every VisitX (§4.2 step "immediate children").
	VisitImmediateChildren(parent Node, children []Node) error
}

// BaseVisitor implements Visitor with no-op defaults: VisitX hooks return
// (true, nil), recursing into children by default, and EndVisitX hooks
// return nil. Embed it and override only the hooks a detector's pattern
// actually needs.
type BaseVisitor struct{}

func (BaseVisitor) VisitSourceUnit(*SourceUnit) (bool, error)   { return true, nil }
func (BaseVisitor) EndVisitSourceUnit(*SourceUnit) error        { return nil }
func (BaseVisitor) VisitPragmaDirective(*PragmaDirective) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitPragmaDirective(*PragmaDirective) error      { return nil }
func (BaseVisitor) VisitImportDirective(*ImportDirective) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitImportDirective(*ImportDirective) error      { return nil }
func (BaseVisitor) VisitInheritanceSpecifier(*InheritanceSpecifier) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitInheritanceSpecifier(*InheritanceSpecifier) error      { return nil }
func (BaseVisitor) VisitUsingForDirective(*UsingForDirective) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitUsingForDirective(*UsingForDirective) error      { return nil }
func (BaseVisitor) VisitContractDefinition(*ContractDefinition) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitContractDefinition(*ContractDefinition) error      { return nil }
func (BaseVisitor) VisitStructDefinition(*StructDefinition) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitStructDefinition(*StructDefinition) error      { return nil }
func (BaseVisitor) VisitEnumDefinition(*EnumDefinition) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitEnumDefinition(*EnumDefinition) error      { return nil }
func (BaseVisitor) VisitEnumValue(*EnumValue) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitEnumValue(*EnumValue) error      { return nil }
func (BaseVisitor) VisitErrorDefinition(*ErrorDefinition) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitErrorDefinition(*ErrorDefinition) error      { return nil }
func (BaseVisitor) VisitEventDefinition(*EventDefinition) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitEventDefinition(*EventDefinition) error      { return nil }
func (BaseVisitor) VisitVariableDeclaration(*VariableDeclaration) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitVariableDeclaration(*VariableDeclaration) error      { return nil }
func (BaseVisitor) VisitParameterList(*ParameterList) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitParameterList(*ParameterList) error      { return nil }
func (BaseVisitor) VisitOverrideSpecifier(*OverrideSpecifier) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitOverrideSpecifier(*OverrideSpecifier) error      { return nil }
func (BaseVisitor) VisitFunctionDefinition(*FunctionDefinition) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitFunctionDefinition(*FunctionDefinition) error      { return nil }
func (BaseVisitor) VisitModifierDefinition(*ModifierDefinition) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitModifierDefinition(*ModifierDefinition) error      { return nil }
func (BaseVisitor) VisitModifierInvocation(*ModifierInvocation) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitModifierInvocation(*ModifierInvocation) error      { return nil }
func (BaseVisitor) VisitUserDefinedValueTypeDefinition(*UserDefinedValueTypeDefinition) (bool, error) {
	return true, nil
}
func (BaseVisitor) EndVisitUserDefinedValueTypeDefinition(*UserDefinedValueTypeDefinition) error {
	return nil
}
func (BaseVisitor) VisitStructuredDocumentation(*StructuredDocumentation) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitStructuredDocumentation(*StructuredDocumentation) error      { return nil }

func (BaseVisitor) VisitBlock(*Block) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitBlock(*Block) error      { return nil }
func (BaseVisitor) VisitUncheckedBlock(*UncheckedBlock) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitUncheckedBlock(*UncheckedBlock) error      { return nil }
func (BaseVisitor) VisitExpressionStatement(*ExpressionStatement) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitExpressionStatement(*ExpressionStatement) error      { return nil }
func (BaseVisitor) VisitVariableDeclarationStatement(*VariableDeclarationStatement) (bool, error) {
	return true, nil
}
func (BaseVisitor) EndVisitVariableDeclarationStatement(*VariableDeclarationStatement) error {
	return nil
}
func (BaseVisitor) VisitIfStatement(*IfStatement) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitIfStatement(*IfStatement) error      { return nil }
func (BaseVisitor) VisitForStatement(*ForStatement) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitForStatement(*ForStatement) error      { return nil }
func (BaseVisitor) VisitWhileStatement(*WhileStatement) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitWhileStatement(*WhileStatement) error      { return nil }
func (BaseVisitor) VisitDoWhileStatement(*DoWhileStatement) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitDoWhileStatement(*DoWhileStatement) error      { return nil }
func (BaseVisitor) VisitReturn(*Return) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitReturn(*Return) error      { return nil }
func (BaseVisitor) VisitBreak(*Break) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitBreak(*Break) error      { return nil }
func (BaseVisitor) VisitContinue(*Continue) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitContinue(*Continue) error      { return nil }
func (BaseVisitor) VisitPlaceholderStatement(*PlaceholderStatement) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitPlaceholderStatement(*PlaceholderStatement) error      { return nil }
func (BaseVisitor) VisitEmitStatement(*EmitStatement) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitEmitStatement(*EmitStatement) error      { return nil }
func (BaseVisitor) VisitRevertStatement(*RevertStatement) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitRevertStatement(*RevertStatement) error      { return nil }
func (BaseVisitor) VisitTryStatement(*TryStatement) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitTryStatement(*TryStatement) error      { return nil }
func (BaseVisitor) VisitTryCatchClause(*TryCatchClause) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitTryCatchClause(*TryCatchClause) error      { return nil }
func (BaseVisitor) VisitInlineAssembly(*InlineAssembly) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitInlineAssembly(*InlineAssembly) error      { return nil }

func (BaseVisitor) VisitFunctionCall(*FunctionCall) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitFunctionCall(*FunctionCall) error      { return nil }
func (BaseVisitor) VisitFunctionCallOptions(*FunctionCallOptions) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitFunctionCallOptions(*FunctionCallOptions) error      { return nil }
func (BaseVisitor) VisitMemberAccess(*MemberAccess) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitMemberAccess(*MemberAccess) error      { return nil }
func (BaseVisitor) VisitIndexAccess(*IndexAccess) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitIndexAccess(*IndexAccess) error      { return nil }
func (BaseVisitor) VisitIndexRangeAccess(*IndexRangeAccess) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitIndexRangeAccess(*IndexRangeAccess) error      { return nil }
func (BaseVisitor) VisitIdentifier(*Identifier) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitIdentifier(*Identifier) error      { return nil }
func (BaseVisitor) VisitIdentifierPath(*IdentifierPath) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitIdentifierPath(*IdentifierPath) error      { return nil }
func (BaseVisitor) VisitLiteral(*Literal) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitLiteral(*Literal) error      { return nil }
func (BaseVisitor) VisitAssignment(*Assignment) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitAssignment(*Assignment) error      { return nil }
func (BaseVisitor) VisitBinaryOperation(*BinaryOperation) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitBinaryOperation(*BinaryOperation) error      { return nil }
func (BaseVisitor) VisitUnaryOperation(*UnaryOperation) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitUnaryOperation(*UnaryOperation) error      { return nil }
func (BaseVisitor) VisitConditional(*Conditional) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitConditional(*Conditional) error      { return nil }
func (BaseVisitor) VisitElementaryTypeNameExpression(*ElementaryTypeNameExpression) (bool, error) {
	return true, nil
}
func (BaseVisitor) EndVisitElementaryTypeNameExpression(*ElementaryTypeNameExpression) error {
	return nil
}
func (BaseVisitor) VisitNewExpression(*NewExpression) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitNewExpression(*NewExpression) error      { return nil }
func (BaseVisitor) VisitTupleExpression(*TupleExpression) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitTupleExpression(*TupleExpression) error      { return nil }

func (BaseVisitor) VisitElementaryTypeName(*ElementaryTypeName) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitElementaryTypeName(*ElementaryTypeName) error      { return nil }
func (BaseVisitor) VisitUserDefinedTypeName(*UserDefinedTypeName) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitUserDefinedTypeName(*UserDefinedTypeName) error      { return nil }
func (BaseVisitor) VisitArrayTypeName(*ArrayTypeName) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitArrayTypeName(*ArrayTypeName) error      { return nil }
func (BaseVisitor) VisitMapping(*Mapping) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitMapping(*Mapping) error      { return nil }
func (BaseVisitor) VisitFunctionTypeName(*FunctionTypeName) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitFunctionTypeName(*FunctionTypeName) error      { return nil }

func (BaseVisitor) VisitYulBlock(*YulBlock) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitYulBlock(*YulBlock) error      { return nil }
func (BaseVisitor) VisitYulLiteral(*YulLiteral) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitYulLiteral(*YulLiteral) error      { return nil }
func (BaseVisitor) VisitYulIdentifier(*YulIdentifier) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitYulIdentifier(*YulIdentifier) error      { return nil }
func (BaseVisitor) VisitYulFunctionCall(*YulFunctionCall) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitYulFunctionCall(*YulFunctionCall) error      { return nil }
func (BaseVisitor) VisitYulIf(*YulIf) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitYulIf(*YulIf) error      { return nil }
func (BaseVisitor) VisitYulSwitch(*YulSwitch) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitYulSwitch(*YulSwitch) error      { return nil }
func (BaseVisitor) VisitYulCase(*YulCase) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitYulCase(*YulCase) error      { return nil }
func (BaseVisitor) VisitYulForLoop(*YulForLoop) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitYulForLoop(*YulForLoop) error      { return nil }
func (BaseVisitor) VisitYulAssignment(*YulAssignment) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitYulAssignment(*YulAssignment) error      { return nil }
func (BaseVisitor) VisitYulVariableDeclaration(*YulVariableDeclaration) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitYulVariableDeclaration(*YulVariableDeclaration) error      { return nil }
func (BaseVisitor) VisitYulTypedName(*YulTypedName) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitYulTypedName(*YulTypedName) error      { return nil }
func (BaseVisitor) VisitYulExpressionStatement(*YulExpressionStatement) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitYulExpressionStatement(*YulExpressionStatement) error      { return nil }
func (BaseVisitor) VisitYulFunctionDefinition(*YulFunctionDefinition) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitYulFunctionDefinition(*YulFunctionDefinition) error      { return nil }
func (BaseVisitor) VisitYulLeave(*YulLeave) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitYulLeave(*YulLeave) error      { return nil }
func (BaseVisitor) VisitYulBreak(*YulBreak) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitYulBreak(*YulBreak) error      { return nil }
func (BaseVisitor) VisitYulContinue(*YulContinue) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitYulContinue(*YulContinue) error      { return nil }

func (BaseVisitor) VisitGeneric(*Generic) (bool, error) { return true, nil }
func (BaseVisitor) EndVisitGeneric(*Generic) error      { return nil }

func (BaseVisitor) VisitImmediateChildren(Node, []Node) error { return nil }
