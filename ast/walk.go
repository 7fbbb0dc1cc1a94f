package ast

// Walk performs the pre-order/post-order traversal the protocol requires
// (§4.2): call the node's VisitX hook, and if it asks to continue, deliver
// VisitImmediateChildren once, then recurse into each child in declaration
// order, then call EndVisitX. Any error aborts the whole walk immediately
// — detectors signal "stop the subtree" by returning (false, nil) from a
// VisitX hook, not by erroring.
//
// This is the single dispatch point every traversal in the module goes
// through; nothing outside this file needs a type switch over Node.
func Walk(v Visitor, n Node) error {
	if n == nil {
		return nil
	}

	cont, err := dispatchVisit(v, n)
	if err != nil {
		return err
	}
	if cont {
		children := n.Children()
		if len(children) > 0 {
			if err := v.VisitImmediateChildren(n, children); err != nil {
				return err
			}
		}
		for _, c := range children {
			if err := Walk(v, c); err != nil {
				return err
			}
		}
	}
	return dispatchEndVisit(v, n)
}

func dispatchVisit(v Visitor, n Node) (bool, error) {
	switch t := n.(type) {
	case *SourceUnit:
		return v.VisitSourceUnit(t)
	case *PragmaDirective:
		return v.VisitPragmaDirective(t)
	case *ImportDirective:
		return v.VisitImportDirective(t)
	case *InheritanceSpecifier:
		return v.VisitInheritanceSpecifier(t)
	case *UsingForDirective:
		return v.VisitUsingForDirective(t)
	case *ContractDefinition:
		return v.VisitContractDefinition(t)
	case *StructDefinition:
		return v.VisitStructDefinition(t)
	case *EnumDefinition:
		return v.VisitEnumDefinition(t)
	case *EnumValue:
		return v.VisitEnumValue(t)
	case *ErrorDefinition:
		return v.VisitErrorDefinition(t)
	case *EventDefinition:
		return v.VisitEventDefinition(t)
	case *VariableDeclaration:
		return v.VisitVariableDeclaration(t)
	case *ParameterList:
		return v.VisitParameterList(t)
	case *OverrideSpecifier:
		return v.VisitOverrideSpecifier(t)
	case *FunctionDefinition:
		return v.VisitFunctionDefinition(t)
	case *ModifierDefinition:
		return v.VisitModifierDefinition(t)
	case *ModifierInvocation:
		return v.VisitModifierInvocation(t)
	case *UserDefinedValueTypeDefinition:
		return v.VisitUserDefinedValueTypeDefinition(t)
	case *StructuredDocumentation:
		return v.VisitStructuredDocumentation(t)

	case *Block:
		return v.VisitBlock(t)
	case *UncheckedBlock:
		return v.VisitUncheckedBlock(t)
	case *ExpressionStatement:
		return v.VisitExpressionStatement(t)
	case *VariableDeclarationStatement:
		return v.VisitVariableDeclarationStatement(t)
	case *IfStatement:
		return v.VisitIfStatement(t)
	case *ForStatement:
		return v.VisitForStatement(t)
	case *WhileStatement:
		return v.VisitWhileStatement(t)
	case *DoWhileStatement:
		return v.VisitDoWhileStatement(t)
	case *Return:
		return v.VisitReturn(t)
	case *Break:
		return v.VisitBreak(t)
	case *Continue:
		return v.VisitContinue(t)
	case *PlaceholderStatement:
		return v.VisitPlaceholderStatement(t)
	case *EmitStatement:
		return v.VisitEmitStatement(t)
	case *RevertStatement:
		return v.VisitRevertStatement(t)
	case *TryStatement:
		return v.VisitTryStatement(t)
	case *TryCatchClause:
		return v.VisitTryCatchClause(t)
	case *InlineAssembly:
		return v.VisitInlineAssembly(t)

	case *FunctionCall:
		return v.VisitFunctionCall(t)
	case *FunctionCallOptions:
		return v.VisitFunctionCallOptions(t)
	case *MemberAccess:
		return v.VisitMemberAccess(t)
	case *IndexAccess:
		return v.VisitIndexAccess(t)
	case *IndexRangeAccess:
		return v.VisitIndexRangeAccess(t)
	case *Identifier:
		return v.VisitIdentifier(t)
	case *IdentifierPath:
		return v.VisitIdentifierPath(t)
	case *Literal:
		return v.VisitLiteral(t)
	case *Assignment:
		return v.VisitAssignment(t)
	case *BinaryOperation:
		return v.VisitBinaryOperation(t)
	case *UnaryOperation:
		return v.VisitUnaryOperation(t)
	case *Conditional:
		return v.VisitConditional(t)
	case *ElementaryTypeNameExpression:
		return v.VisitElementaryTypeNameExpression(t)
	case *NewExpression:
		return v.VisitNewExpression(t)
	case *TupleExpression:
		return v.VisitTupleExpression(t)

	case *ElementaryTypeName:
		return v.VisitElementaryTypeName(t)
	case *UserDefinedTypeName:
		return v.VisitUserDefinedTypeName(t)
	case *ArrayTypeName:
		return v.VisitArrayTypeName(t)
	case *Mapping:
		return v.VisitMapping(t)
	case *FunctionTypeName:
		return v.VisitFunctionTypeName(t)

	case *YulBlock:
		return v.VisitYulBlock(t)
	case *YulLiteral:
		return v.VisitYulLiteral(t)
	case *YulIdentifier:
		return v.VisitYulIdentifier(t)
	case *YulFunctionCall:
		return v.VisitYulFunctionCall(t)
	case *YulIf:
		return v.VisitYulIf(t)
	case *YulSwitch:
		return v.VisitYulSwitch(t)
	case *YulCase:
		return v.VisitYulCase(t)
	case *YulForLoop:
		return v.VisitYulForLoop(t)
	case *YulAssignment:
		return v.VisitYulAssignment(t)
	case *YulVariableDeclaration:
		return v.VisitYulVariableDeclaration(t)
	case *YulTypedName:
		return v.VisitYulTypedName(t)
	case *YulExpressionStatement:
		return v.VisitYulExpressionStatement(t)
	case *YulFunctionDefinition:
		return v.VisitYulFunctionDefinition(t)
	case *YulLeave:
		return v.VisitYulLeave(t)
	case *YulBreak:
		return v.VisitYulBreak(t)
	case *YulContinue:
		return v.VisitYulContinue(t)

	case *Generic:
		return v.VisitGeneric(t)
	default:
		return true, nil
	}
}

func dispatchEndVisit(v Visitor, n Node) error {
	switch t := n.(type) {
	case *SourceUnit:
		return v.EndVisitSourceUnit(t)
	case *PragmaDirective:
		return v.EndVisitPragmaDirective(t)
	case *ImportDirective:
		return v.EndVisitImportDirective(t)
	case *InheritanceSpecifier:
		return v.EndVisitInheritanceSpecifier(t)
	case *UsingForDirective:
		return v.EndVisitUsingForDirective(t)
	case *ContractDefinition:
		return v.EndVisitContractDefinition(t)
	case *StructDefinition:
		return v.EndVisitStructDefinition(t)
	case *EnumDefinition:
		return v.EndVisitEnumDefinition(t)
	case *EnumValue:
		return v.EndVisitEnumValue(t)
	case *ErrorDefinition:
		return v.EndVisitErrorDefinition(t)
	case *EventDefinition:
		return v.EndVisitEventDefinition(t)
	case *VariableDeclaration:
		return v.EndVisitVariableDeclaration(t)
	case *ParameterList:
		return v.EndVisitParameterList(t)
	case *OverrideSpecifier:
		return v.EndVisitOverrideSpecifier(t)
	case *FunctionDefinition:
		return v.EndVisitFunctionDefinition(t)
	case *ModifierDefinition:
		return v.EndVisitModifierDefinition(t)
	case *ModifierInvocation:
		return v.EndVisitModifierInvocation(t)
	case *UserDefinedValueTypeDefinition:
		return v.EndVisitUserDefinedValueTypeDefinition(t)
	case *StructuredDocumentation:
		return v.EndVisitStructuredDocumentation(t)

	case *Block:
		return v.EndVisitBlock(t)
	case *UncheckedBlock:
		return v.EndVisitUncheckedBlock(t)
	case *ExpressionStatement:
		return v.EndVisitExpressionStatement(t)
	case *VariableDeclarationStatement:
		return v.EndVisitVariableDeclarationStatement(t)
	case *IfStatement:
		return v.EndVisitIfStatement(t)
	case *ForStatement:
		return v.EndVisitForStatement(t)
	case *WhileStatement:
		return v.EndVisitWhileStatement(t)
	case *DoWhileStatement:
		return v.EndVisitDoWhileStatement(t)
	case *Return:
		return v.EndVisitReturn(t)
	case *Break:
		return v.EndVisitBreak(t)
	case *Continue:
		return v.EndVisitContinue(t)
	case *PlaceholderStatement:
		return v.EndVisitPlaceholderStatement(t)
	case *EmitStatement:
		return v.EndVisitEmitStatement(t)
	case *RevertStatement:
		return v.EndVisitRevertStatement(t)
	case *TryStatement:
		return v.EndVisitTryStatement(t)
	case *TryCatchClause:
		return v.EndVisitTryCatchClause(t)
	case *InlineAssembly:
		return v.EndVisitInlineAssembly(t)

	case *FunctionCall:
		return v.EndVisitFunctionCall(t)
	case *FunctionCallOptions:
		return v.EndVisitFunctionCallOptions(t)
	case *MemberAccess:
		return v.EndVisitMemberAccess(t)
	case *IndexAccess:
		return v.EndVisitIndexAccess(t)
	case *IndexRangeAccess:
		return v.EndVisitIndexRangeAccess(t)
	case *Identifier:
		return v.EndVisitIdentifier(t)
	case *IdentifierPath:
		return v.EndVisitIdentifierPath(t)
	case *Literal:
		return v.EndVisitLiteral(t)
	case *Assignment:
		return v.EndVisitAssignment(t)
	case *BinaryOperation:
		return v.EndVisitBinaryOperation(t)
	case *UnaryOperation:
		return v.EndVisitUnaryOperation(t)
	case *Conditional:
		return v.EndVisitConditional(t)
	case *ElementaryTypeNameExpression:
		return v.EndVisitElementaryTypeNameExpression(t)
	case *NewExpression:
		return v.EndVisitNewExpression(t)
	case *TupleExpression:
		return v.EndVisitTupleExpression(t)

	case *ElementaryTypeName:
		return v.EndVisitElementaryTypeName(t)
	case *UserDefinedTypeName:
		return v.EndVisitUserDefinedTypeName(t)
	case *ArrayTypeName:
		return v.EndVisitArrayTypeName(t)
	case *Mapping:
		return v.EndVisitMapping(t)
	case *FunctionTypeName:
		return v.EndVisitFunctionTypeName(t)

	case *YulBlock:
		return v.EndVisitYulBlock(t)
	case *YulLiteral:
		return v.EndVisitYulLiteral(t)
	case *YulIdentifier:
		return v.EndVisitYulIdentifier(t)
	case *YulFunctionCall:
		return v.EndVisitYulFunctionCall(t)
	case *YulIf:
		return v.EndVisitYulIf(t)
	case *YulSwitch:
		return v.EndVisitYulSwitch(t)
	case *YulCase:
		return v.EndVisitYulCase(t)
	case *YulForLoop:
		return v.EndVisitYulForLoop(t)
	case *YulAssignment:
		return v.EndVisitYulAssignment(t)
	case *YulVariableDeclaration:
		return v.EndVisitYulVariableDeclaration(t)
	case *YulTypedName:
		return v.EndVisitYulTypedName(t)
	case *YulExpressionStatement:
		return v.EndVisitYulExpressionStatement(t)
	case *YulFunctionDefinition:
		return v.EndVisitYulFunctionDefinition(t)
	case *YulLeave:
		return v.EndVisitYulLeave(t)
	case *YulBreak:
		return v.EndVisitYulBreak(t)
	case *YulContinue:
		return v.EndVisitYulContinue(t)

	case *Generic:
		return v.EndVisitGeneric(t)
	default:
		return nil
	}
}
