// Package ast models the Solidity compiler's AST as a Go sum type: one
// concrete struct per node kind, sharing a small set of interfaces so that
// generic code (the visitor, the workspace, the extractors) can walk the
// tree without knowing every concrete kind in advance.
package ast

// NodeID is a compiler-assigned identifier, unique within a compilation
// unit. It is the currency of every cross-reference in the tree:
// referencedDeclaration, scope, overrides, and so on.
type NodeID int64

// NodeKind tags every concrete AST node with its Solidity compiler
// "nodeType" string.
type NodeKind string

const (
	KindSourceUnit                     NodeKind = "SourceUnit"
	KindPragmaDirective                NodeKind = "PragmaDirective"
	KindImportDirective                NodeKind = "ImportDirective"
	KindContractDefinition             NodeKind = "ContractDefinition"
	KindInheritanceSpecifier           NodeKind = "InheritanceSpecifier"
	KindUsingForDirective              NodeKind = "UsingForDirective"
	KindStructDefinition               NodeKind = "StructDefinition"
	KindEnumDefinition                 NodeKind = "EnumDefinition"
	KindEnumValue                      NodeKind = "EnumValue"
	KindErrorDefinition                NodeKind = "ErrorDefinition"
	KindEventDefinition                NodeKind = "EventDefinition"
	KindVariableDeclaration            NodeKind = "VariableDeclaration"
	KindParameterList                  NodeKind = "ParameterList"
	KindOverrideSpecifier              NodeKind = "OverrideSpecifier"
	KindFunctionDefinition             NodeKind = "FunctionDefinition"
	KindModifierDefinition             NodeKind = "ModifierDefinition"
	KindModifierInvocation             NodeKind = "ModifierInvocation"
	KindUserDefinedValueTypeDefinition NodeKind = "UserDefinedValueTypeDefinition"
	KindStructuredDocumentation        NodeKind = "StructuredDocumentation"

	KindBlock                        NodeKind = "Block"
	KindUncheckedBlock               NodeKind = "UncheckedBlock"
	KindExpressionStatement          NodeKind = "ExpressionStatement"
	KindVariableDeclarationStatement NodeKind = "VariableDeclarationStatement"
	KindIfStatement                  NodeKind = "IfStatement"
	KindForStatement                 NodeKind = "ForStatement"
	KindWhileStatement               NodeKind = "WhileStatement"
	KindDoWhileStatement             NodeKind = "DoWhileStatement"
	KindReturn                       NodeKind = "Return"
	KindBreak                        NodeKind = "Break"
	KindContinue                     NodeKind = "Continue"
	KindPlaceholderStatement         NodeKind = "PlaceholderStatement"
	KindEmitStatement                NodeKind = "EmitStatement"
	KindRevertStatement              NodeKind = "RevertStatement"
	KindTryStatement                 NodeKind = "TryStatement"
	KindTryCatchClause               NodeKind = "TryCatchClause"
	KindInlineAssembly               NodeKind = "InlineAssembly"

	KindFunctionCall                 NodeKind = "FunctionCall"
	KindFunctionCallOptions          NodeKind = "FunctionCallOptions"
	KindMemberAccess                 NodeKind = "MemberAccess"
	KindIndexAccess                  NodeKind = "IndexAccess"
	KindIndexRangeAccess             NodeKind = "IndexRangeAccess"
	KindIdentifier                   NodeKind = "Identifier"
	KindIdentifierPath               NodeKind = "IdentifierPath"
	KindLiteral                      NodeKind = "Literal"
	KindAssignment                   NodeKind = "Assignment"
	KindBinaryOperation              NodeKind = "BinaryOperation"
	KindUnaryOperation               NodeKind = "UnaryOperation"
	KindConditional                  NodeKind = "Conditional"
	KindElementaryTypeNameExpression NodeKind = "ElementaryTypeNameExpression"
	KindNewExpression                NodeKind = "NewExpression"
	KindTupleExpression              NodeKind = "TupleExpression"

	KindElementaryTypeName NodeKind = "ElementaryTypeName"
	KindUserDefinedTypeName NodeKind = "UserDefinedTypeName"
	KindArrayTypeName       NodeKind = "ArrayTypeName"
	KindMapping             NodeKind = "Mapping"
	KindFunctionTypeName    NodeKind = "FunctionTypeName"

	KindYulBlock               NodeKind = "YulBlock"
	KindYulLiteral             NodeKind = "YulLiteral"
	KindYulIdentifier          NodeKind = "YulIdentifier"
	KindYulFunctionCall        NodeKind = "YulFunctionCall"
	KindYulIf                  NodeKind = "YulIf"
	KindYulSwitch              NodeKind = "YulSwitch"
	KindYulCase                NodeKind = "YulCase"
	KindYulForLoop             NodeKind = "YulForLoop"
	KindYulAssignment          NodeKind = "YulAssignment"
	KindYulVariableDeclaration NodeKind = "YulVariableDeclaration"
	KindYulTypedName           NodeKind = "YulTypedName"
	KindYulExpressionStatement NodeKind = "YulExpressionStatement"
	KindYulFunctionDefinition  NodeKind = "YulFunctionDefinition"
	KindYulLeave               NodeKind = "YulLeave"
	KindYulBreak               NodeKind = "YulBreak"
	KindYulContinue            NodeKind = "YulContinue"

	// KindGeneric tags the universal node wrapper (C1) used for node kinds
	// the model doesn't carry a dedicated struct for.
	KindGeneric NodeKind = "Generic"
)
