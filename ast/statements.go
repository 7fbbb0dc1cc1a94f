package ast

// Block is a `{ ... }` statement list. Every FunctionDefinition/
// ModifierDefinition body, and every control-flow arm, nests one.
type Block struct {
	Regular
	Statements []Statement
}

func (n *Block) Kind() NodeKind { return KindBlock }
func (n *Block) Children() []Node {
	out := make([]Node, len(n.Statements))
	for i, s := range n.Statements {
		out[i] = s
	}
	return out
}
func (n *Block) statementNode() {}

// UncheckedBlock is `unchecked { ... }`.
type UncheckedBlock struct {
	Regular
	Statements []Statement
}

func (n *UncheckedBlock) Kind() NodeKind { return KindUncheckedBlock }
func (n *UncheckedBlock) Children() []Node {
	out := make([]Node, len(n.Statements))
	for i, s := range n.Statements {
		out[i] = s
	}
	return out
}
func (n *UncheckedBlock) statementNode() {}

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	Regular
	Expr Expression
}

func (n *ExpressionStatement) Kind() NodeKind { return KindExpressionStatement }
func (n *ExpressionStatement) Children() []Node {
	if n.Expr == nil {
		return nil
	}
	return []Node{n.Expr}
}
func (n *ExpressionStatement) statementNode() {}

// VariableDeclarationStatement represents `T x = ...;`, including the
// multi-assignment `(T a, T b) = f();` form.
type VariableDeclarationStatement struct {
	Regular
	Declarations []*VariableDeclaration // may contain nils for skipped slots in a tuple assignment
	InitialValue Expression
}

func (n *VariableDeclarationStatement) Kind() NodeKind { return KindVariableDeclarationStatement }
func (n *VariableDeclarationStatement) Children() []Node {
	out := make([]Node, 0, len(n.Declarations)+1)
	for _, d := range n.Declarations {
		if d != nil {
			out = append(out, d)
		}
	}
	if n.InitialValue != nil {
		out = append(out, n.InitialValue)
	}
	return out
}
func (n *VariableDeclarationStatement) statementNode() {}

// IfStatement represents `if (cond) trueBody else falseBody`.
type IfStatement struct {
	Regular
	Condition  Expression
	TrueBody   Statement
	FalseBody  Statement
}

func (n *IfStatement) Kind() NodeKind { return KindIfStatement }
func (n *IfStatement) Children() []Node {
	out := make([]Node, 0, 3)
	if n.Condition != nil {
		out = append(out, n.Condition)
	}
	if n.TrueBody != nil {
		out = append(out, n.TrueBody)
	}
	if n.FalseBody != nil {
		out = append(out, n.FalseBody)
	}
	return out
}
func (n *IfStatement) statementNode() {}

// ForStatement represents `for (init; cond; loop) body`.
type ForStatement struct {
	Regular
	InitializationExpression Statement
	Condition                Expression
	LoopExpression           Statement
	Body                     Statement
}

func (n *ForStatement) Kind() NodeKind { return KindForStatement }
func (n *ForStatement) Children() []Node {
	var out []Node
	if n.InitializationExpression != nil {
		out = append(out, n.InitializationExpression)
	}
	if n.Condition != nil {
		out = append(out, n.Condition)
	}
	if n.LoopExpression != nil {
		out = append(out, n.LoopExpression)
	}
	if n.Body != nil {
		out = append(out, n.Body)
	}
	return out
}
func (n *ForStatement) statementNode() {}

// WhileStatement represents `while (cond) body`.
type WhileStatement struct {
	Regular
	Condition Expression
	Body      Statement
}

func (n *WhileStatement) Kind() NodeKind { return KindWhileStatement }
func (n *WhileStatement) Children() []Node {
	var out []Node
	if n.Condition != nil {
		out = append(out, n.Condition)
	}
	if n.Body != nil {
		out = append(out, n.Body)
	}
	return out
}
func (n *WhileStatement) statementNode() {}

// DoWhileStatement represents `do body while (cond);`.
type DoWhileStatement struct {
	Regular
	Condition Expression
	Body      Statement
}

func (n *DoWhileStatement) Kind() NodeKind { return KindDoWhileStatement }
func (n *DoWhileStatement) Children() []Node {
	var out []Node
	if n.Body != nil {
		out = append(out, n.Body)
	}
	if n.Condition != nil {
		out = append(out, n.Condition)
	}
	return out
}
func (n *DoWhileStatement) statementNode() {}

// Return represents `return [expr];`.
type Return struct {
	Regular
	Expr             Expression
	FunctionReturnParameters NodeID
}

func (n *Return) Kind() NodeKind { return KindReturn }
func (n *Return) Children() []Node {
	if n.Expr == nil {
		return nil
	}
	return []Node{n.Expr}
}
func (n *Return) statementNode() {}

// Break represents `break;`.
type Break struct {
	Regular
}

func (n *Break) Kind() NodeKind     { return KindBreak }
func (n *Break) Children() []Node   { return nil }
func (n *Break) statementNode()     {}

// Continue represents `continue;`.
type Continue struct {
	Regular
}

func (n *Continue) Kind() NodeKind   { return KindContinue }
func (n *Continue) Children() []Node { return nil }
func (n *Continue) statementNode()   {}

// PlaceholderStatement represents the `_;` inside a modifier body.
type PlaceholderStatement struct {
	Regular
}

func (n *PlaceholderStatement) Kind() NodeKind   { return KindPlaceholderStatement }
func (n *PlaceholderStatement) Children() []Node { return nil }
func (n *PlaceholderStatement) statementNode()   {}

// EmitStatement represents `emit Event(...)`.
type EmitStatement struct {
	Regular
	EventCall *FunctionCall
}

func (n *EmitStatement) Kind() NodeKind { return KindEmitStatement }
func (n *EmitStatement) Children() []Node {
	if n.EventCall == nil {
		return nil
	}
	return []Node{n.EventCall}
}
func (n *EmitStatement) statementNode() {}

// RevertStatement represents `revert CustomError(...)`.
type RevertStatement struct {
	Regular
	ErrorCall *FunctionCall
}

func (n *RevertStatement) Kind() NodeKind { return KindRevertStatement }
func (n *RevertStatement) Children() []Node {
	if n.ErrorCall == nil {
		return nil
	}
	return []Node{n.ErrorCall}
}
func (n *RevertStatement) statementNode() {}

// TryStatement represents `try f() returns (...) { ... } catch { ... }`.
type TryStatement struct {
	Regular
	ExternalCall Expression
	Clauses      []*TryCatchClause
}

func (n *TryStatement) Kind() NodeKind { return KindTryStatement }
func (n *TryStatement) Children() []Node {
	out := make([]Node, 0, len(n.Clauses)+1)
	if n.ExternalCall != nil {
		out = append(out, n.ExternalCall)
	}
	for _, c := range n.Clauses {
		out = append(out, c)
	}
	return out
}
func (n *TryStatement) statementNode() {}

// TryCatchClause is one `returns (...) { ... }` or `catch Error(...) { ... }` arm.
type TryCatchClause struct {
	Regular
	ErrorName  string
	Parameters *ParameterList
	Block      *Block
}

func (n *TryCatchClause) Kind() NodeKind { return KindTryCatchClause }
func (n *TryCatchClause) Children() []Node {
	var out []Node
	if n.Parameters != nil {
		out = append(out, n.Parameters)
	}
	if n.Block != nil {
		out = append(out, n.Block)
	}
	return out
}

// InlineAssembly represents a `assembly { ... }` block; its body is a Yul
// AST rooted at a YulBlock.
type InlineAssembly struct {
	Regular
	Body *YulBlock
}

func (n *InlineAssembly) Kind() NodeKind { return KindInlineAssembly }
func (n *InlineAssembly) Children() []Node {
	if n.Body == nil {
		return nil
	}
	return []Node{n.Body}
}
func (n *InlineAssembly) statementNode() {}
