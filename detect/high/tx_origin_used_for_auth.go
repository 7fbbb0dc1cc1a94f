package high

import (
	"github.com/Cyfrin/aderyn-sub003/ast"
	"github.com/Cyfrin/aderyn-sub003/browser"
	"github.com/Cyfrin/aderyn-sub003/detect"
	"github.com/Cyfrin/aderyn-sub003/workspace"
)

// TxOriginUsedForAuthDetector flags an if-condition or a require
// argument that reads tx.origin without also reading msg.sender anywhere
// in the same reachable code — the one-sided read is what makes
// tx.origin-based auth exploitable through an intermediate contract.
type TxOriginUsedForAuthDetector struct {
	detect.Found
}

func (d *TxOriginUsedForAuthDetector) Detect(w *workspace.Workspace) (bool, error) {
	for _, n := range w.NodesOfKind(ast.KindIfStatement) {
		ifs := n.(*ast.IfStatement)
		if d.checkAndCapture(w, ifs.Condition, ifs) {
			continue
		}
	}

	for _, n := range w.NodesOfKind(ast.KindFunctionCall) {
		call := n.(*ast.FunctionCall)
		ident, ok := call.Expr.(*ast.Identifier)
		if !ok || ident.Name != "require" {
			continue
		}
		for _, arg := range call.Arguments {
			if d.checkAndCapture(w, arg, call) {
				break
			}
		}
	}

	return len(d.Instances()) > 0, nil
}

func (d *TxOriginUsedForAuthDetector) checkAndCapture(w *workspace.Workspace, checkNode ast.Node, captureNode ast.Node) bool {
	readsMsgSender, readsTxOrigin := false, false
	for _, n := range detect.ReachableCode(w, checkNode) {
		for _, ma := range browser.ExtractMemberAccesses(n) {
			ident, ok := ma.Expr.(*ast.Identifier)
			if !ok {
				continue
			}
			if ma.MemberName == "sender" && ident.Name == "msg" {
				readsMsgSender = true
			}
			if ma.MemberName == "origin" && ident.Name == "tx" {
				readsTxOrigin = true
			}
		}
	}
	if readsTxOrigin && !readsMsgSender {
		d.Capture(w, captureNode)
		return true
	}
	return false
}

func (d *TxOriginUsedForAuthDetector) Severity() detect.Severity { return detect.High }

func (d *TxOriginUsedForAuthDetector) Title() string {
	return "Use of `tx.origin` for Authentication"
}

func (d *TxOriginUsedForAuthDetector) Description() string {
	return "Using `tx.origin` may lead to problems when users interact with your protocol through an intermediate contract. Use `msg.sender` for authentication instead."
}

func (d *TxOriginUsedForAuthDetector) Name() string { return "tx-origin-used-for-auth" }
