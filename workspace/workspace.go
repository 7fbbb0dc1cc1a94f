// Package workspace builds and holds the single source of truth a
// detection run operates on: every decoded source unit, indexed by id,
// by kind, by file, with parent links resolved and ignore-line
// annotations parsed out of the raw source text. Nothing in this package
// mutates a Workspace once New returns it (§3.1, §5).
package workspace

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Cyfrin/aderyn-sub003/ast"
	"github.com/Cyfrin/aderyn-sub003/callgraph"
	"github.com/Cyfrin/aderyn-sub003/router"
	"github.com/sirupsen/logrus"
)

// CompiledSource is one file's compiler output as handed to New: the
// decoded AST root plus the raw text the compiler ran over, needed for
// SLOC counts and ignore-line scanning.
type CompiledSource struct {
	AbsolutePath string
	SourceText   string
	RawAST       []byte // standalone solc JSON for this SourceUnit
}

// Workspace is the ingested, indexed view of a whole compilation: one or
// more CompiledSource entries merged into a single cross-referenced tree
// (§3.1). Build it once via New and treat it as read-only afterward —
// every detector and graph builder in this module takes a *Workspace and
// never writes to it.
type Workspace struct {
	SourceUnits []*ast.SourceUnit

	nodes      map[ast.NodeID]ast.Node
	parents    map[ast.NodeID]ast.Node
	byKind     map[ast.NodeKind][]ast.Node
	srcByPath  map[string]*ast.SourceUnit
	sourceText map[string]string // absolutePath -> raw text
	included   map[string]bool   // absolutePath -> in-scope for reporting

	ignoreLines map[string]map[int]string // absolutePath -> line -> reason ("" = unqualified)

	sloc map[string]SLOCStats

	// callGraph is the whole-workspace outward call graph (§4.3); every
	// reachability detector walks it through a callgraph.Runner rather
	// than re-deriving its own traversal. inwardGraph is its transpose,
	// and inwardSubgraphs holds, per contract, the portion of that
	// transpose restricted to that contract's own members (§4.3.3,
	// §3.5).
	callGraph       *callgraph.Graph
	inwardGraph     *callgraph.Graph
	inwardSubgraphs map[ast.NodeID]*callgraph.Graph

	// externalRouters/modifierRouters hold, per deployable contract, the
	// selector and modifier dispatch tables §4.4 describes (§3.5).
	externalRouters map[ast.NodeID]*router.ExternalCallRouter
	modifierRouters map[ast.NodeID]*router.ModifierCallRouter

	log *logrus.Entry
}

// SLOCStats counts source lines of code the way aderyn's own sloc pass
// does: total lines minus blank lines minus full-line comments.
type SLOCStats struct {
	Total      int
	SourceLines int
	BlankLines int
	CommentLines int
}

// New decodes every compiled source, merges the resulting trees into one
// indexed Workspace, and scans each file's raw text for
// aderyn-ignore-line / aderyn-ignore-next-line directives (§4.1, §6).
// included restricts which absolute paths are considered in-scope for the
// final report; pass nil to include everything.
func New(sources []CompiledSource, included map[string]bool, log *logrus.Entry) (*Workspace, error) {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	w := &Workspace{
		nodes:           make(map[ast.NodeID]ast.Node),
		parents:         make(map[ast.NodeID]ast.Node),
		byKind:          make(map[ast.NodeKind][]ast.Node),
		srcByPath:       make(map[string]*ast.SourceUnit),
		sourceText:      make(map[string]string),
		included:        included,
		ignoreLines:     make(map[string]map[int]string),
		sloc:            make(map[string]SLOCStats),
		inwardSubgraphs: make(map[ast.NodeID]*callgraph.Graph),
		externalRouters: make(map[ast.NodeID]*router.ExternalCallRouter),
		modifierRouters: make(map[ast.NodeID]*router.ModifierCallRouter),
		log:             log,
	}

	for _, src := range sources {
		node, err := ast.DecodeNode(src.RawAST)
		if err != nil {
			return nil, fmt.Errorf("workspace: decode %s: %w", src.AbsolutePath, err)
		}
		su, ok := node.(*ast.SourceUnit)
		if !ok {
			return nil, fmt.Errorf("workspace: %s did not decode to a SourceUnit", src.AbsolutePath)
		}
		su.SourceText = src.SourceText
		if su.AbsolutePath == "" {
			su.AbsolutePath = src.AbsolutePath
		}
		w.SourceUnits = append(w.SourceUnits, su)
		w.srcByPath[su.AbsolutePath] = su
		w.sourceText[su.AbsolutePath] = src.SourceText
		w.sloc[su.AbsolutePath] = computeSLOC(src.SourceText)
		w.ignoreLines[su.AbsolutePath] = parseIgnoreLines(src.SourceText)

		indexNode(w, su)
		indexer := &indexingVisitor{w: w}
		if err := ast.Walk(indexer, su); err != nil {
			return nil, fmt.Errorf("workspace: index %s: %w", src.AbsolutePath, err)
		}
	}

	// EventDefinition.CanonicalName ("ContractName.EventName") is derived
	// here, once parent links exist; a file-level event keeps it empty.
	for _, n := range w.NodesOfKind(ast.KindEventDefinition) {
		ev := n.(*ast.EventDefinition)
		if p, ok := w.Parent(ev); ok {
			if c, ok := p.(*ast.ContractDefinition); ok {
				ev.CanonicalName = c.Name + "." + ev.Name
			}
		}
	}

	// deterministic iteration order downstream: sort SourceUnits by path.
	sort.Slice(w.SourceUnits, func(i, j int) bool {
		return w.SourceUnits[i].AbsolutePath < w.SourceUnits[j].AbsolutePath
	})

	w.callGraph = callgraph.Build(w)
	w.inwardGraph = w.callGraph.Transpose()

	for _, n := range w.NodesOfKind(ast.KindContractDefinition) {
		c := n.(*ast.ContractDefinition)
		cid := c.NodeID()
		w.inwardSubgraphs[cid] = w.inwardGraph.Filter(func(id ast.NodeID) bool {
			return w.memberOf(id, cid)
		})
		w.externalRouters[cid] = router.BuildExternalCallRouter(w, c)
		w.modifierRouters[cid] = router.BuildModifierCallRouter(w, c)
	}

	log.WithFields(logrus.Fields{
		"source_units": len(w.SourceUnits),
		"nodes":        len(w.nodes),
	}).Debug("workspace ingested")

	return w, nil
}

// memberOf reports whether id's own parent node is the ContractDefinition
// identified by contract — used to scope a callgraph node to the
// contract it is declared directly on (§4.3.3).
func (w *Workspace) memberOf(id, contract ast.NodeID) bool {
	n, ok := w.Node(id)
	if !ok {
		return false
	}
	p, ok := w.Parent(n)
	if !ok || !p.HasID() {
		return false
	}
	return p.NodeID() == contract
}

// indexingVisitor populates nodes/parents/byKind in a single top-to-bottom
// pass, using VisitImmediateChildren exactly as the protocol intends
// (§4.2): the parent link for every node is established the moment its
// parent is visited, before Walk recurses into it.
type indexingVisitor struct {
	ast.BaseVisitor
	w *Workspace
}

// VisitImmediateChildren is the one hook Walk guarantees to call for every
// node that has children (§4.2), which makes it the natural place to
// establish parent links and index each child — a leaf node is indexed
// here as a child of its parent; the tree root is indexed explicitly by
// New before the walk starts.
func (v *indexingVisitor) VisitImmediateChildren(parent ast.Node, children []ast.Node) error {
	for _, c := range children {
		if c == nil {
			continue
		}
		v.w.parents[c.NodeID()] = parent
		indexNode(v.w, c)
	}
	return nil
}

func indexNode(w *Workspace, n ast.Node) {
	if n == nil || !n.HasID() {
		return
	}
	w.nodes[n.NodeID()] = n
	w.byKind[n.Kind()] = append(w.byKind[n.Kind()], n)
}

// Node looks up a node by its compiler-assigned id.
func (w *Workspace) Node(id ast.NodeID) (ast.Node, bool) {
	n, ok := w.nodes[id]
	return n, ok
}

// Parent returns the immediate parent of n, if n was reached via Walk
// during ingestion (every node in the tree is, except SourceUnit roots).
func (w *Workspace) Parent(n ast.Node) (ast.Node, bool) {
	if n == nil || !n.HasID() {
		return nil, false
	}
	p, ok := w.parents[n.NodeID()]
	return p, ok
}

// NodesOfKind returns every node of the given kind across the whole
// workspace, in ingestion order.
func (w *Workspace) NodesOfKind(kind ast.NodeKind) []ast.Node {
	return w.byKind[kind]
}

// SourceUnitFor returns the SourceUnit containing n's file, if known.
func (w *Workspace) SourceUnitFor(path string) (*ast.SourceUnit, bool) {
	su, ok := w.srcByPath[path]
	return su, ok
}

// IsIncluded reports whether path is in-scope for the final report. All
// paths are included when no scope filter was passed to New.
func (w *Workspace) IsIncluded(path string) bool {
	if w.included == nil {
		return true
	}
	return w.included[path]
}

// SLOC returns the computed source-line-of-code stats for path.
func (w *Workspace) SLOC(path string) SLOCStats {
	return w.sloc[path]
}

// CallGraph returns the whole-workspace outward call graph built once
// when the Workspace was constructed (§4.3).
func (w *Workspace) CallGraph() *callgraph.Graph {
	return w.callGraph
}

// InwardCallGraph returns the whole-workspace transpose of CallGraph:
// for every edge a->b in CallGraph, an edge b->a here.
func (w *Workspace) InwardCallGraph() *callgraph.Graph {
	return w.inwardGraph
}

// InwardCallGraphFor returns the portion of InwardCallGraph restricted to
// functions and modifiers declared directly on contract (§4.3.3, §3.5).
func (w *Workspace) InwardCallGraphFor(contract *ast.ContractDefinition) *callgraph.Graph {
	return w.inwardSubgraphs[contract.NodeID()]
}

// ExternalCallRouter returns the selector dispatch table built for
// contract when the Workspace was constructed (§4.4, §3.5).
func (w *Workspace) ExternalCallRouter(contract *ast.ContractDefinition) *router.ExternalCallRouter {
	return w.externalRouters[contract.NodeID()]
}

// ModifierCallRouter returns the modifier-override dispatch table built
// for contract when the Workspace was constructed (§4.4, §3.5).
func (w *Workspace) ModifierCallRouter(contract *ast.ContractDefinition) *router.ModifierCallRouter {
	return w.modifierRouters[contract.NodeID()]
}

// IsIgnored reports whether line of path is suppressed by an
// aderyn-ignore-line / aderyn-ignore-next-line comment, and if so, the
// detector name it's qualified to (empty string means "all detectors").
func (w *Workspace) IsIgnored(path string, line int) (string, bool) {
	lines, ok := w.ignoreLines[path]
	if !ok {
		return "", false
	}
	reason, ok := lines[line]
	return reason, ok
}

// parseIgnoreLines scans source text for suppression comments (§6). Both
// forms accept an optional colon-prefixed, comma-separated detector-name
// qualifier list; an empty qualifier suppresses every detector on that
// line.
//
//	// aderyn-ignore-line
//	// aderyn-ignore-line:detector-name,other-detector
//	// aderyn-ignore-next-line
func parseIgnoreLines(text string) map[int]string {
	out := make(map[int]string)
	lines := strings.Split(text, "\n")
	for i, raw := range lines {
		lineNo := i + 1
		trimmed := strings.TrimSpace(raw)
		idx := strings.Index(trimmed, "aderyn-ignore-next-line")
		if idx >= 0 {
			out[lineNo+1] = extractQualifier(trimmed[idx:])
			continue
		}
		idx = strings.Index(trimmed, "aderyn-ignore-line")
		if idx >= 0 {
			out[lineNo] = extractQualifier(trimmed[idx:])
		}
	}
	return out
}

// extractQualifier parses the "[:detector1,detector2]" suffix §6 defines
// for both ignore-line directives; tail starts at the directive name
// itself, so a colon immediately following it introduces the qualifier.
func extractQualifier(tail string) string {
	colon := strings.Index(tail, ":")
	if colon < 0 {
		return ""
	}
	return strings.TrimSpace(tail[colon+1:])
}

func computeSLOC(text string) SLOCStats {
	var stats SLOCStats
	for _, line := range strings.Split(text, "\n") {
		stats.Total++
		t := strings.TrimSpace(line)
		switch {
		case t == "":
			stats.BlankLines++
		case strings.HasPrefix(t, "//") || strings.HasPrefix(t, "*") || strings.HasPrefix(t, "/*"):
			stats.CommentLines++
		default:
			stats.SourceLines++
		}
	}
	return stats
}
