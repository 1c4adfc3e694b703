package dispatch

import (
	"context"
	"log/slog"
	"strings"
)

// Tree is the root of a command hierarchy. The root itself has no name; its
// children are the top-level command words.
type Tree struct {
	children []*Node
	logger   *slog.Logger
}

// NewTree creates a tree from top-level nodes in registration order
func NewTree(nodes ...*Node) *Tree {
	children := make([]*Node, len(nodes))
	copy(children, nodes)

	return &Tree{
		children: children,
		logger:   slog.Default(),
	}
}

// WithLogger returns a copy of the tree that logs dispatch diagnostics to
// logger. The receiver is left untouched.
func (t *Tree) WithLogger(logger *slog.Logger) *Tree {
	clone := *t
	if logger != nil {
		clone.logger = logger
	}
	return &clone
}

// Resolve walks tokens one level at a time and returns the handler of the node
// matched by the final token. It returns false when a token has no matching
// sibling, when tokens is empty, or when the matched node has no handler.
func (t *Tree) Resolve(tokens []string) (Handler, bool) {
	if len(tokens) == 0 {
		return nil, false
	}
	return resolve(tokens, 0, t.children)
}

func resolve(tokens []string, index int, nodes []*Node) (Handler, bool) {
	node := findChild(nodes, tokens[index])
	if node == nil {
		return nil, false
	}
	if index+1 == len(tokens) {
		return node.Handler, node.Handler != nil
	}
	return resolve(tokens, index+1, node.Children)
}

// Lookup returns the node addressed by tokens whether or not it is executable,
// or nil when the path leaves the tree
func (t *Tree) Lookup(tokens []string) *Node {
	if len(tokens) == 0 {
		return nil
	}

	nodes := t.children
	var node *Node
	for _, tok := range tokens {
		node = findChild(nodes, tok)
		if node == nil {
			return nil
		}
		nodes = node.Children
	}
	return node
}

// Paths lists every executable command path depth-first in registration order
func (t *Tree) Paths() [][]string {
	var paths [][]string
	var walk func(prefix []string, nodes []*Node)
	walk = func(prefix []string, nodes []*Node) {
		for _, n := range nodes {
			path := append(append([]string{}, prefix...), n.Name)
			if n.Handler != nil {
				paths = append(paths, path)
			}
			walk(path, n.Children)
		}
	}
	walk(nil, t.children)
	return paths
}

// Complete returns the names of the children under the node addressed by
// tokens, or the top-level names when tokens is empty
func (t *Tree) Complete(tokens []string) []string {
	nodes := t.children
	if len(tokens) > 0 {
		node := t.Lookup(tokens)
		if node == nil {
			return nil
		}
		nodes = node.Children
	}

	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name
	}
	return names
}

// Dispatch resolves req.Tokens and runs the handler. The boolean is false when
// no handler matched, in which case the result is empty and the error nil.
func (t *Tree) Dispatch(ctx context.Context, req Request) (Result, bool, error) {
	handler, ok := t.Resolve(req.Tokens)
	if !ok {
		t.logger.Debug("no command matched", "tokens", strings.Join(req.Tokens, " "))
		return Result{}, false, nil
	}

	t.logger.Debug("dispatching command", "tokens", strings.Join(req.Tokens, " "))
	res, err := handler.Execute(ctx, req)
	if err != nil {
		return Result{}, true, err
	}
	return res, true, nil
}
