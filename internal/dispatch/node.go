package dispatch

import (
	"context"

	"github.com/aryankumar/kubetab/internal/row"
)

// Request carries the per-invocation inputs every handler sees
type Request struct {
	// Namespace is the resolved namespace, "default" unless overridden
	Namespace string

	// KubeconfigPath is the resolved kubeconfig file path
	KubeconfigPath string

	// Tokens is the positional command path, e.g. ["config", "view"]
	Tokens []string

	// Minify reduces the kubeconfig to the current context before display
	Minify bool
}

// Result is what a handler hands back for display
type Result struct {
	// Rows holds the records produced by the command
	Rows []row.Row

	// List marks rows that form a homogeneous listing rather than a single record
	List bool
}

// Handler executes a fully matched command path
type Handler interface {
	Execute(ctx context.Context, req Request) (Result, error)
}

// HandlerFunc adapts an ordinary function to the Handler interface
type HandlerFunc func(ctx context.Context, req Request) (Result, error)

// Execute calls f(ctx, req)
func (f HandlerFunc) Execute(ctx context.Context, req Request) (Result, error) {
	return f(ctx, req)
}

// Node is one command word in the tree
type Node struct {
	Name     string
	Summary  string
	Handler  Handler
	Children []*Node
}

// Command creates an executable leaf
func Command(name, summary string, handler Handler) *Node {
	return &Node{
		Name:    name,
		Summary: summary,
		Handler: handler,
	}
}

// Group creates a node that only holds longer command paths
func Group(name, summary string, children ...*Node) *Node {
	return &Node{
		Name:     name,
		Summary:  summary,
		Children: children,
	}
}

// Executable reports whether the node has a handler
func (n *Node) Executable() bool {
	return n != nil && n.Handler != nil
}

func findChild(nodes []*Node, name string) *Node {
	for _, n := range nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}
