// Package dispatch resolves a sequence of command words to a handler.
//
// Commands form a static tree built once at startup. Each node has a name that
// is unique among its siblings, an optional Handler and ordered children:
//
//	tree := dispatch.NewTree(
//	    dispatch.Group("config", "Inspect the kubeconfig",
//	        dispatch.Command("view", "Show the kubeconfig", viewHandler),
//	    ),
//	)
//
//	h, ok := tree.Resolve([]string{"config", "view"})
//
// Matching is exact and case-sensitive, one token per level. A path that ends on
// a node without a handler, or that leaves the tree, resolves to nothing; callers
// treat that as "no such command" rather than as an error.
//
// Handlers receive an immutable Request built once per invocation, so a Tree can
// be shared by concurrent invocations.
package dispatch
