// Package kubectl wires argument resolution, the command tree and the kubeconfig
// handlers into a single invocation.
package kubectl

import (
	"context"
	"log/slog"

	"github.com/aryankumar/kubetab/internal/args"
	"github.com/aryankumar/kubetab/internal/dispatch"
	"github.com/aryankumar/kubetab/internal/kubeconfig"
)

// Options tune a single invocation
type Options struct {
	// Args controls argument resolution
	Args args.Options

	// Minify reduces config view output to the current context
	Minify bool
}

// Kubectl owns the static command tree. It holds no per-invocation state and
// may be shared across concurrent invocations.
type Kubectl struct {
	tree   *dispatch.Tree
	logger *slog.Logger
}

// New builds the command tree
func New(logger *slog.Logger) *Kubectl {
	if logger == nil {
		logger = slog.Default()
	}

	return &Kubectl{
		tree:   newTree(kubeconfig.NewLoader(logger)).WithLogger(logger),
		logger: logger,
	}
}

// Tree returns the command tree for help and completion
func (k *Kubectl) Tree() *dispatch.Tree {
	return k.tree
}

// NewRequest builds the immutable request for one invocation
func NewRequest(resolved args.Resolved, minify bool) dispatch.Request {
	tokens := make([]string, len(resolved.Tokens))
	copy(tokens, resolved.Tokens)

	return dispatch.Request{
		Namespace:      resolved.Namespace,
		KubeconfigPath: resolved.KubeconfigPath,
		Tokens:         tokens,
		Minify:         minify,
	}
}

// Run resolves call, dispatches the command path and returns its result.
// The boolean is false when the tokens name no command; that is not an error.
func (k *Kubectl) Run(ctx context.Context, call args.CallInfo, opts Options) (dispatch.Result, bool, error) {
	resolved, err := args.Resolve(call, opts.Args)
	if err != nil {
		return dispatch.Result{}, false, err
	}

	k.logger.Debug("resolved arguments",
		"namespace", resolved.Namespace,
		"kubeconfig", resolved.KubeconfigPath,
		"tokens", resolved.Tokens)

	return k.tree.Dispatch(ctx, NewRequest(resolved, opts.Minify))
}
