package kubectl

import (
	"context"

	"github.com/aryankumar/kubetab/internal/dispatch"
	"github.com/aryankumar/kubetab/internal/kubeconfig"
	"github.com/aryankumar/kubetab/internal/row"
)

// configLoader is the part of kubeconfig.Loader the handlers need
type configLoader interface {
	Load(path string) (*kubeconfig.KubeConfig, error)
}

func newTree(loader configLoader) *dispatch.Tree {
	return dispatch.NewTree(
		dispatch.Group("config", "Inspect kubeconfig files",
			dispatch.Command("view", "Display the kubeconfig as a structured record", &viewCommand{loader: loader}),
			dispatch.Command("current-context", "Display the current-context", &currentContextCommand{loader: loader}),
			dispatch.Command("get-contexts", "List the contexts", &getContextsCommand{loader: loader}),
			dispatch.Command("get-clusters", "List the clusters", &getClustersCommand{loader: loader}),
			dispatch.Command("get-users", "List the users", &getUsersCommand{loader: loader}),
			dispatch.Command("validate", "Report dangling references and incomplete entries", &validateCommand{loader: loader}),
		),
	)
}

type viewCommand struct {
	loader configLoader
}

func (c *viewCommand) Execute(ctx context.Context, req dispatch.Request) (dispatch.Result, error) {
	cfg, err := c.loader.Load(req.KubeconfigPath)
	if err != nil {
		return dispatch.Result{}, err
	}

	if req.Minify {
		if cfg, err = kubeconfig.Minify(cfg); err != nil {
			return dispatch.Result{}, err
		}
	}

	return dispatch.Result{Rows: []row.Row{kubeconfig.Normalize(cfg)}}, nil
}

type currentContextCommand struct {
	loader configLoader
}

func (c *currentContextCommand) Execute(ctx context.Context, req dispatch.Request) (dispatch.Result, error) {
	cfg, err := c.loader.Load(req.KubeconfigPath)
	if err != nil {
		return dispatch.Result{}, err
	}

	return dispatch.Result{Rows: []row.Row{
		row.New(row.Str("current_context", cfg.CurrentContext)),
	}}, nil
}

type getContextsCommand struct {
	loader configLoader
}

func (c *getContextsCommand) Execute(ctx context.Context, req dispatch.Request) (dispatch.Result, error) {
	cfg, err := c.loader.Load(req.KubeconfigPath)
	if err != nil {
		return dispatch.Result{}, err
	}

	rows := make([]row.Row, 0, len(cfg.Contexts))
	for _, nc := range cfg.Contexts {
		current := ""
		if nc.Name == cfg.CurrentContext {
			current = "*"
		}
		rows = append(rows, row.New(
			row.Str("current", current),
			row.Str("name", nc.Name),
			row.Str("cluster", nc.Context.Cluster),
			row.Str("user", nc.Context.User),
		))
	}

	return dispatch.Result{Rows: rows, List: true}, nil
}

type getClustersCommand struct {
	loader configLoader
}

func (c *getClustersCommand) Execute(ctx context.Context, req dispatch.Request) (dispatch.Result, error) {
	cfg, err := c.loader.Load(req.KubeconfigPath)
	if err != nil {
		return dispatch.Result{}, err
	}

	rows := make([]row.Row, 0, len(cfg.Clusters))
	for _, nc := range cfg.Clusters {
		rows = append(rows, row.New(
			row.Str("name", nc.Name),
			row.Str("server", nc.Cluster.Server),
		))
	}

	return dispatch.Result{Rows: rows, List: true}, nil
}

type getUsersCommand struct {
	loader configLoader
}

func (c *getUsersCommand) Execute(ctx context.Context, req dispatch.Request) (dispatch.Result, error) {
	cfg, err := c.loader.Load(req.KubeconfigPath)
	if err != nil {
		return dispatch.Result{}, err
	}

	rows := make([]row.Row, 0, len(cfg.Users))
	for _, nu := range cfg.Users {
		rows = append(rows, row.New(row.Str("name", nu.Name)))
	}

	return dispatch.Result{Rows: rows, List: true}, nil
}

type validateCommand struct {
	loader configLoader
}

func (c *validateCommand) Execute(ctx context.Context, req dispatch.Request) (dispatch.Result, error) {
	cfg, err := c.loader.Load(req.KubeconfigPath)
	if err != nil {
		return dispatch.Result{}, err
	}

	problems := kubeconfig.Validate(cfg)
	rows := make([]row.Row, 0, len(problems))
	for _, p := range problems {
		rows = append(rows, row.New(row.Str("error", p.Error())))
	}

	return dispatch.Result{Rows: rows, List: true}, nil
}
