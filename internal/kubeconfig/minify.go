package kubeconfig

import "fmt"

// Minify returns a copy of cfg reduced to the current context, the cluster it
// references and the user it references. Entries keep their relative order.
// References that do not resolve are dropped silently.
func Minify(cfg *KubeConfig) (*KubeConfig, error) {
	var current *NamedContext
	for i := range cfg.Contexts {
		if cfg.Contexts[i].Name == cfg.CurrentContext {
			current = &cfg.Contexts[i]
			break
		}
	}
	if current == nil {
		return nil, fmt.Errorf("cannot minify: current-context %q not found", cfg.CurrentContext)
	}

	out := &KubeConfig{
		APIVersion:     cfg.APIVersion,
		Kind:           cfg.Kind,
		CurrentContext: cfg.CurrentContext,
		Clusters:       []NamedCluster{},
		Contexts:       []NamedContext{*current},
		Users:          []NamedUser{},
	}

	for _, c := range cfg.Clusters {
		if c.Name == current.Context.Cluster {
			out.Clusters = append(out.Clusters, c)
			break
		}
	}
	for _, u := range cfg.Users {
		if u.Name == current.Context.User {
			out.Users = append(out.Users, u)
			break
		}
	}

	return out, nil
}
