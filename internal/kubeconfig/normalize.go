package kubeconfig

import "github.com/aryankumar/kubetab/internal/row"

// Normalize flattens cfg into the display row.
//
// Top-level keys, in order: apiVersion, clusters, contexts, current_context, kind,
// users. Cluster and context sub-keys are hyphenated; user sub-keys use
// underscores and absent credentials become "". Both spellings are part of the
// output contract. Sequences keep document order.
func Normalize(cfg *KubeConfig) row.Row {
	clusters := make([]row.Row, 0, len(cfg.Clusters))
	for _, c := range cfg.Clusters {
		clusters = append(clusters, row.New(
			row.Sub("cluster", row.New(
				row.Str("certificate-authority-data", c.Cluster.CertificateAuthorityData),
				row.Str("server", c.Cluster.Server),
			)),
			row.Str("name", c.Name),
		))
	}

	contexts := make([]row.Row, 0, len(cfg.Contexts))
	for _, c := range cfg.Contexts {
		contexts = append(contexts, row.New(
			row.Sub("context", row.New(
				row.Str("cluster", c.Context.Cluster),
				row.Str("user", c.Context.User),
			)),
			row.Str("name", c.Name),
		))
	}

	users := make([]row.Row, 0, len(cfg.Users))
	for _, u := range cfg.Users {
		users = append(users, row.New(
			row.Str("name", u.Name),
			row.Sub("user", row.New(
				row.Str("client_certificate_data", deref(u.User.ClientCertificateData)),
				row.Str("client_key_data", deref(u.User.ClientKeyData)),
				row.Str("token", deref(u.User.Token)),
			)),
		))
	}

	return row.New(
		row.Str("apiVersion", cfg.APIVersion),
		row.Seq("clusters", clusters),
		row.Seq("contexts", contexts),
		row.Str("current_context", cfg.CurrentContext),
		row.Str("kind", cfg.Kind),
		row.Seq("users", users),
	)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
