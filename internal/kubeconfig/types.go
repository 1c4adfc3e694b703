package kubeconfig

import "gopkg.in/yaml.v3"

// KubeConfig is the subset of a kubeconfig file kubetab understands.
// Unknown fields in the document are ignored; the fields below are required
// unless marked optional.
type KubeConfig struct {
	APIVersion     string         `yaml:"apiVersion"`
	Kind           string         `yaml:"kind"`
	CurrentContext string         `yaml:"current-context"`
	Clusters       []NamedCluster `yaml:"clusters"`
	Contexts       []NamedContext `yaml:"contexts"`
	Users          []NamedUser    `yaml:"users"`
}

// NamedCluster pairs a cluster entry with its name
type NamedCluster struct {
	Name    string  `yaml:"name"`
	Cluster Cluster `yaml:"cluster"`
}

// Cluster holds the endpoint of a cluster
type Cluster struct {
	CertificateAuthorityData string `yaml:"certificate-authority-data"`
	Server                   string `yaml:"server"`
}

// NamedContext pairs a context entry with its name
type NamedContext struct {
	Name    string  `yaml:"name"`
	Context Context `yaml:"context"`
}

// Context binds a cluster to a user
type Context struct {
	Cluster string `yaml:"cluster"`
	User    string `yaml:"user"`
}

// NamedUser pairs a user entry with its name
type NamedUser struct {
	Name string `yaml:"name"`
	User User   `yaml:"user"`
}

// User holds credentials. Every field is optional.
type User struct {
	ClientCertificateData *string `yaml:"client-certificate-data,omitempty"`
	ClientKeyData         *string `yaml:"client-key-data,omitempty"`
	Token                 *string `yaml:"token,omitempty"`
}

// UnmarshalYAML enforces the required top-level keys and non-null list entries
func (c *KubeConfig) UnmarshalYAML(value *yaml.Node) error {
	if err := requireKeys(value, "apiVersion", "clusters", "contexts", "current-context", "kind", "users"); err != nil {
		return err
	}
	if err := rejectNullItems(value, "clusters", "contexts", "users"); err != nil {
		return err
	}
	type plain KubeConfig
	return value.Decode((*plain)(c))
}

// UnmarshalYAML enforces the required cluster entry keys
func (c *NamedCluster) UnmarshalYAML(value *yaml.Node) error {
	if err := requireKeys(value, "cluster", "name"); err != nil {
		return err
	}
	type plain NamedCluster
	return value.Decode((*plain)(c))
}

// UnmarshalYAML enforces the required cluster keys
func (c *Cluster) UnmarshalYAML(value *yaml.Node) error {
	if err := requireKeys(value, "certificate-authority-data", "server"); err != nil {
		return err
	}
	type plain Cluster
	return value.Decode((*plain)(c))
}

// UnmarshalYAML enforces the required context entry keys
func (c *NamedContext) UnmarshalYAML(value *yaml.Node) error {
	if err := requireKeys(value, "context", "name"); err != nil {
		return err
	}
	type plain NamedContext
	return value.Decode((*plain)(c))
}

// UnmarshalYAML enforces the required context keys
func (c *Context) UnmarshalYAML(value *yaml.Node) error {
	if err := requireKeys(value, "cluster", "user"); err != nil {
		return err
	}
	type plain Context
	return value.Decode((*plain)(c))
}

// UnmarshalYAML enforces the required user entry keys
func (u *NamedUser) UnmarshalYAML(value *yaml.Node) error {
	if err := requireKeys(value, "name", "user"); err != nil {
		return err
	}
	type plain NamedUser
	return value.Decode((*plain)(u))
}
