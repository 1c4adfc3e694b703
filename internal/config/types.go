package config

// Settings represents the kubetab settings file structure
type Settings struct {
	// Output is the default output format (table, json, yaml)
	Output string `yaml:"output,omitempty" json:"output,omitempty" mapstructure:"output"`

	// NoColor disables colored output
	NoColor bool `yaml:"noColor,omitempty" json:"noColor,omitempty" mapstructure:"noColor"`

	// NoHeaders hides table headers
	NoHeaders bool `yaml:"noHeaders,omitempty" json:"noHeaders,omitempty" mapstructure:"noHeaders"`

	// StrictNamespace rejects namespaces that are not strings or not DNS-1123 labels
	StrictNamespace bool `yaml:"strictNamespace,omitempty" json:"strictNamespace,omitempty" mapstructure:"strictNamespace"`
}
