package kubeconfig

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aryankumar/kubetab/internal/util"
	"gopkg.in/yaml.v3"
)

// errEmptyDocument is reported for files that contain no YAML document
var errEmptyDocument = errors.New("document is empty")

// Loader reads kubeconfig files from disk.
// Every call re-reads the file; nothing is cached between loads.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new kubeconfig loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load opens path and decodes it as a kubeconfig.
//
// Any failure to open the path (missing, permission denied, a directory) yields a
// *util.ConfigError of kind Unreadable carrying path. A document that does not
// match the schema yields kind Malformed with the decoder message as Details.
// The file is closed before Load returns on every path.
func (l *Loader) Load(path string) (*KubeConfig, error) {
	l.logger.Debug("loading kubeconfig", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, util.NewUnreadableError(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, util.NewUnreadableError(path, err)
	}
	if info.IsDir() {
		return nil, util.NewUnreadableError(path, fmt.Errorf("%s is a directory", path))
	}

	cfg, err := Parse(bufio.NewReader(f))
	if err != nil {
		return nil, util.NewMalformedError(path, err)
	}

	l.logger.Debug("loaded kubeconfig",
		"path", path,
		"clusters", len(cfg.Clusters),
		"contexts", len(cfg.Contexts),
		"users", len(cfg.Users))

	return cfg, nil
}

// Load reads path with a default loader
func Load(path string) (*KubeConfig, error) {
	return NewLoader(nil).Load(path)
}

// Parse decodes a single kubeconfig document from r. Only the first document of
// a multi-document stream is read.
func Parse(r io.Reader) (*KubeConfig, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyDocument
		}
		return nil, err
	}

	root := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, errEmptyDocument
		}
		root = doc.Content[0]
	}
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return nil, errEmptyDocument
	}

	cfg := &KubeConfig{}
	if err := root.Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// requireKeys reports every key missing from a mapping node, and every
// required key whose value is null. Non-mapping nodes pass through so the
// decoder can report the type mismatch itself.
func requireKeys(node *yaml.Node, keys ...string) error {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return nil
	}

	values := make(map[string]*yaml.Node, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		values[node.Content[i].Value] = node.Content[i+1]
	}

	problems := &util.MultiError{}
	for _, key := range keys {
		value, ok := values[key]
		switch {
		case !ok:
			problems.Add(fmt.Errorf("line %d: missing field %q", node.Line, key))
		case isNull(value):
			problems.Add(fmt.Errorf("line %d: field %q is null", value.Line, key))
		}
	}
	return problems.ErrorOrNil()
}

// rejectNullItems reports null entries inside the sequences stored under keys.
// The decoder would otherwise drop them without a trace.
func rejectNullItems(node *yaml.Node, keys ...string) error {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return nil
	}

	wanted := make(map[string]bool, len(keys))
	for _, key := range keys {
		wanted[key] = true
	}

	problems := &util.MultiError{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if !wanted[node.Content[i].Value] {
			continue
		}
		seq := resolveAlias(node.Content[i+1])
		if seq.Kind != yaml.SequenceNode {
			continue
		}
		for j, item := range seq.Content {
			if isNull(item) {
				problems.Add(fmt.Errorf("line %d: %s[%d] is null", item.Line, node.Content[i].Value, j))
			}
		}
	}
	return problems.ErrorOrNil()
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	node = resolveAlias(node)
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}
