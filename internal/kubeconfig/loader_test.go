package kubeconfig

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aryankumar/kubetab/internal/util"
)

func TestLoader_Load(t *testing.T) {
	path := writeKubeconfig(t, twoClusterConfig)

	cfg, err := NewLoader(nil).Load(path)
	if err != nil {
		t.Fatalf("failed to load kubeconfig: %v", err)
	}

	if cfg.APIVersion != "v1" {
		t.Errorf("got apiVersion %q, want %q", cfg.APIVersion, "v1")
	}
	if cfg.Kind != "Config" {
		t.Errorf("got kind %q, want %q", cfg.Kind, "Config")
	}
	if cfg.CurrentContext != "dev" {
		t.Errorf("got current context %q, want %q", cfg.CurrentContext, "dev")
	}

	if len(cfg.Clusters) != 2 {
		t.Fatalf("got %d clusters, want 2", len(cfg.Clusters))
	}
	if cfg.Clusters[0].Name != "dev-cluster" || cfg.Clusters[1].Name != "prod-cluster" {
		t.Errorf("clusters out of document order: %q, %q", cfg.Clusters[0].Name, cfg.Clusters[1].Name)
	}
	if cfg.Clusters[1].Cluster.Server != "https://prod.example.com:6443" {
		t.Errorf("got server %q", cfg.Clusters[1].Cluster.Server)
	}

	if len(cfg.Contexts) != 1 || cfg.Contexts[0].Context.User != "dev-admin" {
		t.Errorf("unexpected contexts: %+v", cfg.Contexts)
	}

	if len(cfg.Users) != 1 {
		t.Fatalf("got %d users, want 1", len(cfg.Users))
	}
	user := cfg.Users[0].User
	if user.Token == nil || *user.Token != "s3cr3t" {
		t.Errorf("unexpected token %v", user.Token)
	}
	if user.ClientCertificateData != nil || user.ClientKeyData != nil {
		t.Error("expected absent client certificate fields to stay nil")
	}
}

func TestLoad_DefaultLoader(t *testing.T) {
	path := writeKubeconfig(t, twoClusterConfig)

	if _, err := Load(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoader_Unreadable(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{name: "nonexistent file", path: filepath.Join(dir, "does-not-exist")},
		{name: "directory", path: dir},
		{name: "empty path", path: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(nil).Load(tt.path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if !util.IsUnreadable(err) {
				t.Fatalf("expected unreadable error, got %v", err)
			}

			var cfgErr *util.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *util.ConfigError, got %T", err)
			}
			if cfgErr.Path != tt.path {
				t.Errorf("got path %q, want %q", cfgErr.Path, tt.path)
			}
		})
	}
}

func TestLoader_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files regardless of mode")
	}

	path := writeKubeconfig(t, twoClusterConfig)
	if err := os.Chmod(path, 0000); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	_, err := Load(path)
	if !util.IsUnreadable(err) {
		t.Fatalf("expected unreadable error, got %v", err)
	}
}

func TestLoader_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		contains string
	}{
		{
			name:     "missing apiVersion",
			content:  strings.Replace(twoClusterConfig, "apiVersion: v1\n", "", 1),
			contains: `missing field "apiVersion"`,
		},
		{
			name:     "missing cluster server",
			content:  strings.Replace(twoClusterConfig, "    server: https://dev.example.com:6443\n", "", 1),
			contains: `missing field "server"`,
		},
		{
			name:     "missing context user",
			content:  strings.Replace(twoClusterConfig, "    user: dev-admin\n", "", 1),
			contains: `missing field "user"`,
		},
		{
			name:     "clusters is not a sequence",
			content:  strings.Replace(twoClusterConfig, "clusters:\n", "clusters: nope\nignored:\n", 1),
			contains: "cannot unmarshal",
		},
		{
			name:     "null contexts",
			content:  strings.Replace(twoClusterConfig, "contexts:\n", "contexts: ~\nignored:\n", 1),
			contains: `field "contexts" is null`,
		},
		{
			name:     "empty users value",
			content:  strings.Replace(twoClusterConfig, "users:\n- name: dev-admin\n  user:\n    token: s3cr3t\n", "users:\n", 1),
			contains: `field "users" is null`,
		},
		{
			name:     "null cluster body",
			content:  strings.Replace(twoClusterConfig, "  cluster:\n    certificate-authority-data: Y2EtZGV2\n    server: https://dev.example.com:6443\n", "  cluster: ~\n", 1),
			contains: `field "cluster" is null`,
		},
		{
			name:     "null user body",
			content:  strings.Replace(twoClusterConfig, "  user:\n    token: s3cr3t\n", "  user: ~\n", 1),
			contains: `field "user" is null`,
		},
		{
			name:     "null apiVersion",
			content:  strings.Replace(twoClusterConfig, "apiVersion: v1\n", "apiVersion: ~\n", 1),
			contains: `field "apiVersion" is null`,
		},
		{
			name:     "null cluster entry",
			content:  strings.Replace(twoClusterConfig, "clusters:\n", "clusters:\n- ~\n", 1),
			contains: "clusters[0] is null",
		},
		{
			name:     "invalid yaml",
			content:  "apiVersion: v1\n  kind: [",
			contains: "yaml:",
		},
		{
			name:     "empty file",
			content:  "",
			contains: "document is empty",
		},
		{
			name:     "null document",
			content:  "~\n",
			contains: "document is empty",
		},
		{
			name:     "scalar document",
			content:  "just a string\n",
			contains: "cannot unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeKubeconfig(t, tt.content)

			cfg, err := Load(path)
			if err == nil {
				t.Fatalf("expected error, got config %+v", cfg)
			}
			if cfg != nil {
				t.Error("expected no partial result on failure")
			}

			if !util.IsMalformed(err) {
				t.Fatalf("expected malformed error, got %v", err)
			}

			var cfgErr *util.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *util.ConfigError, got %T", err)
			}
			if !strings.Contains(cfgErr.Details, tt.contains) {
				t.Errorf("expected details to contain %q, got %q", tt.contains, cfgErr.Details)
			}
		})
	}
}

func TestLoader_MissingFieldsAggregated(t *testing.T) {
	path := writeKubeconfig(t, "apiVersion: v1\nclusters: []\n")

	_, err := Load(path)

	var cfgErr *util.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *util.ConfigError, got %v", err)
	}
	for _, field := range []string{"contexts", "current-context", "kind", "users"} {
		if !strings.Contains(cfgErr.Details, field) {
			t.Errorf("expected details to mention %q, got %q", field, cfgErr.Details)
		}
	}
}

func TestParse_IgnoresUnknownFields(t *testing.T) {
	content := twoClusterConfig + "extensions:\n- name: foo\n  extension: {}\n"

	cfg, err := Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Clusters) != 2 {
		t.Errorf("got %d clusters, want 2", len(cfg.Clusters))
	}
}

func TestParse_UserFieldsOptional(t *testing.T) {
	content := strings.Replace(twoClusterConfig, "    token: s3cr3t\n", "    client-certificate-data: Y2VydA==\n    client-key-data: a2V5\n", 1)

	cfg, err := Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := cfg.Users[0].User
	if user.Token != nil {
		t.Errorf("expected nil token, got %q", *user.Token)
	}
	if user.ClientCertificateData == nil || *user.ClientCertificateData != "Y2VydA==" {
		t.Errorf("unexpected client certificate data %v", user.ClientCertificateData)
	}
}
