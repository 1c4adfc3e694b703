package kubeconfig

import (
	"os"
	"path/filepath"
	"testing"
)

const twoClusterConfig = `apiVersion: v1
kind: Config
current-context: dev
preferences: {}
clusters:
- name: dev-cluster
  cluster:
    certificate-authority-data: Y2EtZGV2
    server: https://dev.example.com:6443
- name: prod-cluster
  cluster:
    certificate-authority-data: Y2EtcHJvZA==
    server: https://prod.example.com:6443
contexts:
- name: dev
  context:
    cluster: dev-cluster
    user: dev-admin
    namespace: team-a
users:
- name: dev-admin
  user:
    token: s3cr3t
`

// writeKubeconfig writes content to a file in a fresh temp dir and returns its path
func writeKubeconfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test kubeconfig: %v", err)
	}
	return path
}

func strPtr(s string) *string {
	return &s
}
