package kubeconfig

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/aryankumar/kubetab/internal/row"
)

func TestNormalize_TopLevelOrder(t *testing.T) {
	path := writeKubeconfig(t, twoClusterConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load kubeconfig: %v", err)
	}

	r := Normalize(cfg)

	want := []string{"apiVersion", "clusters", "contexts", "current_context", "kind", "users"}
	if got := r.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("got keys %v, want %v", got, want)
	}
	if got := r.GetString("current_context"); got != "dev" {
		t.Errorf("got current_context %q, want %q", got, "dev")
	}
}

func TestNormalize_RoundTripShape(t *testing.T) {
	path := writeKubeconfig(t, twoClusterConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load kubeconfig: %v", err)
	}

	r := Normalize(cfg)

	clustersVal, _ := r.Get("clusters")
	clusters, ok := clustersVal.Rows()
	if !ok {
		t.Fatal("clusters is not a sequence")
	}
	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2", len(clusters))
	}
	if clusters[0].GetString("name") != "dev-cluster" || clusters[1].GetString("name") != "prod-cluster" {
		t.Error("clusters not in input order")
	}
	if got := clusters[0].Keys(); !reflect.DeepEqual(got, []string{"cluster", "name"}) {
		t.Errorf("got cluster keys %v", got)
	}
	if got := clusters[1].Lookup("cluster.certificate-authority-data"); got != "Y2EtcHJvZA==" {
		t.Errorf("got certificate-authority-data %q", got)
	}

	usersVal, _ := r.Get("users")
	users, _ := usersVal.Rows()
	if len(users) != 1 {
		t.Fatalf("got %d users, want 1", len(users))
	}
	if got := users[0].Keys(); !reflect.DeepEqual(got, []string{"name", "user"}) {
		t.Errorf("got user keys %v", got)
	}

	creds, ok := mustGet(t, users[0], "user").Row()
	if !ok {
		t.Fatal("user is not a nested row")
	}
	if got := creds.Keys(); !reflect.DeepEqual(got, []string{"client_certificate_data", "client_key_data", "token"}) {
		t.Errorf("got credential keys %v", got)
	}
	if creds.GetString("client_certificate_data") != "" || creds.GetString("client_key_data") != "" {
		t.Error("expected absent credentials to normalize to empty strings")
	}
	if creds.GetString("token") != "s3cr3t" {
		t.Errorf("got token %q, want %q", creds.GetString("token"), "s3cr3t")
	}

	contextsVal, _ := r.Get("contexts")
	contexts, _ := contextsVal.Rows()
	if len(contexts) != 1 {
		t.Fatalf("got %d contexts, want 1", len(contexts))
	}
	if got := contexts[0].Lookup("context.cluster"); got != "dev-cluster" {
		t.Errorf("got context cluster %q", got)
	}
}

func TestNormalize_IsPure(t *testing.T) {
	cfg := &KubeConfig{
		APIVersion:     "v1",
		Kind:           "Config",
		CurrentContext: "a",
		Clusters:       []NamedCluster{{Name: "a", Cluster: Cluster{Server: "https://a"}}},
		Contexts:       []NamedContext{{Name: "a", Context: Context{Cluster: "a", User: "a"}}},
		Users:          []NamedUser{{Name: "a", User: User{ClientKeyData: strPtr("k")}}},
	}

	first := Normalize(cfg)
	second := Normalize(cfg)

	if !first.Equal(second) {
		t.Error("expected equal rows for equal input")
	}
}

func TestNormalize_JSONContract(t *testing.T) {
	cfg := &KubeConfig{
		APIVersion:     "v1",
		Kind:           "Config",
		CurrentContext: "ctx",
		Clusters:       []NamedCluster{{Name: "c", Cluster: Cluster{CertificateAuthorityData: "ca", Server: "https://c"}}},
		Contexts:       []NamedContext{{Name: "ctx", Context: Context{Cluster: "c", User: "u"}}},
		Users:          []NamedUser{{Name: "u", User: User{Token: strPtr("t")}}},
	}

	data, err := json.Marshal(Normalize(cfg))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"apiVersion":"v1",` +
		`"clusters":[{"cluster":{"certificate-authority-data":"ca","server":"https://c"},"name":"c"}],` +
		`"contexts":[{"context":{"cluster":"c","user":"u"},"name":"ctx"}],` +
		`"current_context":"ctx","kind":"Config",` +
		`"users":[{"name":"u","user":{"client_certificate_data":"","client_key_data":"","token":"t"}}]}`
	if string(data) != want {
		t.Errorf("got\n%s\nwant\n%s", data, want)
	}
}

func TestNormalize_EmptySequences(t *testing.T) {
	r := Normalize(&KubeConfig{APIVersion: "v1", Kind: "Config"})

	for _, key := range []string{"clusters", "contexts", "users"} {
		v, ok := r.Get(key)
		if !ok {
			t.Fatalf("missing key %q", key)
		}
		rows, isTable := v.Rows()
		if !isTable || len(rows) != 0 {
			t.Errorf("expected empty sequence for %q, got %v", key, rows)
		}
	}
}

func mustGet(t *testing.T, r row.Row, key string) row.Value {
	t.Helper()
	v, ok := r.Get(key)
	if !ok {
		t.Fatalf("missing key %q", key)
	}
	return v
}
