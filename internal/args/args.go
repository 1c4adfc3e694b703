// Package args turns a host-provided call description into the namespace,
// kubeconfig path and command tokens for one invocation.
package args

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aryankumar/kubetab/internal/util"
	"k8s.io/apimachinery/pkg/util/validation"
)

const (
	// DefaultNamespace is used when no namespace option is supplied
	DefaultNamespace = "default"

	// OptionNamespace is the named option holding the namespace
	OptionNamespace = "namespace"

	// OptionKubeconfig is the named option holding the kubeconfig path
	OptionKubeconfig = "kubeconfig"

	// EnvKubeconfig overrides the default kubeconfig location
	EnvKubeconfig = "KUBECONFIG"

	// EnvHome is the base directory of the default kubeconfig location
	EnvHome = "HOME"
)

// CallInfo describes one invocation as the host shell saw it. Values keep their
// host types so the resolver can reject the ones that are not strings.
type CallInfo struct {
	Named      map[string]interface{}
	Positional []interface{}
}

// LookupEnv reads an environment variable; it has the shape of os.LookupEnv
type LookupEnv func(key string) (string, bool)

// Options controls resolution
type Options struct {
	// StrictNamespace rejects a non-string namespace option and one that is not
	// a DNS-1123 label instead of falling back to the default
	StrictNamespace bool

	// Env is consulted for KUBECONFIG and HOME; nil means os.LookupEnv
	Env LookupEnv
}

// Resolved is the outcome of argument resolution
type Resolved struct {
	Namespace      string
	KubeconfigPath string
	Tokens         []string
}

// Resolve extracts the namespace, kubeconfig path and positional tokens.
//
// The kubeconfig path comes from the kubeconfig option, then KUBECONFIG, then
// $HOME/.kube/config. An empty KUBECONFIG counts as unset.
func Resolve(call CallInfo, opts Options) (Resolved, error) {
	env := opts.Env
	if env == nil {
		env = os.LookupEnv
	}

	namespace, err := resolveNamespace(call.Named, opts.StrictNamespace)
	if err != nil {
		return Resolved{}, err
	}

	path, err := resolveKubeconfig(call.Named, env)
	if err != nil {
		return Resolved{}, err
	}

	tokens := make([]string, 0, len(call.Positional))
	for i, v := range call.Positional {
		s, ok := v.(string)
		if !ok {
			return Resolved{}, util.NewPositionalError(i, v)
		}
		tokens = append(tokens, s)
	}

	return Resolved{
		Namespace:      namespace,
		KubeconfigPath: path,
		Tokens:         tokens,
	}, nil
}

func resolveNamespace(named map[string]interface{}, strict bool) (string, error) {
	v, present := named[OptionNamespace]
	if !present {
		return DefaultNamespace, nil
	}

	ns, ok := v.(string)
	if !ok {
		if strict {
			return "", util.NewOptionError(OptionNamespace, v)
		}
		return DefaultNamespace, nil
	}

	if strict {
		if errs := validation.IsDNS1123Label(ns); len(errs) > 0 {
			return "", fmt.Errorf("invalid namespace %q: %s: %w", ns, errs[0], util.ErrArgumentType)
		}
	}
	return ns, nil
}

func resolveKubeconfig(named map[string]interface{}, env LookupEnv) (string, error) {
	if v, present := named[OptionKubeconfig]; present {
		path, ok := v.(string)
		if !ok {
			return "", util.NewOptionError(OptionKubeconfig, v)
		}
		return path, nil
	}

	// An empty KUBECONFIG counts as unset and falls through to HOME
	if path, ok := env(EnvKubeconfig); ok && path != "" {
		return path, nil
	}

	home, ok := env(EnvHome)
	if !ok || home == "" {
		return "", fmt.Errorf("no --kubeconfig, %s or %s set: %w", EnvKubeconfig, EnvHome, util.ErrPathResolution)
	}
	return filepath.Join(home, ".kube", "config"), nil
}
