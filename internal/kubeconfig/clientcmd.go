package kubeconfig

import (
	"encoding/base64"
	"errors"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

// ToAPIConfig converts cfg to the client-go kubeconfig model.
// Base64 credential fields are decoded; values that are not valid base64 are
// passed through as raw bytes. A repeated name keeps the last entry.
func (c *KubeConfig) ToAPIConfig() *clientcmdapi.Config {
	cfg := clientcmdapi.NewConfig()
	cfg.CurrentContext = c.CurrentContext

	for _, nc := range c.Clusters {
		cluster := clientcmdapi.NewCluster()
		cluster.Server = nc.Cluster.Server
		cluster.CertificateAuthorityData = decodeData(nc.Cluster.CertificateAuthorityData)
		cfg.Clusters[nc.Name] = cluster
	}

	for _, nc := range c.Contexts {
		context := clientcmdapi.NewContext()
		context.Cluster = nc.Context.Cluster
		context.AuthInfo = nc.Context.User
		cfg.Contexts[nc.Name] = context
	}

	for _, nu := range c.Users {
		authInfo := clientcmdapi.NewAuthInfo()
		if nu.User.ClientCertificateData != nil {
			authInfo.ClientCertificateData = decodeData(*nu.User.ClientCertificateData)
		}
		if nu.User.ClientKeyData != nil {
			authInfo.ClientKeyData = decodeData(*nu.User.ClientKeyData)
		}
		authInfo.Token = deref(nu.User.Token)
		cfg.AuthInfos[nu.Name] = authInfo
	}

	return cfg
}

// Validate checks cfg with client-go's kubeconfig validation and returns every
// problem found. It never contacts a cluster.
func Validate(cfg *KubeConfig) []error {
	err := clientcmd.Validate(*cfg.ToAPIConfig())
	if err == nil {
		return nil
	}

	var agg utilerrors.Aggregate
	if errors.As(err, &agg) {
		if flat := utilerrors.Flatten(agg); flat != nil {
			return flat.Errors()
		}
		return nil
	}
	return []error{err}
}

func decodeData(s string) []byte {
	if s == "" {
		return nil
	}
	if data, err := base64.StdEncoding.DecodeString(s); err == nil {
		return data
	}
	return []byte(s)
}
