package kubernetes

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"mental-health-predictor/internal/config"
	"mental-health-predictor/internal/core/domain"
	"mental-health-predictor/internal/core/ports/output"
)

var configMapGVR = schema.GroupVersionResource{
	Group:    "",
	Version:  "v1",
	Resource: "configmaps",
}

type configMapSource struct {
	client    dynamic.Interface
	namespace string
	name      string
}

// NewConfigMapSource serves artifacts stored as keys of a single ConfigMap.
func NewConfigMapSource(cfg *config.KubernetesConfig) (ports.ArtifactSource, error) {
	var restCfg *rest.Config
	var err error

	if cfg.InCluster {
		restCfg, err = rest.InClusterConfig()
	} else if cfg.KubeConfigPath != "" {
		restCfg, err = clientcmd.BuildConfigFromFlags("", cfg.KubeConfigPath)
	} else {
		// Try default kubeconfig location
		home, _ := os.UserHomeDir()
		kubeconfig := filepath.Join(home, ".kube", "config")
		restCfg, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
	}
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	client, err := dynamic.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamic client: %w", err)
	}

	return newConfigMapSource(client, cfg.Namespace, cfg.ConfigMap), nil
}

func newConfigMapSource(client dynamic.Interface, namespace, name string) *configMapSource {
	if namespace == "" {
		namespace = "default"
	}
	return &configMapSource{client: client, namespace: namespace, name: name}
}

func (s *configMapSource) Describe(key string) string {
	return fmt.Sprintf("configmap:%s/%s[%s]", s.namespace, s.name, key)
}

func (s *configMapSource) Fetch(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.Resource(configMapGVR).Namespace(s.namespace).Get(ctx, s.name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, s.Describe(key))
		}
		return nil, fmt.Errorf("%w: get %s: %v", domain.ErrArtifactCorrupt, s.Describe(key), err)
	}

	binary, _, _ := unstructured.NestedStringMap(obj.Object, "binaryData")
	if encoded, ok := binary[key]; ok {
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrArtifactCorrupt, s.Describe(key), err)
		}
		return data, nil
	}

	text, _, _ := unstructured.NestedStringMap(obj.Object, "data")
	if v, ok := text[key]; ok {
		return []byte(v), nil
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, s.Describe(key))
}
