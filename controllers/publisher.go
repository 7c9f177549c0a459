package controllers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	apierrs "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
)

// ConfigMapKey is the data key the rendered dashboard config is stored under.
const ConfigMapKey = "config.yml"

// SyncResult tells what the publish step did with the rendered config.
type SyncResult string

const (
	SyncCreated   SyncResult = "created"
	SyncUpdated   SyncResult = "updated"
	SyncUnchanged SyncResult = "unchanged"
)

// PublishManifest writes the rendered config into the target ConfigMap,
// creating it when absent and updating it only when the stored content's
// digest differs. All other fields of an existing ConfigMap are preserved.
// API failures are returned to the caller and fail the whole scan.
func (r *DashboardReconciler) PublishManifest(ctx context.Context, manifest string) (SyncResult, error) {
	log := r.Log.WithValues("namespace", r.Config.ConfigMapNamespace, "name", r.Config.ConfigMapName)

	existing := &corev1.ConfigMap{}
	err := r.Get(ctx, types.NamespacedName{
		Name:      r.Config.ConfigMapName,
		Namespace: r.Config.ConfigMapNamespace,
	}, existing)

	if apierrs.IsNotFound(err) {
		configMap := &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{
				Name:      r.Config.ConfigMapName,
				Namespace: r.Config.ConfigMapNamespace,
			},
			Data: map[string]string{ConfigMapKey: manifest},
		}
		if err := r.Create(ctx, configMap); err != nil {
			return "", errors.Wrap(err, "failed creating dashboard configmap")
		}
		log.Info("Created dashboard configmap")
		return SyncCreated, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed fetching dashboard configmap")
	}

	if contentHash(existing.Data[ConfigMapKey]) == contentHash(manifest) {
		log.V(1).Info("Dashboard configmap already up to date")
		return SyncUnchanged, nil
	}

	if existing.Data == nil {
		existing.Data = map[string]string{}
	}
	existing.Data[ConfigMapKey] = manifest
	if err := r.Update(ctx, existing); err != nil {
		return "", errors.Wrap(err, "failed updating dashboard configmap")
	}
	log.Info("Updated dashboard configmap")
	return SyncUpdated, nil
}

func contentHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
