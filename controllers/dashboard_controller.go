package controllers

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	gwapiv1 "sigs.k8s.io/gateway-api/apis/v1"

	"github.com/mirceanton/homer-sync/config"
)

// DashboardReconciler holds the controller configuration.
type DashboardReconciler struct {
	client.Client
	Log    logr.Logger
	Config *config.Config
}

// +kubebuilder:rbac:groups="",resources=namespaces,verbs=get;list;watch
// +kubebuilder:rbac:groups=gateway.networking.k8s.io,resources=httproutes,verbs=get;list;watch
// +kubebuilder:rbac:groups="",resources=configmaps,verbs=get;list;create;update

// Start runs the controller. In daemon mode it scans on a fixed interval
// until the context is cancelled, logging and carrying on when a single scan
// fails; otherwise it performs one scan and returns its error.
func (r *DashboardReconciler) Start(ctx context.Context) error {
	if !r.Config.Daemon {
		return r.Reconcile(ctx)
	}

	for {
		if err := r.Reconcile(ctx); err != nil {
			r.Log.Error(err, "Scan failed, retrying after interval")
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(r.Config.ScanInterval):
		}
	}
}

// Reconcile performs one full scan cycle: list cluster objects, filter and
// resolve routes into dashboard items, render the config and publish it.
func (r *DashboardReconciler) Reconcile(ctx context.Context) error {
	r.Log.Info("Starting scan")

	namespaces := r.fetchNamespaces(ctx)
	routes := r.fetchRoutes(ctx)
	r.Log.V(1).Info("Found httproutes", "count", len(routes))

	// The icon cache lives for exactly one scan so that annotation changes
	// between scans are always picked up.
	iconCache := make(map[string]string)
	var items []ServiceItem

	for _, route := range routes {
		if !ShouldInclude(route, r.Config, r.Log) {
			continue
		}
		if item, ok := ExtractItem(route, namespaces, iconCache, r.Log); ok {
			items = append(items, item)
		}
	}
	r.Log.Info("Collected services", "services", len(items), "groups", len(iconCache))

	manifest, err := Render(items, r.Config)
	if err != nil {
		return errors.Wrap(err, "failed rendering dashboard config")
	}

	result, err := r.PublishManifest(ctx, manifest)
	if err != nil {
		return errors.Wrap(err, "failed publishing dashboard config")
	}

	r.Log.Info("Scan complete", "result", result)
	return nil
}

// fetchNamespaces builds the namespace → annotations index. A list failure
// degrades to an empty index so groups fall back to their defaults instead
// of aborting the scan.
func (r *DashboardReconciler) fetchNamespaces(ctx context.Context) NamespaceIndex {
	index := NamespaceIndex{}

	list := &corev1.NamespaceList{}
	if err := r.List(ctx, list); err != nil {
		r.Log.Error(err, "Unable to list namespaces, group metadata falls back to defaults")
		return index
	}

	for i := range list.Items {
		annotations := list.Items[i].Annotations
		if annotations == nil {
			annotations = map[string]string{}
		}
		index[list.Items[i].Name] = annotations
	}
	return index
}

// fetchRoutes lists HTTPRoutes cluster-wide as plain snapshots. A list
// failure degrades to an empty set for this scan and is retried on the next.
func (r *DashboardReconciler) fetchRoutes(ctx context.Context) []Route {
	list := &gwapiv1.HTTPRouteList{}
	if err := r.List(ctx, list); err != nil {
		r.Log.Error(err, "Unable to list httproutes, treating route set as empty for this scan")
		return nil
	}

	routes := make([]Route, 0, len(list.Items))
	for i := range list.Items {
		routes = append(routes, NewRoute(&list.Items[i]))
	}
	return routes
}
