package controllers

import (
	gwapiv1 "sigs.k8s.io/gateway-api/apis/v1"
)

// Route is a flattened, immutable snapshot of a single HTTPRoute, carrying
// only the fields the dashboard cares about. Snapshots are rebuilt from the
// live objects on every scan and never written back.
type Route struct {
	Namespace   string
	Name        string
	Annotations map[string]string
	Hostnames   []string
	Gateways    []string
}

// NewRoute builds a snapshot from a live HTTPRoute. A nil annotation map is
// normalised to an empty one so lookups never have to nil-check.
func NewRoute(httpRoute *gwapiv1.HTTPRoute) Route {
	annotations := httpRoute.Annotations
	if annotations == nil {
		annotations = map[string]string{}
	}

	hostnames := make([]string, 0, len(httpRoute.Spec.Hostnames))
	for _, h := range httpRoute.Spec.Hostnames {
		hostnames = append(hostnames, string(h))
	}

	gateways := make([]string, 0, len(httpRoute.Spec.ParentRefs))
	for _, ref := range httpRoute.Spec.ParentRefs {
		gateways = append(gateways, string(ref.Name))
	}

	return Route{
		Namespace:   httpRoute.Namespace,
		Name:        httpRoute.Name,
		Annotations: annotations,
		Hostnames:   hostnames,
		Gateways:    gateways,
	}
}

// NamespaceIndex maps namespace names to their annotation sets. It is
// rebuilt once per scan so group resolution never re-queries the API.
type NamespaceIndex map[string]map[string]string
