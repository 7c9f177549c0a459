package controllers

import (
	"strings"

	"github.com/go-logr/logr"

	"github.com/mirceanton/homer-sync/config"
)

// ShouldInclude decides whether a route appears on the dashboard.
//
// Without any configured filters the dashboard is opt-in: only routes
// explicitly annotated with enabled="true" are shown. As soon as a gateway
// or domain-suffix filter is configured the mode flips to opt-out: every
// route passing the filters is shown unless annotated with enabled="false".
func ShouldInclude(route Route, cfg *config.Config, log logr.Logger) bool {
	enabled := strings.ToLower(route.Annotations[AnnotationEnabled])

	if !cfg.HasFilters() {
		return enabled == "true"
	}

	if enabled == "false" {
		log.V(1).Info("Excluding route: disabled by annotation",
			"namespace", route.Namespace, "name", route.Name)
		return false
	}

	if len(cfg.GatewayNames) > 0 && !matchesGateway(route, cfg.GatewayNames) {
		log.V(1).Info("Excluding route: no matching gateway",
			"namespace", route.Namespace, "name", route.Name, "gateways", cfg.GatewayNames)
		return false
	}

	if len(cfg.DomainSuffixes) > 0 && !matchesDomainSuffix(route, cfg.DomainSuffixes) {
		log.V(1).Info("Excluding route: no hostname matches suffixes",
			"namespace", route.Namespace, "name", route.Name, "suffixes", cfg.DomainSuffixes)
		return false
	}

	return true
}

func matchesGateway(route Route, names []string) bool {
	for _, gateway := range route.Gateways {
		for _, want := range names {
			if gateway == want {
				return true
			}
		}
	}
	return false
}

func matchesDomainSuffix(route Route, suffixes []string) bool {
	for _, hostname := range route.Hostnames {
		for _, suffix := range suffixes {
			if strings.HasSuffix(hostname, suffix) {
				return true
			}
		}
	}
	return false
}
