package controllers

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
)

// ServiceItem holds the resolved metadata for a single dashboard entry.
type ServiceItem struct {
	Name      string
	Subtitle  string
	URL       string
	Icon      string
	Group     string
	GroupIcon string
	Sort      int
}

// ExtractItem builds a ServiceItem from a route snapshot and the namespace
// index. The second return value is false when the route yields no item:
// either it has no hostnames or its sort annotation is not an integer. Both
// are per-route problems and must not fail the whole scan.
//
// iconCache memoises group-name → icon lookups for the duration of one scan
// so the namespace index is walked at most once per group.
func ExtractItem(route Route, namespaces NamespaceIndex, iconCache map[string]string, log logr.Logger) (ServiceItem, bool) {
	if len(route.Hostnames) == 0 {
		log.Info("Skipping route: no hostnames defined",
			"namespace", route.Namespace, "name", route.Name)
		return ServiceItem{}, false
	}
	url := "https://" + ExtractHostName(route.Hostnames[0])

	var group string
	if override := route.Annotations[AnnotationGroup]; override != "" {
		group = override
		if _, seen := iconCache[group]; !seen {
			iconCache[group] = resolveGroupIcon(group, namespaces)
		}
	} else {
		nsAnnotations := namespaces[route.Namespace]
		group = NamespaceGroupName(route.Namespace, nsAnnotations)
		if _, seen := iconCache[group]; !seen {
			iconCache[group] = NamespaceGroupIcon(nsAnnotations)
		}
	}

	sortKey := 0
	if raw := route.Annotations[AnnotationSort]; raw != "" {
		parsed, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			log.Info("Skipping route: sort annotation is not an integer",
				"namespace", route.Namespace, "name", route.Name, "sort", raw)
			return ServiceItem{}, false
		}
		sortKey = parsed
	}

	return ServiceItem{
		Name:      stringOr(route.Annotations[AnnotationName], route.Name),
		Subtitle:  route.Annotations[AnnotationSubtitle],
		URL:       url,
		Icon:      route.Annotations[AnnotationIcon],
		Group:     group,
		GroupIcon: iconCache[group],
		Sort:      sortKey,
	}, true
}

// ExtractHostName strips given URL in string from http(s):// prefix and subsequent path.
// HTTPRoute hostnames are plain hosts already, but annotations and operator
// supplied values sometimes sneak a scheme in; the dashboard URL only needs
// the host. If given string does not start with http(s) prefix it will be
// returned as is.
func ExtractHostName(s string) string {
	r := regexp.MustCompile(`^(https?://)`)

	withoutProtocol := r.ReplaceAllString(s, "")
	if s == withoutProtocol {
		return s
	}

	index := strings.Index(withoutProtocol, "/")
	if index == -1 {
		return withoutProtocol
	}

	return withoutProtocol[:index]
}

func stringOr(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
