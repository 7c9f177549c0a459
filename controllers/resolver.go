package controllers

import (
	"sort"
	"strings"
)

// DefaultGroupIcon is used whenever no group-icon annotation applies.
const DefaultGroupIcon = "fas fa-globe"

// NamespaceGroupName derives the group display name for a namespace: the
// group annotation when set, otherwise the namespace name with hyphens
// replaced by spaces and each word capitalised ("media-apps" → "Media Apps").
func NamespaceGroupName(namespace string, annotations map[string]string) string {
	if override := annotations[AnnotationGroup]; override != "" {
		return override
	}
	return titleCase(strings.ReplaceAll(namespace, "-", " "))
}

// NamespaceGroupIcon derives the group icon for a namespace from its
// annotations, falling back to DefaultGroupIcon.
func NamespaceGroupIcon(annotations map[string]string) string {
	if icon := annotations[AnnotationGroupIcon]; icon != "" {
		return icon
	}
	return DefaultGroupIcon
}

// titleCase capitalises the first letter of each space-separated word.
// It is used instead of the deprecated strings.Title.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// resolveGroupIcon finds the icon for an overridden group name by scanning
// all namespaces for one whose derived group name matches. Namespaces are
// visited in lexical order so that the "first match wins" rule stays
// deterministic when several namespaces derive the same group name.
func resolveGroupIcon(group string, namespaces NamespaceIndex) string {
	names := make([]string, 0, len(namespaces))
	for name := range namespaces {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if NamespaceGroupName(name, namespaces[name]) == group {
			return NamespaceGroupIcon(namespaces[name])
		}
	}
	return DefaultGroupIcon
}
