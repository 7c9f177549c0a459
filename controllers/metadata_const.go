package controllers

// AnnotationPrefix is shared by every annotation key homer-sync reads, on
// both Namespaces and HTTPRoutes.
const AnnotationPrefix = "home.mirceanton.com"

// Namespace annotation keys.
const (
	// AnnotationGroup overrides the group display name. On a Namespace it
	// renames the group all routes of that namespace fall into; on an
	// HTTPRoute it moves that single route into the named group.
	AnnotationGroup = AnnotationPrefix + "/group"

	// AnnotationGroupIcon sets the Font Awesome class for the group,
	// e.g. "fas fa-photo-film".
	AnnotationGroupIcon = AnnotationPrefix + "/group-icon"
)

// HTTPRoute annotation keys.
const (
	// AnnotationEnabled opts a route in ("true") or out ("false") of the
	// dashboard. Compared case-insensitively.
	AnnotationEnabled = AnnotationPrefix + "/enabled"

	// AnnotationName overrides the item display name (defaults to the
	// route's resource name).
	AnnotationName = AnnotationPrefix + "/name"

	// AnnotationSubtitle sets the item subtitle.
	AnnotationSubtitle = AnnotationPrefix + "/subtitle"

	// AnnotationIcon is the bare icon name for the item, e.g. "jellyfin".
	AnnotationIcon = AnnotationPrefix + "/icon"

	// AnnotationSort orders items within a group (ascending, default 0).
	AnnotationSort = AnnotationPrefix + "/sort"
)
