package controllers_test

import (
	"github.com/go-logr/logr"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mirceanton/homer-sync/controllers"
	"github.com/mirceanton/homer-sync/test/labels"
)

var _ = Describe("Item extractor", Label(labels.Unit), func() {

	var (
		namespaces controllers.NamespaceIndex
		iconCache  map[string]string
	)

	BeforeEach(func() {
		namespaces = controllers.NamespaceIndex{}
		iconCache = map[string]string{}
	})

	extract := func(route controllers.Route) (controllers.ServiceItem, bool) {
		return controllers.ExtractItem(route, namespaces, iconCache, logr.Discard())
	}

	route := func(annotations map[string]string, hostnames ...string) controllers.Route {
		if annotations == nil {
			annotations = map[string]string{}
		}
		return controllers.Route{
			Namespace:   "media-apps",
			Name:        "jellyfin",
			Annotations: annotations,
			Hostnames:   hostnames,
		}
	}

	It("should skip routes without hostnames regardless of annotations", func() {
		_, ok := extract(route(map[string]string{
			controllers.AnnotationEnabled: "true",
			controllers.AnnotationName:    "Jellyfin",
		}))
		Expect(ok).To(BeFalse())
	})

	It("should build the URL from the first hostname only", func() {
		item, ok := extract(route(nil, "jellyfin.example.com", "media.example.com"))
		Expect(ok).To(BeTrue())
		Expect(item.URL).To(Equal("https://jellyfin.example.com"))
	})

	It("should default every display field from the route itself", func() {
		item, ok := extract(route(nil, "jellyfin.example.com"))
		Expect(ok).To(BeTrue())
		Expect(item.Name).To(Equal("jellyfin"))
		Expect(item.Subtitle).To(BeEmpty())
		Expect(item.Icon).To(BeEmpty())
		Expect(item.Sort).To(Equal(0))
		Expect(item.Group).To(Equal("Media Apps"))
		Expect(item.GroupIcon).To(Equal(controllers.DefaultGroupIcon))
	})

	It("should apply all display overrides from annotations", func() {
		item, ok := extract(route(map[string]string{
			controllers.AnnotationName:     "Jellyfin",
			controllers.AnnotationSubtitle: "Movies & Shows",
			controllers.AnnotationIcon:     "jellyfin",
			controllers.AnnotationSort:     "-2",
		}, "jellyfin.example.com"))
		Expect(ok).To(BeTrue())
		Expect(item.Name).To(Equal("Jellyfin"))
		Expect(item.Subtitle).To(Equal("Movies & Shows"))
		Expect(item.Icon).To(Equal("jellyfin"))
		Expect(item.Sort).To(Equal(-2))
	})

	It("should skip items with a non-integer sort annotation", func() {
		_, ok := extract(route(map[string]string{
			controllers.AnnotationSort: "first",
		}, "jellyfin.example.com"))
		Expect(ok).To(BeFalse())
	})

	When("the route overrides its group", func() {

		It("should adopt the icon of the first namespace deriving that group name", func() {
			namespaces["media-apps"] = map[string]string{
				controllers.AnnotationGroupIcon: "fas fa-photo-film",
			}
			item, ok := extract(route(map[string]string{
				controllers.AnnotationGroup: "Media Apps",
			}, "jellyfin.example.com"))
			Expect(ok).To(BeTrue())
			Expect(item.Group).To(Equal("Media Apps"))
			Expect(item.GroupIcon).To(Equal("fas fa-photo-film"))
		})

		It("should use the default icon for a matching namespace without icon annotation", func() {
			namespaces["media-apps"] = map[string]string{}
			item, ok := extract(route(map[string]string{
				controllers.AnnotationGroup: "Media Apps",
			}, "jellyfin.example.com"))
			Expect(ok).To(BeTrue())
			Expect(item.GroupIcon).To(Equal(controllers.DefaultGroupIcon))
		})

		It("should use the default icon when no namespace derives the group name", func() {
			item, ok := extract(route(map[string]string{
				controllers.AnnotationGroup: "Somewhere Else",
			}, "jellyfin.example.com"))
			Expect(ok).To(BeTrue())
			Expect(item.GroupIcon).To(Equal(controllers.DefaultGroupIcon))
		})

		It("should pick the lexically first namespace when several derive the same group", func() {
			namespaces["shared-apps"] = map[string]string{
				controllers.AnnotationGroup:     "Shared",
				controllers.AnnotationGroupIcon: "fas fa-server",
			}
			namespaces["alpha-apps"] = map[string]string{
				controllers.AnnotationGroup:     "Shared",
				controllers.AnnotationGroupIcon: "fas fa-cubes",
			}
			item, ok := extract(route(map[string]string{
				controllers.AnnotationGroup: "Shared",
			}, "jellyfin.example.com"))
			Expect(ok).To(BeTrue())
			Expect(item.GroupIcon).To(Equal("fas fa-cubes"))
		})
	})

	When("resolving group icons repeatedly", func() {

		It("should memoise the resolution per group for the cycle", func() {
			iconCache["Media Apps"] = "fas fa-compact-disc"
			namespaces["media-apps"] = map[string]string{
				controllers.AnnotationGroupIcon: "fas fa-photo-film",
			}
			item, ok := extract(route(nil, "jellyfin.example.com"))
			Expect(ok).To(BeTrue())
			Expect(item.GroupIcon).To(Equal("fas fa-compact-disc"))
		})
	})

})
