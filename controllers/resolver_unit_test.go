package controllers_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mirceanton/homer-sync/controllers"
	"github.com/mirceanton/homer-sync/test/labels"
)

var _ = Describe("Namespace metadata resolver", Label(labels.Unit), func() {

	When("Deriving the group display name", func() {

		DescribeTable("it should title-case the namespace name when no override is set",
			func(namespace, expected string) {
				Expect(controllers.NamespaceGroupName(namespace, map[string]string{})).To(Equal(expected))
			},
			Entry("single word", "tools", "Tools"),
			Entry("hyphenated name", "media-apps", "Media Apps"),
			Entry("multiple hyphens", "my-home-lab", "My Home Lab"),
			Entry("already capitalised", "Tools", "Tools"),
		)

		It("should prefer the group annotation over the namespace name", func() {
			annotations := map[string]string{controllers.AnnotationGroup: "Entertainment"}
			Expect(controllers.NamespaceGroupName("media-apps", annotations)).To(Equal("Entertainment"))
		})

		It("should ignore an empty group annotation", func() {
			annotations := map[string]string{controllers.AnnotationGroup: ""}
			Expect(controllers.NamespaceGroupName("media-apps", annotations)).To(Equal("Media Apps"))
		})
	})

	When("Deriving the group icon", func() {

		It("should fall back to the default icon", func() {
			Expect(controllers.NamespaceGroupIcon(map[string]string{})).To(Equal(controllers.DefaultGroupIcon))
		})

		It("should prefer the group-icon annotation", func() {
			annotations := map[string]string{controllers.AnnotationGroupIcon: "fas fa-photo-film"}
			Expect(controllers.NamespaceGroupIcon(annotations)).To(Equal("fas fa-photo-film"))
		})

		It("should ignore an empty group-icon annotation", func() {
			annotations := map[string]string{controllers.AnnotationGroupIcon: ""}
			Expect(controllers.NamespaceGroupIcon(annotations)).To(Equal(controllers.DefaultGroupIcon))
		})
	})

	When("Sanitizing hostnames for item URLs", func() {

		DescribeTable("it should remove protocol prefix from provided string and path",
			func(value, expected string) {
				Expect(controllers.ExtractHostName(value)).To(Equal(expected))
			},
			Entry("for plain hostname", "wiki.example.com", "wiki.example.com"),
			Entry("for HTTP url", "http://wiki.example.com", "wiki.example.com"),
			Entry("for HTTP url with path", "http://wiki.example.com/api/pages", "wiki.example.com"),
			Entry("for HTTPS url", "https://wiki.example.com", "wiki.example.com"),
			Entry("for HTTPS url with path and query params", "https://wiki.example.com/api/pages?limit=500", "wiki.example.com"),
			Entry("for non-http scheme", "gopher://wiki.example.com", "gopher://wiki.example.com"),
		)
	})

})
