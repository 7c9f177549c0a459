package controllers

import (
	"bytes"
	_ "embed" // needed for go:embed directive
	"os"
	"sort"
	"text/template"

	"github.com/pkg/errors"

	"github.com/mirceanton/homer-sync/config"
)

//go:embed template/config.yml.tmpl
var builtinTemplate string

// TemplateData is the context passed to the dashboard config template.
type TemplateData struct {
	Title    string
	Subtitle string
	Columns  int
	Groups   []Group
}

// Group is one dashboard service group with its sorted items.
type Group struct {
	Name  string
	Icon  string
	Items []ServiceItem
}

// Render produces the dashboard config text for a set of items. Groups are
// ordered lexically by display name and items within a group by ascending
// sort key, ties broken by name, so identical input always renders to
// byte-identical output.
//
// When cfg.TemplatePath is set that file replaces the built-in template; any
// failure to read, parse or execute a template is fatal for the scan.
func Render(items []ServiceItem, cfg *config.Config) (string, error) {
	data := TemplateData{
		Title:    cfg.Title,
		Subtitle: cfg.Subtitle,
		Columns:  cfg.Columns,
		Groups:   groupItems(items),
	}

	src := builtinTemplate
	if cfg.TemplatePath != "" {
		raw, err := os.ReadFile(cfg.TemplatePath)
		if err != nil {
			return "", errors.Wrapf(err, "failed reading custom template %s", cfg.TemplatePath)
		}
		src = string(raw)
	}

	tmpl, err := template.New("dashboard").Parse(src)
	if err != nil {
		return "", errors.Wrap(err, "failed parsing dashboard template")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "failed executing dashboard template")
	}
	return buf.String(), nil
}

func groupItems(items []ServiceItem) []Group {
	byName := make(map[string][]ServiceItem)
	for _, item := range items {
		byName[item.Group] = append(byName[item.Group], item)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]Group, 0, len(names))
	for _, name := range names {
		members := byName[name]
		sort.SliceStable(members, func(i, j int) bool {
			if members[i].Sort != members[j].Sort {
				return members[i].Sort < members[j].Sort
			}
			return members[i].Name < members[j].Name
		})
		groups = append(groups, Group{
			Name:  name,
			Icon:  members[0].GroupIcon,
			Items: members,
		})
	}
	return groups
}
