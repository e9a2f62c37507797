// Package builtin holds the source skeletons shipped with cobnew.
// Bodies are embedded at build time and never change at runtime.
package builtin

import (
	"embed"
	"fmt"
	"path"

	"github.com/tacogips/cobnew/internal/template/model"
)

//go:embed bodies/*/*.cbl
var bodiesFS embed.FS

// Lookup returns the template for the given kind and format.
// KindEmpty yields an empty body for both formats.
func Lookup(kind model.Kind, format model.Format) (model.Template, error) {
	if !kind.Valid() {
		return model.Template{}, fmt.Errorf("unknown template kind: %v", kind)
	}

	tmpl := model.Template{Kind: kind, Format: format}
	if kind == model.KindEmpty {
		return tmpl, nil
	}

	name := path.Join("bodies", format.String(), kind.String()+".cbl")
	data, err := bodiesFS.ReadFile(name)
	if err != nil {
		return model.Template{}, fmt.Errorf("failed to read embedded template %s: %w", name, err)
	}
	tmpl.Text = string(data)
	return tmpl, nil
}

// Text returns the body for kind, picking the free-format variant when free is set.
func Text(kind model.Kind, free bool) (string, error) {
	tmpl, err := Lookup(kind, model.FormatFromFlag(free))
	if err != nil {
		return "", err
	}
	return tmpl.Text, nil
}

// All returns every kind/format combination, fixed format first.
func All() ([]model.Template, error) {
	var templates []model.Template
	for _, format := range []model.Format{model.FormatFixed, model.FormatFree} {
		for _, kind := range model.Kinds() {
			tmpl, err := Lookup(kind, format)
			if err != nil {
				return nil, err
			}
			templates = append(templates, tmpl)
		}
	}
	return templates, nil
}
