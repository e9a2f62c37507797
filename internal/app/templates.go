package app

import (
	"github.com/tacogips/cobnew/internal/template/builtin"
	"github.com/tacogips/cobnew/internal/template/generator"
	"github.com/tacogips/cobnew/internal/template/model"
)

// TemplateInfo summarizes a built-in template.
type TemplateInfo struct {
	// Kind is the template kind.
	Kind model.Kind
	// Format is the source layout.
	Format model.Format
	// Lines is the number of lines in the body.
	Lines int
	// Template is the template itself.
	Template model.Template
}

// ListTemplates returns every built-in template in menu order, fixed format first.
func ListTemplates() ([]TemplateInfo, error) {
	templates, err := builtin.All()
	if err != nil {
		return nil, NewValidationError("failed to load built-in templates", err)
	}

	infos := make([]TemplateInfo, 0, len(templates))
	for _, tmpl := range templates {
		infos = append(infos, TemplateInfo{
			Kind:     tmpl.Kind,
			Format:   tmpl.Format,
			Lines:    len(generator.SplitLines(tmpl.Text)),
			Template: tmpl,
		})
	}
	return infos, nil
}

// ShowTemplate returns a single template body.
func ShowTemplate(kind model.Kind, free bool) (model.Template, error) {
	tmpl, err := builtin.Lookup(kind, model.FormatFromFlag(free))
	if err != nil {
		return model.Template{}, NewValidationError("unknown template", err)
	}
	return tmpl, nil
}

