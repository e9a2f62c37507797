package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/tacogips/cobnew/internal/app"
	"github.com/tacogips/cobnew/internal/template/model"
)

// templatesCmd represents the templates command
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in templates",
	Long: `List the built-in templates, or print one of them.

Examples:
  cobnew templates
  cobnew templates --show module
  cobnew templates --show executable --free`,
	Args: cobra.NoArgs,
	RunE: runTemplates,
}

// Templates command flags
var (
	templatesShow string
	templatesFree bool
)

func init() {
	templatesCmd.Flags().StringVar(&templatesShow, "show", "", "Print the body of the given template type")
	templatesCmd.Flags().BoolVar(&templatesFree, FlagFree, false, "With --show, print the free-format variant")
}

func runTemplates(cmd *cobra.Command, args []string) error {
	if templatesShow != "" {
		kind, err := model.ParseKind(templatesShow)
		if err != nil {
			return err
		}
		tmpl, err := app.ShowTemplate(kind, templatesFree)
		if err != nil {
			return err
		}
		if tmpl.IsEmpty() {
			printInfo("(empty template)")
			return nil
		}
		fmt.Print(tmpl.Text)
		return nil
	}

	infos, err := app.ListTemplates()
	if err != nil {
		return err
	}
	renderTemplateTable(os.Stdout, infos)
	return nil
}

// renderTemplateTable writes one row per template.
func renderTemplateTable(w io.Writer, infos []app.TemplateInfo) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Type", "Format", "Lines", "Description"})
	for _, info := range infos {
		t.AppendRow(table.Row{
			info.Kind.String(),
			info.Format.String(),
			info.Lines,
			kindDescriptions[info.Kind],
		})
	}
	if globalNoColor {
		t.SetStyle(table.StyleDefault)
	} else {
		t.SetStyle(table.StyleRounded)
	}
	t.Render()
}
