package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/draftkit/draftkit/pkg/drafts"
	"github.com/draftkit/draftkit/pkg/template"
)

var (
	templateFields []string
	templateSave   bool
	templateCopy   bool
	templateMailto bool
	templateOut    string
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Work with static email templates",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Run: func(cmd *cobra.Command, args []string) {
		for _, tpl := range template.Catalog() {
			fields := make([]string, len(tpl.Fields))
			for i, f := range tpl.Fields {
				fields[i] = f.Name
			}
			fmt.Printf("%s  %s\n", boldStyle.Render(fmt.Sprintf("%-20s", tpl.ID)), tpl.Title)
			fmt.Printf("%s  %s\n", strings.Repeat(" ", 20), mutedStyle.Render(tpl.Category+" · fields: "+strings.Join(fields, ", ")))
		}
	},
}

var templateRenderCmd = &cobra.Command{
	Use:   "render <template-id>",
	Short: "Fill a template with field values",
	Long: "Renders a template with the given --field values. Missing fields render\n" +
		"as bracketed placeholders, so a partially filled draft stays readable.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		tpl, ok := template.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown template %q - see 'draftkit template list'", args[0])
		}

		values := make(map[string]string, len(templateFields))
		for _, pair := range templateFields {
			name, value, found := strings.Cut(pair, "=")
			if !found {
				return fmt.Errorf("invalid --field %q: want name=value", pair)
			}
			values[name] = value
		}

		text := template.Render(tpl, values)
		title := "Template: " + tpl.Title
		fmt.Print(renderDraft(title, text))

		var userID string
		if user, err := cli.sessions.Load(); err == nil && user != nil {
			userID = user.ID
		}

		if templateSave {
			saved, ok := cli.store.Save(ctx, drafts.NewDraft{
				Title:      title,
				Content:    text,
				Mode:       drafts.ModeManual,
				TemplateID: tpl.ID,
			})
			if !ok {
				fmt.Println(mutedStyle.Render("Not saved - sign in with 'draftkit login' to keep drafts."))
			} else {
				fmt.Println(successStyle.Render("Saved as " + saved.ID))
			}
		}

		return shareDraft(cmd, shareRequest{
			title:      title,
			content:    text,
			mode:       "manual",
			templateID: tpl.ID,
			userID:     userID,
			doCopy:     templateCopy,
			mailto:     templateMailto,
			outDir:     templateOut,
		})
	},
}

func init() {
	templateRenderCmd.Flags().StringArrayVarP(&templateFields, "field", "f", nil, "Field value as name=value (repeatable)")
	templateRenderCmd.Flags().BoolVar(&templateSave, "save", false, "Save the rendered draft to your account")
	templateRenderCmd.Flags().BoolVar(&templateCopy, "copy", false, "Copy the rendered draft to the clipboard")
	templateRenderCmd.Flags().BoolVar(&templateMailto, "mailto", false, "Print a mailto link for the rendered draft")
	templateRenderCmd.Flags().StringVar(&templateOut, "out", "", "Write the rendered draft as a .txt file into this directory")

	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateRenderCmd)
	rootCmd.AddCommand(templateCmd)
}
