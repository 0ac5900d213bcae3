package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftkit/draftkit/pkg/drafts"
)

var draftsFavoritesOnly bool

var draftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "Manage saved drafts",
}

var draftsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved drafts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := cli.requireUser(); err != nil {
			return err
		}
		if err := cli.store.Load(cmd.Context()); err != nil {
			return err
		}

		list := cli.store.Drafts()
		if len(list) == 0 {
			fmt.Println(mutedStyle.Render("No saved drafts yet."))
			return nil
		}

		for _, d := range list {
			if draftsFavoritesOnly && !d.IsFavorite {
				continue
			}
			fmt.Printf("%s %s  %s  %s\n",
				favoriteMark(d.IsFavorite),
				boldStyle.Render(d.ID),
				truncate(d.Title, 48),
				mutedStyle.Render(string(d.Mode)+" · "+timeAgo(d.CreatedAt)),
			)
		}
		return nil
	},
}

var draftsShowCmd = &cobra.Command{
	Use:   "show <draft-id>",
	Short: "Print a saved draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDraft(cmd, args[0])
		if err != nil {
			return err
		}
		fmt.Print(renderDraft(d.Title, d.Content))
		return nil
	},
}

var draftsCopyCmd = &cobra.Command{
	Use:   "copy <draft-id>",
	Short: "Copy a saved draft to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDraft(cmd, args[0])
		if err != nil {
			return err
		}
		return shareDraft(cmd, shareRequestFor(d, func(r *shareRequest) { r.doCopy = true }))
	},
}

var draftsMailtoCmd = &cobra.Command{
	Use:   "mailto <draft-id>",
	Short: "Print a mailto link for a saved draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDraft(cmd, args[0])
		if err != nil {
			return err
		}
		return shareDraft(cmd, shareRequestFor(d, func(r *shareRequest) { r.mailto = true }))
	},
}

var draftsExportDir string

var draftsExportCmd = &cobra.Command{
	Use:   "export <draft-id>",
	Short: "Write a saved draft as a .txt file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDraft(cmd, args[0])
		if err != nil {
			return err
		}
		return shareDraft(cmd, shareRequestFor(d, func(r *shareRequest) { r.outDir = draftsExportDir }))
	},
}

var draftsFavoriteCmd = &cobra.Command{
	Use:   "favorite <draft-id>",
	Short: "Toggle a draft's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDraft(cmd, args[0])
		if err != nil {
			return err
		}
		if err := cli.store.ToggleFavorite(cmd.Context(), d.ID); err != nil {
			return err
		}
		updated, _ := cli.store.Get(d.ID)
		if updated.IsFavorite {
			fmt.Println(successStyle.Render("Marked as favorite."))
		} else {
			fmt.Println(successStyle.Render("Removed from favorites."))
		}
		return nil
	},
}

var draftsDeleteCmd = &cobra.Command{
	Use:   "delete <draft-id>",
	Short: "Delete a saved draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDraft(cmd, args[0])
		if err != nil {
			return err
		}
		if err := cli.store.Delete(cmd.Context(), d.ID); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("Deleted " + d.ID))
		return nil
	},
}

// loadDraft syncs the store and returns the draft with the given id.
func loadDraft(cmd *cobra.Command, id string) (drafts.Draft, error) {
	if _, err := cli.requireUser(); err != nil {
		return drafts.Draft{}, err
	}
	if err := cli.store.Load(cmd.Context()); err != nil {
		return drafts.Draft{}, err
	}
	d, ok := cli.store.Get(id)
	if !ok {
		return drafts.Draft{}, fmt.Errorf("no draft with id %q", id)
	}
	return d, nil
}

func shareRequestFor(d drafts.Draft, customize func(*shareRequest)) shareRequest {
	req := shareRequest{
		title:      d.Title,
		content:    d.Content,
		mode:       string(d.Mode),
		tone:       d.Tone,
		templateID: d.TemplateID,
		userID:     d.UserID,
	}
	customize(&req)
	return req
}

func init() {
	draftsListCmd.Flags().BoolVar(&draftsFavoritesOnly, "favorites", false, "Only list favorite drafts")
	draftsExportCmd.Flags().StringVar(&draftsExportDir, "dir", ".", "Directory to write the .txt file into")

	draftsCmd.AddCommand(draftsListCmd)
	draftsCmd.AddCommand(draftsShowCmd)
	draftsCmd.AddCommand(draftsCopyCmd)
	draftsCmd.AddCommand(draftsMailtoCmd)
	draftsCmd.AddCommand(draftsExportCmd)
	draftsCmd.AddCommand(draftsFavoriteCmd)
	draftsCmd.AddCommand(draftsDeleteCmd)
	rootCmd.AddCommand(draftsCmd)
}
