package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/draftkit/draftkit/pkg/analytics"
	"github.com/draftkit/draftkit/pkg/drafts"
	"github.com/draftkit/draftkit/pkg/export"
	"github.com/draftkit/draftkit/pkg/generator"
)

var (
	generateTone   string
	generateSave   bool
	generateCopy   bool
	generateMailto bool
	generateOut    string
)

var generateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "Generate an email draft from a prompt",
	Long: "Generates a complete email draft from a short description. With a\n" +
		"configured API key the draft comes from the remote model; without one a\n" +
		"deterministic offline skeleton is produced, so generate always succeeds.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		prompt := strings.TrimSpace(strings.Join(args, " "))
		if prompt == "" {
			return fmt.Errorf("prompt cannot be empty")
		}

		tone := generator.Tone(generateTone)
		if !tone.Valid() {
			return fmt.Errorf("unknown tone %q (one of: %s)", generateTone, toneList())
		}

		var userID string
		if user, err := cli.sessions.Load(); err == nil && user != nil {
			userID = user.ID
		}

		text := cli.gen.Generate(ctx, generator.Request{
			Prompt: prompt,
			Tone:   tone,
			UserID: userID,
		})

		title := "AI Draft: " + prompt
		fmt.Print(renderDraft(title, text))

		if generateSave {
			saved, ok := cli.store.Save(ctx, drafts.NewDraft{
				Title:   title,
				Content: text,
				Mode:    drafts.ModeAI,
				Tone:    string(tone),
				Prompt:  prompt,
			})
			if !ok {
				fmt.Println(mutedStyle.Render("Not saved - sign in with 'draftkit login' to keep drafts."))
			} else {
				fmt.Println(successStyle.Render("Saved as " + saved.ID))
			}
		}

		return shareDraft(cmd, shareRequest{
			title:   title,
			content: text,
			mode:    "ai",
			tone:    string(tone),
			userID:  userID,
			doCopy:  generateCopy,
			mailto:  generateMailto,
			outDir:  generateOut,
		})
	},
}

// shareRequest carries the copy/mailto/file options common to generate,
// template render and the saved-draft commands.
type shareRequest struct {
	title      string
	content    string
	mode       string
	tone       string
	templateID string
	userID     string
	doCopy     bool
	mailto     bool
	outDir     string
}

func shareDraft(cmd *cobra.Command, req shareRequest) error {
	if req.doCopy {
		if err := clipboard.WriteAll(req.content); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Println(successStyle.Render("Copied to clipboard."))
		emitShareEvent(cmd, analytics.ActionDraftCopied, req)
	}

	if req.mailto {
		fmt.Println(accentStyle.Render(export.MailtoURL(req.title, req.content)))
		emitShareEvent(cmd, analytics.ActionDraftEmailed, req)
	}

	if req.outDir != "" {
		path, err := export.WriteFile(req.outDir, req.title, req.content)
		if err != nil {
			return err
		}
		fmt.Println(successStyle.Render("Wrote " + path))
	}
	return nil
}

func emitShareEvent(cmd *cobra.Command, action analytics.ActionType, req shareRequest) {
	if req.userID == "" {
		return
	}
	analytics.Emit(cmd.Context(), cli.sink, cli.log, analytics.Event{
		Action:     action,
		UserID:     req.userID,
		Mode:       req.mode,
		Tone:       req.tone,
		TemplateID: req.templateID,
	})
}

func toneList() string {
	tones := generator.Tones()
	out := make([]string, len(tones))
	for i, t := range tones {
		out[i] = string(t)
	}
	return strings.Join(out, ", ")
}

func init() {
	generateCmd.Flags().StringVarP(&generateTone, "tone", "t", string(generator.ToneProfessional), "Writing tone: "+toneList())
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "Save the draft to your account")
	generateCmd.Flags().BoolVar(&generateCopy, "copy", false, "Copy the draft to the clipboard")
	generateCmd.Flags().BoolVar(&generateMailto, "mailto", false, "Print a mailto link for the draft")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "Write the draft as a .txt file into this directory")

	rootCmd.AddCommand(generateCmd)
}
