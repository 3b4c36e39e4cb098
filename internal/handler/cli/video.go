package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"TUI_yt_companion/infrastructure/render"
	"TUI_yt_companion/internal/core/domain"
	"TUI_yt_companion/internal/core/markdown"

	"github.com/spf13/cobra"
)

// userError turns a core error into the message the web client would have
// shown, so cobra prints it as "Error: <message>".
func userError(err error) error {
	return errors.New(domain.UserMessage(err))
}

func (a *app) infoCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "info <youtube-url>",
		Short:   "Show the metadata preview of a video",
		Example: `  ytcompanion info "https://www.youtube.com/watch?v=dQw4w9WgXcQ"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := a.services.VideoUseCase.GetVideoInfo(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, domain.ErrNotYouTubeURL) {
					return fmt.Errorf("%q is not a YouTube video URL", args[0])
				}
				return userError(err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			writeInfo(out, info)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the backend response as JSON")
	return cmd
}

func writeInfo(w io.Writer, info domain.VideoInfo) {
	fmt.Fprintf(w, "Title:    %s\n", info.Title)
	fmt.Fprintf(w, "By:       %s\n", info.Uploader)
	fmt.Fprintf(w, "Duration: %s (%s)\n", info.FormattedDuration(), info.ISODuration())
	if views := info.FormattedViews(); views != "" {
		fmt.Fprintf(w, "Views:    %s\n", views)
	}
	if info.UploadDate != "" {
		fmt.Fprintf(w, "Uploaded: %s\n", info.UploadDate)
	}
	if info.ID != "" {
		fmt.Fprintf(w, "URL:      %s\n", domain.WatchURL(info.ID))
	}
	if info.Thumbnail != "" {
		fmt.Fprintf(w, "Thumb:    %s\n", info.Thumbnail)
	}
}

func (a *app) transcribeCommand() *cobra.Command {
	var (
		output string
		copyIt bool
	)

	cmd := &cobra.Command{
		Use:   "transcribe <youtube-url>",
		Short: "Fetch the transcript of a video",
		Example: `  ytcompanion transcribe "https://youtu.be/dQw4w9WgXcQ"
  ytcompanion transcribe "https://youtu.be/dQw4w9WgXcQ" -o transcript.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.services.VideoUseCase.Transcribe(cmd.Context(), args[0])
			if err != nil {
				return userError(err)
			}

			if copyIt {
				a.copy(cmd, result.Transcript, "Transcript copied to clipboard!")
			}
			if output != "" {
				return os.WriteFile(output, []byte(result.Transcript), 0644)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Transcript)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().BoolVar(&copyIt, "copy", false, "also copy the transcript to the clipboard")
	return cmd
}

func (a *app) summarizeCommand() *cobra.Command {
	var (
		apiKey     string
		plain      bool
		raw        bool
		transcript bool
		copyIt     bool
	)

	cmd := &cobra.Command{
		Use:   "summarize <youtube-url>",
		Short: "Summarize a video with the configured OpenRouter key",
		Example: `  ytcompanion summarize "https://youtu.be/dQw4w9WgXcQ"
  ytcompanion summarize "https://youtu.be/dQw4w9WgXcQ" --plain --transcript`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := a.services.VideoUseCase
			var (
				result domain.SummaryResult
				err    error
			)
			if cmd.Flags().Changed("api-key") {
				result, err = uc.SummarizeWithKey(cmd.Context(), args[0], apiKey)
			} else {
				result, err = uc.Summarize(cmd.Context(), args[0])
			}
			if err != nil {
				if errors.Is(err, domain.ErrMissingAPIKey) {
					return fmt.Errorf("%s Run `ytcompanion key set <key>` or pass --api-key", domain.ErrMissingAPIKey)
				}
				return userError(err)
			}

			out := cmd.OutOrStdout()
			summary := result.Summary
			switch {
			case plain:
				summary = markdown.ToPlainText(summary)
			case raw:
			default:
				renderMarkdown := render.MarkdownNoColor
				if render.IsTerminal(out) {
					renderMarkdown = render.Markdown
				}
				rendered, err := renderMarkdown(summary, render.TerminalWidth())
				if err != nil {
					a.services.Logger.Error("Failed to render summary", err)
				} else {
					summary = rendered
				}
			}

			if copyIt {
				text, message := result.Summary, "Markdown copied to clipboard!"
				if plain {
					text, message = markdown.ToPlainText(result.Summary), "Plain text copied to clipboard!"
				}
				a.copy(cmd, text, message)
			}

			fmt.Fprintln(out, summary)
			if transcript && result.Transcript != "" {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Full Transcript")
				fmt.Fprintln(out)
				fmt.Fprintln(out, result.Transcript)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&apiKey, "api-key", "", "OpenRouter API key to use instead of the stored one")
	cmd.Flags().BoolVar(&plain, "plain", false, "print the summary as plain text")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the summary as raw markdown")
	cmd.Flags().BoolVar(&transcript, "transcript", false, "also print the full transcript")
	cmd.Flags().BoolVar(&copyIt, "copy", false, "also copy the summary to the clipboard")
	cmd.MarkFlagsMutuallyExclusive("plain", "raw")
	return cmd
}

func (a *app) downloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "download <youtube-url-or-id>",
		Short: "Ask the backend to download a video",
		Example: `  ytcompanion download dQw4w9WgXcQ
  ytcompanion download "https://www.youtube.com/watch?v=dQw4w9WgXcQ"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			result, err := a.services.VideoUseCase.Download(cmd.Context(), input)
			if err != nil {
				return userError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Video downloaded to backend server: %s\n", result.Filepath)
			return nil
		},
	}
}

func (a *app) copy(cmd *cobra.Command, text, success string) {
	if err := a.services.Desktop.Copy(text); err != nil {
		a.services.Logger.Error("Failed to copy to clipboard", err)
		fmt.Fprintln(cmd.ErrOrStderr(), "Failed to copy to clipboard")
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), success)
}
