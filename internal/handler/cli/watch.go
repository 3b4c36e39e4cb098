package cli

import (
	"bufio"
	"fmt"
	"io"
	"sync"
	"time"

	"TUI_yt_companion/internal/core/domain"
	"TUI_yt_companion/internal/core/preview"

	"github.com/spf13/cobra"
)

// watchCommand reads URLs line by line and prints a preview for the one that
// stays put for the debounce delay, the way the input box of the pages does.
func (a *app) watchCommand() *cobra.Command {
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Preview URLs read from stdin, debounced like the interactive input",
		Example: `  pbpaste | ytcompanion watch
  ytcompanion watch --delay 1s < urls.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd, cmd.InOrStdin(), delay)
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", preview.DebounceDelay, "quiet period before a preview is fetched")
	return cmd
}

func (a *app) watch(cmd *cobra.Command, in io.Reader, delay time.Duration) error {
	var (
		mu       sync.Mutex
		inflight sync.WaitGroup
		out      = cmd.OutOrStdout()
		uc       = a.services.VideoUseCase
	)

	var debouncer *preview.Debouncer
	debouncer = preview.NewDebouncer(delay,
		func(url string) {
			inflight.Add(1)
			go func() {
				defer inflight.Done()
				info, err := uc.GetVideoInfo(cmd.Context(), url)
				if !debouncer.Tracker().Current(url) {
					return
				}
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					fmt.Fprintf(out, "%s\n  %s\n", url, domain.UserMessage(err))
					return
				}
				fmt.Fprintf(out, "%s\n  %s (%s) by %s\n", url, info.Title, info.FormattedDuration(), info.Uploader)
			}()
		},
		nil,
	)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		debouncer.Input(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		debouncer.Stop()
		return fmt.Errorf("reading input: %w", err)
	}

	debouncer.Wait()
	inflight.Wait()
	debouncer.Stop()
	return nil
}
