package render

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// OpenRouterKeysURL is where users create the API key used for summaries.
const OpenRouterKeysURL = "https://openrouter.ai/keys"

// Desktop is the side-effecting half of the package; views depend on it so
// tests can swap in a recorder.
type Desktop interface {
	Copy(text string) error
	Open(url string) error
}

type systemDesktop struct{}

func NewSystemDesktop() Desktop {
	return systemDesktop{}
}

func (systemDesktop) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

func (systemDesktop) Open(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	return nil
}
