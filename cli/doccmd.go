package cli

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/morikuni/failure/v2"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

//go:embed usage.md
var usageDoc string

const projectURL = "https://github.com/ka2n/tojiru"

var (
	docBrowserFlag bool
	docRawFlag     bool
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Show the full tool documentation",
	Args:  cobra.NoArgs,
	RunE:  runDoc,
}

func init() {
	docCmd.Flags().BoolVarP(&docBrowserFlag, "browser", "b", false, "Open the project page in the browser instead")
	docCmd.Flags().BoolVar(&docRawFlag, "raw", false, "Print raw markdown without rendering")
	rootCmd.AddCommand(docCmd)
}

func runDoc(cmd *cobra.Command, args []string) error {
	if docBrowserFlag {
		return browser.OpenURL(projectURL)
	}

	if docRawFlag || !stdoutIsTerminal() {
		fmt.Print(usageDoc)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return failure.Wrap(err)
	}

	out, err := renderer.Render(usageDoc)
	if err != nil {
		return failure.Wrap(err)
	}

	return RunPager(out)
}
