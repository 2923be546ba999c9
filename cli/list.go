package cli

import (
	"fmt"

	"github.com/ka2n/tojiru/chrome"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

var listFormat = newFormatFlag()

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all open Chrome tabs",
	Long: `List every open tab of every Chrome window.

Window and tab numbers are the browser's own 1-based positions at the moment
of the query; they shift when tabs are opened or closed, so list again before
closing.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().VarP(listFormat, "format", "f", "Output format: table, plain or json")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	tabs, err := chrome.ListTabs(cmd.Context(), bridge())
	if err != nil {
		printBridgeFailure(err)
		return nil
	}

	if len(tabs) == 0 {
		fmt.Println("No Chrome tabs open")
		return nil
	}

	out, err := renderTabs(tabs, listFormat.Format())
	if err != nil {
		return failure.Wrap(err)
	}
	fmt.Print(out)
	return nil
}
