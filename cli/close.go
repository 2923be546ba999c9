package cli

import (
	"fmt"
	"strconv"

	"github.com/ka2n/tojiru/chrome"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

var closeAllFlag bool

var closeCmd = &cobra.Command{
	Use:   "close <window> [tab...]",
	Short: "Close specific Chrome tab(s)",
	Long: `Close tabs of a window by the positions shown by "tojiru list".

Tabs are closed highest position first, so the positions printed by "list"
stay valid for the whole invocation. Closing is best effort: a tab that
cannot be closed is skipped and the rest are still closed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClose,
}

func init() {
	closeCmd.Flags().BoolVar(&closeAllFlag, "all", false, "Close all tabs in the window")
	rootCmd.AddCommand(closeCmd)
}

func runClose(cmd *cobra.Command, args []string) error {
	window, tabs, err := parseCloseArgs(args, closeAllFlag)
	if err != nil {
		return err
	}

	closed, err := chrome.CloseTabs(cmd.Context(), bridge(), window, tabs, closeAllFlag)
	if err != nil {
		printBridgeFailure(err)
		return nil
	}

	if closeAllFlag {
		fmt.Println(okStyle.Render(fmt.Sprintf("Closed all tabs in window %d", window)))
		return nil
	}
	for _, tab := range closed {
		fmt.Println(okStyle.Render(fmt.Sprintf("Closed tab %d in window %d", tab, window)))
	}
	return nil
}

// parseCloseArgs validates the "close <window> <tab>..." positionals.
func parseCloseArgs(args []string, all bool) (window int, tabs []int, err error) {
	window, convErr := strconv.Atoi(args[0])
	if convErr != nil || window < 1 {
		return 0, nil, failure.New(InvalidWindow,
			failure.Message(fmt.Sprintf("Invalid window number: %q", args[0])),
		)
	}

	for _, arg := range args[1:] {
		tab, convErr := strconv.Atoi(arg)
		if convErr != nil || tab < 1 {
			return 0, nil, failure.New(InvalidTabIndex,
				failure.Message(fmt.Sprintf("Invalid tab number: %q", arg)),
			)
		}
		tabs = append(tabs, tab)
	}

	if !all && len(tabs) == 0 {
		return 0, nil, failure.New(NoTabsSpecified,
			failure.Message("Specify at least one tab number, or pass --all"),
		)
	}
	return window, tabs, nil
}
