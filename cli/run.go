package cli

import (
	"fmt"
	"os"

	"github.com/ka2n/tojiru/chrome"
	"github.com/ka2n/tojiru/log"
	"github.com/ka2n/tojiru/mcp"
	"github.com/spf13/cobra"
)

var (
	// Command line flags
	debugFlag bool
	appFlag   string

	// Root command
	rootCmd = &cobra.Command{
		Use:           "tojiru",
		Short:         "Manage Google Chrome tabs from the command line",
		SilenceErrors: true,
		Long: `tojiru lists and closes Google Chrome tabs on macOS.

It talks to Chrome through AppleScript (osascript), so your terminal needs
automation access to Chrome. Run "tojiru check-permissions" if commands come
back empty.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// Version information
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Version command
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print detailed version information about tojiru",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tojiru version %s\n", Version)
			fmt.Printf("  commit: %s\n", Commit)
			fmt.Printf("  built:  %s\n", Date)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&appFlag, "app", "", `Application to control (default "Google Chrome", or TOJIRU_APP)`)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mcp.Command())
	cobra.OnInitialize(func() {
		if debugFlag {
			log.SetDebug()
		}
	})
}

// Run executes the main CLI functionality
func Run() error {
	return rootCmd.Execute()
}

// bridge builds the osascript bridge from the --app flag and environment.
func bridge() chrome.Osascript {
	app := appFlag
	if app == "" {
		app = os.Getenv("TOJIRU_APP")
	}
	return chrome.Osascript{App: app}
}

// printBridgeFailure reports a failed bridge call without failing the
// process. Permission problems are distinguished from Chrome simply not
// running and point at check-permissions.
func printBridgeFailure(err error) {
	if chrome.IsPermissionDenied(err) {
		fmt.Println(errorStyle.Render("Cannot control Chrome: automation access is not granted"))
		fmt.Println(`Run "tojiru check-permissions" for setup instructions.`)
		return
	}
	fmt.Println(errorStyle.Render("No Chrome tabs found or Chrome not running"))
}
