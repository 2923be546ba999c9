package cli

import (
	"fmt"

	"github.com/ka2n/tojiru/chrome"
	"github.com/spf13/cobra"
)

var checkPermissionsCmd = &cobra.Command{
	Use:   "check-permissions",
	Short: "Check whether automation access to Chrome is granted",
	Long: `Issue a harmless AppleScript query against Chrome to verify that macOS
lets this process control it. This is advisory: list and close do not probe
first, they just come back empty when access is missing.`,
	Args: cobra.NoArgs,
	Run:  runCheckPermissions,
}

func init() {
	rootCmd.AddCommand(checkPermissionsCmd)
}

const permissionGuidance = `Grant automation access and try again:

  1. Run any tojiru command once to trigger the permission prompt
  2. Open System Settings > Privacy & Security > Automation
  3. Allow your terminal application to control Google Chrome`

func runCheckPermissions(cmd *cobra.Command, args []string) {
	if chrome.CheckPermission(cmd.Context(), bridge()) {
		fmt.Println(okStyle.Render("Automation access to Chrome is granted"))
		return
	}
	fmt.Println(errorStyle.Render("Automation access to Chrome is not granted (or Chrome is not reachable)"))
	fmt.Println()
	fmt.Println(permissionGuidance)
}
