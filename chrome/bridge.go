package chrome

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ka2n/tojiru/log"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
)

// DefaultApp is the application the scripts address when none is configured.
const DefaultApp = "Google Chrome"

// Bridge is the OS automation port. QueryTabs returns the raw enumeration
// output, one "window|tab|url|title" line per open tab. The close methods
// and Probe produce no output on success.
//
// Osascript is the macOS implementation; tests substitute their own.
type Bridge interface {
	QueryTabs(ctx context.Context) (string, error)
	CloseTab(ctx context.Context, window, tab int) error
	CloseAllTabs(ctx context.Context, window int) error
	Probe(ctx context.Context) error
}

// Osascript drives the target application with AppleScript through the
// osascript command. The zero value targets Google Chrome.
type Osascript struct {
	// App is the application name addressed in the scripts. Any
	// Chromium-family browser that answers Chrome's AppleScript
	// dictionary works. Empty means DefaultApp.
	App string
}

var _ Bridge = Osascript{}

func (o Osascript) app() string {
	if o.App == "" {
		return DefaultApp
	}
	return o.App
}

const queryTabsScript = `
tell application "%s"
	set output to ""
	repeat with w from 1 to count windows
		repeat with t from 1 to count tabs of window w
			set tabUrl to URL of tab t of window w
			set tabTitle to title of tab t of window w
			set output to output & w & "|" & t & "|" & tabUrl & "|" & tabTitle & linefeed
		end repeat
	end repeat
	return output
end tell
`

// QueryTabs returns the enumeration output for every window and tab.
func (o Osascript) QueryTabs(ctx context.Context) (string, error) {
	return o.run(ctx, fmt.Sprintf(queryTabsScript, o.app()))
}

// CloseTab closes one tab by its 1-based position within a window.
func (o Osascript) CloseTab(ctx context.Context, window, tab int) error {
	script := fmt.Sprintf(`tell application "%s" to close tab %d of window %d`, o.app(), tab, window)
	_, err := o.run(ctx, script)
	return err
}

// CloseAllTabs closes every tab of the given window.
func (o Osascript) CloseAllTabs(ctx context.Context, window int) error {
	script := fmt.Sprintf(`tell application "%s" to close every tab of window %d`, o.app(), window)
	_, err := o.run(ctx, script)
	return err
}

// Probe issues a minimal no-op query. It succeeds exactly when automation
// access to the application is granted and the application is reachable.
func (o Osascript) Probe(ctx context.Context) error {
	script := fmt.Sprintf(`tell application "%s" to get name`, o.app())
	_, err := o.run(ctx, script)
	return err
}

// run executes one osascript invocation. Each call is attempted exactly
// once, with no timeout; a hung osascript blocks the caller.
func (o Osascript) run(ctx context.Context, script string) (string, error) {
	cmd := exec.CommandContext(ctx, "osascript", "-e", script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	log.Debug("osascript",
		"app", o.app(),
		"ok", err == nil,
		"stderr", strings.TrimSpace(stderr.String()),
	)
	if err != nil {
		return "", o.classify(err, stderr.String())
	}
	return stdout.String(), nil
}

func (o Osascript) classify(err error, stderr string) error {
	if isPermissionError(stderr) {
		return failure.New(ErrPermissionDenied,
			failure.Message("Not authorized to control "+o.app()),
			failure.Context{
				"app":    o.app(),
				"stderr": strings.TrimSpace(stderr),
			},
		)
	}
	return failure.New(ErrBridgeUnavailable,
		failure.Message(o.app()+" is not reachable"),
		failure.Context{
			"app":    o.app(),
			"cause":  err.Error(),
			"stderr": strings.TrimSpace(stderr),
		},
	)
}

// A missing automation grant surfaces as AppleScript error -1743; the
// wording differs across macOS versions.
var permissionMarkers = []string{
	"not authorized",
	"not authorised",
	"not allowed",
	"-1743",
}

func isPermissionError(stderr string) bool {
	s := strings.ToLower(stderr)
	return lo.SomeBy(permissionMarkers, func(marker string) bool {
		return strings.Contains(s, marker)
	})
}
