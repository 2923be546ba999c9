package chrome

import (
	"context"
	"sort"
	"strings"

	"github.com/ka2n/tojiru/log"
	"github.com/samber/lo"
)

// ListTabs queries the bridge once and returns every open tab.
//
// An empty result with a nil error means the browser reported zero tabs. A
// bridge failure returns a nil slice together with a coded error so callers
// can tell "no tabs" from "cannot ask".
func ListTabs(ctx context.Context, bridge Bridge) ([]TabRecord, error) {
	raw, err := bridge.QueryTabs(ctx)
	if err != nil {
		return nil, err
	}
	return ParseRecords(strings.TrimSpace(raw)), nil
}

// CloseTabs closes tabs of one window and returns the positions it closed,
// in close order.
//
// With all set it issues a single close-every-tab command. Otherwise the
// positions are deduplicated and closed highest first: closing a tab shifts
// every tab to its right down by one, so descending order keeps the
// remaining positions valid. Closing is best effort; a failed close is
// logged and skipped without stopping the rest.
func CloseTabs(ctx context.Context, bridge Bridge, window int, tabs []int, all bool) ([]int, error) {
	if all {
		if err := bridge.CloseAllTabs(ctx, window); err != nil {
			return nil, err
		}
		return nil, nil
	}

	ordered := lo.Uniq(tabs)
	sort.Sort(sort.Reverse(sort.IntSlice(ordered)))

	var closed []int
	for _, tab := range ordered {
		if err := bridge.CloseTab(ctx, window, tab); err != nil {
			log.Warn("failed to close tab", "window", window, "tab", tab, "error", err)
			continue
		}
		closed = append(closed, tab)
	}
	return closed, nil
}

// CheckPermission issues a no-op query against the bridge and reports
// whether automation access is granted. It is advisory only; ListTabs and
// CloseTabs do not probe first.
func CheckPermission(ctx context.Context, bridge Bridge) bool {
	if err := bridge.Probe(ctx); err != nil {
		log.Debug("permission probe failed", "error", err)
		return false
	}
	return true
}
