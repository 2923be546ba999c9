package chrome

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/morikuni/failure/v2"
)

// fakeBridge records calls and plays back canned responses.
type fakeBridge struct {
	queryOut string
	queryErr error
	probeErr error

	// closeErrs maps a tab position to the error its close should return.
	closeErrs map[int]error

	closeCalls    [][2]int // (window, tab) in call order
	closeAllCalls []int    // windows
}

func (f *fakeBridge) QueryTabs(ctx context.Context) (string, error) {
	return f.queryOut, f.queryErr
}

func (f *fakeBridge) CloseTab(ctx context.Context, window, tab int) error {
	f.closeCalls = append(f.closeCalls, [2]int{window, tab})
	return f.closeErrs[tab]
}

func (f *fakeBridge) CloseAllTabs(ctx context.Context, window int) error {
	f.closeAllCalls = append(f.closeAllCalls, window)
	return nil
}

func (f *fakeBridge) Probe(ctx context.Context) error {
	return f.probeErr
}

func TestListTabs(t *testing.T) {
	ctx := context.Background()

	t.Run("returns one record per line", func(t *testing.T) {
		bridge := &fakeBridge{queryOut: "1|1|http://a.com|A\n1|2|http://b.com|B\n"}
		got, err := ListTabs(ctx, bridge)
		if err != nil {
			t.Fatalf("ListTabs() error = %v", err)
		}
		want := []TabRecord{
			{Window: 1, Tab: 1, URL: "http://a.com", Title: "A"},
			{Window: 1, Tab: 2, URL: "http://b.com", Title: "B"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ListTabs() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty output means zero tabs, not an error", func(t *testing.T) {
		bridge := &fakeBridge{queryOut: "\n"}
		got, err := ListTabs(ctx, bridge)
		if err != nil {
			t.Fatalf("ListTabs() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("ListTabs() = %v, want empty", got)
		}
	})

	t.Run("bridge failure propagates its code", func(t *testing.T) {
		bridge := &fakeBridge{queryErr: failure.New(ErrPermissionDenied)}
		got, err := ListTabs(ctx, bridge)
		if got != nil {
			t.Errorf("ListTabs() = %v, want nil", got)
		}
		if !IsPermissionDenied(err) {
			t.Errorf("ListTabs() error = %v, want PermissionDenied", err)
		}
	})
}

func TestCloseTabs(t *testing.T) {
	ctx := context.Background()

	t.Run("closes highest position first", func(t *testing.T) {
		bridge := &fakeBridge{}
		closed, err := CloseTabs(ctx, bridge, 1, []int{3, 1, 4}, false)
		if err != nil {
			t.Fatalf("CloseTabs() error = %v", err)
		}
		wantCalls := [][2]int{{1, 4}, {1, 3}, {1, 1}}
		if diff := cmp.Diff(wantCalls, bridge.closeCalls); diff != "" {
			t.Errorf("close call order mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]int{4, 3, 1}, closed); diff != "" {
			t.Errorf("closed positions mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("duplicate positions close once", func(t *testing.T) {
		bridge := &fakeBridge{}
		if _, err := CloseTabs(ctx, bridge, 1, []int{2, 2, 2}, false); err != nil {
			t.Fatalf("CloseTabs() error = %v", err)
		}
		if len(bridge.closeCalls) != 1 {
			t.Errorf("close calls = %v, want exactly one", bridge.closeCalls)
		}
	})

	t.Run("all issues one window-wide close and no per-tab calls", func(t *testing.T) {
		bridge := &fakeBridge{}
		if _, err := CloseTabs(ctx, bridge, 2, nil, true); err != nil {
			t.Fatalf("CloseTabs() error = %v", err)
		}
		if diff := cmp.Diff([]int{2}, bridge.closeAllCalls); diff != "" {
			t.Errorf("close-all calls mismatch (-want +got):\n%s", diff)
		}
		if len(bridge.closeCalls) != 0 {
			t.Errorf("close calls = %v, want none", bridge.closeCalls)
		}
	})

	t.Run("a failed close does not stop the rest", func(t *testing.T) {
		bridge := &fakeBridge{closeErrs: map[int]error{3: errors.New("gone")}}
		closed, err := CloseTabs(ctx, bridge, 1, []int{1, 2, 3}, false)
		if err != nil {
			t.Fatalf("CloseTabs() error = %v", err)
		}
		wantCalls := [][2]int{{1, 3}, {1, 2}, {1, 1}}
		if diff := cmp.Diff(wantCalls, bridge.closeCalls); diff != "" {
			t.Errorf("close call order mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]int{2, 1}, closed); diff != "" {
			t.Errorf("closed positions mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty positions without all is a no-op", func(t *testing.T) {
		bridge := &fakeBridge{}
		closed, err := CloseTabs(ctx, bridge, 1, nil, false)
		if err != nil {
			t.Fatalf("CloseTabs() error = %v", err)
		}
		if len(closed) != 0 || len(bridge.closeCalls) != 0 || len(bridge.closeAllCalls) != 0 {
			t.Errorf("expected no calls, got close=%v closeAll=%v", bridge.closeCalls, bridge.closeAllCalls)
		}
	})
}

func TestCheckPermission(t *testing.T) {
	ctx := context.Background()

	if !CheckPermission(ctx, &fakeBridge{}) {
		t.Error("CheckPermission() = false with a healthy bridge, want true")
	}
	denied := &fakeBridge{probeErr: failure.New(ErrPermissionDenied)}
	if CheckPermission(ctx, denied) {
		t.Error("CheckPermission() = true with a denied bridge, want false")
	}
}
