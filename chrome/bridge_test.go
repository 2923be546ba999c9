package chrome

import (
	"errors"
	"testing"
)

func TestIsPermissionError(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
		want   bool
	}{
		{
			name:   "not authorized wording",
			stderr: `execution error: Not authorized to send Apple events to Google Chrome. (-1743)`,
			want:   true,
		},
		{
			name:   "british spelling",
			stderr: `execution error: Not authorised to send Apple events to Google Chrome.`,
			want:   true,
		},
		{
			name:   "not allowed wording",
			stderr: `osascript is not allowed assistive access.`,
			want:   true,
		},
		{
			name:   "application not running",
			stderr: `execution error: Google Chrome got an error: Application isn't running. (-600)`,
			want:   false,
		},
		{
			name:   "empty stderr",
			stderr: "",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPermissionError(tt.stderr); got != tt.want {
				t.Errorf("isPermissionError(%q) = %v, want %v", tt.stderr, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	o := Osascript{}
	cause := errors.New("exit status 1")

	err := o.classify(cause, "execution error: Not authorized to send Apple events. (-1743)")
	if !IsPermissionDenied(err) {
		t.Errorf("classify() = %v, want PermissionDenied", err)
	}

	err = o.classify(cause, "execution error: Application isn't running. (-600)")
	if IsPermissionDenied(err) {
		t.Errorf("classify() = %v, want BridgeUnavailable", err)
	}
}

func TestOsascriptApp(t *testing.T) {
	if got := (Osascript{}).app(); got != DefaultApp {
		t.Errorf("app() = %q, want %q", got, DefaultApp)
	}
	if got := (Osascript{App: "Brave Browser"}).app(); got != "Brave Browser" {
		t.Errorf("app() = %q, want %q", got, "Brave Browser")
	}
}
