package cli

// ErrorCode defines error types for CLI operations
type ErrorCode string

const (
	InvalidWindow   ErrorCode = "InvalidWindow"
	InvalidTabIndex ErrorCode = "InvalidTabIndex"
	NoTabsSpecified ErrorCode = "NoTabsSpecified"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
