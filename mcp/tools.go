package mcp

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ka2n/tojiru/chrome"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

var validate = validator.New()

func InitTools() []server.ServerTool {
	tools := []server.ServerTool{}

	tools = append(tools, newServerTool(ListTabs()))
	tools = append(tools, newServerTool(CloseTabs()))
	tools = append(tools, newServerTool(CheckPermission()))

	return tools
}

func ListTabs() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"list_tabs",
			mcp.WithDescription("List all open Chrome tabs with their window and tab positions"),
			mcp.WithString("app", mcp.Description("Application to control (default Google Chrome)")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				App string `json:"app" validate:"omitempty"`
			}
			var args ToolArguments
			if err := mapstructure.Decode(req.Params.Arguments, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := validate.StructCtx(ctx, args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			tabs, err := chrome.ListTabs(ctx, chrome.Osascript{App: args.App})
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			type ListResult struct {
				Tabs []chrome.TabRecord `json:"tabs"`
			}

			b, err := json.Marshal(ListResult{Tabs: tabs})
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			return mcp.NewToolResultText(string(b)), nil
		}
}

func CloseTabs() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"close_tabs",
			mcp.WithDescription("Close Chrome tabs of one window by position. Positions shift after every close, so take them from a fresh list_tabs call"),
			mcp.WithNumber("window", mcp.Required(), mcp.Description("Window position (1-based)")),
			mcp.WithString("tabs", mcp.Description("Comma-separated tab positions (1-based)")),
			mcp.WithBoolean("all", mcp.Description("Close every tab of the window")),
			mcp.WithString("app", mcp.Description("Application to control (default Google Chrome)")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Window int    `json:"window" validate:"required,min=1"`
				Tabs   string `json:"tabs" validate:"omitempty"`
				All    bool   `json:"all"`
				App    string `json:"app" validate:"omitempty"`
			}
			var args ToolArguments
			if err := mapstructure.Decode(req.Params.Arguments, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := validate.StructCtx(ctx, args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			tabs, err := parseTabList(args.Tabs)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if !args.All && len(tabs) == 0 {
				return mcp.NewToolResultError("specify tabs or set all"), nil
			}

			closed, err := chrome.CloseTabs(ctx, chrome.Osascript{App: args.App}, args.Window, tabs, args.All)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			type CloseResult struct {
				Window int   `json:"window"`
				Closed []int `json:"closed,omitempty"`
				All    bool  `json:"all,omitempty"`
			}

			b, err := json.Marshal(CloseResult{Window: args.Window, Closed: closed, All: args.All})
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			return mcp.NewToolResultText(string(b)), nil
		}
}

func CheckPermission() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"check_permission",
			mcp.WithDescription("Check whether macOS automation access to Chrome is granted"),
			mcp.WithString("app", mcp.Description("Application to control (default Google Chrome)")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				App string `json:"app" validate:"omitempty"`
			}
			var args ToolArguments
			if err := mapstructure.Decode(req.Params.Arguments, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := validate.StructCtx(ctx, args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			granted := chrome.CheckPermission(ctx, chrome.Osascript{App: args.App})

			type ProbeResult struct {
				Granted bool `json:"granted"`
			}

			b, err := json.Marshal(ProbeResult{Granted: granted})
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			return mcp.NewToolResultText(string(b)), nil
		}
}

// parseTabList parses "3,1,4" into positions. Blanks around commas are
// tolerated; an empty string means no positions.
func parseTabList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var tabs []int
	for _, part := range strings.Split(s, ",") {
		tab, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		tabs = append(tabs, tab)
	}
	return tabs, nil
}
