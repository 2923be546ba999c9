// Package mcp implements the Model Context Protocol server for tojiru.
//
// The mcp package provides:
// - A stdio MCP server for external tool integration
// - Tab listing and closing exposed as MCP tools
// - The automation permission probe as an MCP tool
package mcp
