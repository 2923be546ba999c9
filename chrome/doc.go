// Package chrome talks to Google Chrome through the macOS AppleScript
// bridge to enumerate and close browser tabs.
//
// The chrome package provides:
// - Tab enumeration across all open Chrome windows
// - Closing tabs by window and tab position, shift-safe
// - A permission probe for the macOS automation grant
// - The Bridge port so other automation mechanisms can be substituted
package chrome
