// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	TopBarLines    = 1
	BottomBarLines = 2
	HomeTitleLines = 2

	IconButtonWidth   = 3
	IconButtonPadding = 1

	ContentPadding = 1
	DialogWidth    = 40

	ItemRightPadding  = 1
	ItemSafetyPadding = 1
)
