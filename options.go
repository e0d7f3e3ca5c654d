package clex

// RenderStyle defines the different output styles for tree rendering.
type RenderStyle int

const (
	// StyleBranch is the default style. It draws box-drawing connectors in
	// front of every child, the way interactive tree viewers render nodes.
	StyleBranch RenderStyle = iota

	// StyleIndent uses plain tab indentation, one level per depth.
	StyleIndent
)

const (
	// StyleDefault is an alias for StyleBranch.
	StyleDefault = StyleBranch
)

// RenderOptions provides options for controlling the tree renderer's output.
type RenderOptions struct {
	Style RenderStyle
}
