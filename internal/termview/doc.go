// Package termview draws a profile.Controller into a fixed-size terminal
// frame. Views created by a Renderer's factory record the attributes the
// controller applies to them, and Render paints those attributes with
// lipgloss styles. Geometry is converted from points to cells with a Scale.
package termview
