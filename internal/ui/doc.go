// Package ui holds the colour palette shared by presentation code, so the
// details table and any future stderr output agree on colours.
package ui
