// Package viz renders thermal performance data for terminals.
//
// The package provides three layers:
//
//   - [Canvas]: Braille-based pixel canvas for high-fidelity curve rendering
//   - [Family] and [SweepChart]: effectiveness charts built on asciigraph
//   - [Report] plus the lipgloss styles, themes and text helpers it shares
//     with the explorer
//
// Charts degrade to plain runes when piped; color is applied only through
// the lipgloss styles, which respect the terminal profile.
package viz
