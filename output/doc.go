// Package output writes and displays ladders.
//
// WriteFile stores a ladder one word per line. An empty ladder means "no
// solution": the destination is removed rather than left empty or stale.
//
// Renderer formats ladders for a terminal with lipgloss, highlighting the
// letter that changed at each step.
package output
