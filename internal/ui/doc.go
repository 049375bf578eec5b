// Package ui provides the Bubble Tea remote-control screen.
//
// The model renders one screen: a header with the player state and stream
// liveness, the current track, a volume gauge, a status line for the last
// command's outcome, and the key help. Player commands run as tea.Cmd
// closures off the update loop and report back through commandResultMsg, so
// a slow daemon never blocks rendering. A one-second tick pulls fresh
// snapshots from the store the event listener writes into.
package ui
