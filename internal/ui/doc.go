// Package ui contains the Bubble Tea program that hosts a jump bar in the
// terminal. The Model owns a jumpbar.Controller, supplies terminal segments
// for it and acts as its delegate, forwarding every callback to an optional
// outer delegate.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry (keys, mouse, window size, tree loads).
//   - Navigation helpers (navigation.go) move the segment cursor and open or
//     close the sibling popup. Opening calls Controller.OpenMenu; picking or
//     dismissing calls Menu.Close, which may select and re-enter the model
//     through DidSelect.
//   - Filter helpers (input.go) edit the popup's fuzzy filter.
//
// State ownership:
//   - The selection and segment layout live in the controller.
//   - Popup rows, cursor, filter and viewport live in internal/ui/state.Popup.
//
// Tree sources:
//   - A tree file is loaded through the command bus on Init and on ctrl+r.
//   - A TreeSource (the file watcher) streams reloaded trees; each one is
//     installed and the previous selection kept when it still resolves.
package ui
