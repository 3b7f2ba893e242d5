// Package ui implements the Bubble Tea dashboard.
//
// The Model is a state machine over one audit run: Loading, then zero or
// more Running updates, then Complete or Error. It is mutated only inside
// the Bubble Tea update loop; the background worker reaches it solely
// through the buffered update channel, which the model drains without
// blocking once per render tick. Rendering is a pure function of the
// model and never touches the channel or the worker.
package ui
