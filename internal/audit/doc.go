// Package audit defines the audit result model, the update protocol the
// background worker speaks to the UI, and the worker itself.
//
// The worker is an external collaborator from the dashboard's point of
// view: it invokes the tinyseoai CLI, captures its output, and maps the
// outcome to a fixed message sequence on a buffered channel:
//
//	Progress{0, 100, "Starting audit..."}
//	ResultUpdate | ErrorUpdate
//	Done
//
// Messages are delivered FIFO. Done is authoritative for ending the
// Running phase; the consumer must not assume a Result or Error preceded
// it. After Done the channel is closed, which the consumer also treats as
// the end of the producer.
package audit
