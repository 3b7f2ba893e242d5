package audit

// Update is one message on the worker-to-UI channel. Exactly four kinds
// exist: Progress, ResultUpdate, ErrorUpdate, and Done. The worker sends
// them in order and closes the channel after Done.
type Update interface {
	isUpdate()
}

// Progress reports partial completion of a running audit.
type Progress struct {
	Current int
	Total   int
	Message string
}

// ResultUpdate carries the terminal success payload.
type ResultUpdate struct {
	Result Result
}

// ErrorUpdate carries the terminal failure payload.
type ErrorUpdate struct {
	Message string
}

// Done is the lifecycle-closing signal, sent exactly once, always last.
type Done struct{}

func (Progress) isUpdate()     {}
func (ResultUpdate) isUpdate() {}
func (ErrorUpdate) isUpdate()  {}
func (Done) isUpdate()         {}

// Percent converts the progress counters to a whole percentage in [0,100].
// Total is clamped to a minimum of 1 so a zero total never divides by zero.
func (p Progress) Percent() int {
	total := p.Total
	if total < 1 {
		total = 1
	}
	pct := p.Current * 100 / total
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
