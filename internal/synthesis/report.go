package synthesis

// StepResult records the outcome of one synthesis step.
type StepResult struct {
	Name string
	Err  error
}

// Report collects per-step results. Steps are independent, so a failed step
// never suppresses its siblings; the report is how callers inspect what
// degraded.
type Report struct {
	Steps []StepResult
}

func (r *Report) add(name string, err error) {
	r.Steps = append(r.Steps, StepResult{Name: name, Err: err})
}

// Failed returns the steps that reported an error.
func (r *Report) Failed() []StepResult {
	var failed []StepResult
	for _, s := range r.Steps {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// OK reports whether every step succeeded.
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}
