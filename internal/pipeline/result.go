package pipeline

// StageResult records the outcome of one attempted stage.
type StageResult struct {
	// Stage is the stage name as it appears in logs and the run summary.
	Stage string

	// Err is nil on success.
	Err error
}

// Failed reports whether the stage failed.
func (r StageResult) Failed() bool {
	return r.Err != nil
}

// Result aggregates the outcome of one generation run. Every stage is
// attempted regardless of predecessor failures, so the slice always covers
// the full pipeline.
type Result struct {
	// Stages holds one entry per attempted stage, in execution order.
	Stages []StageResult

	// Files maps project-relative paths of created files to short
	// descriptions for the run summary.
	Files map[string]string
}

// Failed returns the stages that failed.
func (r Result) Failed() []StageResult {
	var failed []StageResult
	for _, s := range r.Stages {
		if s.Failed() {
			failed = append(failed, s)
		}
	}
	return failed
}

// OK reports whether every attempted stage succeeded.
func (r Result) OK() bool {
	return len(r.Failed()) == 0
}
