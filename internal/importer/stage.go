package importer

import "fmt"

// Stage names a step of the import pipeline.
type Stage string

const (
	StageCollect      Stage = "collect input"
	StageLoad         Stage = "load scan file"
	StageAuthenticate Stage = "authenticate"
	StageClient       Stage = "resolve client"
	StageReport       Stage = "resolve report"
	StageImport       Stage = "import"
)

// StageError records which step aborted the pipeline.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
