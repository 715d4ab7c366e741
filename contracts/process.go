package contracts

import "context"

type ProcessRequest struct {
	Program   string
	Arguments []string
	Directory string
}

type ProcessResult struct {
	ExitCode int
	Output   []byte
}

// ProcessRunner starts a program with a discrete argument list (never through a shell)
// and blocks until it exits. A non-nil error means the process could not be run at all.
type ProcessRunner interface {
	Run(ctx context.Context, request ProcessRequest) (ProcessResult, error)
}
