package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/ioutil"
	"os/exec"

	"github.com/smarty/workshop/contracts"
)

type ProcessRunner struct {
	output io.Writer
}

// NewProcessRunner streams the combined output of each child process to output
// (which may be nil) while also capturing it for the caller.
func NewProcessRunner(output io.Writer) *ProcessRunner {
	if output == nil {
		output = ioutil.Discard
	}
	return &ProcessRunner{output: output}
}

func (this *ProcessRunner) Run(ctx context.Context, request contracts.ProcessRequest) (contracts.ProcessResult, error) {
	captured := new(bytes.Buffer)
	writer := io.MultiWriter(captured, this.output)

	command := exec.CommandContext(ctx, request.Program, request.Arguments...)
	command.Dir = request.Directory
	command.Stdout = writer
	command.Stderr = writer

	err := command.Run()
	result := contracts.ProcessResult{Output: captured.Bytes()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		return result, nil
	}
	return result, err
}
