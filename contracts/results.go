package contracts

import (
	"fmt"
	"strings"
)

type Phase string

const (
	PhaseUpdate  Phase = "update"
	PhaseInstall Phase = "install"
)

type Stage string

const (
	StageFetch   Stage = "fetch"
	StageInstall Stage = "install"
)

type ModResult struct {
	ModID string
	Phase Phase
	Stage Stage
	Files []string
	Err   error
}

func (this ModResult) Succeeded() bool {
	return this.Err == nil
}

func (this ModResult) String() string {
	if this.Succeeded() {
		return fmt.Sprintf("[%s] %s ok (%s)", this.Phase, this.ModID, strings.Join(this.Files, ", "))
	}
	return fmt.Sprintf("[%s] %s failed during %s: %s", this.Phase, this.ModID, this.Stage, this.Err)
}

type Report struct {
	Results        []ModResult
	Manifest       []string
	ManifestErr    error
	Environment    ResolvedEnvironment
	EnvironmentErr error
}

func (this Report) Failures() (failures []ModResult) {
	for _, result := range this.Results {
		if !result.Succeeded() {
			failures = append(failures, result)
		}
	}
	return failures
}

func (this Report) ExitCode() ExitCode {
	if this.EnvironmentErr != nil {
		return ExitEnvironment
	}
	if len(this.Failures()) > 0 || this.ManifestErr != nil {
		return ExitDownload
	}
	return ExitSuccess
}

func (this Report) Summary() string {
	builder := new(strings.Builder)
	if this.EnvironmentErr != nil {
		_, _ = fmt.Fprintf(builder, "Environment could not be resolved: %s\n", this.EnvironmentErr)
		return builder.String()
	}
	failures := this.Failures()
	_, _ = fmt.Fprintf(builder, "%d mod(s) processed, %d failed.\n", len(this.Results), len(failures))
	for _, failure := range failures {
		_, _ = fmt.Fprintln(builder, "  "+failure.String())
	}
	if this.ManifestErr != nil {
		_, _ = fmt.Fprintf(builder, "Manifest could not be written: %s\n", this.ManifestErr)
	} else {
		_, _ = fmt.Fprintf(builder, "Manifest lists %d mod file(s).\n", len(this.Manifest))
	}
	return builder.String()
}
