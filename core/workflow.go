package core

import (
	"context"

	"github.com/smartystreets/logging"

	"github.com/smarty/workshop/contracts"
)

type environmentResolver interface {
	Resolve(ctx context.Context, config contracts.Config) (contracts.ResolvedEnvironment, error)
}

type installedModLister interface {
	List(workingDirectory string) ([]string, error)
}

type modFetcher interface {
	Fetch(ctx context.Context, environment contracts.ResolvedEnvironment, modID string) error
}

type modInstaller interface {
	Install(environment contracts.ResolvedEnvironment, modID string) ([]string, error)
}

type manifestWriter interface {
	Write(workingDirectory string) ([]string, error)
}

// Workflow runs one pass of resolve, update, install and manifest regeneration. A
// failed mod never stops the remaining mods from being processed.
type Workflow struct {
	resolver  environmentResolver
	lister    installedModLister
	fetcher   modFetcher
	installer modInstaller
	manifest  manifestWriter
	logger    *logging.Logger
}

func NewWorkflow(
	resolver environmentResolver,
	lister installedModLister,
	fetcher modFetcher,
	installer modInstaller,
	manifest manifestWriter,
) *Workflow {
	return &Workflow{
		resolver:  resolver,
		lister:    lister,
		fetcher:   fetcher,
		installer: installer,
		manifest:  manifest,
	}
}

func (this *Workflow) Run(ctx context.Context, config contracts.Config) (report contracts.Report) {
	if !config.HasWork() {
		return report
	}

	environment, err := this.resolver.Resolve(ctx, config)
	if err != nil {
		report.EnvironmentErr = err
		return report
	}
	report.Environment = environment

	if config.Update {
		report.Results = append(report.Results, this.update(ctx, environment)...)
	}
	for _, modID := range config.ModIDs {
		result := this.process(ctx, environment, modID, contracts.PhaseInstall)
		if result.Succeeded() {
			this.logger.Printf("[INFO] Mod %s installation finished.", modID)
		} else {
			this.logger.Printf("[WARN] There was a problem installing mod %s: %s", modID, result.Err)
		}
		report.Results = append(report.Results, result)
	}

	report.Manifest, report.ManifestErr = this.manifest.Write(environment.WorkingDirectory)
	return report
}

func (this *Workflow) update(ctx context.Context, environment contracts.ResolvedEnvironment) (results []contracts.ModResult) {
	this.logger.Println("[INFO] Mod update is selected. Updating existing mods.")
	installed, err := this.lister.List(environment.WorkingDirectory)
	if err != nil {
		this.logger.Println("[WARN] Could not list installed mods:", err)
		return []contracts.ModResult{{Phase: contracts.PhaseUpdate, Stage: contracts.StageFetch, Err: err}}
	}
	if len(installed) == 0 {
		this.logger.Println("[INFO] No installed mods found. Skipping update.")
		return nil
	}
	for _, modID := range installed {
		this.logger.Println("[INFO] Updating mod", modID)
		result := this.process(ctx, environment, modID, contracts.PhaseUpdate)
		if !result.Succeeded() {
			this.logger.Printf("[WARN] Error updating mod %s: %s", modID, result.Err)
		}
		results = append(results, result)
	}
	return results
}

func (this *Workflow) process(ctx context.Context, environment contracts.ResolvedEnvironment, modID string, phase contracts.Phase) contracts.ModResult {
	result := contracts.ModResult{ModID: modID, Phase: phase, Stage: contracts.StageFetch}
	if result.Err = this.fetcher.Fetch(ctx, environment, modID); result.Err != nil {
		return result
	}
	result.Stage = contracts.StageInstall
	result.Files, result.Err = this.installer.Install(environment, modID)
	return result
}
