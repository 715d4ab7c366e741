package main

import (
	"context"
	"io"

	"github.com/smarty/workshop/contracts"
	"github.com/smarty/workshop/core"
	"github.com/smarty/workshop/shell"
)

type InstallApp struct {
	config   contracts.Config
	workflow *core.Workflow
}

func NewInstallApp(config contracts.Config, stdout io.Writer) *InstallApp {
	game := contracts.ConanExiles
	disk := shell.NewDiskFileSystem()
	progress := core.NewProgressReporter("Downloading SteamCMD...")
	downloader := core.NewRetryDownloader(shell.NewHTTPDownloader(shell.NewHTTPClient(), progress.Report), config.MaxRetry)
	resolver := core.NewEnvironmentResolver(
		disk,
		shell.NewEnvironment(),
		downloader,
		shell.NewArchiveExtractor(),
		game,
		contracts.CurrentPlatform(),
	)
	workflow := core.NewWorkflow(
		resolver,
		core.NewInstalledModLister(disk, game),
		core.NewModFetcher(shell.NewProcessRunner(stdout), game, config.FetchTimeout),
		core.NewModInstaller(disk, game),
		core.NewManifestWriter(disk, game),
	)
	return &InstallApp{config: config, workflow: workflow}
}

func (this *InstallApp) Run(ctx context.Context) contracts.Report {
	return this.workflow.Run(ctx, this.config)
}
