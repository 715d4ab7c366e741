package core

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/smartystreets/logging"

	"github.com/smarty/workshop/contracts"
)

type EnvironmentResolverFileSystem interface {
	contracts.FileChecker
	contracts.DirectoryMaker
	contracts.DirectoryRemover
	contracts.Deleter
	contracts.Chmod
}

// EnvironmentResolver finds the game server and a usable SteamCMD, downloading
// SteamCMD into the server directory when no installation can be found.
type EnvironmentResolver struct {
	fileSystem  EnvironmentResolverFileSystem
	environment contracts.Environment
	downloader  contracts.Downloader
	extractor   contracts.Extractor
	game        contracts.Game
	platform    contracts.Platform
	logger      *logging.Logger
}

func NewEnvironmentResolver(
	fileSystem EnvironmentResolverFileSystem,
	environment contracts.Environment,
	downloader contracts.Downloader,
	extractor contracts.Extractor,
	game contracts.Game,
	platform contracts.Platform,
) *EnvironmentResolver {
	return &EnvironmentResolver{
		fileSystem:  fileSystem,
		environment: environment,
		downloader:  downloader,
		extractor:   extractor,
		game:        game,
		platform:    platform,
	}
}

func (this *EnvironmentResolver) Resolve(ctx context.Context, config contracts.Config) (contracts.ResolvedEnvironment, error) {
	working, err := this.resolveWorkingDirectory(config.WorkingDirectory)
	if err != nil {
		return contracts.ResolvedEnvironment{}, err
	}

	steamCMD, err := this.resolveSteamCMD(ctx, working, config.SteamCMDPath)
	if err != nil {
		return contracts.ResolvedEnvironment{}, err
	}

	resolved := contracts.ResolvedEnvironment{WorkingDirectory: working, SteamCMD: steamCMD}
	this.clearSteamCache(resolved.SteamCMDDirectory())
	return resolved, nil
}

func (this *EnvironmentResolver) resolveWorkingDirectory(provided string) (string, error) {
	if provided != "" {
		if !this.isDirectory(provided) {
			return "", fmt.Errorf("%w: %q", workingDirectoryNotFoundErr, provided)
		}
		if !this.isDirectory(this.game.MarkerPath(provided)) {
			this.logger.Printf("[WARN] %q does not contain %s; continuing because it was provided explicitly.", provided, this.game.MarkerDirectory)
		}
		return provided, nil
	}

	this.logger.Println("[INFO] No working directory provided. Checking the current directory.")
	current, err := this.environment.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %s", serverNotFoundErr, err)
	}
	this.logger.Println("[INFO]", current)
	if !this.isDirectory(this.game.MarkerPath(current)) {
		return "", fmt.Errorf("%w: %q has no %s directory", serverNotFoundErr, current, this.game.MarkerDirectory)
	}
	this.logger.Println("[INFO] Current directory has a game server. Using the current directory.")
	return current, nil
}

func (this *EnvironmentResolver) resolveSteamCMD(ctx context.Context, working, provided string) (string, error) {
	if provided != "" {
		this.logger.Println("[INFO] Checking provided path for SteamCMD.")
		candidate := filepath.Join(provided, this.platform.Executable)
		if this.isFile(candidate) {
			this.logger.Println("[INFO] SteamCMD found at provided path.")
			return candidate, nil
		}
		this.logger.Printf("[WARN] SteamCMD not found at %q.", candidate)
	}

	this.logger.Println("[INFO] Checking common SteamCMD locations.")
	if this.platform.WellKnownPath != "" && this.isFile(this.platform.WellKnownPath) {
		this.logger.Println("[INFO] SteamCMD located at", this.platform.WellKnownPath)
		return this.platform.WellKnownPath, nil
	}

	local := this.localInstallPath(working)
	if this.isFile(local) {
		this.logger.Println("[INFO] SteamCMD located at", local)
		return local, nil
	}

	this.logger.Println("[INFO] SteamCMD not found in common locations. Attempting to download it.")
	return this.bootstrap(ctx, working)
}

func (this *EnvironmentResolver) bootstrap(ctx context.Context, working string) (string, error) {
	if this.platform.BootstrapURL == "" {
		return "", fmt.Errorf("%w: no installer is known for this platform", bootstrapErr)
	}
	directory := filepath.Join(working, this.platform.LocalInstallDir)
	if err := this.fileSystem.MkdirAll(directory); err != nil {
		return "", fmt.Errorf("%w: creating %q: %s", bootstrapErr, directory, err)
	}

	archive := filepath.Join(working, this.platform.BootstrapName)
	request := contracts.DownloadRequest{RemoteAddress: this.platform.BootstrapURL, LocalPath: archive}
	if err := this.downloader.Download(ctx, request); err != nil {
		return "", fmt.Errorf("%w: downloading %s: %v", bootstrapErr, request.RemoteAddress, err)
	}

	if err := this.extractor.Extract(archive, directory); err != nil {
		return "", fmt.Errorf("%w: extracting %q: %v", bootstrapErr, archive, err)
	}
	if err := this.fileSystem.Delete(archive); err != nil {
		this.logger.Printf("[WARN] Could not remove %q: %s", archive, err)
	}

	executable := this.localInstallPath(working)
	if !this.isFile(executable) {
		return "", fmt.Errorf("%w: %q missing after extraction", bootstrapErr, executable)
	}
	if err := this.fileSystem.MakeExecutable(executable); err != nil {
		return "", fmt.Errorf("%w: %s", bootstrapErr, err)
	}
	this.logger.Println("[INFO] SteamCMD installed at", executable)
	return executable, nil
}

// clearSteamCache removes SteamCMD's steamapps folder so that items previously
// downloaded by another tenant of a shared SteamCMD install are fetched again.
func (this *EnvironmentResolver) clearSteamCache(steamCMDDirectory string) {
	steamApps := filepath.Join(steamCMDDirectory, contracts.SteamAppsDirectory)
	this.logger.Println("[INFO] Removing steamapps folder.")
	if err := this.fileSystem.RemoveAll(steamApps); err != nil {
		this.logger.Println("[WARN] Failed to remove steamapps folder. This is normally okay.")
		this.logger.Println("[WARN] On a shared SteamCMD install it may prevent a mod another server already downloaded from downloading again.")
	}
}

func (this *EnvironmentResolver) localInstallPath(working string) string {
	return filepath.Join(working, this.platform.LocalInstallDir, this.platform.Executable)
}

func (this *EnvironmentResolver) isFile(path string) bool {
	info, err := this.fileSystem.Stat(path)
	return err == nil && !info.IsDir()
}

func (this *EnvironmentResolver) isDirectory(path string) bool {
	info, err := this.fileSystem.Stat(path)
	return err == nil && info.IsDir()
}

var (
	serverNotFoundErr           = errors.New("current directory does not contain a game server")
	workingDirectoryNotFoundErr = errors.New("working directory not found")
	bootstrapErr                = errors.New("steamcmd not found and could not be downloaded")
)
