package core

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/smartystreets/logging"

	"github.com/smarty/workshop/contracts"
)

type ModFetcher struct {
	runner  contracts.ProcessRunner
	game    contracts.Game
	timeout time.Duration
	logger  *logging.Logger
}

func NewModFetcher(runner contracts.ProcessRunner, game contracts.Game, timeout time.Duration) *ModFetcher {
	return &ModFetcher{runner: runner, game: game, timeout: timeout}
}

// Fetch has SteamCMD download one workshop item into its own cache.
func (this *ModFetcher) Fetch(ctx context.Context, environment contracts.ResolvedEnvironment, modID string) error {
	this.logger.Println("[INFO] Starting download of mod", modID)

	if this.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, this.timeout)
		defer cancel()
	}

	result, err := this.runner.Run(ctx, contracts.ProcessRequest{
		Program:   environment.SteamCMD,
		Arguments: ComposeFetchArguments(this.game.AppID, modID),
		Directory: environment.SteamCMDDirectory(),
	})
	if err != nil {
		return fmt.Errorf("running steamcmd: %w", err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("%w: steamcmd exited with status %d", fetchErr, result.ExitCode)
	}
	if line, found := findErrorLine(result.Output); found {
		return fmt.Errorf("%w: %s", fetchErr, line)
	}
	return nil
}

func ComposeFetchArguments(appID, modID string) []string {
	return []string{
		"+login", "anonymous",
		"+workshop_download_item", appID, modID,
		"+quit",
	}
}

// findErrorLine reports the first line where SteamCMD announced a failure; SteamCMD
// does not always reflect such failures in its exit status.
func findErrorLine(output []byte) (string, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "ERROR!") {
			return line, true
		}
	}
	return "", false
}

var fetchErr = errors.New("mod download failed")
