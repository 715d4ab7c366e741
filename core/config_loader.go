package core

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/smarty/workshop/contracts"
)

const (
	WorkingDirectoryVariable = "WORKSHOP_WORKINGDIR"
	SteamCMDVariable         = "WORKSHOP_STEAMCMD"
)

type ConfigLoader struct {
	environment contracts.Environment
	stderr      io.Writer
}

func NewConfigLoader(environment contracts.Environment, stderr io.Writer) *ConfigLoader {
	return &ConfigLoader{environment: environment, stderr: stderr}
}

func (this *ConfigLoader) LoadConfig(name string, args []string) (config contracts.Config, err error) {
	config, err = this.parseCLI(name, args)
	if err != nil {
		return contracts.Config{}, err
	}

	this.applyEnvironment(&config)

	err = this.validate(config)
	if err != nil {
		return contracts.Config{}, err
	}

	return config, nil
}

func (this *ConfigLoader) parseCLI(name string, args []string) (config contracts.Config, err error) {
	modIDs := new(modIDList)
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(this.stderr)
	flags.StringVar(&config.WorkingDirectory,
		"workingdir",
		"",
		"Game server home directory. The current directory is used when it contains a server installation.",
	)
	flags.Var(modIDs,
		"modid",
		"ID of a workshop mod to download and install. Repeat the flag, separate IDs with commas, or list them after the flag.",
	)
	flags.StringVar(&config.SteamCMDPath,
		"steamcmd",
		"",
		"Directory containing the SteamCMD executable.",
	)
	flags.BoolVar(&config.Update,
		"update",
		false,
		"Re-download every installed mod before installing the requested ones.",
	)
	flags.IntVar(&config.MaxRetry,
		"max-retry",
		3,
		"How many times to retry the SteamCMD bootstrap download.",
	)
	flags.DurationVar(&config.FetchTimeout,
		"fetch-timeout",
		0,
		"Abort a single SteamCMD download after this long (0 means wait indefinitely).",
	)
	flags.BoolVar(&config.ShowVersion,
		"version",
		false,
		"Print the version and exit.",
	)
	flags.Usage = func() {
		_, _ = fmt.Fprintf(this.stderr, "Usage of %s:\n", name)
		flags.PrintDefaults()
		_, _ = fmt.Fprintln(this.stderr, `
exit code 0: success
exit code 1: unexpected failure
exit code 2: usage error (provide --modid and/or --update)
exit code 3: server directory or SteamCMD could not be resolved
exit code 4: one or more mods failed to download or install`)
	}

	remaining := args
	for {
		err = flags.Parse(remaining)
		if err != nil {
			return contracts.Config{}, err
		}
		remaining = flags.Args()
		for len(remaining) > 0 && isModIDToken(remaining[0]) {
			_ = modIDs.Set(remaining[0])
			remaining = remaining[1:]
		}
		if len(remaining) == 0 {
			break
		}
	}

	config.ModIDs = *modIDs
	return config, nil
}

func (this *ConfigLoader) applyEnvironment(config *contracts.Config) {
	if config.WorkingDirectory == "" {
		config.WorkingDirectory = this.lookup(WorkingDirectoryVariable)
	}
	if config.SteamCMDPath == "" {
		config.SteamCMDPath = this.lookup(SteamCMDVariable)
	}
}

func (this *ConfigLoader) lookup(key string) string {
	value, _ := this.environment.LookupEnv(key)
	return strings.TrimSpace(value)
}

func (this *ConfigLoader) validate(config contracts.Config) error {
	if config.MaxRetry < 0 {
		return maxRetryErr
	}
	if config.FetchTimeout < 0 {
		return fetchTimeoutErr
	}
	for _, modID := range config.ModIDs {
		if err := validateModID(modID); err != nil {
			return err
		}
	}
	if config.ShowVersion {
		return nil
	}
	if !config.HasWork() {
		return noWorkErr
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////

func isModIDToken(token string) bool {
	return token == "-" || !strings.HasPrefix(token, "-")
}

type modIDList []string

func (this *modIDList) String() string {
	if this == nil {
		return ""
	}
	return strings.Join(*this, ",")
}

func (this *modIDList) Set(value string) error {
	*this = append(*this, SplitModIDs(value)...)
	return nil
}

var (
	maxRetryErr     = errors.New("max-retry must not be negative")
	fetchTimeoutErr = errors.New("fetch-timeout must not be negative")
	noWorkErr       = errors.New("no mod ID provided and update not selected; provide --modid to download or --update to update existing mods")
)

