package core

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/smarty/workshop/contracts"
	"github.com/smarty/workshop/shell"
)

var anError = errors.New("this is an error")

/////////////////////////////////////////////////////////////////////////////////

type FakeEnvironment struct {
	variables  map[string]string
	workingDir string
	getwdErr   error
}

func NewFakeEnvironment() *FakeEnvironment {
	return &FakeEnvironment{variables: make(map[string]string)}
}

func (this *FakeEnvironment) LookupEnv(key string) (string, bool) {
	value, found := this.variables[key]
	return value, found
}

func (this *FakeEnvironment) Getwd() (string, error) {
	return this.workingDir, this.getwdErr
}

/////////////////////////////////////////////////////////////////////////////////

// FakeSteamCMD records every invocation and, like the real thing, drops the
// configured workshop files into its cache directory.
type FakeSteamCMD struct {
	fileSystem *shell.InMemoryFileSystem
	game       contracts.Game

	requests []contracts.ProcessRequest
	content  map[string]map[string]string
	exitCode map[string]int
	output   map[string]string
	err      error
	canceled bool
}

func NewFakeSteamCMD(fileSystem *shell.InMemoryFileSystem, game contracts.Game) *FakeSteamCMD {
	return &FakeSteamCMD{
		fileSystem: fileSystem,
		game:       game,
		content:    make(map[string]map[string]string),
		exitCode:   make(map[string]int),
		output:     make(map[string]string),
	}
}

func (this *FakeSteamCMD) Publish(modID string, files ...string) {
	published := make(map[string]string)
	for _, name := range files {
		published[name] = "contents of " + name
	}
	this.content[modID] = published
}

func (this *FakeSteamCMD) Run(ctx context.Context, request contracts.ProcessRequest) (contracts.ProcessResult, error) {
	this.requests = append(this.requests, request)
	if this.err != nil {
		return contracts.ProcessResult{ExitCode: -1}, this.err
	}
	if ctx.Err() != nil {
		this.canceled = true
		return contracts.ProcessResult{ExitCode: -1}, ctx.Err()
	}
	modID := request.Arguments[4]
	cache := this.game.CachePath(request.Directory, modID)
	for name, contents := range this.content[modID] {
		_ = this.fileSystem.WriteFile(filepath.Join(cache, name), []byte(contents))
	}
	return contracts.ProcessResult{
		ExitCode: this.exitCode[modID],
		Output:   []byte(this.output[modID]),
	}, nil
}

func (this *FakeSteamCMD) FetchedModIDs() (modIDs []string) {
	for _, request := range this.requests {
		modIDs = append(modIDs, request.Arguments[4])
	}
	return modIDs
}

/////////////////////////////////////////////////////////////////////////////////

type FakeDownloader struct {
	requests []contracts.DownloadRequest
	errors   []error
	onDone   func(request contracts.DownloadRequest)
}

func (this *FakeDownloader) Download(_ context.Context, request contracts.DownloadRequest) error {
	this.requests = append(this.requests, request)
	if len(this.errors) > 0 {
		err := this.errors[0]
		this.errors = this.errors[1:]
		if err != nil {
			return err
		}
	}
	if this.onDone != nil {
		this.onDone(request)
	}
	return nil
}

/////////////////////////////////////////////////////////////////////////////////

type FakeExtractor struct {
	fileSystem  *shell.InMemoryFileSystem
	archive     string
	destination string
	produces    []string
	err         error
}

func (this *FakeExtractor) Extract(archivePath, destination string) error {
	this.archive = archivePath
	this.destination = destination
	if this.err != nil {
		return this.err
	}
	for _, name := range this.produces {
		_ = this.fileSystem.WriteFile(filepath.Join(destination, name), []byte("#!/bin/sh"))
	}
	return nil
}
