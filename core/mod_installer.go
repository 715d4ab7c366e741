package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/smartystreets/clock"
	"github.com/smartystreets/logging"

	"github.com/smarty/workshop/contracts"
)

type ModInstallerFileSystem interface {
	contracts.PathLister
	contracts.FileOpener
	contracts.FileCreator
	contracts.FileReader
	contracts.FileWriter
	contracts.Deleter
	contracts.DirectoryMaker
}

// ModInstaller copies the archives SteamCMD fetched for a mod into the server's mods
// directory and records which files belong to that mod.
type ModInstaller struct {
	fileSystem ModInstallerFileSystem
	game       contracts.Game
	clock      *clock.Clock
	logger     *logging.Logger
}

func NewModInstaller(fileSystem ModInstallerFileSystem, game contracts.Game) *ModInstaller {
	return &ModInstaller{fileSystem: fileSystem, game: game}
}

func (this *ModInstaller) Install(environment contracts.ResolvedEnvironment, modID string) (installed []string, err error) {
	source := this.game.CachePath(environment.SteamCMDDirectory(), modID)
	archives, err := this.findArchives(source)
	if err != nil {
		return nil, err
	}

	modsDirectory := this.game.ModsPath(environment.WorkingDirectory)
	if err = this.fileSystem.MkdirAll(modsDirectory); err != nil {
		return nil, fmt.Errorf("creating %q: %w", modsDirectory, err)
	}
	previous := this.loadRecord(modsDirectory, modID)

	this.logger.Println("[INFO] Copying mod files to", modsDirectory)
	for _, archive := range archives {
		target := filepath.Join(modsDirectory, archive.Name())
		if err = this.copy(archive.Path(), target); err != nil {
			return installed, err
		}
		installed = append(installed, archive.Name())
	}

	this.removeStaleFiles(modsDirectory, modID, previous, installed)
	if err = this.writeRecord(modsDirectory, modID, installed); err != nil {
		return installed, err
	}
	return installed, nil
}

func (this *ModInstaller) findArchives(source string) (archives []contracts.FileInfo, err error) {
	listing, err := this.fileSystem.Listing(source)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %q does not exist", noArchivesErr, source)
	}
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", source, err)
	}
	for _, item := range listing {
		if !item.IsDir() && this.game.IsArchive(item.Name()) {
			archives = append(archives, item)
		}
	}
	if len(archives) == 0 {
		return nil, fmt.Errorf("%w: nothing matching *%s in %q", noArchivesErr, this.game.ArchiveExtension, source)
	}
	return archives, nil
}

func (this *ModInstaller) copy(source, target string) (err error) {
	reader, err := this.fileSystem.Open(source)
	if err != nil {
		return fmt.Errorf("opening %q: %w", source, err)
	}
	defer func() { _ = reader.Close() }()

	writer, err := this.fileSystem.Create(target)
	if err != nil {
		return fmt.Errorf("creating %q: %w", target, err)
	}
	defer func() {
		closeErr := writer.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("closing %q: %w", target, closeErr)
		}
	}()

	if _, err = io.Copy(writer, reader); err != nil {
		return fmt.Errorf("copying %q to %q: %w", source, target, err)
	}
	return nil
}

func (this *ModInstaller) loadRecord(modsDirectory, modID string) (record contracts.InstallRecord) {
	path := contracts.ComposeInstallRecordPath(modsDirectory, modID)
	raw, err := this.fileSystem.ReadFile(path)
	if err != nil {
		return record
	}
	if err = json.Unmarshal(raw, &record); err != nil {
		this.logger.Printf("[WARN] Ignoring malformed install record %q: %s", path, err)
		return contracts.InstallRecord{}
	}
	return record
}

// removeStaleFiles deletes files a previous install of the same mod left behind that
// the current version no longer ships, unless another mod's record still lists them.
func (this *ModInstaller) removeStaleFiles(modsDirectory, modID string, previous contracts.InstallRecord, current []string) {
	if len(previous.Files) == 0 {
		return
	}
	claimed := this.claimedFiles(modsDirectory, modID)
	for _, name := range previous.Files {
		if contains(current, name) || name != filepath.Base(name) {
			continue
		}
		if owner, found := claimed[name]; found {
			this.logger.Printf("[WARN] Keeping %q: it is also installed by mod %s.", name, owner)
			continue
		}
		err := this.fileSystem.Delete(filepath.Join(modsDirectory, name))
		if err != nil && !os.IsNotExist(err) {
			this.logger.Printf("[WARN] Could not remove stale file %q: %s", name, err)
		}
	}
}

// claimedFiles maps every file listed in another mod's install record to that mod.
func (this *ModInstaller) claimedFiles(modsDirectory, modID string) map[string]string {
	claimed := make(map[string]string)
	listing, err := this.fileSystem.Listing(modsDirectory)
	if err != nil {
		return claimed
	}
	for _, item := range listing {
		owner, ok := contracts.ParseInstallRecordName(item.Name())
		if item.IsDir() || !ok || owner == modID {
			continue
		}
		raw, err := this.fileSystem.ReadFile(item.Path())
		if err != nil {
			continue
		}
		var record contracts.InstallRecord
		if json.Unmarshal(raw, &record) != nil {
			continue
		}
		for _, name := range record.Files {
			claimed[name] = owner
		}
	}
	return claimed
}

func (this *ModInstaller) writeRecord(modsDirectory, modID string, installed []string) error {
	record := contracts.InstallRecord{ModID: modID, Files: installed, Installed: this.clock.UTCNow()}
	raw, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	path := contracts.ComposeInstallRecordPath(modsDirectory, modID)
	if err = this.fileSystem.WriteFile(path, raw); err != nil {
		return fmt.Errorf("writing install record %q: %w", path, err)
	}
	return nil
}

var noArchivesErr = errors.New("no mod archives found")
