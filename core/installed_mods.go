package core

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/smartystreets/logging"

	"github.com/smarty/workshop/contracts"
)

type InstalledModListerFileSystem interface {
	contracts.PathLister
	contracts.FileReader
}

type InstalledModLister struct {
	fileSystem InstalledModListerFileSystem
	game       contracts.Game
	logger     *logging.Logger
}

func NewInstalledModLister(fileSystem InstalledModListerFileSystem, game contracts.Game) *InstalledModLister {
	return &InstalledModLister{fileSystem: fileSystem, game: game}
}

// List derives the IDs of installed mods from the mods directory. Mods installed by this
// tool are known by their install records; any other file stands for the mod named by its
// filename without extension.
func (this *InstalledModLister) List(workingDirectory string) (modIDs []string, err error) {
	modsDirectory := this.game.ModsPath(workingDirectory)
	listing, err := this.fileSystem.Listing(modsDirectory)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	tracked := make(map[string]struct{})
	for _, item := range listing {
		if item.IsDir() || !contracts.IsInstallRecord(item.Name()) {
			continue
		}
		record, ok := this.readRecord(item)
		if !ok {
			continue
		}
		for _, name := range record.Files {
			tracked[name] = struct{}{}
		}
		modIDs = this.appendModID(modIDs, record.ModID)
	}

	for _, item := range listing {
		name := item.Name()
		if item.IsDir() || name == this.game.ManifestFilename || contracts.IsInstallRecord(name) {
			continue
		}
		if _, found := tracked[name]; found {
			continue
		}
		modIDs = this.appendModID(modIDs, strings.TrimSuffix(name, filepath.Ext(name)))
	}
	return modIDs, nil
}

func (this *InstalledModLister) appendModID(modIDs []string, modID string) []string {
	if modID == "" || contains(modIDs, modID) {
		return modIDs
	}
	if err := validateModID(modID); err != nil {
		this.logger.Println("[WARN] Skipping installed mod:", err)
		return modIDs
	}
	return append(modIDs, modID)
}

func (this *InstalledModLister) readRecord(item contracts.FileInfo) (record contracts.InstallRecord, ok bool) {
	raw, err := this.fileSystem.ReadFile(item.Path())
	if err == nil {
		err = json.Unmarshal(raw, &record)
	}
	if err != nil {
		this.logger.Printf("[WARN] Ignoring unreadable install record %q: %s", item.Path(), err)
		return record, false
	}
	if record.ModID == "" {
		record.ModID, _ = contracts.ParseInstallRecordName(item.Name())
	}
	return record, record.ModID != ""
}
