package contracts

import (
	"path/filepath"
	"strings"
)

// Game describes where a dedicated server keeps its mods and which workshop it uses.
type Game struct {
	AppID            string
	MarkerDirectory  string
	ModsDirectory    string
	ArchiveExtension string
	ManifestFilename string
}

var ConanExiles = Game{
	AppID:            "440900",
	MarkerDirectory:  "ConanSandbox",
	ModsDirectory:    filepath.Join("ConanSandbox", "Mods"),
	ArchiveExtension: ".pak",
	ManifestFilename: "modlist.txt",
}

func (this Game) ModsPath(workingDirectory string) string {
	return filepath.Join(workingDirectory, this.ModsDirectory)
}

func (this Game) ManifestPath(workingDirectory string) string {
	return filepath.Join(this.ModsPath(workingDirectory), this.ManifestFilename)
}

func (this Game) MarkerPath(workingDirectory string) string {
	return filepath.Join(workingDirectory, this.MarkerDirectory)
}

// CachePath is where SteamCMD deposits the content of a single workshop item.
func (this Game) CachePath(steamCMDDirectory, modID string) string {
	return filepath.Join(steamCMDDirectory, SteamAppsDirectory, "workshop", "content", this.AppID, modID)
}

func (this Game) IsArchive(name string) bool {
	return strings.EqualFold(filepath.Ext(name), this.ArchiveExtension)
}

const SteamAppsDirectory = "steamapps"
