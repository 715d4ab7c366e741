package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/smartystreets/logging"

	"github.com/smarty/workshop/contracts"
)

type ManifestWriterFileSystem interface {
	contracts.PathLister
	contracts.FileWriter
	contracts.DirectoryMaker
}

type ManifestWriter struct {
	fileSystem ManifestWriterFileSystem
	game       contracts.Game
	logger     *logging.Logger
}

func NewManifestWriter(fileSystem ManifestWriterFileSystem, game contracts.Game) *ManifestWriter {
	return &ManifestWriter{fileSystem: fileSystem, game: game}
}

// Write replaces the manifest with the sorted names of every mod archive currently
// in the mods directory.
func (this *ManifestWriter) Write(workingDirectory string) (names []string, err error) {
	modsDirectory := this.game.ModsPath(workingDirectory)
	if err = this.fileSystem.MkdirAll(modsDirectory); err != nil {
		return nil, fmt.Errorf("creating %q: %w", modsDirectory, err)
	}

	listing, err := this.fileSystem.Listing(modsDirectory)
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", modsDirectory, err)
	}
	for _, item := range listing {
		if !item.IsDir() && this.game.IsArchive(item.Name()) {
			names = append(names, item.Name())
		}
	}
	sort.Strings(names)

	path := this.game.ManifestPath(workingDirectory)
	this.logger.Printf("[INFO] Writing %s in %s", this.game.ManifestFilename, modsDirectory)
	if err = this.fileSystem.WriteFile(path, []byte(composeManifest(names))); err != nil {
		return nil, fmt.Errorf("writing %q: %w", path, err)
	}
	return names, nil
}

func composeManifest(names []string) string {
	builder := new(strings.Builder)
	for _, name := range names {
		builder.WriteString(name)
		builder.WriteString("\n")
	}
	return builder.String()
}
