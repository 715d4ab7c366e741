package shell

import (
	"fmt"
	"strings"

	"github.com/mholt/archiver"
)

type ArchiveExtractor struct{}

func NewArchiveExtractor() *ArchiveExtractor {
	return &ArchiveExtractor{}
}

func (this *ArchiveExtractor) Extract(archivePath, destination string) error {
	unarchiver, err := newUnarchiver(archivePath)
	if err != nil {
		return err
	}
	return unarchiver.Unarchive(archivePath, destination)
}

func newUnarchiver(archivePath string) (archiver.Unarchiver, error) {
	name := strings.ToLower(archivePath)
	switch {
	case strings.HasSuffix(name, ".zip"):
		zip := archiver.NewZip()
		zip.OverwriteExisting = true
		zip.MkdirAll = true
		return zip, nil
	case strings.HasSuffix(name, ".tar.gz"), strings.HasSuffix(name, ".tgz"):
		tarGz := archiver.NewTarGz()
		tarGz.OverwriteExisting = true
		tarGz.MkdirAll = true
		return tarGz, nil
	default:
		return nil, fmt.Errorf("unsupported archive format: %q", archivePath)
	}
}
