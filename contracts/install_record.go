package contracts

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// InstallRecord remembers which files a workshop item placed in the mods directory.
type InstallRecord struct {
	ModID     string    `json:"mod_id"`
	Files     []string  `json:"files"`
	Installed time.Time `json:"installed"`
}

const (
	installRecordPrefix    = "workshop_"
	installRecordExtension = ".json"
)

func ComposeInstallRecordPath(modsDirectory, modID string) string {
	return filepath.Join(modsDirectory, fmt.Sprintf("%s%s%s", installRecordPrefix, modID, installRecordExtension))
}

func IsInstallRecord(name string) bool {
	return strings.HasPrefix(name, installRecordPrefix) && strings.HasSuffix(name, installRecordExtension)
}

func ParseInstallRecordName(name string) (modID string, ok bool) {
	if !IsInstallRecord(name) {
		return "", false
	}
	modID = strings.TrimSuffix(strings.TrimPrefix(name, installRecordPrefix), installRecordExtension)
	return modID, modID != ""
}
