package core

import (
	"errors"
	"fmt"
	"strings"
)

// SplitModIDs breaks a token on commas and drops blanks.
func SplitModIDs(token string) (modIDs []string) {
	for _, field := range strings.Split(token, ",") {
		field = strings.TrimSpace(field)
		if field != "" {
			modIDs = append(modIDs, field)
		}
	}
	return modIDs
}

// validateModID rejects identifiers that would leave the directories they are joined into.
func validateModID(modID string) error {
	if modID == "." || strings.Contains(modID, "..") || strings.ContainsAny(modID, `/\`) {
		return fmt.Errorf("%w: %q", invalidModIDErr, modID)
	}
	return nil
}

func contains(haystack []string, needle string) bool {
	for _, straw := range haystack {
		if straw == needle {
			return true
		}
	}
	return false
}

var invalidModIDErr = errors.New("mod ID must not contain path separators or '..'")
