package git

import (
	"encoding/hex"
	"regexp"
	"strings"
)

// HashLength is the length of a hex SHA-1 commit id
const HashLength = 40

// parentRegex matches "parent <id>" header lines, one id per line
var parentRegex = regexp.MustCompile(`(?im)^parent ([0-9a-f]{40})$`)

// IsValidHash reports whether s is a 40 character hex id
func IsValidHash(s string) bool {
	if len(s) != HashLength {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// ParseParents extracts parent ids from decoded commit text.
// Order follows the text; ids are lowercased so they address object paths.
func ParseParents(text string) []string {
	matches := parentRegex.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	parents := make([]string, 0, len(matches))
	for _, match := range matches {
		parents = append(parents, strings.ToLower(match[1]))
	}
	return parents
}
