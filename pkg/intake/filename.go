package intake

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// dangerousPatterns are rejected anywhere in a client-supplied filename.
var dangerousPatterns = []string{
	"..",     // parent directory
	"~",      // home directory
	"//",     // network paths and doubled separators
	"\\",     // windows separator
	"%2e%2e", // url-encoded parent directory, matched case-insensitively
	"\x00",
}

// IsDangerousFilename reports whether a client-supplied filename contains
// traversal or escape sequences. The check runs on the raw name and again
// on its NFKC form, so full-width look-alikes of dots and slashes are caught.
// It may reject names that could never escape; that is acceptable.
//
// Example:
//
//	intake.IsDangerousFilename("../../etc/passwd") // true
//	intake.IsDangerousFilename("avatar.png")       // false
func IsDangerousFilename(name string) bool {
	if containsDangerous(name) {
		return true
	}

	normalized := norm.NFKC.String(name)
	return normalized != name && containsDangerous(normalized)
}

func containsDangerous(name string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
