package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxImageNameLength = 128
	maxAssetPathLength = 500
)

type rule struct {
	broken func(string) bool
	msg    string
}

func hasControl(s string) bool { return strings.IndexFunc(s, unicode.IsControl) >= 0 }

// Output names become a single file inside the output directory.
var imageNameRules = []rule{
	{func(s string) bool { return strings.TrimSpace(s) == "" }, "image name cannot be empty"},
	{func(s string) bool { return utf8.RuneCountInString(s) > maxImageNameLength }, "image name is longer than 128 characters"},
	{hasControl, "image name contains control characters"},
	{func(s string) bool { return strings.ContainsAny(s, `/\`) }, "image name cannot contain path separators"},
	{func(s string) bool { return strings.Contains(s, "..") }, `image name cannot contain ".."`},
	{func(s string) bool { return strings.HasPrefix(s, ".") }, "image name cannot start with a dot"},
	{reservedOnWindows, "image name is reserved on Windows"},
}

// Asset paths may be relative or absolute; they only have to be able to
// name a file.
var assetPathRules = []rule{
	{func(s string) bool { return s == "" }, "path cannot be empty"},
	{func(s string) bool { return utf8.RuneCountInString(s) > maxAssetPathLength }, "path is longer than 500 characters"},
	{hasControl, "path contains control characters"},
}

func reservedOnWindows(name string) bool {
	stem, _, _ := strings.Cut(name, ".")
	switch strings.ToUpper(strings.TrimSpace(stem)) {
	case "CON", "PRN", "AUX", "NUL",
		"COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8", "COM9",
		"LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9":
		return true
	}
	return false
}

func check(rules []rule, s string) error {
	for _, r := range rules {
		if r.broken(s) {
			return New(ErrCodeInvalidPath, "%s", r.msg)
		}
	}
	return nil
}

// ValidateImageName reports whether name can be used as an output file
// name: a non-blank, visible basename of at most 128 characters.
func ValidateImageName(name string) error { return check(imageNameRules, name) }

// ValidatePath checks a user-supplied background, font, or overlay path.
func ValidatePath(path string) error { return check(assetPathRules, path) }
