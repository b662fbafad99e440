package extract

import (
	"fmt"

	"github.com/arloliu/ngg7/errs"
)

// SanitizeName turns a section name into a single path element.
//
// Path separators and control characters are replaced with '_', so a name can never
// leave the output directory. Other bytes, including non-ASCII ones, are kept as
// they are. Empty names and the "." and ".." elements are rejected with
// ErrInvalidSectionName.
func SanitizeName(name string) (string, error) {
	b := []byte(name)
	for i, c := range b {
		if c == '/' || c == '\\' || c < 0x20 || c == 0x7f {
			b[i] = '_'
		}
	}

	clean := string(b)
	switch clean {
	case "", ".", "..":
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidSectionName, name)
	}

	return clean, nil
}
