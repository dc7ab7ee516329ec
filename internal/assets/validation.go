package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that a style or template name is a bare file
// stem: not empty, no separators, no dots and no NUL bytes.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
