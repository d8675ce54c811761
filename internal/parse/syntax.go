package parse

import (
	"fmt"
	"strings"

	"github.com/coreos/go-systemd/v22/unit"
)

// CheckSyntax verifies that rendered unit text is well-formed from systemd's
// point of view, independently of this package's own parser. Generated files
// pass through here before they are written to disk.
func CheckSyntax(text string) error {
	if _, err := unit.Deserialize(strings.NewReader(text)); err != nil {
		return fmt.Errorf("generated unit is not parseable: %w", err)
	}
	return nil
}
