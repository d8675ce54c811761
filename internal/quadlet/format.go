package quadlet

import (
	"fmt"
	"strings"
)

// formatKeyValue formats a key-value pair as "key=value" with a trailing
// newline.
func formatKeyValue(key, value string) string {
	return fmt.Sprintf("%s=%s\n", key, value)
}

// formatKeyValueSlice formats a key with multiple values using space
// separation.
func formatKeyValueSlice(key string, values []string) string {
	return fmt.Sprintf("%s=%s\n", key, strings.Join(values, " "))
}

// formatBool formats a key with a systemd-style boolean value.
func formatBool(key string, value bool) string {
	if value {
		return formatKeyValue(key, "yes")
	}
	return formatKeyValue(key, "no")
}

// writeEach writes one "key=value" line per value.
func writeEach(b *strings.Builder, key string, values []string) {
	for _, v := range values {
		b.WriteString(formatKeyValue(key, v))
	}
}
