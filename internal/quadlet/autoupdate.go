package quadlet

import (
	"fmt"
	"slices"
	"strings"
)

// AutoUpdate is a valid value for the AutoUpdate= quadlet option.
type AutoUpdate string

// Accepted auto-update policies, per podman-auto-update(1).
const (
	AutoUpdateRegistry AutoUpdate = "registry"
	AutoUpdateLocal    AutoUpdate = "local"
)

// autoUpdateLabelKey is the label podman auto-update reads its policy from.
const autoUpdateLabelKey = "io.containers.autoupdate"

// ParseAutoUpdate parses an auto-update policy value.
func ParseAutoUpdate(s string) (AutoUpdate, error) {
	switch AutoUpdate(s) {
	case AutoUpdateRegistry, AutoUpdateLocal:
		return AutoUpdate(s), nil
	}
	return "", fmt.Errorf("unknown auto update variant `%s`, must be `registry` or `local`", s)
}

// autoUpdateLabel renders the policy back into its label form.
func (a AutoUpdate) autoUpdateLabel() string {
	return autoUpdateLabelKey + "=" + string(a)
}

// ExtractAutoUpdateFromLabels removes every io.containers.autoupdate label
// with a valid value from labels and returns the last one seen. Labels under
// that key with values this model does not understand are retained verbatim
// so they reach the rendered file unchanged.
//
// The second return value is false when no valid label was present.
func ExtractAutoUpdateFromLabels(labels *[]string) (AutoUpdate, bool) {
	var (
		autoUpdate AutoUpdate
		found      bool
	)
	*labels = slices.DeleteFunc(*labels, func(label string) bool {
		value, hasKey := strings.CutPrefix(label, autoUpdateLabelKey+"=")
		if !hasKey {
			return false
		}
		parsed, err := ParseAutoUpdate(value)
		if err != nil {
			return false
		}
		autoUpdate, found = parsed, true
		return true
	})
	return autoUpdate, found
}
