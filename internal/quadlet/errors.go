package quadlet

import "fmt"

// OptionError reports a quadlet option whose value requires a newer podman
// version than the one a file is being downgraded to.
type OptionError struct {
	Option    string
	Value     string
	Supported PodmanVersion
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("quadlet option `%s=%s` was not supported until podman v%s",
		e.Option, e.Value, e.Supported)
}

// KindError reports a resource kind that does not exist before some podman
// version, e.g. pod units before 5.0.
type KindError struct {
	Kind      ResourceKind
	Supported PodmanVersion
}

func (e *KindError) Error() string {
	return fmt.Sprintf("`.%s` quadlet files were not supported until podman v%s",
		e.Kind, e.Supported)
}
