// Package config provides generation configuration and project path derivation.
package config

import "strings"

// EnvDirName is the fixed directory under the project root that holds the
// provisioned virtual environment.
const EnvDirName = ".fforge"

// DefaultTemplate is the template set used when --template is omitted.
const DefaultTemplate = "rest_api"

// DefaultDependencies is the Flask ecosystem list installed when
// --dependencies is omitted.
var DefaultDependencies = []string{
	"Flask",
	"Flask-CKEditor",
	"Flask-Mail",
	"Flask-Login",
	"Flask-Migrate",
	"Flask-SQLAlchemy",
	"Flask-WTF",
	"email_validator",
	"python-dotenv",
}

// GenerationConfig is the immutable input to one generation run, constructed
// once from CLI flags.
type GenerationConfig struct {
	// ProjectName is used verbatim as both directory name and package name.
	ProjectName string

	// Blueprints is the ordered list of sub-unit names. Blank entries are
	// skipped during generation; deduplication is not performed.
	Blueprints []string

	// Dependencies is the list of dependency specifiers installed into the
	// provisioned environment.
	Dependencies []string

	// Verbosity selects the log level (0=CRITICAL .. 4=DEBUG).
	Verbosity int

	// Template is the template-set identifier (rest_api or full_stack).
	Template string

	// ConfigPath is the custom configuration file path. It is accepted and
	// loaded but consumed by no stage; a reserved extension point.
	ConfigPath string

	// PostGenHooks are shell commands run after all built-in stages, each
	// scoped to the project directory with the environment activated.
	PostGenHooks []string

	// VenvDir is the requested alternate environment directory. The
	// environment is always created under EnvDirName regardless; the value
	// is carried but never applied.
	VenvDir string
}

// SplitList splits a comma-separated flag value into trimmed entries,
// dropping blanks.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
