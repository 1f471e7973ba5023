// Package templates provides the embedded template sets and rendering for
// project generation.
package templates

import (
	"embed"
	"fmt"

	fferrors "github.com/flaskforge/cli/internal/errors"
)

//go:embed all:rest_api
var restAPIFS embed.FS

//go:embed all:full_stack
var fullStackFS embed.FS

// SetName identifies a template set.
type SetName string

const (
	// RestAPI is the default API-only template set.
	RestAPI SetName = "rest_api"

	// FullStack adds static asset scaffolding for server-rendered apps.
	FullStack SetName = "full_stack"
)

// ValidSets returns all valid template set names.
func ValidSets() []string {
	return []string{string(RestAPI), string(FullStack)}
}

// IsValidSet checks if a template set name is valid.
func IsValidSet(name string) bool {
	switch SetName(name) {
	case RestAPI, FullStack:
		return true
	default:
		return false
	}
}

// Set describes a template set for listing output.
type Set struct {
	// Name is the set identifier.
	Name string

	// Description explains the set's purpose.
	Description string

	// Default indicates the set used when --template is omitted.
	Default bool
}

// List returns all registered template sets.
func List() []Set {
	return []Set{
		{
			Name:        string(RestAPI),
			Description: "API-only Flask project (app factory, config, requirements)",
			Default:     true,
		},
		{
			Name:        string(FullStack),
			Description: "Flask project with static asset scaffolding (CSS, JS)",
		},
	}
}

// getFS returns the embedded filesystem for a template set.
func getFS(name SetName) (embed.FS, string, error) {
	switch name {
	case RestAPI:
		return restAPIFS, "rest_api", nil
	case FullStack:
		return fullStackFS, "full_stack", nil
	default:
		return embed.FS{}, "", fferrors.Wrap(fferrors.ErrNotFound, fmt.Sprintf("unknown template set %q; valid sets: %s, %s", name, RestAPI, FullStack))
	}
}
