package config

import (
	"context"
	"strings"
)

// renderScaffoldConfig builds the scaffold YAML via the compiled template.
func renderScaffoldConfig(opts ScaffoldOptions) (string, error) {
	var builder strings.Builder
	if err := ScaffoldConfig(opts).Render(context.Background(), &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
