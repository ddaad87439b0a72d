package manifest

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/pyproject.toml.tmpl
var pyprojectTemplate string

var tmpl = template.Must(template.New("pyproject.toml").Parse(pyprojectTemplate))

// Params are the values collected by init.
type Params struct {
	Name           string
	RequiresPython string
}

// Render fills the initial manifest template. Values are inserted as-is;
// text that breaks the TOML syntax is only caught when the result is parsed.
func Render(p Params) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, p); err != nil {
		return "", fmt.Errorf("rendering pyproject.toml: %w", err)
	}
	return b.String(), nil
}
