// Package integration provides the embedded shell integration snippet.
package integration

import (
	"bytes"
	_ "embed"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/idelchi/dirkit/internal/fserr"
)

// Script contains the shell integration template shared by zsh and bash.
//
//go:embed dirkit.sh
var Script string

// Shells lists the supported shells.
//
//nolint:gochecknoglobals // Config constant
var Shells = []string{"zsh", "bash"}

// quote single-quotes s for POSIX shells.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Binary returns the path the snippet should call: dirkit from PATH if present,
// otherwise the running executable.
func Binary() (string, error) {
	if bin, err := exec.LookPath("dirkit"); err == nil {
		return filepath.ToSlash(bin), nil
	}

	bin, err := os.Executable()
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(bin), nil
}

// Render renders the integration script for shell, calling bin.
func Render(shell, bin string) (string, error) {
	if !slices.Contains(Shells, shell) {
		return "", fserr.Invalid("init", shell, "unsupported shell, must be one of "+strings.Join(Shells, ", "))
	}

	tmpl, err := template.New("dirkit").Funcs(template.FuncMap{"quote": quote}).Parse(Script)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{
		"Shell": shell,
		"Bin":   bin,
	}); err != nil {
		return "", err
	}

	return buf.String(), nil
}
