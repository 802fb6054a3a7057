package convert

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mbaudet/oeuvre/internal/render"
)

// Exec converts through an external jp2a-compatible binary.
type Exec struct {
	path string
}

// NewExec creates a converter that shells out to the binary at path.
func NewExec(path string) *Exec {
	return &Exec{path: path}
}

// Convert runs the external converter and returns its HTML output. The
// grid size and color mode travel as explicit flags; nothing about the
// environment is touched.
func (e *Exec) Convert(ctx context.Context, imagePath string, req Request) (string, error) {
	if err := validate(req); err != nil {
		return "", fmt.Errorf("%s: %w", err, ErrConversion)
	}

	cmd := exec.CommandContext(ctx, e.path, execArgs(imagePath, req)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			return "", fmt.Errorf("run %s: %s: %w", e.path, detail, ErrConversion)
		}
		return "", fmt.Errorf("run %s: %v: %w", e.path, err, ErrConversion)
	}
	if stdout.Len() == 0 {
		return "", fmt.Errorf("%s produced no output: %w", e.path, ErrConversion)
	}
	return stdout.String(), nil
}

// execArgs builds the jp2a invocation for a request.
func execArgs(imagePath string, req Request) []string {
	args := []string{
		"--colors",
		"--html",
		fmt.Sprintf("--width=%d", req.Columns),
		fmt.Sprintf("--height=%d", req.Rows),
	}
	if req.Mode == render.ModeFill {
		args = append(args, "--fill")
	}
	return append(args, imagePath)
}
