package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"enrichio/internal/ports"
)

// Opener implements ports.EditorOpener
type Opener struct {
	lookup func(string) string
}

// Ensure Opener implements EditorOpener
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{lookup: os.Getenv}
}

// Command returns the editor invocation for path, wired to the terminal
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	// $EDITOR may carry flags, e.g. "code --wait"
	fields := strings.Fields(editor)
	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	if editor := o.lookup("EDITOR"); editor != "" {
		return editor
	}
	if visual := o.lookup("VISUAL"); visual != "" {
		return visual
	}

	editors := []string{"nvim", "vim", "vi", "nano"}
	for _, editor := range editors {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}

	return ""
}

// Draft is a temporary file holding a company list while it is edited
type Draft struct {
	Path string
}

// NewDraft writes content to a new temporary file
func NewDraft(content string) (*Draft, error) {
	f, err := os.CreateTemp("", "enrichio-batch-*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write draft: %w", err)
	}
	return &Draft{Path: f.Name()}, nil
}

// Read returns the current draft content
func (d *Draft) Read() (string, error) {
	data, err := os.ReadFile(d.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read draft: %w", err)
	}
	return string(data), nil
}

// Remove deletes the draft file
func (d *Draft) Remove() error {
	return os.Remove(d.Path)
}
