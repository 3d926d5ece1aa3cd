package ports

import "os/exec"

// LinkOpener opens a record's reference link outside the terminal
type LinkOpener interface {
	Open(url string) error
}

// EditorOpener builds the command that edits a batch draft in $EDITOR.
// The command is run by the terminal UI, which suspends while it executes.
type EditorOpener interface {
	Command(path string) (*exec.Cmd, error)
}
