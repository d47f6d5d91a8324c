package ports

import "os/exec"

// EditorOpener defines the interface for editing long text in an external editor
type EditorOpener interface {
	// OpenFile opens the specified file in the user's preferred editor and waits
	OpenFile(path string) error

	// Command returns an exec.Cmd for opening a file in the editor,
	// for use with bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}
