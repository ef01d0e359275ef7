// Package utils provides small helpers shared by the CLI commands.
package utils

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// EditorCommand returns the argv used to edit path. $VISUAL wins over
// $EDITOR; both may carry arguments ("code --wait"). vi is the fallback.
func EditorCommand(path string) ([]string, error) {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}
	argv, err := shellquote.Split(editor)
	if err != nil {
		return nil, fmt.Errorf("parse editor %q: %w", editor, err)
	}
	if len(argv) == 0 {
		return nil, errors.New("editor command is empty")
	}
	return append(argv, path), nil
}

// OpenEditor opens path in the user's editor attached to the terminal and
// waits for it to exit.
func OpenEditor(ctx context.Context, path string) error {
	argv, err := EditorCommand(path)
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("open editor: %w", err)
	}
	return nil
}
