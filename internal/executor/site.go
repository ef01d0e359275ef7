package executor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// SiteRepo re-clones the Site repository under ~/Developer/Git and installs
// its dependencies. Each step's failure stops the remaining steps.
//
// Run leaves the process working directory inside the clone; callers restore
// it afterwards.
type SiteRepo struct {
	// Repo is the "<org>/<name>" identifier passed to the clone command.
	Repo string
	// Parent is the directory, relative to home, the clone is placed in.
	Parent string
	// Dir is the directory name the clone creates.
	Dir string
	// CloneCmd is followed by Repo on the command line.
	CloneCmd   []string
	InstallCmd []string

	Runner ProcessRunner
	// Home resolves the user's home directory; os.UserHomeDir if nil.
	Home   func() (string, error)
	Logger *log.Logger
}

// NewSiteRepo returns the routine configured for ZeroDread/Site.
func NewSiteRepo(runner ProcessRunner, logger *log.Logger) *SiteRepo {
	return &SiteRepo{
		Repo:       "ZeroDread/Site",
		Parent:     filepath.Join("Developer", "Git"),
		Dir:        "Site",
		CloneCmd:   []string{"gh", "repo", "clone"},
		InstallCmd: []string{"bun", "install"},
		Runner:     runner,
		Logger:     logger,
	}
}

// Run implements Routine.
func (s *SiteRepo) Run(ctx context.Context) error {
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}

	home, err := s.home()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}
	parent := filepath.Join(home, s.Parent)
	if err := os.Chdir(parent); err != nil {
		return fmt.Errorf("change directory: %w", err)
	}

	target := filepath.Join(parent, s.Dir)
	switch _, err := os.Stat(target); {
	case err == nil:
		logger.Info("Removing existing directory", "path", target)
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("remove %s: %w", target, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat %s: %w", target, err)
	}

	logger.Info("Cloning repository", "repo", s.Repo)
	args := append(append([]string{}, s.CloneCmd[1:]...), s.Repo)
	if err := s.Runner.Run(ctx, parent, s.CloneCmd[0], args...); err != nil {
		return fmt.Errorf("failed to clone repository %s: %w", s.Repo, err)
	}

	if err := os.Chdir(target); err != nil {
		return fmt.Errorf("change directory: %w", err)
	}
	logger.Info("Installing dependencies", "dir", target)
	if err := s.Runner.Run(ctx, target, s.InstallCmd[0], s.InstallCmd[1:]...); err != nil {
		return fmt.Errorf("failed to install dependencies: %w", err)
	}
	return nil
}

func (s *SiteRepo) home() (string, error) {
	if s.Home != nil {
		return s.Home()
	}
	return os.UserHomeDir()
}
