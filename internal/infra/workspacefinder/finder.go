package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/unitix/internal/domain"
	"github.com/aalvaropc/unitix/internal/ports"
)

// Finder locates a unitix workspace root by searching for unitix.yaml upward.
type Finder struct {
	ConfigFile string // defaults to "unitix.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// A file path means "start from its directory".
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		if _, err := os.Stat(filepath.Join(cur, f.ConfigFile)); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// LoadOrDefault finds the workspace above startDir and loads its config.
// No workspace is not an error: it yields ("", DefaultConfig(), nil).
func (f *Finder) LoadOrDefault(startDir string) (string, domain.Config, error) {
	root, err := f.FindRoot(startDir)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return "", domain.DefaultConfig(), nil
		}
		return "", domain.DefaultConfig(), err
	}

	cfg, err := LoadConfig(root)
	return root, cfg, err
}
