package yamltables

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/unitix/internal/domain"
	"github.com/aalvaropc/unitix/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	tablesDir string
}

type Option func(*Loader)

func WithTablesDir(dir string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(dir) != "" {
			l.tablesDir = dir
		}
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{tablesDir: "tables"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.TableLoader = (*Loader)(nil)

// LoadTables reads every YAML file under <root>/<tablesDir>, in file-name order.
// A missing directory yields no categories.
func (l *Loader) LoadTables(root string) ([]domain.Category, error) {
	dir := l.tablesDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &domain.OpError{
			Op:   "yamltables.list",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !hasYAMLExt(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)

	var out []domain.Category
	for _, f := range files {
		cats, err := LoadFile(f)
		if err != nil {
			return nil, err
		}
		out = append(out, cats...)
	}
	return out, nil
}

// LoadFile parses a single tables file.
func LoadFile(path string) ([]domain.Category, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamltables.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLTables
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, &domain.OpError{
			Op:   "yamltables.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapTables(path, dto)
}

func hasYAMLExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
