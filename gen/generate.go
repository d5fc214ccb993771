package gen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cohesivestack/valgo"
	"github.com/joshjon/kit/log"
	"golang.org/x/sync/errgroup"

	"github.com/coro-sh/prefid/internal/valgoutil"
	"github.com/coro-sh/prefid/logkey"
)

const maxConcurrentWrites = 10

// Config describes a package of generated identifier kinds.
type Config struct {
	Package    string `yaml:"package" env:"PACKAGE"`
	ModulePath string `yaml:"modulePath" env:"MODULE_PATH"` // default: github.com/coro-sh/prefid
	Kinds      []Kind `yaml:"kinds"`
}

func (c *Config) InitDefaults() {
	c.ModulePath = DefaultModulePath
}

// Resolve returns a copy of the config with derived type names filled in.
func (c Config) Resolve() (Config, error) {
	if c.ModulePath == "" {
		c.ModulePath = DefaultModulePath
	}

	kinds := make([]Kind, len(c.Kinds))
	for i, kind := range c.Kinds {
		if kind.TypeName == "" {
			name, err := TypeNameFromPrefix(kind.Prefix)
			if err != nil {
				return Config{}, fmt.Errorf("kind %d: %w", i, err)
			}
			kind.TypeName = name
		}
		kinds[i] = kind
	}
	c.Kinds = kinds

	return c, nil
}

// Validation checks that the generated source would compile. Prefixes are not
// validated.
func (c *Config) Validation() *valgo.Validation {
	v := valgo.Is(
		valgoutil.GoIdentifierValidator(c.Package, "package"),
		valgoutil.ImportPathValidator(c.ModulePath, "modulePath"),
		valgoutil.NonEmptySliceValidator(c.Kinds, "kinds"),
	)

	// Marker types and file names must be unique within the package.
	seen := make(map[string]int, 2*len(c.Kinds))
	for i, kind := range c.Kinds {
		first, dup := -1, false
		for _, key := range []string{MarkerName(kind.TypeName), FileName(kind.TypeName)} {
			if j, ok := seen[key]; ok && !dup {
				first, dup = j, true
			}
			if _, ok := seen[key]; !ok {
				seen[key] = i
			}
		}
		v.InRow("kinds", i, valgo.Is(
			valgoutil.GoIdentifierValidator(kind.TypeName, "typeName").
				Passing(func(_ string) bool { return !dup }, fmt.Sprintf("must not clash with kinds[%d]", first)),
		))
	}

	return v
}

// Generate writes one file per kind into outDir and returns the written paths
// in the order of cfg.Kinds.
func Generate(ctx context.Context, logger log.Logger, cfg Config, outDir string) ([]string, error) {
	cfg, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	if err = cfg.Validation().Error(); err != nil {
		return nil, err
	}

	if err = os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	logger = logger.With(logkey.Package, cfg.Package, logkey.ModulePath, cfg.ModulePath)

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(maxConcurrentWrites)

	files := make([]string, len(cfg.Kinds))
	for i, kind := range cfg.Kinds {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			src, err := Render(cfg.Package, cfg.ModulePath, kind)
			if err != nil {
				return err
			}

			file := filepath.Join(outDir, FileName(kind.TypeName))
			if err = os.WriteFile(file, src, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", file, err)
			}

			logger.Info("generated identifier", logkey.IDType, kind.TypeName, logkey.IDPrefix, kind.Prefix, logkey.File, file)
			files[i] = file
			return nil
		})
	}

	if err = errg.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}
