// Command prefidgen generates Go source files declaring prefixed identifier
// kinds, one file per kind.
//
//	prefidgen --package ids --out ./ids --id user --id order_item:ItemID
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/cohesivestack/valgo"
	"github.com/joshjon/kit/config"
	"github.com/joshjon/kit/log"
	"github.com/urfave/cli/v2"

	"github.com/coro-sh/prefid/gen"
	"github.com/coro-sh/prefid/logkey"
)

const appName = "prefidgen"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancel()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		var verr *valgo.Error
		if errors.As(err, &verr) {
			printValidationErrors(os.Stderr, "Config errors:", verr)
		} else {
			fmt.Fprintln(os.Stderr, err) //nolint:errcheck
		}
		os.Exit(1)
	}
}

func newApp() *cli.App {
	cliApp := cli.NewApp()
	cliApp.Name = appName
	cliApp.Usage = "Generate prefixed identifier types"

	cliApp.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   "",
			Usage:   "path to yaml config file",
		},
		&cli.StringFlag{
			Name:    "package",
			Aliases: []string{"p"},
			Usage:   "package name of the generated files",
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "output directory (default: .)",
		},
		&cli.StringFlag{
			Name:  "module-path",
			Usage: fmt.Sprintf("import path of the prefid package (default: %s)", gen.DefaultModulePath),
		},
		&cli.StringSliceFlag{
			Name:  "id",
			Usage: "identifier kind to generate as prefix[:TypeName], repeatable",
		},
	}

	cliApp.Commands = []*cli.Command{
		{
			Name:  "generate",
			Usage: "[default] generates identifier source files",
			Action: func(c *cli.Context) error {
				f := parseFlags(c)

				var cfg Config
				if f.configFile != "" {
					config.Load(f.configFile, &cfg)
				} else {
					cfg.InitDefaults()
				}
				f.apply(&cfg)

				logger := loggerFromConfig(cfg.Logger).With(logkey.Service, appName)
				if f.configFile != "" {
					logger = logger.With(logkey.ConfigFile, f.configFile)
				}

				files, err := gen.Generate(c.Context, logger, cfg.Config, cfg.Out)
				if err != nil {
					return err
				}

				logger.Info("generated identifiers", logkey.Files, len(files), logkey.OutputDir, cfg.Out)
				return nil
			},
		},
	}

	cliApp.DefaultCommand = "generate"

	return cliApp
}

type flags struct {
	configFile string
	pkg        string
	out        string
	modulePath string
	ids        []string
}

func (f flags) validate() *valgo.Validation {
	v := valgo.New()
	for i, id := range f.ids {
		v.InRow("id", i, valgo.Is(valgo.String(id, "id").Not().Blank()))
	}
	return v
}

// apply merges flags over cfg. Kinds given as flags are added to the kinds of
// the config file.
func (f flags) apply(cfg *Config) {
	if f.pkg != "" {
		cfg.Package = f.pkg
	}
	if f.out != "" {
		cfg.Out = f.out
	}
	if f.modulePath != "" {
		cfg.ModulePath = f.modulePath
	}
	for _, id := range f.ids {
		cfg.Kinds = append(cfg.Kinds, parseKind(id))
	}
}

// parseKind splits "prefix[:TypeName]" at the last colon.
func parseKind(s string) gen.Kind {
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return gen.Kind{Prefix: s}
	}
	return gen.Kind{Prefix: s[:i], TypeName: s[i+1:]}
}

func parseFlags(c *cli.Context) flags {
	f := flags{
		configFile: c.String("config"),
		pkg:        c.String("package"),
		out:        c.String("out"),
		modulePath: c.String("module-path"),
		ids:        c.StringSlice("id"),
	}
	exitOnInvalidFlags(c, f.validate())
	return f
}

func exitOnInvalidFlags(c *cli.Context, v *valgo.Validation) {
	if v.ToError() == nil {
		return
	}
	printValidationErrors(os.Stderr, "Flag errors:", v.ToError().(*valgo.Error))

	fmt.Fprintln(os.Stdout) //nolint:errcheck
	cli.ShowAppHelpAndExit(c, 1)
}

func printValidationErrors(w io.Writer, title string, verr *valgo.Error) {
	fmt.Fprintln(w, title) //nolint:errcheck
	for _, fieldErr := range verr.Errors() {
		fmt.Fprintf(w, "  %s: %s\n", fieldErr.Name(), strings.Join(fieldErr.Messages(), ",")) //nolint:errcheck
	}
}

func loggerFromConfig(cfg LoggerConfig) log.Logger {
	level, ok := log.ParseLevel(cfg.Level)
	if !ok {
		level = slog.LevelInfo
	}
	opts := []log.LoggerOption{log.WithLevel(level)}
	if !cfg.Structured {
		opts = append(opts, log.WithDevelopment())
	}
	return log.NewLogger(opts...)
}
