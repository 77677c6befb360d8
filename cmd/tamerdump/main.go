// Package main is the tamerdump CLI: it prints DataTamer schemas and decodes
// recorded snapshot message bodies against them.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/tuannm99/tamer/internal"
	"github.com/tuannm99/tamer/internal/logging"
	"github.com/tuannm99/tamer/internal/schema"
)

const (
	// Flags.
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagFormat    = "format"
	flagNoColor   = "no-color"
	flagSchema    = "schema"
	flagChannel   = "channel"
	flagHash      = "hash"
	flagTimestamp = "timestamp"
	flagWorkers   = "workers"
)

func main() {
	var cfg *internal.TamerConfig

	app := &cli.App{
		Name:  "tamerdump",
		Usage: "inspect DataTamer schemas and snapshots",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "load configuration from `FILE`",
				EnvVars: []string{"TAMER_CONFIG"},
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Usage: "override log.level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  flagFormat,
				Usage: "override output.format (text, yaml)",
			},
			&cli.BoolFlag{
				Name:  flagNoColor,
				Usage: "disable colored text output",
			},
		},
		Before: func(c *cli.Context) error {
			var err error
			cfg, err = loadConfig(c)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log.Level, cfg.Log.Encoding)
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(logger)
			return nil
		},
		After: func(c *cli.Context) error {
			_ = zap.L().Sync()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "schema",
				Usage:     "parse schema files and print them; without FILE, print every schema under schema.dir",
				ArgsUsage: "[FILE...]",
				Action: func(c *cli.Context) error {
					return runSchema(c, cfg)
				},
			},
			{
				Name:      "decode",
				Usage:     "decode recorded message bodies",
				ArgsUsage: "BODY...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  flagSchema,
						Usage: "schema text `FILE`; defaults to the registry under schema.dir",
					},
					&cli.StringFlag{
						Name:  flagChannel,
						Usage: "pick the registry schema by channel `NAME`",
					},
					&cli.Uint64Flag{
						Name:  flagHash,
						Usage: "schema hash the bodies were recorded with",
					},
					&cli.Uint64Flag{
						Name:  flagTimestamp,
						Usage: "timestamp reported for every snapshot",
					},
					&cli.IntFlag{
						Name:  flagWorkers,
						Usage: "override decode.workers",
					},
				},
				Action: func(c *cli.Context) error {
					return runDecode(c, cfg)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (*internal.TamerConfig, error) {
	cfg, err := internal.LoadConfig(c.String(flagConfig))
	if err != nil {
		return nil, err
	}
	if c.IsSet(flagLogLevel) {
		cfg.Log.Level = c.String(flagLogLevel)
	}
	if c.IsSet(flagFormat) {
		cfg.Output.Format = c.String(flagFormat)
	}
	if c.Bool(flagNoColor) {
		cfg.Output.Color = false
	}
	return cfg, nil
}

func newPrinterFor(c *cli.Context, cfg *internal.TamerConfig) (*printer, error) {
	switch cfg.Output.Format {
	case internal.FormatText, internal.FormatYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.Output.Format)
	}
	return newPrinter(c.App.Writer, cfg.Output.Format, cfg.Output.Color), nil
}

func runSchema(c *cli.Context, cfg *internal.TamerConfig) error {
	hashString, err := cfg.StringHash()
	if err != nil {
		return err
	}
	p, err := newPrinterFor(c, cfg)
	if err != nil {
		return err
	}

	reg := schema.NewRegistry()
	var docs []schemaDoc
	var errs error

	if c.NArg() == 0 {
		if cfg.Schema.Dir == "" {
			return errors.New("no schema files given and schema.dir is not set")
		}
		errs = reg.LoadDir(cfg.Schema.Dir, schema.WithStringHash(hashString))
		for _, name := range reg.Channels() {
			s, err := reg.ByChannel(name)
			if err != nil {
				return err
			}
			docs = append(docs, newSchemaDoc(cfg.Schema.Dir, s))
		}
	} else {
		for _, path := range c.Args().Slice() {
			s, err := reg.LoadFile(path, schema.WithStringHash(hashString))
			if err != nil {
				errs = appendFileErr(errs, path, err)
				continue
			}
			docs = append(docs, newSchemaDoc(path, s))
		}
	}

	if err := p.schemas(docs); err != nil {
		return err
	}
	return errs
}

func runDecode(c *cli.Context, cfg *internal.TamerConfig) error {
	if c.NArg() == 0 {
		return errors.New("decode: no message bodies given")
	}
	hashString, err := cfg.StringHash()
	if err != nil {
		return err
	}
	p, err := newPrinterFor(c, cfg)
	if err != nil {
		return err
	}

	reg := schema.NewRegistry()
	if path := c.String(flagSchema); path != "" {
		if _, err := reg.LoadFile(path, schema.WithStringHash(hashString)); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	} else if cfg.Schema.Dir != "" {
		if err := reg.LoadDir(cfg.Schema.Dir, schema.WithStringHash(hashString)); err != nil {
			zap.L().Warn("some schemas failed to load", zap.Error(err))
		}
	} else {
		return errors.New("decode: --schema is required when schema.dir is not set")
	}

	hash, err := pickHash(reg, c.String(flagChannel), c.Uint64(flagHash), c.IsSet(flagHash))
	if err != nil {
		return err
	}

	workers := cfg.Decode.Workers
	if c.IsSet(flagWorkers) {
		workers = c.Int(flagWorkers)
	}

	results, errs := decodeFiles(c.Context, reg, c.Args().Slice(), hash, c.Uint64(flagTimestamp), workers)
	if err := p.snapshots(results); err != nil {
		return err
	}
	return errs
}

// pickHash chooses the schema hash the bodies are routed with: an explicit
// --hash, else the hash of the --channel schema, else the only registered one.
func pickHash(reg *schema.Registry, channel string, hash uint64, hashSet bool) (uint64, error) {
	switch {
	case hashSet:
		return hash, nil
	case channel != "":
		s, err := reg.ByChannel(channel)
		if err != nil {
			return 0, err
		}
		return s.Hash, nil
	}

	channels := reg.Channels()
	if len(channels) != 1 {
		return 0, fmt.Errorf("decode: %d schemas loaded, pick one with --%s or --%s", len(channels), flagChannel, flagHash)
	}
	s, err := reg.ByChannel(channels[0])
	if err != nil {
		return 0, err
	}
	return s.Hash, nil
}
