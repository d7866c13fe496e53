// Package driver turns IR documents into C files.
package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/calumari/aurac/internal/ir"
	"github.com/calumari/aurac/internal/irdoc"
	"golang.org/x/sync/errgroup"
)

// Stdout as Config.Output writes the unit to Config.Stdout.
const Stdout = "-"

// Config holds build settings.
type Config struct {
	Inputs  []string  // IR documents to compile
	Output  string    // output file; only valid with a single input
	OutDir  string    // directory for <input base>.c when Output is empty
	Jobs    int       // concurrent units; <= 0 means one per input
	Command string    // canonical invocation recorded in the banner
	Version string    // aurac build version
	Stdout  io.Writer // destination for Output "-"; defaults to os.Stdout
}

// Run compiles every input. The first failure cancels the remaining units.
func Run(ctx context.Context, cfg Config) error {
	if len(cfg.Inputs) == 0 {
		return errors.New("no inputs provided")
	}
	if cfg.Output != "" && len(cfg.Inputs) > 1 {
		return fmt.Errorf("output %s given for %d inputs", cfg.Output, len(cfg.Inputs))
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Output != Stdout {
		seen := make(map[string]string, len(cfg.Inputs))
		for _, in := range cfg.Inputs {
			out := OutputPath(cfg, in)
			if prev, ok := seen[out]; ok {
				return fmt.Errorf("inputs %s and %s both write %s", prev, in, out)
			}
			seen[out] = in
		}
		dir := cfg.OutDir
		if cfg.Output != "" {
			dir = filepath.Dir(cfg.Output)
		}
		if dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Jobs > 0 {
		g.SetLimit(cfg.Jobs)
	}
	for _, in := range cfg.Inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return compileUnit(cfg, in)
		})
	}
	return g.Wait()
}

func compileUnit(cfg Config, in string) error {
	p, err := irdoc.Load(in)
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := p.Render(&out, ir.RenderOptions{Banner: banner(cfg, in)}); err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	if cfg.Output == Stdout {
		_, err := cfg.Stdout.Write(out.Bytes())
		return err
	}
	return os.WriteFile(OutputPath(cfg, in), out.Bytes(), 0o644)
}

// OutputPath is the file the unit for input is written to.
func OutputPath(cfg Config, input string) string {
	if cfg.Output != "" {
		return cfg.Output
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(cfg.OutDir, base+".c")
}

func banner(cfg Config, input string) string {
	version := cfg.Version
	if version == "" {
		version = "devel"
	}
	s := "Code generated by aurac " + version + " from " + filepath.Base(input)
	if cfg.Command != "" {
		s += " (" + cfg.Command + ")"
	}
	return s + ". DO NOT EDIT."
}
