package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/calumari/aurac/internal/driver"
)

// deriveVersion names the running build for the generated-file banner: the
// tagged module version when there is one, else the first 12 hex digits of
// the VCS revision, else "devel".
func deriveVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			return bi.Main.Version
		}
		var revision string
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				revision = s.Value
				break
			}
		}
		if len(revision) > 12 {
			revision = revision[:12]
		}
		if revision != "" {
			return revision
		}
	}
	return "devel"
}

func main() {
	var output string
	var dir string
	var jobs int
	flag.StringVar(&output, "o", "", "Output file for a single input (\"-\" writes to stdout)")
	flag.StringVar(&dir, "dir", "target/c", "Directory for generated C files when -o is not set")
	flag.IntVar(&jobs, "j", 0, "Number of units compiled concurrently (0 = one per input)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <program.yaml>...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAurac lowers Aura IR documents to C source.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s -dir=build hello.yaml atoms.yaml\n", os.Args[0])
	}
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Fprintf(os.Stderr, "Error: at least one input is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	// Record a canonical invocation, not os.Args, so banners match across machines.
	cmdParts := []string{"aurac"}
	if output != "" {
		cmdParts = append(cmdParts, "-o="+output)
	}
	if jobs > 0 {
		cmdParts = append(cmdParts, "-j="+strconv.Itoa(jobs))
	}
	cmdParts = append(cmdParts, inputs...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cfg := driver.Config{Inputs: inputs, Output: output, OutDir: dir, Jobs: jobs, Command: strings.Join(cmdParts, " "), Version: deriveVersion()}
	if err := driver.Run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "aurac: %v\n", err)
		stop()
		os.Exit(1)
	}
}
