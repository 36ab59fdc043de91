// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

// Command binmod extracts the Go module dependency graph from a compiled
// executable.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/binmod/binmod"
)

type config struct {
	// Output selects the report format: text or json.
	Output string `yaml:"output"`
	// LogLevel sets the zerolog level name.
	LogLevel string `yaml:"log_level"`
}

func defaultConfig() config {
	return config{Output: "text", LogLevel: "warn"}
}

var (
	flagOutput string
	flagConfig string
	flagDebug  bool
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	root := &cobra.Command{
		Use:          "binmod <binary>",
		Short:        "Extract Go module dependencies from a compiled binary",
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
	root.Flags().StringVarP(&flagOutput, "output", "o", "", "output format: text or json")
	root.Flags().StringVarP(&flagConfig, "config", "c", "", "path to a YAML config file")
	root.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("analysis failed")
		os.Exit(1)
	}
}

func loadConfig() (config, error) {
	cfg := defaultConfig()
	p := flagConfig
	if p == "" {
		if _, err := os.Stat("binmod.yaml"); err != nil {
			return cfg, nil
		}
		p = "binmod.yaml"
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", p, err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagOutput != "" {
		cfg.Output = flagOutput
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if flagDebug {
		level = zerolog.DebugLevel
	}
	logger = logger.Level(level)

	f, err := binmod.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	logger.Debug().
		Str("os", f.FileInfo.OS).
		Str("arch", f.FileInfo.Arch).
		Int("word_size", f.FileInfo.WordSize).
		Msg("opened binary")

	bin, err := f.Analyze()
	if err != nil {
		return err
	}

	logger.Info().
		Str("binary", bin.Name).
		Int("modules", len(bin.Modules)).
		Int("stdlib_files", len(bin.StdLibFiles)).
		Int("unclassified_files", len(bin.UnclassifiedFiles)).
		Msg("analysis complete")

	switch cfg.Output {
	case "json":
		return printJSON(bin)
	case "text":
		printText(bin)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", cfg.Output)
	}
}

type jsonReport struct {
	Binary    string          `json:"binary"`
	GoVersion string          `json:"goVersion,omitempty"`
	BuildID   string          `json:"buildId,omitempty"`
	Graph     json.RawMessage `json:"depGraph"`
}

func printJSON(bin *binmod.GoBinary) error {
	graph, err := json.Marshal(bin.DepGraph())
	if err != nil {
		return err
	}
	report := jsonReport{Binary: bin.Name, BuildID: bin.BuildID, Graph: graph}
	if bin.GoVersion != nil {
		report.GoVersion = bin.GoVersion.Name
	}
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func printText(bin *binmod.GoBinary) {
	fmt.Println("binary:", bin.Name)
	if bin.GoVersion != nil {
		fmt.Println("go version:", bin.GoVersion.Name)
	}
	if bin.BuildID != "" {
		fmt.Println("build id:", bin.BuildID)
	}

	fmt.Println("modules:")
	for _, m := range sortedModules(bin) {
		marker := ""
		if m.Main {
			marker = " (main)"
		}
		fmt.Printf("  %s%s\n", m.FullName(), marker)
		for _, pkg := range m.Packages() {
			fmt.Printf("    %s\n", pkg)
		}
	}
}

// sortedModules orders the report by module path, and by semantic version
// where a module appears more than once (a replaced module keeps both its
// records).
func sortedModules(bin *binmod.GoBinary) []*binmod.Module {
	mods := make([]*binmod.Module, len(bin.Modules))
	copy(mods, bin.Modules)
	sort.SliceStable(mods, func(i, j int) bool {
		if mods[i].Name != mods[j].Name {
			return mods[i].Name < mods[j].Name
		}
		return semver.Compare(mods[i].Version, mods[j].Version) < 0
	})
	return mods
}
