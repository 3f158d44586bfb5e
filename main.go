// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cybrota/avlset/workload"
)

var version = "v0.1.0"

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	fs         afero.Fs
	configPath string
	config     *Config
	logger     *zap.SugaredLogger
}

func setupApp() *app {
	fs := afero.NewOsFs()
	configPath, err := getConfigPath()
	if err != nil {
		log.Fatalf("Error locating home directory: %v", err)
	}

	config, loadErr := LoadConfig(fs, configPath)
	logger, err := newLogger(config.Log)
	if err != nil {
		log.Printf("Failed to configure logging: %v. Using warn level.", err)
		logger, err = newLogger(defaultConfig.Log)
		if err != nil {
			log.Fatalf("Error creating logger: %v", err)
		}
	}
	if loadErr != nil {
		logger.Warnw("Failed to load configuration, using default settings", "error", loadErr)
	}

	return &app{fs: fs, configPath: configPath, config: config, logger: logger}
}

func (a *app) shell() {
	session := NewSession(a.config.Shell.HistorySize, NewRenderCache())
	if err := runShell(session, a.config.Shell, a.logger); err != nil {
		log.Fatalf("Error running shell: %v", err)
	}
}

func main() {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗     ███████╗███████╗████████╗
██╔══██╗██║   ██║██║     ██╔════╝██╔════╝╚══██╔══╝
███████║██║   ██║██║     ███████╗█████╗     ██║
██╔══██║╚██╗ ██╔╝██║     ╚════██║██╔══╝     ██║
██║  ██║ ╚████╔╝ ███████╗███████║███████╗   ██║
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚══════╝╚══════╝   ╚═╝
A balanced ordered set you can watch rebalance [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var a *app
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive tree shell",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell opens an interactive session: insert and erase keys and watch the tree rebalance`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.shell()
		},
	}

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Walk through the rotation scenarios",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Demo runs the single and double rotation cases and an erase with rebalancing, printing each resulting tree`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := printDemo(os.Stdout); err != nil {
				log.Fatalf("Error running demo: %v", err)
			}
		},
	}

	var cmdRun = &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Replay a workload script",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run applies the operations of a YAML workload script to a fresh tree`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			opts := RunOptions{Timeout: a.config.Bench.TimeoutDuration()}
			opts.Verify, _ = cmd.Flags().GetBool("verify")
			opts.Print, _ = cmd.Flags().GetBool("print")
			opts.Diagram, _ = cmd.Flags().GetBool("diagram")
			if trace, _ := cmd.Flags().GetBool("trace"); trace {
				opts.Trace = os.Stderr
			}

			if err := runScript(ctx, a.fs, args[0], opts, os.Stdout, a.logger); err != nil {
				log.Fatalf("Error running script: %v", err)
			}
		},
	}
	cmdRun.Flags().Bool("verify", false, "check every tree invariant after each operation")
	cmdRun.Flags().Bool("print", false, "print the final elements in ascending order")
	cmdRun.Flags().Bool("diagram", false, "print the final tree shape")
	cmdRun.Flags().Bool("trace", false, "write every operation and its result to stderr")

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Benchmark a generated workload",
		Long: fmt.Sprintf("%s\nBench generates a workload with one of the patterns %v and reports the final height against the AVL bound",
			asciiLogo, workload.NewRegistry().Names()),
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			bench := BenchOptions{
				Size:    a.config.Bench.Size,
				Pattern: a.config.Bench.Pattern,
				Seed:    a.config.Bench.Seed,
			}
			opts := RunOptions{
				Verify:   a.config.Bench.Verify,
				Timeout:  a.config.Bench.TimeoutDuration(),
				Progress: os.Stderr,
			}

			flags := cmd.Flags()
			if flags.Changed("size") {
				bench.Size, _ = flags.GetInt("size")
			}
			if flags.Changed("pattern") {
				bench.Pattern, _ = flags.GetString("pattern")
			}
			if flags.Changed("seed") {
				bench.Seed, _ = flags.GetInt64("seed")
			}
			if flags.Changed("verify") {
				opts.Verify, _ = flags.GetBool("verify")
			}
			if flags.Changed("timeout") {
				opts.Timeout, _ = flags.GetDuration("timeout")
			}

			if err := runBench(ctx, workload.NewRegistry(), bench, opts, os.Stdout, a.logger); err != nil {
				log.Fatalf("Error running benchmark: %v", err)
			}
		},
	}
	cmdBench.Flags().Int("size", defaultConfig.Bench.Size, "number of operations to generate")
	cmdBench.Flags().String("pattern", defaultConfig.Bench.Pattern, "workload pattern")
	cmdBench.Flags().Int64("seed", defaultConfig.Bench.Seed, "seed for the random patterns")
	cmdBench.Flags().Bool("verify", false, "check every tree invariant after each operation")
	cmdBench.Flags().Duration("timeout", workload.DefaultRunTimeout, "abort the run after this long")

	var cmdLoad = &cobra.Command{
		Use:   "load <keys-file>",
		Short: "Insert the integer keys of a file",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Load reads one integer key per line, skipping blank lines and # comments, and prints the ordered set`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runLoad(a.fs, args[0], os.Stdout); err != nil {
				log.Fatalf("Error loading keys: %v", err)
			}
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlset usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avlset CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlset version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings prints the effective configuration and creates ~/.avlset.yaml with defaults when it is missing`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := displaySettings(a.fs, a.configPath, os.Stdout); err != nil {
				log.Fatalf("Error displaying settings: %v", err)
			}
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlset",
		Version: version,
		Long:    asciiLogo,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a = setupApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the shell when no subcommand is provided
			a.shell()
		},
	}
	rootCmd.AddCommand(cmdShell, cmdDemo, cmdRun, cmdBench, cmdLoad, cmdUsage, cmdVersion, cmdSettings)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
