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
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/cybrota/pointavl/avl"
	"github.com/cybrota/pointavl/bench"
	"github.com/cybrota/pointavl/point"
	"github.com/cybrota/pointavl/pointfile"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func loadConfigOrDefaults() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return config
}

func newRootCmd() *cobra.Command {
	asciiLogo := fmt.Sprintf(`
 ┌─┐┌─┐┬┌┐┌┌┬┐┌─┐┬  ┬┬
 ├─┘│ │││││ │ ├─┤└┐┌┘│
 ┴  └─┘┴┘└┘ ┴ ┴ ┴ └┘ ┴─┘
A balanced tree of points, benchmarked against a stack and a hash set [Version: %s]
`, highlight(version))

	var cmdBench = &cobra.Command{
		Use:   "bench <file>",
		Short: "Time insertion and search of the points in a file",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Bench loads the points into a stack, the AVL tree and a hash set and reports the mean time of every operation"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfigOrDefaults()

			raw, _ := cmd.Flags().GetBool("raw")
			repeat, _ := cmd.Flags().GetInt("repeat")
			if !cmd.Flags().Changed("repeat") {
				repeat = config.Bench.Repeat
			}
			showProgress := config.Bench.ShowProgress
			if cmd.Flags().Changed("progress") {
				showProgress, _ = cmd.Flags().GetBool("progress")
			}

			pairs, err := pointfile.Load(args[0])
			if err != nil {
				return err
			}

			opts := bench.Options{
				Target: config.BenchTarget(),
				Order:  config.PointOrder(),
				Repeat: repeat,
			}
			if showProgress && !raw {
				opts.Progress = os.Stderr
			}

			report, err := bench.Run(cmd.Context(), pairs, opts)
			if err != nil {
				return err
			}
			if raw {
				return report.WriteRaw(cmd.OutOrStdout())
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Render())
			return nil
		},
	}
	cmdBench.Flags().Bool("raw", false, "print only the mean of every stage in nanoseconds, one per line")
	cmdBench.Flags().Int("repeat", 1, "runs per stage (default from bench.repeat)")
	cmdBench.Flags().Bool("progress", true, "show a progress bar (default from bench.show_progress)")

	var cmdPrint = &cobra.Command{
		Use:   "print <file>",
		Short: "Print the tree built from a file in pre-order",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Print inserts the points of a file into the tree and writes them in pre-order, one (x,y) per line"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfigOrDefaults()
			tree, _, err := readPointsAndPopulateTree(args[0], config.PointOrder())
			if err != nil {
				return err
			}

			if shape, _ := cmd.Flags().GetBool("shape"); shape {
				tree.Dump(cmd.OutOrStdout())
				return nil
			}
			_, err = tree.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmdPrint.Flags().Bool("shape", false, "draw the tree sideways with heights and balance factors")

	var cmdFind = &cobra.Command{
		Use:   "find <file> <x> <y>",
		Short: "Tell whether a point is stored in the tree built from a file",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Find looks a point up in the tree. Coordinates match within 0.0001"),
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parsePoint(args[1:])
			if err != nil {
				return err
			}

			config := loadConfigOrDefaults()
			tree, _, err := readPointsAndPopulateTree(args[0], config.PointOrder())
			if err != nil {
				return err
			}
			return reportFind(cmd.OutOrStdout(), tree, target)
		},
	}

	var cmdExplore = &cobra.Command{
		Use:   "explore [file]",
		Short: "Launch the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Explore opens a terminal UI to insert, erase and find points and watch the tree rebalance"),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefaults()

			tree := avl.New(config.PointOrder())
			source := ""
			if len(args) == 1 {
				var err error
				source = args[0]
				if tree, _, err = readPointsAndPopulateTree(source, config.PointOrder()); err != nil {
					log.Fatalf("Error reading points: %v", err)
				}
			}
			if err := runBubbleTeaApp(tree, source); err != nil {
				log.Fatalf("Error running explorer: %v", err)
			}
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current pointavl configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Settings displays the configuration in ~/.pointavl.yaml, creating it with defaults when missing"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print pointavl usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the pointavl CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print pointavl version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "pointavl",
		Version:       version,
		Long:          asciiLogo,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(cmdBench, cmdPrint, cmdFind, cmdExplore, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd
}

func reportFind(w io.Writer, tree *avl.Tree, target point.Point) error {
	it := tree.Find(target)
	if it.Done() {
		fmt.Fprintf(w, "%s not found among %d points\n", target, tree.Len())
		return nil
	}
	fmt.Fprintf(w, "%s found as %s\n", target, *it.Value())
	return nil
}

func main() {
	// an interrupt stops a running benchmark between stages
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		printError("%v", err)
		os.Exit(1)
	}
}
