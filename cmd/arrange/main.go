package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ensigniasec/arrange/internal/codec"
	"github.com/ensigniasec/arrange/internal/replay"
	"github.com/ensigniasec/arrange/internal/scene"
	"github.com/ensigniasec/arrange/internal/tui"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	verbose  bool
	format   string
	parallel int

	rootCmd = &cobra.Command{
		Use:   "arrange",
		Short: "Drag positioning and list reordering for layout scenes, in the terminal.",
		Long: `This tool loads a scene of freely positioned overlays and ordered sequences, ` +
			`and lets you arrange it by dragging with the mouse, by replaying recorded UI event scripts, ` +
			`or by keyboard. The arranged scene is written to stdout; files are never modified.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout, the scene is printed there.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().
		StringVar(&format, "format", "", "Output format for scenes: json or yaml (check prints a text summary when unset)")
	replayCmd.Flags().IntVar(&parallel, "parallel", 0, "Maximum number of scripts replayed at once (default 4)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(tuiCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// outputFormat resolves --format, falling back to def when unset.
func outputFormat(def codec.Format) codec.Format {
	if format == "" {
		return def
	}
	f, err := codec.ParseFormat(format)
	if err != nil {
		logrus.Fatal(err)
	}
	return f
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var checkCmd = &cobra.Command{
	Use:   "check SCENE",
	Short: "Load and validate a scene file",
	Long: "Load a scene file, fill in missing ids, validate it and clamp every overlay into the canvas. " +
		"Prints a summary, or the normalized scene when --format is given.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := scene.Load(args[0])
		if err != nil {
			logrus.Fatal(err)
		}
		if format == "" {
			printSummary(os.Stdout, s)
			return
		}
		if err := codec.Encode(os.Stdout, outputFormat(codec.JSON), s); err != nil {
			logrus.Fatal(err)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var replayCmd = &cobra.Command{
	Use:   "replay SCENE SCRIPT|DIR...",
	Short: "Replay recorded UI event scripts against a scene",
	Long: "Replay one or more event scripts against independent copies of a scene. " +
		"Directories are searched for .json, .yaml and .yml scripts. Prints one result per script.",
	Args: cobra.MinimumNArgs(2), //nolint:mnd // A scene and at least one script by CLI contract
	Run: func(cmd *cobra.Command, args []string) {
		f := outputFormat(codec.JSON)
		s, err := scene.Load(args[0])
		if err != nil {
			logrus.Fatal(err)
		}
		paths, err := replay.Discover(cmd.Context(), args[1:])
		if err != nil {
			logrus.Fatal(err)
		}
		if len(paths) == 0 {
			logrus.Fatal("no scripts found")
		}
		results, err := replay.RunAll(cmd.Context(), s, paths, parallel)
		if err != nil {
			logrus.Fatal(err)
		}
		if err := codec.Encode(os.Stdout, f, results); err != nil {
			logrus.Fatal(err)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var tuiCmd = &cobra.Command{
	Use:   "tui SCENE",
	Short: "Arrange a scene interactively",
	Long: "Open an interactive console with mouse support: drag overlays on the canvas, " +
		"drag rows or use K/J to reorder sequences. The arranged scene is printed on quit.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f := outputFormat(codec.JSON)
		s, err := scene.Load(args[0])
		if err != nil {
			logrus.Fatal(err)
		}
		final, err := tui.Run(cmd.Context(), s)
		if err != nil {
			logrus.Fatalf("TUI mode failed: %v", err)
		}
		if err := codec.Encode(os.Stdout, f, final); err != nil {
			logrus.Fatal(err)
		}
	},
}

func main() {
	Execute()
}
