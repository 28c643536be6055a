// Command lottie2gif converts Lottie animation files to animated GIFs
// using the ThorVG engine. Inputs are files or directories; directories
// are walked recursively and every .json animation found is converted
// next to itself.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ivlev/lottie2gif/internal/config"
	"github.com/ivlev/lottie2gif/internal/engine/thorvg"
	"github.com/ivlev/lottie2gif/internal/logging"
	"github.com/ivlev/lottie2gif/internal/pipeline"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cmd, exitCode := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(2)
	}
	os.Exit(*exitCode)
}

func newRootCmd() (*cobra.Command, *int) {
	var (
		resolution string
		fps        uint32
		background string
		output     string
		quality    uint32
		workers    int
		cfgFile    string
		dryRun     bool
		logFile    string
		verbose    bool
		noColor    bool
	)
	exitCode := new(int)

	cmd := &cobra.Command{
		Use:   "lottie2gif [flags] <file|dir>...",
		Short: "Convert Lottie animations to animated GIF",
		Long: `lottie2gif - batch Lottie to GIF converter (ThorVG)

Converts one or more Lottie .json files, or every .json animation found
under the given directories, to animated GIFs. Output lands next to each
input unless -o is given (single input only).

Examples:
  lottie2gif anim.json
  lottie2gif anim.json -r 240x240 -f 24 -o out.gif
  lottie2gif -b FF8000 lottie_folder`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			opts := config.Default()
			opts.Inputs = args
			opts.FPS = fps
			opts.Quality = quality
			opts.Workers = workers
			opts.Output = output
			opts.DryRun = dryRun
			opts.Verbose = verbose
			opts.NoColor = noColor
			opts.LogFile = logFile

			if cfgFile != "" {
				fd, err := config.LoadFile(cfgFile)
				if err != nil {
					return err
				}
				if err := fd.Apply(&opts, cmd.Flags().Changed); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("resolution") {
				w, h, err := config.ParseResolution(resolution)
				if err != nil {
					return err
				}
				opts.Width, opts.Height = w, h
			}
			if cmd.Flags().Changed("background") {
				bg, err := config.ParseBackground(background)
				if err != nil {
					return err
				}
				opts.Background = bg
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			log, err := logging.New(logging.Options{
				Color:   !opts.NoColor && logging.ColorEnabled(),
				Verbose: opts.Verbose,
				File:    opts.LogFile,
			})
			if err != nil {
				return err
			}
			defer log.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			runner := &pipeline.Runner{Opts: opts, Log: log, Engine: thorvg.New()}
			stats, err := runner.Run(ctx)
			if err != nil {
				return err
			}
			if stats.Total > 0 && !opts.DryRun {
				log.Info("Done: %d converted, %d failed, %d skipped",
					stats.Converted, stats.Failed, stats.Skipped+stats.Missing)
			}
			*exitCode = stats.ExitCode()
			return nil
		},
	}

	cmd.Flags().StringVarP(&resolution, "resolution", "r", "600x600", "Render box as WxH")
	cmd.Flags().Uint32VarP(&fps, "fps", "f", config.DefaultFPS, "Output frames per second")
	cmd.Flags().StringVarP(&background, "background", "b", "", "Background color as RRGGBB hex")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (single input only)")
	cmd.Flags().Uint32VarP(&quality, "quality", "q", 0, "Encoder quality 0-100 (0 = engine default)")
	cmd.Flags().IntVarP(&workers, "workers", "j", 1, "Parallel conversions (0 = auto-size from host)")
	cmd.Flags().StringVar(&cfgFile, "config", "", "YAML defaults file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List planned conversions without converting")
	cmd.Flags().StringVar(&logFile, "log", "", "Append logs to file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug output")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.SetVersionTemplate("lottie2gif {{.Version}}\n")

	return cmd, exitCode
}
