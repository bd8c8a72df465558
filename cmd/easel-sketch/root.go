package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/export"
	"github.com/gogpu/easel/session"
	"github.com/gogpu/easel/softcanvas"
)

var (
	flagWidth   int
	flagHeight  int
	flagOut     string
	flagPDF     string
	flagSeed    uint32
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "easel-sketch [script]",
	Short: "Render a scripted drawing and export it as PNG or PDF",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			easel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}

		var src io.Reader = cmd.InOrStdin()
		name := "stdin"
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() {
				_ = f.Close()
			}()
			src = f
			name = args[0]
		}

		script, err := parseScript(src)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		canvas := softcanvas.New(flagWidth, flagHeight)
		seeds := &seedCursor{next: flagSeed}
		proj := session.NewProject(name, flagWidth, flagHeight, canvas,
			session.WithRecorderOptions(easel.WithSeedSource(seeds.Next)))

		if err := script.run(proj, seeds); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		snap := canvas.CaptureSnapshot()
		if flagOut != "" {
			if err := export.SavePNG(flagOut, snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", flagOut)
		}
		if flagPDF != "" {
			if err := export.SavePDF(flagPDF, snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", flagPDF)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "history: %d nodes, depth %d, %d branches here\n",
			proj.History().TotalNodes(), proj.History().CurrentDepth(), proj.History().BranchCount())
		return nil
	},
}

// Execute runs the root command. Exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVar(&flagWidth, "width", 640, "canvas width in pixels")
	rootCmd.Flags().IntVar(&flagHeight, "height", 480, "canvas height in pixels")
	rootCmd.Flags().StringVar(&flagOut, "out", "sketch.png", "PNG output path (empty to skip)")
	rootCmd.Flags().StringVar(&flagPDF, "pdf", "", "PDF output path (empty to skip)")
	rootCmd.Flags().Uint32Var(&flagSeed, "seed", 1, "base seed for stroke randomness")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log engine activity to stderr")
}
