package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/juliafatou/pkg/config"
	"github.com/willbeason/juliafatou/pkg/gradient"
	"github.com/willbeason/juliafatou/pkg/postprocess"
	"github.com/willbeason/juliafatou/pkg/render"
)

func mainCmd() *cobra.Command {
	flags := config.Defaults()

	cmd := &cobra.Command{
		Use:   "juliafatou",
		Short: "render julia sets blazingly fast",
		Long: "Renders two slightly diverged Julia sets of z^power + c, blends them\n" +
			"and colors the result with a three-color gradient.",
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.Dimensions, "dimensions", "d", flags.Dimensions, "image dimensions (WIDTHxHEIGHT)")
	f.StringVarP(&flags.Output, "output-file", "o", flags.Output,
		"output file, one of "+strings.Join(postprocess.Extensions(), " "))
	f.StringVar(&flags.ColorConfig, "config", flags.ColorConfig,
		"custom color gradient file, used with --color-style=config (default "+gradient.DefaultConfigPath+")")
	f.StringVarP(&flags.Offset, "offset", "s", flags.Offset, "offset (X:Y)")
	f.Float64VarP(&flags.Scale, "scale", "x", flags.Scale, "scale factor")
	f.Float64Var(&flags.Blur, "blur", flags.Blur, "blur (sigma), 0 or less disables blurring")
	f.Uint8VarP(&flags.Power, "power", "w", flags.Power, "the 'x' in the equation z^x + c")
	f.Float64VarP(&flags.Factor, "factor", "f", flags.Factor,
		"multiplication factor of the secondary julia set (intensity), must not be -1")
	f.VarP(&flags.Style, "color-style", "c",
		"color gradient, one of "+strings.Join(gradient.Styles(), ", "))
	f.Float64VarP(&flags.Diverge, "diverge", "g", flags.Diverge, "difference between the two rendered julia sets")
	f.StringVarP(&flags.Complex, "complex", "p", flags.Complex, "the 'c' in the equation z^x + c (RE,IM)")
	f.Float64VarP(&flags.Intensity, "intensity", "i", flags.Intensity, "overall intensity multiplication factor")
	f.BoolVar(&flags.Inverse, "inverse", flags.Inverse, "invert color gradient")
	f.IntVar(&flags.Threads, "threads", flags.Threads, "number of threads, 0 for one per CPU")
	f.BoolVar(&flags.TakeTime, "take-time", flags.TakeTime, "measure render time")

	return cmd
}

func runCmd(cmd *cobra.Command, flags config.Flags) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	diag := cmd.ErrOrStderr()

	cfg, err := config.New(flags)
	if err != nil {
		return err
	}

	colors, err := gradient.Colors(cfg.Style, cfg.ColorConfig, diag)
	if err != nil {
		return err
	}

	grad, err := gradient.New(colors[:]...)
	if err != nil {
		return fmt.Errorf("building color gradient: %w", err)
	}

	threads := render.Threads(cfg.Threads)
	fmt.Fprintf(diag, "Using %d threads.\n", threads)

	pixels := make([]byte, cfg.Bounds.Len())

	begin := time.Now()

	frame := render.Frame{
		View:      cfg.View(),
		Blend:     cfg.Blend,
		Gradient:  grad,
		Intensity: cfg.Intensity,
	}

	err = render.NewScheduler(threads).Run(pixels, cfg.Bounds, frame)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	err = postprocess.BlurImage(cfg.Output, pixels, cfg.Bounds, cfg.Blur)
	if err != nil {
		return fmt.Errorf("error while blurring or writing the image: %w", err)
	}

	if cfg.TakeTime {
		fmt.Fprintf(diag, "time elapsed: %v\n", time.Since(begin))
	}

	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
