package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/terrain3d/internal/terrain"
)

var (
	cfgPath string
	outPath string
	frames  int
	force   bool
)

var rootCmd = &cobra.Command{
	Use:   "terrain [config]",
	Short: "Render a heightfield terrain with a software 3D pipeline",
	Long: `terrain generates (or loads) a heightfield, runs it through a 4x4
modelview/projection pipeline and writes the outputs named in the config:
a PNG frame, an orbiting GIF and a raw height dump.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		terrain.SetDebug(os.Getenv("DEBUG") != "")
		terrain.HUD = os.Getenv("HUD") != ""
		terrain.Parallel = os.Getenv("SERIAL") == ""
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			cfgPath = args[0]
		}
		cfg, err := terrain.LoadConfig(cfgPath)
		if err != nil {
			return err
		}
		return terrain.Run(cmd.Context(), cfg)
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a single frame to PNG",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := terrain.LoadConfig(cfgPath)
		if err != nil {
			return err
		}
		if outPath != "" {
			cfg.Output.PNG = outPath
		}
		if cfg.Output.PNG == "" {
			cfg.Output.PNG = terrain.PNGOut
		}
		cfg.Output.GIF, cfg.Output.Raw = "", ""
		return terrain.Run(cmd.Context(), cfg)
	},
}

var gifCmd = &cobra.Command{
	Use:   "gif",
	Short: "Render a GIF orbiting the terrain center",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := terrain.LoadConfig(cfgPath)
		if err != nil {
			return err
		}
		if outPath != "" {
			cfg.Output.GIF = outPath
		}
		if cfg.Output.GIF == "" {
			cfg.Output.GIF = "terrain.gif"
		}
		if frames > 0 {
			cfg.Output.GIFFrames = frames
		}
		cfg.Output.PNG, cfg.Output.Raw = "", ""
		return terrain.Run(cmd.Context(), cfg)
	},
}

var rawCmd = &cobra.Command{
	Use:   "raw",
	Short: "Dump the heightfield as little-endian float32",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := terrain.LoadConfig(cfgPath)
		if err != nil {
			return err
		}
		if outPath != "" {
			cfg.Output.Raw = outPath
		}
		if cfg.Output.Raw == "" {
			cfg.Output.Raw = "terrain.raw"
		}
		cfg.Output.PNG, cfg.Output.GIF = "", ""
		return terrain.Run(cmd.Context(), cfg)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print heightfield statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := terrain.LoadConfig(cfgPath)
		if err != nil {
			return err
		}
		hf, err := terrain.LoadHeightfield(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		st := hf.Stats()
		fmt.Fprintf(cmd.OutOrStdout(), "grid:   %dx%d (%d points)\nmin:    %g\nmax:    %g\nmean:   %g\nstddev: %g\n",
			hf.W, hf.H, st.Points, st.Min, st.Max, st.Mean, st.StdDev)
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration as YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "terrain.yaml"
		if len(args) > 0 {
			path = args[0]
		}
		if err := terrain.WriteDefaultConfig(path, force); err != nil {
			return fmt.Errorf("init: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open an interactive window",
	Long: `Open a window showing the terrain. Arrow keys turn the camera, W/S walk,
F1 toggles fullscreen and Escape quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := terrain.LoadConfig(cfgPath)
		if err != nil {
			return err
		}
		return runViewer(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (JSON or YAML); defaults and TERRAIN_* env apply")
	for _, c := range []*cobra.Command{renderCmd, gifCmd, rawCmd} {
		c.Flags().StringVarP(&outPath, "out", "o", "", "output path (overrides the config)")
	}
	gifCmd.Flags().IntVar(&frames, "frames", 0, "number of GIF frames (overrides the config)")
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	rootCmd.AddCommand(renderCmd, gifCmd, rawCmd, statsCmd, initCmd, viewCmd)
}

func main() {
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
		stop()
		if profile {
			pprof.StopCPUProfile()
		}
		os.Exit(1)
	}
}
