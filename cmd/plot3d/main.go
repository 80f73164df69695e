package main

import (
	"log"

	"github.com/smasonuk/plot3d"
	"github.com/smasonuk/plot3d/window"
	"github.com/spf13/cobra"
)

var (
	configFile string
	outFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "plot3d",
		Short:         "plot a 3D trajectory in a window",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runWindow,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render the plot to a PNG file without opening a window",
		Args:  cobra.NoArgs,
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringVarP(&outFile, "out", "o", "plot.png", "output PNG path")

	rootCmd.AddCommand(snapshotCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func loadConfig() (*plot3d.Config, error) {
	if configFile == "" {
		return plot3d.DefaultConfig(), nil
	}
	log.Printf("Loading config %s...", configFile)
	return plot3d.Load(configFile)
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	display := window.NewDisplay(cfg.Width, cfg.Height)
	display.Elevation = cfg.Camera.Elevation
	display.Azimuth = cfg.Camera.Azimuth

	p := plot3d.NewPlotter(display)
	p.SetTitle(cfg.Title)
	return p.Render(cfg.Trajectory, cfg.Bounds, cfg.Color)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	scene, err := cfg.Scene()
	if err != nil {
		return err
	}
	if err := plot3d.SavePNG(outFile, scene, cfg.NewCamera(), cfg.Width, cfg.Height); err != nil {
		return err
	}
	log.Printf("Wrote %s", outFile)
	return nil
}
