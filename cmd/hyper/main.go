// hyper - point agents in the hyperbolic plane.
//
// Each agent is steered with its own directional key quadruple (arrows,
// WASD, IJKL) and every pair of agents is joined by a geodesic segment.
//
// Controls:
//
//	arrows/WASD/IJKL - move agent 0/1/2
//	+/-              - zoom in/out
//	Space            - pause
//	F5               - reset agents to the origin
//	H                - toggle HUD
//	Esc              - quit
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	hyper "github.com/rhpo/hyper.go"
)

var (
	configPath string
	scale      float64
	speed      float64
	agents     int
	width      int
	height     int
	tps        int
)

func main() {
	cmd := &cobra.Command{
		Use:   "hyper",
		Short: "Hyperbolic plane agent playground",
		Long: `hyper - point agents in the hyperbolic plane

Steers a small set of agents through the hyperbolic plane (curvature -1)
and draws the geodesic between every pair. Flags override the config file,
which overrides the built-in defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to TOML config file")
	cmd.Flags().Float64Var(&scale, "scale", hyper.DefaultConfig.Scale, "World units per screen pixel")
	cmd.Flags().Float64Var(&speed, "speed", hyper.DefaultConfig.Speed, "Velocity magnitude per held direction key")
	cmd.Flags().IntVar(&agents, "agents", hyper.DefaultConfig.AgentCount, "Number of agents")
	cmd.Flags().IntVar(&width, "width", hyper.DefaultConfig.Width, "Window width in pixels")
	cmd.Flags().IntVar(&height, "height", hyper.DefaultConfig.Height, "Window height in pixels")
	cmd.Flags().IntVar(&tps, "tps", hyper.DefaultConfig.TPS, "Simulation ticks per second")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is irrelevant on exit

	conf := hyper.DefaultConfig
	if configPath != "" {
		loaded, err := hyper.LoadConfig(configPath)
		if err != nil {
			return err
		}
		conf = *loaded
		logger.Info("loaded config file", zap.String("path", configPath))
	}

	// Flags win over the config file, but only when actually set.
	if cmd.Flags().Changed("scale") {
		conf.Scale = scale
	}
	if cmd.Flags().Changed("speed") {
		conf.Speed = speed
	}
	if cmd.Flags().Changed("agents") {
		conf.AgentCount = agents
	}
	if cmd.Flags().Changed("width") {
		conf.Width = width
	}
	if cmd.Flags().Changed("height") {
		conf.Height = height
	}
	if cmd.Flags().Changed("tps") {
		conf.TPS = tps
	}

	if err := conf.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	logger.Info("starting",
		zap.Float64("scale", conf.Scale),
		zap.Float64("speed", conf.Speed),
		zap.Int("agents", conf.AgentCount),
		zap.Int("width", conf.Width),
		zap.Int("height", conf.Height),
		zap.Int("tps", conf.TPS),
	)

	world := hyper.NewWorld(conf)
	return hyper.NewGame(world).Run()
}
