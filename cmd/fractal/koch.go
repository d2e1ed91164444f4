package main

import (
	"github.com/spf13/cobra"
)

func newKochCmd(a *app) *cobra.Command {
	var (
		depth int
		color string
	)
	cmd := &cobra.Command{
		Use:   "koch",
		Short: "Draw the Koch snowflake",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k := a.cfg.Koch
			if cmd.Flags().Changed("depth") {
				k.Depth = depth
			}
			if cmd.Flags().Changed("color") {
				k.Color = color
			}

			scene, err := k.Scene()
			if err != nil {
				return err
			}
			a.logger.Info("drawing Koch snowflake", "depth", scene.Depth)
			img, err := scene.Render()
			if err != nil {
				return err
			}
			return a.preview.Render(cmd.OutOrStdout(), img)
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 0, "recursion depth")
	cmd.Flags().StringVar(&color, "color", "", "stroke colour as #rrggbb")
	return cmd
}
