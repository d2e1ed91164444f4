package main

import (
	"github.com/spf13/cobra"
)

func newTreeCmd(a *app) *cobra.Command {
	var (
		depth       int
		left, right float64
	)
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Draw a Pythagoras tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := a.cfg.Tree
			changed := cmd.Flags().Changed
			if changed("depth") {
				t.Depth = depth
			}
			if changed("left") {
				t.LeftAngle = left
			}
			if changed("right") {
				t.RightAngle = right
			}

			scene, err := t.Scene()
			if err != nil {
				return err
			}
			a.logger.Info("drawing Pythagoras tree", "depth", scene.Depth)
			img, err := scene.Render()
			if err != nil {
				return err
			}
			return a.preview.Render(cmd.OutOrStdout(), img)
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 0, "recursion depth")
	cmd.Flags().Float64Var(&left, "left", 0, "angle of the left branches in degrees")
	cmd.Flags().Float64Var(&right, "right", 0, "angle of the right branches in degrees")
	return cmd
}
