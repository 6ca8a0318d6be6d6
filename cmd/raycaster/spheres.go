package main

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/taigrr/raycaster/pkg/scene"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	labelStyle  = lipgloss.NewStyle().Bold(true)
)

func newSpheresCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spheres",
		Short: "Inspect, parse and generate spheres",
	}
	cmd.AddCommand(
		newSpheresListCmd(a),
		newSpheresParseCmd(a),
		newSpheresRandomCmd(a),
		newSpheresEquationCmd(a),
	)
	return cmd
}

func newSpheresListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the spheres of the scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, err := a.scene.load()
			if err != nil {
				return a.fail("load scene: %w", err)
			}
			st, err := file.Store()
			if err != nil {
				return a.fail("%w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), sphereTable(st.Snapshot()))
			return nil
		},
	}
}

func newSpheresParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <description>",
		Short: "Parse an 11-number sphere description",
		Long: "Parse a whitespace separated sphere description:\n\n" +
			"  centerX centerY centerZ radius red green blue ambient diffuse specular roughness",
		Example: `  raycaster spheres parse "1 1 0 2 1 0 1 0.2 0.4 0.5 0.05"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.ParseSphere(strings.Join(args, " "))
			if err != nil {
				return a.fail("%w", err)
			}
			if err := s.Validate(); err != nil {
				return a.fail("%w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, labelStyle.Render("center   "), s.Center)
			fmt.Fprintln(out, labelStyle.Render("radius   "), formatFloat(s.Radius))
			fmt.Fprintln(out, labelStyle.Render("color    "), swatch(s.Color), s.Color.Hex())
			fmt.Fprintln(out, labelStyle.Render("finish   "), s.Finish)
			fmt.Fprintln(out, labelStyle.Render("equation "), s.Equation())
			return nil
		},
	}
}

func newSpheresRandomCmd(a *app) *cobra.Command {
	var (
		count int
		seed  uint64
		save  bool
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate random spheres visible from the eye",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, err := a.scene.load()
			if err != nil {
				return a.fail("load scene: %w", err)
			}
			if save && a.scene.path == "" {
				return a.fail("--save needs --scene")
			}
			st, err := file.Store()
			if err != nil {
				return a.fail("%w", err)
			}

			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			rng := rand.New(rand.NewPCG(seed, seed>>1))
			a.logger.Debug("generating spheres", "count", count, "seed", seed)

			for range count {
				s := scene.RandomSphere(rng, st.Snapshot(), file.Settings)
				if _, err := st.Add(s); err != nil {
					return a.fail("%w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}

			if save {
				file.Spheres = st.Snapshot()
				if err := file.SaveFile(a.scene.path); err != nil {
					return a.fail("%w", err)
				}
				a.logger.Info("saved", "path", a.scene.path, "spheres", st.Len())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of spheres")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default: time based)")
	cmd.Flags().BoolVar(&save, "save", false, "append the spheres to the --scene file")
	return cmd
}

func newSpheresEquationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "equation [description]",
		Short: "Print surface equations of the scene's spheres, or of one description",
		RunE: func(cmd *cobra.Command, args []string) error {
			var spheres []scene.Sphere
			if len(args) > 0 {
				s, err := scene.ParseSphere(strings.Join(args, " "))
				if err != nil {
					return a.fail("%w", err)
				}
				spheres = []scene.Sphere{s}
			} else {
				file, err := a.scene.load()
				if err != nil {
					return a.fail("load scene: %w", err)
				}
				spheres = file.Spheres
			}
			for _, s := range spheres {
				fmt.Fprintln(cmd.OutOrStdout(), s.Equation())
			}
			return nil
		},
	}
}

func sphereTable(spheres []scene.Sphere) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ID", "CENTER", "RADIUS", "COLOR", "FINISH (a d s r)", "EQUATION")

	for _, s := range spheres {
		f := s.Finish
		t.Row(
			strconv.FormatUint(uint64(s.ID), 10),
			fmt.Sprintf("%s, %s, %s", formatFloat(s.Center.X), formatFloat(s.Center.Y), formatFloat(s.Center.Z)),
			formatFloat(s.Radius),
			swatch(s.Color)+" "+s.Color.Hex(),
			fmt.Sprintf("%s %s %s %s", formatFloat(f.Ambient), formatFloat(f.Diffuse), formatFloat(f.Specular), formatFloat(f.Roughness)),
			s.Equation(),
		)
	}
	return t.String()
}

func swatch(c scene.Color) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("●")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
