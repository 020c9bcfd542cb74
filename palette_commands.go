package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/color-game/palette-api/models"
	"github.com/color-game/palette-api/palette"
	"github.com/spf13/cobra"
)

var (
	paletteVibrancy float64
	paletteHueShift float64
	exportOutput    string
)

var shadesCmd = &cobra.Command{
	Use:   "shades <base-color>",
	Short: "Print the ten-step shade ramp for a base color",
	Args:  cobra.ExactArgs(1),
	RunE:  runShades,
}

var scoreCmd = &cobra.Command{
	Use:   "score <base-color>",
	Short: "Rank the ramp's shade pairs by contrast ratio",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

var exportCmd = &cobra.Command{
	Use:   "export <base-color>",
	Short: "Write the ramp as {position: hex} JSON",
	Long:  "Write the ramp as {position: hex} JSON. With --output - it goes to stdout, otherwise to palette-RRGGBB.json or the given path.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	for _, cmd := range []*cobra.Command{shadesCmd, scoreCmd, exportCmd} {
		cmd.Flags().Float64Var(&paletteVibrancy, "vibrancy", palette.DefaultVibrancy, "Saturation scale, 0-100 (50 keeps the base saturation)")
		cmd.Flags().Float64Var(&paletteHueShift, "hue-shift", palette.DefaultHueShift, "Hue rotation in degrees, -180-180")
		rootCmd.AddCommand(cmd)
	}
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output path, - for stdout (default palette-RRGGBB.json)")
}

func paramsFromArgs(args []string) (palette.Params, error) {
	// written so NaN fails both bounds
	if !(paletteVibrancy >= 0 && paletteVibrancy <= 100) {
		return palette.Params{}, fmt.Errorf("--vibrancy must be within 0-100, got %v", paletteVibrancy)
	}
	if !(paletteHueShift >= palette.MinHueShift && paletteHueShift <= palette.MaxHueShift) {
		return palette.Params{}, fmt.Errorf("--hue-shift must be within -180-180, got %v", paletteHueShift)
	}
	base, err := palette.ParseHex(args[0])
	if err != nil {
		return palette.Params{}, err
	}
	return palette.Params{BaseColor: base, Vibrancy: paletteVibrancy, HueShift: paletteHueShift}, nil
}

func runShades(cmd *cobra.Command, args []string) error {
	params, err := paramsFromArgs(args)
	if err != nil {
		return err
	}
	ramp := palette.GenerateShades(params)
	return printJSON(cmd.OutOrStdout(), models.PaletteResponse{
		Params: models.NewParamsResponse(params),
		Shades: models.NewShadeResponses(ramp),
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	params, err := paramsFromArgs(args)
	if err != nil {
		return err
	}
	scores := palette.ScoreAccessibility(palette.GenerateShades(params))
	return printJSON(cmd.OutOrStdout(), models.NewAccessibilityResponse(params, scores))
}

func runExport(cmd *cobra.Command, args []string) error {
	params, err := paramsFromArgs(args)
	if err != nil {
		return err
	}
	data, err := palette.ExportJSON(palette.GenerateShades(params))
	if err != nil {
		return err
	}

	if exportOutput == "-" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	path := exportOutput
	if path == "" {
		path = palette.ExportFilename(params.BaseColor)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
