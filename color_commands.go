package main

import (
	"math/rand"
	"time"

	"github.com/color-game/palette-api/models"
	"github.com/color-game/palette-api/palette"
	"github.com/spf13/cobra"
)

var (
	randomFrom string
	randomSeed int64
)

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Show a color as hex, rgb and hsl",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		color, err := palette.ParseHex(args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), models.NewColorResponse(color))
	},
}

var contrastCmd = &cobra.Command{
	Use:   "contrast <background> <foreground>",
	Short: "Contrast ratio and WCAG level of two colors",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		background, err := palette.ParseHex(args[0])
		if err != nil {
			return err
		}
		foreground, err := palette.ParseHex(args[1])
		if err != nil {
			return err
		}
		ratio := palette.ContrastRatio(background, foreground)
		level, pass := palette.Classify(ratio)
		return printJSON(cmd.OutOrStdout(), models.ContrastResponse{
			Background: background.Hex(),
			Foreground: foreground.Hex(),
			Ratio:      ratio,
			Level:      level,
			Pass:       pass,
		})
	},
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Pick a random base color",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		current, err := palette.ParseHex(randomFrom)
		if err != nil {
			return err
		}
		seed := randomSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		color := palette.RandomBaseColor(rand.New(rand.NewSource(seed)), current)
		return printJSON(cmd.OutOrStdout(), models.RandomColorResponse{
			Color:  models.NewColorResponse(color),
			Params: models.NewParamsResponse(palette.DefaultParams(color)),
		})
	},
}

func init() {
	randomCmd.Flags().StringVar(&randomFrom, "from", palette.DefaultBaseColor.Hex(), "Current base color to wander from")
	randomCmd.Flags().Int64Var(&randomSeed, "seed", 0, "Random seed (0 picks one from the clock)")
	rootCmd.AddCommand(convertCmd, contrastCmd, randomCmd)
}
