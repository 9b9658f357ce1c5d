package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ftahirops/gridmix/model"
	"github.com/ftahirops/gridmix/ui"
)

func newChartCmd(g *globalFlags) *cobra.Command {
	var (
		day   int
		hover string
		out   string
	)
	c := &cobra.Command{
		Use:   "chart",
		Short: "Render one day's donut chart as SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setupCLI(cmd, g)
			if err != nil {
				return err
			}
			mix, err := env.client.EnergyMix(cmd.Context())
			if err != nil {
				return err
			}
			if day < 0 || day >= len(mix.Days) {
				return fmt.Errorf("--day %d out of range: the API returned %d days", day, len(mix.Days))
			}

			if out == "" {
				if err := ui.WriteSVG(cmd.OutOrStdout(), mix.Days[day], hover); err != nil {
					return fmt.Errorf("write svg: %w", err)
				}
			} else {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				if err := writeSVGFile(f, mix.Days[day], hover); err != nil {
					return fmt.Errorf("write %s: %w", out, err)
				}
			}
			env.log.Debug().Str("date", mix.Days[day].Date).Str("out", out).Msg("chart written")
			return nil
		},
	}
	c.Flags().IntVar(&day, "day", 0, "day index: 0 is today")
	c.Flags().StringVar(&hover, "hover", "", "source drawn highlighted")
	c.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")
	return c
}

// writeSVGFile writes the chart and closes wc. A failed close is an error:
// buffered data may not have reached the disk.
func writeSVGFile(wc io.WriteCloser, day model.DailyEnergyData, hover string) error {
	if err := ui.WriteSVG(wc, day, hover); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}
