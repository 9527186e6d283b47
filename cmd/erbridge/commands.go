package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/wheelibin/erbridge/internal/bridge"
	"github.com/wheelibin/erbridge/internal/easyremote"
	"github.com/wheelibin/erbridge/internal/lights"
	"github.com/wheelibin/erbridge/internal/models"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HomeKit bridge",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.logger.Info("erbridge starting")

			ctx, stop := signalContext()
			defer stop()

			var consumer bridge.EventConsumer
			if a.cfg.Client.Events {
				consumer = easyremote.NewEasyRemoteEventConsumer(*a.cfg, a.logger)
			}

			b := bridge.NewBridge(*a.cfg, a.logger, a.lightService(), consumer)
			if err := b.Initialise(ctx); err != nil {
				return err
			}

			err := b.Run(ctx)
			a.logger.Info("erbridge is closing")
			return err
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the objects of the lighting software",
		RunE: func(cmd *cobra.Command, _ []string) error {
			found, err := a.lightService().Discover(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "OBJECT\tNAME\tMODE")
			for _, l := range found {
				fmt.Fprintf(w, "%s\t%s\t%s\n", l.Key(), l.Name(), l.ColorMode())
			}
			return w.Flush()
		},
	}
}

func newOnCmd(a *app) *cobra.Command {
	var (
		brightness int
		rgb        string
		hs         string
	)

	cmd := &cobra.Command{
		Use:   "on <page/id>",
		Short: "Turn a light on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := lights.TurnOnOptions{}
			if cmd.Flags().Changed("brightness") {
				opts.Brightness = lo.ToPtr(brightness)
			}
			if rgb != "" {
				c, err := parseRGB(rgb)
				if err != nil {
					return err
				}
				opts.RGB = &c
			}
			if hs != "" {
				c, err := parseHS(hs)
				if err != nil {
					return err
				}
				opts.HS = &c
			}

			return a.withLight(cmd.Context(), args[0], func(ctx context.Context, l lights.Light) error {
				return l.TurnOn(ctx, opts)
			})
		},
	}

	cmd.Flags().IntVarP(&brightness, "brightness", "b", 255, "brightness 0-255")
	cmd.Flags().StringVar(&rgb, "rgb", "", "colour as r,g,b (0-255 each)")
	cmd.Flags().StringVar(&hs, "hs", "", "colour as hue,saturation")

	return cmd
}

func newOffCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "off <page/id>",
		Short: "Turn a light off",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withLight(cmd.Context(), args[0], func(ctx context.Context, l lights.Light) error {
				return l.TurnOff(ctx)
			})
		},
	}
}

func (a *app) withLight(ctx context.Context, keyArg string, fn func(context.Context, lights.Light) error) error {
	key, err := models.ParseObjectKey(keyArg)
	if err != nil {
		return err
	}

	found, err := a.lightService().Discover(ctx)
	if err != nil {
		return err
	}

	light, err := lights.FindLight(found, key)
	if err != nil {
		return err
	}

	if err := fn(ctx, light); err != nil {
		return err
	}
	a.logger.Info("done", "light", light.Name(), "on", lo.FromPtr(light.IsOn()), "brightness", lo.FromPtr(light.Brightness()))
	return nil
}

func parseNumbers(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma separated values, got %q", n, s)
	}
	values := make([]float64, 0, n)
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", p, err)
		}
		values = append(values, f)
	}
	return values, nil
}

func parseRGB(s string) (models.RGB, error) {
	v, err := parseNumbers(s, 3)
	if err != nil {
		return models.RGB{}, err
	}
	return models.RGB{R: int(v[0]), G: int(v[1]), B: int(v[2])}, nil
}

func parseHS(s string) (models.HS, error) {
	v, err := parseNumbers(s, 2)
	if err != nil {
		return models.HS{}, err
	}
	return models.HS{Hue: v[0], Saturation: v[1]}, nil
}
