package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/comalice/reducerx"
	"github.com/comalice/reducerx/internal/primitives"
	"github.com/comalice/reducerx/internal/production"
)

var formats = []string{"text", "json", "dot"}

func newRenderCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the freshly mounted gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(a.configPath)
			if err != nil {
				return err
			}
			g, err := a.mount(cfg)
			if err != nil {
				return err
			}
			defer g.Unmount()
			return render(cmd.OutOrStdout(), format, cfg, g)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or dot")
	return cmd
}

func render(w io.Writer, format string, cfg primitives.GalleryConfig, g *reducerx.Gallery) error {
	v := &production.DefaultVisualizer{}
	sections := g.Sections()
	switch format {
	case "text":
		_, err := io.WriteString(w, v.ExportText(sections))
		return err
	case "json":
		data, err := v.ExportJSON(primitives.Fingerprint(&cfg), sections)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "dot":
		_, err := io.WriteString(w, v.ExportDOT(sections))
		return err
	default:
		return fmt.Errorf("unknown format %q (want one of %v)", format, formats)
	}
}
