package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/reducerx/internal/primitives"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [CONFIG]",
		Short: "Check a gallery config, including step expressions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath
			if len(args) == 1 {
				path = args[0]
			}
			cfg, err := a.loadConfig(path)
			if err != nil {
				return err
			}
			// Mounting compiles step expressions, which Validate alone does not.
			g, err := a.mount(cfg)
			if err != nil {
				return err
			}
			g.Unmount()

			name := path
			if name == "" {
				name = "built-in gallery"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (id=%s, examples=%d, fingerprint=%s)\n",
				name, cfg.ID, len(cfg.Examples), primitives.Fingerprint(&cfg))
			return err
		},
	}
}
