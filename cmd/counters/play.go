package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/comalice/reducerx"
	"github.com/comalice/reducerx/internal/extensibility"
	"github.com/comalice/reducerx/internal/production"
)

func newPlayCmd(a *app) *cobra.Command {
	var (
		format string
		trace  bool
	)
	cmd := &cobra.Command{
		Use:   "play SCRIPT",
		Short: "Replay a trigger script headlessly and print the result",
		Long: `play reads one trigger per line ("-" for stdin):

  # comment
  parallel/first +
  multiplicity/how many increment

and prints the gallery afterwards. It exits non-zero if any counter reported a bug.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := readScript(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			cfg, err := a.loadConfig(a.configPath)
			if err != nil {
				return err
			}

			bugs := &extensibility.CollectingReporter{}
			reporter := extensibility.MultiReporter{extensibility.NewLoggingReporter(a.logger), bugs}
			opts := []reducerx.Option{reducerx.WithReporter(reporter)}
			var journal *production.JournalPublisher
			if trace {
				journal = production.NewJournalPublisher(len(script) + 1)
				opts = append(opts, reducerx.WithPublisher(journal))
			}

			g, err := a.mount(cfg, opts...)
			if err != nil {
				return err
			}
			defer g.Unmount()

			runErr := script.Run(cmd.Context(), g)

			out := cmd.OutOrStdout()
			if journal != nil {
				if _, err := journal.WriteTo(out); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			if err := render(out, format, cfg, g); err != nil {
				return err
			}
			if runErr != nil {
				return runErr
			}
			if n := bugs.Count(); n > 0 {
				return fmt.Errorf("%d bug(s) reported", n)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or dot")
	cmd.Flags().BoolVar(&trace, "trace", false, "print every transition before the result")
	return cmd
}

func readScript(stdin io.Reader, path string) (extensibility.Script, error) {
	if path == "-" {
		return extensibility.ParseScript(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	script, err := extensibility.ParseScript(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return script, nil
}
