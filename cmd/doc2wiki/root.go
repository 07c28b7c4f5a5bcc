package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/doc2wiki/internal/config"
	"github.com/dgallion1/doc2wiki/internal/pipeline"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc2wiki [source] [wiki]",
		Short: "Convert a MindForger documentation repository to a GitHub wiki repository.",
		Long: `doc2wiki rewrites the Markdown pages in <source>/memory into wiki pages
under <wiki>: page links lose their .md extension, heading metadata comments
are stripped and the first line of every page is dropped. Images are copied
unchanged. Both directories must already exist.

Roots default to DOC2WIKI_SOURCE and DOC2WIKI_WIKI, then to the checkouts
under ~/p/mindforger/git.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runConvert,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.AddCommand(newServeCmd())
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if len(args) > 0 {
		cfg.Source = args[0]
	}
	if len(args) > 1 {
		cfg.Wiki = args[1]
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "invalid configuration:", err)
		return err
	}
	log := newLogger(cfg, os.Stderr)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Converting mindforger-documentation to mindforger.wiki:")
	fmt.Fprintf(out, "  from: %s\n", cfg.Source)
	fmt.Fprintf(out, "  to  : %s\n", cfg.Wiki)

	orch := pipeline.NewOrchestrator(out, log)
	if _, err := orch.Run(cfg.Source, cfg.Wiki); err != nil {
		log.Error("conversion failed", "error", err)
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}
