package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(c *cli) *cobra.Command {
	var opts loadOptions

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a manifest and resolve its element types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := c.load(opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, d := range p.diags.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			fmt.Fprintln(out, p.diags.Summary())

			if p.diags.HasErrors() {
				return fmt.Errorf("manifest %s: %w", opts.manifestPath, p.diags.Error())
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.manifestPath, "manifest", "m", "seqbuf.yaml", "Path to the manifest")
	flags.StringVarP(&opts.outDir, "out", "o", ".", "Output directory the manifest generates into")
	flags.StringVar(&opts.pkgName, "pkg", "", "Output package name (overrides the manifest)")
	flags.BoolVar(&opts.resolve, "resolve", true, "Type-check element types with go/packages")

	return cmd
}
