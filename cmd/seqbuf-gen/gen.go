package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seqbuf-generator/internal/gen"
)

func newGenCmd(c *cli) *cobra.Command {
	var (
		opts   loadOptions
		jobs   int
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate array types from a manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := c.load(opts)
			if err != nil {
				return err
			}

			c.report(p.diags)

			if p.diags.HasErrors() {
				return fmt.Errorf("manifest %s: %w", opts.manifestPath, p.diags.Error())
			}

			mf := p.manifest

			cfg := gen.DefaultConfig()
			cfg.PackageName = mf.Package
			cfg.OutputDir = p.outDir
			cfg.GenerateComments = mf.GenerateComments()
			cfg.RuntimeImport = mf.Runtime
			cfg.PackagePath = p.pkgPath
			cfg.Parallelism = jobs

			files, err := gen.NewGenerator(cfg).Generate(cmd.Context(), mf)
			if err != nil {
				return fmt.Errorf("generating: %w", err)
			}

			if dryRun {
				out := cmd.OutOrStdout()
				for _, f := range files {
					fmt.Fprintln(out, "===", f.Filename, "===")
					fmt.Fprintln(out, string(f.Content))
				}

				return nil
			}

			if err := gen.WriteFiles(files, p.outDir); err != nil {
				return err
			}

			for _, f := range files {
				c.logger.Debug("wrote file", zap.String("file", f.Filename))
			}

			c.logger.Info("generated array types",
				zap.String("package", mf.Package),
				zap.String("dir", p.outDir),
				zap.Int("files", len(files)))

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.manifestPath, "manifest", "m", "seqbuf.yaml", "Path to the manifest")
	flags.StringVarP(&opts.outDir, "out", "o", ".", "Output directory")
	flags.StringVar(&opts.pkgName, "pkg", "", "Output package name (overrides the manifest)")
	flags.BoolVar(&opts.resolve, "resolve", true, "Type-check element types with go/packages before generating")
	flags.IntVarP(&jobs, "jobs", "j", 0, "Files rendered in parallel (0 means GOMAXPROCS)")
	flags.BoolVar(&dryRun, "dry-run", false, "Print generated files instead of writing them")

	return cmd
}
