package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seqbuf-generator/internal/manifest"
)

func newInitCmd(c *cli) *cobra.Command {
	var (
		path    string
		pkgName string
		types   []string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter manifest",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("manifest %s: %w (use --force to overwrite)", path, os.ErrExist)
				} else if !errors.Is(err, os.ErrNotExist) {
					return err
				}
			}

			mf := starterManifest(pkgName, types)
			if diags := manifest.Validate(mf); diags.HasErrors() {
				return fmt.Errorf("starter manifest: %w", diags.Error())
			}

			if err := manifest.WriteFile(mf, path); err != nil {
				return err
			}

			c.logger.Info("wrote manifest",
				zap.String("path", path),
				zap.Int("instances", len(mf.Instances)))

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&path, "manifest", "m", "seqbuf.yaml", "Path of the manifest to write")
	flags.StringVar(&pkgName, "pkg", "", "Package name to record in the manifest")
	flags.StringSliceVarP(&types, "type", "t", []string{"int", "string"}, "Element types to list")
	flags.BoolVar(&force, "force", false, "Overwrite an existing manifest")

	return cmd
}

// starterManifest lists one instance per element type with every default
// spelled out, so the written file doubles as documentation.
func starterManifest(pkgName string, types []string) *manifest.File {
	mf := &manifest.File{
		Version: manifest.CurrentVersion,
		Package: pkgName,
		Runtime: manifest.DefaultRuntime,
	}

	for _, typ := range types {
		inst := manifest.Instance{Name: manifest.DeriveName(typ), Type: typ}
		if inst.Name != "" {
			inst.File = inst.DefaultFile()
		}

		mf.Instances = append(mf.Instances, inst)
	}

	return mf
}
