package analyze

import (
	"errors"
	"fmt"
	"go/build"
	"go/token"
	"go/types"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"seqbuf-generator/internal/common"
	"seqbuf-generator/internal/diagnostic"
	"seqbuf-generator/internal/manifest"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedTypesSizes |
	packages.NeedImports

// Analyzer loads Go packages and resolves element types.
type Analyzer struct {
	dir   string
	sizes types.Sizes
	cache map[string]*PackageInfo
}

// NewAnalyzer creates an Analyzer that runs the go command in dir.
func NewAnalyzer(dir string) *Analyzer {
	sizes := types.SizesFor("gc", build.Default.GOARCH)
	if sizes == nil {
		sizes = types.SizesFor("gc", "amd64")
	}

	return &Analyzer{
		dir:   dir,
		sizes: sizes,
		cache: make(map[string]*PackageInfo),
	}
}

// LoadPackage loads a single package by import path or relative pattern.
func (a *Analyzer) LoadPackage(pattern string) (*PackageInfo, error) {
	if info, ok := a.cache[pattern]; ok {
		return info, nil
	}

	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load package %s: %w", pattern, err)
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %s matched %d packages, want 1", pattern, len(pkgs))
	}

	pkg := pkgs[0]

	// Check for package errors
	var errs []error
	for _, e := range pkg.Errors {
		errs = append(errs, e)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package %s: %w", pattern, errors.Join(errs...))
	}

	info := &PackageInfo{
		Path:  pkg.PkgPath,
		Name:  pkg.Name,
		types: pkg.Types,
	}

	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	a.cache[pattern] = info

	return info, nil
}

// OutputPackage loads the package in outDir. It returns nil without error
// when the directory doesn't exist yet or holds no Go files, which is the
// normal state before the first generation.
func (a *Analyzer) OutputPackage(outDir string) (*PackageInfo, error) {
	abs, err := filepath.Abs(outDir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", outDir, err)
	}

	matches, err := filepath.Glob(filepath.Join(abs, "*.go"))
	if err != nil || len(matches) == 0 {
		if _, statErr := os.Stat(abs); statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
			return nil, fmt.Errorf("inspecting %s: %w", outDir, statErr)
		}

		return nil, nil
	}

	pattern := abs
	if a.dir != "" {
		if rel, relErr := filepath.Rel(a.dir, abs); relErr == nil {
			pattern = "./" + filepath.ToSlash(rel)
		}
	}

	return a.LoadPackage(pattern)
}

// ResolveElem type-checks the instance's element type. Unqualified names are
// looked up in self (may be nil) and then in the universe; the qualifier, if
// any, refers to inst.Import.
func (a *Analyzer) ResolveElem(inst manifest.Instance, self *PackageInfo) (*ElemInfo, error) {
	expr, err := manifest.ParseTypeExpr(inst.Type)
	if err != nil {
		return nil, err
	}

	scopePkg := types.NewPackage("seqbuf-gen/resolve", "resolve")
	scope := scopePkg.Scope()

	if self != nil && self.types != nil {
		selfScope := self.types.Scope()
		for _, name := range selfScope.Names() {
			if tn, ok := selfScope.Lookup(name).(*types.TypeName); ok {
				scope.Insert(tn)
			}
		}
	}

	if qual, ok := common.First(manifest.Qualifiers(expr)); ok && inst.Import != "" {
		imp, err := a.LoadPackage(inst.Import)
		if err != nil {
			return nil, err
		}

		scope.Insert(types.NewPkgName(token.NoPos, scopePkg, qual, imp.types))
	}

	tv, err := types.Eval(token.NewFileSet(), scopePkg, token.NoPos, inst.Type)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", inst.Type, err)
	}

	if !tv.IsType() {
		return nil, fmt.Errorf("%q does not denote a type", inst.Type)
	}

	return &ElemInfo{
		Expr: inst.Type,
		Type: tv.Type,
		Size: a.sizes.Sizeof(tv.Type),
	}, nil
}

// Check resolves every instance of mf against the package in outDir and
// reports unresolved types as errors. Element sizes are reported as infos.
func (a *Analyzer) Check(mf *manifest.File, outDir string) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	self, err := a.OutputPackage(outDir)
	if err != nil {
		// The output package may be broken by stale generated code; resolve
		// against the universe and imports only.
		res.AddWarning("output_package_unloadable", err.Error(), "", "")
		self = nil
	}

	if self != nil && mf.Package != "" && self.Name != mf.Package {
		res.AddError("package_mismatch",
			fmt.Sprintf("manifest package %q differs from existing package %q in %s", mf.Package, self.Name, outDir),
			"", "package")
	}

	for _, inst := range mf.Instances {
		elem, err := a.ResolveElem(inst, self)
		if err != nil {
			res.AddError("unresolved_type", err.Error()+a.hint(inst, self), inst.Name, "type")
			continue
		}

		switch {
		case elem.Size == 0:
			res.AddInfo("zero_size_element",
				fmt.Sprintf("%s has size 0, the byte guard never triggers", elem.Expr), inst.Name, "type")
		case elem.Size > LargeElemSize:
			res.AddWarning("large_element",
				fmt.Sprintf("%s is %d bytes, every growth copies the whole buffer", elem.Expr, elem.Size),
				inst.Name, "type")
		default:
			res.AddInfo("element_size", fmt.Sprintf("%s is %d bytes", elem.Expr, elem.Size), inst.Name, "type")
		}
	}

	return res
}
