package manifest

import (
	"fmt"
	"go/token"
	"strings"

	"seqbuf-generator/internal/diagnostic"
)

// Validate checks a manifest structurally. It doesn't try to resolve element
// types; that needs the package loader (see internal/analyze).
func Validate(mf *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("manifest_is_nil", "manifest is nil", "", "")
		return res
	}

	if mf.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported manifest version %q (want %q)", mf.Version, CurrentVersion), "", "version")
	}

	if mf.Package != "" && !token.IsIdentifier(mf.Package) {
		res.AddError("invalid_package", fmt.Sprintf("package name %q is not a Go identifier", mf.Package), "", "package")
	}

	if mf.Runtime == "" {
		res.AddError("missing_runtime", "runtime import path is empty", "", "runtime")
	}

	if len(mf.Instances) == 0 {
		res.AddError("no_instances", "manifest declares no instances", "", "instances")
		return res
	}

	seenNames := map[string]struct{}{}
	seenFiles := map[string]struct{}{}

	for i := range mf.Instances {
		inst := &mf.Instances[i]

		label := inst.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}

		validateName(res, label, inst, seenNames)
		validateType(res, label, inst)
		validateFile(res, label, inst, seenFiles)
	}

	return res
}

func validateName(res *diagnostic.Diagnostics, label string, inst *Instance, seen map[string]struct{}) {
	switch {
	case inst.Name == "":
		res.AddError("missing_name",
			fmt.Sprintf("cannot derive a name from type %q, set name explicitly", inst.Type), label, "name")

		return
	case !token.IsIdentifier(inst.Name):
		res.AddError("invalid_name", fmt.Sprintf("name %q is not a Go identifier", inst.Name), label, "name")

		return
	case !token.IsExported(inst.Name):
		res.AddWarning("unexported_name",
			fmt.Sprintf("name %q is unexported, %s will not be usable outside its package", inst.Name, inst.TypeName()),
			label, "name")
	}

	if _, ok := seen[inst.Name]; ok {
		res.AddError("duplicate_name", fmt.Sprintf("duplicate instance name %q", inst.Name), label, "name")
		return
	}

	seen[inst.Name] = struct{}{}
}

func validateType(res *diagnostic.Diagnostics, label string, inst *Instance) {
	if strings.TrimSpace(inst.Type) == "" {
		res.AddError("missing_type", "element type is required", label, "type")
		return
	}

	expr, err := ParseTypeExpr(inst.Type)
	if err != nil {
		res.AddError("invalid_type", err.Error(), label, "type")
		return
	}

	quals := Qualifiers(expr)

	switch {
	case len(quals) > 1:
		res.AddError("multiple_qualifiers",
			fmt.Sprintf("type %q references packages %s, only one import per instance is supported",
				inst.Type, strings.Join(quals, ", ")),
			label, "type")
	case len(quals) == 1 && inst.Import == "":
		res.AddError("missing_import",
			fmt.Sprintf("type %q uses qualifier %q but no import is set", inst.Type, quals[0]), label, "import")
	case len(quals) == 0 && inst.Import != "":
		res.AddWarning("unused_import",
			fmt.Sprintf("import %q is not referenced by type %q and will be dropped", inst.Import, inst.Type),
			label, "import")
	}
}

func validateFile(res *diagnostic.Diagnostics, label string, inst *Instance, seen map[string]struct{}) {
	if inst.File == "" {
		// Only possible when the name is missing; already reported.
		return
	}

	switch {
	case strings.ContainsAny(inst.File, `/\`):
		res.AddError("invalid_file", fmt.Sprintf("file %q must be a bare file name", inst.File), label, "file")
		return
	case !strings.HasSuffix(inst.File, ".go"):
		res.AddError("invalid_file", fmt.Sprintf("file %q must end in .go", inst.File), label, "file")
		return
	case strings.HasSuffix(inst.File, "_test.go"):
		res.AddError("invalid_file", fmt.Sprintf("file %q would only compile in tests", inst.File), label, "file")
		return
	}

	if _, ok := seen[inst.File]; ok {
		res.AddError("duplicate_file", fmt.Sprintf("duplicate output file %q", inst.File), label, "file")
		return
	}

	seen[inst.File] = struct{}{}
}
