package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_ErrorCombinesErrorsOnly(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning("unused_import", "import is never used", "Int", "import")
	assert.True(t, d.IsValid())

	d.AddError("missing_type", "type is required", "Int", "type")
	d.AddError("duplicate_name", `duplicate instance name "Int"`, "Int", "name")

	require.True(t, d.HasErrors())
	assert.EqualError(t, d.Error(),
		`[Int] type: [missing_type] type is required; [Int] name: [duplicate_name] duplicate instance name "Int"`)
}

func TestDiagnostics_MergeAndAll(t *testing.T) {
	var a, b Diagnostics

	a.AddInfo("zero_size", "zero-size element", "Empty", "type")
	b.AddError("no_instances", "manifest declares no instances", "", "")
	b.AddWarning("unexported_name", "name is unexported", "int", "name")

	a.Merge(b)

	all := a.All()
	require.Len(t, all, 3)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticWarning, all[1].Severity)
	assert.Equal(t, DiagnosticInfo, all[2].Severity)
	assert.Equal(t, "[no_instances] manifest declares no instances", all[0].String())
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}

func TestDiagnostics_Summary(t *testing.T) {
	var d Diagnostics
	assert.Equal(t, "0 error(s), 0 warning(s)", d.Summary())

	d.AddError("invalid_name", "bad", "x", "name")
	d.AddWarning("unused_import", "unused", "y", "import")
	d.AddWarning("unexported_name", "lower case", "z", "name")
	d.AddInfo("element_size", "8 bytes", "y", "type")

	assert.Equal(t, "1 error(s), 2 warning(s)", d.Summary())
	assert.Len(t, d.Infos, 1)
}

func TestDiagnostic_String(t *testing.T) {
	assert.Equal(t, "[Int] type: [missing_type] type is required",
		Diagnostic{Code: "missing_type", Message: "type is required", Instance: "Int", Field: "type"}.String())
	assert.Equal(t, "package: [invalid_package] bad",
		Diagnostic{Code: "invalid_package", Message: "bad", Field: "package"}.String())
	assert.Equal(t, "[#2]: plain", Diagnostic{Message: "plain", Instance: "#2"}.String())
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}
