package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"seqbuf-generator/internal/common"
)

// Diagnostics collects findings about a manifest, split by severity.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is one finding, anchored to a manifest instance and field.
type Diagnostic struct {
	Severity DiagnosticSeverity
	// Code is a stable snake_case identifier, e.g. "missing_import".
	Code    string
	Message string
	// Instance is the instance name, "#i" for an unnamed entry, or empty for
	// file-level findings.
	Instance string
	// Field is the manifest key at fault ("type", "import", ...), if any.
	Field string
}

// DiagnosticSeverity orders findings: infos never block generation,
// warnings are logged, errors stop it.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError records an error about field of instance.
func (d *Diagnostics) AddError(code, message, instance, field string) {
	d.add(DiagnosticError, code, message, instance, field)
}

// AddWarning records a warning about field of instance.
func (d *Diagnostics) AddWarning(code, message, instance, field string) {
	d.add(DiagnosticWarning, code, message, instance, field)
}

// AddInfo records a note about field of instance.
func (d *Diagnostics) AddInfo(code, message, instance, field string) {
	d.add(DiagnosticInfo, code, message, instance, field)
}

func (d *Diagnostics) add(sev DiagnosticSeverity, code, message, instance, field string) {
	diag := Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Instance: instance,
		Field:    field,
	}

	switch sev {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// HasErrors reports whether generation has to stop.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid is the negation of HasErrors.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Merge appends other's findings, keeping their order.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Summary counts errors and warnings, e.g. "1 error(s), 2 warning(s)".
func (d *Diagnostics) Summary() string {
	return fmt.Sprintf("%d error(s), %d warning(s)", len(d.Errors), len(d.Warnings))
}

// Error joins the error findings into one error, or returns nil.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String renders "[instance] field: [code] message", dropping empty parts.
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Instance != "" {
		b.WriteString("[" + d.Instance + "]")
	}

	if d.Field != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(d.Field)
	}

	if b.Len() > 0 {
		b.WriteString(": ")
	}

	if d.Code != "" {
		b.WriteString("[" + d.Code + "] ")
	}

	b.WriteString(d.Message)

	return b.String()
}
