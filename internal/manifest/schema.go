package manifest

import (
	"go/token"
	"strings"
	"unicode"
)

// DefaultRuntime is the import path of the package generated code builds on.
const DefaultRuntime = "seqbuf-generator/seqbuf"

// CurrentVersion is the only manifest schema version understood.
const CurrentVersion = "1"

// File represents the root of a YAML manifest.
type File struct {
	// Version of the manifest schema.
	Version string `yaml:"version,omitempty"`

	// Package is the name of the generated package. Empty means "discover it
	// from the output directory".
	Package string `yaml:"package,omitempty"`

	// Comments toggles doc comments in generated code. Nil means true.
	Comments *bool `yaml:"comments,omitempty"`

	// Runtime is the import path of the seqbuf runtime package.
	Runtime string `yaml:"runtime,omitempty"`

	// Instances lists the buffers to generate.
	Instances []Instance `yaml:"instances"`
}

// Instance is one (name, element type) pair.
type Instance struct {
	// Name is the identifier prefix of the generated type.
	Name string `yaml:"name"`

	// Type is the element type expression, e.g. "int", "[]byte", "geom.Point".
	Type string `yaml:"type"`

	// Import is the import path providing the qualifier used in Type.
	Import string `yaml:"import,omitempty"`

	// File is the output file name.
	File string `yaml:"file,omitempty"`
}

// GenerateComments reports whether doc comments should be generated.
func (f *File) GenerateComments() bool {
	return f.Comments == nil || *f.Comments
}

// TypeName returns the name of the generated type.
func (i Instance) TypeName() string {
	return i.Name + "Array"
}

// Constructor returns the name of the generated constructor. Unexported
// types get an unexported constructor.
func (i Instance) Constructor() string {
	name := i.TypeName()
	if token.IsExported(name) {
		return "New" + name
	}

	return "new" + capitalize(name)
}

// DefaultFile returns the file name used when File is empty.
func (i Instance) DefaultFile() string {
	return SnakeCase(i.Name) + "_array.go"
}

// SnakeCase converts a Go identifier to snake case. Acronyms stay together:
// "HTTPHeader" becomes "http_header".
func SnakeCase(s string) string {
	runes := []rune(s)

	var sb strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if unicode.IsLower(prev) || (unicode.IsUpper(prev) && nextLower) {
				sb.WriteByte('_')
			}
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

// DeriveName builds an instance name from a type expression: the last
// identifier, capitalized. "geom.Point" gives "Point", "uint8" gives "Uint8".
// It returns "" when the expression has no usable identifier ("[]byte").
func DeriveName(typ string) string {
	typ = strings.TrimSpace(typ)
	if idx := strings.LastIndexByte(typ, '.'); idx >= 0 {
		typ = typ[idx+1:]
	}

	for _, r := range typ {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return ""
		}
	}

	return capitalize(typ)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])

	return string(r)
}
