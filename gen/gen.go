// Package gen renders Go source files that declare identifier kinds backed by
// prefid.ID, one file per kind. It is the code generation counterpart of
// declaring kinds by hand and produces byte-identical output for identical
// input.
package gen

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"go/token"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultModulePath is the import path the generated files resolve ID, New,
// FromUUID, Parse and MustParse from.
const DefaultModulePath = "github.com/coro-sh/prefid"

const (
	importAlias = "prefid"
	fileSuffix  = ".gen.go"
)

//go:embed id.go.tmpl
var idTemplateText string

var idTemplate = template.Must(template.New("id").Parse(idTemplateText))

// Kind describes one identifier kind.
type Kind struct {
	// TypeName defaults to the title cased prefix followed by "ID".
	TypeName string `yaml:"typeName"`
	Prefix   string `yaml:"prefix"`
}

type templateData struct {
	Package    string
	ModulePath string
	Alias      string
	TypeName   string
	MarkerName string
	Prefix     string
}

// Render returns the formatted source of a file declaring kind in package
// pkg. An empty modulePath means DefaultModulePath. The prefix is emitted as
// is, without validation.
func Render(pkg string, modulePath string, kind Kind) ([]byte, error) {
	if modulePath == "" {
		modulePath = DefaultModulePath
	}

	var buf bytes.Buffer
	err := idTemplate.Execute(&buf, templateData{
		Package:    pkg,
		ModulePath: modulePath,
		Alias:      importAlias,
		TypeName:   kind.TypeName,
		MarkerName: MarkerName(kind.TypeName),
		Prefix:     kind.Prefix,
	})
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s source: %w", kind.TypeName, err)
	}

	return src, nil
}

// TypeNameFromPrefix derives a type name from a prefix by title casing each
// alphanumeric word, e.g. "order_item" becomes "OrderItemID".
func TypeNameFromPrefix(prefix string) (string, error) {
	words := strings.FieldsFunc(prefix, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return "", fmt.Errorf("cannot derive a type name from prefix %q", prefix)
	}

	caser := cases.Title(language.English, cases.NoLower)
	var sb strings.Builder
	for _, word := range words {
		sb.WriteString(caser.String(word))
	}
	sb.WriteString("ID")

	name := sb.String()
	if !token.IsIdentifier(name) {
		return "", fmt.Errorf("cannot derive a type name from prefix %q", prefix)
	}

	return name, nil
}

// MarkerName returns the name of the unexported marker type that carries the
// prefix of typeName.
func MarkerName(typeName string) string {
	r, size := utf8.DecodeRuneInString(typeName)
	return string(unicode.ToLower(r)) + typeName[size:] + "Prefix"
}

// FileName returns the snake cased file name for typeName, e.g.
// "OrderItemID" becomes "order_item_id.gen.go".
func FileName(typeName string) string {
	runes := []rune(typeName)

	var sb strings.Builder
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			sb.WriteRune(r)
			continue
		}
		if i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				sb.WriteByte('_')
			}
		}
		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String() + fileSuffix
}
