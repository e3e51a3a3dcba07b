/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/suparena/kindstore/errors"
)

type fileView struct {
	Package    string
	Sources    string
	UsesStrfmt bool
	Kinds      []kindView
}

type kindView struct {
	Name     string
	Plural   string
	IDFormat string
	TypeName string
	GoName   string
	GoPlural string
	Fields   []fieldView
}

type fieldView struct {
	GoName string
	GoType string
	Tag    string
}

var fileTemplate = template.Must(template.New("kinds").Parse(`// Code generated by entityctl generate. DO NOT EDIT.
// Source: {{.Sources}}

package {{.Package}}

import (
{{- if .UsesStrfmt}}
	"github.com/go-openapi/strfmt"
{{end}}
	"github.com/suparena/kindstore"
	"github.com/suparena/kindstore/registry"
)

// Schema holds every kind of package {{.Package}}.
var Schema = registry.NewSchema()
{{range .Kinds}}
// {{.TypeName}} is a record of kind "{{.Name}}".
type {{.TypeName}} struct {
	ID string ` + "`" + `json:"id" yaml:"id"` + "`" + `
{{- range .Fields}}
	{{.GoName}} {{.GoType}} ` + "`" + `{{.Tag}}` + "`" + `
{{- end}}
}

// GetID returns the id of the {{.Name}}.
func (r {{.TypeName}}) GetID() string { return r.ID }

// {{.GoName}}Kind is the kind handle for {{.Name}} records.
var {{.GoName}}Kind = kindstore.MustDefine[{{.TypeName}}](Schema, "{{.Name}}", registry.WithPlural("{{.Plural}}"){{if .IDFormat}}, registry.WithIDFormat("{{.IDFormat}}"){{end}})
{{end}}
// DataStore exposes the typed operations of every kind in Schema.
type DataStore struct {
	store *kindstore.Store
}

// NewDataStore creates a DataStore with an empty collection per kind.
func NewDataStore() *DataStore {
	return &DataStore{store: kindstore.New(Schema)}
}

// Store returns the underlying Store for use with the generic API.
func (d *DataStore) Store() *kindstore.Store { return d.store }
{{range .Kinds}}
// Add{{.GoName}} inserts or overwrites a {{.Name}} and returns it unchanged.
func (d *DataStore) Add{{.GoName}}(arg {{.TypeName}}) {{.TypeName}} {
	return kindstore.Add(d.store, {{.GoName}}Kind, arg)
}

// GetAll{{.GoPlural}} returns a snapshot of every {{.Name}} in insertion order.
func (d *DataStore) GetAll{{.GoPlural}}() []{{.TypeName}} {
	return kindstore.GetAll(d.store, {{.GoName}}Kind)
}

// Get{{.GoName}} returns the {{.Name}} stored under id or a *errors.NotFoundError.
func (d *DataStore) Get{{.GoName}}(id string) ({{.TypeName}}, error) {
	return kindstore.Get(d.store, {{.GoName}}Kind, id)
}

// Clear{{.GoPlural}} removes every {{.Name}}.
func (d *DataStore) Clear{{.GoPlural}}() {
	kindstore.Clear(d.store, {{.GoName}}Kind)
}
{{end}}`))

// Generate renders the Go source for s. pkg overrides the package declared by the schema files.
func Generate(s *Schema, pkg string) ([]byte, error) {
	if pkg == "" {
		pkg = s.Package
	}
	if pkg == "" {
		return nil, errors.NewValidationError("package", "no package name given")
	}
	if len(s.Kinds) == 0 {
		return nil, errors.NewValidationError("kinds", "schema declares no kinds")
	}

	view := fileView{
		Package: pkg,
		Sources: sourceList(s.Sources),
	}
	for _, k := range s.Kinds {
		kv := kindView{
			Name:     k.Name,
			Plural:   k.Plural,
			IDFormat: k.IDFormat,
			TypeName: k.Type,
			GoName:   goName(k.Name),
			GoPlural: goName(k.Plural),
		}
		for _, f := range k.Fields {
			if f.Type == FieldDateTime {
				view.UsesStrfmt = true
			}
			kv.Fields = append(kv.Fields, fieldView{
				GoName: f.GoName,
				GoType: goTypes[f.Type],
				Tag:    fmt.Sprintf(`json:"%s" yaml:"%s"`, f.Name, f.Name),
			})
		}
		view.Kinds = append(view.Kinds, kv)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}

func sourceList(sources []string) string {
	if len(sources) == 0 {
		return "(inline)"
	}
	slashed := make([]string, len(sources))
	for i, s := range sources {
		slashed[i] = filepath.ToSlash(s)
	}
	return strings.Join(slashed, ", ")
}
