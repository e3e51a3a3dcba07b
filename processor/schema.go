/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/go-openapi/strfmt"
	"gopkg.in/yaml.v3"

	"github.com/suparena/kindstore/errors"
)

// FieldType is the type of a declared record field.
type FieldType string

const (
	FieldString   FieldType = "string"
	FieldInt      FieldType = "int"
	FieldInt64    FieldType = "int64"
	FieldFloat64  FieldType = "float64"
	FieldBool     FieldType = "bool"
	FieldDateTime FieldType = "date-time"
)

var goTypes = map[FieldType]string{
	FieldString:   "string",
	FieldInt:      "int",
	FieldInt64:    "int64",
	FieldFloat64:  "float64",
	FieldBool:     "bool",
	FieldDateTime: "strfmt.DateTime",
}

var (
	kindNamePattern  = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	fieldNamePattern = regexp.MustCompile(`^[a-z][A-Za-z0-9_]*$`)
	typeNamePattern  = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
)

// reservedNames are declared by every generated file.
var reservedNames = map[string]bool{
	"DataStore":    true,
	"NewDataStore": true,
	"Schema":       true,
}

// File is one schema file as written on disk.
type File struct {
	Package string     `yaml:"package,omitempty"`
	Kinds   []KindSpec `yaml:"kinds"`
}

// KindSpec declares one entity kind.
type KindSpec struct {
	Name     string      `yaml:"name"`
	Type     string      `yaml:"type,omitempty"`
	Plural   string      `yaml:"plural,omitempty"`
	IDFormat string      `yaml:"idFormat,omitempty"`
	Fields   []FieldSpec `yaml:"fields,omitempty"`
}

// FieldSpec declares one record field besides the implicit id.
type FieldSpec struct {
	Name   string    `yaml:"name"`
	Type   FieldType `yaml:"type"`
	GoName string    `yaml:"goName,omitempty"`
}

// Schema is the merged result of one or more schema files.
type Schema struct {
	Package string
	Kinds   []KindSpec
	Sources []string

	names map[string]string
	types map[string]string
}

// NewSchema creates an empty Schema.
func NewSchema() *Schema {
	return &Schema{
		names: make(map[string]string),
		types: make(map[string]string),
	}
}

// LoadSchema reads and merges the schema files at paths, in order.
func LoadSchema(paths ...string) (*Schema, error) {
	if len(paths) == 0 {
		return nil, errors.NewValidationError("schema", "no schema files given")
	}

	s := NewSchema()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", path, err)
		}
		f, err := ParseFile(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parse schema %s: %w", path, err)
		}
		if err := s.Merge(path, f); err != nil {
			return nil, fmt.Errorf("merge schema %s: %w", path, err)
		}
	}
	return s, nil
}

// ParseFile decodes a single schema file. Unknown keys are rejected.
func ParseFile(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return File{}, nil
		}
		return File{}, err
	}
	return f, nil
}

// Merge adds the kinds of f to s. Kinds of earlier sources are never altered;
// redefining one is an error and leaves s unchanged.
func (s *Schema) Merge(source string, f File) error {
	if f.Package != "" && s.Package != "" && f.Package != s.Package {
		return errors.NewValidationError("package", fmt.Sprintf("package %q conflicts with %q", f.Package, s.Package))
	}

	resolved := make([]KindSpec, 0, len(f.Kinds))
	names := make(map[string]string, len(f.Kinds))
	types := make(map[string]string, len(f.Kinds))
	for _, k := range f.Kinds {
		k, err := resolveKind(k)
		if err != nil {
			return err
		}
		if prev, exists := s.names[k.Name]; exists {
			return errors.NewAlreadyExistsError("kind", fmt.Sprintf("%s (declared in %s)", k.Name, prev))
		}
		if _, exists := names[k.Name]; exists {
			return errors.NewAlreadyExistsError("kind", k.Name)
		}
		if owner, exists := s.types[k.Type]; exists {
			return errors.NewAlreadyExistsError("record type", fmt.Sprintf("%s (kind %s)", k.Type, owner))
		}
		if owner, exists := types[k.Type]; exists {
			return errors.NewAlreadyExistsError("record type", fmt.Sprintf("%s (kind %s)", k.Type, owner))
		}
		names[k.Name] = source
		types[k.Type] = k.Name
		resolved = append(resolved, k)
	}

	if f.Package != "" {
		s.Package = f.Package
	}
	for name, src := range names {
		s.names[name] = src
	}
	for typ, name := range types {
		s.types[typ] = name
	}
	s.Kinds = append(s.Kinds, resolved...)
	s.Sources = append(s.Sources, source)
	return nil
}

// resolveKind validates k and fills in defaults.
func resolveKind(k KindSpec) (KindSpec, error) {
	if !kindNamePattern.MatchString(k.Name) {
		return k, errors.NewValidationError("name", fmt.Sprintf("invalid kind name %q", k.Name))
	}
	if k.Type == "" {
		k.Type = goName(k.Name)
	}
	if !typeNamePattern.MatchString(k.Type) {
		return k, errors.NewValidationError("type", fmt.Sprintf("kind %s: invalid type name %q", k.Name, k.Type))
	}
	if reservedNames[k.Type] {
		return k, errors.NewValidationError("type", fmt.Sprintf("kind %s: type name %q is reserved", k.Name, k.Type))
	}
	if k.Plural == "" {
		k.Plural = k.Name + "s"
	}
	if !kindNamePattern.MatchString(k.Plural) {
		return k, errors.NewValidationError("plural", fmt.Sprintf("kind %s: invalid plural %q", k.Name, k.Plural))
	}
	if goName(k.Plural) == goName(k.Name) {
		return k, errors.NewValidationError("plural", fmt.Sprintf("kind %s: plural must differ from the name", k.Name))
	}
	if k.IDFormat != "" && !strfmt.Default.ContainsName(k.IDFormat) {
		return k, errors.NewValidationError("idFormat", fmt.Sprintf("kind %s: unknown id format %q", k.Name, k.IDFormat))
	}

	fields := make([]FieldSpec, 0, len(k.Fields))
	seen := map[string]string{"ID": "id"}
	for _, f := range k.Fields {
		if f.Name == "id" {
			return k, errors.NewValidationError("fields", fmt.Sprintf("kind %s: field name \"id\" is reserved", k.Name))
		}
		if !fieldNamePattern.MatchString(f.Name) {
			return k, errors.NewValidationError("fields", fmt.Sprintf("kind %s: invalid field name %q", k.Name, f.Name))
		}
		if _, ok := goTypes[f.Type]; !ok {
			return k, errors.NewValidationError("fields", fmt.Sprintf("kind %s: field %s has unsupported type %q", k.Name, f.Name, f.Type))
		}
		if f.GoName == "" {
			f.GoName = goName(f.Name)
		}
		if !typeNamePattern.MatchString(f.GoName) {
			return k, errors.NewValidationError("fields", fmt.Sprintf("kind %s: invalid Go name %q", k.Name, f.GoName))
		}
		if other, dup := seen[f.GoName]; dup {
			return k, errors.NewValidationError("fields", fmt.Sprintf("kind %s: fields %s and %s collide", k.Name, other, f.Name))
		}
		seen[f.GoName] = f.Name
		fields = append(fields, f)
	}
	k.Fields = fields
	return k, nil
}

// Lookup returns the kind declared under name.
func (s *Schema) Lookup(name string) (KindSpec, error) {
	for _, k := range s.Kinds {
		if k.Name == name {
			return k, nil
		}
	}
	return KindSpec{}, errors.NewUnknownKindError(name)
}
