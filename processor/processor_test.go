/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/kindstore/errors"
)

func TestGoName(t *testing.T) {
	tests := map[string]string{
		"movie":           "Movie",
		"movies":          "Movies",
		"release_date":    "ReleaseDate",
		"site_url":        "SiteURL",
		"siteUrl":         "SiteUrl",
		"id":              "ID",
		"runtime-minutes": "RuntimeMinutes",
	}
	for in, want := range tests {
		assert.Equal(t, want, goName(in), "goName(%q)", in)
	}
}

func TestLoadSchema(t *testing.T) {
	t.Run("merges files in order", func(t *testing.T) {
		s, err := LoadSchema(filepath.Join("testdata", "movie.yaml"), filepath.Join("testdata", "comic.yaml"))
		require.NoError(t, err)

		assert.Equal(t, "media", s.Package)
		require.Len(t, s.Kinds, 2)
		assert.Equal(t, "movie", s.Kinds[0].Name)
		assert.Equal(t, "comic", s.Kinds[1].Name)

		comic, err := s.Lookup("comic")
		require.NoError(t, err)
		assert.Equal(t, "Comic", comic.Type)
		assert.Equal(t, "comics", comic.Plural)
		assert.Equal(t, "uuid", comic.IDFormat)
		assert.Equal(t, "PublishedAt", comic.Fields[1].GoName)
	})

	t.Run("later file cannot redefine a kind", func(t *testing.T) {
		_, err := LoadSchema(filepath.Join("testdata", "movie.yaml"), filepath.Join("testdata", "movie_redefined.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsAlreadyExists(err))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSchema(filepath.Join("testdata", "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("no files", func(t *testing.T) {
		_, err := LoadSchema()
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown kind lookup", func(t *testing.T) {
		s, err := LoadSchema(filepath.Join("testdata", "movie.yaml"))
		require.NoError(t, err)
		_, err = s.Lookup("song")
		assert.True(t, errors.IsUnknownKind(err))
	})
}

func TestParseFileRejectsUnknownKeys(t *testing.T) {
	_, err := ParseFile(strings.NewReader("kinds:\n  - name: movie\n    colour: red\n"))
	assert.Error(t, err)
}

func TestParseFileEmpty(t *testing.T) {
	f, err := ParseFile(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Kinds)
}

func TestMergeValidation(t *testing.T) {
	tests := []struct {
		name     string
		file     File
		validate bool
	}{
		{"invalid kind name", File{Kinds: []KindSpec{{Name: "Movie"}}}, true},
		{"reserved id field", File{Kinds: []KindSpec{{Name: "movie", Fields: []FieldSpec{{Name: "id", Type: FieldString}}}}}, true},
		{"unsupported field type", File{Kinds: []KindSpec{{Name: "movie", Fields: []FieldSpec{{Name: "cast", Type: "list"}}}}}, true},
		{"colliding fields", File{Kinds: []KindSpec{{Name: "movie", Fields: []FieldSpec{
			{Name: "site_url", Type: FieldString},
			{Name: "siteURL", Type: FieldString, GoName: "SiteURL"},
		}}}}, true},
		{"unknown id format", File{Kinds: []KindSpec{{Name: "movie", IDFormat: "no-such-format"}}}, true},
		{"reserved type name", File{Kinds: []KindSpec{{Name: "movie", Type: "DataStore"}}}, true},
		{"plural equal to name", File{Kinds: []KindSpec{{Name: "sheep", Plural: "sheep"}}}, true},
		{"duplicate kind in one file", File{Kinds: []KindSpec{{Name: "movie"}, {Name: "movie"}}}, false},
		{"duplicate type in one file", File{Kinds: []KindSpec{{Name: "movie", Type: "Film"}, {Name: "film"}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSchema()
			err := s.Merge("inline.yaml", tt.file)
			require.Error(t, err)
			if tt.validate {
				assert.True(t, errors.IsValidationError(err), "got %v", err)
			} else {
				assert.True(t, errors.IsAlreadyExists(err), "got %v", err)
			}
			assert.Empty(t, s.Kinds, "a rejected file must not add kinds")
		})
	}
}

func TestMergeConflictingPackage(t *testing.T) {
	s := NewSchema()
	require.NoError(t, s.Merge("a.yaml", File{Package: "media", Kinds: []KindSpec{{Name: "movie"}}}))

	err := s.Merge("b.yaml", File{Package: "music", Kinds: []KindSpec{{Name: "song"}}})
	assert.True(t, errors.IsValidationError(err))
	assert.Len(t, s.Kinds, 1)
}

func TestGenerate(t *testing.T) {
	s, err := LoadSchema(filepath.Join("testdata", "movie.yaml"), filepath.Join("testdata", "comic.yaml"))
	require.NoError(t, err)

	src, err := Generate(s, "")
	require.NoError(t, err)
	code := string(src)

	_, err = parser.ParseFile(token.NewFileSet(), "kinds_gen.go", src, parser.AllErrors)
	require.NoError(t, err, "generated code must parse:\n%s", code)

	for _, want := range []string{
		"// Code generated by entityctl generate. DO NOT EDIT.",
		"package media",
		`"github.com/go-openapi/strfmt"`,
		"type Movie struct",
		"RuntimeMinutes int",
		"PublishedAt strfmt.DateTime",
		"SiteURL     string",
		`var ComicKind = kindstore.MustDefine[Comic](Schema, "comic", registry.WithPlural("comics"), registry.WithIDFormat("uuid"))`,
		"func (d *DataStore) AddMovie(arg Movie) Movie",
		"func (d *DataStore) GetAllMovies() []Movie",
		"func (d *DataStore) GetMovie(id string) (Movie, error)",
		"func (d *DataStore) ClearMovies()",
		"func (d *DataStore) AddComic(arg Comic) Comic",
		"func (d *DataStore) GetAllComics() []Comic",
	} {
		assert.Contains(t, code, want)
	}
}

func TestGeneratePackageOverride(t *testing.T) {
	s, err := LoadSchema(filepath.Join("testdata", "movie.yaml"))
	require.NoError(t, err)

	src, err := Generate(s, "films")
	require.NoError(t, err)
	assert.Contains(t, string(src), "package films")
	assert.NotContains(t, string(src), "strfmt")
}

func TestGenerateRequiresPackageAndKinds(t *testing.T) {
	s := NewSchema()
	require.NoError(t, s.Merge("comic.yaml", File{Kinds: []KindSpec{{Name: "comic"}}}))

	_, err := Generate(s, "")
	assert.True(t, errors.IsValidationError(err))

	_, err = Generate(NewSchema(), "media")
	assert.True(t, errors.IsValidationError(err))
}

func TestRunWritesOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "kinds_gen.go")

	src, err := Run(Options{
		SchemaPaths: []string{filepath.Join("testdata", "movie.yaml")},
		Output:      out,
	})
	require.NoError(t, err)
	assert.FileExists(t, out)
	assert.Contains(t, string(src), "package media")
}
