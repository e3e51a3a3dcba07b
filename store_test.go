/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kindstore_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/suparena/kindstore"
	"github.com/suparena/kindstore/errors"
	"github.com/suparena/kindstore/registry"
)

type TestMovie struct {
	ID       string
	Director string
}

func (m TestMovie) GetID() string { return m.ID }

type TestSong struct {
	ID     string
	Singer string
}

func (s TestSong) GetID() string { return s.ID }

type testKinds struct {
	schema *registry.Schema
	movies kindstore.Kind[TestMovie]
	songs  kindstore.Kind[TestSong]
}

func newTestKinds(t testing.TB) testKinds {
	t.Helper()
	schema := registry.NewSchema()
	movies, err := kindstore.Define[TestMovie](schema, "movie")
	require.NoError(t, err)
	songs, err := kindstore.Define[TestSong](schema, "song")
	require.NoError(t, err)
	return testKinds{schema: schema, movies: movies, songs: songs}
}

func TestDefine(t *testing.T) {
	k := newTestKinds(t)

	assert.Equal(t, "movie", k.movies.Name())
	assert.Equal(t, "movies", k.movies.Plural())
	assert.Equal(t, []string{"movie", "song"}, k.schema.Names())

	t.Run("redefinition with another type fails", func(t *testing.T) {
		_, err := kindstore.Define[TestSong](k.schema, "movie")
		assert.True(t, errors.IsAlreadyExists(err))
	})

	t.Run("MustDefine panics on conflict", func(t *testing.T) {
		assert.Panics(t, func() {
			kindstore.MustDefine[TestMovie](k.schema, "film")
		})
	})
}

func TestStoreScenario(t *testing.T) {
	k := newTestKinds(t)
	store := kindstore.New(k.schema)

	movie := kindstore.Add(store, k.movies, TestMovie{ID: "m1", Director: "Nolan"})
	assert.Equal(t, TestMovie{ID: "m1", Director: "Nolan"}, movie)
	kindstore.Add(store, k.songs, TestSong{ID: "s1", Singer: "Adele"})

	assert.Equal(t, []TestMovie{{ID: "m1", Director: "Nolan"}}, kindstore.GetAll(store, k.movies))
	assert.Equal(t, []TestSong{{ID: "s1", Singer: "Adele"}}, kindstore.GetAll(store, k.songs))

	_, err := kindstore.Get(store, k.movies, "s1")
	require.Error(t, err)
	var nf *errors.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "movie", nf.Kind)
	assert.Equal(t, "s1", nf.ID)

	kindstore.Clear(store, k.movies)
	assert.Empty(t, kindstore.GetAll(store, k.movies))
	assert.Equal(t, []TestSong{{ID: "s1", Singer: "Adele"}}, kindstore.GetAll(store, k.songs))
}

func TestStoreKinds(t *testing.T) {
	k := newTestKinds(t)
	store := kindstore.New(k.schema)
	assert.Equal(t, []string{"movie", "song"}, store.Kinds())
}

func TestGetReturnsZeroValueWithError(t *testing.T) {
	k := newTestKinds(t)
	store := kindstore.New(k.schema)

	movie, err := kindstore.Get(store, k.movies, "missing")
	assert.True(t, errors.IsNotFound(err))
	assert.Zero(t, movie)
}

func TestGetAllOrderAfterOverwrite(t *testing.T) {
	k := newTestKinds(t)
	store := kindstore.New(k.schema)

	kindstore.Add(store, k.movies, TestMovie{ID: "m2", Director: "Villeneuve"})
	kindstore.Add(store, k.movies, TestMovie{ID: "m1", Director: "Nolan"})
	kindstore.Add(store, k.movies, TestMovie{ID: "m2", Director: "Gerwig"})

	assert.Equal(t, []TestMovie{
		{ID: "m2", Director: "Gerwig"},
		{ID: "m1", Director: "Nolan"},
	}, kindstore.GetAll(store, k.movies))
	assert.Equal(t, 2, kindstore.Count(store, k.movies))
}

func TestStoreSnapshotsSchema(t *testing.T) {
	k := newTestKinds(t)
	store := kindstore.New(k.schema)

	type TestComic struct {
		TestMovie
	}
	comics := kindstore.MustDefine[TestComic](k.schema, "comic")

	assert.Equal(t, []string{"movie", "song"}, store.Kinds())
	assert.Panics(t, func() {
		kindstore.GetAll(store, comics)
	})
	assert.NotPanics(t, func() {
		kindstore.GetAll(kindstore.New(k.schema), comics)
	})
}

func TestStoresAreIndependent(t *testing.T) {
	k := newTestKinds(t)
	first := kindstore.New(k.schema)
	second := kindstore.New(k.schema)

	kindstore.Add(first, k.movies, TestMovie{ID: "m1"})
	assert.Empty(t, kindstore.GetAll(second, k.movies))
}

func TestConcurrentAccessToDifferentKinds(t *testing.T) {
	k := newTestKinds(t)
	store := kindstore.New(k.schema)
	done := make(chan bool)

	for i := 0; i < 10; i++ {
		go func(id int) {
			kindstore.Add(store, k.movies, TestMovie{ID: fmt.Sprintf("m%d", id)})
			done <- true
		}(i)
		go func(id int) {
			kindstore.Add(store, k.songs, TestSong{ID: fmt.Sprintf("s%d", id)})
			kindstore.GetAll(store, k.songs)
			done <- true
		}(i)
	}

	for i := 0; i < 20; i++ {
		<-done
	}

	assert.Equal(t, 10, kindstore.Count(store, k.movies))
	assert.Equal(t, 10, kindstore.Count(store, k.songs))
}

// === Property Tests ===

func movieGen() *rapid.Generator[TestMovie] {
	return rapid.Custom(func(t *rapid.T) TestMovie {
		return TestMovie{
			ID:       rapid.StringMatching(`m[0-9]{1,2}`).Draw(t, "movieID"),
			Director: rapid.StringMatching(`[A-Z][a-z]{2,8}`).Draw(t, "director"),
		}
	})
}

func songGen() *rapid.Generator[TestSong] {
	return rapid.Custom(func(t *rapid.T) TestSong {
		return TestSong{
			ID:     rapid.StringMatching(`s[0-9]{1,2}`).Draw(t, "songID"),
			Singer: rapid.StringMatching(`[A-Z][a-z]{2,8}`).Draw(t, "singer"),
		}
	})
}

func TestProperty_EmptyStore(t *testing.T) {
	k := newTestKinds(t)
	store := kindstore.New(k.schema)

	assert.Empty(t, kindstore.GetAll(store, k.movies))
	assert.Empty(t, kindstore.GetAll(store, k.songs))
}

func TestProperty_RoundTrip(t *testing.T) {
	k := newTestKinds(t)
	rapid.Check(t, func(t *rapid.T) {
		store := kindstore.New(k.schema)
		movie := movieGen().Draw(t, "movie")

		got, err := kindstore.Get(store, k.movies, kindstore.Add(store, k.movies, movie).ID)
		if err != nil {
			t.Fatalf("Get after Add failed: %v", err)
		}
		if got != movie {
			t.Fatalf("round trip mismatch: got %+v, want %+v", got, movie)
		}
	})
}

func TestProperty_Overwrite(t *testing.T) {
	k := newTestKinds(t)
	rapid.Check(t, func(t *rapid.T) {
		store := kindstore.New(k.schema)
		first := movieGen().Draw(t, "first")
		second := movieGen().Draw(t, "second")
		second.ID = first.ID

		kindstore.Add(store, k.movies, first)
		kindstore.Add(store, k.movies, second)

		matches := 0
		for _, m := range kindstore.GetAll(store, k.movies) {
			if m.ID == first.ID {
				matches++
				if m != second {
					t.Fatalf("expected last write %+v, got %+v", second, m)
				}
			}
		}
		if matches != 1 {
			t.Fatalf("expected exactly one record for id %q, got %d", first.ID, matches)
		}
	})
}

func TestProperty_IsolationAndIdempotentClear(t *testing.T) {
	k := newTestKinds(t)
	rapid.Check(t, func(t *rapid.T) {
		store := kindstore.New(k.schema)
		for _, m := range rapid.SliceOf(movieGen()).Draw(t, "movies") {
			kindstore.Add(store, k.movies, m)
		}
		for _, s := range rapid.SliceOf(songGen()).Draw(t, "songs") {
			kindstore.Add(store, k.songs, s)
		}

		songsBefore := kindstore.GetAll(store, k.songs)
		kindstore.Clear(store, k.movies)
		afterOnce := kindstore.GetAll(store, k.movies)
		kindstore.Clear(store, k.movies)
		afterTwice := kindstore.GetAll(store, k.movies)

		if len(afterOnce) != 0 || len(afterTwice) != 0 {
			t.Fatalf("movies not cleared: %v / %v", afterOnce, afterTwice)
		}
		songsAfter := kindstore.GetAll(store, k.songs)
		if len(songsBefore) != len(songsAfter) {
			t.Fatalf("clearing movies changed songs: %v -> %v", songsBefore, songsAfter)
		}
		for i := range songsBefore {
			if songsBefore[i] != songsAfter[i] {
				t.Fatalf("clearing movies changed songs: %v -> %v", songsBefore, songsAfter)
			}
		}
	})
}

func TestProperty_NotFoundContract(t *testing.T) {
	k := newTestKinds(t)
	rapid.Check(t, func(t *rapid.T) {
		store := kindstore.New(k.schema)
		added := make(map[string]bool)
		for _, m := range rapid.SliceOf(movieGen()).Draw(t, "movies") {
			kindstore.Add(store, k.movies, m)
			added[m.ID] = true
		}
		if rapid.Bool().Draw(t, "clear") {
			kindstore.Clear(store, k.movies)
			added = map[string]bool{}
		}

		id := rapid.StringMatching(`m[0-9]{1,2}`).Draw(t, "lookup")
		_, err := kindstore.Get(store, k.movies, id)
		if added[id] {
			if err != nil {
				t.Fatalf("expected %q to be found: %v", id, err)
			}
			return
		}

		var nf *errors.NotFoundError
		if !stderrors.As(err, &nf) || nf.Kind != "movie" || nf.ID != id {
			t.Fatalf("expected NotFound(movie, %q), got %v", id, err)
		}
	})
}
