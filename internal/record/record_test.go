package record

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func named(t *testing.T, name string, kv ...string) Record {
	t.Helper()
	rec := New()
	rec.Set("name", name)
	for i := 0; i+1 < len(kv); i += 2 {
		rec.Set(kv[i], kv[i+1])
	}
	return rec
}

func TestRecord(t *testing.T) {
	t.Run("keys keep insertion order", func(t *testing.T) {
		rec := named(t, "A", "b", "1", "a", "2", "c", "3")
		assert.Equal(t, []string{"name", "b", "a", "c"}, rec.Keys())
	})

	t.Run("set keeps position on update", func(t *testing.T) {
		rec := named(t, "A", "x", "1")
		rec.Set("name", "B")
		assert.Equal(t, []string{"name", "x"}, rec.Keys())
		assert.Equal(t, "B", rec.Name())
	})

	t.Run("clone is independent", func(t *testing.T) {
		rec := named(t, "A", "x", "1")
		dup := rec.Clone()
		dup.Set("x", "2")
		assert.Equal(t, "1", rec.GetString("x"))
		assert.Equal(t, "2", dup.GetString("x"))
	})

	t.Run("marshals as ordered object", func(t *testing.T) {
		rec := named(t, "精灵", "desc", "黑暗视觉")
		out, err := json.Marshal(rec)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"精灵","desc":"黑暗视觉"}`, string(out))
		assert.Less(t, strings.Index(string(out), "name"), strings.Index(string(out), "desc"))
	})
}

func TestSet(t *testing.T) {
	t.Run("from records dedupes", func(t *testing.T) {
		s := FromRecords([]Record{named(t, "A", "x", "1"), named(t, "A", "x", "2"), named(t, "B")})
		assert.Equal(t, 2, s.Len())
		rec, ok := s.Get("A")
		require.True(t, ok)
		assert.Equal(t, "1", rec.GetString("x"))
	})

	t.Run("append rejects duplicates", func(t *testing.T) {
		s := NewSet()
		require.NoError(t, s.Append(named(t, "A")))
		assert.Error(t, s.Append(named(t, "A")))
		assert.Error(t, s.Append(named(t, "")))
	})

	t.Run("replace keeps position", func(t *testing.T) {
		s := FromRecords([]Record{named(t, "A"), named(t, "B"), named(t, "C")})
		require.NoError(t, s.Replace("B", named(t, "B2")))
		assert.Equal(t, []string{"A", "B2", "C"}, s.Names())
		assert.False(t, s.Has("B"))
	})

	t.Run("replace rejects stealing another name", func(t *testing.T) {
		s := FromRecords([]Record{named(t, "A"), named(t, "B")})
		assert.Error(t, s.Replace("A", named(t, "B")))
	})

	t.Run("replace onto same name allowed", func(t *testing.T) {
		s := FromRecords([]Record{named(t, "A", "x", "1")})
		require.NoError(t, s.Replace("A", named(t, "A", "x", "2")))
		rec, _ := s.Get("A")
		assert.Equal(t, "2", rec.GetString("x"))
	})

	t.Run("delete reindexes", func(t *testing.T) {
		s := FromRecords([]Record{named(t, "A"), named(t, "B"), named(t, "C")})
		require.True(t, s.Delete("B"))
		assert.False(t, s.Delete("B"))
		rec, ok := s.Get("C")
		require.True(t, ok)
		assert.Equal(t, "C", rec.Name())
		assert.Equal(t, []string{"A", "C"}, s.Names())
	})

	t.Run("lookup trims", func(t *testing.T) {
		s := FromRecords([]Record{named(t, "A")})
		assert.True(t, s.Has(" A "))
	})
}
