package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeFileName(t *testing.T) {
	assert.Equal(t, "Merry Brandybuck", SafeFileName("Merry Brandybuck"))
	assert.Equal(t, "阿尔莎", SafeFileName("阿尔莎"))
	assert.Equal(t, "a_b-c", SafeFileName("a_b-c"))
	assert.Equal(t, "ab", SafeFileName("a/.\\b"))
	assert.Equal(t, "a", SafeFileName("a   "))
	assert.Equal(t, "Unnamed", SafeFileName("//::"))
	assert.Equal(t, "Unnamed", SafeFileName(""))
}

func TestCharacterStore(t *testing.T) {
	t.Run("save and load", func(t *testing.T) {
		st := NewCharacterStore(t.TempDir())
		c := Character{Name: "阿尔莎", Player: "小明", Race: "精灵", Class: "游侠", Background: "孤儿"}
		path, err := st.Save(c, false)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(st.Dir, "阿尔莎.json"), path)

		got, err := st.Load(path)
		require.NoError(t, err)
		assert.Equal(t, c, got)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "精灵")
	})

	t.Run("blank name rejected", func(t *testing.T) {
		st := NewCharacterStore(t.TempDir())
		_, err := st.Save(Character{Name: "   "}, false)
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("existing file needs overwrite", func(t *testing.T) {
		st := NewCharacterStore(t.TempDir())
		_, err := st.Save(Character{Name: "A"}, false)
		require.NoError(t, err)

		_, err = st.Save(Character{Name: "A", Player: "p2"}, false)
		assert.ErrorIs(t, err, ErrExists)

		path, err := st.Save(Character{Name: "A", Player: "p2"}, true)
		require.NoError(t, err)
		got, err := st.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "p2", got.Player)
	})

	t.Run("unknown keys ignored on load", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "X.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"name":"X","hp":12}`), 0o644))
		got, err := NewCharacterStore(dir).Load(path)
		require.NoError(t, err)
		assert.Equal(t, "X", got.Name)
		assert.Empty(t, got.Player)
	})

	t.Run("list", func(t *testing.T) {
		st := NewCharacterStore(t.TempDir())
		for _, nm := range []string{"B", "A"} {
			_, err := st.Save(Character{Name: nm}, false)
			require.NoError(t, err)
		}
		names, err := st.List()
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, names)
	})

	t.Run("list of missing dir is empty", func(t *testing.T) {
		st := NewCharacterStore(filepath.Join(t.TempDir(), "absent"))
		names, err := st.List()
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}
