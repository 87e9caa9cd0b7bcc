package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/encoding/simplifiedchinese"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadRows(t *testing.T) {
	t.Run("plain comma csv", func(t *testing.T) {
		rows := ReadRows(writeCSV(t, "name,desc\nA,alpha\nB,beta\n"))
		require.Len(t, rows, 2)
		assert.Equal(t, "A", rows[0]["name"])
		assert.Equal(t, "beta", rows[1]["desc"])
	})

	t.Run("semicolon sniffed", func(t *testing.T) {
		rows := ReadRows(writeCSV(t, "name;desc\nA;alpha\n"))
		require.Len(t, rows, 1)
		assert.Equal(t, "alpha", rows[0]["desc"])
	})

	t.Run("tab sniffed", func(t *testing.T) {
		rows := ReadRows(writeCSV(t, "name\tdesc\nA\talpha\n"))
		require.Len(t, rows, 1)
		assert.Equal(t, "A", rows[0]["name"])
	})

	t.Run("pipe sniffed", func(t *testing.T) {
		rows := ReadRows(writeCSV(t, "name|desc\nA|alpha\n"))
		require.Len(t, rows, 1)
		assert.Equal(t, "A", rows[0]["name"])
	})

	t.Run("non-blank second row is a description row", func(t *testing.T) {
		rows := ReadRows(writeCSV(t, "name,desc\n名称,描述\nA,alpha\n"))
		require.Len(t, rows, 1)
		assert.Equal(t, "A", rows[0]["name"])
	})

	t.Run("blank second row is data, not a description row", func(t *testing.T) {
		rows := ReadRows(writeCSV(t, "name,desc\n,\nA,alpha\nB,beta\n"))
		// The blank row is data and then dropped for being blank; the
		// following rows must not be shifted out.
		require.Len(t, rows, 2)
		assert.Equal(t, "A", rows[0]["name"])
		assert.Equal(t, "B", rows[1]["name"])
	})

	t.Run("blank data rows skipped", func(t *testing.T) {
		rows := ReadRows(writeCSV(t, "name,desc\nrow2 desc,\nA,alpha\n,\nB,beta\n"))
		require.Len(t, rows, 2)
	})

	t.Run("missing cells default and extras dropped", func(t *testing.T) {
		rows := ReadRows(writeCSV(t, "name,desc\nshort note,\nA\nB,beta,EXTRA\n"))
		require.Len(t, rows, 2)
		assert.Equal(t, "", rows[0]["desc"])
		assert.Equal(t, "beta", rows[1]["desc"])
		_, hasExtra := rows[1]["EXTRA"]
		assert.False(t, hasExtra)
	})

	t.Run("bom stripped from first header", func(t *testing.T) {
		rows := ReadRows(writeCSV(t, "\ufeffname,desc\nheader note,\nA,alpha\n"))
		require.Len(t, rows, 1)
		assert.Equal(t, "A", rows[0]["name"])
	})

	t.Run("cells trimmed", func(t *testing.T) {
		rows := ReadRows(writeCSV(t, "name , desc\nnote,\n A , alpha \n"))
		require.Len(t, rows, 1)
		assert.Equal(t, "A", rows[0]["name"])
		assert.Equal(t, "alpha", rows[0]["desc"])
	})

	t.Run("gbk encoded csv", func(t *testing.T) {
		gbk, err := simplifiedchinese.GBK.NewEncoder().String("name,desc\n说明行,\n人类,通用\n")
		require.NoError(t, err)
		rows := ReadRows(writeCSV(t, gbk))
		require.Len(t, rows, 1)
		assert.Equal(t, "人类", rows[0]["name"])
		assert.Equal(t, "通用", rows[0]["desc"])
	})

	t.Run("missing file", func(t *testing.T) {
		assert.Nil(t, ReadRows(filepath.Join(t.TempDir(), "absent.csv")))
	})

	t.Run("empty file", func(t *testing.T) {
		assert.Nil(t, ReadRows(writeCSV(t, "")))
	})
}

func TestSniffDelimiter(t *testing.T) {
	assert.Equal(t, ',', SniffDelimiter("a,b,c\nd,e,f"))
	assert.Equal(t, ';', SniffDelimiter("a;b;c\nd;e;f"))
	assert.Equal(t, '\t', SniffDelimiter("a\tb\nc\td"))
	assert.Equal(t, '|', SniffDelimiter("a|b\nc|d"))
	// No candidate at all falls back to comma.
	assert.Equal(t, ',', SniffDelimiter("single column\nrows"))
	assert.Equal(t, ',', SniffDelimiter(""))
}
