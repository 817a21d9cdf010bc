package knowledge_test

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"refoundly/internal/knowledge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const defaultSheet = "Sheet1"

// writeWorkbook saves rows into a fresh workbook and returns its path.
func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()

	book := excelize.NewFile()
	t.Cleanup(func() { _ = book.Close() })

	if sheet != defaultSheet {
		_, err := book.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, book.SetSheetRow(sheet, addr, &row))
	}

	path := filepath.Join(t.TempDir(), "table.xlsx")
	require.NoError(t, book.SaveAs(path))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	loader := knowledge.NewLoader(zap.NewNop())

	t.Run("reads question and answer columns by position", func(t *testing.T) {
		t.Parallel()

		path := writeWorkbook(t, defaultSheet, [][]any{
			{"Q", "A"},
			{"  What Is ReFoundly ", "A community platform."},
			{"How do I report a lost item", "Use the Lost page."},
		})

		table, err := loader.Load(path, "")
		require.NoError(t, err)

		assert.Equal(t, []knowledge.Entry{
			{Question: "what is refoundly", Answer: "A community platform."},
			{Question: "how do i report a lost item", Answer: "Use the Lost page."},
		}, table.Entries())
	})

	t.Run("numeric questions become text", func(t *testing.T) {
		t.Parallel()

		path := writeWorkbook(t, defaultSheet, [][]any{
			{"Question", "Answer"},
			{42, "The answer."},
		})

		table, err := loader.Load(path, "")
		require.NoError(t, err)

		answer, ok := table.Answer("42")
		assert.True(t, ok)
		assert.Equal(t, "The answer.", answer)
	})

	t.Run("skips blank rows and tolerates missing answers", func(t *testing.T) {
		t.Parallel()

		path := writeWorkbook(t, defaultSheet, [][]any{
			{"Question", "Answer"},
			{"first", "1"},
			{"", ""},
			{"no answer"},
		})

		table, err := loader.Load(path, "")
		require.NoError(t, err)

		assert.Equal(t, []knowledge.Entry{
			{Question: "first", Answer: "1"},
			{Question: "no answer", Answer: ""},
		}, table.Entries())
	})

	t.Run("reads a named sheet", func(t *testing.T) {
		t.Parallel()

		path := writeWorkbook(t, "FAQ", [][]any{
			{"Question", "Answer"},
			{"hours", "9 to 5"},
		})

		table, err := loader.Load(path, "FAQ")
		require.NoError(t, err)
		assert.Equal(t, 1, table.Len())
	})

	t.Run("unknown sheet", func(t *testing.T) {
		t.Parallel()

		path := writeWorkbook(t, defaultSheet, [][]any{{"Question", "Answer"}})

		_, err := loader.Load(path, "Missing")
		assert.ErrorIs(t, err, knowledge.ErrSheetNotFound)
	})

	t.Run("empty sheet", func(t *testing.T) {
		t.Parallel()

		path := writeWorkbook(t, defaultSheet, nil)

		_, err := loader.Load(path, "")
		assert.ErrorIs(t, err, knowledge.ErrEmptySheet)
	})

	t.Run("wrong column count", func(t *testing.T) {
		t.Parallel()

		path := writeWorkbook(t, defaultSheet, [][]any{
			{"Question", "Answer", "Category"},
			{"q", "a", "c"},
		})

		_, err := loader.Load(path, "")
		assert.ErrorIs(t, err, knowledge.ErrColumnCount)
	})

	t.Run("missing file is a load error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.xlsx")

		table, err := loader.Load(path, "")
		assert.Nil(t, table)

		var loadErr *knowledge.LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, path, loadErr.Path)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Equal(t, 1, strings.Count(err.Error(), path), err.Error())
	})
}
