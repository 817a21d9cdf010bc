package knowledge

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const tableColumns = 2

var (
	ErrEmptySheet    = errors.New("sheet has no rows")
	ErrColumnCount   = errors.New("unexpected column count")
	ErrSheetNotFound = errors.New("sheet not found")
)

type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type Loader struct {
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger.Named("knowledge")}
}

// Load reads a workbook into a Table. The first row is a header and is
// skipped; the first two columns are taken as question and answer by
// position. An empty sheet name selects the first sheet.
func (l *Loader) Load(path, sheet string) (*Table, error) {
	entries, sheet, err := readWorkbook(path, sheet)
	if err != nil {
		l.logger.Warn("table load failed",
			zap.String("path", path),
			zap.String("sheet", sheet),
			zap.Error(err),
		)
		return nil, &LoadError{Path: path, Err: err}
	}

	table := NewTable(entries)
	l.logger.Info("table loaded",
		zap.String("path", path),
		zap.String("sheet", sheet),
		zap.Int("entries", table.Len()),
	)
	return table, nil
}

func readWorkbook(path, sheet string) ([]Entry, string, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		// LoadError already names the path.
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return nil, sheet, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		_ = book.Close()
	}()

	sheet, err = resolveSheet(book, sheet)
	if err != nil {
		return nil, sheet, err
	}

	rows, err := book.GetRows(sheet)
	if err != nil {
		return nil, sheet, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	entries, err := rowsToEntries(rows)
	return entries, sheet, err
}

func resolveSheet(book *excelize.File, sheet string) (string, error) {
	sheets := book.GetSheetList()
	if strings.TrimSpace(sheet) == "" {
		if len(sheets) == 0 {
			return "", ErrSheetNotFound
		}
		return sheets[0], nil
	}
	for _, name := range sheets {
		if name == sheet {
			return name, nil
		}
	}
	return sheet, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
}

func rowsToEntries(rows [][]string) ([]Entry, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	if width != tableColumns {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrColumnCount, tableColumns, width)
	}

	entries := make([]Entry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		entries = append(entries, Entry{
			Question: cell(row, 0),
			Answer:   cell(row, 1),
		})
	}
	return entries, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func isBlankRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
