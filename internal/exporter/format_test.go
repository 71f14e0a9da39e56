package exporter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"attendancecli/pkg/contracts/domain"
)

const testSheet = "Sheet1"

// storedSeconds reads a cell's stored day fraction as whole seconds
func storedSeconds(t *testing.T, f *excelize.File, sheet, cell string) int {
	t.Helper()
	raw, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	n, ok := domain.Cell{Raw: raw}.Number()
	require.True(t, ok, "cell %s holds %q, not a number", cell, raw)
	return int(math.Round(n * secondsPerDay))
}

func numFmtOf(t *testing.T, f *excelize.File, sheet, cell string) int {
	t.Helper()
	id, err := f.GetCellStyle(sheet, cell)
	require.NoError(t, err)
	style, err := f.GetStyle(id)
	require.NoError(t, err)
	return style.NumFmt
}

func TestClockFraction(t *testing.T) {
	tests := []struct {
		in      string
		seconds int
		ok      bool
	}{
		{"08:00:00", 8 * 3600, true},
		{"17:30:15", 17*3600 + 30*60 + 15, true},
		{"00:00:00", 0, true},
		{" 09:05:00 ", 9*3600 + 5*60, true},
		{"23:59:59", 86399, true},
		{"8:00", 0, false},
		{"24:00:00", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			frac, ok := clockFraction(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.seconds, int(math.Round(frac*secondsPerDay)))
			}
		})
	}
}

func TestTimeWriter(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	w := newTimeWriter(f)

	t.Run("clock text becomes a typed time", func(t *testing.T) {
		require.NoError(t, w.write(testSheet, "A1", domain.TextCell("08:00:00")))
		assert.Equal(t, 8*3600, storedSeconds(t, f, testSheet, "A1"))
		assert.Equal(t, numFmtClock, numFmtOf(t, f, testSheet, "A1"))
	})

	t.Run("clock styles are reused", func(t *testing.T) {
		require.NoError(t, w.write(testSheet, "A2", domain.TextCell("17:00:00")))
		first, err := f.GetCellStyle(testSheet, "A1")
		require.NoError(t, err)
		second, err := f.GetCellStyle(testSheet, "A2")
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Len(t, w.styles, 1)
	})

	t.Run("bare numbers stay numeric", func(t *testing.T) {
		require.NoError(t, w.write(testSheet, "B1", domain.TextCell("9.5")))
		typ, err := f.GetCellType(testSheet, "B1")
		require.NoError(t, err)
		assert.NotEqual(t, excelize.CellTypeSharedString, typ)
		assert.NotEqual(t, excelize.CellTypeInlineString, typ)

		value, err := f.GetCellValue(testSheet, "B1")
		require.NoError(t, err)
		assert.Equal(t, "9.5", value)
	})

	t.Run("formatted serials stay numeric", func(t *testing.T) {
		tests := []struct {
			cell    string
			value   domain.Cell
			seconds int
			numFmt  int
		}{
			{"C1", domain.Cell{Text: "8:30", Raw: "0.354166666666667"}, 8*3600 + 30*60, numFmtClock},
			{"C2", domain.Cell{Text: "17:00", Raw: "0.708333333333333"}, 17 * 3600, numFmtClock},
			{"C3", domain.Cell{Text: "25:30:00", Raw: "1.0625"}, 25*3600 + 30*60, numFmtElapsed},
		}

		for _, tt := range tests {
			require.NoError(t, w.write(testSheet, tt.cell, tt.value))

			typ, err := f.GetCellType(testSheet, tt.cell)
			require.NoError(t, err)
			assert.NotEqual(t, excelize.CellTypeSharedString, typ, tt.cell)
			assert.NotEqual(t, excelize.CellTypeInlineString, typ, tt.cell)
			assert.Equal(t, tt.seconds, storedSeconds(t, f, testSheet, tt.cell), tt.cell)
			assert.Equal(t, tt.numFmt, numFmtOf(t, f, testSheet, tt.cell), tt.cell)
		}
	})

	t.Run("malformed text is written through", func(t *testing.T) {
		require.NoError(t, w.write(testSheet, "D1", domain.TextCell("izinli")))
		value, err := f.GetCellValue(testSheet, "D1")
		require.NoError(t, err)
		assert.Equal(t, "izinli", value)
	})

	t.Run("blank clears the cell", func(t *testing.T) {
		require.NoError(t, f.SetCellValue(testSheet, "E1", "old"))
		require.NoError(t, w.write(testSheet, "E1", domain.Cell{}))
		value, err := f.GetCellValue(testSheet, "E1")
		require.NoError(t, err)
		assert.Empty(t, value)
	})
}
