package Excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable(path string) *Table {
	return &Table{
		Path:    path,
		Sheet:   "Sheet1",
		Headers: []string{"First Name", "To", "CC", "Email Status", "Sent Timestamp"},
		Rows: []Row{
			{
				"First Name":     "Jane",
				"To":             "jane@x.com",
				"CC":             "boss@x.com",
				"Email Status":   "Sent successfully",
				"Sent Timestamp": "2024-06-05 10:30:00",
			},
			{
				"First Name":     "Bob",
				"To":             "bob@x.com",
				"CC":             "",
				"Email Status":   "",
				"Sent Timestamp": "",
			},
		},
	}
}

func TestExcelRoundTripPreservesStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.xlsx")
	require.NoError(t, sampleTable(path).Save())

	reloaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"First Name", "To", "CC", "Email Status", "Sent Timestamp"}, reloaded.Headers)
	require.Len(t, reloaded.Rows, 2)
	assert.Equal(t, "Sent successfully", reloaded.Rows[0]["Email Status"])
	assert.Equal(t, "2024-06-05 10:30:00", reloaded.Rows[0]["Sent Timestamp"])
	assert.Equal(t, "", reloaded.Rows[1]["Email Status"])
	assert.Equal(t, "", reloaded.Rows[1]["Sent Timestamp"])
}

func TestCSVRoundTripPreservesStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.csv")
	require.NoError(t, sampleTable(path).Save())

	reloaded, err := Load(path)
	require.NoError(t, err)

	require.Len(t, reloaded.Rows, 2)
	assert.Equal(t, "jane@x.com", reloaded.Rows[0]["To"])
	assert.Equal(t, "Sent successfully", reloaded.Rows[0]["Email Status"])
	assert.Equal(t, "", reloaded.Rows[1]["Email Status"])
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "list.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}

func TestMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.xlsx")
	table := sampleTable(path)

	assert.Empty(t, table.MissingColumns("First Name", "To", "CC", "Email Status"))
	assert.Equal(t, []string{"BCC", "Attachments"}, table.MissingColumns("BCC", "To", "Attachments"))
}

func TestEnsureColumnsAddsAbsentHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.xlsx")
	table := sampleTable(path)

	table.EnsureColumns("BCC", "Attachments", "CC")

	assert.True(t, table.HasColumn("BCC"))
	assert.True(t, table.HasColumn("Attachments"))
	assert.Equal(t, "", table.Rows[0]["BCC"])
	// existing column untouched
	assert.Equal(t, "boss@x.com", table.Rows[0]["CC"])
	assert.Len(t, table.Headers, 7)
}

func TestPendingCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.xlsx")
	table := sampleTable(path)
	table.Rows = append(table.Rows, Row{"First Name": "Eve", "Email Status": "   "})

	assert.Equal(t, 2, table.PendingCount("Email Status"))
}

func TestShortRowsArePadded(t *testing.T) {
	row := rowFromCells([]string{"A", "B", "C"}, []string{"only-a"})
	assert.Equal(t, "only-a", row["A"])
	assert.Equal(t, "", row["B"])
	assert.Equal(t, "", row["C"])
}

func TestWriteSampleCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, WriteSample(path))

	table, err := Load(path)
	require.NoError(t, err)

	assert.Contains(t, table.Headers, "First Name")
	assert.Contains(t, table.Headers, "Email Status")
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "John", table.Rows[0]["First Name"])
	assert.Equal(t, "", table.Rows[0]["Email Status"])
}

func TestWriteSampleExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.xlsx")
	require.NoError(t, WriteSample(path))

	table, err := Load(path)
	require.NoError(t, err)

	require.Len(t, table.Rows, 3)
	assert.Equal(t, "jane@example.com,jane2@example.com", table.Rows[1]["To"])
	assert.Equal(t, "secret@example.com", table.Rows[1]["BCC"])
}
