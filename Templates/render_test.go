package Templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Courier/Models"
)

var fixedNow = time.Date(2024, time.June, 5, 10, 30, 0, 0, time.UTC)

func TestRenderBuiltins(t *testing.T) {
	row := map[string]string{"First Name": "Bob"}
	out := Render("Hi {{NAME}}, today is {{DATE}}", row, Models.DefaultColumns(), fixedNow)

	assert.Equal(t, "Hi Bob, today is June 5, 2024", out)
	assert.NotContains(t, out, "{{")
}

func TestRenderEmailBuiltin(t *testing.T) {
	row := map[string]string{"To": "jane@example.com"}
	out := Render("Sent to {{EMAIL}}", row, Models.DefaultColumns(), fixedNow)

	assert.Equal(t, "Sent to jane@example.com", out)
}

func TestRenderRowColumns(t *testing.T) {
	row := map[string]string{
		"First Name":   "Jane",
		"Company":      "XYZ Inc",
		"Account Type": "premium",
	}
	out := Render("{{NAME}} at {{COMPANY}} ({{ACCOUNT_TYPE}})", row, Models.DefaultColumns(), fixedNow)

	assert.Equal(t, "Jane at XYZ Inc (premium)", out)
}

func TestRenderUnmatchedPlaceholderLeftVerbatim(t *testing.T) {
	row := map[string]string{"First Name": "Bob"}
	out := Render("Hi {{NAME}}, code {{PROMO_CODE}}", row, Models.DefaultColumns(), fixedNow)

	assert.Equal(t, "Hi Bob, code {{PROMO_CODE}}", out)
}

func TestRenderAbsentValueIsEmpty(t *testing.T) {
	row := map[string]string{"First Name": "Bob", "Company": ""}
	out := Render("Company: {{COMPANY}}.", row, Models.DefaultColumns(), fixedNow)

	assert.Equal(t, "Company: .", out)
}

func TestRenderIdempotent(t *testing.T) {
	row := map[string]string{"First Name": "Jane", "Company": "XYZ Inc"}
	template := "Dear {{NAME}} of {{COMPANY}}, {{DATE}}"

	first := Render(template, row, Models.DefaultColumns(), fixedNow)
	second := Render(template, row, Models.DefaultColumns(), fixedNow)

	assert.Equal(t, first, second)
}

func TestSubjectCustomWins(t *testing.T) {
	columns := Models.DefaultColumns()

	row := map[string]string{"Custom Subject": "Special for {{NAME}}"}
	assert.Equal(t, "Special for {{NAME}}", Subject(row, columns, "Default"))

	row = map[string]string{"Custom Subject": "   "}
	assert.Equal(t, "Default", Subject(row, columns, "Default"))

	row = map[string]string{}
	assert.Equal(t, "Default", Subject(row, columns, "Default"))
}

func TestLoadOrCreateWritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "email_template.html")

	template, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Contains(t, template, "{{NAME}}")

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplate, string(written))
}

func TestLoadOrCreateReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "email_template.html")
	custom := "<html><body>Hello {{NAME}}</body></html>"
	require.NoError(t, os.WriteFile(path, []byte(custom), 0644))

	template, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, custom, template)
	assert.False(t, strings.Contains(template, "Welcome"))
}
