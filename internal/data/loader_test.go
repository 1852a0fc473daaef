package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoad_ReadsAndSortsRecords(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "races_2021.json", `[
		{"id":"202105021211","date":"2021-10-31","venue":"Tokyo","distance":2000,"entries":[]},
		{"id":"202105021201","date":"2021-03-07","venue":"Tokyo","distance":1400,"entries":[]}
	]`)
	writeFile(t, dir, "races_2020.json", `[
		{"id":"202005021211","date":"2020-06-07","venue":"Hanshin","distance":1600,"entries":[]}
	]`)
	writeFile(t, dir, "notes.txt", "not json")

	records, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Sorted by date regardless of source file.
	assert.Equal(t, "202005021211", records[0].ID)
	assert.Equal(t, "202105021201", records[1].ID)
	assert.Equal(t, "202105021211", records[2].ID)
}

func TestLoad_SkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "good.json", `[{"id":"a","date":"2022-01-05","entries":[]}]`)
	writeFile(t, dir, "broken.json", `{"this is": "not an array"`)

	records, err := Load(dir)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "a", records[0].ID)
}

func TestLoad_MissingDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestGroupByYear(t *testing.T) {
	records := []RaceRecord{
		{ID: "a", Date: "2020-01-01"},
		{ID: "b", Date: "2021-05-12"},
		{ID: "c", Date: "2020-12-28"},
		{ID: "d", Date: "garbage"},
	}

	grouped := GroupByYear(records)
	assert.Len(t, grouped[2020], 2)
	assert.Len(t, grouped[2021], 1)
	assert.Len(t, grouped[0], 1)

	selected := SelectYears(grouped, []int{2020, 2021})
	require.Len(t, selected, 3)
	assert.Equal(t, "a", selected[0].ID)

	assert.Empty(t, SelectYears(grouped, []int{1999}))
}
