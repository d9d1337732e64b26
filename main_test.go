package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleContent = "content/site-content.json"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})
	version, commit, date = "1.2.3", "abcdef1", "2025-10-03"

	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "clubview 1.2.3")
	require.Contains(t, out, "abcdef1")
	require.Contains(t, out, "2025-10-03")
}

func TestValidateCommand_SampleContent(t *testing.T) {
	out, err := execute(t, "validate", "--content", sampleContent)
	require.NoError(t, err)
	require.Contains(t, out, sampleContent+": ok")
	require.Contains(t, out, "Corvettes of Durham (est. 2000)")
	require.Contains(t, out, "2 (20 photos)")
	require.Contains(t, out, "2 gold, 2 silver")
}

func TestValidateCommand_ReportsEveryProblem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	doc := `{
		"club": {"name": "", "email": "not-an-email"},
		"newsletters": [{"month": "Smarch", "year": 2024, "file": ""}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := execute(t, "validate", "--content", path)
	require.Error(t, err)
	require.Contains(t, out, "problem(s)")
	require.Contains(t, out, "club.name")
	require.Contains(t, out, "club.email")
}

func TestValidateCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "validate", "--content", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to load site content")
	require.Contains(t, err.Error(), "--content")
}

func TestSitemapCommand(t *testing.T) {
	out, err := execute(t, "sitemap", "--base", "https://club.test/")
	require.NoError(t, err)
	require.Contains(t, out, "<loc>https://club.test</loc>")
	require.Contains(t, out, "<loc>https://club.test/in-memoriam</loc>")
	require.Equal(t, 7, strings.Count(out, "<url>"))
}

func TestSitemapCommand_Output(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitemap.xml")
	out, err := execute(t, "sitemap", "--base", "https://club.test", "-o", path)
	require.NoError(t, err)
	require.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "<changefreq>yearly</changefreq>")
}

func TestURLsCommand(t *testing.T) {
	out, err := execute(t, "urls", "--content", sampleContent, "charity show")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	for _, l := range lines {
		require.True(t, strings.HasPrefix(l, "https://nebula.wsimg.com/"), l)
		require.True(t, strings.HasSuffix(l, "?AccessKeyId=65531CC4E6E01F7CEEA0&disposition=0&alloworigin=1"), l)
	}

	out, err = execute(t, "urls", "--content", sampleContent)
	require.NoError(t, err)
	require.Contains(t, out, "# Club Events (15 photos)")
	require.Contains(t, out, "# Charity Show (5 photos)")

	_, err = execute(t, "urls", "--content", sampleContent, "Nope")
	require.EqualError(t, err, `no gallery named "Nope"`)
}

func TestCacheCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	out, err := execute(t, "cache", "stats", "--path", path)
	require.NoError(t, err)
	require.Equal(t, "0 photos, 0 B\n", out)

	out, err = execute(t, "cache", "clear", "--path", path)
	require.NoError(t, err)
	require.Contains(t, out, "photo cache cleared")
}
