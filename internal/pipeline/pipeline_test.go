// Copyright Kieran C., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kieran-C/truekey-migrate/pkg/types"
)

const sampleExport = "name,url,login,password,note\n" +
	"Site,http://x,me,pw1,notehere,tk-csv-v2\n" +
	"Comma,http://c,us,p,w,1,note2,tk-csv-v2\n" +
	"note,,,,,,,,secret text,42,My Note,tk-csv-v2\n" +
	"Spacey,http://s,you,pa ss,note3,tk-csv-v2\n"

func writeInput(t *testing.T, content string) (inputPath, dir string) {
	t.Helper()
	dir = t.TempDir()
	inputPath = filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(inputPath, []byte(content), 0o644))
	return inputPath, dir
}

func TestRun_Proton(t *testing.T) {
	inputPath, dir := writeInput(t, sampleExport)
	opts := types.ConvertOptions{
		InputFile:   inputPath,
		OutputFile:  filepath.Join(dir, "out.csv"),
		NotesFile:   filepath.Join(dir, "notes.csv"),
		Format:      types.FormatProton,
		VaultName:   "Personal",
		ExportNotes: true,
	}

	var log bytes.Buffer
	res, err := Run(opts, &log)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Summary.TotalRows)
	assert.Equal(t, 3, res.Summary.LoginRows)
	assert.Equal(t, 1, res.Summary.NoteRows)
	assert.Equal(t, 1, res.Summary.PasswordCleaned)
	assert.Equal(t, 0, res.Summary.ProblemRows)
	assert.NotEmpty(t, res.RunID)

	out, err := os.ReadFile(opts.OutputFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(out), "\r\n"), "\r\n")
	require.Len(t, lines, 4, "header plus three logins")
	assert.Equal(t, `"name","url","email","username","password","note","totp","vault"`, lines[0])
	assert.Equal(t, `"Site","http://x","me","me","pw1","notehere","","Personal"`, lines[1])
	assert.Contains(t, lines[2], `"p,w,1"`, "embedded-comma password reconstructed")
	assert.Contains(t, lines[3], `"pass"`, "password whitespace stripped")

	notes, err := os.ReadFile(opts.NotesFile)
	require.NoError(t, err)
	assert.Contains(t, string(notes), `"My Note","secret text"`)
	assert.NotContains(t, string(notes), "42", "numeric artifact filtered from note body")

	assert.Contains(t, log.String(), "Converted")
}

func TestRun_1PasswordNoHeader(t *testing.T) {
	inputPath, dir := writeInput(t, sampleExport)
	opts := types.ConvertOptions{
		InputFile:  inputPath,
		OutputFile: filepath.Join(dir, "out.csv"),
		Format:     types.Format1Password,
	}

	var log bytes.Buffer
	res, err := Run(opts, &log)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Summary.LoginRows)
	assert.Equal(t, 0, res.Summary.NoteRows, "notes not exported without a notes file")

	out, err := os.ReadFile(opts.OutputFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), `"Site"`),
		"1password output must start with data, not a header")
}

func TestRun_ProblemRows(t *testing.T) {
	content := "name,url,login,password,note\n" +
		",http://x,me,pw,n,tk-csv-v2\n" + // no name
		"Site,,me,pw,n,tk-csv-v2\n" // no url
	inputPath, dir := writeInput(t, content)
	opts := types.ConvertOptions{
		InputFile:  inputPath,
		OutputFile: filepath.Join(dir, "out.csv"),
		Format:     types.FormatProton,
	}

	res, err := Run(opts, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Summary.ProblemRows)
	assert.Equal(t, 2, res.Summary.LoginRows, "problem rows are still written")
}

func TestRun_DroppedTail(t *testing.T) {
	content := "name,url,login,password,note\n" +
		"Site,http://x,me,pw,n,tk-csv-v2\n" +
		"orphan note line without terminator\n"
	inputPath, dir := writeInput(t, content)
	opts := types.ConvertOptions{
		InputFile:  inputPath,
		OutputFile: filepath.Join(dir, "out.csv"),
		Format:     types.FormatProton,
	}

	var log bytes.Buffer
	res, err := Run(opts, &log)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Summary.DroppedPartial)
	assert.Equal(t, 1, res.Summary.TotalRows)
	assert.Contains(t, log.String(), "unterminated")

	opts.StrictTail = true
	_, err = Run(opts, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mid-record")
}

func TestRun_TruncatedLoginsCounted(t *testing.T) {
	content := "name,url,login,note\n" +
		"Site,a,b,c,d,last,tk-csv-v2\n"
	inputPath, dir := writeInput(t, content)
	opts := types.ConvertOptions{
		InputFile:  inputPath,
		OutputFile: filepath.Join(dir, "out.csv"),
		Format:     types.Format1Password,
	}

	res, err := Run(opts, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Summary.TruncatedLogins)
	assert.True(t, res.Summary.HasProblems())
}

func TestRun_InvalidOptions(t *testing.T) {
	_, err := Run(types.ConvertOptions{Format: types.FormatProton}, &bytes.Buffer{})
	require.Error(t, err)

	_, err = Run(types.ConvertOptions{
		InputFile:  "in.csv",
		OutputFile: "out.csv",
		Format:     types.OutputFormat("keepass"),
	}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestWriteReadReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.yaml")

	res := &Result{
		RunID: "run-1",
		Options: types.ConvertOptions{
			InputFile:  "export.csv",
			OutputFile: "out.csv",
			Format:     types.FormatProton,
		},
		Summary: types.Summary{TotalRows: 7, LoginRows: 5, NoteRows: 2},
	}
	require.NoError(t, WriteReport(path, res))

	rep, err := ReadReport(path)
	require.NoError(t, err)
	assert.Equal(t, "run-1", rep.RunID)
	assert.Equal(t, 7, rep.Summary.TotalRows)
	assert.Equal(t, types.FormatProton, rep.Options.Format)
}
