package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/pipeline"
)

func TestCommands_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "analyze without --resume",
			args:        []string{"analyze", "--job", "job.txt"},
			errorString: "required",
		},
		{
			name:        "analyze without --job",
			args:        []string{"analyze", "--resume", "resume.txt"},
			errorString: "--job is required",
		},
		{
			name:        "batch with missing job file",
			args:        []string{"batch", "--job", "job.txt"},
			errorString: "job file not found",
		},
		{
			name:        "profile without --resume",
			args:        []string{"profile"},
			errorString: "required",
		},
		{
			name:        "invalid keyword weight",
			args:        []string{"keywords", "--resume", "r.txt", "--job", "j.txt", "--keyword-weight", "2"},
			errorString: "'keyword_weight' must be at most 1",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestBatchCommand_WritesReports(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	jobPath := writeTemp(t, dir, "job.txt", testJob)
	resumes := filepath.Join(dir, "resumes")
	require.NoError(t, os.Mkdir(resumes, 0755))
	writeTemp(t, resumes, "jane.txt", testResume)
	writeTemp(t, resumes, "short.txt", "too short")
	outPath := filepath.Join(dir, "out", "report.json")
	csvPath := filepath.Join(dir, "out", "table.csv")

	cmd := exec.Command(binaryPath, "batch", "--job", jobPath, "--resumes", resumes, "--out", outPath, "--csv", csvPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	assert.Contains(t, string(output), "Analyzing 1/2: jane.txt...")
	assert.Contains(t, string(output), "BATCH SUMMARY")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var rep pipeline.BatchReport
	require.NoError(t, json.Unmarshal(data, &rep))
	require.Len(t, rep.Results, 1)
	assert.Len(t, rep.Skipped, 1)

	table, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(table)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "jane.txt", records[1][0])
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	jobPath := writeTemp(t, dir, "job.txt", testJob)
	resumePath := writeTemp(t, dir, "jane.txt", testResume)

	cmd := exec.Command(binaryPath, "analyze", "--job", jobPath, "--resume", resumePath, "--json")
	output, err := cmd.Output()
	require.NoError(t, err)

	var state map[string]any
	require.NoError(t, json.Unmarshal(output, &state))
	assert.Contains(t, state, "match_percentage")
	assert.Contains(t, state, "suggested_changes")
}

func TestProgressPrinter(t *testing.T) {
	var buf bytes.Buffer
	progress := progressPrinter(&buf)

	progress(pipeline.ProgressEvent{Index: 1, Total: 3, Filename: "jane.pdf", Status: pipeline.StatusAnalyzing})
	progress(pipeline.ProgressEvent{Index: 1, Total: 3, Filename: "jane.pdf", Status: pipeline.StatusDone})
	progress(pipeline.ProgressEvent{Index: 2, Total: 3, Filename: "bad.pdf", Status: pipeline.StatusFailed, Message: "boom"})
	progress(pipeline.ProgressEvent{Index: 3, Total: 3, Filename: "tiny.txt", Status: pipeline.StatusSkipped, Message: "insufficient text content"})

	assert.Equal(t, "Analyzing 1/3: jane.pdf...\nFailed 2/3: bad.pdf: boom\nSkipped 3/3: tiny.txt: insufficient text content\n", buf.String())
}
