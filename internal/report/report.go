// Package report renders analysis results for export: a comparison table (CSV)
// and schema-validated JSON documents.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxMissingSkillsChars bounds the Missing Skills cell before the ellipsis
const maxMissingSkillsChars = 80

// NoMissingSkills fills the Missing Skills cell when every skill matched
const NoMissingSkills = "None"

// Header is the comparison table's column row
var Header = []string{"Resume File", "Overall Fit Score", "Experience Relevance", "Missing Skills", "Strong Match"}

// Row is one line of the candidate comparison table
type Row struct {
	ResumeFile          string `json:"resume_file"`
	FitScore            string `json:"overall_fit_score"`
	ExperienceRelevance string `json:"experience_relevance"`
	MissingSkills       string `json:"missing_skills"`
	Strong              bool   `json:"strong_match"`
}

// Record returns the row as CSV cells in Header order
func (r Row) Record() []string {
	strong := "No"
	if r.Strong {
		strong = "Yes"
	}
	return []string{r.ResumeFile, r.FitScore, r.ExperienceRelevance, r.MissingSkills, strong}
}

// BuildRows converts ranked results into comparison rows, preserving their order
func BuildRows(results []types.AnalysisResult) []Row {
	rows := make([]Row, 0, len(results))
	for _, r := range results {
		state := r.State
		if state == nil {
			state = &types.AnalysisState{}
		}
		rows = append(rows, Row{
			ResumeFile:          r.Filename,
			FitScore:            fmt.Sprintf("%d%%", state.MatchPercentage),
			ExperienceRelevance: fmt.Sprintf("%d%%", int(state.SemanticSimilarity*100)),
			MissingSkills:       missingSkillsCell(state.KeywordMatches.MissingSkills),
			Strong:              ranking.IsStrongMatch(state.MatchPercentage),
		})
	}
	return rows
}

func missingSkillsCell(missing []string) string {
	if len(missing) == 0 {
		return NoMissingSkills
	}
	joined := []rune(strings.Join(missing, ", "))
	if len(joined) > maxMissingSkillsChars {
		return string(joined[:maxMissingSkillsChars]) + "..."
	}
	return string(joined)
}

// WriteCSV writes the header and rows as CSV
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.Record()); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", row.ResumeFile, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// WriteJSON validates the batch report against its schema and writes it as indented JSON.
// Nothing is written when validation fails.
func WriteJSON(w io.Writer, rep *pipeline.BatchReport) error {
	if rep == nil {
		return fmt.Errorf("batch report is nil")
	}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal batch report: %w", err)
	}
	if err := schemas.ValidateBatchReportJSON(data); err != nil {
		return fmt.Errorf("batch report failed schema validation: %w", err)
	}
	return writeLine(w, data)
}

// WriteStateJSON validates a single analysis state and writes it as indented JSON
func WriteStateJSON(w io.Writer, state *types.AnalysisState) error {
	if err := schemas.ValidateAnalysisState(state); err != nil {
		return fmt.Errorf("analysis state failed schema validation: %w", err)
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis state: %w", err)
	}
	return writeLine(w, data)
}

func writeLine(w io.Writer, data []byte) error {
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
