// Package excel loads extra character sets from Excel or CSV files, so a
// deployment can extend the embedded library (rare kana variants, custom
// kanji lists) without a rebuild.
package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/kanasensei/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath           string // Path to the Excel or CSV file
	KanaColumn         string // Column with the glyph
	RomajiColumn       string // Column with the romanization
	TypeColumn         string // Column with the script type
	ExampleColumn      string // Column with the example word
	ExampleRomaji      string // Column with the example romanization
	ExampleTranslation string // Column with the example translation
	NoteColumn         string // Column with an optional note
	OnyomiColumn       string // Column with on'yomi readings (kanji rows)
	KunyomiColumn      string // Column with kun'yomi readings (kanji rows)
	MeaningColumn      string // Column with the meaning (kanji rows)
	SheetName          string // Name of the sheet to import
	StartRow           int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig(path string) ImportConfig {
	return ImportConfig{
		FilePath:           path,
		KanaColumn:         "A",
		RomajiColumn:       "B",
		TypeColumn:         "C",
		ExampleColumn:      "D",
		ExampleRomaji:      "E",
		ExampleTranslation: "F",
		NoteColumn:         "G",
		OnyomiColumn:       "H",
		KunyomiColumn:      "I",
		MeaningColumn:      "J",
		SheetName:          "Sheet1",
		StartRow:           2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
}

// validTypes is the set of script types an import row may declare
var validTypes = map[models.ScriptType]bool{
	models.ScriptHiragana:           true,
	models.ScriptKatakana:           true,
	models.ScriptKanji:              true,
	models.ScriptHiraganaDakuten:    true,
	models.ScriptHiraganaHandakuten: true,
	models.ScriptHiraganaYoon:       true,
	models.ScriptKatakanaDakuten:    true,
	models.ScriptKatakanaHandakuten: true,
	models.ScriptKatakanaYoon:       true,
	models.ScriptKatakanaExtended:   true,
}

// ImportCharacters reads extra characters from an Excel or CSV file
func ImportCharacters(config ImportConfig) ([]models.Character, *ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(config)
	}
	return importFromExcel(config)
}

// importFromExcel reads characters from an Excel file
func importFromExcel(config ImportConfig) ([]models.Character, *ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get rows: %v", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	var chars []models.Character
	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++
		c, err := parseRow(row, config)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		chars = append(chars, c)
		result.Imported++
	}
	return chars, result, nil
}

// importFromCSV reads characters from a CSV file with the same column
// layout as the Excel variant
func importFromCSV(config ImportConfig) ([]models.Character, *ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	result := &ImportResult{Errors: make([]string, 0)}
	var chars []models.Character
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("error reading CSV: %v", err)
		}
		rowNum++
		if rowNum < config.StartRow {
			continue
		}
		result.TotalProcessed++
		c, err := parseRow(row, config)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		chars = append(chars, c)
		result.Imported++
	}
	return chars, result, nil
}

// parseRow turns one spreadsheet row into a character
func parseRow(row []string, config ImportConfig) (models.Character, error) {
	cell := func(column string) string {
		if idx := columnToIndex(column); idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	kana := cell(config.KanaColumn)
	romaji := cell(config.RomajiColumn)
	scriptType := models.ScriptType(cell(config.TypeColumn))

	if kana == "" {
		return models.Character{}, fmt.Errorf("kana cannot be empty")
	}
	if romaji == "" && scriptType != models.ScriptKanji {
		return models.Character{}, fmt.Errorf("romaji cannot be empty")
	}
	if !validTypes[scriptType] {
		return models.Character{}, fmt.Errorf("unknown script type: %q", scriptType)
	}

	c := models.Character{
		Char:    kana,
		Romaji:  romaji,
		Type:    scriptType,
		Note:    cell(config.NoteColumn),
		Onyomi:  cell(config.OnyomiColumn),
		Kunyomi: cell(config.KunyomiColumn),
		Meaning: cell(config.MeaningColumn),
	}
	if word := cell(config.ExampleColumn); word != "" {
		c.Example = &models.Example{
			Word:        word,
			Romaji:      cell(config.ExampleRomaji),
			Translation: cell(config.ExampleTranslation),
		}
	}
	return c, nil
}

// Helper function to convert Excel column letter to index
func columnToIndex(column string) int {
	column = strings.ToUpper(column)
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}
