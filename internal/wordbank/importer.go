package wordbank

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go_5_vocab_cards/internal/model"
	"go_5_vocab_cards/internal/webutil"

	"github.com/xuri/excelize/v2"
)

// ImportConfig は取り込みファイルの形式。列は A=トルコ語, B=英語, C=レベル 固定。
type ImportConfig struct {
	SheetName  string // 空なら最初のシート (xlsx のみ)
	SkipHeader bool
}

func DefaultImportConfig() ImportConfig {
	return ImportConfig{SkipHeader: true}
}

// ParseResult は読み取った行と、読み飛ばした行のエラー
type ParseResult struct {
	Rows   []model.ImportWordRow
	Errors []string
}

var ErrUnsupportedFormat = errors.New("wordbank: unsupported file format")

// ReadFile は拡張子 (.xlsx / .csv) で形式を判定して読み込みます。
func ReadFile(path string, cfg ImportConfig) (*ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordbank.ReadFile: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ReadXLSX(f, cfg)
	case ".csv":
		return ReadCSV(f, cfg)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
}

func ReadXLSX(r io.Reader, cfg ImportConfig) (*ParseResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := cfg.SheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %q: %w", sheet, err)
	}

	result := &ParseResult{}
	for i, row := range rows {
		if cfg.SkipHeader && i == 0 {
			continue
		}
		result.add(i+1, row)
	}
	return result, nil
}

func ReadCSV(r io.Reader, cfg ImportConfig) (*ParseResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	result := &ParseResult{}
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rowNum++
		if cfg.SkipHeader && rowNum == 1 {
			continue
		}
		result.add(rowNum, row)
	}
	return result, nil
}

// add は1行を検証して追加する。空行は黙って飛ばす。
func (p *ParseResult) add(rowNum int, cells []string) {
	get := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}
	turkish, english, levelCell := get(0), get(1), get(2)
	if turkish == "" && english == "" && levelCell == "" {
		return
	}

	level, err := model.ParseLevel(levelCell)
	if err != nil {
		p.Errors = append(p.Errors, fmt.Sprintf("Row %d: invalid level %q", rowNum, levelCell))
		return
	}
	row := model.ImportWordRow{Turkish: turkish, English: english, Level: level}
	if err := webutil.ValidateStruct(row); err != nil {
		p.Errors = append(p.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		return
	}
	p.Rows = append(p.Rows, row)
}
