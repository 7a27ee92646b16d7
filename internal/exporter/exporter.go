// Package exporter materializes aggregated team rows as .xlsx workbooks and
// manages the output directory they live in.
//
// A workbook is written in two phases: CreateWorkbook lays out the header row
// and cell styling before the fetch starts, WriteRows reopens the saved file
// and fills in the data once the batch has settled. The second phase must not
// disturb what the first wrote.
package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/magber/frc-fetcher/internal/fetcher"
	"github.com/xuri/excelize/v2"
)

const (
	widthTeam    = 10
	widthMetric  = 12
	widthAwards  = 55
	widthSummary = 12
)

// Exporter writes workbooks under a single output directory.
type Exporter struct {
	outputDir string
}

// New creates an Exporter rooted at outputDir.
func New(outputDir string) *Exporter {
	return &Exporter{outputDir: outputDir}
}

// Filename returns the workbook name for a run: {year}{code}.xlsx, with a
// _deep suffix for deep-search runs.
func (e *Exporter) Filename(p Params) string {
	suffix := ""
	if p.Deep {
		suffix = "_deep"
	}
	return fmt.Sprintf("%d%s%s.xlsx", p.EventYear, p.EventCode, suffix)
}

func sheetName(p Params) string {
	return fmt.Sprintf("%d %s Data", p.EventYear, p.EventCode)
}

// CreateWorkbook writes the header row, column widths, and cell styles for a
// run, replacing any pre-existing file of the same name. It returns the full
// path of the saved workbook.
func (e *Exporter) CreateWorkbook(p Params) (string, error) {
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output folder: %w", err)
	}

	fullname := filepath.Join(e.outputDir, e.Filename(p))
	if err := os.Remove(fullname); err == nil {
		log.Info("Removed existing file", "filename", e.Filename(p))
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := sheetName(p)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := []string{"Team"}
	for year := p.StartYear; year <= p.EndYear; year++ {
		headers = append(headers, fmt.Sprintf("%d EPA", year), fmt.Sprintf("%d Rank", year), fmt.Sprintf("%d Awards", year))
	}
	if p.Summary {
		headers = append(headers, "Wins", "Finalists", "Impact", "EI")
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return "", err
		}
	}

	if err := e.applyLayout(f, sheet, p); err != nil {
		return "", err
	}

	if err := f.SaveAs(fullname); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return fullname, nil
}

// applyLayout sets column widths, wrap text on award columns, and centered
// alignment on the numeric columns, covering the header plus TeamCount rows.
func (e *Exporter) applyLayout(f *excelize.File, sheet string, p Params) error {
	setWidth := func(col int, width float64) error {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		return f.SetColWidth(sheet, name, name, width)
	}

	if err := setWidth(1, widthTeam); err != nil {
		return err
	}
	for y := 0; y < p.Years(); y++ {
		base := 2 + y*3
		if err := setWidth(base, widthMetric); err != nil {
			return err
		}
		if err := setWidth(base+1, widthMetric); err != nil {
			return err
		}
		if err := setWidth(base+2, widthAwards); err != nil {
			return err
		}
	}
	if p.Summary {
		for col := 2 + p.Years()*3; col <= p.Columns(); col++ {
			if err := setWidth(col, widthSummary); err != nil {
				return err
			}
		}
	}

	wrap, err := f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"}})
	if err != nil {
		return err
	}
	center, err := f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{Horizontal: "center"}})
	if err != nil {
		return err
	}

	lastRow := p.TeamCount + 1
	styleRange := func(col, fromRow, toRow, styleID int) error {
		top, err := excelize.CoordinatesToCellName(col, fromRow)
		if err != nil {
			return err
		}
		bottom, err := excelize.CoordinatesToCellName(col, toRow)
		if err != nil {
			return err
		}
		return f.SetCellStyle(sheet, top, bottom, styleID)
	}

	// Award cells wrap; everything else is centered.
	if err := styleRange(1, 1, lastRow, center); err != nil {
		return err
	}
	for y := 0; y < p.Years(); y++ {
		base := 2 + y*3
		if err := styleRange(base, 1, lastRow, center); err != nil {
			return err
		}
		if err := styleRange(base+1, 1, lastRow, center); err != nil {
			return err
		}
		if err := styleRange(base+2, 2, lastRow, wrap); err != nil {
			return err
		}
	}
	if p.Summary {
		for col := 2 + p.Years()*3; col <= p.Columns(); col++ {
			if err := styleRange(col, 1, lastRow, center); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteRows reopens a workbook written by CreateWorkbook and fills in the
// data rows starting immediately below the header. Cells are addressed
// individually so the pre-styled cells keep their styling.
func (e *Exporter) WriteRows(path string, p Params, rows []fetcher.Row) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := sheetName(p)
	for i, row := range rows {
		for j, value := range row.Cells() {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	log.Info("Data export complete", "path", path, "rows", len(rows))
	return nil
}

// ListFiles returns the output files, newest first. A missing output
// directory yields an empty listing.
func (e *Exporter) ListFiles() ([]FileInfo, error) {
	entries, err := os.ReadDir(e.outputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []FileInfo{}, nil
		}
		return nil, fmt.Errorf("failed to read output folder: %w", err)
	}

	files := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xlsx") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Name:     entry.Name(),
			Size:     info.Size(),
			Modified: info.ModTime().UnixMilli(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Modified > files[j].Modified })
	return files, nil
}

// Resolve validates a user-supplied filename and returns its path inside the
// output directory. Only existing .xlsx base names resolve.
func (e *Exporter) Resolve(name string) (string, error) {
	if filepath.Base(name) != name || !strings.HasSuffix(name, ".xlsx") {
		return "", ErrNotFound
	}
	path := filepath.Join(e.outputDir, name)
	if _, err := os.Stat(path); err != nil {
		return "", ErrNotFound
	}
	return path, nil
}

// Delete removes a file from the output directory.
func (e *Exporter) Delete(name string) error {
	path, err := e.Resolve(name)
	if err != nil {
		return err
	}
	return os.Remove(path)
}
