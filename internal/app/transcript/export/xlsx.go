package export

import (
	"io"
	"strings"

	"github.com/tealeg/xlsx"

	"audio-transcript/internal/app/model"
)

const SheetName = "Transcript"

// ToExcel writes one row per turn. Lines of a turn share a cell, newline separated.
func ToExcel(w io.Writer, transcript model.Transcript) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "Timestamp"
	headerRow.AddCell().Value = "Speaker"
	headerRow.AddCell().Value = "Text"

	for _, turn := range transcript {
		row := sheet.AddRow()
		row.AddCell().Value = turn.Timestamp
		row.AddCell().Value = turn.Speaker
		row.AddCell().Value = strings.Join(turn.Lines, "\n")
	}

	return file.Write(w)
}
