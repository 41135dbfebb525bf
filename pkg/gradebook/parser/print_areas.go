package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

// PrintAreaName is the defined name that holds a sheet's print area.
const PrintAreaName = "_xlnm.Print_Area"

// ReadPrintAreas returns the print areas defined in a workbook, keyed by sheet name.
func ReadPrintAreas(f *excelize.File) map[string][]models.PrintArea {
	result := make(map[string][]models.PrintArea)
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, PrintAreaName) {
			continue
		}
		sheet, areas := parsePrintAreaReference(dn.RefersTo)
		if sheet != "" && len(areas) > 0 {
			result[sheet] = append(result[sheet], areas...)
		}
	}
	return result
}

// parsePrintAreaReference splits 'Sheet'!$A$1:$D$10[,...] into a sheet name and areas.
func parsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var sheet string
	var areas []models.PrintArea
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		if sheet == "" {
			sheet = strings.Trim(part[:idx], "'")
		}
		if a, ok := parseRange(part[idx+1:]); ok {
			areas = append(areas, a)
		}
	}
	return sheet, areas
}

func parseRange(s string) (models.PrintArea, bool) {
	ends := strings.Split(strings.ReplaceAll(s, "$", ""), ":")
	if len(ends) != 2 {
		return models.PrintArea{}, false
	}
	c1, r1, err := excelize.CellNameToCoordinates(ends[0])
	if err != nil {
		return models.PrintArea{}, false
	}
	c2, r2, err := excelize.CellNameToCoordinates(ends[1])
	if err != nil {
		return models.PrintArea{}, false
	}
	return models.PrintArea{R1: r1, C1: c1, R2: r2, C2: c2}, true
}
