package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		name      string
		ref       string
		wantSheet string
		wantAreas []models.PrintArea
	}{
		{"simple", "Sheet1!$A$1:$D$10", "Sheet1", []models.PrintArea{{R1: 1, C1: 1, R2: 10, C2: 4}}},
		{"quoted multiple", "'My Sheet'!$A$1:$B$2,'My Sheet'!$D$1:$E$2", "My Sheet",
			[]models.PrintArea{{R1: 1, C1: 1, R2: 2, C2: 2}, {R1: 1, C1: 4, R2: 2, C2: 5}}},
		{"single cell", "Sheet1!$A$1", "Sheet1", nil},
		{"no sheet", "$A$1:$B$2", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, areas := parsePrintAreaReference(tt.ref)
			assert.Equal(t, tt.wantSheet, sheet)
			assert.Equal(t, tt.wantAreas, areas)
		})
	}
}

func TestReadPrintAreas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     PrintAreaName,
		RefersTo: "Sheet1!$A$1:$C$5",
		Scope:    "Sheet1",
	}))
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "Totals",
		RefersTo: "Sheet1!$D$1:$D$5",
	}))

	path := filepath.Join(t.TempDir(), "areas.xlsx")
	require.NoError(t, f.SaveAs(path))
	reopened, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer reopened.Close()

	areas := ReadPrintAreas(reopened)
	assert.Equal(t, map[string][]models.PrintArea{
		"Sheet1": {{R1: 1, C1: 1, R2: 5, C2: 3}},
	}, areas)
}
