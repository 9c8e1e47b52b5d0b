package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testPlanning() *entity.Planning {
	day := func(d int) time.Time { return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC) }

	return &entity.Planning{
		Template: "Est",
		Start:    day(3),
		End:      day(5),
		Tasks: []*entity.PlannedTask{
			{
				ID:       "2025-03-03T00:00:00.000Z-TDS3",
				DayTask:  entity.DayTask{Date: day(3), DayLabel: "Lundi", WeekLabel: "Semaine 1", Task: "TDS3"},
				SubTasks: []*entity.SubTask{{Text: "Ouvrir"}, {Text: "Fermer"}},
			},
			{
				ID:       "2025-03-04T00:00:00.000Z-TDS3",
				DayTask:  entity.DayTask{Date: day(4), DayLabel: "Mardi", WeekLabel: "Semaine 1", Task: "TDS3"},
				SubTasks: []*entity.SubTask{},
			},
			{
				ID:      "2025-03-05T00:00:00.000Z-S3N",
				DayTask: entity.DayTask{Date: day(5), DayLabel: "Mercredi", WeekLabel: "Semaine 1", Task: "S3N"},
			},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, testPlanning()))

	expected := "Planning Est - Du 03/03/2025 au 05/03/2025\n\n" +
		"Date\tJour\tType de Semaine\tTâche\tSous-tâches\n" +
		"03/03/2025\tLundi\tSemaine 1\tTDS3\tOuvrir, Fermer\n" +
		"04/03/2025\tMardi\tSemaine 1\tTDS3\t\n" +
		"05/03/2025\tMercredi\tSemaine 1\tS3N\t\n"
	assert.Equal(t, expected, buf.String())
}

func TestExportRoundTrip(t *testing.T) {
	p := testPlanning()

	var xlsxBuf, textBuf bytes.Buffer
	require.NoError(t, Write(&xlsxBuf, FormatXLSX, p))
	require.NoError(t, Write(&textBuf, FormatText, p))

	f, err := excelize.OpenReader(&xlsxBuf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, len(p.Tasks)+1)
	assert.Equal(t, Columns, rows[0])

	lines := strings.Split(strings.TrimSuffix(textBuf.String(), "\n"), "\n")
	require.Len(t, lines, len(p.Tasks)+3)

	for i := range p.Tasks {
		textCells := strings.Split(lines[i+3], "\t")
		xlsxCells := rows[i+1]

		// Date, Jour and Tâche must agree between both formats
		for _, col := range []int{0, 1, 3} {
			assert.Equal(t, textCells[col], xlsxCells[col], "row %d col %d", i, col)
		}
	}
	assert.Equal(t, "Ouvrir, Fermer", rows[1][4])
}

func TestExportRoundTrip_ControlCharacters(t *testing.T) {
	p := testPlanning()
	p.Tasks[1].SubTasks = []*entity.SubTask{{Text: "ligne 1\nligne 2\tcol"}, {Text: "fin\r\n"}}

	var xlsxBuf, textBuf bytes.Buffer
	require.NoError(t, Write(&xlsxBuf, FormatXLSX, p))
	require.NoError(t, Write(&textBuf, FormatText, p))

	f, err := excelize.OpenReader(&xlsxBuf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, len(p.Tasks)+1)

	lines := strings.Split(strings.TrimSuffix(textBuf.String(), "\n"), "\n")
	require.Len(t, lines, len(p.Tasks)+3)

	textCells := strings.Split(lines[4], "\t")
	require.Len(t, textCells, len(Columns))
	assert.Equal(t, "ligne 1 ligne 2 col, fin", textCells[4])
	assert.Equal(t, textCells, rows[2])
}

func TestRow_ReplacesControlCharacters(t *testing.T) {
	task := &entity.PlannedTask{
		DayTask: entity.DayTask{
			Date:      time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
			DayLabel:  "Lundi",
			WeekLabel: "Semaine\t1",
			Task:      "TDS3\n",
		},
		SubTasks: []*entity.SubTask{{Text: "a\r\nb"}},
	}
	assert.Equal(t, []string{"03/03/2025", "Lundi", "Semaine 1", "TDS3", "a b"}, Row(task))
}

func TestWriteXLSX_ColumnWidths(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, testPlanning()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	for col, want := range map[string]float64{"A": 12, "B": 12, "C": 20, "D": 40, "E": 40} {
		got, err := f.GetColWidth(SheetName, col)
		require.NoError(t, err)
		assert.Equal(t, want, got, "column %s", col)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "pdf", testPlanning())
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	p := testPlanning()
	assert.Equal(t, "Planning_Est_03-03-2025_05-03-2025.xlsx", FileName(p, FormatXLSX))
	assert.Equal(t, "Planning_Est_03-03-2025_05-03-2025.txt", FileName(p, FormatText))
}

func TestContentType(t *testing.T) {
	assert.Contains(t, ContentType(FormatXLSX), "spreadsheetml")
	assert.Equal(t, "text/plain; charset=utf-8", ContentType(FormatText))
}
