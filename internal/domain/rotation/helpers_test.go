package rotation

import (
	"testing"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain"
	"github.com/diegoclair/gpns-planner/internal/domain/entity"
	"github.com/stretchr/testify/require"
)

var header = []string{"", "Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi"}

func estTemplate(t *testing.T) *entity.Template {
	t.Helper()
	tpl, err := entity.NewTemplate("Est", entity.Rotation{Kind: entity.RotationWeekOfMonth}, [][]string{
		header,
		{"Semaine 1", "TDS3", "TDS3", "S3N", "TBF", "TBF"},
		{"Semaine 2", "T2F", "T2F", "T2F", "TBM", "TBM"},
		{"Semaine 3", "QSE", "TCN", "PARACHUTE", "TME", "TME"},
		{"Semaine 4", "TBS4", "TBS4", "T2G", "ZONES FUMEURS EST", "RETRAIT ENCOMBRANTS"},
	})
	require.NoError(t, err)
	return tpl
}

func ouestTemplate(t *testing.T) *entity.Template {
	t.Helper()
	tpl, err := entity.NewTemplate("Ouest", entity.Rotation{Kind: entity.RotationSixPhase, Reference: domain.DefaultCycleReference}, [][]string{
		header,
		{"Semaine paire 1", "TERMINAL1", "TERMINAL1", "TERMINAL 3", "T2AC", "T2BD"},
		{"Semaine impaire 1", "NIV -4 TME", "NIV -4 TME", "LIAISON TME-T2F", "CATHEDRALE", "CATHEDRALE"},
		{"Semaine paire 2", "TERMINAL1", "TERMINAL1", "TERMINAL 3", "T2AC", "T2BD"},
		{"Semaine impaire 2", "NIV -2TBS4", "NIV -2TBS4", "LIAISON TDS3-TME", "NIV -2 TDS3", "NIV -2 TDS3"},
		{"Semaine paire 3", "TERMINAL1", "TERMINAL1", "TERMINAL 3", "T2AC", "T2BD"},
		{"Semaine impaire 3", "LIAISON TME / ARRIVÉES E", "LIAISON QSE-TBM", "LIAISON QSE - STOCKEUR", "SATELLITE T1", "RETRAIT ENCOMBRANTS ET ZONES FUMEURS OUEST"},
	})
	require.NoError(t, err)
	return tpl
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
