package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/florianjehn/Seaweed-Scaleup-Model/internal/seaweed"
)

func TestWriteClusterRun(t *testing.T) {
	interval := 20
	wet := 2400.0
	records := []seaweed.DailyRecord{
		{Day: 0, GrowthMultiplier: 1.025, AreaBuilt: 1, AreaUsed: 1, Seaweed: 1.025, Density: 1.025},
		{
			Day: 1, GrowthMultiplier: 1.025, AreaBuilt: 1, AreaUsed: 1,
			Seaweed: 1200, Density: 1200, CumulativeFood: wet,
			HarvestInterval: &interval, HarvestWet: &wet, HarvestForFood: &wet,
		},
	}

	results := t.TempDir()
	require.NoError(t, WriteClusterRun(results, "austral", "150tg", 2, records, 5000, 12345.6))

	f, err := os.Open(filepath.Join(results, "austral", "150tg", "harvest_df_cluster_2.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, clusterHeader, rows[0])
	byName := func(row []string, name string) string {
		for i, h := range rows[0] {
			if h == name {
				return row[i]
			}
		}
		t.Fatalf("no column %q", name)
		return ""
	}

	// harvest-only fields are empty on the quiet day
	assert.Equal(t, "", byName(rows[1], "harvest_interval"))
	assert.Equal(t, "", byName(rows[1], "harvest_wet"))
	assert.Equal(t, "0", byName(rows[1], "day"))

	assert.Equal(t, "20", byName(rows[2], "harvest_interval"))
	assert.Equal(t, "2400", byName(rows[2], "harvest_wet"))
	assert.Equal(t, "2", byName(rows[2], "cluster"))
	assert.Equal(t, "5000", byName(rows[2], "max_area"))
	assert.Equal(t, "12345.6", byName(rows[2], "seaweed_needed_per_day"))
}

func TestWriteGrowthRateSummary(t *testing.T) {
	results := t.TempDir()
	rows := []GrowthRateRow{
		{Scenario: "150tg", Cluster: 1, MeanGrowthRate: 0.42},
		{Scenario: "150tg", Cluster: 2, MeanGrowthRate: 0.17},
	}
	require.NoError(t, WriteGrowthRateSummary(results, "austral", rows))

	f, err := os.Open(filepath.Join(results, "austral", "scenario_max_growth_rates.csv"))
	require.NoError(t, err)
	defer f.Close()
	got, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"scenario", "cluster", "max_growth_rate"}, got[0])
	assert.Equal(t, []string{"150tg", "1", "0.42"}, got[1])
	assert.Equal(t, []string{"150tg", "2", "0.17"}, got[2])
}
