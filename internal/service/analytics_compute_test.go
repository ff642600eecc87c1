package service

import (
	"Lucky99/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFrequencyOrderIndependent(t *testing.T) {
	runs := []*model.GameRun{
		{Predictions: model.IntList{1, 2, 3}},
		{Predictions: model.IntList{3, 4}},
		{Predictions: model.IntList{2, 3}},
	}
	reversed := []*model.GameRun{runs[2], runs[1], runs[0]}

	pick := func(r *model.GameRun) model.IntList { return r.Predictions }
	assert.Equal(t, buildFrequency(runs, pick), buildFrequency(reversed, pick))
	assert.Equal(t, map[int]int{1: 1, 2: 2, 3: 3, 4: 1}, buildFrequency(runs, pick))
}

func TestBuildHeatmapCorners(t *testing.T) {
	freq := map[int]int{1: 5, 10: 3, 11: 2, 99: 7}
	grid := buildHeatmap(freq)

	require.Len(t, grid, 10)
	for _, row := range grid {
		require.Len(t, row, 10)
	}
	assert.Equal(t, 5, grid[0][0])
	assert.Equal(t, 3, grid[0][9])
	assert.Equal(t, 2, grid[1][0])
	assert.Equal(t, 7, grid[9][8])
	// 99 是最大值，最后一格永远为空
	assert.Equal(t, 0, grid[9][9])
}

func TestBuildHeatmapIgnoresOutOfRange(t *testing.T) {
	grid := buildHeatmap(map[int]int{0: 3, 100: 4, -5: 1})
	for _, row := range grid {
		for _, cell := range row {
			assert.Equal(t, 0, cell)
		}
	}
}

func TestBuildBiasMetricsExpectedPercentages(t *testing.T) {
	metrics := buildBiasMetrics(map[int]int{})
	byName := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		byName[m.Name] = m.ExpectedPct
		// 没有数据时观测值为 0，不做除零
		assert.Equal(t, 0.0, m.ObservedPct)
	}

	assert.InDelta(t, 25.0/99*100, byName["prime"], 1e-9)
	assert.InDelta(t, 49.0/99*100, byName["even"], 1e-9)
	assert.InDelta(t, 50.0/99*100, byName["odd"], 1e-9)
	assert.InDelta(t, 10.0/99*100, byName["lucky_sevens"], 1e-9)
	assert.InDelta(t, 9.0/99*100, byName["repeating_digits"], 1e-9)
	assert.InDelta(t, 2.0/99*100, byName["unlucky_13_31"], 1e-9)
	assert.InDelta(t, 19.0/99*100, byName["multiple_of_5"], 1e-9)
	assert.InDelta(t, 33.0/99*100, byName["small_1_33"], 1e-9)
	assert.InDelta(t, 33.0/99*100, byName["mid_34_66"], 1e-9)
	assert.InDelta(t, 33.0/99*100, byName["large_67_99"], 1e-9)
}

func TestBuildBiasMetricsObserved(t *testing.T) {
	// 全部是偶数
	metrics := buildBiasMetrics(map[int]int{2: 3, 4: 2, 66: 5})
	for _, m := range metrics {
		switch m.Name {
		case "even":
			assert.InDelta(t, 100.0, m.ObservedPct, 1e-9)
			assert.InDelta(t, 100.0-49.0/99*100, m.Deviation, 1e-9)
		case "odd":
			assert.InDelta(t, 0.0, m.ObservedPct, 1e-9)
		}
	}
}

func TestRandomnessScore(t *testing.T) {
	// 只选 7：素数和偶数都严重偏离
	biased := buildBiasMetrics(map[int]int{7: 10})
	assert.Equal(t, 75, randomnessScore(biased))

	// 空数据观测值全 0：素数偏 -25.25、偶数偏 -49.49 都超过阈值
	empty := buildBiasMetrics(map[int]int{})
	assert.Equal(t, 75, randomnessScore(empty))

	// 只选重复数字：素数偏离（11 是素数占 100%）、偶数偏离、重复占比超 10%
	repeating := buildBiasMetrics(map[int]int{11: 10})
	assert.Equal(t, 65, randomnessScore(repeating))
}

func TestBuildGlobalAnalytics(t *testing.T) {
	runs := []*model.GameRun{
		{Email: "a@x.com", Score: 3, Predictions: model.IntList{1, 2}, RandomNumbers: model.IntList{2, 3}},
		{Email: "a@x.com", Score: 5, Predictions: model.IntList{2, 4}, RandomNumbers: model.IntList{4, 5}},
		{Email: "b@x.com", Score: 5, Predictions: model.IntList{9, 10}, RandomNumbers: model.IntList{10, 11}},
	}

	out := buildGlobalAnalytics(runs)
	assert.Equal(t, 3, out.TotalGames)
	assert.Equal(t, 2, out.TotalPlayers)
	assert.Equal(t, 5, out.BestScore)
	assert.InDelta(t, 13.0/3, out.AvgScore, 1e-9)
	assert.InDelta(t, 13.0/3/10*100, out.HitRatePct, 1e-9)
	assert.Equal(t, map[int]int{3: 1, 5: 2}, out.ScoreDistribution)
	assert.Equal(t, 2, out.PredictionFrequency[2])
	assert.Equal(t, 1, out.RandomFrequency[11])
	require.Len(t, out.PredictionHeatmap, 10)
	require.Len(t, out.RandomHeatmap, 10)
	assert.NotEmpty(t, out.PredictionBias)
	assert.NotEmpty(t, out.RandomBias)
}

func TestBuildGlobalAnalyticsEmpty(t *testing.T) {
	out := buildGlobalAnalytics(nil)
	assert.Equal(t, 0, out.TotalGames)
	assert.Equal(t, 0, out.TotalPlayers)
	assert.Equal(t, 0.0, out.AvgScore)
	assert.Equal(t, 0.0, out.HitRatePct)
	assert.NotNil(t, out.ScoreDistribution)
}

func TestBuildUserAnalytics(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	// 12 局，最新在前，每局间隔一天
	runs := make([]*model.GameRun, 0, 12)
	for i := 0; i < 12; i++ {
		runs = append(runs, &model.GameRun{
			Email:         "alice@demo.com",
			Score:         i % 4,
			Predictions:   model.IntList{1, 2},
			RandomNumbers: model.IntList{3, 4},
			CreatedAt:     now.AddDate(0, 0, -i),
		})
	}

	out := buildUserAnalytics(runs, now)
	assert.Equal(t, 12, out.TotalGames)
	assert.Equal(t, 3, out.BestScore)
	assert.Equal(t, 0, out.LatestScore)
	require.NotNil(t, out.FirstGameAt)
	assert.Equal(t, now.AddDate(0, 0, -11), *out.FirstGameAt)
	// 最近 7 天（不含恰好 7 天前）有 7 局
	assert.Equal(t, 7, out.GamesLastWeek)

	// 走势取最近 10 局，按时间正序
	require.Len(t, out.ScoreTrend, 10)
	assert.Equal(t, runs[9].Score, out.ScoreTrend[0])
	assert.Equal(t, runs[0].Score, out.ScoreTrend[9])

	require.Len(t, out.RecentRuns, 10)
	assert.Equal(t, runs[0].Score, out.RecentRuns[0].Score)
}

func TestBuildUserAnalyticsFavoriteTiesKeepEncounterOrder(t *testing.T) {
	now := time.Now()
	runs := []*model.GameRun{
		{Score: 1, Predictions: model.IntList{1, 2, 3}, CreatedAt: now},
		{Score: 2, Predictions: model.IntList{2, 3, 4}, CreatedAt: now.Add(-time.Hour)},
	}

	out := buildUserAnalytics(runs, now)
	require.Len(t, out.FavoriteNumbers, 4)
	// 2 和 3 各出现两次，先遇到的 2 排前；1 和 4 各一次，1 先遇到
	assert.Equal(t, 2, out.FavoriteNumbers[0].Number)
	assert.Equal(t, 3, out.FavoriteNumbers[1].Number)
	assert.Equal(t, 1, out.FavoriteNumbers[2].Number)
	assert.Equal(t, 4, out.FavoriteNumbers[3].Number)
	assert.Equal(t, 2, out.FavoriteNumbers[0].Count)
}

func TestBuildUserAnalyticsEmpty(t *testing.T) {
	out := buildUserAnalytics(nil, time.Now())
	assert.Equal(t, 0, out.TotalGames)
	assert.Nil(t, out.FirstGameAt)
	assert.Empty(t, out.ScoreTrend)
	assert.Empty(t, out.FavoriteNumbers)
	assert.Empty(t, out.RecentRuns)
}
