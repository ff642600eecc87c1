package service

import (
	"Lucky99/internal/api/dto"
	"Lucky99/internal/model"
	"Lucky99/internal/pkg/consts"
	"sort"
	"time"
)

// 1-99 内的 25 个素数
var primeSet = map[int]struct{}{
	2: {}, 3: {}, 5: {}, 7: {}, 11: {}, 13: {}, 17: {}, 19: {}, 23: {}, 29: {},
	31: {}, 37: {}, 41: {}, 43: {}, 47: {}, 53: {}, 59: {}, 61: {}, 67: {}, 71: {},
	73: {}, 79: {}, 83: {}, 89: {}, 97: {},
}

// 尾数为 7 的"幸运数"
var luckySevenSet = map[int]struct{}{
	7: {}, 17: {}, 27: {}, 37: {}, 47: {}, 57: {}, 67: {}, 77: {}, 87: {}, 97: {},
}

// 双位重复数字 11/22/.../99
var repeatingDigitSet = map[int]struct{}{
	11: {}, 22: {}, 33: {}, 44: {}, 55: {}, 66: {}, 77: {}, 88: {}, 99: {},
}

// 迷信意义上的"不吉利"数字
var unluckySet = map[int]struct{}{
	13: {}, 31: {},
}

// buildFrequency 跨所有对局累计每个数字的出现次数，结果与输入顺序无关
func buildFrequency(runs []*model.GameRun, pick func(*model.GameRun) model.IntList) map[int]int {
	freq := make(map[int]int)
	for _, run := range runs {
		for _, n := range pick(run) {
			freq[n]++
		}
	}
	return freq
}

// buildHeatmap 把 1-99 的频次表映射到 10x10 网格：row=(n-1)/10, col=(n-1)%10
func buildHeatmap(freq map[int]int) [][]int {
	grid := make([][]int, 10)
	for i := range grid {
		grid[i] = make([]int, 10)
	}
	for n, count := range freq {
		if n < consts.NumberMin || n > consts.NumberMax {
			continue
		}
		grid[(n-1)/10][(n-1)%10] = count
	}
	return grid
}

type biasRule struct {
	name    string
	member  func(int) bool
	setSize int
}

var biasRules = []biasRule{
	{"prime", func(n int) bool { _, ok := primeSet[n]; return ok }, 25},
	{"even", func(n int) bool { return n%2 == 0 }, 49},
	{"odd", func(n int) bool { return n%2 == 1 }, 50},
	{"lucky_sevens", func(n int) bool { _, ok := luckySevenSet[n]; return ok }, 10},
	{"repeating_digits", func(n int) bool { _, ok := repeatingDigitSet[n]; return ok }, 9},
	{"unlucky_13_31", func(n int) bool { _, ok := unluckySet[n]; return ok }, 2},
	{"multiple_of_5", func(n int) bool { return n%5 == 0 }, 19},
	{"small_1_33", func(n int) bool { return n <= 33 }, 33},
	{"mid_34_66", func(n int) bool { return n >= 34 && n <= 66 }, 33},
	{"large_67_99", func(n int) bool { return n >= 67 }, 33},
}

// buildBiasMetrics 每类数字的实际占比、均匀分布下的期望占比和带符号偏差
func buildBiasMetrics(freq map[int]int) []*dto.BiasMetricDTO {
	total := 0
	for _, count := range freq {
		total += count
	}

	metrics := make([]*dto.BiasMetricDTO, 0, len(biasRules))
	for _, rule := range biasRules {
		hit := 0
		for n, count := range freq {
			if rule.member(n) {
				hit += count
			}
		}

		observed := 0.0
		if total > 0 {
			observed = float64(hit) / float64(total) * 100
		}
		expected := float64(rule.setSize) / float64(consts.NumberMax) * 100

		metrics = append(metrics, &dto.BiasMetricDTO{
			Name:        rule.name,
			ObservedPct: observed,
			ExpectedPct: expected,
			Deviation:   observed - expected,
		})
	}
	return metrics
}

// randomnessScore 社区预测的"去偏指数"，越接近 100 越接近真随机
func randomnessScore(bias []*dto.BiasMetricDTO) int {
	byName := make(map[string]*dto.BiasMetricDTO, len(bias))
	for _, m := range bias {
		byName[m.Name] = m
	}

	score := 100
	if m, ok := byName["prime"]; ok && abs(m.Deviation) > 5 {
		score -= 15
	}
	if m, ok := byName["even"]; ok && abs(m.Deviation) > 5 {
		score -= 10
	}
	if m, ok := byName["repeating_digits"]; ok && m.ObservedPct > 10 {
		score -= 10
	}
	return score
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// buildGlobalAnalytics 从完整对局日志重算全局统计
func buildGlobalAnalytics(runs []*model.GameRun) *dto.GlobalAnalyticsDTO {
	out := &dto.GlobalAnalyticsDTO{
		TotalGames:        len(runs),
		ScoreDistribution: make(map[int]int),
	}

	players := make(map[string]struct{})
	scoreSum := 0
	for _, run := range runs {
		players[run.Email] = struct{}{}
		scoreSum += run.Score
		out.ScoreDistribution[run.Score]++
		if run.Score > out.BestScore {
			out.BestScore = run.Score
		}
	}
	out.TotalPlayers = len(players)
	if len(runs) > 0 {
		out.AvgScore = float64(scoreSum) / float64(len(runs))
		out.HitRatePct = out.AvgScore / float64(consts.MaxScore) * 100
	}

	predFreq := buildFrequency(runs, func(r *model.GameRun) model.IntList { return r.Predictions })
	randFreq := buildFrequency(runs, func(r *model.GameRun) model.IntList { return r.RandomNumbers })

	out.PredictionFrequency = predFreq
	out.RandomFrequency = randFreq
	out.PredictionHeatmap = buildHeatmap(predFreq)
	out.RandomHeatmap = buildHeatmap(randFreq)
	out.PredictionBias = buildBiasMetrics(predFreq)
	out.RandomBias = buildBiasMetrics(randFreq)
	out.RandomnessScore = randomnessScore(out.PredictionBias)

	return out
}

const (
	scoreTrendLength = 10
	favoriteNumbersN = 10
	recentRunsN      = 10
)

// buildUserAnalytics 个人统计；runs 按创建时间倒序（最新在前）
func buildUserAnalytics(runs []*model.GameRun, now time.Time) *dto.UserAnalyticsDTO {
	out := &dto.UserAnalyticsDTO{
		TotalGames:      len(runs),
		ScoreTrend:      []int{},
		FavoriteNumbers: []*dto.NumberCountDTO{},
		RecentRuns:      []*dto.UserRunDTO{},
	}
	if len(runs) == 0 {
		return out
	}

	out.LatestScore = runs[0].Score
	first := runs[len(runs)-1].CreatedAt
	out.FirstGameAt = &first

	weekAgo := now.AddDate(0, 0, -7)
	scoreSum := 0
	for _, run := range runs {
		scoreSum += run.Score
		if run.Score > out.BestScore {
			out.BestScore = run.Score
		}
		if run.CreatedAt.After(weekAgo) {
			out.GamesLastWeek++
		}
	}
	out.AvgScore = float64(scoreSum) / float64(len(runs))

	// 最近 10 局的成绩走势，按时间正序
	trendLen := scoreTrendLength
	if len(runs) < trendLen {
		trendLen = len(runs)
	}
	for i := trendLen - 1; i >= 0; i-- {
		out.ScoreTrend = append(out.ScoreTrend, runs[i].Score)
	}

	// 常用数字 Top10，出现次数相同时保持首次遇到的先后顺序
	counts := make(map[int]int)
	order := make([]int, 0)
	for _, run := range runs {
		for _, n := range run.Predictions {
			if counts[n] == 0 {
				order = append(order, n)
			}
			counts[n]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > favoriteNumbersN {
		order = order[:favoriteNumbersN]
	}
	for _, n := range order {
		out.FavoriteNumbers = append(out.FavoriteNumbers, &dto.NumberCountDTO{Number: n, Count: counts[n]})
	}

	recent := runs
	if len(recent) > recentRunsN {
		recent = recent[:recentRunsN]
	}
	for _, run := range recent {
		out.RecentRuns = append(out.RecentRuns, &dto.UserRunDTO{
			Score:         run.Score,
			Predictions:   run.Predictions,
			RandomNumbers: run.RandomNumbers,
			CreatedAt:     run.CreatedAt,
		})
	}

	return out
}
