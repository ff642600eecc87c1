package util

import "strings"

// CountMatches 计算两组数字去重后的交集大小，重复值不会被重复计分
func CountMatches(predictions, draws []int) int {
	drawSet := make(map[int]struct{}, len(draws))
	for _, n := range draws {
		drawSet[n] = struct{}{}
	}

	counted := make(map[int]struct{}, len(predictions))
	matches := 0
	for _, n := range predictions {
		if _, ok := drawSet[n]; !ok {
			continue
		}
		if _, dup := counted[n]; dup {
			continue
		}
		counted[n] = struct{}{}
		matches++
	}
	return matches
}

// MatchedNumbers 返回命中的数字列表，按预测出现顺序去重排列
func MatchedNumbers(predictions, draws []int) []int {
	drawSet := make(map[int]struct{}, len(draws))
	for _, n := range draws {
		drawSet[n] = struct{}{}
	}

	seen := make(map[int]struct{}, len(predictions))
	matched := make([]int, 0)
	for _, n := range predictions {
		if _, ok := drawSet[n]; !ok {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		matched = append(matched, n)
	}
	return matched
}

// NormalizeEmail 邮箱归一化：去除首尾空白并转小写
// 所有以邮箱为键的查询和合并都依赖这一规则
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
