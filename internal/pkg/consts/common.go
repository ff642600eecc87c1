package consts

const (
	// DefaultGameType 当前唯一的玩法：从 1-99 中选 10 个数字
	DefaultGameType = "1-99_range_10_numbers"
)

const (
	PredictionCount = 10
	NumberMin       = 1
	NumberMax       = 99
	MaxScore        = 10
)
