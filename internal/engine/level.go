// Package engine holds the pure rewards rules: levels, badge and achievement tables,
// streaks, weekly challenge windows, mission and shop rules, ranking order.
// Nothing here performs I/O; the service layer persists what these functions return.
package engine

const PointsPerLevel = 150

// CalculateLevel maps a point total to its level: floor(points/150) + 1.
// Negative totals are treated as zero.
func CalculateLevel(points int) int {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}

// NextLevelThreshold returns the point total at which the level after the given one starts.
func NextLevelThreshold(level int) int {
	return level * PointsPerLevel
}

type LevelProgress struct {
	Level       int `json:"level"`
	IntoLevel   int `json:"into_level"`
	ToNextLevel int `json:"to_next_level"`
	NextLevelAt int `json:"next_level_at"`
}

func ProgressFor(points int) LevelProgress {
	level := CalculateLevel(points)
	next := NextLevelThreshold(level)
	if points < 0 {
		points = 0
	}
	return LevelProgress{
		Level:       level,
		IntoLevel:   points - (level-1)*PointsPerLevel,
		ToNextLevel: next - points,
		NextLevelAt: next,
	}
}
