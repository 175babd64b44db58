package game

// HighScoreEntry 高分榜条目
type HighScoreEntry struct {
	Label string
	Score uint32
}

// ScoreBoard 当前得分与高分历史
//
// 历史记录只追加不修改，插入顺序即游戏结束事件发生的先后顺序。
// 只保存在内存中，进程退出后丢失。
type ScoreBoard struct {
	score   uint32
	history []HighScoreEntry
}

// NewScoreBoard 创建空的记分板
func NewScoreBoard() *ScoreBoard {
	return &ScoreBoard{
		history: make([]HighScoreEntry, 0),
	}
}

// Score 返回当前得分
func (sb *ScoreBoard) Score() uint32 {
	return sb.score
}

// Add 增加得分
func (sb *ScoreBoard) Add(points uint32) {
	sb.score += points
}

// Reset 将当前得分清零（进入游戏阶段时调用）
func (sb *ScoreBoard) Reset() {
	sb.score = 0
}

// Record 追加一条高分记录
func (sb *ScoreBoard) Record(label string, score uint32) {
	sb.history = append(sb.history, HighScoreEntry{Label: label, Score: score})
}

// HighScores 返回高分历史的副本（按时间顺序）
func (sb *ScoreBoard) HighScores() []HighScoreEntry {
	out := make([]HighScoreEntry, len(sb.history))
	copy(out, sb.history)
	return out
}

// Best 返回历史最高分，没有记录时返回 false
func (sb *ScoreBoard) Best() (HighScoreEntry, bool) {
	if len(sb.history) == 0 {
		return HighScoreEntry{}, false
	}
	best := sb.history[0]
	for _, e := range sb.history[1:] {
		if e.Score > best.Score {
			best = e
		}
	}
	return best, true
}
