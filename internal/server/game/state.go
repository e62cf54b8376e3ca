package game

import (
	"time"

	"xiangqi/internal/xiangqi"
)

// GameState 持有一局棋的全部可变状态：当前局面加上已走的着法。
// 历史记录归这里管，核心规则包不保存任何跨调用状态。
type GameState struct {
	ID        string
	Pos       *xiangqi.Position
	Moves     []xiangqi.Move
	CreatedAt time.Time
	UpdatedAt time.Time
}
