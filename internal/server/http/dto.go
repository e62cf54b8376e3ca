package httpserver

import "xiangqi/internal/xiangqi"

// 前端用的招法结构
type MoveDTO struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func dtoToMove(m MoveDTO) xiangqi.Move {
	return xiangqi.Move{From: m.From, To: m.To}
}

func moveToDTO(m xiangqi.Move) MoveDTO {
	return MoveDTO{From: m.From, To: m.To}
}

func movesToDTO(ms []xiangqi.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

func sideToInt(s xiangqi.Side) int {
	switch s {
	case xiangqi.Red:
		return 0
	case xiangqi.Black:
		return 1
	default:
		return -1
	}
}

// 对局状态统一在这里算，前端只认这三个字符串
func statusOf(pos *xiangqi.Position) string {
	winner, over := pos.Winner()
	if !over {
		return "ongoing"
	}
	if winner == xiangqi.Red {
		return "red_wins"
	}
	return "black_wins"
}

// NewGame 返回
type NewGameResponse struct {
	GameID     string    `json:"game_id"`
	Position   string    `json:"position"` // FEN 字符串
	ToMove     int       `json:"to_move"`  // 0=红(w),1=黑(b)
	LegalMoves []MoveDTO `json:"legal_moves"`
}

// Play 请求
type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

// Play 返回
type PlayResponse struct {
	Position   string    `json:"position"`
	ToMove     int       `json:"to_move"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	Status     string    `json:"status"` // "ongoing" / "red_wins" / "black_wins"
}

// State 请求：前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

// State 返回：比 NewGameResponse 多一份着法历史
type StateResponse struct {
	Position   string    `json:"position"`
	ToMove     int       `json:"to_move"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	History    []MoveDTO `json:"history"`
	Status     string    `json:"status"`
}

// Moves 请求：选中一个格子，要这个子的全部落点（用于高亮）
type MovesRequest struct {
	GameID string `json:"game_id"`
	From   int    `json:"from"`
}

type MovesResponse struct {
	Moves []MoveDTO `json:"moves"`
}

// Suggest 请求：让外部荐招服务替当前走子方走一步
type SuggestRequest struct {
	GameID string `json:"game_id"`
}

type SuggestResponse struct {
	Move       MoveDTO   `json:"move"`
	Source     string    `json:"source"` // "service" / "fallback"
	Position   string    `json:"position"`
	ToMove     int       `json:"to_move"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	Status     string    `json:"status"`
}
