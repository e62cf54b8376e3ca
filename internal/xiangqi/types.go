package xiangqi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

type PieceType int8

const (
	PieceNone     PieceType = iota
	PieceChariot            // 车
	PieceHorse              // 马
	PieceCannon             // 炮
	PieceElephant           // 相 / 象
	PieceAdvisor            // 仕 / 士
	PieceGeneral            // 帅 / 将
	PieceSoldier            // 兵 / 卒
)

type Piece int8 // 0=空；>0 红；<0 黑；abs=PieceType

func makePiece(side Side, pt PieceType) Piece {
	if pt == PieceNone || side == NoSide {
		return 0
	}
	if side == Red {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return Red
	}
	return Black
}

type Board struct {
	Squares [NumSquares]Piece
}

type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Position = 棋盘 + 轮到谁走
type Position struct {
	Board      Board
	SideToMove Side
	Hash       uint64
}
