package xiangqi

import (
	"strings"
	"unicode"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols
)

func indexOf(row, col int) int { return row*Cols + col }
func rowOf(sq int) int         { return sq / Cols }
func colOf(sq int) int         { return sq % Cols }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func opposite(side Side) Side {
	if side == Red {
		return Black
	}
	if side == Black {
		return Red
	}
	return NoSide
}

// 兵的前进方向：红向上(-1)，黑向下(+1)
func soldierDir(side Side) int {
	if side == Red {
		return -1
	}
	if side == Black {
		return +1
	}
	return 0
}

// 是否已经过河（河界在第 4/5 行之间）
func crossedRiver(side Side, row int) bool {
	if side == Red {
		return row <= 4
	}
	if side == Black {
		return row >= 5
	}
	return false
}

// 是否在九宫
func inPalace(side Side, row, col int) bool {
	midCol := Cols / 2 // 4
	if col < midCol-1 || col > midCol+1 {
		return false
	}
	if side == Black {
		return row >= 0 && row <= 2
	}
	if side == Red {
		return row >= Rows-3 && row <= Rows-1 // 7..9
	}
	return false
}

// 解码用字母表。'e'/'h' 是兼容旧记谱的别名，只收不发。
var letterToPieceType = map[rune]PieceType{
	'r': PieceChariot,  // 车 chariot
	'n': PieceHorse,    // 马 horse (knight 字母)
	'h': PieceHorse,    // 马 旧写法
	'c': PieceCannon,   // 炮 cannon
	'b': PieceElephant, // 相 elephant (bishop 字母)
	'e': PieceElephant, // 相 旧写法
	'a': PieceAdvisor,  // 仕 advisor
	'k': PieceGeneral,  // 帅 general
	'p': PieceSoldier,  // 兵 soldier
}

// 编码只用规范字母，保证 Encode/Decode 对称
var pieceTypeToLetter = [8]rune{0, 'r', 'n', 'c', 'b', 'a', 'k', 'p'}

func pieceToChar(p Piece) rune {
	if p == 0 {
		return '.'
	}
	pt := p.Type()
	if pt <= 0 || int(pt) >= len(pieceTypeToLetter) {
		return '.'
	}
	base := pieceTypeToLetter[pt]
	if p.Side() == Red {
		return unicode.ToUpper(base)
	}
	return base
}

// 标准开局，第 0 行是黑方底线
const initialBoardString = `rnbakabnr
.........
.c.....c.
p.p.p.p.p
.........
.........
P.P.P.P.P
.C.....C.
.........
RNBAKABNR`

func parseInitialBoard() Board {
	var b Board
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("initialBoardString 行数不为 10")
	}
	for r := 0; r < Rows; r++ {
		if len(lines[r]) != Cols {
			panic("initialBoardString 列数不为 9")
		}
		for c, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			isUpper := unicode.IsUpper(ch)
			base := unicode.ToLower(ch)
			pt, ok := letterToPieceType[base]
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			side := Black
			if isUpper {
				side = Red
			}
			b.Squares[indexOf(r, c)] = makePiece(side, pt)
		}
	}
	return b
}

func NewInitialPosition() *Position {
	pos := &Position{
		Board:      parseInitialBoard(),
		SideToMove: Red, // 红先
	}
	pos.Hash = pos.CalculateHash()
	return pos
}
