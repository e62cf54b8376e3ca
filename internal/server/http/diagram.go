package httpserver

import (
	"net/http"

	svg "github.com/ajstarks/svgo"
	"xiangqi/internal/xiangqi"
)

const (
	diagramCell   = 50
	diagramMargin = 50
)

// GET /api/diagram?position=FEN
// 把一个局面画成 SVG，方便调试和对局分享。画的是交叉点棋盘：
// 10 条横线、9 条竖线，中间空出河界，九宫画斜线。
func (h *Handler) handleDiagram(w http.ResponseWriter, r *http.Request) {
	fen := r.URL.Query().Get("position")
	if fen == "" {
		http.Error(w, "missing position", http.StatusBadRequest)
		return
	}
	pos, err := xiangqi.DecodePosition(fen)
	if err != nil {
		http.Error(w, "invalid position", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	renderDiagram(w, pos)
}

func renderDiagram(w http.ResponseWriter, pos *xiangqi.Position) {
	x := func(col int) int { return diagramMargin + col*diagramCell }
	y := func(row int) int { return diagramMargin + row*diagramCell }

	width := 2*diagramMargin + (xiangqi.Cols-1)*diagramCell
	height := 2*diagramMargin + (xiangqi.Rows-1)*diagramCell

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#f5deb3")

	const line = "stroke:#333;stroke-width:2"

	for r := 0; r < xiangqi.Rows; r++ {
		canvas.Line(x(0), y(r), x(xiangqi.Cols-1), y(r), line)
	}
	for c := 0; c < xiangqi.Cols; c++ {
		if c == 0 || c == xiangqi.Cols-1 {
			canvas.Line(x(c), y(0), x(c), y(xiangqi.Rows-1), line)
			continue
		}
		// 中间的竖线在河界处断开
		canvas.Line(x(c), y(0), x(c), y(4), line)
		canvas.Line(x(c), y(5), x(c), y(xiangqi.Rows-1), line)
	}

	// 九宫斜线
	canvas.Line(x(3), y(0), x(5), y(2), line)
	canvas.Line(x(5), y(0), x(3), y(2), line)
	canvas.Line(x(3), y(7), x(5), y(9), line)
	canvas.Line(x(5), y(7), x(3), y(9), line)

	for sq := 0; sq < xiangqi.NumSquares; sq++ {
		pc := pos.Board.Squares[sq]
		if pc == 0 {
			continue
		}
		cx := x(sq % xiangqi.Cols)
		cy := y(sq / xiangqi.Cols)

		stroke := "#111"
		if pc.Side() == xiangqi.Red {
			stroke = "#c00"
		}
		canvas.Circle(cx, cy, 20, "fill:#fff;stroke-width:3;stroke:"+stroke)
		canvas.Text(cx, cy+6, pieceLabel(pc),
			"text-anchor:middle;font-size:20px;font-family:sans-serif;fill:"+stroke)
	}

	canvas.End()
}

var redLabels = map[xiangqi.PieceType]string{
	xiangqi.PieceChariot:  "车",
	xiangqi.PieceHorse:    "马",
	xiangqi.PieceCannon:   "炮",
	xiangqi.PieceElephant: "相",
	xiangqi.PieceAdvisor:  "仕",
	xiangqi.PieceGeneral:  "帅",
	xiangqi.PieceSoldier:  "兵",
}

var blackLabels = map[xiangqi.PieceType]string{
	xiangqi.PieceChariot:  "车",
	xiangqi.PieceHorse:    "马",
	xiangqi.PieceCannon:   "炮",
	xiangqi.PieceElephant: "象",
	xiangqi.PieceAdvisor:  "士",
	xiangqi.PieceGeneral:  "将",
	xiangqi.PieceSoldier:  "卒",
}

func pieceLabel(pc xiangqi.Piece) string {
	if pc.Side() == xiangqi.Red {
		return redLabels[pc.Type()]
	}
	return blackLabels[pc.Type()]
}
