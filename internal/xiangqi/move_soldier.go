package xiangqi

// 兵：过河前只能前进一格，过河后加左右横移；永远不能后退
func genSoldierMoves(p *Position, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	pc := p.Board.Squares[from]
	if pc == 0 {
		return
	}
	side := pc.Side()
	dir := soldierDir(side)

	addMove(p, from, row+dir, col, side, moves)

	if crossedRiver(side, row) {
		addMove(p, from, row, col-1, side, moves)
		addMove(p, from, row, col+1, side, moves)
	}
}
