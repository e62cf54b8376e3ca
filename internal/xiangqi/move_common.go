package xiangqi

var (
	rookDirs   = [4][2]int{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}}
	bishopDirs = [4][2]int{{-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}
)

// 单步落点统一校验：棋盘内，且为空或对方棋子
func addMove(p *Position, from, r, c int, side Side, moves *[]Move) {
	if !onBoard(r, c) {
		return
	}
	to := indexOf(r, c)
	dst := p.Board.Squares[to]
	if dst == 0 || dst.Side() != side {
		*moves = append(*moves, Move{From: from, To: to})
	}
}

// 车：横竖随便走，碰到第一个子停；是对方的子则可吃
func genChariotMoves(p *Position, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := p.Board.Squares[from].Side()
	for _, d := range rookDirs {
		r, c := row+d[0], col+d[1]
		for onBoard(r, c) {
			to := indexOf(r, c)
			pc := p.Board.Squares[to]
			if pc == 0 {
				*moves = append(*moves, Move{From: from, To: to})
			} else {
				if pc.Side() != side {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 炮：不吃子时同车；吃子必须隔一个炮架，炮架本身不可作落点
func genCannonMoves(p *Position, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := p.Board.Squares[from].Side()
	for _, d := range rookDirs {
		r, c := row+d[0], col+d[1]

		// 走子阶段：直到第一个棋子（炮架）
		for onBoard(r, c) {
			to := indexOf(r, c)
			pc := p.Board.Squares[to]
			if pc == 0 {
				*moves = append(*moves, Move{From: from, To: to})
				r += d[0]
				c += d[1]
				continue
			}
			r += d[0]
			c += d[1]
			break
		}

		// 吃子阶段：越过炮架，遇到的第一个子是对方则可吃，之后停
		for onBoard(r, c) {
			to := indexOf(r, c)
			pc := p.Board.Squares[to]
			if pc != 0 {
				if pc.Side() != side {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 相：田字，象眼无子，且不能过河
func genElephantMoves(p *Position, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := p.Board.Squares[from].Side()
	for _, d := range bishopDirs {
		r := row + 2*d[0]
		c := col + 2*d[1]
		if !onBoard(r, c) {
			continue
		}
		// 塞象眼
		if p.Board.Squares[indexOf(row+d[0], col+d[1])] != 0 {
			continue
		}
		if crossedRiver(side, r) {
			continue
		}
		addMove(p, from, r, c, side, moves)
	}
}

// 仕：九宫内斜走一格
func genAdvisorMoves(p *Position, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := p.Board.Squares[from].Side()
	for _, d := range bishopDirs {
		r := row + d[0]
		c := col + d[1]
		if !inPalace(side, r, c) {
			continue
		}
		addMove(p, from, r, c, side, moves)
	}
}

// 帅：九宫内上下左右一格（对脸规则由上层决定，核心不拦截）
func genGeneralMoves(p *Position, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := p.Board.Squares[from].Side()
	for _, d := range rookDirs {
		r := row + d[0]
		c := col + d[1]
		if !inPalace(side, r, c) {
			continue
		}
		addMove(p, from, r, c, side, moves)
	}
}
