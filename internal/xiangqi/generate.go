package xiangqi

func genPieceMoves(p *Position, sq int, pc Piece, moves *[]Move) {
	switch pc.Type() {
	case PieceChariot:
		genChariotMoves(p, sq, moves)
	case PieceCannon:
		genCannonMoves(p, sq, moves)
	case PieceHorse:
		genHorseMoves(p, sq, moves)
	case PieceElephant:
		genElephantMoves(p, sq, moves)
	case PieceAdvisor:
		genAdvisorMoves(p, sq, moves)
	case PieceGeneral:
		genGeneralMoves(p, sq, moves)
	case PieceSoldier:
		genSoldierMoves(p, sq, moves)
	}
}

// 生成指定一方的伪合法走法（不考虑被将军、不考虑对脸）
func (p *Position) GeneratePseudoMovesForSide(side Side) []Move {
	var moves []Move
	for sq := 0; sq < NumSquares; sq++ {
		pc := p.Board.Squares[sq]
		if pc == 0 || pc.Side() != side {
			continue
		}
		genPieceMoves(p, sq, pc, &moves)
	}
	return moves
}

func (p *Position) GeneratePseudoMoves() []Move {
	return p.GeneratePseudoMovesForSide(p.SideToMove)
}

// MovesFrom 生成单个格子上棋子的伪合法走法。
// 越界或空格直接返回 nil：前端高亮会探测任意格子，这里不报错。
func (p *Position) MovesFrom(from int) []Move {
	if from < 0 || from >= NumSquares {
		return nil
	}
	pc := p.Board.Squares[from]
	if pc == 0 {
		return nil
	}
	var moves []Move
	genPieceMoves(p, from, pc, &moves)
	return moves
}

// 应用走子：这里默认传进来的就是合法招（由上层检查）
func (p *Position) ApplyMove(m Move) (*Position, bool) {
	if m.From < 0 || m.From >= NumSquares || m.To < 0 || m.To >= NumSquares {
		return nil, false
	}
	pc := p.Board.Squares[m.From]
	if pc == 0 || pc.Side() != p.SideToMove {
		return nil, false
	}
	captured := p.Board.Squares[m.To]

	np := *p
	np.Board.Squares[m.To] = pc
	np.Board.Squares[m.From] = 0
	np.SideToMove = opposite(p.SideToMove)

	// 增量 Zobrist：移除 from 的子、移除被吃子（若有）、加入 to 的子、切换走子方。
	h := p.EnsureHash()
	h ^= pieceHashKey(pc, m.From)
	if captured != 0 {
		h ^= pieceHashKey(captured, m.To)
	}
	h ^= pieceHashKey(pc, m.To)
	h ^= zobristSide
	np.Hash = h

	return &np, true
}
