package xiangqi

func (p *Position) GeneralExists(side Side) bool {
	for _, pc := range p.Board.Squares {
		if pc != 0 && pc.Type() == PieceGeneral && pc.Side() == side {
			return true
		}
	}
	return false
}

// Winner 判断当前局面是否已分胜负。
// 1. 哪方帅没了，对方直接赢；
// 2. 轮到走的一方无子可动（将死和困毙都算），判负；
// 3. 否则继续。
// 每走完一步，上层都要用下一手的走子方重新调用一次。
func (p *Position) Winner() (Side, bool) {
	if !p.GeneralExists(Red) {
		return Black, true
	}
	if !p.GeneralExists(Black) {
		return Red, true
	}
	if len(p.GeneratePseudoMoves()) == 0 {
		return opposite(p.SideToMove), true
	}
	return NoSide, false
}
