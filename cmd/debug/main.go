package main

import (
	"fmt"

	"xiangqi/internal/xiangqi"
)

func main() {
	pos := xiangqi.NewInitialPosition()
	fmt.Println("FEN:", pos.Encode())
	moves := pos.GeneratePseudoMoves()
	fmt.Println("Pseudo legal moves:", len(moves))
}
