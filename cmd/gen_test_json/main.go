package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"xiangqi/internal/xiangqi"
)

// 给前端测试用的夹具：随机对局的每一步都记录局面和全部合法招。
type Fixture struct {
	Position string         `json:"position"`
	ToMove   int            `json:"to_move"`
	Legal    []xiangqi.Move `json:"legal"`
}

func main() {
	var fixtures []Fixture

	numGames := 10
	for g := 0; g < numGames; g++ {
		pos := xiangqi.NewInitialPosition()
		maxMoves := 500 // 一局通常没这么多步，主要是防死循环
		for moveCount := 0; moveCount < maxMoves; moveCount++ {
			if _, over := pos.Winner(); over {
				break
			}
			legalMoves := pos.GeneratePseudoMoves()

			toMove := 0
			if pos.SideToMove == xiangqi.Black {
				toMove = 1
			}
			fixtures = append(fixtures, Fixture{
				Position: pos.Encode(),
				ToMove:   toMove,
				Legal:    legalMoves,
			})

			nextPos, ok := pos.ApplyMove(legalMoves[rand.Intn(len(legalMoves))])
			if !ok {
				break
			}
			pos = nextPos
		}
	}

	file, _ := json.MarshalIndent(fixtures, "", "  ")
	_ = os.WriteFile("legal_moves_fixtures.json", file, 0644)
	fmt.Printf("Generated %d fixtures from %d random games to legal_moves_fixtures.json\n", len(fixtures), numGames)
}
