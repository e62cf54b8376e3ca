package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"xiangqi/internal/xiangqi"
)

func main() {
	totalGames := flag.Int("games", 10, "number of random games to play")
	maxMoves := flag.Int("maxmoves", 400, "max plies per game")
	bench := flag.Int("bench", 0, "benchmark move generation for N iterations and exit")
	flag.Parse()

	if *bench > 0 {
		runBenchmark(*bench)
		return
	}

	redWins := 0
	blackWins := 0
	unfinished := 0
	totalPlies := 0

	for g := 0; g < *totalGames; g++ {
		winner, plies := playRandomGame(*maxMoves)
		totalPlies += plies
		switch winner {
		case xiangqi.Red:
			redWins++
		case xiangqi.Black:
			blackWins++
		default:
			unfinished++
		}
		fmt.Printf("Game %d: winner=%v plies=%d\n", g+1, winner, plies)
	}

	fmt.Printf("\n=== Totals ===\n")
	fmt.Printf("Red: %d  Black: %d  Unfinished: %d  Avg plies: %.1f\n",
		redWins, blackWins, unfinished, float64(totalPlies)/float64(*totalGames))
}

// 双方全程随机走，用来冒烟测试走法生成和终局判定
func playRandomGame(maxMoves int) (xiangqi.Side, int) {
	pos := xiangqi.NewInitialPosition()

	for ply := 0; ply < maxMoves; ply++ {
		if winner, over := pos.Winner(); over {
			return winner, ply
		}
		moves := pos.GeneratePseudoMoves()
		next, ok := pos.ApplyMove(moves[rand.Intn(len(moves))])
		if !ok {
			log.Fatalf("generated move failed to apply at ply %d", ply)
		}
		pos = next
	}
	return xiangqi.NoSide, maxMoves
}

func runBenchmark(iters int) {
	pos := xiangqi.NewInitialPosition()

	start := time.Now()
	var generated int64
	for i := 0; i < iters; i++ {
		generated += int64(len(pos.GeneratePseudoMoves()))
	}
	elapsed := time.Since(start)

	fmt.Printf("Generated %d moves in %v (%.0f moves/s)\n",
		generated, elapsed, float64(generated)/elapsed.Seconds())
}
