package xiangqi

import (
	"strings"
	"testing"
)

const openingFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1"

func TestDecodeOpening(t *testing.T) {
	pos, err := DecodePosition(openingFEN)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	var red, black int
	for _, pc := range pos.Board.Squares {
		switch pc.Side() {
		case Red:
			red++
		case Black:
			black++
		}
	}
	if red != 16 || black != 16 {
		t.Fatalf("piece count: red=%d black=%d, want 16/16", red, black)
	}

	pc := pos.Board.Squares[indexOf(9, 4)]
	if pc.Type() != PieceGeneral || pc.Side() != Red {
		t.Fatalf("square (9,4): got %v, want red general", pc)
	}
	if pos.SideToMove != Red {
		t.Fatalf("side to move: got %v, want Red", pos.SideToMove)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	pos := NewInitialPosition()

	// 随机走若干步之后的局面也要能完整往返
	for ply := 0; ply < 40; ply++ {
		fen := pos.Encode()
		decoded, err := DecodePosition(fen)
		if err != nil {
			t.Fatalf("ply %d: decode failed: %v (fen=%q)", ply, err, fen)
		}
		if decoded.Board != pos.Board {
			t.Fatalf("ply %d: board mismatch after round trip (fen=%q)", ply, fen)
		}
		if decoded.SideToMove != pos.SideToMove {
			t.Fatalf("ply %d: side mismatch after round trip", ply)
		}

		moves := pos.GeneratePseudoMoves()
		if len(moves) == 0 {
			return
		}
		next, ok := pos.ApplyMove(moves[ply%len(moves)])
		if !ok {
			t.Fatalf("ply %d: apply move failed", ply)
		}
		pos = next
	}
}

func TestEncodeInitialMatchesOpeningFEN(t *testing.T) {
	got := NewInitialPosition().Encode()
	if got != openingFEN {
		t.Fatalf("initial encode: got %q, want %q", got, openingFEN)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		fen  string
	}{
		{"too few ranks", "9/9/9/9/9/9/9/9/9 w - - 0 1"},
		{"too many ranks", "9/9/9/9/9/9/9/9/9/9/9 w - - 0 1"},
		{"rank too short", "rnbakabnr/8/9/9/9/9/9/9/9/9 w - - 0 1"},
		{"rank too long", "rnbakabnrr/9/9/9/9/9/9/9/9/9 w - - 0 1"},
		{"unknown letter", "rnbakabnr/4z4/9/9/9/9/9/9/9/9 w - - 0 1"},
		{"missing side", "rnbakabnr/9/9/9/9/9/9/9/9/RNBAKABNR"},
		{"bad side", "9/9/9/9/9/9/9/9/9/4K4 x - - 0 1"},
		{"empty", ""},
	}
	for _, tc := range cases {
		if _, err := DecodePosition(tc.fen); err == nil {
			t.Errorf("%s: expected error, got none", tc.name)
		}
	}
}

func TestDecodeAcceptsLegacyAliases(t *testing.T) {
	// 'e'/'h' 只在解码时当作 相/马 的别名
	canonical, err := DecodePosition(openingFEN)
	if err != nil {
		t.Fatalf("decode canonical: %v", err)
	}
	alias := strings.NewReplacer("b", "e", "B", "E", "n", "h", "N", "H").Replace(openingFEN)
	legacy, err := DecodePosition(alias)
	if err != nil {
		t.Fatalf("decode alias: %v", err)
	}
	if legacy.Board != canonical.Board {
		t.Fatalf("alias decode produced a different board")
	}

	// 重新编码必须回到规范字母
	if got := legacy.Encode(); got != openingFEN {
		t.Fatalf("alias re-encode: got %q, want canonical %q", got, openingFEN)
	}
}
