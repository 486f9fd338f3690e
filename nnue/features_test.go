package nnue

import "testing"

func TestOrient(t *testing.T) {
	if got := orient(White, 12); got != 12 {
		t.Errorf("orient(White, 12) = %d, want 12", got)
	}
	if got := orient(Black, 12); got != 12^0x3f {
		t.Errorf("orient(Black, 12) = %d, want %d", got, 12^0x3f)
	}
	if got := orient(Black, 0); got != 0x3f {
		t.Errorf("orient(Black, 0) = %d, want 0x3f", got)
	}
}

func TestMakeIndexRange(t *testing.T) {
	pieceCodes := []int{WhiteQueen, WhiteRook, WhiteBishop, WhiteKnight, WhitePawn,
		BlackQueen, BlackRook, BlackBishop, BlackKnight, BlackPawn}

	for _, c := range []Perspective{White, Black} {
		for _, piece := range pieceCodes {
			for sq := 0; sq < 64; sq++ {
				for ksq := 0; ksq < 64; ksq++ {
					idx := makeIndex(c, sq, piece, orient(c, ksq))
					if idx < 0 || idx >= ftInDims {
						t.Fatalf("makeIndex(%v, sq=%d, piece=%d, ksq=%d) = %d out of [0,%d)", c, sq, piece, ksq, idx, ftInDims)
					}
				}
			}
		}
	}
}

func TestMakeIndexDistinctOffsets(t *testing.T) {
	seen := map[int]bool{}
	for _, piece := range []int{WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen,
		BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen} {
		idx := makeIndex(White, 0, piece, 0)
		if seen[idx] {
			t.Fatalf("piece %d collides with another piece's base offset at index %d", piece, idx)
		}
		seen[idx] = true
	}
}

func TestAppendActiveIndicesSkipsKings(t *testing.T) {
	// pieces[0], pieces[1] are the kings; only entries from index 2 are features.
	pieces := []int{WhiteKing, BlackKing, WhitePawn, NoPiece}
	squares := []int{4, 60, 12, 0}

	active := appendActiveIndices(White, pieces, squares, squares[White], nil)
	if len(active) != 1 {
		t.Fatalf("len(active) = %d, want 1 (kings excluded)", len(active))
	}
	want := makeIndex(White, 12, WhitePawn, orient(White, 4))
	if active[0] != want {
		t.Errorf("active[0] = %d, want %d", active[0], want)
	}
}

func TestIsKing(t *testing.T) {
	if !isKing(WhiteKing) || !isKing(BlackKing) {
		t.Error("isKing should be true for both king codes")
	}
	if isKing(WhitePawn) || isKing(NoPiece) {
		t.Error("isKing should be false for non-king codes")
	}
}
