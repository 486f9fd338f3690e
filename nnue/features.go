package nnue

// Perspective identifies which side's accumulator a feature belongs to.
type Perspective int

const (
	White Perspective = 0
	Black Perspective = 1
)

// Piece codes, following the fixed external convention this package's
// Position View contract speaks (spec §3.1): 1..12, two dedicated codes
// for the kings, 0 terminates a piece list. The numbering matches the
// piece_to_index table this feature set is grounded on.
const (
	NoPiece     = 0
	WhiteKing   = 1
	WhiteQueen  = 2
	WhiteRook   = 3
	WhiteBishop = 4
	WhiteKnight = 5
	WhitePawn   = 6
	BlackKing   = 7
	BlackQueen  = 8
	BlackRook   = 9
	BlackBishop = 10
	BlackKnight = 11
	BlackPawn   = 12
)

// pieceToIndex maps a piece code to its base feature offset, one table
// per perspective (kings map to 0 and are never used as features).
var pieceToIndex = [2][13]int{
	// White's perspective.
	{
		0,
		0, 513, 385, 257, 129, 1, // WhiteKing..WhitePawn
		0, 577, 449, 321, 193, 65, // BlackKing..BlackPawn
	},
	// Black's perspective: colours swapped.
	{
		0,
		0, 577, 449, 321, 193, 65, // WhiteKing..WhitePawn, seen as opponent
		0, 513, 385, 257, 129, 1, // BlackKing..BlackPawn, seen as own
	},
}

// orient mirrors a square across the board for Black's perspective
// (spec §3.2: orient(c,s) = s if c=White else s XOR 0x3f).
func orient(c Perspective, s int) int {
	if c == White {
		return s
	}
	return s ^ 0x3f
}

// makeIndex computes the HalfKP feature index for a non-king piece as
// seen from perspective c, given an already-oriented king square.
//
// orientedKingSq must already be orient(c, king_square_of(c)) — the original
// Fire/Stockfish implementation this is ported from applies orient once
// at the call site and passes the oriented square down, rather than
// re-orienting it inside makeIndex.
func makeIndex(c Perspective, sq, piece, orientedKingSq int) int {
	return orient(c, sq) + pieceToIndex[c][piece] + psEnd*orientedKingSq
}

// appendActiveIndices walks the piece list (entries 2.. terminated by
// NoPiece; 0 and 1 are the kings, excluded) and appends the HalfKP index
// of every piece, from perspective c, to out.
func appendActiveIndices(c Perspective, pieces, squares []int, kingSquare int, out []int) []int {
	orientedKing := orient(c, kingSquare)
	for i := 2; pieces[i] != NoPiece; i++ {
		out = append(out, makeIndex(c, squares[i], pieces[i], orientedKing))
	}
	return out
}

// isKing reports whether a piece code is either colour's king.
func isKing(piece int) bool {
	return piece == WhiteKing || piece == BlackKing
}
