package nnue

// Accumulator holds the incrementally-maintained first-layer output for
// one position, one 256-wide int16 vector per perspective (spec §3.3).
type Accumulator struct {
	Accumulation [2][halfDimensions]int16
	Computed     bool
}

// DirtyPiece records the piece movements introduced by the move that
// produced this position (spec §3.4). Count is 1 for a quiet move, 2 for
// a capture, up to 3 for castling. From/To use the sentinel square 64 to
// mean "appeared" (promotion) / "removed" (captured).
type DirtyPiece struct {
	Count int
	Piece [3]int
	From  [3]int
	To    [3]int
}

const offBoard = 64

// PositionSlot is one entry in a Position View's chain: the current
// position (slot 0) or one of its two most recent ancestors (slots 1, 2).
type PositionSlot interface {
	Accumulator() *Accumulator
	DirtyPiece() *DirtyPiece
}

// PositionView is the contract a caller (engine/search) must satisfy to
// evaluate a position (spec §3.5, §6.3). PieceList entries 0 and 1 are
// the white and black kings; entries 2.. are the remaining pieces,
// terminated by piece code 0, with parallel SquareList entries. Chain
// holds slot 0 (current, mutable) and up to two read-only ancestors.
type PositionView interface {
	SideToMove() Perspective
	PieceList() []int
	SquareList() []int
	Chain() []PositionSlot
}

// kingSquare returns both kings' squares indexed by perspective; the
// Position View contract guarantees each king lives at PieceList/SquareList
// index int(c) (0 = white king, 1 = black king).
func kingSquare(pos PositionView) [2]int {
	squares := pos.SquareList()
	return [2]int{squares[White], squares[Black]}
}

// chainlessPosition is the minimal Position View built by Evaluate: one
// slot, no ancestors, always forces a full refresh (spec §6.1).
type chainlessPosition struct {
	sideToMove Perspective
	pieces     []int
	squares    []int
	slot       chainlessSlot
}

type chainlessSlot struct {
	acc Accumulator
	dp  DirtyPiece
}

func (s *chainlessSlot) Accumulator() *Accumulator { return &s.acc }
func (s *chainlessSlot) DirtyPiece() *DirtyPiece    { return &s.dp }

func (p *chainlessPosition) SideToMove() Perspective  { return p.sideToMove }
func (p *chainlessPosition) PieceList() []int         { return p.pieces }
func (p *chainlessPosition) SquareList() []int        { return p.squares }
func (p *chainlessPosition) Chain() []PositionSlot    { return []PositionSlot{&p.slot} }

// newChainlessPosition builds the Position View used by Evaluate: pieces
// is 0-terminated following entries 0 (white king) and 1 (black king),
// squares is parallel.
func newChainlessPosition(sideToMove Perspective, pieces, squares []int) *chainlessPosition {
	return &chainlessPosition{sideToMove: sideToMove, pieces: pieces, squares: squares}
}
