package nnue

// ensureCurrent implements the accumulator engine (spec §4.4): it makes
// pos.Chain()[0]'s accumulator consistent with the position, either by
// refreshing from scratch or by incrementally applying one or two
// ancestors' dirty-piece deltas.
//
// The two-ancestor merge follows the original engine's
// append_changed_indices exactly: when the nearer ancestor (chain[1])
// already has a computed accumulation, only chain[0]'s own delta is
// applied and reset[c] depends solely on that delta. Only when chain[1]
// is *not* computed does the walk go one ply further back and merge both
// deltas, with reset[c] true if either delta's first piece is the king.
func (n *Network) ensureCurrent(pos PositionView) {
	chain := pos.Chain()
	current := chain[0].Accumulator()
	if current.Computed {
		return
	}

	kingSq := kingSquare(pos)
	pieces := pos.PieceList()
	squares := pos.SquareList()

	ancestor1Computed := accumulatorComputedOrNil(chain, 1)
	ancestor2Computed := accumulatorComputedOrNil(chain, 2)
	if !ancestor1Computed && !ancestor2Computed {
		n.refresh(current, pieces, squares, kingSq)
		return
	}

	var deltas []*DirtyPiece
	var base *Accumulator
	if ancestor1Computed {
		base = chain[1].Accumulator()
		deltas = []*DirtyPiece{chain[0].DirtyPiece()}
	} else {
		base = chain[2].Accumulator()
		deltas = []*DirtyPiece{chain[1].DirtyPiece(), chain[0].DirtyPiece()}
	}

	for c := White; c <= Black; c++ {
		reset := false
		for _, d := range deltas {
			if d.Count > 0 && d.Piece[0] == kingPieceOf(c) {
				reset = true
				break
			}
		}

		if reset {
			n.refreshPerspective(current, c, pieces, squares, kingSq[c])
			continue
		}

		var removed, added []int
		removed = make([]int, 0, maxIndexListSize)
		added = make([]int, 0, maxIndexListSize)
		for _, d := range deltas {
			for i := 0; i < d.Count; i++ {
				if isKing(d.Piece[i]) {
					continue
				}
				if d.From[i] != offBoard {
					removed = append(removed, makeIndex(c, d.From[i], d.Piece[i], orient(c, kingSq[c])))
				}
				if d.To[i] != offBoard {
					added = append(added, makeIndex(c, d.To[i], d.Piece[i], orient(c, kingSq[c])))
				}
			}
		}

		current.Accumulation[c] = base.Accumulation[c]
		for _, idx := range removed {
			subColumn(&current.Accumulation[c], n.ftWeights, idx)
		}
		for _, idx := range added {
			addColumn(&current.Accumulation[c], n.ftWeights, idx)
		}
	}

	current.Computed = true
}

func accumulatorComputedOrNil(chain []PositionSlot, i int) bool {
	if i >= len(chain) {
		return false
	}
	return chain[i].Accumulator().Computed
}

func kingPieceOf(c Perspective) int {
	if c == White {
		return WhiteKing
	}
	return BlackKing
}

// refresh rebuilds both perspectives of acc from scratch.
func (n *Network) refresh(acc *Accumulator, pieces, squares []int, kingSq [2]int) {
	for c := White; c <= Black; c++ {
		n.refreshPerspective(acc, c, pieces, squares, kingSq[c])
	}
	acc.Computed = true
}

// refreshPerspective rebuilds a single perspective's 256-vector: biases
// plus every active feature's weight column (spec §4.4 step 3).
func (n *Network) refreshPerspective(acc *Accumulator, c Perspective, pieces, squares []int, kingSq int) {
	acc.Accumulation[c] = n.ftBiases
	active := appendActiveIndices(c, pieces, squares, kingSq, make([]int, 0, maxIndexListSize))
	for _, idx := range active {
		addColumn(&acc.Accumulation[c], n.ftWeights, idx)
	}
}

// addColumn adds feature column idx of ftWeights to acc lane-wise. Int16
// arithmetic wraps (two's complement) rather than saturating, matching
// the trained model's arithmetic (spec §7, §9).
func addColumn(acc *[halfDimensions]int16, ftWeights []int16, idx int) {
	base := idx * halfDimensions
	col := ftWeights[base : base+halfDimensions]
	for i := range acc {
		acc[i] += col[i]
	}
}

// subColumn subtracts feature column idx of ftWeights from acc lane-wise.
func subColumn(acc *[halfDimensions]int16, ftWeights []int16, idx int) {
	base := idx * halfDimensions
	col := ftWeights[base : base+halfDimensions]
	for i := range acc {
		acc[i] -= col[i]
	}
}
