/*
Package nnue is a Go port of the HalfKP (256x2-32-32-1) NNUE evaluation
function used by Stockfish-derived chess engines before the HalfKAv2_hm
feature set replaced it.

This code is derived from Stockfish, a UCI chess playing engine.
Copyright (C) 2004-2026 The Stockfish developers (see AUTHORS file)

Stockfish is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Stockfish is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

Original C++ source: https://github.com/official-stockfish/Stockfish

# Architecture

A position's evaluation runs through four stages: a per-perspective
256-wide feature transformer accumulator maintained incrementally across
a move tree, a clipped-ReLU activation pack into 512 int8 lanes with a
non-zero bitmask, two sparse affine+ClippedReLU hidden layers (512→32,
32→32), and a dense 32→1 output layer. The whole pipeline is integer
arithmetic; there is no floating point anywhere in the hot path.

# Usage

	net, err := nnue.LoadFile("nn-halfkp.nnue")
	if err != nil {
		log.Fatal(err)
	}
	eval := net.Evaluate(sideToMove, pieces, squares)
*/
package nnue
