package nnue

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Network holds the process-wide, read-once HalfKP weights and biases
// (spec §3.6). Once loaded it is immutable; Evaluate/EvaluateWithChain
// are safe to call concurrently across distinct positions.
type Network struct {
	ftBiases  [halfDimensions]int16
	ftWeights []int16 // ftInDims * halfDimensions, column i contiguous

	hidden1Biases  [hidden1Size]int32
	hidden1Weights []int8 // hidden1Size * ftOutDims, row-major [row][col]

	hidden2Biases  [hidden2Size]int32
	hidden2Weights []int8 // hidden2Size * hidden1Size, row-major

	outputBias   int32
	outputWeight [hidden2Size]int8

	ready bool
}

// LoadFile opens and memory-maps path, verifies and parses it into a new
// Network, then unmaps and closes the file before returning (spec §5
// resources, §6.1 init). The mapping is released whether or not
// verification succeeded.
func LoadFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("nnue: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("nnue: mmap %s: %w", path, err)
	}
	defer m.Unmap()

	return LoadBytes(m)
}

// LoadBytes verifies and parses an in-memory network file (spec §4.2,
// §6.2). The caller retains ownership of data; LoadBytes copies out
// everything it needs.
func LoadBytes(data []byte) (*Network, error) {
	if len(data) != expectedFileSize {
		return nil, &FormatError{Reason: fmt.Sprintf("size %d, want %d", len(data), expectedFileSize)}
	}
	if readU32LE(data, 0) != magicNumber {
		return nil, &FormatError{Reason: "bad magic"}
	}
	if readU32LE(data, 4) != archHash {
		return nil, &FormatError{Reason: "bad architecture hash"}
	}
	if readU32LE(data, 8) != descLength {
		return nil, &FormatError{Reason: "bad description length"}
	}
	if readU32LE(data, transformerStart) != transformerTag {
		return nil, &FormatError{Reason: "bad transformer tag"}
	}
	if readU32LE(data, networkStart) != networkTag {
		return nil, &FormatError{Reason: "bad network tag"}
	}

	n := &Network{ftWeights: make([]int16, ftInDims*halfDimensions)}

	off := transformerStart + 4
	for i := 0; i < halfDimensions; i++ {
		n.ftBiases[i] = int16(readU16LE(data, off))
		off += 2
	}
	for i := range n.ftWeights {
		n.ftWeights[i] = int16(readU16LE(data, off))
		off += 2
	}

	off = networkStart + 4
	for i := 0; i < hidden1Size; i++ {
		n.hidden1Biases[i] = int32(readU32LE(data, off))
		off += 4
	}
	n.hidden1Weights = readHiddenWeights(data, &off, hidden1Size, ftOutDims)

	for i := 0; i < hidden2Size; i++ {
		n.hidden2Biases[i] = int32(readU32LE(data, off))
		off += 4
	}
	n.hidden2Weights = readHiddenWeights(data, &off, hidden2Size, hidden1Size)

	n.outputBias = int32(readU32LE(data, off))
	off += 4
	for i := 0; i < hidden2Size; i++ {
		n.outputWeight[i] = int8(data[off])
		off++
	}

	n.ready = true
	return n, nil
}

// readHiddenWeights reads a rows*cols int8 weight block in its on-disk
// logical [row][col] order. This package's scalar-only backend applies
// the identity permutation spec §4.2/§4.6 allow in place of a SIMD lane
// shuffle, so the in-memory layout is the same row-major order.
func readHiddenWeights(data []byte, off *int, rows, cols int) []int8 {
	w := make([]int8, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			w[r*cols+c] = int8(data[*off])
			*off++
		}
	}
	return w
}

// Ready reports whether a network was successfully loaded.
func (n *Network) Ready() bool {
	return n != nil && n.ready
}

// Evaluate is the chainless convenience entry point (spec §6.1): it
// builds a minimal Position View with no ancestor chain, forcing a
// refresh, and returns the scaled evaluation. pieces is 0-terminated
// (entries 0,1 the kings); squares is parallel. Returns 0 if the network
// is not ready (spec §7 Unready: this package picks the sentinel, not a
// panic).
func (n *Network) Evaluate(sideToMove Perspective, pieces, squares []int) int32 {
	if !n.Ready() {
		return 0
	}
	pos := newChainlessPosition(sideToMove, pieces, squares)
	return n.EvaluateWithChain(pos)
}

// EvaluateWithChain is the efficient entry point for a search that
// maintains the accumulator chain across plies (spec §6.1, §4.8).
// Returns 0 if the network is not ready.
func (n *Network) EvaluateWithChain(pos PositionView) int32 {
	if !n.Ready() {
		return 0
	}

	n.ensureCurrent(pos)
	current := pos.Chain()[0].Accumulator()

	activations := transform(current, pos.SideToMove())

	h1, h1Mask := sparseAffineClippedReLU(activations.bytes[:], activations.mask[:], n.hidden1Biases[:], n.hidden1Weights, hidden1Size, ftOutDims, true)
	h2, _ := sparseAffineClippedReLU(h1, h1Mask, n.hidden2Biases[:], n.hidden2Weights, hidden2Size, hidden1Size, false)
	raw := denseAffine(h2, n.outputBias, n.outputWeight[:])

	return raw / fvScale
}
