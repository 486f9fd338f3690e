// Command nnue-probe loads a HalfKP network file and evaluates a single
// position given as piece/square lists through package nnue's chainless
// Evaluate entry point. It is not a UCI engine frontend.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/hailam/halfkp-nnue/nnue"
)

var (
	netPath = flag.String("net", "", "path to the .nnue network file")
	side    = flag.String("side", "white", "side to move: white or black")
	pieces  = flag.String("pieces", "1,7,0", "comma-separated 0-terminated piece codes (1,7 are the kings)")
	squares = flag.String("squares", "4,60,0", "comma-separated squares, parallel to -pieces")
)

func main() {
	flag.Parse()

	if *netPath == "" {
		log.Fatal("nnue-probe: -net is required")
	}

	net, err := nnue.LoadFile(*netPath)
	if err != nil {
		log.Fatalf("nnue-probe: load %s: %v", *netPath, err)
	}

	pieceCodes, err := parseInts(*pieces)
	if err != nil {
		log.Fatalf("nnue-probe: -pieces: %v", err)
	}
	squareCodes, err := parseInts(*squares)
	if err != nil {
		log.Fatalf("nnue-probe: -squares: %v", err)
	}

	stm := nnue.White
	if strings.EqualFold(*side, "black") {
		stm = nnue.Black
	}

	eval := net.Evaluate(stm, pieceCodes, squareCodes)
	fmt.Println(eval)
}

func parseInts(csv string) ([]int, error) {
	fields := strings.Split(csv, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}
