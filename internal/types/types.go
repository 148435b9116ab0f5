//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package types contains the board representation primitives (squares,
// bitboards, pieces, moves) shared by every other package. Many of these
// would be enum candidates in another language but Go has no enums.
package types

var initialized = false

// Init pre-computes bitboard tables and positional value tables. Safe
// to call more than once; only the first call does any work.
func Init() {
	if initialized {
		return
	}
	initBb()
	initPosValues()
	initialized = true
}

func init() {
	Init()
}

const (
	// SqLength is the number of squares on a board.
	SqLength int = 64

	// MaxDepth bounds the recursion depth PerftDriver and Position's
	// history stacks are sized for.
	MaxDepth = 128

	// MaxMoves upper bounds the number of pseudo legal moves possible
	// in any single chess position; used to size move slices once.
	MaxMoves = 512

	// GamePhaseMax is the maximum game phase value, derived from the
	// number of officers on the board, used to interpolate between
	// midgame and endgame positional values.
	GamePhaseMax = 24
)
