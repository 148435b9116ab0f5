/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

// PieceType is a set of constants for piece types in chess.
type PieceType int8

//noinspection GoVarAndConstTypeMayBeOmitted
const (
	PtNone   PieceType = 0
	King     PieceType = 1 // Non sliding
	Pawn     PieceType = 2 // Non sliding
	Knight   PieceType = 3 // Non sliding
	Bishop   PieceType = 4 // Sliding
	Rook     PieceType = 5 // Sliding
	Queen    PieceType = 6 // Sliding
	PtLength PieceType = 7
)

var pieceTypeToString = [PtLength]string{"NOPIECE", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}

// Str returns a string representation of a piece type.
func (pt PieceType) Str() string {
	return pieceTypeToString[pt]
}

var pieceTypeToChar = string("-KPNBRQ")

// Char returns a single char string representation of a piece type.
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

var pieceTypeValue = [PtLength]Value{0, 2000, 100, 320, 330, 500, 900}

// ValueOf returns the material value of the piece type.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

// IsValid checks if pt is a valid (non-king-less, non-empty) piece type.
func (pt PieceType) IsValid() bool {
	return pt > 0 && pt < PtLength
}

// IsSliding reports whether pieces of this type move along unobstructed
// rays (bishop, rook, queen) rather than to fixed offsets.
func (pt PieceType) IsSliding() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

// promotionTypes lists the piece types a pawn may promote to, in the
// order used by the 2-bit promotion field of a Move.
var promotionTypes = [4]PieceType{Knight, Bishop, Rook, Queen}

var gamePhaseValue = [PtLength]int{0, 0, 0, 1, 1, 2, 4}

// GamePhaseValue returns this piece type's contribution to the game
// phase counter, used to interpolate between midgame and endgame
// positional values.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}
