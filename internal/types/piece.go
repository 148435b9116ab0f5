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

// Piece is a set of constants for pieces in chess. The encoding packs
// color into bit 3 so ColorOf/TypeOf are cheap shift/mask operations.
type Piece int8

//noinspection GoVarAndConstTypeMayBeOmitted
const (
	PieceNone   Piece = 0  // 0b0000
	WhiteKing   Piece = 1  // 0b0001
	WhitePawn   Piece = 2  // 0b0010
	WhiteKnight Piece = 3  // 0b0011
	WhiteBishop Piece = 4  // 0b0100
	WhiteRook   Piece = 5  // 0b0101
	WhiteQueen  Piece = 6  // 0b0110
	BlackKing   Piece = 9  // 0b1001
	BlackPawn   Piece = 10 // 0b1010
	BlackKnight Piece = 11 // 0b1011
	BlackBishop Piece = 12 // 0b1100
	BlackRook   Piece = 13 // 0b1101
	BlackQueen  Piece = 14 // 0b1110
	PieceLength Piece = 16 // 0b10000
)

var pieceToString = string("-KPNBRQ--kpnbrq-")

// String returns a single char representation of a piece.
func (p Piece) String() string {
	return string(pieceToString[p])
}

// MakePiece creates the piece given by color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece((int(c) << 3) + int(pt))
}

// ColorOf returns the color of the given piece.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of the given piece.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ValueOf returns the material value of the piece.
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

// IsValid reports whether p is a piece actually on the board (not
// PieceNone and not one of the unused encoding gaps).
func (p Piece) IsValid() bool {
	return p.TypeOf().IsValid()
}

// PieceFromChar returns the Piece represented by a single FEN piece
// letter (e.g. "K", "n") or PieceNone if s is not recognized.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	idx := indexByte(pieceToString, s[0])
	if idx <= 0 {
		return PieceNone
	}
	return Piece(idx)
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}
