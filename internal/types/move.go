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

import (
	"fmt"
	"strings"
)

// Move encodes a chess move in a single 32 bit value:
//
//	bits  0- 5: to square
//	bits  6-11: from square
//	bits 12-13: promotion piece (Knight=0 .. Queen=3), only meaningful
//	            when the move type is Promotion
//	bits 14-15: move type
//	bits 16-31: a sortable Value, zero (ValueZero) until SetValue is called
//
// A Move says nothing about whether the target square is occupied;
// whether a move is a capture is a property of the Position it is
// played against, not of the move itself.
type Move uint32

// MoveType distinguishes the small number of move shapes that need
// special handling during make/unmake: everything else (plain moves,
// captures, the pawn double step) is MoveTypeNormal.
type MoveType uint8

const (
	MoveTypeNormal    MoveType = 0
	MoveTypePromotion MoveType = 1
	MoveTypeEnPassant MoveType = 2
	MoveTypeCastling  MoveType = 3
)

// Short aliases for the MoveType constants, used throughout position
// and movegen where the MoveType prefix would be redundant noise.
const (
	Normal    = MoveTypeNormal
	Promotion = MoveTypePromotion
	EnPassant = MoveTypeEnPassant
	Castling  = MoveTypeCastling
)

func (t MoveType) String() string {
	switch t {
	case MoveTypeNormal:
		return "Normal"
	case MoveTypePromotion:
		return "Promotion"
	case MoveTypeEnPassant:
		return "EnPassant"
	case MoveTypeCastling:
		return "Castling"
	default:
		return "Unknown"
	}
}

// MoveNone is the zero move, never a legal move on any position.
const MoveNone Move = 0

const (
	moveToMask    = 0x3F
	moveFromShift = 6
	moveFromMask  = 0x3F
	movePromShift = 12
	movePromMask  = 0x3
	moveTypeShift = 14
	moveTypeMask  = 0x3
	moveValShift  = 16
)

// CreateMove builds a Move from its components. promType is ignored
// unless t is MoveTypePromotion.
func CreateMove(from, to Square, t MoveType, promType PieceType) Move {
	m := Move(to) | Move(from)<<moveFromShift | Move(t)<<moveTypeShift
	if t == MoveTypePromotion {
		m |= Move(promType-Knight) << movePromShift
	}
	return m
}

// From returns the origin square of the move.
func (m Move) From() Square {
	return Square((m >> moveFromShift) & moveFromMask)
}

// To returns the destination square of the move.
func (m Move) To() Square {
	return Square(m & moveToMask)
}

// MoveType returns the move's type.
func (m Move) MoveType() MoveType {
	return MoveType((m >> moveTypeShift) & moveTypeMask)
}

// PromotionType returns the piece type a pawn promotes to. Only valid
// when MoveType() == MoveTypePromotion.
func (m Move) PromotionType() PieceType {
	return Knight + PieceType((m>>movePromShift)&movePromMask)
}

// IsValid reports whether the move has distinct, valid from/to
// squares. It does not check legality against any position.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// SetValue attaches a sortable value to the move, used by move
// ordering when scanning a generated move list.
func (m *Move) SetValue(v Value) {
	*m = (*m &^ (Move(0xFFFF) << moveValShift)) | Move(uint16(v))<<moveValShift
}

// ValueOf returns the value previously attached via SetValue, or
// ValueZero if none was set.
func (m Move) ValueOf() Value {
	return Value(uint16(m >> moveValShift))
}

// Str returns the move in long algebraic notation, e.g. "e2e4" or
// "a7a8Q" for a promotion.
func (m Move) Str() string {
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.MoveType() == MoveTypePromotion {
		b.WriteString(m.PromotionType().Char())
	}
	return b.String()
}

// StringUci returns the move in UCI protocol notation, identical to
// Str() except the promotion letter is lower case.
func (m Move) StringUci() string {
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.MoveType() == MoveTypePromotion {
		b.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return b.String()
}

func (m Move) String() string {
	return m.Str()
}

// StrBits returns a binary dump of the move's bits, useful when
// debugging the encoding itself.
func (m Move) StrBits() string {
	return fmt.Sprintf("%032b", uint32(m))
}
