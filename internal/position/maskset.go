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

package position

import (
	. "github.com/arbor-chess/perft/internal/types"
)

// MaskSet holds the per-node check and pin information the legal move
// generator needs to restrict pseudo legal moves to legal ones without
// having to make and unmake every candidate move to test for check.
//
// It is rebuilt from scratch on entry to every node the move generator
// visits, i.e. after every DoMove; the perft driver keeps one per depth,
// so a parent's MaskSet is still valid after UndoMove. Building it is
// a handful of magic bitboard lookups from the king square, which is
// cheap compared to the make/unmake-and-test approach.
type MaskSet struct {
	// Checkers is the bitboard of enemy pieces currently giving check
	// to the next player's king. Zero outside of check.
	Checkers Bitboard

	// CheckMask is intersected with every non-king move's destination
	// bitboard. Outside of check it is BbAll (no restriction). In a
	// single check it is the checking piece's square together with
	// any squares between the king and a sliding checker (a capture
	// or a block both resolve the check). In a double check it is
	// BbZero: no piece other than the king itself can resolve two
	// simultaneous checks, so only king moves are legal.
	CheckMask Bitboard

	// PinnedOrth / PinnedDiag mark, respectively, the squares of our
	// own pieces pinned against our king along a rank/file or a
	// diagonal by an enemy rook/queen or bishop/queen.
	PinnedOrth Bitboard
	PinnedDiag Bitboard

	// pinRay holds, for each pinned square, the line (pinning piece's
	// square plus the squares between it and the king) that a pinned
	// piece is still allowed to move along. Only meaningful for
	// squares set in PinnedOrth or PinnedDiag.
	pinRay [SqLength]Bitboard
}

// CanMoveTo returns the set of squares a piece standing on from is
// allowed to move to, given checks and pins, with no regard yet to
// the piece's own movement pattern. Callers intersect this with the
// piece's pseudo legal attack/move bitboard.
func (ms *MaskSet) CanMoveTo(from Square) Bitboard {
	allowed := ms.CheckMask
	if ms.PinnedOrth.Has(from) || ms.PinnedDiag.Has(from) {
		allowed &= ms.pinRay[from]
	}
	return allowed
}

// IsPinned reports whether the piece on from is pinned against the
// king, along either axis.
func (ms *MaskSet) IsPinned(from Square) bool {
	return ms.PinnedOrth.Has(from) || ms.PinnedDiag.Has(from)
}

// InCheck reports whether the next player's king is currently attacked.
func (ms *MaskSet) InCheck() bool {
	return ms.Checkers != BbZero
}

// DoubleCheck reports whether two or more pieces check the king at
// once, in which case only king moves can be legal.
func (ms *MaskSet) DoubleCheck() bool {
	return ms.Checkers.PopCount() >= 2
}

// BuildMaskSet recomputes ms in place for the side to move. Callers
// (the perft driver) keep one MaskSet per recursion depth in a pooled
// array and refresh it here on entry to each node, so building a
// MaskSet never allocates on the hot path.
func (p *Position) BuildMaskSet(ms *MaskSet) {
	*ms = MaskSet{}
	computeMaskSetInto(p, ms)
}

// NewMaskSet computes a fresh, heap-allocated MaskSet for the side to
// move. Prefer BuildMaskSet with a pooled instance on the perft hot
// path; this is convenient for tests and one-off callers.
func NewMaskSet(p *Position) *MaskSet {
	ms := &MaskSet{}
	computeMaskSetInto(p, ms)
	return ms
}

// computeMaskSet rebuilds the MaskSet for the side to move from
// scratch. It is the single place that understands how checks and
// pins are derived from king square, piece bitboards and occupancy.
func computeMaskSet(p *Position) *MaskSet {
	ms := &MaskSet{}
	computeMaskSetInto(p, ms)
	return ms
}

// computeMaskSetInto fills ms for the side to move without allocating.
func computeMaskSetInto(p *Position, ms *MaskSet) {
	us := p.nextPlayer
	them := us.Flip()
	kingSq := p.kingSquare[us]
	occupied := p.OccupiedAll()

	// Checkers: reverse attack from the king square, same technique as
	// Position.IsAttacked but keeping the attacking squares instead of
	// collapsing them to a boolean.
	ms.Checkers = GetPawnAttacks(us, kingSq) & p.piecesBb[them][Pawn]
	ms.Checkers |= GetPseudoAttacks(Knight, kingSq) & p.piecesBb[them][Knight]
	bishopAttackers := GetAttacksBb(Bishop, kingSq, occupied) & (p.piecesBb[them][Bishop] | p.piecesBb[them][Queen])
	rookAttackers := GetAttacksBb(Rook, kingSq, occupied) & (p.piecesBb[them][Rook] | p.piecesBb[them][Queen])
	ms.Checkers |= bishopAttackers | rookAttackers

	switch ms.Checkers.PopCount() {
	case 0:
		ms.CheckMask = BbAll
	case 1:
		checkerSq := ms.Checkers.Lsb()
		checkerPt := p.board[checkerSq].TypeOf()
		if checkerPt.IsSliding() {
			ms.CheckMask = Intermediate(kingSq, checkerSq) | ms.Checkers
		} else {
			ms.CheckMask = ms.Checkers
		}
	default: // double (or more) check
		ms.CheckMask = BbZero
	}

	// Pins: for every enemy slider that would attack the king if our
	// own pieces were transparent, walk the ray between king and
	// slider. Exactly one of our own pieces on that ray means it is
	// pinned; any other occupancy on the ray (0 or 2+ blockers, or an
	// enemy piece) means no pin along this ray.
	possibleRookPinners := (p.piecesBb[them][Rook] | p.piecesBb[them][Queen]) & GetPseudoAttacks(Rook, kingSq)
	for snipers := possibleRookPinners; snipers != BbZero; {
		sniperSq := snipers.PopLsb()
		between := Intermediate(kingSq, sniperSq) & occupied
		if between.PopCount() == 1 && between&p.occupiedBb[us] == between {
			pinnedSq := between.Lsb()
			ms.PinnedOrth.PushSquare(pinnedSq)
			ms.pinRay[pinnedSq] = Intermediate(kingSq, sniperSq) | sniperSq.Bb()
		}
	}
	possibleBishopPinners := (p.piecesBb[them][Bishop] | p.piecesBb[them][Queen]) & GetPseudoAttacks(Bishop, kingSq)
	for snipers := possibleBishopPinners; snipers != BbZero; {
		sniperSq := snipers.PopLsb()
		between := Intermediate(kingSq, sniperSq) & occupied
		if between.PopCount() == 1 && between&p.occupiedBb[us] == between {
			pinnedSq := between.Lsb()
			ms.PinnedDiag.PushSquare(pinnedSq)
			ms.pinRay[pinnedSq] = Intermediate(kingSq, sniperSq) | sniperSq.Bb()
		}
	}
}
