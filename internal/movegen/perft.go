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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/arbor-chess/perft/internal/position"
	. "github.com/arbor-chess/perft/internal/types"
	"github.com/arbor-chess/perft/internal/util"
)

var out = message.NewPrinter(language.German)

// promotionTypesInOrder lists the four promotion kinds a pawn reaching
// its last rank may become, each generated as its own leaf move (§4.6
// pawn specialization).
var promotionTypesInOrder = [4]PieceType{Queen, Rook, Bishop, Knight}

// PerftDriver is the recursive legal move counter. It walks a single
// Position in place, mutating it with DoMove/UndoMove and pivoting
// legality on a MaskSet rebuilt fresh at every node. It never
// allocates on the recursive path: one MaskSet per ply is kept in a
// pooled array sized to the maximum depth the driver is started with.
type PerftDriver struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64

	stopFlag util.Bool
	maskPool []position.MaskSet
	divide   bool
}

// NewPerftDriver creates a new empty PerftDriver.
func NewPerftDriver() *PerftDriver {
	return &PerftDriver{}
}

// Stop can be used when perft has been started in a goroutine to stop
// the currently running perft test. It is safe to call from a
// different goroutine than the one running StartPerft/StartPerftMulti.
func (pd *PerftDriver) Stop() {
	pd.stopFlag.Store(true)
}

// StartPerftMulti iterates the given start to end depths, printing a
// report after each. If this has been started in a goroutine it can
// be stopped via Stop().
func (pd *PerftDriver) StartPerftMulti(fen string, startDepth int, endDepth int) {
	pd.stopFlag.Store(false)
	for i := startDepth; i <= endDepth; i++ {
		if pd.stopFlag.Load() {
			out.Print("Perft multi depth stopped\n")
			return
		}
		pd.StartPerft(fen, i, false)
	}
}

// StartPerft runs a single perft test to depth and prints a report.
// When divide is true the root move subtotals are printed as they are
// computed (perft-divide). If this has been started in a goroutine it
// can be stopped via Stop().
func (pd *PerftDriver) StartPerft(fen string, depth int, divide bool) {
	pd.stopFlag.Store(false)
	if depth <= 0 {
		depth = 1
	}

	pd.resetCounters()
	pd.divide = divide
	pd.maskPool = make([]position.MaskSet, depth+1)
	posPtr, _ := position.NewPositionFen(fen)

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := pd.countMoves(posPtr, depth)
	elapsed := time.Since(start)

	if pd.stopFlag.Load() {
		out.Print("Perft stopped\n")
		return
	}

	pd.Nodes = result

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", util.Nps(pd.Nodes, elapsed))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", pd.Nodes)
	out.Printf("   Captures  : %d\n", pd.CaptureCounter)
	out.Printf("   EnPassant : %d\n", pd.EnpassantCounter)
	out.Printf("   Checks    : %d\n", pd.CheckCounter)
	out.Printf("   CheckMates: %d\n", pd.CheckMateCounter)
	out.Printf("   Castles   : %d\n", pd.CastleCounter)
	out.Printf("   Promotions: %d\n", pd.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

func (pd *PerftDriver) resetCounters() {
	pd.Nodes = 0
	pd.CheckCounter = 0
	pd.CheckMateCounter = 0
	pd.CaptureCounter = 0
	pd.EnpassantCounter = 0
	pd.CastleCounter = 0
	pd.PromotionCounter = 0
}

// countMoves is count_moves<color, depth>(pos) from the specification:
// it returns the number of leaves exactly depth plies below p, mutating
// p in place and restoring it fully before returning. When pd.divide is
// set, tryMove and makeAndCount print one perft-divide line per root
// move and clear the flag while they recurse, so deeper calls print
// nothing.
func (pd *PerftDriver) countMoves(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	ms := &pd.maskPool[depth]
	p.BuildMaskSet(ms)

	us := p.NextPlayer()
	kingSq := p.KingSquare(us)
	ownBb := p.OccupiedBb(us)
	occ := p.OccupiedAll()

	var nodes uint64

	// 1. King moves: always checked against the mutated board, since a
	// king step can uncover or dodge an attack the pre-move MaskSet
	// knows nothing about.
	kingDest := GetPseudoAttacks(King, kingSq) &^ ownBb
	for kingDest != BbZero {
		toSq := kingDest.PopLsb()
		m := CreateMove(kingSq, toSq, Normal, PtNone)
		nodes += pd.tryMove(p, m, depth)
	}

	// 2. Double check: no other piece can resolve two simultaneous
	// checks, so only the king moves above are legal.
	if ms.DoubleCheck() {
		return nodes
	}

	// 3/4. Castling, gated on not being in check; safety of the
	// start/transit/destination squares is checked by tryCastle with
	// IsAttacked before the move is even made, and reconfirmed by
	// WasLegalMove after.
	if !ms.InCheck() {
		nodes += pd.generateCastlingMoves(p, us, occ, depth)
	}

	// 5. Piece moves for Q, R, B, N, P, partitioned by pin status via
	// the MaskSet so no make/unmake is needed to test legality.
	nodes += pd.generateOfficerMoves(p, us, ms, occ, ownBb, depth)
	nodes += pd.generatePawnMoves(p, us, ms, depth)

	// 6. En-passant: the pin mask does not see the discovered
	// horizontal check unique to this move, so it always needs the
	// post-move safety recheck.
	nodes += pd.generateEnPassantMoves(p, us, depth)

	return nodes
}

// tryMove makes m, verifies it left the moving side's own king safe,
// recurses (or counts the leaf directly at depth 1), then unmakes. It
// is used for the three move families that always need a post-move
// legality recheck: king moves, castling, and en-passant.
func (pd *PerftDriver) tryMove(p *position.Position, m Move, depth int) uint64 {
	if pd.stopFlag.Load() {
		return 0
	}
	capture := p.GetPiece(m.To()) != PieceNone
	p.DoMove(m)
	defer p.UndoMove()
	if !p.WasLegalMove() {
		return 0
	}
	if depth == 1 {
		pd.tallyLeaf(p, m, capture)
		if pd.divide {
			pd.printDivideLine(m, 1)
		}
		return 1
	}
	divide := pd.divide
	pd.divide = false
	sub := pd.countMoves(p, depth-1)
	pd.divide = divide
	if divide {
		pd.printDivideLine(m, sub)
	}
	return sub
}

func (pd *PerftDriver) tallyLeaf(p *position.Position, m Move, capture bool) {
	switch m.MoveType() {
	case EnPassant:
		pd.EnpassantCounter++
		pd.CaptureCounter++
	case Castling:
		pd.CastleCounter++
	case Promotion:
		pd.PromotionCounter++
		if capture {
			pd.CaptureCounter++
		}
	default:
		if capture {
			pd.CaptureCounter++
		}
	}
	if p.HasCheck() {
		pd.CheckCounter++
		if !pd.hasLegalMove(p) {
			pd.CheckMateCounter++
		}
	}
}

func (pd *PerftDriver) printDivideLine(m Move, count uint64) {
	out.Printf("%s%s: %d\n", m.From().String(), m.To().String(), count)
}

func (pd *PerftDriver) generateCastlingMoves(p *position.Position, us Color, occ Bitboard, depth int) uint64 {
	cr := p.CastlingRights()
	if cr == CastlingNone {
		return 0
	}
	var nodes uint64
	if us == White {
		if cr.Has(CastlingWhiteOO) && Intermediate(SqE1, SqH1)&occ == BbZero {
			nodes += pd.tryCastle(p, SqE1, SqG1, SqF1, depth)
		}
		if cr.Has(CastlingWhiteOOO) && Intermediate(SqE1, SqA1)&occ == BbZero {
			nodes += pd.tryCastle(p, SqE1, SqC1, SqD1, depth)
		}
	} else {
		if cr.Has(CastlingBlackOO) && Intermediate(SqE8, SqH8)&occ == BbZero {
			nodes += pd.tryCastle(p, SqE8, SqG8, SqF8, depth)
		}
		if cr.Has(CastlingBlackOOO) && Intermediate(SqE8, SqA8)&occ == BbZero {
			nodes += pd.tryCastle(p, SqE8, SqC8, SqD8, depth)
		}
	}
	return nodes
}

// tryCastle checks the king's start, transit and destination squares
// for attacks before making the move at all (cheap pre-filter), then
// still relies on tryMove/WasLegalMove for the authoritative check.
func (pd *PerftDriver) tryCastle(p *position.Position, kingFrom, kingTo, transit Square, depth int) uint64 {
	them := p.NextPlayer().Flip()
	if p.IsAttacked(kingFrom, them) || p.IsAttacked(transit, them) || p.IsAttacked(kingTo, them) {
		return 0
	}
	m := CreateMove(kingFrom, kingTo, Castling, PtNone)
	return pd.tryMove(p, m, depth)
}

// generateOfficerMoves generates and recurses Queen/Rook/Bishop/Knight
// moves. Each from-square's destinations are restricted to can_move_to
// up front, so every move handed to makeAndCount is already legal and
// depth==1 can be counted with a plain popcount.
func (pd *PerftDriver) generateOfficerMoves(p *position.Position, us Color, ms *position.MaskSet, occ, ownBb Bitboard, depth int) uint64 {
	var nodes uint64
	for pt := Queen; pt >= Knight; pt-- {
		pieces := p.PiecesBb(us, pt)
		for pieces != BbZero {
			fromSq := pieces.PopLsb()
			dest := GetAttacksBb(pt, fromSq, occ) &^ ownBb & ms.CanMoveTo(fromSq)
			if depth == 1 && !pd.divide {
				nodes += uint64(dest.PopCount())
				if dest != BbZero {
					pd.tallyBulkCaptures(p, fromSq, dest)
				}
				continue
			}
			for dest != BbZero {
				toSq := dest.PopLsb()
				nodes += pd.makeAndCount(p, CreateMove(fromSq, toSq, Normal, PtNone), depth)
			}
		}
	}
	return nodes
}

// tallyBulkCaptures updates the capture/check counters for a depth==1
// bulk-counted destination set. Captures are read off the board; the
// check and mate counters need tallyCheckOnly to make and unmake each
// destination's move.
func (pd *PerftDriver) tallyBulkCaptures(p *position.Position, fromSq Square, dest Bitboard) {
	them := p.OccupiedBb(p.NextPlayer().Flip())
	for rest := dest; rest != BbZero; {
		toSq := rest.PopLsb()
		if them.Has(toSq) {
			pd.CaptureCounter++
		}
		pd.tallyCheckOnly(p, fromSq, toSq, Normal, PtNone)
	}
}

// tallyCheckOnly makes and immediately unmakes m purely to update the
// check and checkmate counters for the bulk-count path, which otherwise never touches
// the board for already-known-legal moves.
func (pd *PerftDriver) tallyCheckOnly(p *position.Position, fromSq, toSq Square, mt MoveType, promo PieceType) {
	m := CreateMove(fromSq, toSq, mt, promo)
	p.DoMove(m)
	if p.HasCheck() {
		pd.CheckCounter++
		if !pd.hasLegalMove(p) {
			pd.CheckMateCounter++
		}
	}
	p.UndoMove()
}

// makeAndCount makes an already-legal move (pins/checks resolved by
// the MaskSet), recurses, then unmakes.
func (pd *PerftDriver) makeAndCount(p *position.Position, m Move, depth int) uint64 {
	if pd.stopFlag.Load() {
		return 0
	}
	capture := p.GetPiece(m.To()) != PieceNone
	p.DoMove(m)
	if depth == 1 {
		pd.tallyLeaf(p, m, capture)
		p.UndoMove()
		if pd.divide {
			pd.printDivideLine(m, 1)
		}
		return 1
	}
	divide := pd.divide
	pd.divide = false
	sub := pd.countMoves(p, depth-1)
	pd.divide = divide
	p.UndoMove()
	if divide {
		pd.printDivideLine(m, sub)
	}
	return sub
}

// generatePawnMoves handles pawn pushes, double pushes and captures
// (including promotions) for every pin partition, per §4.6's pawn
// specialization.
func (pd *PerftDriver) generatePawnMoves(p *position.Position, us Color, ms *position.MaskSet, depth int) uint64 {
	var nodes uint64
	them := us.Flip()
	myPawns := p.PiecesBb(us, Pawn)
	oppBb := p.OccupiedBb(them)
	occ := p.OccupiedAll()
	fwd := us.MoveDirection()
	back := them.MoveDirection()

	// single push
	pushOne := ShiftBitboard(myPawns, fwd) &^ occ
	promPush := pushOne & us.PromotionRankBb()
	quietPush := pushOne &^ us.PromotionRankBb()

	for quietPush != BbZero {
		toSq := quietPush.PopLsb()
		fromSq := toSq.To(back)
		if ms.CanMoveTo(fromSq).Has(toSq) {
			nodes += pd.makeAndCount(p, CreateMove(fromSq, toSq, Normal, PtNone), depth)
		}
	}

	// double push
	pushTwo := ShiftBitboard(pushOne&us.PawnDoubleRank(), fwd) &^ occ
	for pushTwo != BbZero {
		toSq := pushTwo.PopLsb()
		fromSq := toSq.To(back).To(back)
		if ms.CanMoveTo(fromSq).Has(toSq) {
			nodes += pd.makeAndCount(p, CreateMove(fromSq, toSq, Normal, PtNone), depth)
		}
	}

	// promotion push (no capture)
	for promPush != BbZero {
		toSq := promPush.PopLsb()
		fromSq := toSq.To(back)
		if ms.CanMoveTo(fromSq).Has(toSq) {
			for _, pt := range promotionTypesInOrder {
				nodes += pd.makeAndCount(p, CreateMove(fromSq, toSq, Promotion, pt), depth)
			}
		}
	}

	// captures, both diagonals
	for _, dir := range [2]Direction{West, East} {
		captures := ShiftBitboard(myPawns, fwd+dir) & oppBb
		promCaptures := captures & us.PromotionRankBb()
		plainCaptures := captures &^ us.PromotionRankBb()

		for plainCaptures != BbZero {
			toSq := plainCaptures.PopLsb()
			fromSq := toSq.To(back - dir)
			if ms.CanMoveTo(fromSq).Has(toSq) {
				nodes += pd.makeAndCount(p, CreateMove(fromSq, toSq, Normal, PtNone), depth)
			}
		}
		for promCaptures != BbZero {
			toSq := promCaptures.PopLsb()
			fromSq := toSq.To(back - dir)
			if ms.CanMoveTo(fromSq).Has(toSq) {
				for _, pt := range promotionTypesInOrder {
					nodes += pd.makeAndCount(p, CreateMove(fromSq, toSq, Promotion, pt), depth)
				}
			}
		}
	}

	return nodes
}

// generateEnPassantMoves always re-verifies king safety after making
// the capture: the pin mask cannot see the rank-discovered check that
// is unique to removing two pawns from the same rank as the king.
func (pd *PerftDriver) generateEnPassantMoves(p *position.Position, us Color, depth int) uint64 {
	epSq := p.GetEnPassantSquare()
	if epSq == SqNone {
		return 0
	}
	var nodes uint64
	them := us.Flip()
	myPawns := p.PiecesBb(us, Pawn)
	back := them.MoveDirection()
	fwd := us.MoveDirection()

	for _, dir := range [2]Direction{West, East} {
		capturers := ShiftBitboard(epSq.Bb(), back+dir) & myPawns
		if capturers != BbZero {
			fromSq := capturers.PopLsb()
			toSq := fromSq.To(fwd - dir)
			m := CreateMove(fromSq, toSq, EnPassant, PtNone)
			nodes += pd.tryMove(p, m, depth)
		}
	}
	return nodes
}

// hasLegalMove reports whether the side to move in p has at least one
// legal reply. Used only to turn a "p.HasCheck()" leaf into a mate
// count, so it stops at the first reply found rather than enumerating
// all of them.
func (pd *PerftDriver) hasLegalMove(p *position.Position) bool {
	var ms position.MaskSet
	p.BuildMaskSet(&ms)

	us := p.NextPlayer()
	kingSq := p.KingSquare(us)
	ownBb := p.OccupiedBb(us)
	occ := p.OccupiedAll()

	kingDest := GetPseudoAttacks(King, kingSq) &^ ownBb
	for kingDest != BbZero {
		toSq := kingDest.PopLsb()
		if pd.isLegalAfter(p, CreateMove(kingSq, toSq, Normal, PtNone)) {
			return true
		}
	}

	if ms.DoubleCheck() {
		return false
	}

	if !ms.InCheck() && pd.hasCastlingMove(p, us, occ) {
		return true
	}

	for pt := Queen; pt >= Knight; pt-- {
		pieces := p.PiecesBb(us, pt)
		for pieces != BbZero {
			fromSq := pieces.PopLsb()
			if GetAttacksBb(pt, fromSq, occ)&^ownBb&ms.CanMoveTo(fromSq) != BbZero {
				return true
			}
		}
	}

	if pd.hasPawnMove(p, us, &ms) {
		return true
	}

	return pd.hasEnPassantMove(p, us)
}

// isLegalAfter makes m, checks whether it left the mover's own king
// safe, then unmakes it. Same do/check/undo shape as tryMove, without
// the recursion or leaf tally.
func (pd *PerftDriver) isLegalAfter(p *position.Position, m Move) bool {
	p.DoMove(m)
	legal := p.WasLegalMove()
	p.UndoMove()
	return legal
}

// hasCastlingMove mirrors generateCastlingMoves/tryCastle's attacked-
// square pre-filter, stopping at the first available castle.
func (pd *PerftDriver) hasCastlingMove(p *position.Position, us Color, occ Bitboard) bool {
	cr := p.CastlingRights()
	if cr == CastlingNone {
		return false
	}
	them := us.Flip()
	if us == White {
		if cr.Has(CastlingWhiteOO) && Intermediate(SqE1, SqH1)&occ == BbZero &&
			!p.IsAttacked(SqE1, them) && !p.IsAttacked(SqF1, them) && !p.IsAttacked(SqG1, them) {
			return true
		}
		if cr.Has(CastlingWhiteOOO) && Intermediate(SqE1, SqA1)&occ == BbZero &&
			!p.IsAttacked(SqE1, them) && !p.IsAttacked(SqD1, them) && !p.IsAttacked(SqC1, them) {
			return true
		}
		return false
	}
	if cr.Has(CastlingBlackOO) && Intermediate(SqE8, SqH8)&occ == BbZero &&
		!p.IsAttacked(SqE8, them) && !p.IsAttacked(SqF8, them) && !p.IsAttacked(SqG8, them) {
		return true
	}
	if cr.Has(CastlingBlackOOO) && Intermediate(SqE8, SqA8)&occ == BbZero &&
		!p.IsAttacked(SqE8, them) && !p.IsAttacked(SqD8, them) && !p.IsAttacked(SqC8, them) {
		return true
	}
	return false
}

// hasPawnMove checks pawn pushes, double pushes and captures for an
// existing destination under the pin mask; every such destination is
// already guaranteed legal (same invariant generatePawnMoves relies
// on), so unlike king/castling/en-passant this never needs a do/undo.
func (pd *PerftDriver) hasPawnMove(p *position.Position, us Color, ms *position.MaskSet) bool {
	them := us.Flip()
	myPawns := p.PiecesBb(us, Pawn)
	oppBb := p.OccupiedBb(them)
	occ := p.OccupiedAll()
	fwd := us.MoveDirection()
	back := them.MoveDirection()

	pushOne := ShiftBitboard(myPawns, fwd) &^ occ
	for rest := pushOne; rest != BbZero; {
		toSq := rest.PopLsb()
		if ms.CanMoveTo(toSq.To(back)).Has(toSq) {
			return true
		}
	}

	pushTwo := ShiftBitboard(pushOne&us.PawnDoubleRank(), fwd) &^ occ
	for rest := pushTwo; rest != BbZero; {
		toSq := rest.PopLsb()
		if ms.CanMoveTo(toSq.To(back).To(back)).Has(toSq) {
			return true
		}
	}

	for _, dir := range [2]Direction{West, East} {
		captures := ShiftBitboard(myPawns, fwd+dir) & oppBb
		for rest := captures; rest != BbZero; {
			toSq := rest.PopLsb()
			if ms.CanMoveTo(toSq.To(back - dir)).Has(toSq) {
				return true
			}
		}
	}

	return false
}

// hasEnPassantMove mirrors generateEnPassantMoves, stopping at the
// first capture that survives the post-move safety recheck.
func (pd *PerftDriver) hasEnPassantMove(p *position.Position, us Color) bool {
	epSq := p.GetEnPassantSquare()
	if epSq == SqNone {
		return false
	}
	them := us.Flip()
	myPawns := p.PiecesBb(us, Pawn)
	back := them.MoveDirection()
	fwd := us.MoveDirection()

	for _, dir := range [2]Direction{West, East} {
		capturers := ShiftBitboard(epSq.Bb(), back+dir) & myPawns
		if capturers != BbZero {
			fromSq := capturers.PopLsb()
			toSq := fromSq.To(fwd - dir)
			if pd.isLegalAfter(p, CreateMove(fromSq, toSq, EnPassant, PtNone)) {
				return true
			}
		}
	}
	return false
}
