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
	"testing"

	. "github.com/arbor-chess/perft/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestMaskSet_NoCheckNoPin(t *testing.T) {
	assert := assert.New(t)

	p := NewPosition()
	ms := NewMaskSet(p)
	assert.False(ms.InCheck())
	assert.False(ms.DoubleCheck())
	assert.Equal(BbAll, ms.CheckMask)
	assert.Equal(BbZero, ms.PinnedOrth)
	assert.Equal(BbZero, ms.PinnedDiag)
	assert.Equal(BbAll, ms.CanMoveTo(SqE2))
}

func TestMaskSet_SingleCheckSlidingRook(t *testing.T) {
	assert := assert.New(t)

	p, _ := NewPositionFen("4r3/8/8/8/8/8/8/4K3 w - -")
	ms := NewMaskSet(p)
	assert.True(ms.InCheck())
	assert.False(ms.DoubleCheck())
	assert.Equal(SqE8.Bb(), ms.Checkers)
	// a sliding checker's mask is the checker itself plus every
	// square a block could land on between it and the king.
	assert.Equal(Intermediate(SqE1, SqE8)|SqE8.Bb(), ms.CheckMask)
}

func TestMaskSet_SingleCheckNonSlidingKnight(t *testing.T) {
	assert := assert.New(t)

	p, _ := NewPositionFen("8/8/8/8/8/3n4/8/4K3 w - -")
	ms := NewMaskSet(p)
	assert.True(ms.InCheck())
	assert.False(ms.DoubleCheck())
	assert.Equal(SqD3.Bb(), ms.Checkers)
	// a non-sliding checker can only be captured, never blocked: the
	// mask is exactly the checker's square.
	assert.Equal(SqD3.Bb(), ms.CheckMask)
}

func TestMaskSet_DoubleCheck(t *testing.T) {
	assert := assert.New(t)

	p, _ := NewPositionFen("4r3/8/8/b7/8/8/8/4K3 w - -")
	ms := NewMaskSet(p)
	assert.True(ms.InCheck())
	assert.True(ms.DoubleCheck())
	assert.Equal(SqE8.Bb()|SqA5.Bb(), ms.Checkers)
	assert.Equal(BbZero, ms.CheckMask)
	// nothing can resolve a double check but moving the king itself.
	assert.Equal(BbZero, ms.CanMoveTo(SqE1))
}

func TestMaskSet_OrthogonalPin(t *testing.T) {
	assert := assert.New(t)

	p, _ := NewPositionFen("4r3/8/8/8/4R3/8/8/4K3 w - -")
	ms := NewMaskSet(p)
	assert.False(ms.InCheck())
	assert.True(ms.IsPinned(SqE4))
	assert.False(ms.PinnedDiag.Has(SqE4))

	allowed := ms.CanMoveTo(SqE4)
	assert.True(allowed.Has(SqE5))
	assert.True(allowed.Has(SqE8))
	assert.False(allowed.Has(SqD4))
	assert.False(allowed.Has(SqF4))
}

func TestMaskSet_DiagonalPin(t *testing.T) {
	assert := assert.New(t)

	p, _ := NewPositionFen("8/8/8/b7/8/8/3B4/4K3 w - -")
	ms := NewMaskSet(p)
	assert.False(ms.InCheck())
	assert.True(ms.IsPinned(SqD2))
	assert.False(ms.PinnedOrth.Has(SqD2))

	allowed := ms.CanMoveTo(SqD2)
	assert.True(allowed.Has(SqC3))
	assert.True(allowed.Has(SqA5))
	assert.False(allowed.Has(SqE1))
	assert.False(allowed.Has(SqC1))
}

// Two own pieces on the same ray between the king and an enemy slider
// block each other: neither is pinned, and the slider isn't even a
// checker once the first one is accounted for.
func TestMaskSet_TwoBlockersOnSameRayIsNotAPin(t *testing.T) {
	assert := assert.New(t)

	p, _ := NewPositionFen("4r3/8/4N3/8/8/4N3/8/4K3 w - -")
	ms := NewMaskSet(p)
	assert.False(ms.InCheck())
	assert.False(ms.IsPinned(SqE3))
	assert.False(ms.IsPinned(SqE6))
	assert.Equal(BbZero, ms.PinnedOrth)
}

func TestMaskSet_UnrelatedPieceIsUnrestricted(t *testing.T) {
	assert := assert.New(t)

	p, _ := NewPositionFen("4r3/8/8/8/4R2N/8/8/4K3 w - -")
	ms := NewMaskSet(p)
	// a piece off the checking/pinning rays entirely is free to move
	// anywhere its own pattern allows.
	assert.False(ms.IsPinned(SqH4))
	assert.Equal(BbAll, ms.CanMoveTo(SqH4))
}

func TestBuildMaskSet_PooledInstanceMatchesNewMaskSet(t *testing.T) {
	assert := assert.New(t)

	p, _ := NewPositionFen("4r3/8/8/8/4R3/8/8/4K3 w - -")
	var ms MaskSet
	p.BuildMaskSet(&ms)
	want := NewMaskSet(p)
	assert.Equal(*want, ms)
}
