package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestThreadSafeDuplicateDetector_SameGameFromManyWorkers(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)
	board := engine.InitialBoard()
	sig := NewGameSignature(&board, nil)

	var wg sync.WaitGroup
	for w := 0; w < 10; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				detector.CheckAndAdd(sig)
			}
		}()
	}
	wg.Wait()

	testutil.AssertEqual(t, detector.Stats(), DuplicateStats{Unique: 1, Duplicates: 99})
}

func TestThreadSafeDuplicateDetector_DistinctEndings(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)
	fens := []string{
		engine.InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		"rnbqkbnr/pppppppp/8/8/2P5/8/PP1PPPPP/RNBQKBNR b KQkq c3 0 1",
	}

	var wg sync.WaitGroup
	for _, fen := range fens {
		board := mustBoard(t, fen)
		sig := NewGameSignature(&board, nil)
		wg.Add(1)
		go func() {
			defer wg.Done()
			detector.CheckAndAdd(sig)
		}()
	}
	wg.Wait()

	testutil.AssertEqual(t, detector.Stats(), DuplicateStats{Unique: len(fens)})
}

func TestThreadSafeDuplicateDetector_Capacity(t *testing.T) {
	const capacity = 50
	detector := NewThreadSafeDuplicateDetector(false, capacity)

	var wg sync.WaitGroup
	for w := 0; w < 10; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				// a different white piece swapped for a knight per game
				board := engine.InitialBoard()
				idx := w*10 + j
				board.Set(chess.Square(idx%16), chess.NoPiece)
				board.Set(chess.Square(16+idx/16), chess.W(chess.Knight))
				detector.CheckAndAdd(NewGameSignature(&board, nil))
			}
		}(w)
	}
	wg.Wait()

	stats := detector.Stats()
	testutil.AssertTrue(t, stats.Full, "detector should be full after 100 games")
	testutil.AssertEqual(t, stats.Unique, capacity)
}
