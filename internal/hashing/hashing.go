// Package hashing provides Zobrist position keys, repetition counting and
// duplicate detection for finished games.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// DuplicateDetector tracks finished games to spot self-play games that
// ended identically.
type DuplicateDetector struct {
	// hashTable stores seen signatures keyed by final position hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same move sequence
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity bounds the number of stored signatures (0 = unlimited)
	maxCapacity int
	// stored is the number of signatures held
	stored int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// Ply is the number of half-moves in the game
	Ply int
	// WeakHash is a fast hash for quick comparison
	WeakHash uint64
	// MoveHash hashes the move sequence
	MoveHash uint64
}

// NewGameSignature builds the signature of a game from its final position
// and move history.
func NewGameSignature(final *chess.Board, moves []chess.Move) GameSignature {
	return GameSignature{
		Hash:     GenerateZobristHash(final),
		Ply:      len(moves),
		WeakHash: WeakHash(final),
		MoveHash: HashMoveSequence(moves),
	}
}

// NewDuplicateDetector creates a new duplicate detector. maxCapacity of 0
// means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd checks if a game is a duplicate and adds it to the hash table.
// Returns true if the game is a duplicate. Once full, new signatures are
// checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	// Check for duplicates
	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if d.signaturesMatch(sig, existingSig) {
				d.duplicateCount++
				return true
			}
		}
	}

	if d.IsFull() {
		return false
	}

	// Add to hash table
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.stored++
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	// Primary check: Zobrist hash must match (already implied by hash table key)
	if a.Hash != b.Hash {
		return false
	}

	// Secondary check: weak hash for additional confidence
	if a.WeakHash != b.WeakHash {
		return false
	}

	if d.useExactMatch && (a.Ply != b.Ply || a.MoveHash != b.MoveHash) {
		return false
	}

	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
	d.stored = 0
}

// HashMoveSequence creates a hash from the UCI text of each move.
func HashMoveSequence(moves []chess.Move) uint64 {
	var hash uint64 = 0
	multiplier := uint64(31)

	for _, m := range moves {
		for _, c := range m.String() {
			hash = hash*multiplier + uint64(c)
		}
		// Separator
		hash = hash*multiplier + ' '
	}

	return hash
}
