// Package probingtable implements a fixed capacity key/value table using open addressing with linear probing
// for collision resolution. The hash function is not owned by the table, it is supplied by the caller in every
// call to Insert, Search and Get, and the table makes no assumption of it being perfect.
//
// The table never grows and records can not be removed, so the capacity has to be sized in advance.
// A ProbingTable is not safe for concurrent use.
package probingtable

import (
	"fmt"
	"github.com/gostonefire/probingtable/hashfunc"
	"github.com/gostonefire/probingtable/internal/hash"
)

// SlotState - State of a slot in the table
type SlotState uint8

// SlotEmpty - State indicating a slot that has never been in use
const SlotEmpty SlotState = 0

// SlotOccupied - State indicating a slot that holds a key and value
const SlotOccupied SlotState = 1

// Slot - Represents one position in the table. State is the only thing telling whether Key and Value hold data,
// a Slot with zero values is an empty slot.
type Slot[K comparable, V any] struct {
	State SlotState
	Key   K
	Value V
}

// TableStat - Statistics on the overall usage and probe chain lengths in the table
//   - Records is the total number of records stored
//   - Capacity is the number of slots in the table
//   - FillFactor is Records divided by Capacity
//   - MaxProbeLength is the longest distance from a record's hashed index to the slot it is stored in
//   - AverageProbeLength is the average of that distance over all records
//   - ProbeDistribution is the distance for the record in each slot, -1 for empty slots (nil unless asked for)
type TableStat struct {
	Records            int
	Capacity           int
	FillFactor         float64
	MaxProbeLength     int
	AverageProbeLength float64
	ProbeDistribution  []int
}

// ProbingTable - The main implementation struct
type ProbingTable[K comparable, V any] struct {
	slots   []Slot[K, V]
	records int
}

// New - Returns a new table with capacity empty slots. The capacity is fixed for the lifetime of the table.
//   - capacity is the number of slots, it has to be a positive value
//
// It returns:
//   - table is a pointer to a ProbingTable struct
//   - err is of type InvalidCapacity if capacity is zero or negative
func New[K comparable, V any](capacity int) (table *ProbingTable[K, V], err error) {
	if capacity <= 0 {
		err = InvalidCapacity{Capacity: capacity}
		return
	}

	table = &ProbingTable[K, V]{
		slots: make([]Slot[K, V], capacity),
	}

	return
}

// Clone - Returns an independent copy of the table. Records are kept in the same slot positions as in the
// original, so probing behaves identically on both tables. Cloning a nil table returns an empty table.
func (P *ProbingTable[K, V]) Clone() *ProbingTable[K, V] {
	clone := &ProbingTable[K, V]{}
	clone.CopyFrom(P)

	return clone
}

// CopyFrom - Replaces the contents of the table with a copy of other, including its capacity.
// The previous storage is released and the table does not share anything with other afterwards.
// A nil other is taken as an empty table, leaving the table with no capacity.
func (P *ProbingTable[K, V]) CopyFrom(other *ProbingTable[K, V]) {
	if P == other {
		return
	}

	if other == nil {
		P.slots = nil
		P.records = 0
		return
	}

	slots := make([]Slot[K, V], len(other.slots))
	copy(slots, other.slots)

	P.slots = slots
	P.records = other.records
}

// Capacity - Returns the number of slots in the table, i.e. the capacity given in the call to New
func (P *ProbingTable[K, V]) Capacity() int {
	return len(P.slots)
}

// Len - Returns the number of occupied slots
func (P *ProbingTable[K, V]) Len() int {
	return P.records
}

// GetSlot - Returns the slot at the given index
//   - index is a position in the table between 0 and Capacity - 1 (inclusive)
//
// It returns:
//   - slot is a copy of the slot
//   - err is a standard error if index is outside the table
func (P *ProbingTable[K, V]) GetSlot(index int) (slot Slot[K, V], err error) {
	if index < 0 || index >= len(P.slots) {
		err = fmt.Errorf("slot index %d is outside the table", index)
		return
	}

	slot = P.slots[index]

	return
}

// Stat - Walks through the entire table and produce a TableStat struct with information.
// The hash function is used to find each record's original index, so it should be the same function
// the records were inserted with for the probe lengths to make sense.
//   - hashFunc is the hash function used when the records were inserted
//   - includeDistribution set to true will include a slice of length Capacity with probe lengths per slot, false will set TableStat.ProbeDistribution to nil.
func (P *ProbingTable[K, V]) Stat(hashFunc hashfunc.HashFunc[K], includeDistribution bool) (tableStat *TableStat, err error) {
	if hashFunc == nil {
		err = fmt.Errorf("hash function can not be nil")
		return
	}

	ts := TableStat{Capacity: len(P.slots)}
	if includeDistribution {
		ts.ProbeDistribution = make([]int, len(P.slots))
	}

	var start, length, total int
	for i, slot := range P.slots {
		if slot.State != SlotOccupied {
			if includeDistribution {
				ts.ProbeDistribution[i] = -1
			}
			continue
		}

		start, err = P.getStartIndex(slot.Key, hashFunc)
		if err != nil {
			return
		}

		length = hash.ProbeLength(start, i, len(P.slots))
		ts.Records++
		total += length
		if length > ts.MaxProbeLength {
			ts.MaxProbeLength = length
		}
		if includeDistribution {
			ts.ProbeDistribution[i] = length
		}
	}

	if ts.Records > 0 {
		ts.FillFactor = float64(ts.Records) / float64(ts.Capacity)
		ts.AverageProbeLength = float64(total) / float64(ts.Records)
	}

	tableStat = &ts
	return
}
