package probingtable

import (
	"fmt"
	"github.com/gostonefire/probingtable/hashfunc"
	"github.com/gostonefire/probingtable/internal/hash"
)

// Insert - Updates an existing record with new value or adds it if no existing is found with same key.
//   - key is the identifier of a record
//   - value is the value to store along with the key
//   - hashFunc is the hash function to get the start index for probing, it is called once with the key and Capacity
//
// It returns:
//   - err is nil if the record was set, otherwise of type InvalidHashResult if the hash function refused the key or
//     returned an index outside the table, of type TableFull if no slot could be found for the key, or a
//     standard error. The table is never changed when an error is returned.
func (P *ProbingTable[K, V]) Insert(key K, value V, hashFunc hashfunc.HashFunc[K]) (err error) {
	if hashFunc == nil {
		err = fmt.Errorf("hash function can not be nil")
		return
	}

	start, err := P.getStartIndex(key, hashFunc)
	if err != nil {
		return
	}

	index, err := P.linearProbingForSet(start, key)
	if err != nil {
		return
	}

	slot := &P.slots[index]
	if slot.State == SlotEmpty {
		slot.State = SlotOccupied
		slot.Key = key
		P.records++
	}
	slot.Value = value

	return
}

// Search - Searches the table for the given key.
// Both a key that is not in the table and a key that the hash function refuses give the same result, use Get to
// tell them apart.
//   - key is the identifier of a record
//   - hashFunc is the hash function to get the start index for probing, it is called once with the key and Capacity
//
// It returns:
//   - value is the value of the matching record if found
//   - found is true if a matching record was found
func (P *ProbingTable[K, V]) Search(key K, hashFunc hashfunc.HashFunc[K]) (value V, found bool) {
	value, err := P.Get(key, hashFunc)
	found = err == nil

	return
}

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of a record
//   - hashFunc is the hash function to get the start index for probing, it is called once with the key and Capacity
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type NoRecordFound is also returned.
//   - err is either of type NoRecordFound, of type InvalidHashResult if the hash function refused the key or
//     returned an index outside the table, or a standard error
func (P *ProbingTable[K, V]) Get(key K, hashFunc hashfunc.HashFunc[K]) (value V, err error) {
	if hashFunc == nil {
		err = fmt.Errorf("hash function can not be nil")
		return
	}

	start, err := P.getStartIndex(key, hashFunc)
	if err != nil {
		return
	}

	index, err := P.linearProbingForGet(start, key)
	if err != nil {
		return
	}

	value = P.slots[index].Value

	return
}

// getStartIndex - Returns the index where probing starts for the given key
func (P *ProbingTable[K, V]) getStartIndex(key K, hashFunc hashfunc.HashFunc[K]) (index int, err error) {
	tableSize := len(P.slots)
	index = hashFunc(key, tableSize)
	if index < 0 || index >= tableSize {
		err = InvalidHashResult{Index: index, TableSize: tableSize}
		return
	}

	return
}

// linearProbingForGet - Is the Linear Probing Collision Resolution Technique algorithm for getting a record.
func (P *ProbingTable[K, V]) linearProbingForGet(start int, key K) (index int, err error) {
	tableSize := len(P.slots)

	// Loop through at most the entire set of slots
	for i := 0; i < tableSize; i++ {
		index = hash.ProbeIteration(start, i, tableSize)

		// Records are never removed, so an empty slot ends every probe chain that passes it
		switch P.slots[index].State {
		case SlotEmpty:
			err = NoRecordFound{}
			return

		case SlotOccupied:
			if P.slots[index].Key == key {
				return
			}
		}
	}

	err = NoRecordFound{}
	return
}

// linearProbingForSet - Is the Linear Probing Collision Resolution Technique algorithm for getting a slot for set.
// It returns either the slot already holding the key or the first empty slot in the probe chain.
func (P *ProbingTable[K, V]) linearProbingForSet(start int, key K) (index int, err error) {
	tableSize := len(P.slots)

	for i := 0; i < tableSize; i++ {
		index = hash.ProbeIteration(start, i, tableSize)

		switch P.slots[index].State {
		case SlotEmpty:
			return

		case SlotOccupied:
			if P.slots[index].Key == key {
				return
			}
		}
	}

	// When we have traversed through the entire set of slots we just have to face that the table is full
	err = TableFull{TableSize: tableSize}
	return
}
