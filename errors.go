package probingtable

import "fmt"

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct{}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	return "no record found"
}

// TableFull - Custom error to inform that the table is full and can't take more records
type TableFull struct {
	TableSize int
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	return fmt.Sprintf("table full, all %d slots probed without finding the key or an empty slot", E.TableSize)
}

// Is - Matches any TableFull regardless of table size
func (E TableFull) Is(target error) bool {
	_, ok := target.(TableFull)
	return ok
}

// InvalidCapacity - Custom error to inform that a table can not be created with the requested capacity
type InvalidCapacity struct {
	Capacity int
}

// Error - Used to notify that the requested capacity is not a positive number
func (E InvalidCapacity) Error() string {
	return fmt.Sprintf("capacity must be a positive value higher than 0 (zero), got %d", E.Capacity)
}

// Is - Matches any InvalidCapacity regardless of the capacity it was created with
func (E InvalidCapacity) Is(target error) bool {
	_, ok := target.(InvalidCapacity)
	return ok
}

// InvalidHashResult - Custom error to inform that the hash function returned an index outside the table,
// which is also how a hash function signals that a key is invalid.
type InvalidHashResult struct {
	Index     int
	TableSize int
}

// Error - Used to notify that the hash function returned an index outside permitted range
func (E InvalidHashResult) Error() string {
	return fmt.Sprintf("received index %d from hash function is outside permitted range 0 -> %d", E.Index, E.TableSize-1)
}

// Is - Matches any InvalidHashResult regardless of index and table size
func (E InvalidHashResult) Is(target error) bool {
	_, ok := target.(InvalidHashResult)
	return ok
}
