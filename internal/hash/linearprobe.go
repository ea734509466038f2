package hash

// ProbeIteration - Implements Linear Probing.
// Given the start index from a hash function it returns the index to visit in the given iteration, wrapping
// around to the beginning of the table once the end is passed. For start within the table and iteration
// running from 0 to tableSize - 1 it visits every index exactly once.
func ProbeIteration(start, iteration, tableSize int) int {
	probe := start + iteration
	if probe >= tableSize {
		probe -= tableSize
	}

	return probe
}

// ProbeLength - Returns the number of iterations needed to get from start to index when probing linearly.
// It is the inverse of ProbeIteration.
func ProbeLength(start, index, tableSize int) int {
	length := index - start
	if length < 0 {
		length += tableSize
	}

	return length
}
