package chainmap

// Stats is a point-in-time snapshot of the table layout.
type Stats struct {
	Size     int
	Capacity int
	// Ratio of Size to Capacity, kept at or below LoadFactor after every insert.
	LoadFactor float64

	EmptyBuckets     int
	CollidingBuckets int
	LongestChain     int

	// Number of times the table has grown since creation.
	Resizes int
}
