package codec

import "github.com/arloliu/pathpack/format"

// Stats summarizes the records written by an Encoder.
type Stats struct {
	// Records is the number of records written.
	Records int
	// Bytes is the total number of bytes written, headers included.
	Bytes int
	// Widths counts the records with a payload per width type.
	Widths [8]int
}

func (s *Stats) add(width format.WidthType, hasPayload bool, size int) {
	s.Records++
	s.Bytes += size
	if hasPayload {
		s.Widths[width]++
	}
}

// WidthCount returns the number of records stored with the given width.
func (s Stats) WidthCount(width format.WidthType) int {
	if !width.Valid() {
		return 0
	}

	return s.Widths[width]
}

// IntegerRecords returns the number of records stored with an integer width.
func (s Stats) IntegerRecords() int {
	n := 0
	for _, w := range format.IntegerProbeOrder() {
		n += s.Widths[w]
	}

	return n
}
