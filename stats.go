package maxsized

// Stats contains map operation counters.
type Stats struct {
	Puts      int64
	Replaces  int64 // Successful replaces only.
	Hits      int64 // Gets that found their key.
	Misses    int64
	Evictions int64
	Size      int // Current number of entries.
}

// HitRate returns the fraction of Gets that hit, as a percentage.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}
