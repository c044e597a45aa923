package puzzle

/*

Integer sets

*/

// An intset is a set of small integers, represented as a sorted
// slice.  We use intsets for candidate values because iteration
// order must be deterministic: a map of values would make branch
// order (and thus solver counters) vary from run to run.
type intset []int

// newIntsetRange: Make an intset from a range of values, 1 to max.
func newIntsetRange(max int) intset {
	if max < 1 {
		return intset{}
	}
	out := make(intset, max)
	for i := 0; i < max; i++ {
		out[i] = i + 1
	}
	return out
}

// newIntsetCopy: Make a copy of an intset.
func newIntsetCopy(in intset) intset {
	if in == nil {
		return nil
	}
	out := make(intset, len(in))
	copy(out, in)
	return out
}

// Has reports whether value v is in the intset.
func (ps intset) has(v int) bool {
	for _, pv := range ps {
		if pv == v {
			return true
		}
		if pv > v {
			return false
		}
	}
	return false
}

// Remove value v, returning whether it was there.
func (ps *intset) remove(v int) bool {
	end := len(*ps)
	for i := 0; i < end; i++ {
		pv := (*ps)[i]
		if pv == v {
			copy((*ps)[i:], (*ps)[i+1:])
			*ps = (*ps)[:end-1]
			return true
		}
		if pv > v {
			return false
		}
	}
	return false
}
