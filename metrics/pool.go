package metrics

import "sync"

var stringSlicePool = sync.Pool{
	New: func() any {
		s := make([]string, 0, 2)
		return &s
	},
}

func getStringSlice() *[]string {
	s := stringSlicePool.Get().(*[]string)
	*s = (*s)[:0]
	return s
}

func putStringSlice(s *[]string) {
	stringSlicePool.Put(s)
}
