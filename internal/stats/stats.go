package stats

import (
	"expvar"
	"iter"
	"maps"
	"slices"
)

// Stats holds expvar-backed counters for a tally run and publishes them under
// a common key prefix. All counters are expvar.Map and are safe for concurrent
// updates. When the standard expvar HTTP handler is registered, these values
// are available at /debug/vars.
//
// - extally/lines/total — count of all input lines read, blank ones included
// - extally/lines/blank — lines which were empty or whitespace only and got skipped
// - extally/lines/error — lines which could not be read or were not valid UTF-8
// - extally/keys/total — distinct extension keys in the final report
type Stats struct {
	prefix string
	root   *expvar.Map
	lines  *expvar.Map
	keys   *expvar.Map
}

// New publishes new set of metrics. Registering the same metrics twice causes panic, so for tests, the prefix should be unique.
func New(prefix string) *Stats {
	root := expvar.NewMap(prefix)
	lines := new(expvar.Map).Init()
	keys := new(expvar.Map).Init()

	lines.Add("total", 0)
	lines.Add("blank", 0)
	lines.Add("error", 0)

	keys.Add("total", 0)

	root.Set("lines", lines)
	root.Set("keys", keys)

	return &Stats{
		prefix: prefix,
		root:   root,
		lines:  lines,
		keys:   keys,
	}
}

func (s *Stats) IncLines() {
	s.lines.Add("total", 1)
}
func (s *Stats) IncBlankLines() {
	s.lines.Add("blank", 1)
}
func (s *Stats) IncErrLines() {
	s.lines.Add("error", 1)
}
func (s *Stats) IncKeys() {
	s.keys.Add("total", 1)
}

// Stats returns a name, value iterator across registered metrics. This uses expvar.Do under the hood, so is safe to be called concurrently.
// Stats are returned in an alphabetic order.
func (s Stats) Stats() iter.Seq2[string, string] {
	stats := make(map[string]string, 4)
	s.lines.Do(func(kv expvar.KeyValue) {
		stats["/lines/"+kv.Key] = kv.Value.String()
	})
	s.keys.Do(func(kv expvar.KeyValue) {
		stats["/keys/"+kv.Key] = kv.Value.String()
	})

	keys := slices.Sorted(maps.Keys(stats))
	return func(yield func(string, string) bool) {
		for _, key := range keys {
			if !yield(s.prefix+key, stats[key]) {
				return
			}
		}
	}
}
