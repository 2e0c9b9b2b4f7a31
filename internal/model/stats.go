package model

import "iter"

const (
	StatsLinesTotal = "/lines/total"
	StatsLinesBlank = "/lines/blank"
	StatsLinesErr   = "/lines/error"
	StatsKeysTotal  = "/keys/total"
)

// Stats abstracts the runtime counters, so consumers do not depend on the
// expvar backed implementation.
type Stats interface {
	IncLines()
	IncBlankLines()
	IncErrLines()
	IncKeys()
	Stats() iter.Seq2[string, string]
}
