// Package indicator implements streaming technical-analysis indicators.
//
// Every indicator is an independent unit constructed with a fixed
// configuration (window lengths, smoothing periods, multipliers) that never
// changes afterwards. Feeding one bar at a time through Update mutates a
// bounded amount of internal state and returns the new indicator value; no
// unit ever re-scans history. Reset returns a unit to its just-constructed
// state.
//
// While a unit is warming up (fewer samples than its lookback requires),
// Update returns math.NaN(). Degenerate arithmetic such as a zero price
// range or a zero average loss is not an error; each indicator documents its
// fallback value for that case.
//
// Units are not safe for concurrent use. One goroutine owns one unit and
// calls Update in strict bar order; distinct units share no state and may be
// driven from different goroutines.
package indicator
