// Package model describes the values persisted by a gyt repository:
// milestones, the commits grouping them, and the location of the JSON
// documents holding both.
//
// The wire format is plain JSON. Decoding is strict: records missing
// their message or timestamp are rejected rather than defaulted.
package model
