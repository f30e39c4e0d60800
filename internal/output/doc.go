// Package output writes the final score table to a delimited file.
//
// Writing happens only after the whole table is computed in memory; a write
// failure therefore never corrupts or discards extracted data, it just
// leaves it unpersisted.
package output
