// Package density reads density-profile bin tables.
//
// What:
//
// A density profile is a whitespace-separated numeric table, one bin
// per row, with # comment lines. ReadProfile extracts two columns (bin
// position and a density-like value); Profile.LastPositive finds the
// position of the last bin whose value is still positive.
//
// Why:
//
// The transfer workflow derives its particle-selection window from a
// precomputed density profile: the last bin with a nonzero
// electrode-surface distance marks the first particle layer at the
// electrode.
//
// Errors: ErrColumn for rows missing a requested column, ErrNoData for
// tables without a single data row, ErrNoPositive when LastPositive
// finds no positive value.
package density
