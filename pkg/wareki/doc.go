// Package wareki converts Japanese era-date codes into Gregorian years.
//
// An era code is exactly three characters: an era prefix followed by a
// two-digit, 1-based year within that era. The prefix is either a letter
// (M, T, S, H, R) or its digit synonym (1..5), so "H01" and "401" both name
// the first year of Heisei and convert to 1989.
//
//	year, err := wareki.ToGregorianYear("S64") // 1989, nil
//
// Every rejection is returned as a *Error carrying an ErrorKind; use
// errors.Is with the Err* sentinels or KindOf to branch on it. The package
// holds no mutable state and all functions are safe for concurrent use.
package wareki
