// Package lcs computes the longest common subsequence of two strings
// via the classic dynamic-programming table, and reconstructs one
// witness subsequence from it.
//
// The table for X of length m and Y of length n is a single contiguous
// (m+1)×(n+1) buffer in row-major order with the explicit index formula
// j + i*width — one allocation, cache-friendly, no nested slices. Row 0
// and column 0 hold the zero boundary; cell (i,j) is the LCS length of
// the first i characters of X and the first j characters of Y.
//
// Reconstruction walks backward from (m,n): a zero cell emits the empty
// string, a character match recurses diagonally and appends the matched
// character, and otherwise the walk follows the strictly larger of the
// left and up neighbors, ties taking the up path. The tie-break
// determines exactly which of several equal-length subsequences is
// produced and is part of the contract.
//
// Reference example:
//
//	X = "CATCGA"
//	Y = "GTACCGTCA"
//
//	       G  T  A  C  C  G  T  C  A
//	    0  0  0  0  0  0  0  0  0  0
//	 C  0  0  0  0  1  1  1  1  1  1
//	 A  0  0  0  1  1  1  1  1  1  2
//	 T  0  0  1  1  1  1  1  2  2  2
//	 C  0  0  1  1  2  2  2  2  3  3
//	 G  0  1  1  1  2  2  3  3  3  3
//	 A  0  1  1  2  2  2  3  3  3  4
//
// giving length 4 and the subsequence "CTCA".
//
// Complexity: O(m·n) time and memory to build; O(m+n) to reconstruct.
package lcs
