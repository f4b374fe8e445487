// Package delay provides the fixed-length lookahead ring used to hold
// program audio while its gain is being decided.
package delay
