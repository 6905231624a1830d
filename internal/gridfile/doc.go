// Package gridfile reads and writes the two text formats shared by the
// boltgrid tools.
//
// A grid description holds the dimensions of the field, the simulation
// parameters and two point lists:
//
//	height width power eta
//	sourceCount
//	row col          (sourceCount lines)
//	targetCount
//	row col          (targetCount lines)
//
// A frame sequence holds a series of bolt snapshots:
//
//	height width frameCount
//	v v v ...        (height lines of width integers)
//	                 (one blank separator after every frame)
//
// Both formats are whitespace separated and carry no version field.
//
// # Strictness
//
// [ReadFrames] rejects rows with the wrong number of values, missing or
// non-blank separators and trailing content after the last frame. All such
// failures wrap [ErrMalformed] in a [*ParseError] carrying the line number.
package gridfile
