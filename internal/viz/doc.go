// Package viz draws grids and frame sequences in the terminal.
//
//   - [Canvas]: Braille-based pixel canvas, one sub-pixel per grid cell
//   - [Viewer]: Bubble Tea model that steps through a frame sequence
//   - [GrowthPlot], [ProfilePlot]: asciigraph line charts
//
// # Key Bindings
//
//	←/h, →/l - Previous/next frame
//	Space    - Play/Pause
//	g, G     - First/last frame
//	Q        - Quit
package viz
