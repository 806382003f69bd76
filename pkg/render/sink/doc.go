// Package sink draws a computed layout into output formats.
//
// # Formats
//
//   - [RenderSVG]: vector output with embedded images and font
//   - [RenderPNG]: raster output drawn natively with fogleman/gg
//   - [RenderPDF]: the SVG converted with rsvg-convert
//   - [RenderJSON]: the layout geometry for other tools
//
// # Coordinates
//
// A layout is expressed in data units: agencies sit at x = -1, companies at
// x = 1, and y runs downwards in steps of the agency spacing. Sinks map the
// layout's bounds onto the output canvas, stretching each axis
// independently, so images keep the extents the layout gave them rather
// than their own aspect ratio.
//
// Font sizes are given in points for a 14 inch figure at 100 dpi and scale
// with the canvas width.
//
// # Options
//
// The drawing sinks share [Option]:
//
//	svg := sink.RenderSVG(l,
//	    sink.WithTheme(t),
//	    sink.WithFont(f),
//	    sink.WithImages(images),
//	)
package sink
