// Package scan provides ready made [ascgrid.ScanListener] implementations.
//
// Listeners observe a grid while [ascgrid.Grid.Write] streams its body. [Offset] rewrites
// numeric cells, [Summary] collects statistics and [Preview] renders the grid into an image.
// Combine several of them with [Chain]:
//
//	sum := &scan.Summary{NoData: "-9999"}
//	err := g.Write(out, scan.Chain(scan.Offset{Delta: 10, Skip: "-9999"}, sum))
package scan
