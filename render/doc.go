// Package render visualizes a search over a gridmap.Topology.
//
// A Canvas holds one Paint per cell, using the classic color scheme:
// black unvisited, white walls, red visited, yellow for the newest visited
// cell, blue route, green endpoints.
//
// Sinks:
//
//   - Terminal draws the Canvas on a tcell screen, two columns per cell.
//     Terminal.OnVisit fits search.WithOnVisit, so the screen follows the
//     search live. Wait blocks until Escape, Ctrl-C or q.
//   - EncodePNG and SavePNG rasterize the Canvas with fogleman/gg.
//
// Typical flow:
//
//	canvas := render.NewCanvas(topo)
//	term := render.NewTerminal(screen, canvas, render.WithDelay(5*time.Millisecond))
//	term.Draw()
//	eng, _ := search.NewEngine(topo, search.WithOnVisit(term.OnVisit))
//	res := eng.RunAStar()
//	canvas.Track(pathtrack.Classify(res.Path))
//	term.Draw()
//	term.Wait()
package render
