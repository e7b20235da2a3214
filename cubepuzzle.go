// Package cubepuzzle implements the logic of an interactive 3x3x3 puzzle
// cube: the 27 cell grid, layer membership, face classification, mapping a
// pointer drag on a face to the layer it turns, and the quarter-turn
// animation that commits each move.
//
// # Features
//
//   - Face classification from a surface normal
//   - Layer membership for the six faces and three middle slices
//   - Drag-to-layer resolution with face-relative rotation sign
//   - Fixed speed quarter-turn animation with exact snapping on commit
//   - Sticker net projection and solved detection
//   - Move history in standard notation
//
// # Quick Start
//
// Drive the controller once per rendered frame:
//
//	cube := cubepuzzle.New()
//
//	cube.OnMove(func(m cubepuzzle.Move) {
//	    fmt.Println("Move:", m.Notation())
//	})
//
//	for frame := range frames {
//	    pick := cube.Pick(rayCaster)
//	    if _, err := cube.Update(cubepuzzle.Input{
//	        Delta:     frame.PointerDelta,
//	        Held:      frame.ButtonDown,
//	        Released:  frame.ButtonUp,
//	        DeltaTime: frame.Seconds,
//	        Pick:      pick,
//	    }); err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, cell := range cube.Cells() {
//	        draw(cell)
//	    }
//	}
//
// The rendering layer owns the ray cast itself: it implements RayCaster and
// the controller keeps the nearest hit.
//
// # Drag Resolution
//
// A drag on the Front, Back, Left or Right face turns a layer orthogonal to
// that face: vertical drags pick a vertical layer, horizontal drags pick a
// horizontal layer. Drags on the Up and Bottom faces never turn a layer.
// Only one quarter turn runs at a time; a drag during a turn is ignored.
package cubepuzzle
