// Package dial renders analog clock faces from declarative descriptions.
//
// A clock is described as a set of typed elements (Face, Ticks, Numerals,
// Overlay, Hands), each carrying a property map. The Clock compositor
// resolves element properties, converts time values and angular positions
// into pixel-space geometry, draws the elements in a fixed z-order onto a
// supersampled working canvas, downsamples to the target resolution, and
// applies optional post-processing transforms.
//
// Quick start with a preset style:
//
//	clock, err := dial.Create("10:09:30", "classic")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := clock.Save("clock.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// Or assemble elements explicitly:
//
//	clock, _ := dial.NewClock(400, 400)
//	face, _ := dial.NewElement("Face", map[string]any{"shape": "circle", "color": "white"})
//	hands, _ := dial.NewElement("Hands", map[string]any{"time": "3:15:30"})
//	clock.AddElement(face)
//	clock.AddElement(hands)
//	img, err := clock.Render()
//
// Malformed descriptions fail with [ConfigError]; missing fonts or
// background images fail with [ResourceError]. Rendering is a pure,
// synchronous function of the element list and canvas spec.
package dial
