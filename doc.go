// Package theorylab is a small retained-mode 2D animation engine for
// explaining ideas with moving diagrams. Scenes are described up front as a
// node tree plus a timeline, then played in a window with [Ebitengine] or
// rendered headlessly to PNG frames and GIFs with [gogpu/gg].
//
// # Quick start
//
//	scene := theorylab.NewScene()
//	box := theorylab.NewSquare("box", 100)
//	box.Stroke, box.StrokeWidth = theorylab.ColorBlue, 3
//	scene.Stage(box)
//	scene.Play(theorylab.NewCreate(box))
//	scene.Wait(1)
//	theorylab.Run(scene, theorylab.RunConfig{Title: "demo"})
//
// # Scene graph
//
// Every visual element is a [Node]: a group, a rectangle or a line of text.
// Positions are translation-only and alpha multiplies down the tree. Layout
// helpers ([Node.ArrangeGrid], [Node.ArrangeColumn], [Node.NextTo],
// [Node.MoveTo]) position nodes relative to each other's bounds.
//
// # Timeline
//
// [Scene.Add], [Scene.Play], [Scene.PlayFor] and [Scene.Wait] append steps.
// Nothing moves until a [Player] runs the timeline; the player snapshots
// the tree first, so [Player.Seek] and [Player.Reset] replay it exactly.
// Animations are tweens (via [gween]): [FadeIn], [FadeOut], [NewCreate] and
// [NewMoveAlongPath].
//
// # Output
//
// [Run] plays a scene in a window, optionally driven by a [CaptureScript]
// that seeks and takes screenshots. [Export] renders every frame with a
// [GGCanvas] and writes a manifest.json describing the run.
//
// # Logging
//
// The package is silent by default. Route its messages with [SetLogger].
//
// [Ebitengine]: https://ebitengine.org
// [gogpu/gg]: https://github.com/gogpu/gg
// [gween]: https://github.com/tanema/gween
package theorylab
