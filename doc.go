// Package scrollreel is a scroll-driven image-sequence viewer for [Ebitengine].
//
// As the page scrolls, the viewer steps through a pre-rendered sequence of
// frame images painted onto a full-window canvas, simulating a short video
// scrub. Frame sets are selected by a [Category] and a [Theme]; switching
// either reloads the set.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	src := scrollreel.NewFSSource(os.DirFS("."))
//	v, err := scrollreel.NewViewer(scrollreel.DefaultConfig(), src)
//	if err != nil {
//		log.Fatal(err)
//	}
//	scrollreel.Run(v, scrollreel.RunConfig{
//		Title: "Scroll Reel", Width: 1280, Height: 720,
//	})
//
// [Viewer] implements [ebiten.Game], so it can also be passed to
// [ebiten.RunGame] directly.
//
// # Frames
//
// Frame paths follow the template
//
//	{root}/{category}/{theme}/ezgif-frame-{index:03d}.{ext}
//
// resolved by [FrameLayout]. Frame 1 is loaded first and blocks the loading
// overlay; frames 2..N are fetched in the background. Results are tagged
// with a generation so a category or theme switch never receives frames
// from the previous set.
//
// # Scrolling
//
// Scroll position is mapped to progress through [ScrollObserver]
// subscriptions. The default [ScrollTriggers] smooths progress with
// [gween] tweens. One subscription maps progress to a frame index, an
// optional one pans a horizontal strip, and a global one docks the
// navigation bar.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package scrollreel
