// Package yuletide procedurally generates and animates a decorative holiday
// tree scene, and displays it with [Ebitengine].
//
// Generation produces flat point buffers (canopy, twinkle lights, snow),
// index-addressed instance batches (baubles, bells, stockings, stacked
// gifts with ribbons and bows, candy canes, confetti, floor ribbons) and
// immutable curve and tube geometry (tinsel, draped string lights). All of
// it runs once per configuration and is memoized by [Scene].
//
// # Quick start
//
//	scene := yuletide.NewScene(yuletide.DefaultConfig())
//	yuletide.Run(scene, yuletide.RunConfig{
//		Title: "Yuletide", Width: 1280, Height: 720,
//	})
//
// For full control, drive the scene yourself and read its buffers:
//
//	scene.SetSpeed(0.5)
//	scene.SetVisible(yuletide.CategorySnow, false)
//	scene.Update(elapsed, delta)
//	field := scene.Canopy() // Positions, Colors, Sizes
//	for _, l := range scene.Layers() {
//		_ = l.Batch.Matrices // per-instance transforms, stable index
//	}
//
// # Determinism
//
// Every generator takes an explicit *rand.Rand. [Scene] derives one stream
// per component from [Config.Seed], so equal seeds produce identical scenes
// and changing one component's count leaves the others untouched.
//
// # Configuration
//
// [LoadConfig] overlays a YAML document on [DefaultConfig]. Speed easing
// and the camera zoom use [gween]; ECS integration is available through the
// [Donburi] adapter in yuletide/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package yuletide
