// Package flubber is a small view-animation engine for retained node trees,
// built on [gween] tweens.
//
// # Quick start
//
// Build an animation from an options record, start it, and advance the
// engine clock once per frame:
//
//	engine := flubber.NewEngine()
//	logo := flubber.NewRect("logo", 64, 64, flubber.ColorWhite)
//
//	anim, err := engine.Build(flubber.Options{
//		Preset:   flubber.PresetFadeIn,
//		Target:   logo,
//		Duration: 350,
//		Curve:    flubber.CurveEaseOut,
//	})
//	if err != nil {
//		return err
//	}
//	anim.OnComplete(func() { fmt.Println("visible") })
//	anim.Start()
//
//	for engine.Active() > 0 {
//		engine.Update(16)
//	}
//
// Durations and the clock share one unit, milliseconds.
//
// # Composition
//
// [Parallel] starts all members together and completes with the last one.
// [Sequence] starts each member only after the previous member's completion
// callbacks ran. Groups nest.
//
// # Presets and providers
//
// Built-in effects are selected by [Preset] name. Custom effects implement
// [Provider]; [Reveal] (circular mask reveal) and [IconMorph] (shrink, swap
// icon, grow) ship with the package.
//
// Everything is single-threaded: callbacks run inside Start or
// [Engine.Update] on the caller's goroutine. There is no cancellation; a
// started animation runs to completion.
//
// [gween]: https://github.com/tanema/gween
package flubber
