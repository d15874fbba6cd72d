// Package ecs provides ECS adapters for yuletide scene events.
//
// The primary adapter is [NewDonburiSink], which forwards scene state
// changes (generation, category visibility, speed) into a [Donburi] world
// as typed events. Subscribe to [SceneEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
