// Package ecs provides ECS adapters for scrollreel's viewer notifications.
//
// The primary adapter is [NewDonburiSink], which publishes viewer events
// (frame drawn, ready, load failed, category and theme changes) into a
// [Donburi] world as typed events. Subscribe to [ViewerEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	viewer.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
