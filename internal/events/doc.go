// Package events provides types and interfaces for observing an assembly.
//
// The simulation emits an Event whenever a member or law is registered, a
// support pledge is accepted or refused, a survey result changes, or a law
// is suggested. Handlers subscribe through an EventEmitter and never depend
// on the domain packages directly.
//
// The primary components are:
//   - Event: a typed, JSON-encoded record of something that happened
//   - EventHandler: interface for components that can handle events
//   - EventEmitter: interface for components that can emit events
package events
