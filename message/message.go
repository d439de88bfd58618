package message

import "github.com/c360/signalkit/typetag"

// RootTag is the root of the message type hierarchy. Every concrete
// message tag must descend from it, directly or through intermediate tags.
var RootTag = typetag.New("Message")

// Message is the unit of data flow through the wiring layer.
//
// A concrete message reports its own, most-derived type tag through Tag().
// The tag is resolved by ordinary dynamic dispatch on the concrete type, so
// a message held through this interface still identifies itself correctly.
// This is what the checked dispatch path relies on to test compatibility at
// delivery time.
//
// Messages are reference types: the same message instance may sit in
// several queue entries at once after a fan-out emission, and handlers
// receive the shared instance, not a copy. The queue keeps the message
// reachable until every entry referencing it is delivered or purged.
//
// Defining a message:
//
//	var ballTag = typetag.NewSub("Ball", message.RootTag)
//
//	type Ball struct {
//		message.Base
//		Bounces int
//	}
//
//	func (b *Ball) Tag() *typetag.Tag { return ballTag }
type Message interface {
	// Tag returns the type tag of the concrete message.
	Tag() *typetag.Tag
}
