package wire

import (
	"github.com/c360/signalkit/message"
	"github.com/c360/signalkit/typetag"
)

// Test tag hierarchy: Message <- Event <- StatusEvent <- BatteryStatusEvent,
// plus an unrelated Command branch.
var (
	eventTag   = typetag.NewSub("Event", message.RootTag)
	statusTag  = typetag.NewSub("StatusEvent", eventTag)
	batteryTag = typetag.NewSub("BatteryStatusEvent", statusTag)
	commandTag = typetag.NewSub("Command", message.RootTag)
)

// testMsg carries an explicit tag so one type can play any role in the
// hierarchy, plus a sequence number for ordering assertions.
type testMsg struct {
	message.Base
	tag *typetag.Tag
	seq int
}

func newTestMsg(tag *typetag.Tag, seq int) *testMsg {
	return &testMsg{Base: message.NewBase(), tag: tag, seq: seq}
}

func (m *testMsg) Tag() *typetag.Tag {
	return m.tag
}

// recorder collects delivered messages for assertions.
type recorder struct {
	msgs  []*testMsg
	links []*Link
}

func (r *recorder) handler(msg message.Message, link *Link) {
	r.msgs = append(r.msgs, msg.(*testMsg))
	r.links = append(r.links, link)
}

func (r *recorder) seqs() []int {
	seqs := make([]int, len(r.msgs))
	for i, m := range r.msgs {
		seqs[i] = m.seq
	}
	return seqs
}
