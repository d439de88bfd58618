package action

import (
	"testing"

	"github.com/c360/signalkit/errors"
	"github.com/c360/signalkit/message"
	"github.com/c360/signalkit/typetag"
	"github.com/c360/signalkit/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pingTag = typetag.NewSub("Ping", RootTag)
	ballTag = typetag.NewSub("Ball", message.RootTag)
)

type ball struct {
	message.Base
}

func (b *ball) Tag() *typetag.Tag {
	return ballTag
}

func TestAddSignalQualifiesName(t *testing.T) {
	hub := wire.New()
	owner := New("Ping", pingTag, hub)
	sig := hub.NewSignal(ballTag)

	require.NoError(t, owner.AddSignal("send", sig))

	assert.Equal(t, "Ping::send", sig.Name())
	assert.Same(t, sig, hub.Directory().Signal("Ping::send"))
	assert.Same(t, sig, owner.Signal("send"))
	assert.Nil(t, owner.Signal("missing"))
}

func TestAddSlotQualifiesName(t *testing.T) {
	hub := wire.New()
	owner := New("Pong", pingTag, hub)
	slot := hub.NewSlot(ballTag, func(message.Message, *wire.Link) {})

	require.NoError(t, owner.AddSlot("receive", slot))

	assert.Equal(t, "Pong::receive", slot.Name())
	assert.Same(t, slot, hub.Directory().Slot("Pong::receive"))
	assert.Same(t, slot, owner.Slot("receive"))
}

func TestDuplicateLocalNameFails(t *testing.T) {
	hub := wire.New()
	owner := New("Ping", pingTag, hub)
	first := hub.NewSignal(ballTag)
	second := hub.NewSignal(ballTag)

	require.NoError(t, owner.AddSignal("send", first))
	err := owner.AddSignal("send", second)

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDuplicateName)
	assert.Same(t, first, owner.Signal("send"), "first registration stands")
	assert.Same(t, first, hub.Directory().Signal("Ping::send"))
}

func TestSignalAndSlotLocalNamesAreSeparate(t *testing.T) {
	hub := wire.New()
	owner := New("Ping", pingTag, hub)

	require.NoError(t, owner.AddSignal("io", hub.NewSignal(ballTag)))
	require.NoError(t, owner.AddSlot("io", hub.NewSlot(ballTag, func(message.Message, *wire.Link) {})))
}

func TestEmitThroughOwner(t *testing.T) {
	hub := wire.New()
	owner := New("Ping", pingTag, hub)
	var got []message.Message
	slot := hub.NewSlot(ballTag, func(msg message.Message, _ *wire.Link) {
		got = append(got, msg)
	})
	sig := hub.NewSignal(ballTag)
	require.NoError(t, owner.AddSignal("send", sig))
	require.True(t, hub.Connect(sig, slot))

	msg := &ball{Base: message.NewBase()}
	owner.Emit("send", msg)
	owner.Emit("missing", msg)
	hub.Drain()

	require.Len(t, got, 1)
	assert.Same(t, msg, got[0])
}

func TestOwnerCloseSeversWiring(t *testing.T) {
	hub := wire.New()
	owner := New("Ping", pingTag, hub)
	sig := hub.NewSignal(ballTag)
	slot := hub.NewSlot(ballTag, func(message.Message, *wire.Link) {})
	require.NoError(t, owner.AddSignal("send", sig))
	require.NoError(t, owner.AddSlot("receive", slot))
	require.True(t, hub.Connect(sig, slot))
	sig.Emit(&ball{Base: message.NewBase()})

	owner.Close()

	assert.Nil(t, hub.Directory().Signal("Ping::send"))
	assert.Nil(t, hub.Directory().Slot("Ping::receive"))
	assert.False(t, hub.IsConnected(sig, slot))
	assert.True(t, hub.Queue().Empty(), "pending deliveries purged")
	assert.Nil(t, owner.Signal("send"))
}

func TestOwnerTagHierarchy(t *testing.T) {
	hub := wire.New()
	owner := New("Ping", pingTag, hub)
	untyped := New("Plain", nil, hub)

	assert.True(t, RootTag.IsAssignableFrom(owner.Tag()))
	assert.Same(t, RootTag, untyped.Tag())
}

func TestRegistryDuplicateFailsLoudly(t *testing.T) {
	hub := wire.New()
	reg := NewRegistry()
	first := New("Ping", pingTag, hub)
	second := New("Ping", pingTag, hub)

	require.NoError(t, reg.Register(first))
	err := reg.Register(second)

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDuplicateName)
	assert.Same(t, first, reg.Get("Ping"), "first registration stands")
}

func TestRegistryLifecycle(t *testing.T) {
	hub := wire.New()
	reg := NewRegistry()
	ping := New("Ping", pingTag, hub)
	pong := New("Pong", pingTag, hub)
	require.NoError(t, reg.Register(ping))
	require.NoError(t, reg.Register(pong))
	require.NoError(t, ping.AddSignal("send", hub.NewSignal(ballTag)))

	assert.Equal(t, []string{"Ping", "Pong"}, reg.Names())
	assert.Nil(t, reg.Get("missing"))

	reg.Remove("Pong")
	assert.Nil(t, reg.Get("Pong"))

	reg.Clear()
	assert.Empty(t, reg.Names())
	assert.Nil(t, hub.Directory().Signal("Ping::send"), "clear closes owners")

	assert.Error(t, reg.Register(nil))
}
