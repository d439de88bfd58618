package main

import (
	"log/slog"
	"sync"

	"github.com/c360/signalkit/action"
	"github.com/c360/signalkit/message"
	"github.com/c360/signalkit/typetag"
	"github.com/c360/signalkit/wire"
)

var (
	playerTag = typetag.NewSub("Player", action.RootTag)
	ballTag   = typetag.NewSub("Ball", message.RootTag)
)

// Ball is the message the two players exchange. Rally counts completed
// returns across both sides.
type Ball struct {
	message.Base
	Rally int
}

func (b *Ball) Tag() *typetag.Tag {
	return ballTag
}

// match is the shared rally budget. Whichever player exceeds it first ends
// the match; Done is closed exactly once.
type match struct {
	limit int
	total int

	once sync.Once
	done chan struct{}
}

func newMatch(limit int) *match {
	return &match{limit: limit, done: make(chan struct{})}
}

func (m *match) finish() {
	m.once.Do(func() { close(m.done) })
}

// Done is closed when the rally budget is exhausted.
func (m *match) Done() <-chan struct{} {
	return m.done
}

// Player is a named action with one ball signal ("send") and one ball slot
// ("receive"). Receiving a ball returns it until the shared budget runs
// out.
type Player struct {
	*action.Action
	logger *slog.Logger
	match  *match
	hits   int
}

func newPlayer(name string, hub *wire.Hub, registry *action.Registry, m *match, logger *slog.Logger) (*Player, error) {
	p := &Player{
		Action: action.New(name, playerTag, hub),
		logger: logger.With("player", name),
		match:  m,
	}
	if err := registry.Register(p.Action); err != nil {
		return nil, err
	}
	if err := p.AddSignal("send", hub.NewSignal(ballTag)); err != nil {
		return nil, err
	}
	if err := p.AddSlot("receive", hub.NewSlot(ballTag, p.receive)); err != nil {
		return nil, err
	}
	return p, nil
}

// Serve puts a fresh ball in play.
func (p *Player) Serve() {
	p.logger.Info("serving")
	p.Emit("send", &Ball{Base: message.NewBase(message.WithSource(p.Name()))})
}

// Hits returns how many balls this player received.
func (p *Player) Hits() int {
	return p.hits
}

func (p *Player) receive(msg message.Message, _ *wire.Link) {
	ball, ok := msg.(*Ball)
	if !ok {
		return
	}
	p.hits++
	if p.match.total >= p.match.limit {
		p.logger.Info("match over", "hits", p.hits, "rally", ball.Rally)
		p.match.finish()
		return
	}
	p.match.total++
	p.logger.Debug("returning ball", "rally", ball.Rally, "from", ball.Source())
	p.Emit("send", &Ball{
		Base:  message.NewBase(message.WithSource(p.Name())),
		Rally: ball.Rally + 1,
	})
}
