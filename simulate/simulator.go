package simulate

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/uisim/dom"
)

// Host is the environment events are built for and dispatched into.
// *dom.Window implements it through WindowHost.
type Host interface {
	// DefaultView is the view new events carry when the caller gives none.
	DefaultView() *dom.Window
	// Dispatch runs the host's dispatch algorithm on target.
	Dispatch(target *dom.Node, evt dom.AnyEvent) (bool, error)
	// ElementFromPoint hit-tests client coordinates; nil if nothing is there.
	ElementFromPoint(x, y float64) *dom.Node
}

// WindowHost adapts a dom.Window to Host.
type WindowHost struct {
	Window *dom.Window
}

func (h WindowHost) DefaultView() *dom.Window { return h.Window }

func (h WindowHost) Dispatch(target *dom.Node, evt dom.AnyEvent) (bool, error) {
	return target.DispatchEvent(evt)
}

func (h WindowHost) ElementFromPoint(x, y float64) *dom.Node {
	if h.Window == nil || h.Window.Document == nil {
		return nil
	}
	return h.Window.Document.ElementFromPoint(x, y)
}

// Simulator builds and fires synthetic input events. It keeps no state
// between calls apart from its random source, so it can be used from inside
// listeners of the events it fires.
type Simulator struct {
	host     Host
	platform Platform
	log      logrus.FieldLogger

	mu     sync.Mutex
	random func() float64
}

type Option func(*Simulator)

// WithLogger sets the logger; the default is the logrus standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRandom sets the [0,1) source used for generated touch identifiers.
func WithRandom(f func() float64) Option {
	return func(s *Simulator) {
		if f != nil {
			s.random = f
		}
	}
}

// New returns a Simulator for host, behaving like platform.
func New(host Host, platform Platform, opts ...Option) *Simulator {
	s := &Simulator{
		host:     host,
		platform: platform,
		log:      logrus.StandardLogger(),
		random:   rand.New(rand.NewSource(time.Now().UnixNano())).Float64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ForWindow is New with a WindowHost.
func ForWindow(w *dom.Window, platform Platform, opts ...Option) *Simulator {
	return New(WindowHost{Window: w}, platform, opts...)
}

func (s *Simulator) Platform() Platform { return s.platform }

// Tables returns the category table as normalized for the platform.
func (s *Simulator) Tables() Tables { return TablesFor(s.platform) }

// randomIdentifier returns an integer in [0,1000].
func (s *Simulator) randomIdentifier() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int(math.Round(s.random() * 1000))
}

// Fire builds the event and dispatches it on target synchronously.
func (s *Simulator) Fire(eventType string, target *dom.Node, opts Options) error {
	evt, err := s.Build(eventType, opts)
	if err != nil {
		return err
	}
	if target == nil {
		return errors.Wrapf(ErrNoTarget, "cannot fire '%s'", eventType)
	}

	s.log.WithFields(logrus.Fields{
		"type":   eventType,
		"target": target.String(),
	}).Debug("dispatching synthetic event")
	if _, err := s.host.Dispatch(target, evt); err != nil {
		return errors.Wrapf(err, "dispatch '%s'", eventType)
	}
	return nil
}

// FireAt fires on the element under the client point (x, y). The point is
// used for clientX/Y and screenX/Y with the primary button; any of those in
// opts take precedence.
func (s *Simulator) FireAt(eventType string, x, y float64, opts Options) error {
	target := s.host.ElementFromPoint(x, y)
	if target == nil {
		s.log.WithFields(logrus.Fields{"type": eventType, "x": x, "y": y}).Debug("no element at point")
	}
	at := Options{
		"clientX": x,
		"clientY": y,
		"screenX": x,
		"screenY": y,
		"which":   1,
		"button":  0,
	}
	return s.Fire(eventType, target, at.Merge(opts))
}
