// Package session owns the user's drawing: the ordered set of base triangles and the
// symmetry instances derived from them.
package session

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"snowflake/internal/geometry"
	"snowflake/internal/logger"
	"snowflake/internal/symmetry"
)

// DegenerateArea is the area below which a triangle counts as collinear.
const DegenerateArea = 1e-9

// ErrDegenerate is returned by Add under the Reject policy.
var ErrDegenerate = errors.New("session: degenerate triangle")

// DegeneracyPolicy decides what Add does with a zero-area triangle.
type DegeneracyPolicy int

const (
	// Warn accepts the triangle and logs a warning.
	Warn DegeneracyPolicy = iota
	// Accept stores the triangle silently.
	Accept
	// Reject refuses the triangle with ErrDegenerate.
	Reject
)

func (p DegeneracyPolicy) String() string {
	switch p {
	case Warn:
		return "warn"
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	default:
		return "unknown"
	}
}

// ParsePolicy maps a config value to a policy.
func ParsePolicy(s string) (DegeneracyPolicy, error) {
	switch s {
	case "", "warn":
		return Warn, nil
	case "accept":
		return Accept, nil
	case "reject":
		return Reject, nil
	}
	return Warn, fmt.Errorf("session: unknown degeneracy policy %q", s)
}

// Entry is one base triangle and the id that tags everything drawn from it.
type Entry struct {
	ID       uuid.UUID
	Triangle geometry.Triangle
}

// Session holds the base triangle set in creation order. It grows monotonically.
// Instances are derived on demand and cached until the next Add.
type Session struct {
	policy    DegeneracyPolicy
	log       *logger.Logger
	entries   []Entry
	instances []symmetry.Instance // nil when stale
}

// New returns an empty session.
func New(policy DegeneracyPolicy, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Discard()
	}
	return &Session{policy: policy, log: log}
}

// Add appends a base triangle. It fails only with ErrDegenerate under the Reject policy.
func (s *Session) Add(t geometry.Triangle) (Entry, error) {
	if Degenerate(t) {
		switch s.policy {
		case Reject:
			s.log.Warn("rejected degenerate triangle", "vertices", t)
			return Entry{}, ErrDegenerate
		case Warn:
			s.log.Warn("degenerate triangle accepted; its instances have zero area", "vertices", t)
		}
	}
	e := Entry{ID: uuid.New(), Triangle: t}
	s.entries = append(s.entries, e)
	s.instances = nil
	s.log.Info("triangle added", "id", e.ID, "count", len(s.entries))
	return e, nil
}

// Len returns the number of base triangles.
func (s *Session) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the base set with ids, in creation order.
func (s *Session) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Triangles returns a copy of the base triangles in creation order.
func (s *Session) Triangles() []geometry.Triangle {
	out := make([]geometry.Triangle, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Triangle
	}
	return out
}

// Instances returns every symmetry instance, base order then instance order.
// Entry i owns Instances()[i*12 : i*12+12].
func (s *Session) Instances() []symmetry.Instance {
	if s.instances == nil {
		s.instances = symmetry.GenerateAll(s.Triangles())
	}
	out := make([]symmetry.Instance, len(s.instances))
	copy(out, s.instances)
	return out
}

// Degenerate reports whether t has (near) zero area.
func Degenerate(t geometry.Triangle) bool {
	return math.Abs(t.Area()) < DegenerateArea
}
