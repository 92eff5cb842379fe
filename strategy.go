package retsu

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Strategy selects the allocator adapter a container is built with.
type Strategy uint8

const (
	// StrategySinglePass sizes one block for all fields. It is the default.
	StrategySinglePass Strategy = iota
	// StrategyPerField allocates every field buffer separately.
	StrategyPerField
)

func (s Strategy) String() string {
	switch s {
	case StrategySinglePass:
		return "single-pass"
	case StrategyPerField:
		return "per-field"
	default:
		return fmt.Sprintf("Strategy(%d)", s)
	}
}

// ParseStrategy parses "single-pass" or "per-field". Underscores and case
// are ignored; the empty string selects the default.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "", "single-pass", "singlepass":
		return StrategySinglePass, nil
	case "per-field", "perfield":
		return StrategyPerField, nil
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Strategy) UnmarshalYAML(n *yaml.Node) error {
	var str string
	if err := n.Decode(&str); err != nil {
		return err
	}
	if err := s.UnmarshalText([]byte(str)); err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	return nil
}

// Allocator returns a fresh adapter implementing s.
func (s Strategy) Allocator() Allocator {
	if s == StrategyPerField {
		return NewPerField()
	}
	return SinglePass{}
}
