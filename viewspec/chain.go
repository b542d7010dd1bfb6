// SPDX-License-Identifier: MIT

package viewspec

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlimg/oob"
	"github.com/katalvlaran/lvlimg/space"
)

var (
	// ErrUnknownStep indicates an op or policy name outside the supported set.
	ErrUnknownStep = fmt.Errorf("viewspec: unknown step (%w)", space.ErrUnsupportedBacking)

	// ErrInvalidStep indicates a step with missing or malformed arguments.
	ErrInvalidStep = errors.New("viewspec: invalid step")

	// ErrEmptyChain indicates a document without steps.
	ErrEmptyChain = errors.New("viewspec: no steps")
)

// Op names.
const (
	OpTranslate = "translate"
	OpOffset    = "offset"
	OpInterval  = "interval"
	OpZeroMin   = "zero-min"
	OpExtend    = "extend"
	OpPermute   = "permute"
	OpInvert    = "invert"
	OpRotate    = "rotate"
)

// Step is one view operation. Only the fields of its op are set.
type Step struct {
	Op     string  `yaml:"op"`
	Offset []int64 `yaml:"offset,omitempty"`
	Min    []int64 `yaml:"min,omitempty"`
	Max    []int64 `yaml:"max,omitempty"`
	Policy string  `yaml:"policy,omitempty"`
	Value  float64 `yaml:"value,omitempty"`
	Axes   []int   `yaml:"axes,omitempty"`
	Axis   *int    `yaml:"axis,omitempty"`
	From   *int    `yaml:"from,omitempty"`
	To     *int    `yaml:"to,omitempty"`
}

// Chain is a parsed, validated list of steps.
type Chain struct {
	Steps []Step `yaml:"steps"`
}

// Parse decodes and validates a chain.
//
// Errors: ErrEmptyChain, ErrUnknownStep, ErrInvalidStep, or the YAML
// decoder's error.
func Parse(r io.Reader) (*Chain, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Chain
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyChain
		}
		tracer().Errorf("viewspec: decode: %v", err)

		return nil, fmt.Errorf("viewspec: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	tracer().Infof("viewspec: parsed chain of %d steps", len(c.Steps))

	return &c, nil
}

// Load parses the chain stored in the file at path.
func Load(path string) (*Chain, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("viewspec: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Encode writes c as YAML.
func (c *Chain) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("viewspec: encode: %w", err)
	}

	return enc.Close()
}

// Validate checks every step for a known op and the arguments it needs.
// Dimensionality is checked only when the chain is applied.
func (c *Chain) Validate() error {
	if len(c.Steps) == 0 {
		return ErrEmptyChain
	}
	for i, st := range c.Steps {
		if err := st.validate(); err != nil {
			tracer().Errorf("viewspec: step %d (%s) rejected: %v", i, st.Op, err)

			return fmt.Errorf("step %d: %w", i, err)
		}
	}

	return nil
}

func (st Step) validate() error {
	switch st.Op {
	case OpTranslate, OpOffset:
		if len(st.Offset) == 0 {
			return fmt.Errorf("%s needs offset: %w", st.Op, ErrInvalidStep)
		}
	case OpInterval:
		if len(st.Min) == 0 || len(st.Min) != len(st.Max) {
			return fmt.Errorf("interval needs min and max of equal length: %w", ErrInvalidStep)
		}
	case OpZeroMin:
	case OpExtend:
		if _, err := oob.ParsePolicy(st.Policy); err != nil {
			return fmt.Errorf("extend policy %q: %w", st.Policy, ErrUnknownStep)
		}
	case OpPermute:
		if len(st.Axes) != 2 {
			return fmt.Errorf("permute needs two axes: %w", ErrInvalidStep)
		}
	case OpInvert:
		if st.Axis == nil {
			return fmt.Errorf("invert needs axis: %w", ErrInvalidStep)
		}
	case OpRotate:
		if st.From == nil || st.To == nil {
			return fmt.Errorf("rotate needs from and to: %w", ErrInvalidStep)
		}
	default:
		return fmt.Errorf("op %q: %w", st.Op, ErrUnknownStep)
	}

	return nil
}
