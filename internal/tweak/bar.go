package tweak

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind is the value type of a Var.
type Kind int

const (
	Float Kind = iota
	Bool
	Enum
)

// Var is one live-editable (or read-only) entry bound to scene state.
type Var struct {
	Name      string
	Group     string
	Kind      Kind
	ReadOnly  bool
	Min, Max  float64
	Step      float64
	Precision int
	Options   []string

	get func() float64
	set func(float64)
}

// Value returns the current value; bools are 0/1, enums the option index.
func (v *Var) Value() float64 {
	return v.get()
}

// Set stores x, clamped for floats and wrapped for enums.
// Read-only vars ignore it.
func (v *Var) Set(x float64) {
	if v.ReadOnly {
		return
	}
	switch v.Kind {
	case Float:
		if v.Max > v.Min {
			x = math.Max(v.Min, math.Min(v.Max, x))
		}
	case Bool:
		if x != 0 {
			x = 1
		}
	case Enum:
		n := len(v.Options)
		if n == 0 {
			return
		}
		i := int(math.Round(x)) % n
		if i < 0 {
			i += n
		}
		x = float64(i)
	}
	v.set(x)
}

// String formats the value for display.
func (v *Var) String() string {
	x := v.get()
	switch v.Kind {
	case Bool:
		if x != 0 {
			return "on"
		}
		return "off"
	case Enum:
		i := int(x)
		if i >= 0 && i < len(v.Options) {
			return v.Options[i]
		}
		return strconv.Itoa(i)
	}
	return strconv.FormatFloat(x, 'f', v.Precision, 64)
}

// Bar is an ordered list of vars with a selection cursor.
type Bar struct {
	Label string
	vars  []*Var
	sel   int
}

// NewBar returns an empty bar.
func NewBar(label string) *Bar {
	return &Bar{Label: label}
}

func (b *Bar) add(v *Var) *Var {
	b.vars = append(b.vars, v)
	return v
}

// AddFloatRO adds a read-only float such as frame stats.
func (b *Bar) AddFloatRO(name, group string, p *float64, precision int) *Var {
	return b.add(&Var{
		Name: name, Group: group, Kind: Float, ReadOnly: true, Precision: precision,
		get: func() float64 { return *p },
		set: func(float64) {},
	})
}

// AddFloat adds a float bounded to [min, max] and edited in step increments.
func (b *Bar) AddFloat(name, group string, p *float64, min, max, step float64) *Var {
	return b.add(&Var{
		Name: name, Group: group, Kind: Float, Min: min, Max: max, Step: step,
		Precision: precisionFor(step),
		get:       func() float64 { return *p },
		set:       func(x float64) { *p = x },
	})
}

// AddBool adds a toggle.
func (b *Bar) AddBool(name, group string, p *bool) *Var {
	return b.add(&Var{
		Name: name, Group: group, Kind: Bool,
		get: func() float64 {
			if *p {
				return 1
			}
			return 0
		},
		set: func(x float64) { *p = x != 0 },
	})
}

// AddColor adds the three channels of an RGB colour as "<name> R/G/B",
// each in [0, 1].
func (b *Bar) AddColor(name, group string, c *mgl64.Vec3) {
	for i, ch := range []string{"R", "G", "B"} {
		b.AddFloat(name+" "+ch, group, &c[i], 0, 1, 0.01)
	}
}

// AddEnum adds a selection over options, bound to any int-based enum.
func AddEnum[T ~int](b *Bar, name, group string, p *T, options []string) *Var {
	return b.add(&Var{
		Name: name, Group: group, Kind: Enum, Options: options,
		get: func() float64 { return float64(*p) },
		set: func(x float64) { *p = T(x) },
	})
}

// Vars returns the vars in insertion order.
func (b *Bar) Vars() []*Var {
	return b.vars
}

// Find returns the var with the given group and name.
func (b *Bar) Find(group, name string) (*Var, bool) {
	for _, v := range b.vars {
		if v.Group == group && v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// Selected returns the var under the cursor, or nil for an empty bar.
func (b *Bar) Selected() *Var {
	if len(b.vars) == 0 {
		return nil
	}
	return b.vars[b.sel]
}

// Next moves the cursor to the next editable var.
func (b *Bar) Next() { b.move(1) }

// Prev moves the cursor to the previous editable var.
func (b *Bar) Prev() { b.move(-1) }

func (b *Bar) move(d int) {
	n := len(b.vars)
	for i := 0; i < n; i++ {
		b.sel = ((b.sel+d)%n + n) % n
		if !b.vars[b.sel].ReadOnly {
			return
		}
	}
}

// Adjust nudges the selected var: floats by steps×Step, bools toggle,
// enums cycle.
func (b *Bar) Adjust(steps int) {
	v := b.Selected()
	if v == nil || v.ReadOnly || steps == 0 {
		return
	}
	switch v.Kind {
	case Float:
		v.Set(v.Value() + float64(steps)*v.Step)
	case Bool:
		if v.Value() != 0 {
			v.Set(0)
		} else {
			v.Set(1)
		}
	case Enum:
		v.Set(v.Value() + float64(steps))
	}
}

// Controls is one frame of bar navigation input.
type Controls struct {
	Next, Prev bool
	Inc, Dec   bool
	// Coarse multiplies float steps by ten.
	Coarse bool
}

// Handle applies navigation input to the bar.
func (b *Bar) Handle(c Controls) {
	if c.Next {
		b.Next()
	}
	if c.Prev {
		b.Prev()
	}
	steps := 0
	if c.Inc {
		steps++
	}
	if c.Dec {
		steps--
	}
	if v := b.Selected(); c.Coarse && v != nil && v.Kind == Float {
		steps *= 10
	}
	b.Adjust(steps)
}

// Lines renders the bar as text, grouped in first-seen group order.
// The selected var is marked with '>'.
func (b *Bar) Lines() []string {
	var groups []string
	seen := map[string]bool{}
	for _, v := range b.vars {
		if !seen[v.Group] {
			seen[v.Group] = true
			groups = append(groups, v.Group)
		}
	}

	lines := []string{b.Label}
	sel := b.Selected()
	for _, g := range groups {
		lines = append(lines, "["+g+"]")
		for _, v := range b.vars {
			if v.Group != g {
				continue
			}
			mark := " "
			if v == sel {
				mark = ">"
			}
			lines = append(lines, fmt.Sprintf("%s %s: %s", mark, v.Name, v.String()))
		}
	}
	return lines
}

func precisionFor(step float64) int {
	p := 0
	for step > 0 && step < 1 && p < 6 {
		step *= 10
		p++
	}
	return p
}
