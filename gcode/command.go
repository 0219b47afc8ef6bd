package gcode

import (
	"strings"
	"unicode"
)

// Command is a single classified command. The set of implementations is
// closed: every recognized command family has its own type and anything
// else is a Raw.
type Command interface {
	// Name returns the command word as it is emitted, e.g. "G1".
	Name() string
	String() string

	command()
}

type field struct {
	w byte
	p Param
}

func formatCommand(name string, extra Block, fields ...field) string {
	var sb strings.Builder
	sb.WriteString(name)
	for _, f := range fields {
		if !f.p.Set {
			continue
		}
		sb.WriteByte(' ')
		sb.WriteByte(f.w)
		sb.WriteString(formatFloat(f.p.Value))
	}
	for _, w := range extra {
		sb.WriteByte(' ')
		sb.WriteString(w.String())
	}
	return sb.String()
}

func (p IntParam) param() Param { return Param{Set: p.Set, Value: float64(p.Value)} }

// Raw holds a command that was not recognized, exactly as written.
type Raw struct {
	Text string
}

func (r Raw) Name() string {
	if i := strings.IndexFunc(r.Text, unicode.IsSpace); i != -1 {
		return r.Text[:i]
	}
	return r.Text
}
func (r Raw) String() string { return r.Text }

// Move is a linear move (G0/G1).
type Move struct {
	// Rapid selects G0 over G1.
	Rapid bool

	X, Y, Z, E, F Param
	Extra         Block
}

func (m Move) Name() string {
	if m.Rapid {
		return "G0"
	}
	return "G1"
}
func (m Move) String() string {
	return formatCommand(m.Name(), m.Extra,
		field{'X', m.X}, field{'Y', m.Y}, field{'Z', m.Z}, field{'E', m.E}, field{'F', m.F})
}

// Arc is a circular move (G2 clockwise, G3 counter-clockwise), given
// either by center offsets I/J or by radius R.
type Arc struct {
	Clockwise bool

	X, Y, Z, E, F Param
	I, J, R       Param
	Extra         Block
}

func (a Arc) Name() string {
	if a.Clockwise {
		return "G2"
	}
	return "G3"
}
func (a Arc) String() string {
	return formatCommand(a.Name(), a.Extra,
		field{'X', a.X}, field{'Y', a.Y}, field{'Z', a.Z}, field{'E', a.E}, field{'F', a.F},
		field{'I', a.I}, field{'J', a.J}, field{'R', a.R})
}

// Dwell pauses for P milliseconds or S seconds (G4).
type Dwell struct {
	P, S  Param
	Extra Block
}

func (Dwell) Name() string { return "G4" }
func (d Dwell) String() string {
	return formatCommand(d.Name(), d.Extra, field{'P', d.P}, field{'S', d.S})
}

// SetUnits is G20 (inches) or G21 (millimeters).
type SetUnits struct {
	Inches bool
	Extra  Block
}

func (u SetUnits) Name() string {
	if u.Inches {
		return "G20"
	}
	return "G21"
}
func (u SetUnits) String() string { return formatCommand(u.Name(), u.Extra) }

// Home is G28. An axis letter, with or without a value, selects that axis;
// no letters homes all axes.
type Home struct {
	X, Y, Z bool

	// Values written with the axis letters (`G28 X0`). Firmwares ignore
	// them; they are kept so the command re-emits as written.
	XValue, YValue, ZValue Param

	Extra Block
}

func (Home) Name() string { return "G28" }
func (h Home) String() string {
	var sb strings.Builder
	sb.WriteString(h.Name())
	for _, a := range []struct {
		w  byte
		on bool
		p  Param
	}{{'X', h.X, h.XValue}, {'Y', h.Y, h.YValue}, {'Z', h.Z, h.ZValue}} {
		if !a.on {
			continue
		}
		sb.WriteByte(' ')
		sb.WriteByte(a.w)
		if a.p.Set {
			sb.WriteString(formatFloat(a.p.Value))
		}
	}
	if len(h.Extra) > 0 {
		sb.WriteString(" " + h.Extra.String())
	}
	return sb.String()
}

// SetPositioning is G90 (absolute) or G91 (relative).
type SetPositioning struct {
	Relative bool
	Extra    Block
}

func (p SetPositioning) Name() string {
	if p.Relative {
		return "G91"
	}
	return "G90"
}
func (p SetPositioning) String() string { return formatCommand(p.Name(), p.Extra) }

// SetPosition is G92.
type SetPosition struct {
	X, Y, Z, E Param
	Extra      Block
}

func (SetPosition) Name() string { return "G92" }
func (p SetPosition) String() string {
	return formatCommand(p.Name(), p.Extra, field{'X', p.X}, field{'Y', p.Y}, field{'Z', p.Z}, field{'E', p.E})
}

// SetExtrusionMode is M82 (absolute) or M83 (relative).
type SetExtrusionMode struct {
	Relative bool
	Extra    Block
}

func (m SetExtrusionMode) Name() string {
	if m.Relative {
		return "M83"
	}
	return "M82"
}
func (m SetExtrusionMode) String() string { return formatCommand(m.Name(), m.Extra) }

// DisableMotors is M84, optionally with an idle timeout S.
type DisableMotors struct {
	S     Param
	Extra Block
}

func (DisableMotors) Name() string { return "M84" }
func (d DisableMotors) String() string {
	return formatCommand(d.Name(), d.Extra, field{'S', d.S})
}

// SetHotendTemp is M104, or M109 when Wait is set.
type SetHotendTemp struct {
	Wait  bool
	S     Param
	T     IntParam
	Extra Block
}

func (t SetHotendTemp) Name() string {
	if t.Wait {
		return "M109"
	}
	return "M104"
}
func (t SetHotendTemp) String() string {
	return formatCommand(t.Name(), t.Extra, field{'S', t.S}, field{'T', t.T.param()})
}

// SetBedTemp is M140, or M190 when Wait is set.
type SetBedTemp struct {
	Wait  bool
	S     Param
	Extra Block
}

func (t SetBedTemp) Name() string {
	if t.Wait {
		return "M190"
	}
	return "M140"
}
func (t SetBedTemp) String() string {
	return formatCommand(t.Name(), t.Extra, field{'S', t.S})
}

// FanOn is M106.
type FanOn struct {
	P     IntParam
	S     Param
	Extra Block
}

func (FanOn) Name() string { return "M106" }
func (f FanOn) String() string {
	return formatCommand(f.Name(), f.Extra, field{'P', f.P.param()}, field{'S', f.S})
}

// FanOff is M107.
type FanOff struct {
	P     IntParam
	Extra Block
}

func (FanOff) Name() string { return "M107" }
func (f FanOff) String() string {
	return formatCommand(f.Name(), f.Extra, field{'P', f.P.param()})
}

// DisplayMessage is M117.
type DisplayMessage struct {
	Text string
}

func (DisplayMessage) Name() string { return "M117" }
func (m DisplayMessage) String() string {
	if m.Text == "" {
		return m.Name()
	}
	return m.Name() + " " + m.Text
}

func (Raw) command()              {}
func (Move) command()             {}
func (Arc) command()              {}
func (Dwell) command()            {}
func (SetUnits) command()         {}
func (Home) command()             {}
func (SetPositioning) command()   {}
func (SetPosition) command()      {}
func (SetExtrusionMode) command() {}
func (DisableMotors) command()    {}
func (SetHotendTemp) command()    {}
func (SetBedTemp) command()       {}
func (FanOn) command()            {}
func (FanOff) command()           {}
func (DisplayMessage) command()   {}

// cloneCommand returns cmd with its own copy of any Extra words.
func cloneCommand(cmd Command) Command {
	switch c := cmd.(type) {
	case Move:
		c.Extra = c.Extra.clone()
		return c
	case Arc:
		c.Extra = c.Extra.clone()
		return c
	case Dwell:
		c.Extra = c.Extra.clone()
		return c
	case SetUnits:
		c.Extra = c.Extra.clone()
		return c
	case Home:
		c.Extra = c.Extra.clone()
		return c
	case SetPositioning:
		c.Extra = c.Extra.clone()
		return c
	case SetPosition:
		c.Extra = c.Extra.clone()
		return c
	case SetExtrusionMode:
		c.Extra = c.Extra.clone()
		return c
	case DisableMotors:
		c.Extra = c.Extra.clone()
		return c
	case SetHotendTemp:
		c.Extra = c.Extra.clone()
		return c
	case SetBedTemp:
		c.Extra = c.Extra.clone()
		return c
	case FanOn:
		c.Extra = c.Extra.clone()
		return c
	case FanOff:
		c.Extra = c.Extra.clone()
		return c
	}
	return cmd
}
