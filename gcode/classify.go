package gcode

import "math"

type headKey struct {
	W   byte
	Arg float64
}

func (w Word) key() headKey { return headKey{W: w.W, Arg: w.Arg} }

// args gives typed access to the words of a line. Any lookup that does
// not fit the expected shape clears ok.
type args struct {
	words Block
	text  string
	ok    bool
}

func (a *args) param(w byte) Param {
	g, found := a.words.Word(w)
	if !found {
		return Param{}
	}
	if g.Bare {
		a.ok = false
		return Param{}
	}
	return P(g.Arg)
}

func (a *args) intParam(w byte) IntParam {
	p := a.param(w)
	if !p.Set {
		return IntParam{}
	}
	if p.Value != math.Trunc(p.Value) || math.Abs(p.Value) > math.MaxInt32 {
		a.ok = false
		return IntParam{}
	}
	return I(int(p.Value))
}

// value returns the value of w if it has one. A bare w is not a mismatch.
func (a *args) value(w byte) Param {
	g, found := a.words.Word(w)
	if !found || g.Bare {
		return Param{}
	}
	return P(g.Arg)
}

func (a *args) flag(w byte) bool {
	_, found := a.words.Word(w)
	return found
}

// extra returns the words not named in letters.
func (a *args) extra(letters string) Block { return a.words.Without(letters) }

type classifier func(a *args) Command

func move(rapid bool) classifier {
	return func(a *args) Command {
		return Move{
			Rapid: rapid,
			X:     a.param('X'), Y: a.param('Y'), Z: a.param('Z'),
			E: a.param('E'), F: a.param('F'),
			Extra: a.extra("XYZEF"),
		}
	}
}

func arc(cw bool) classifier {
	return func(a *args) Command {
		return Arc{
			Clockwise: cw,
			X:         a.param('X'), Y: a.param('Y'), Z: a.param('Z'),
			E: a.param('E'), F: a.param('F'),
			I: a.param('I'), J: a.param('J'), R: a.param('R'),
			Extra: a.extra("XYZEFIJR"),
		}
	}
}

func hotend(wait bool) classifier {
	return func(a *args) Command {
		return SetHotendTemp{Wait: wait, S: a.param('S'), T: a.intParam('T'), Extra: a.extra("ST")}
	}
}

func bed(wait bool) classifier {
	return func(a *args) Command {
		return SetBedTemp{Wait: wait, S: a.param('S'), Extra: a.extra("S")}
	}
}

// vocabulary is the fixed table of recognized heads. It is never modified
// after init.
var vocabulary = map[headKey]classifier{
	{'G', 0}: move(true),
	{'G', 1}: move(false),
	{'G', 2}: arc(true),
	{'G', 3}: arc(false),
	{'G', 4}: func(a *args) Command {
		return Dwell{P: a.param('P'), S: a.param('S'), Extra: a.extra("PS")}
	},
	{'G', 20}: func(a *args) Command { return SetUnits{Inches: true, Extra: a.extra("")} },
	{'G', 21}: func(a *args) Command { return SetUnits{Extra: a.extra("")} },
	{'G', 28}: func(a *args) Command {
		return Home{
			X:      a.flag('X'),
			Y:      a.flag('Y'),
			Z:      a.flag('Z'),
			XValue: a.value('X'),
			YValue: a.value('Y'),
			ZValue: a.value('Z'),
			Extra:  a.extra("XYZ"),
		}
	},
	{'G', 90}: func(a *args) Command { return SetPositioning{Extra: a.extra("")} },
	{'G', 91}: func(a *args) Command { return SetPositioning{Relative: true, Extra: a.extra("")} },
	{'G', 92}: func(a *args) Command {
		return SetPosition{X: a.param('X'), Y: a.param('Y'), Z: a.param('Z'), E: a.param('E'), Extra: a.extra("XYZE")}
	},
	{'M', 82}: func(a *args) Command { return SetExtrusionMode{Extra: a.extra("")} },
	{'M', 83}: func(a *args) Command { return SetExtrusionMode{Relative: true, Extra: a.extra("")} },
	{'M', 84}: func(a *args) Command {
		return DisableMotors{S: a.param('S'), Extra: a.extra("S")}
	},
	{'M', 104}: hotend(false),
	{'M', 109}: hotend(true),
	{'M', 140}: bed(false),
	{'M', 190}: bed(true),
	{'M', 106}: func(a *args) Command {
		return FanOn{P: a.intParam('P'), S: a.param('S'), Extra: a.extra("PS")}
	},
	{'M', 107}: func(a *args) Command {
		return FanOff{P: a.intParam('P'), Extra: a.extra("P")}
	},
	{'M', 117}: func(a *args) Command { return DisplayMessage{Text: a.text} },
}

// classify maps a scanned line to a Command. It never fails: anything
// outside the vocabulary, or not matching its expected shape, is kept as
// Raw.
func classify(sc *scanned) Command {
	if sc.command == "" {
		return nil
	}
	raw := Raw{Text: sc.command}
	if sc.opaque {
		return raw
	}
	fn, ok := vocabulary[sc.head.key()]
	if !ok {
		return raw
	}
	if sc.words.HasCommand() || sc.words.Repeated() {
		return raw
	}

	a := &args{words: sc.words, text: sc.text, ok: true}
	cmd := fn(a)
	if !a.ok {
		return raw
	}
	return cmd
}
