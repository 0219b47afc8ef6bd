package main

import (
	"github.com/mastercactapus/gparse/gcode"
)

type lineView struct {
	Line    int    `json:"line"`
	Kind    string `json:"kind"`
	Type    string `json:"type,omitempty"`
	Group   string `json:"group,omitempty"`
	Command string `json:"command,omitempty"`
	Comment string `json:"comment,omitempty"`
}

type summary struct {
	Name     string `json:"name,omitempty"`
	Lines    int    `json:"lineCount"`
	Commands int    `json:"commands"`
	Raw      int    `json:"raw"`
}

type programView struct {
	summary
	Lines []lineView `json:"lines"`
}

func commandType(cmd gcode.Command) string {
	switch cmd.(type) {
	case nil:
		return ""
	case gcode.Raw:
		return "raw"
	case gcode.Move:
		return "move"
	case gcode.Arc:
		return "arc"
	case gcode.Dwell:
		return "dwell"
	case gcode.SetUnits:
		return "set-units"
	case gcode.Home:
		return "home"
	case gcode.SetPositioning:
		return "set-positioning"
	case gcode.SetPosition:
		return "set-position"
	case gcode.SetExtrusionMode:
		return "set-extrusion-mode"
	case gcode.DisableMotors:
		return "disable-motors"
	case gcode.SetHotendTemp:
		return "set-hotend-temp"
	case gcode.SetBedTemp:
		return "set-bed-temp"
	case gcode.FanOn:
		return "fan-on"
	case gcode.FanOff:
		return "fan-off"
	case gcode.DisplayMessage:
		return "display-message"
	}
	return "unknown"
}

func summarize(p *gcode.Program) summary {
	s := summary{Lines: p.Len()}
	for _, cmd := range p.Commands() {
		s.Commands++
		if _, ok := cmd.(gcode.Raw); ok {
			s.Raw++
		}
	}
	return s
}

func newProgramView(p *gcode.Program) programView {
	v := programView{summary: summarize(p), Lines: make([]lineView, p.Len())}
	for i, l := range p.Lines() {
		lv := lineView{
			Line:    i + 1,
			Kind:    l.Kind().String(),
			Type:    commandType(l.Command),
			Comment: l.Comment,
		}
		if l.Command != nil {
			lv.Command = l.Command.String()
			if g := gcode.CommandModalGroup(l.Command); g != gcode.ModalGroupNone {
				lv.Group = g.String()
			}
		}
		v.Lines[i] = lv
	}
	return v
}
