package character

import (
	"fmt"
	"sort"
)

// State is the serialized form of a character snapshot
type State struct {
	Name        string             `yaml:"name,omitempty"`
	Commands    []string           `yaml:"commands,omitempty"`
	StateNo     int                `yaml:"stateno"`
	PrevStateNo int                `yaml:"prevstateno"`
	StateType   string             `yaml:"statetype"`
	Time        int                `yaml:"time"`
	Ctrl        bool               `yaml:"ctrl"`
	Power       float64            `yaml:"power"`
	Pos         Vector             `yaml:"pos"` // Y grows downward
	Vel         Vector             `yaml:"vel"`
	Velocity    map[string]float64 `yaml:"velocity,omitempty"` // walk.fwd.x, run.back.y, ...
	Anim        Animation          `yaml:"anim"`
	Animations  []int              `yaml:"animations,omitempty"`
	Hit         Hit                `yaml:"hit"`
	CanRecover  bool               `yaml:"canrecover"`
	Vars        map[int]string     `yaml:"var,omitempty"`    // trigger source per slot
	SysVars     map[int]string     `yaml:"sysvar,omitempty"` // trigger source per slot
}

// Vector is an x/y pair
type Vector struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Animation is the currently playing animation
type Animation struct {
	ID       int `yaml:"id"`
	Time     int `yaml:"time"`
	Position int `yaml:"position"` // 0-based element index
}

// Hit is the in-progress hit reaction
type Hit struct {
	ShakeTime  int     `yaml:"shaketime"`
	HitTime    int     `yaml:"hittime"`
	SlideTime  int     `yaml:"slidetime"`
	AnimType   int     `yaml:"animtype"`
	GroundType int     `yaml:"groundtype"`
	XVel       float64 `yaml:"xvel"`
	YVel       float64 `yaml:"yvel"`
	YAccel     float64 `yaml:"yaccel"`
	Fall       Fall    `yaml:"fall"`
}

// Fall is the fall portion of a hit reaction
type Fall struct {
	Active bool    `yaml:"active"`
	YVel   float64 `yaml:"yvel"`
}

// velocityNames lists the velocity constants a State may set
var velocityNames = []string{
	"walk.fwd.x",
	"walk.back.x",
	"run.fwd.x",
	"run.back.x",
	"run.back.y",
	"jump.neu.x",
	"jump.y",
	"jump.back.x",
	"jump.fwd.x",
	"runjump.fwd.x",
}

// Clone returns a deep copy; decoding into it leaves s untouched
func (s State) Clone() State {
	out := s
	out.Commands = append([]string(nil), s.Commands...)
	out.Animations = append([]int(nil), s.Animations...)
	out.Velocity = cloneMap(s.Velocity)
	out.Vars = cloneMap(s.Vars)
	out.SysVars = cloneMap(s.SysVars)
	return out
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// validate rejects velocity names no trigger can read
func (s State) validate() error {
	known := make(map[string]bool, len(velocityNames))
	for _, name := range velocityNames {
		known[name] = true
	}
	var unknown []string
	for name := range s.Velocity {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown velocity constants: %v", unknown)
	}
	return nil
}
