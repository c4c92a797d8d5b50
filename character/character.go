// Package character provides an in-memory character snapshot that
// satisfies eval.Environment, for tools and tests that evaluate triggers
// outside a running match.
package character

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"trigger/eval"
	"trigger/parser"
)

// Character is an immutable snapshot of one character's state
type Character struct {
	state   State
	vars    map[int]parser.Expr
	sysvars map[int]parser.Expr
	anims   map[int]bool
}

var (
	_ eval.Environment = (*Character)(nil)
	_ eval.Character   = (*Character)(nil)
)

// New builds a snapshot from state, parsing every variable expression
func New(state State) (*Character, error) {
	state = state.Clone()
	if err := state.validate(); err != nil {
		return nil, err
	}

	vars, err := parseSlots("var", state.Vars)
	if err != nil {
		return nil, err
	}
	sysvars, err := parseSlots("sysvar", state.SysVars)
	if err != nil {
		return nil, err
	}

	anims := make(map[int]bool, len(state.Animations))
	for _, id := range state.Animations {
		anims[id] = true
	}

	return &Character{
		state:   state,
		vars:    vars,
		sysvars: sysvars,
		anims:   anims,
	}, nil
}

func parseSlots(kind string, sources map[int]string) (map[int]parser.Expr, error) {
	slots := make(map[int]parser.Expr, len(sources))
	for index, src := range sources {
		expr, err := parser.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("%s(%d): %w", kind, index, err)
		}
		slots[index] = expr
	}
	return slots, nil
}

// Parse decodes a YAML snapshot
func Parse(data []byte) (*Character, error) {
	var state State
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode character: %w", err)
	}
	return New(state)
}

// Load reads a YAML snapshot from path
func Load(path string) (*Character, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Overlay returns a new snapshot with the fields set in node applied on
// top of base. Fields absent from node keep their base values.
func Overlay(base State, node *yaml.Node) (*Character, error) {
	state := base.Clone()
	if node != nil {
		if err := node.Decode(&state); err != nil {
			return nil, fmt.Errorf("decode character overlay: %w", err)
		}
	}
	return New(state)
}

// State returns a copy of the snapshot's serialized form
func (c *Character) State() State {
	return c.state.Clone()
}

// Environment

func (c *Character) Commands() []string {
	return append([]string(nil), c.state.Commands...)
}

func (c *Character) Character() eval.Character {
	return c
}

// Character

func (c *Character) Animation() int {
	return c.state.Anim.ID
}

func (c *Character) CurrentAnimation() eval.Animation {
	return animation{time: c.state.Anim.Time, position: c.state.Anim.Position}
}

func (c *Character) HasAnimation(id int) bool {
	return c.anims[id]
}

func (c *Character) CurrentState() int  { return c.state.StateNo }
func (c *Character) PreviousState() int { return c.state.PrevStateNo }
func (c *Character) StateType() string  { return c.state.StateType }
func (c *Character) StateTime() int     { return c.state.Time }
func (c *Character) HasControl() bool   { return c.state.Ctrl }
func (c *Character) Power() float64     { return c.state.Power }
func (c *Character) CanRecover() bool   { return c.state.CanRecover }
func (c *Character) XVelocity() float64 { return c.state.Vel.X }
func (c *Character) YVelocity() float64 { return c.state.Vel.Y }
func (c *Character) YPosition() float64 { return c.state.Pos.Y }

func (c *Character) HitState() *eval.HitState {
	h := c.state.Hit
	return &eval.HitState{
		ShakeTime:     h.ShakeTime,
		HitTime:       h.HitTime,
		SlideTime:     h.SlideTime,
		AnimationType: h.AnimType,
		GroundType:    h.GroundType,
		XVelocity:     h.XVel,
		YVelocity:     h.YVel,
		YAcceleration: h.YAccel,
		Fall: eval.FallState{
			Fall:      h.Fall.Active,
			YVelocity: h.Fall.YVel,
		},
	}
}

func (c *Character) Velocities() eval.Velocities {
	v := c.state.Velocity
	return eval.Velocities{
		WalkForwardX:    v["walk.fwd.x"],
		WalkBackX:       v["walk.back.x"],
		RunForwardX:     v["run.fwd.x"],
		RunBackX:        v["run.back.x"],
		RunBackY:        v["run.back.y"],
		JumpNeutralX:    v["jump.neu.x"],
		JumpNeutralY:    v["jump.y"],
		JumpBackX:       v["jump.back.x"],
		JumpForwardX:    v["jump.fwd.x"],
		RunJumpForwardX: v["runjump.fwd.x"],
	}
}

func (c *Character) Variable(index int) (parser.Expr, bool) {
	expr, ok := c.vars[index]
	return expr, ok
}

func (c *Character) SystemVariable(index int) (parser.Expr, bool) {
	expr, ok := c.sysvars[index]
	return expr, ok
}

type animation struct {
	time     int
	position int
}

func (a animation) AnimationTime() int { return a.time }
func (a animation) Position() int      { return a.position }
