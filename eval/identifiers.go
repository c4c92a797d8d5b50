package eval

import (
	"strings"

	"trigger/parser"
	"trigger/types"
)

// identifierFunc reads one named value out of the environment
type identifierFunc func(e *Evaluator) (types.Value, error)

func fromCharacter(read func(c Character) types.Value) identifierFunc {
	return func(e *Evaluator) (types.Value, error) {
		c, err := e.character()
		if err != nil {
			return nil, err
		}
		return read(c), nil
	}
}

func constant(v types.Value) identifierFunc {
	return func(*Evaluator) (types.Value, error) {
		return v, nil
	}
}

func velocity(read func(v Velocities) float64) identifierFunc {
	return fromCharacter(func(c Character) types.Value {
		return types.NewDouble(read(c.Velocities()))
	})
}

// hitState never returns nil
func hitState(c Character) *HitState {
	if hs := c.HitState(); hs != nil {
		return hs
	}
	return &HitState{}
}

func currentAnimation(c Character) (Animation, error) {
	anim := c.CurrentAnimation()
	if anim == nil {
		return nil, types.NewError(types.E_INVALID, "No current animation")
	}
	return anim, nil
}

// identifiers maps every recognized bare name to its reader. Names are
// disjoint, so lookup order does not matter.
var identifiers = map[string]identifierFunc{
	"command": func(e *Evaluator) (types.Value, error) {
		if e.env == nil {
			return nil, types.NewError(types.E_INVALID, "No environment")
		}
		return types.NewStrList(e.env.Commands()), nil
	},
	"anim": fromCharacter(func(c Character) types.Value {
		return types.NewInt(c.Animation())
	}),
	"animtime": func(e *Evaluator) (types.Value, error) {
		c, err := e.character()
		if err != nil {
			return nil, err
		}
		anim, err := currentAnimation(c)
		if err != nil {
			return nil, err
		}
		return types.NewInt(anim.AnimationTime()), nil
	},
	// statetime is undocumented; it reads the same clock as time
	"time": fromCharacter(func(c Character) types.Value {
		return types.NewInt(c.StateTime())
	}),
	"statetime": fromCharacter(func(c Character) types.Value {
		return types.NewInt(c.StateTime())
	}),
	"ctrl": fromCharacter(func(c Character) types.Value {
		return types.NewBool(c.HasControl())
	}),
	"stateno": fromCharacter(func(c Character) types.Value {
		return types.NewInt(c.CurrentState())
	}),
	"prevstateno": fromCharacter(func(c Character) types.Value {
		return types.NewInt(c.PreviousState())
	}),
	"power": fromCharacter(func(c Character) types.Value {
		return types.NewDouble(c.Power())
	}),
	"statetype": fromCharacter(func(c Character) types.Value {
		return types.NewStr(c.StateType())
	}),
	"hitover": fromCharacter(func(c Character) types.Value {
		return types.NewBool(hitState(c).HitTime <= -1)
	}),
	"hitshakeover": fromCharacter(func(c Character) types.Value {
		return types.NewBool(hitState(c).ShakeTime <= 0)
	}),
	"canrecover": fromCharacter(func(c Character) types.Value {
		return types.NewBool(c.CanRecover())
	}),
	"hitfall": fromCharacter(func(c Character) types.Value {
		return types.NewBool(hitState(c).Fall.Fall)
	}),

	"velocity.walk.fwd.x":    velocity(func(v Velocities) float64 { return v.WalkForwardX }),
	"velocity.walk.back.x":   velocity(func(v Velocities) float64 { return v.WalkBackX }),
	"velocity.run.fwd.x":     velocity(func(v Velocities) float64 { return v.RunForwardX }),
	"velocity.run.back.x":    velocity(func(v Velocities) float64 { return v.RunBackX }),
	"velocity.run.back.y":    velocity(func(v Velocities) float64 { return v.RunBackY }),
	"velocity.jump.neu.x":    velocity(func(v Velocities) float64 { return v.JumpNeutralX }),
	"velocity.jump.y":        velocity(func(v Velocities) float64 { return v.JumpNeutralY }),
	"velocity.jump.back.x":   velocity(func(v Velocities) float64 { return v.JumpBackX }),
	"velocity.jump.fwd.x":    velocity(func(v Velocities) float64 { return v.JumpForwardX }),
	"velocity.runjump.fwd.x": velocity(func(v Velocities) float64 { return v.RunJumpForwardX }),

	// state types are plain uppercase strings, written either case
	"a": constant(types.NewStr("A")),
	"s": constant(types.NewStr("S")),
	"c": constant(types.NewStr("C")),
	"l": constant(types.NewStr("L")),

	// Not modelled yet; fixed stand-in values.
	"alive":       constant(types.NewBool(true)),
	"p2statetype": constant(types.NewInt(0)),
	"movecontact": constant(types.NewInt(0)),
	"palno":       constant(types.NewInt(1)),
	"winko":       constant(types.NewBool(false)),
	"movehit":     constant(types.NewInt(0)),
	"projhit":     constant(types.NewInt(0)),
}

// lookupName finds name exactly, then case-insensitively (script files
// commonly write Time, Ctrl, AnimElem).
func lookupName[F any](table map[string]F, name string) (F, bool) {
	if f, ok := table[name]; ok {
		return f, true
	}
	f, ok := table[strings.ToLower(name)]
	return f, ok
}

func (e *Evaluator) evalIdentifier(n *parser.IdentifierExpr) (types.Value, error) {
	e.tracer.Lookup("identifier", n.Name)
	read, ok := lookupName(identifiers, n.Name)
	if !ok {
		return nil, types.Errorf(types.E_NAME, "Unknown identifier '%s'", n.String())
	}
	return read(e)
}
