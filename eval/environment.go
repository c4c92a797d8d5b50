package eval

import "trigger/parser"

// Environment is the read-only view of simulation state a trigger is
// evaluated against. The evaluator never mutates it.
type Environment interface {
	// Commands returns the names of the input commands active this tick
	Commands() []string
	Character() Character
}

// Character exposes the state of the character owning the trigger
type Character interface {
	Animation() int // current animation number
	CurrentAnimation() Animation
	HasAnimation(id int) bool

	CurrentState() int
	PreviousState() int
	StateType() string // "S", "C", "A" or "L"
	StateTime() int
	HasControl() bool
	Power() float64

	HitState() *HitState
	CanRecover() bool

	Velocities() Velocities
	XVelocity() float64
	YVelocity() float64
	YPosition() float64 // stored with Y pointing down

	// Variable and SystemVariable return the expression bound to an
	// indexed slot, or false if the slot is empty.
	Variable(index int) (parser.Expr, bool)
	SystemVariable(index int) (parser.Expr, bool)
}

// Animation is the character's currently playing animation
type Animation interface {
	AnimationTime() int
	Position() int // 0-based element index
}

// HitState is the in-progress hit reaction of a character
type HitState struct {
	ShakeTime     int
	HitTime       int
	SlideTime     int
	AnimationType int
	GroundType    int
	XVelocity     float64
	YVelocity     float64
	YAcceleration float64
	Fall          FallState
}

// FallState is the fall portion of a hit reaction
type FallState struct {
	Fall      bool
	YVelocity float64
}

// Velocities are the character's named movement constants
type Velocities struct {
	WalkForwardX    float64
	WalkBackX       float64
	RunForwardX     float64
	RunBackX        float64
	RunBackY        float64
	JumpNeutralX    float64
	JumpNeutralY    float64
	JumpBackX       float64
	JumpForwardX    float64
	RunJumpForwardX float64
}
