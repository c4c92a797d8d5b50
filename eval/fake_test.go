package eval

import "trigger/parser"

// fakeAnimation and fakeCharacter are hand-built environments for tests
type fakeAnimation struct {
	time     int
	position int
}

func (a fakeAnimation) AnimationTime() int { return a.time }
func (a fakeAnimation) Position() int      { return a.position }

type fakeCharacter struct {
	anim       int
	current    Animation
	animations map[int]bool

	state      int
	prevState  int
	stateType  string
	time       int
	ctrl       bool
	power      float64
	hit        *HitState
	canRecover bool

	velocities Velocities
	xvel, yvel float64
	ypos       float64

	vars    map[int]string
	sysvars map[int]string
}

func (c *fakeCharacter) Animation() int              { return c.anim }
func (c *fakeCharacter) CurrentAnimation() Animation { return c.current }
func (c *fakeCharacter) HasAnimation(id int) bool    { return c.animations[id] }
func (c *fakeCharacter) CurrentState() int           { return c.state }
func (c *fakeCharacter) PreviousState() int          { return c.prevState }
func (c *fakeCharacter) StateType() string           { return c.stateType }
func (c *fakeCharacter) StateTime() int              { return c.time }
func (c *fakeCharacter) HasControl() bool            { return c.ctrl }
func (c *fakeCharacter) Power() float64              { return c.power }
func (c *fakeCharacter) HitState() *HitState         { return c.hit }
func (c *fakeCharacter) CanRecover() bool            { return c.canRecover }
func (c *fakeCharacter) Velocities() Velocities      { return c.velocities }
func (c *fakeCharacter) XVelocity() float64          { return c.xvel }
func (c *fakeCharacter) YVelocity() float64          { return c.yvel }
func (c *fakeCharacter) YPosition() float64          { return c.ypos }

func (c *fakeCharacter) Variable(index int) (parser.Expr, bool) {
	return slot(c.vars, index)
}

func (c *fakeCharacter) SystemVariable(index int) (parser.Expr, bool) {
	return slot(c.sysvars, index)
}

func slot(slots map[int]string, index int) (parser.Expr, bool) {
	src, ok := slots[index]
	if !ok {
		return nil, false
	}
	return parser.MustParse(src), true
}

type fakeEnv struct {
	commands  []string
	character Character
}

func (e *fakeEnv) Commands() []string   { return e.commands }
func (e *fakeEnv) Character() Character { return e.character }

func newFakeEnv() (*fakeEnv, *fakeCharacter) {
	c := &fakeCharacter{
		anim:       200,
		current:    fakeAnimation{time: 4, position: 2},
		animations: map[int]bool{0: true, 200: true},
		state:      200,
		prevState:  0,
		stateType:  "S",
		time:       12,
		ctrl:       true,
		power:      1500,
		vars:       map[int]string{0: "5", 1: "var(0) * 2"},
		sysvars:    map[int]string{3: "1"},
	}
	return &fakeEnv{commands: []string{"holdfwd", "a"}, character: c}, c
}
