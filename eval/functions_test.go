package eval

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trigger/parser"
	"trigger/trace"
	"trigger/types"
)

func TestVariables(t *testing.T) {
	env, _ := newFakeEnv()

	assert.Equal(t, types.NewInt(5), mustEval(t, env, "var(0)"))
	assert.Equal(t, types.NewInt(10), mustEval(t, env, "var(1)"))
	assert.Equal(t, types.NewInt(5), mustEval(t, env, "var(0.7)"))
	assert.Equal(t, types.NewInt(1), mustEval(t, env, "sysvar(3)"))

	_, err := evalSource(t, env, "var(9)")
	requireCode(t, err, types.E_NAME)
	assert.Contains(t, err.Error(), "No variable for index 9")

	// an empty system variable reads as false
	assert.Equal(t, types.NewBool(false), mustEval(t, env, "sysvar(9)"))
}

func TestIfElseEvaluatesOneBranch(t *testing.T) {
	env, _ := newFakeEnv()

	assert.Equal(t, types.NewInt(1), mustEval(t, env, "ifelse(ctrl, 1, nosuch)"))
	assert.Equal(t, types.NewInt(2), mustEval(t, env, "ifelse(!ctrl, nosuch, 2)"))
	assert.Equal(t, types.NewStr("x"), mustEval(t, env, `ifelse(var(0) = 5, "x", "y")`))

	_, err := evalSource(t, env, "ifelse(ctrl, nosuch, 2)")
	requireCode(t, err, types.E_NAME)

	_, err = evalSource(t, env, "ifelse(0, 1)")
	requireCode(t, err, types.E_INVALID)
	assert.Contains(t, err.Error(), "Missing argument 3 to ifelse")
}

func TestConstAndAbs(t *testing.T) {
	env, _ := newFakeEnv()

	assert.Equal(t, types.NewDouble(2.4), mustEval(t, env, "const(2.4)"))
	assert.Equal(t, types.NewInt(4), mustEval(t, env, "abs(-4)"))
	assert.Equal(t, types.NewInt(1), mustEval(t, env, "abs(ctrl)"))

	_, err := evalSource(t, env, "abs()")
	requireCode(t, err, types.E_INVALID)
}

func TestGetHitVar(t *testing.T) {
	env, c := newFakeEnv()
	c.hit = &HitState{
		SlideTime:     8,
		AnimationType: 2,
		GroundType:    1,
		XVelocity:     -3.5,
		YVelocity:     -4,
		YAcceleration: 0.45,
		Fall:          FallState{Fall: true, YVelocity: -6},
	}

	tests := []struct {
		src  string
		want types.Value
	}{
		{"gethitvar(animtype)", types.NewInt(2)},
		{"gethitvar(groundtype)", types.NewInt(1)},
		{"gethitvar(slidetime)", types.NewInt(8)},
		{"gethitvar(xvel)", types.NewDouble(-3.5)},
		{"gethitvar(yvel)", types.NewDouble(-4)},
		{"gethitvar(yaccel)", types.NewDouble(0.45)},
		{"gethitvar(fall)", types.NewBool(true)},
		{"gethitvar(fall.yvel)", types.NewDouble(-6)},
		{"GetHitVar(XVel)", types.NewDouble(-3.5)},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, mustEval(t, env, tt.src))
		})
	}

	_, err := evalSource(t, env, "gethitvar(xveladd)")
	requireCode(t, err, types.E_NAME)
	assert.Contains(t, err.Error(), "Unknown gethitvar variable xveladd")

	_, err = evalSource(t, env, "gethitvar()")
	requireCode(t, err, types.E_INVALID)
}

func TestAnimationFunctions(t *testing.T) {
	env, c := newFakeEnv()

	// position 2 is the third element
	assert.Equal(t, types.NewBool(true), mustEval(t, env, "animelem(3)"))
	assert.Equal(t, types.NewBool(false), mustEval(t, env, "animelem(2)"))
	assert.Equal(t, types.NewInt(0), mustEval(t, env, "animelemtime(3)"))

	assert.Equal(t, types.NewBool(true), mustEval(t, env, "selfanimexist(200)"))
	assert.Equal(t, types.NewBool(false), mustEval(t, env, "selfanimexist(5000)"))

	c.current = nil
	_, err := evalSource(t, env, "animelem(1)")
	requireCode(t, err, types.E_INVALID)
	_, err = evalSource(t, env, "animtime")
	requireCode(t, err, types.E_INVALID)
}

func TestUnknownFunction(t *testing.T) {
	env, _ := newFakeEnv()

	_, err := evalSource(t, env, "nosuch(1, 2)")
	requireCode(t, err, types.E_NAME)
	assert.Contains(t, err.Error(), "Unknown function 'nosuch(1, 2)'")
}

func TestTracerRecordsEvaluation(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	env, _ := newFakeEnv()
	var buf bytes.Buffer
	tracer := trace.New(zerolog.New(&buf).Level(zerolog.TraceLevel), nil)

	v, err := Evaluate(parser.MustParse("var(0) = 5"), env, WithTracer(tracer))
	require.NoError(t, err)
	assert.Equal(t, types.NewBool(true), v)

	out := buf.String()
	assert.Contains(t, out, `"message":"evaluate expression"`)
	assert.Contains(t, out, `"name":"var"`)
	assert.Contains(t, out, `"expr":"var(0) = 5"`)

	buf.Reset()
	_, err = Evaluate(parser.MustParse("nosuch"), env, WithTracer(tracer))
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"code":"E_NAME"`)
}

func TestTracerFilters(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	env, _ := newFakeEnv()
	var buf bytes.Buffer
	tracer := trace.New(zerolog.New(&buf).Level(zerolog.TraceLevel), []string{"var*"})

	_, err := Evaluate(parser.MustParse("1 + var(0)"), env, WithTracer(tracer))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"expr":"var(0)"`)
	assert.NotContains(t, out, `"expr":"1 + var(0)"`)
}
