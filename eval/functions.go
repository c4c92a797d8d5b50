package eval

import (
	"math"

	"trigger/parser"
	"trigger/types"
)

// builtinFunc implements a trigger function. It receives the call node
// unevaluated and evaluates only the arguments it needs.
type builtinFunc func(e *Evaluator, fn *parser.FunctionExpr) (types.Value, error)

// functionTable holds the registered trigger functions
type functionTable map[string]builtinFunc

func (t functionTable) register(name string, fn builtinFunc) {
	t[name] = fn
}

var functions = functionTable{}

// Registered in init: the builtins call back into Evaluator.Eval, which
// would otherwise form an initialization cycle with the table.
func init() {
	functions.register("const", fnConst)
	functions.register("abs", fnAbs)
	functions.register("var", fnVar)
	functions.register("sysvar", fnSysvar)
	functions.register("gethitvar", fnGetHitVar)
	functions.register("animelem", fnAnimElem)
	functions.register("animelemtime", fnAnimElemTime)
	functions.register("ifelse", fnIfElse)
	functions.register("selfanimexist", fnSelfAnimExist)
}

func (e *Evaluator) evalFunction(fn *parser.FunctionExpr) (types.Value, error) {
	e.tracer.Lookup("function", fn.Name)
	impl, ok := lookupName(functions, fn.Name)
	if !ok {
		return nil, types.Errorf(types.E_NAME, "Unknown function '%s'", fn.String())
	}
	return impl(e, fn)
}

// arg returns the i-th (0-based) argument or fails if it is missing
func arg(fn *parser.FunctionExpr, i int) (parser.Expr, error) {
	a := fn.Arg(i)
	if a == nil {
		return nil, types.Errorf(types.E_INVALID, "Missing argument %d to %s", i+1, fn.Name)
	}
	return a, nil
}

func (e *Evaluator) evalArg(fn *parser.FunctionExpr, i int) (types.Value, error) {
	a, err := arg(fn, i)
	if err != nil {
		return nil, err
	}
	return e.Eval(a)
}

func (e *Evaluator) intArg(fn *parser.FunctionExpr, i int) (int, error) {
	a, err := arg(fn, i)
	if err != nil {
		return 0, err
	}
	return e.evalInt(a)
}

// const(x) is x
func fnConst(e *Evaluator, fn *parser.FunctionExpr) (types.Value, error) {
	return e.evalArg(fn, 0)
}

func fnAbs(e *Evaluator, fn *parser.FunctionExpr) (types.Value, error) {
	v, err := e.evalArg(fn, 0)
	if err != nil {
		return nil, err
	}
	x, err := types.ToNumber(v)
	if err != nil {
		return nil, err
	}
	return types.NewDouble(math.Abs(x)), nil
}

// var(i) evaluates the expression stored in character variable i.
// An empty slot is an error.
func fnVar(e *Evaluator, fn *parser.FunctionExpr) (types.Value, error) {
	index, err := e.intArg(fn, 0)
	if err != nil {
		return nil, err
	}
	c, err := e.character()
	if err != nil {
		return nil, err
	}
	value, ok := c.Variable(index)
	if !ok || value == nil {
		return nil, types.Errorf(types.E_NAME, "No variable for index %d", index)
	}
	return e.Eval(value)
}

// sysvar(i) is like var(i) but an empty slot reads as false
func fnSysvar(e *Evaluator, fn *parser.FunctionExpr) (types.Value, error) {
	index, err := e.intArg(fn, 0)
	if err != nil {
		return nil, err
	}
	c, err := e.character()
	if err != nil {
		return nil, err
	}
	value, ok := c.SystemVariable(index)
	if !ok || value == nil {
		return types.NewBool(false), nil
	}
	return e.Eval(value)
}

// hitVars are the gethitvar fields that are modelled
var hitVars = map[string]func(hs *HitState) types.Value{
	"animtype":   func(hs *HitState) types.Value { return types.NewInt(hs.AnimationType) },
	"groundtype": func(hs *HitState) types.Value { return types.NewInt(hs.GroundType) },
	"slidetime":  func(hs *HitState) types.Value { return types.NewInt(hs.SlideTime) },
	"xvel":       func(hs *HitState) types.Value { return types.NewDouble(hs.XVelocity) },
	"yvel":       func(hs *HitState) types.Value { return types.NewDouble(hs.YVelocity) },
	"yaccel":     func(hs *HitState) types.Value { return types.NewDouble(hs.YAcceleration) },
	"fall":       func(hs *HitState) types.Value { return types.NewBool(hs.Fall.Fall) },
	"fall.yvel":  func(hs *HitState) types.Value { return types.NewDouble(hs.Fall.YVelocity) },
}

// gethitvar(name) reads a field of the current hit state. The argument
// is not evaluated; its source text names the field. Fields such as
// xveladd, hittime or fall.recover are valid in scripts but not
// modelled, and fail the same way as an unknown name.
func fnGetHitVar(e *Evaluator, fn *parser.FunctionExpr) (types.Value, error) {
	a := fn.Arg(0)
	if a == nil {
		return nil, types.NewError(types.E_INVALID, "No argument given to gethitvar")
	}
	name := a.String()
	read, ok := lookupName(hitVars, name)
	if !ok {
		return nil, types.Errorf(types.E_NAME, "Unknown gethitvar variable %s", name)
	}
	c, err := e.character()
	if err != nil {
		return nil, err
	}
	return read(hitState(c)), nil
}

// animelem(i) is true while element i (1-based) of the current animation
// is showing
func fnAnimElem(e *Evaluator, fn *parser.FunctionExpr) (types.Value, error) {
	index, err := e.intArg(fn, 0)
	if err != nil {
		return nil, err
	}
	c, err := e.character()
	if err != nil {
		return nil, err
	}
	anim, err := currentAnimation(c)
	if err != nil {
		return nil, err
	}
	return types.NewBool(anim.Position()+1 == index), nil
}

// animelemtime(i) is not modelled yet and always reads 0
func fnAnimElemTime(e *Evaluator, fn *parser.FunctionExpr) (types.Value, error) {
	return types.NewInt(0), nil
}

// ifelse(cond, a, b) evaluates only the branch cond selects
func fnIfElse(e *Evaluator, fn *parser.FunctionExpr) (types.Value, error) {
	cond, err := arg(fn, 0)
	if err != nil {
		return nil, err
	}
	b, err := e.evalBool(cond)
	if err != nil {
		return nil, err
	}
	if b {
		return e.evalArg(fn, 1)
	}
	return e.evalArg(fn, 2)
}

func fnSelfAnimExist(e *Evaluator, fn *parser.FunctionExpr) (types.Value, error) {
	id, err := e.intArg(fn, 0)
	if err != nil {
		return nil, err
	}
	c, err := e.character()
	if err != nil {
		return nil, err
	}
	return types.NewBool(c.HasAnimation(id)), nil
}
