package eval

import (
	"trigger/parser"
	"trigger/types"
)

var keywords = map[string]identifierFunc{
	"vel x": fromCharacter(func(c Character) types.Value {
		return types.NewDouble(c.XVelocity())
	}),
	"vel y": fromCharacter(func(c Character) types.Value {
		return types.NewDouble(c.YVelocity())
	}),
	// Y is stored pointing down; triggers see it pointing up
	"pos y": fromCharacter(func(c Character) types.Value {
		return types.NewDouble(-c.YPosition())
	}),
	// Not modelled yet
	"p2bodydist x": constant(types.NewInt(0)),
}

func (e *Evaluator) evalKeyword(n *parser.KeywordExpr) (types.Value, error) {
	e.tracer.Lookup("keyword", n.Text)
	read, ok := lookupName(keywords, n.Text)
	if !ok {
		return nil, types.Errorf(types.E_NAME, "Unknown keyword '%s'", n.String())
	}
	return read(e)
}
