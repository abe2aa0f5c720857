package analyzer

import (
	"strconv"
	"strings"

	"github.com/haloscript/hsc/internal/ast"
	"github.com/haloscript/hsc/internal/catalog"
	"github.com/haloscript/hsc/internal/diagnostics"
	"github.com/haloscript/hsc/internal/types"
)

var gameDifficultyValues = map[string]int16{
	"easy": 0, "normal": 1, "hard": 2, "impossible": 3,
}

var teamValues = map[string]int16{
	"default": 0, "player": 1, "human": 2, "covenant": 3, "flood": 4,
	"sentinel": 5, "unused6": 6, "unused7": 7, "unused8": 8, "unused9": 9,
}

// parseLiteral resolves one argument that remained a Primitive(Static)
// node after the argument pass into its final typed value.
func (a *Analyzer) parseLiteral(node *ast.Node, param catalog.Param, u types.T) (*ast.Node, error) {
	text := node.StringData
	if !node.Quoted && !param.AllowUppercase {
		text = strings.ToLower(text)
	}

	vt := node.ValueType
	if vt == types.Passthrough {
		vt = u
	}

	out := &ast.Node{Kind: ast.PrimitiveStatic, ValueType: vt, Quoted: node.Quoted, Pos: node.Pos}

	switch vt {
	case types.Boolean:
		switch text {
		case "0", "false", "off":
			out.Data.HasBoolean, out.Data.Boolean = true, false
		case "1", "true", "on":
			out.Data.HasBoolean, out.Data.Boolean = true, true
		default:
			return nil, a.badLiteral(node, text, "boolean")
		}
		return out, nil

	case types.Short:
		v, err := strconv.ParseInt(text, 10, 16)
		if err != nil {
			return nil, a.badLiteral(node, text, "short")
		}
		out.Data.HasShort, out.Data.Short = true, int16(v)
		return out, nil

	case types.Long:
		v, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return nil, a.badLiteral(node, text, "long")
		}
		out.Data.HasLong, out.Data.Long = true, int32(v)
		return out, nil

	case types.Real:
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, a.badLiteral(node, text, "real")
		}
		out.Data.HasReal, out.Data.Real = true, float32(v)
		return out, nil

	case types.GameDifficulty:
		v, ok := gameDifficultyValues[text]
		if !ok {
			return nil, a.badLiteral(node, text, "game_difficulty")
		}
		out.Data.HasShort, out.Data.Short = true, v
		return out, nil

	case types.Team:
		v, ok := teamValues[text]
		if !ok {
			return nil, a.badLiteral(node, text, "team")
		}
		out.Data.HasShort, out.Data.Short = true, v
		return out, nil

	case types.Script:
		callable, ok := a.Env.LookupFunction(text)
		if !ok || callable.Script == nil {
			return nil, a.badLiteral(node, text, "script")
		}
		out.StringData = text
		return out, nil

	case types.Void:
		return nil, errAtPos(diagnostics.ErrVoidLiteral, node.Pos, "void cannot be a literal")

	default:
		// Other enumerated/name types: the engine resolves these from
		// their string form, so the literal text is kept as-is.
		out.StringData = text
		return out, nil
	}
}

func (a *Analyzer) badLiteral(node *ast.Node, text, kind string) error {
	msg := "%q is not a valid %s literal"
	args := []interface{}{text, kind}
	if a.Env.HasFunction(strings.ToLower(text)) {
		msg += " (did you mean (%s)?)"
		args = append(args, strings.ToLower(text))
	}
	return errAtPos(diagnostics.ErrBadLiteral, node.Pos, msg, args...)
}
