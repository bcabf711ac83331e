package parser

import (
	"github.com/leapstack-labs/pgparse/pkg/ast"
	"github.com/leapstack-labs/pgparse/pkg/token"
)

// Type names:
//
//	Typename       → [SETOF] SimpleTypename [opt_array_bounds | ARRAY ['[' Iconst ']']]
//	SimpleTypename → GenericType | Numeric | Bit | Character | ConstDatetime
//	               | INTERVAL [opt_interval | '(' Iconst ')'] | JSON
//	GenericType    → type_function_name [attrs] ['%' TYPE] ['(' expr_list ')']

func systemTypeName(name string, loc int) *ast.TypeName {
	return &ast.TypeName{Names: systemFuncName(name), Typemod: -1, Location: loc}
}

func (p *Parser) parseTypename() *ast.TypeName {
	setof := p.acceptKw("setof")
	tn := p.parseSimpleTypename()
	tn.Setof = setof

	switch {
	case p.isKw("array"):
		p.advance()
		bound := -1
		if p.acceptChar('[') {
			bound = p.iconst()
			p.expectChar(']')
		}
		tn.ArrayBounds = []ast.Node{&ast.Integer{Ival: bound}}
	case p.isChar('['):
		for p.acceptChar('[') {
			bound := -1
			if p.cur().Kind == token.ICONST {
				bound = p.iconst()
			}
			p.expectChar(']')
			tn.ArrayBounds = append(tn.ArrayBounds, &ast.Integer{Ival: bound})
		}
	}
	return tn
}

func (p *Parser) parseSimpleTypename() *ast.TypeName {
	if tn := p.parseBuiltinType(false); tn != nil {
		return tn
	}
	return p.parseGenericType()
}

// parseGenericType parses a user type name with optional modifiers.
func (p *Parser) parseGenericType() *ast.TypeName {
	start := p.cur()
	name := p.typeFuncName()
	names := append([]string{name}, p.attrs()...)
	tn := &ast.TypeName{Names: stringList(names...), Typemod: -1, Location: start.Start}
	if p.isChar('%') && p.isKwAt(1, "type") {
		p.pos += 2
		tn.PctType = true
		return tn
	}
	if p.isChar('(') {
		tn.Typmods = p.parenExprList()
	}
	return tn
}

// parseBuiltinType parses the SQL-standard type syntaxes that map to
// pg_catalog types. It returns nil when the current token does not start
// one. In constant context (typed literals) the modifiers that would make
// the syntax ambiguous are not accepted.
func (p *Parser) parseBuiltinType(constant bool) *ast.TypeName {
	t := p.cur()
	loc := t.Start
	if !t.Kind.IsKeyword() {
		return nil
	}
	switch t.Value {
	case "int", "integer":
		p.advance()
		return systemTypeName("int4", loc)
	case "smallint":
		p.advance()
		return systemTypeName("int2", loc)
	case "bigint":
		p.advance()
		return systemTypeName("int8", loc)
	case "real":
		p.advance()
		return systemTypeName("float4", loc)
	case "float":
		p.advance()
		name := "float8"
		if p.acceptChar('(') {
			prec := p.expectKind(token.ICONST)
			n, _ := parseInt32(prec.Value)
			switch {
			case n < 1:
				p.errorAt(prec.Start, ErrPrecisionTooSmall)
			case n <= 24:
				name = "float4"
			case n > 53:
				p.errorAt(prec.Start, ErrPrecisionTooLarge)
			}
			p.expectChar(')')
		}
		return systemTypeName(name, loc)
	case "double":
		if !p.isKwAt(1, "precision") {
			return nil
		}
		p.pos += 2
		return systemTypeName("float8", loc)
	case "decimal", "dec", "numeric":
		p.advance()
		tn := systemTypeName("numeric", loc)
		if p.isChar('(') {
			tn.Typmods = p.parenExprList()
		}
		return tn
	case "boolean":
		p.advance()
		return systemTypeName("bool", loc)
	case "bit":
		p.advance()
		varying := p.acceptKw("varying")
		tn := systemTypeName("bit", loc)
		if varying {
			tn = systemTypeName("varbit", loc)
		}
		if p.isChar('(') {
			tn.Typmods = p.parenExprList()
		} else if !varying {
			tn.Typmods = []ast.Node{makeIntConst(1, -1)}
		}
		return tn
	case "character", "char", "varchar", "national", "nchar":
		return p.parseCharacterType()
	case "timestamp", "time":
		p.advance()
		var typmods []ast.Node
		if p.isChar('(') {
			p.advance()
			typmods = []ast.Node{makeIntConst(p.iconst(), p.toks[p.pos-1].Start)}
			p.expectChar(')')
		}
		name := t.Value
		switch {
		case p.isKwSeq("with", "time", "zone"):
			p.pos += 3
			name += "tz"
		case p.isKwSeq("without", "time", "zone"):
			p.pos += 3
		}
		tn := systemTypeName(name, loc)
		tn.Typmods = typmods
		return tn
	case "interval":
		p.advance()
		tn := systemTypeName("interval", loc)
		if p.isChar('(') {
			p.advance()
			prec := p.iconst()
			precLoc := p.toks[p.pos-1].Start
			p.expectChar(')')
			tn.Typmods = []ast.Node{makeIntConst(ast.IntervalFullRange, -1), makeIntConst(prec, precLoc)}
			return tn
		}
		if !constant {
			tn.Typmods = p.parseOptInterval()
		}
		return tn
	case "json":
		p.advance()
		return systemTypeName("json", loc)
	}
	return nil
}

// parseCharacterType parses CHARACTER / CHAR / VARCHAR / NATIONAL
// CHARACTER / NCHAR with optional VARYING and length.
func (p *Parser) parseCharacterType() *ast.TypeName {
	t := p.advance()
	varying := false
	switch t.Value {
	case "varchar":
		varying = true
	case "national":
		if !p.acceptKw("character") && !p.acceptKw("char") {
			p.syntaxError()
		}
		varying = p.acceptKw("varying")
	default:
		varying = p.acceptKw("varying")
	}
	name := "bpchar"
	if varying {
		name = "varchar"
	}
	tn := systemTypeName(name, t.Start)
	if p.isChar('(') {
		p.advance()
		n := p.iconst()
		tn.Typmods = []ast.Node{makeIntConst(n, p.toks[p.pos-1].Start)}
		p.expectChar(')')
	} else if !varying {
		tn.Typmods = []ast.Node{makeIntConst(1, -1)}
	}
	return tn
}

// parseOptInterval parses the INTERVAL field qualifier, returning the
// typmods (mask and optional seconds precision) or nil.
func (p *Parser) parseOptInterval() []ast.Node {
	t := p.cur()
	mask := func(m int) []ast.Node {
		return []ast.Node{makeIntConst(m, t.Start)}
	}
	switch {
	case p.acceptKw("year", "to", "month"):
		return mask(ast.IntervalYear | ast.IntervalMonth)
	case p.acceptKw("year"):
		return mask(ast.IntervalYear)
	case p.acceptKw("month"):
		return mask(ast.IntervalMonth)
	case p.acceptKw("day", "to", "hour"):
		return mask(ast.IntervalDay | ast.IntervalHour)
	case p.acceptKw("day", "to", "minute"):
		return mask(ast.IntervalDay | ast.IntervalHour | ast.IntervalMinute)
	case p.acceptKw("day", "to"):
		return p.intervalSecond(ast.IntervalDay|ast.IntervalHour|ast.IntervalMinute, t.Start)
	case p.acceptKw("day"):
		return mask(ast.IntervalDay)
	case p.acceptKw("hour", "to", "minute"):
		return mask(ast.IntervalHour | ast.IntervalMinute)
	case p.acceptKw("hour", "to"):
		return p.intervalSecond(ast.IntervalHour|ast.IntervalMinute, t.Start)
	case p.acceptKw("hour"):
		return mask(ast.IntervalHour)
	case p.acceptKw("minute", "to"):
		return p.intervalSecond(ast.IntervalMinute, t.Start)
	case p.acceptKw("minute"):
		return mask(ast.IntervalMinute)
	case p.isKw("second"):
		return p.intervalSecond(0, t.Start)
	}
	return nil
}

// intervalSecond parses SECOND ['(' Iconst ')'] completing a mask.
func (p *Parser) intervalSecond(mask, loc int) []ast.Node {
	p.expectKw("second")
	out := []ast.Node{makeIntConst(mask|ast.IntervalSecond, loc)}
	if p.acceptChar('(') {
		n := p.iconst()
		out = append(out, makeIntConst(n, p.toks[p.pos-1].Start))
		p.expectChar(')')
	}
	return out
}

// isBuiltinTypeStart reports whether the token may begin a builtin type.
func isBuiltinTypeStart(t token.Token) bool {
	if !t.Kind.IsKeyword() {
		return false
	}
	switch t.Value {
	case "int", "integer", "smallint", "bigint", "real", "float", "double",
		"decimal", "dec", "numeric", "boolean", "bit", "character", "char",
		"varchar", "national", "nchar", "timestamp", "time", "interval", "json":
		return true
	}
	return false
}

func (p *Parser) typeList() []ast.Node {
	list := []ast.Node{p.parseTypename()}
	for p.acceptChar(',') {
		list = append(list, p.parseTypename())
	}
	return list
}
