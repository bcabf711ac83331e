package parser

import (
	"github.com/leapstack-labs/pgparse/pkg/ast"
)

// Window clauses:
//
//	over_clause     → OVER (window_specification | ColId)
//	window_spec     → '(' [existing_name] [PARTITION BY expr_list] [ORDER BY sortby_list] [frame] ')'
//	frame           → (RANGE | ROWS | GROUPS) (frame_bound | BETWEEN frame_bound AND frame_bound) [EXCLUDE ...]
//	frame_bound     → UNBOUNDED (PRECEDING | FOLLOWING) | CURRENT ROW | a_expr (PRECEDING | FOLLOWING)

func (p *Parser) parseOverClause() *ast.WindowDef {
	if p.isChar('(') {
		return p.parseWindowSpec()
	}
	t := p.cur()
	return &ast.WindowDef{Name: p.colID(), FrameOptions: ast.FrameOptionDefaults, Location: t.Start}
}

// parseWindowClause parses WINDOW name AS spec (',' name AS spec)*.
func (p *Parser) parseWindowClause() []ast.Node {
	var defs []ast.Node
	for {
		name := p.colID()
		p.expectKw("as")
		def := p.parseWindowSpec()
		def.Name = name
		defs = append(defs, def)
		if !p.acceptChar(',') {
			return defs
		}
	}
}

func (p *Parser) parseWindowSpec() *ast.WindowDef {
	open := p.expectChar('(')
	def := &ast.WindowDef{Location: open.Start}

	// PARTITION, RANGE, ROWS and GROUPS start clauses here rather than
	// naming an existing window.
	t := p.cur()
	if isColID(t) && !t.IsKeyword("partition") && !t.IsKeyword("range") && !t.IsKeyword("rows") && !t.IsKeyword("groups") {
		def.Refname = p.advance().Value
	}
	if p.acceptKw("partition", "by") {
		def.PartitionClause = p.exprList()
	}
	if p.acceptKw("order", "by") {
		def.OrderClause = p.parseSortList()
	}
	def.FrameOptions = ast.FrameOptionDefaults
	if p.isKw("range") || p.isKw("rows") || p.isKw("groups") {
		p.parseFrameClause(def)
	}
	p.expectChar(')')
	return def
}

func (p *Parser) parseFrameClause(def *ast.WindowDef) {
	mode := p.advance()
	opts := ast.FrameOptionNonDefault
	switch mode.Value {
	case "range":
		opts |= ast.FrameOptionRange
	case "rows":
		opts |= ast.FrameOptionRows
	default:
		opts |= ast.FrameOptionGroups
	}

	if p.acceptKw("between") {
		startLoc := p.cur().Start
		start, startOff := p.parseFrameBound()
		p.expectKw("and")
		endLoc := p.cur().Start
		end, endOff := p.parseFrameBound()
		merged := start | end<<1 | ast.FrameOptionBetween
		switch {
		case merged&ast.FrameOptionStartUnboundedFollowing != 0:
			p.errorAt(startLoc, ErrFrameStartFollowing)
		case merged&ast.FrameOptionEndUnboundedPreceding != 0:
			p.errorAt(endLoc, ErrFrameEndPreceding)
		case merged&ast.FrameOptionStartCurrentRow != 0 && merged&ast.FrameOptionEndOffsetPreceding != 0:
			p.errorAt(endLoc, ErrFrameCurrentPreceding)
		case merged&ast.FrameOptionStartOffsetFollowing != 0 &&
			merged&(ast.FrameOptionEndOffsetPreceding|ast.FrameOptionEndCurrentRow) != 0:
			p.errorAt(endLoc, ErrFrameFollowingPreceding)
		}
		opts |= merged
		def.StartOffset, def.EndOffset = startOff, endOff
	} else {
		loc := p.cur().Start
		start, startOff := p.parseFrameBound()
		switch {
		case start&ast.FrameOptionStartUnboundedFollowing != 0:
			p.errorAt(loc, ErrFrameStartFollowing)
		case start&ast.FrameOptionStartOffsetFollowing != 0:
			p.errorAt(loc, ErrFrameStartAfterEnd)
		}
		opts |= start | ast.FrameOptionEndCurrentRow
		def.StartOffset = startOff
	}

	switch {
	case p.acceptKw("exclude", "current", "row"):
		opts |= ast.FrameOptionExcludeCurrentRow
	case p.acceptKw("exclude", "group"):
		opts |= ast.FrameOptionExcludeGroup
	case p.acceptKw("exclude", "ties"):
		opts |= ast.FrameOptionExcludeTies
	case p.acceptKw("exclude", "no", "others"):
	}
	def.FrameOptions = opts
}

// parseFrameBound returns the START_* option bits of one bound and its
// offset expression, if any.
func (p *Parser) parseFrameBound() (int, ast.Node) {
	switch {
	case p.acceptKw("unbounded", "preceding"):
		return ast.FrameOptionStartUnboundedPreceding, nil
	case p.acceptKw("unbounded", "following"):
		return ast.FrameOptionStartUnboundedFollowing, nil
	case p.acceptKw("current", "row"):
		return ast.FrameOptionStartCurrentRow, nil
	}
	off := p.parseExpr()
	switch {
	case p.acceptKw("preceding"):
		return ast.FrameOptionStartOffsetPreceding, off
	case p.acceptKw("following"):
		return ast.FrameOptionStartOffsetFollowing, off
	}
	p.syntaxError()
	return 0, nil
}

// ---------- Sorting ----------

// parseSortList parses sortby (',' sortby)*.
func (p *Parser) parseSortList() []ast.Node {
	list := []ast.Node{p.parseSortBy()}
	for p.acceptChar(',') {
		list = append(list, p.parseSortBy())
	}
	return list
}

// parseSortBy parses a_expr [ASC | DESC | USING op] [NULLS FIRST | LAST].
func (p *Parser) parseSortBy() *ast.SortBy {
	sb := &ast.SortBy{Node: p.parseExpr(), Location: -1}
	switch {
	case p.acceptKw("asc"):
		sb.SortbyDir = ast.SORTBY_ASC
	case p.acceptKw("desc"):
		sb.SortbyDir = ast.SORTBY_DESC
	case p.isKw("using"):
		p.advance()
		sb.SortbyDir = ast.SORTBY_USING
		sb.Location = p.cur().Start
		if !isAllOp(p.cur()) && !p.isKw("operator") {
			p.syntaxError()
		}
		sb.UseOp = p.parseQualOp()
	}
	p.parseNullsOrder(&sb.SortbyNulls)
	return sb
}

func (p *Parser) parseNullsOrder(dst *ast.SortByNulls) {
	switch {
	case p.acceptKw("nulls", "first"):
		*dst = ast.SORTBY_NULLS_FIRST
	case p.acceptKw("nulls", "last"):
		*dst = ast.SORTBY_NULLS_LAST
	}
}
