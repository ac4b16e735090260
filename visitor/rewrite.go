package visitor

import "github.com/freeeve/sqlparse/ast"

// Rewrite traverses the AST allowing node replacement. The function is
// called in post-order (children first, then the parent), and its
// return value replaces the node. Statement structure is preserved;
// expression positions accept any replacement expression.
func Rewrite(node ast.Node, fn func(ast.Node) ast.Node) ast.Node {
	if node == nil {
		return nil
	}
	rewriteChildren(node, fn)
	return fn(node)
}

func rewriteExpr(e ast.Expr, fn func(ast.Node) ast.Node) ast.Expr {
	if e == nil {
		return nil
	}
	if out, ok := Rewrite(e, fn).(ast.Expr); ok {
		return out
	}
	return e
}

func rewriteExprs(exprs []ast.Expr, fn func(ast.Node) ast.Node) {
	for i, e := range exprs {
		exprs[i] = rewriteExpr(e, fn)
	}
}

func rewriteOrderBy(obs []*ast.OrderByExpr, fn func(ast.Node) ast.Node) {
	for _, o := range obs {
		o.Expr = rewriteExpr(o.Expr, fn)
	}
}

func rewriteAssignments(as []*ast.Assignment, fn func(ast.Node) ast.Node) {
	for _, a := range as {
		a.Expr = rewriteExpr(a.Expr, fn)
	}
}

func rewriteSelectExprs(ses []ast.SelectExpr, fn func(ast.Node) ast.Node) {
	for _, se := range ses {
		if ae, ok := se.(*ast.AliasedExpr); ok {
			ae.Expr = rewriteExpr(ae.Expr, fn)
		}
	}
}

func rewriteTableExprs(tes []ast.TableExpr, fn func(ast.Node) ast.Node) {
	for _, te := range tes {
		rewriteChildren(te, fn)
	}
}

func rewriteChildren(node ast.Node, fn func(ast.Node) ast.Node) {
	switch n := node.(type) {
	case *ast.Query:
		if n.With != nil {
			for _, cte := range n.With.CTEs {
				rewriteChildren(cte.Query, fn)
			}
		}
		rewriteChildren(n.Body, fn)
		rewriteOrderBy(n.OrderBy, fn)
		n.Limit = rewriteExpr(n.Limit, fn)
		n.Offset = rewriteExpr(n.Offset, fn)

	case *ast.SelectStmt:
		rewriteExprs(n.On, fn)
		rewriteSelectExprs(n.Projection, fn)
		rewriteTableExprs(n.From, fn)
		n.Where = rewriteExpr(n.Where, fn)
		if n.GroupBy != nil {
			rewriteExprs(n.GroupBy.Exprs, fn)
			for _, set := range n.GroupBy.Sets {
				rewriteExprs(set, fn)
			}
		}
		n.Having = rewriteExpr(n.Having, fn)
		n.Qualify = rewriteExpr(n.Qualify, fn)

	case *ast.SetOp:
		rewriteChildren(n.Left, fn)
		rewriteChildren(n.Right, fn)

	case *ast.ValuesStmt:
		for _, row := range n.Rows {
			rewriteExprs(row, fn)
		}

	case *ast.InsertStmt:
		if n.Source != nil {
			rewriteChildren(n.Source, fn)
		}
		rewriteAssignments(n.OnDuplicateUpdate, fn)
		if n.OnConflict != nil {
			n.OnConflict.Where = rewriteExpr(n.OnConflict.Where, fn)
			rewriteAssignments(n.OnConflict.Updates, fn)
			n.OnConflict.UpdateWhere = rewriteExpr(n.OnConflict.UpdateWhere, fn)
		}
		rewriteSelectExprs(n.Returning, fn)

	case *ast.UpdateStmt:
		rewriteChildren(n.Table, fn)
		rewriteAssignments(n.Assignments, fn)
		rewriteTableExprs(n.From, fn)
		n.Where = rewriteExpr(n.Where, fn)
		rewriteOrderBy(n.OrderBy, fn)
		n.Limit = rewriteExpr(n.Limit, fn)
		rewriteSelectExprs(n.Returning, fn)

	case *ast.DeleteStmt:
		rewriteTableExprs(n.From, fn)
		rewriteTableExprs(n.Using, fn)
		n.Where = rewriteExpr(n.Where, fn)
		rewriteOrderBy(n.OrderBy, fn)
		n.Limit = rewriteExpr(n.Limit, fn)
		rewriteSelectExprs(n.Returning, fn)

	case *ast.MergeStmt:
		rewriteChildren(n.Table, fn)
		rewriteChildren(n.Source, fn)
		n.On = rewriteExpr(n.On, fn)
		for _, c := range n.Clauses {
			c.Predicate = rewriteExpr(c.Predicate, fn)
			rewriteAssignments(c.Assignments, fn)
			rewriteExprs(c.InsertValues, fn)
		}

	case *ast.AliasedTableExpr:
		rewriteChildren(n.Expr, fn)

	case *ast.JoinExpr:
		rewriteChildren(n.Left, fn)
		rewriteChildren(n.Right, fn)
		n.On = rewriteExpr(n.On, fn)
		n.MatchCondition = rewriteExpr(n.MatchCondition, fn)

	case *ast.ParenTableExpr:
		rewriteChildren(n.Expr, fn)

	case *ast.DerivedTable:
		rewriteChildren(n.Query, fn)

	case *ast.UnnestTable:
		rewriteExprs(n.Exprs, fn)

	case *ast.TableFunc:
		rewriteChildren(n.Func, fn)

	case *ast.BinaryExpr:
		n.Left = rewriteExpr(n.Left, fn)
		n.Right = rewriteExpr(n.Right, fn)

	case *ast.UnaryExpr:
		n.Expr = rewriteExpr(n.Expr, fn)

	case *ast.ParenExpr:
		n.Expr = rewriteExpr(n.Expr, fn)

	case *ast.TupleExpr:
		rewriteExprs(n.Exprs, fn)

	case *ast.CastExpr:
		n.Expr = rewriteExpr(n.Expr, fn)

	case *ast.ConvertExpr:
		n.Expr = rewriteExpr(n.Expr, fn)

	case *ast.ExtractExpr:
		n.Expr = rewriteExpr(n.Expr, fn)

	case *ast.SubstringExpr:
		n.Expr = rewriteExpr(n.Expr, fn)
		n.From = rewriteExpr(n.From, fn)
		n.For = rewriteExpr(n.For, fn)

	case *ast.TrimExpr:
		n.Chars = rewriteExpr(n.Chars, fn)
		n.Expr = rewriteExpr(n.Expr, fn)

	case *ast.PositionExpr:
		n.Needle = rewriteExpr(n.Needle, fn)
		n.Haystack = rewriteExpr(n.Haystack, fn)

	case *ast.OverlayExpr:
		n.Expr = rewriteExpr(n.Expr, fn)
		n.Placing = rewriteExpr(n.Placing, fn)
		n.From = rewriteExpr(n.From, fn)
		n.For = rewriteExpr(n.For, fn)

	case *ast.AtTimeZoneExpr:
		n.Expr = rewriteExpr(n.Expr, fn)
		n.TimeZone = rewriteExpr(n.TimeZone, fn)

	case *ast.CollateExpr:
		n.Expr = rewriteExpr(n.Expr, fn)

	case *ast.LikeExpr:
		n.Expr = rewriteExpr(n.Expr, fn)
		n.Pattern = rewriteExpr(n.Pattern, fn)
		n.Escape = rewriteExpr(n.Escape, fn)

	case *ast.BetweenExpr:
		n.Expr = rewriteExpr(n.Expr, fn)
		n.Low = rewriteExpr(n.Low, fn)
		n.High = rewriteExpr(n.High, fn)

	case *ast.InExpr:
		n.Expr = rewriteExpr(n.Expr, fn)
		rewriteExprs(n.List, fn)
		if n.Query != nil {
			rewriteChildren(n.Query, fn)
		}
		n.Unnest = rewriteExpr(n.Unnest, fn)

	case *ast.IsExpr:
		n.Expr = rewriteExpr(n.Expr, fn)
		n.Right = rewriteExpr(n.Right, fn)

	case *ast.ExistsExpr:
		rewriteChildren(n.Query, fn)

	case *ast.SubqueryExpr:
		rewriteChildren(n.Query, fn)

	case *ast.CaseExpr:
		n.Operand = rewriteExpr(n.Operand, fn)
		for _, w := range n.Whens {
			w.Cond = rewriteExpr(w.Cond, fn)
			w.Result = rewriteExpr(w.Result, fn)
		}
		n.Else = rewriteExpr(n.Else, fn)

	case *ast.FuncExpr:
		rewriteExprs(n.Args, fn)
		rewriteOrderBy(n.OrderBy, fn)
		rewriteOrderBy(n.WithinGroup, fn)
		n.Filter = rewriteExpr(n.Filter, fn)
		if n.Over != nil {
			rewriteExprs(n.Over.PartitionBy, fn)
			rewriteOrderBy(n.Over.OrderBy, fn)
		}

	case *ast.FuncArgExpr:
		n.Value = rewriteExpr(n.Value, fn)

	case *ast.SubscriptExpr:
		n.Expr = rewriteExpr(n.Expr, fn)
		n.Index = rewriteExpr(n.Index, fn)

	case *ast.JsonAccessExpr:
		n.Value = rewriteExpr(n.Value, fn)
		for _, elem := range n.Path {
			elem.Index = rewriteExpr(elem.Index, fn)
		}

	case *ast.ArrayExpr:
		rewriteExprs(n.Elems, fn)

	case *ast.StructExpr:
		rewriteExprs(n.Fields, fn)

	case *ast.NamedExpr:
		n.Expr = rewriteExpr(n.Expr, fn)

	case *ast.DictionaryExpr:
		for _, f := range n.Fields {
			f.Value = rewriteExpr(f.Value, fn)
		}

	case *ast.LambdaExpr:
		n.Body = rewriteExpr(n.Body, fn)

	case *ast.IntervalExpr:
		n.Value = rewriteExpr(n.Value, fn)

	case *ast.OuterJoinExpr:
		n.Expr = rewriteExpr(n.Expr, fn)
	}
}
