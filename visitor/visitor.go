// Package visitor provides AST traversal and rewriting utilities.
package visitor

import "github.com/freeeve/sqlparse/ast"

// Visitor is the interface for AST traversal.
type Visitor interface {
	Visit(node ast.Node) Visitor
}

// Walk traverses an AST in depth-first order.
func Walk(v Visitor, node ast.Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}
	walkChildren(v, node)
}

func walkExprs(v Visitor, exprs []ast.Expr) {
	for _, e := range exprs {
		Walk(v, e)
	}
}

func walkOrderBy(v Visitor, obs []*ast.OrderByExpr) {
	for _, o := range obs {
		Walk(v, o.Expr)
	}
}

func walkTableExprs(v Visitor, tes []ast.TableExpr) {
	for _, te := range tes {
		Walk(v, te)
	}
}

func walkSelectExprs(v Visitor, ses []ast.SelectExpr) {
	for _, se := range ses {
		Walk(v, se)
	}
}

func walkAssignments(v Visitor, as []*ast.Assignment) {
	for _, a := range as {
		Walk(v, a.Target)
		Walk(v, a.Expr)
	}
}

func walkStatements(v Visitor, stmts []ast.Statement) {
	for _, s := range stmts {
		Walk(v, s)
	}
}

func walkChildren(v Visitor, node ast.Node) {
	switch n := node.(type) {
	case *ast.Query:
		if n.With != nil {
			for _, cte := range n.With.CTEs {
				Walk(v, cte.Query)
			}
		}
		Walk(v, n.Body)
		walkOrderBy(v, n.OrderBy)
		Walk(v, n.Limit)
		Walk(v, n.Offset)

	case *ast.SelectStmt:
		walkExprs(v, n.On)
		walkSelectExprs(v, n.Projection)
		walkTableExprs(v, n.From)
		Walk(v, n.Where)
		if n.GroupBy != nil {
			walkExprs(v, n.GroupBy.Exprs)
			for _, set := range n.GroupBy.Sets {
				walkExprs(v, set)
			}
		}
		Walk(v, n.Having)
		Walk(v, n.Qualify)
		for _, w := range n.Windows {
			walkWindowSpec(v, w.Spec)
		}

	case *ast.SetOp:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *ast.ValuesStmt:
		for _, row := range n.Rows {
			walkExprs(v, row)
		}

	case *ast.TableStmt:
		Walk(v, n.Name)

	case *ast.InsertStmt:
		Walk(v, n.Table)
		if n.Source != nil {
			Walk(v, n.Source)
		}
		walkAssignments(v, n.OnDuplicateUpdate)
		if n.OnConflict != nil {
			Walk(v, n.OnConflict.Where)
			walkAssignments(v, n.OnConflict.Updates)
			Walk(v, n.OnConflict.UpdateWhere)
		}
		walkSelectExprs(v, n.Returning)

	case *ast.UpdateStmt:
		Walk(v, n.Table)
		walkAssignments(v, n.Assignments)
		walkTableExprs(v, n.From)
		Walk(v, n.Where)
		walkOrderBy(v, n.OrderBy)
		Walk(v, n.Limit)
		walkSelectExprs(v, n.Returning)

	case *ast.DeleteStmt:
		walkTableExprs(v, n.From)
		walkTableExprs(v, n.Using)
		Walk(v, n.Where)
		walkOrderBy(v, n.OrderBy)
		Walk(v, n.Limit)
		walkSelectExprs(v, n.Returning)

	case *ast.MergeStmt:
		Walk(v, n.Table)
		Walk(v, n.Source)
		Walk(v, n.On)
		for _, c := range n.Clauses {
			Walk(v, c.Predicate)
			walkAssignments(v, c.Assignments)
			walkExprs(v, c.InsertValues)
		}

	case *ast.CreateTableStmt:
		Walk(v, n.Name)
		for _, col := range n.Columns {
			for _, opt := range col.Options {
				Walk(v, opt.Expr)
			}
		}
		for _, con := range n.Constraints {
			Walk(v, con.Expr)
		}
		Walk(v, n.PartitionBy)
		walkExprs(v, n.ClusterBy)
		walkExprs(v, n.OrderBy)
		if n.As != nil {
			Walk(v, n.As)
		}

	case *ast.CreateViewStmt:
		Walk(v, n.Name)
		Walk(v, n.Query)

	case *ast.CreateIndexStmt:
		Walk(v, n.Table)
		for _, c := range n.Columns {
			Walk(v, c.Expr)
		}
		Walk(v, n.Where)

	case *ast.CreateMacroStmt:
		Walk(v, n.Name)
		Walk(v, n.Expr)
		if n.Query != nil {
			Walk(v, n.Query)
		}

	case *ast.CreateFunctionStmt:
		Walk(v, n.Name)
		Walk(v, n.As)
		Walk(v, n.Return)

	case *ast.CreateProcedureStmt:
		Walk(v, n.Name)
		walkStatements(v, n.Body)

	case *ast.AlterTableStmt:
		Walk(v, n.Name)

	case *ast.DropStmt:
		for _, name := range n.Names {
			Walk(v, name)
		}

	case *ast.TruncateStmt:
		for _, name := range n.Names {
			Walk(v, name)
		}

	case *ast.ExplainStmt:
		Walk(v, n.Stmt)

	case *ast.IfStmt:
		Walk(v, n.Condition)
		walkStatements(v, n.Then)
		for _, ei := range n.ElseIfs {
			Walk(v, ei.Condition)
			walkStatements(v, ei.Body)
		}
		walkStatements(v, n.Else)

	case *ast.CallStmt:
		Walk(v, n.Func)

	case *ast.SetStmt:
		walkExprs(v, n.Values)

	case *ast.AliasedExpr:
		Walk(v, n.Expr)

	case *ast.StarExpr:
		if n.Qualifier != nil {
			Walk(v, n.Qualifier)
		}
		for _, r := range n.Replace {
			Walk(v, r.Expr)
		}

	case *ast.AliasedTableExpr:
		Walk(v, n.Expr)

	case *ast.JoinExpr:
		Walk(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.On)
		Walk(v, n.MatchCondition)

	case *ast.ParenTableExpr:
		Walk(v, n.Expr)

	case *ast.DerivedTable:
		Walk(v, n.Query)

	case *ast.UnnestTable:
		walkExprs(v, n.Exprs)

	case *ast.TableFunc:
		Walk(v, n.Func)

	case *ast.BinaryExpr:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *ast.UnaryExpr:
		Walk(v, n.Expr)

	case *ast.ParenExpr:
		Walk(v, n.Expr)

	case *ast.TupleExpr:
		walkExprs(v, n.Exprs)

	case *ast.CastExpr:
		Walk(v, n.Expr)

	case *ast.ConvertExpr:
		Walk(v, n.Expr)

	case *ast.ExtractExpr:
		Walk(v, n.Expr)

	case *ast.SubstringExpr:
		Walk(v, n.Expr)
		Walk(v, n.From)
		Walk(v, n.For)

	case *ast.TrimExpr:
		Walk(v, n.Chars)
		Walk(v, n.Expr)

	case *ast.PositionExpr:
		Walk(v, n.Needle)
		Walk(v, n.Haystack)

	case *ast.OverlayExpr:
		Walk(v, n.Expr)
		Walk(v, n.Placing)
		Walk(v, n.From)
		Walk(v, n.For)

	case *ast.AtTimeZoneExpr:
		Walk(v, n.Expr)
		Walk(v, n.TimeZone)

	case *ast.CollateExpr:
		Walk(v, n.Expr)

	case *ast.LikeExpr:
		Walk(v, n.Expr)
		Walk(v, n.Pattern)
		Walk(v, n.Escape)

	case *ast.BetweenExpr:
		Walk(v, n.Expr)
		Walk(v, n.Low)
		Walk(v, n.High)

	case *ast.InExpr:
		Walk(v, n.Expr)
		walkExprs(v, n.List)
		if n.Query != nil {
			Walk(v, n.Query)
		}
		Walk(v, n.Unnest)

	case *ast.IsExpr:
		Walk(v, n.Expr)
		Walk(v, n.Right)

	case *ast.ExistsExpr:
		Walk(v, n.Query)

	case *ast.SubqueryExpr:
		Walk(v, n.Query)

	case *ast.CaseExpr:
		Walk(v, n.Operand)
		for _, w := range n.Whens {
			Walk(v, w.Cond)
			Walk(v, w.Result)
		}
		Walk(v, n.Else)

	case *ast.FuncExpr:
		Walk(v, n.Name)
		walkExprs(v, n.Args)
		walkOrderBy(v, n.OrderBy)
		walkOrderBy(v, n.WithinGroup)
		Walk(v, n.Filter)
		if n.Over != nil {
			walkWindowSpec(v, n.Over)
		}

	case *ast.FuncArgExpr:
		Walk(v, n.Value)

	case *ast.SubscriptExpr:
		Walk(v, n.Expr)
		Walk(v, n.Index)

	case *ast.JsonAccessExpr:
		Walk(v, n.Value)
		for _, elem := range n.Path {
			Walk(v, elem.Index)
		}

	case *ast.ArrayExpr:
		walkExprs(v, n.Elems)

	case *ast.StructExpr:
		walkExprs(v, n.Fields)

	case *ast.NamedExpr:
		Walk(v, n.Expr)

	case *ast.DictionaryExpr:
		for _, f := range n.Fields {
			Walk(v, f.Key)
			Walk(v, f.Value)
		}

	case *ast.LambdaExpr:
		Walk(v, n.Body)

	case *ast.IntervalExpr:
		Walk(v, n.Value)

	case *ast.TypedStringExpr:
		Walk(v, n.Value)

	case *ast.IntroducedString:
		Walk(v, n.Value)

	case *ast.OuterJoinExpr:
		Walk(v, n.Expr)

	case *ast.CompoundIdent:
		for _, part := range n.Parts {
			Walk(v, part)
		}
	}
}

func walkWindowSpec(v Visitor, spec *ast.WindowSpec) {
	if spec == nil {
		return
	}
	walkExprs(v, spec.PartitionBy)
	walkOrderBy(v, spec.OrderBy)
	if spec.Frame != nil {
		if spec.Frame.Start != nil {
			Walk(v, spec.Frame.Start.Offset)
		}
		if spec.Frame.End != nil {
			Walk(v, spec.Frame.End.Offset)
		}
	}
}

// funcVisitor adapts a function to the Visitor interface.
type funcVisitor struct {
	fn func(ast.Node) bool
}

func (v funcVisitor) Visit(node ast.Node) Visitor {
	if node == nil {
		return nil
	}
	if !v.fn(node) {
		return nil
	}
	return v
}

// WalkFunc traverses the AST calling fn for each node. Returning false
// skips the node's children.
func WalkFunc(node ast.Node, fn func(ast.Node) bool) {
	Walk(funcVisitor{fn: fn}, node)
}
