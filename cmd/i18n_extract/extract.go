// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"path/filepath"
	"slices"
	"strings"
)

// ref is one source position of a msgid.
type ref struct {
	file string
	line int
}

// extractor collects msgids from the type-checked syntax of one package.
type extractor struct {
	refs        map[string][]ref
	projectRoot string
	fset        *token.FileSet
	info        *types.Info
	i18nPkgs    map[string]struct{}
}

// inspect records every msgid found in files.
func (e *extractor) inspect(files []*ast.File) {
	for _, f := range files {
		ast.Inspect(f, func(n ast.Node) bool {
			switch x := n.(type) {
			case *ast.CallExpr:
				e.handleCallExpr(x)
			case *ast.CompositeLit:
				e.handleCompositeLit(x)
			}

			return true
		})
	}
}

// i18nPackage reports whether pkg is a package named i18n defining a MsgKey
// type whose underlying type is string. Matching the type rather than the
// import path keeps aliased imports working.
func i18nPackage(pkg *types.Package) bool {
	if pkg == nil || pkg.Name() != "i18n" {
		return false
	}

	tn, ok := pkg.Scope().Lookup("MsgKey").(*types.TypeName)
	if !ok {
		return false
	}

	basic, ok := tn.Type().Underlying().(*types.Basic)

	return ok && basic.Kind() == types.String
}

// constString evaluates expr to a constant string if possible.
// Handles string literals, const identifiers and constant expressions like "a" + "b".
func constString(info *types.Info, expr ast.Expr) (string, bool) {
	tv, ok := info.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}

	return constant.StringVal(tv.Value), true
}

// isMsgKey reports whether t is the named type MsgKey of an i18n package.
func (e *extractor) isMsgKey(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()
	if obj == nil || obj.Pkg() == nil {
		return false
	}

	if _, ok := e.i18nPkgs[obj.Pkg().Path()]; !ok {
		return false
	}

	return obj.Name() == "MsgKey"
}

// addConst records expr if it is a constant string.
func (e *extractor) addConst(expr ast.Expr) {
	if msg, ok := constString(e.info, expr); ok {
		e.addRef(expr.Pos(), msg)
	}
}

// handleCompositeLit finds implicit conversions to MsgKey in map, slice,
// array and struct literals.
func (e *extractor) handleCompositeLit(x *ast.CompositeLit) {
	tv, ok := e.info.Types[x]
	if !ok || tv.Type == nil {
		return
	}

	t := tv.Type
	if p, ok := t.Underlying().(*types.Pointer); ok {
		t = p.Elem()
	}

	switch u := t.Underlying().(type) {
	case *types.Map:
		keyIsMsg, valIsMsg := e.isMsgKey(u.Key()), e.isMsgKey(u.Elem())

		for _, elt := range x.Elts {
			kv, ok := elt.(*ast.KeyValueExpr)
			if !ok {
				continue
			}

			if keyIsMsg {
				e.addConst(kv.Key)
			}

			if valIsMsg {
				e.addConst(kv.Value)
			}
		}

	case *types.Slice:
		e.handleElements(x, u.Elem())

	case *types.Array:
		e.handleElements(x, u.Elem())

	case *types.Struct:
		for i, elt := range x.Elts {
			// Keyed field: FieldName: "..."
			if kv, ok := elt.(*ast.KeyValueExpr); ok {
				if id, ok := kv.Key.(*ast.Ident); ok && e.isMsgKey(fieldType(u, id.Name)) {
					e.addConst(kv.Value)
				}

				continue
			}

			// Positional field: rely on declared field order.
			if i < u.NumFields() && e.isMsgKey(u.Field(i).Type()) {
				e.addConst(elt)
			}
		}
	}
}

func (e *extractor) handleElements(x *ast.CompositeLit, elem types.Type) {
	if !e.isMsgKey(elem) {
		return
	}

	for _, elt := range x.Elts {
		if kv, ok := elt.(*ast.KeyValueExpr); ok {
			elt = kv.Value
		}

		e.addConst(elt)
	}
}

// fieldType returns the type of the field called name, or nil.
func fieldType(s *types.Struct, name string) types.Type {
	for i := range s.NumFields() {
		if f := s.Field(i); f.Name() == name {
			return f.Type()
		}
	}

	return nil
}

// handleCallExpr finds msgids in MsgKey conversions, Tr calls and calls of
// any function taking MsgKey parameters.
func (e *extractor) handleCallExpr(x *ast.CallExpr) {
	// Type conversion, e.g. i18n.MsgKey("Hello").
	if tv, ok := e.info.Types[x.Fun]; ok && tv.IsType() {
		if len(x.Args) == 1 && e.isMsgKey(tv.Type) {
			e.addConst(x.Args[0])
		}

		return
	}

	// Tr(ctx, "msg", ...) of an i18n package or a method of its Catalog.
	if sel, ok := x.Fun.(*ast.SelectorExpr); ok {
		if fn, ok := e.info.Uses[sel.Sel].(*types.Func); ok && fn.Pkg() != nil {
			if _, ok := e.i18nPkgs[fn.Pkg().Path()]; ok && fn.Name() == "Tr" {
				if len(x.Args) >= 2 {
					e.addConst(x.Args[1])
				}

				return
			}
		}
	}

	// Any other call with MsgKey parameters.
	sig, ok := e.info.TypeOf(x.Fun).(*types.Signature)
	if !ok {
		return
	}

	params := sig.Params()

	n := params.Len()
	if n == 0 {
		return
	}

	last := n - 1

	for i, arg := range x.Args {
		var pt types.Type

		if sig.Variadic() && i >= last {
			// If called with ...slice, composite literal handling finds the elements.
			if x.Ellipsis != token.NoPos {
				continue
			}

			pt = params.At(last).Type().(*types.Slice).Elem()
		} else {
			if i >= n {
				break
			}

			pt = params.At(i).Type()
		}

		if e.isMsgKey(pt) {
			e.addConst(arg)
		}
	}
}

// addRef records a reference to msg, relative to the project root.
func (e *extractor) addRef(pos token.Pos, msg string) {
	p := e.fset.Position(pos)

	file := p.Filename
	if rel, err := filepath.Rel(e.projectRoot, file); err == nil {
		file = rel
	}

	e.refs[msg] = append(e.refs[msg], ref{file: filepath.ToSlash(file), line: p.Line})
}

// sortedRefs returns the msgids of refs in order, each with its positions
// sorted and deduplicated.
func sortedRefs(refs map[string][]ref) ([]string, map[string][]ref) {
	ids := make([]string, 0, len(refs))
	out := make(map[string][]ref, len(refs))

	for id, rs := range refs {
		ids = append(ids, id)

		rs = slices.Clone(rs)
		slices.SortFunc(rs, func(a, b ref) int {
			if c := strings.Compare(a.file, b.file); c != 0 {
				return c
			}

			return a.line - b.line
		})

		out[id] = slices.Compact(rs)
	}

	slices.Sort(ids)

	return ids, out
}
