// Package celenum exposes the tables of an enums.Catalog to CEL expressions.
//
// The library declares four functions:
//
//	enum_name(type string, ordinal int) -> string
//	enum_ordinal(type string, name string) -> int
//	enum_has(type string, name string) -> bool
//	enum_names(type string) -> list(string)
//
// Example:
//
//	env, _ := cel.NewEnv(celenum.Library(enums.DefaultCatalog))
//	ast, iss := env.Compile(`enum_ordinal("types.Color", "Green") == 1`)
//
// Unknown types, unknown names and out-of-range ordinals evaluate to CEL
// errors; enum_has never fails for a registered type.
package celenum

import (
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/zero-day-ai/enums"
)

// Library returns a cel.EnvOption declaring the enum functions, resolved
// against catalog at evaluation time. A nil catalog means enums.DefaultCatalog.
func Library(catalog *enums.Catalog) cel.EnvOption {
	if catalog == nil {
		catalog = enums.DefaultCatalog
	}
	return cel.Lib(&library{catalog: catalog})
}

type library struct {
	catalog *enums.Catalog
}

// CompileOptions implements cel.Library.
func (l *library) CompileOptions() []cel.EnvOption {
	return []cel.EnvOption{
		cel.Function("enum_name",
			cel.Overload("enum_name_string_int",
				[]*cel.Type{cel.StringType, cel.IntType}, cel.StringType,
				cel.BinaryBinding(l.name))),
		cel.Function("enum_ordinal",
			cel.Overload("enum_ordinal_string_string",
				[]*cel.Type{cel.StringType, cel.StringType}, cel.IntType,
				cel.BinaryBinding(l.ordinal))),
		cel.Function("enum_has",
			cel.Overload("enum_has_string_string",
				[]*cel.Type{cel.StringType, cel.StringType}, cel.BoolType,
				cel.BinaryBinding(l.has))),
		cel.Function("enum_names",
			cel.Overload("enum_names_string",
				[]*cel.Type{cel.StringType}, cel.ListType(cel.StringType),
				cel.UnaryBinding(l.names))),
	}
}

// ProgramOptions implements cel.Library.
func (l *library) ProgramOptions() []cel.ProgramOption {
	return nil
}

func (l *library) entry(typ ref.Val) (enums.Entry, ref.Val) {
	typeName, ok := typ.(types.String)
	if !ok {
		return nil, types.MaybeNoSuchOverloadErr(typ)
	}
	e, found := l.catalog.Get(string(typeName))
	if !found {
		return nil, types.NewErr("unknown enum type %q", string(typeName))
	}
	return e, nil
}

func (l *library) name(typ, ordinal ref.Val) ref.Val {
	e, errVal := l.entry(typ)
	if errVal != nil {
		return errVal
	}
	n, ok := ordinal.(types.Int)
	if !ok {
		return types.MaybeNoSuchOverloadErr(ordinal)
	}
	if int64(n) != int64(int(n)) {
		return types.NewErr("%s: ordinal %d out of range", e.TypeName(), int64(n))
	}
	name, err := e.NameOf(int(n))
	if err != nil {
		return types.NewErr("%v", err)
	}
	return types.String(name)
}

func (l *library) ordinal(typ, name ref.Val) ref.Val {
	e, errVal := l.entry(typ)
	if errVal != nil {
		return errVal
	}
	s, ok := name.(types.String)
	if !ok {
		return types.MaybeNoSuchOverloadErr(name)
	}
	ordinal, found := e.OrdinalOf(string(s))
	if !found {
		return types.NewErr("%s: unknown name %q", e.TypeName(), string(s))
	}
	return types.Int(ordinal)
}

func (l *library) has(typ, name ref.Val) ref.Val {
	e, errVal := l.entry(typ)
	if errVal != nil {
		return errVal
	}
	s, ok := name.(types.String)
	if !ok {
		return types.MaybeNoSuchOverloadErr(name)
	}
	_, found := e.OrdinalOf(string(s))
	return types.Bool(found)
}

func (l *library) names(typ ref.Val) ref.Val {
	e, errVal := l.entry(typ)
	if errVal != nil {
		return errVal
	}
	return types.NewStringList(types.DefaultTypeAdapter, e.Strings())
}
