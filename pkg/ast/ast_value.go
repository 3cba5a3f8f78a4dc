package ast

import (
	"strconv"
)

type ValueKind int

const (
	ValueKindUnknown ValueKind = iota
	ValueKindInteger
	ValueKindFloat
	ValueKindString
	ValueKindBoolean
	ValueKindNull
	ValueKindEnum
	ValueKindVariable
)

func (v ValueKind) String() string {
	switch v {
	case ValueKindInteger:
		return "Int"
	case ValueKindFloat:
		return "Float"
	case ValueKindString:
		return "String"
	case ValueKindBoolean:
		return "Boolean"
	case ValueKindNull:
		return "Null"
	case ValueKindEnum:
		return "Enum"
	case ValueKindVariable:
		return "Variable"
	default:
		return "Unknown"
	}
}

// Value is a literal or a variable reference: IntValue, FloatValue, StringValue,
// BooleanValue, NullValue, EnumValue or VariableValue.
// List and object literals are not part of the model.
type Value interface {
	ValueKind() ValueKind
	String() string
	isValue()
}

type IntValue struct {
	Value int64
}

type FloatValue struct {
	Value float64
}

// StringValue holds the decoded content of a string or block string literal.
type StringValue struct {
	Value string
	Block bool
}

type BooleanValue struct {
	Value bool
}

type NullValue struct{}

type EnumValue struct {
	Name string
}

// VariableValue references a variable by name, without the leading $.
type VariableValue struct {
	Name string
}

func (IntValue) ValueKind() ValueKind      { return ValueKindInteger }
func (FloatValue) ValueKind() ValueKind    { return ValueKindFloat }
func (StringValue) ValueKind() ValueKind   { return ValueKindString }
func (BooleanValue) ValueKind() ValueKind  { return ValueKindBoolean }
func (NullValue) ValueKind() ValueKind     { return ValueKindNull }
func (EnumValue) ValueKind() ValueKind     { return ValueKindEnum }
func (VariableValue) ValueKind() ValueKind { return ValueKindVariable }

func (i IntValue) String() string {
	return strconv.FormatInt(i.Value, 10)
}

func (f FloatValue) String() string {
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

func (s StringValue) String() string {
	if s.Block {
		return `"""` + s.Value + `"""`
	}
	return strconv.Quote(s.Value)
}

func (b BooleanValue) String() string {
	return strconv.FormatBool(b.Value)
}

func (NullValue) String() string {
	return "null"
}

func (e EnumValue) String() string {
	return e.Name
}

func (v VariableValue) String() string {
	return "$" + v.Name
}

func (IntValue) isValue()      {}
func (FloatValue) isValue()    {}
func (StringValue) isValue()   {}
func (BooleanValue) isValue()  {}
func (NullValue) isValue()     {}
func (EnumValue) isValue()     {}
func (VariableValue) isValue() {}
