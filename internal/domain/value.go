package domain

import "strings"

// ValueKind — вид значения параметра.
type ValueKind int

const (
	// ValueScalar — число или строка. Хранится литеральный текст
	// скаляра из документа, чтобы argv воспроизводил его байт в байт.
	ValueScalar ValueKind = iota

	// ValueBool — булев флаг. true даёт ровно один токен (сам флаг),
	// false не даёт ни одного.
	ValueBool

	// ValueList — последовательность скаляров. Флаг эмитится один раз,
	// затем каждый элемент отдельным токеном в исходном порядке.
	ValueList
)

// Value — закрытое тегированное объединение значений параметра.
//
// Конфигурация не имеет фиксированной схемы значений, поэтому вместо
// runtime-инспекции типов значения моделируются явным union'ом с
// детерминированными правилами кодирования на каждый вариант.
type Value struct {
	Kind   ValueKind
	Bool   bool     // заполнено при Kind == ValueBool
	Scalar string   // заполнено при Kind == ValueScalar
	List   []string // заполнено при Kind == ValueList
}

// BoolValue создаёт булево значение.
func BoolValue(b bool) Value {
	return Value{Kind: ValueBool, Bool: b}
}

// ScalarValue создаёт скалярное значение из литерального текста.
func ScalarValue(s string) Value {
	return Value{Kind: ValueScalar, Scalar: s}
}

// ListValue создаёт значение-последовательность.
func ListValue(items []string) Value {
	return Value{Kind: ValueList, List: items}
}

// String возвращает отображаемое представление значения (для логов и
// команды validate), не для argv.
func (v Value) String() string {
	switch v.Kind {
	case ValueBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case ValueList:
		return "[" + strings.Join(v.List, ", ") + "]"
	default:
		return v.Scalar
	}
}
