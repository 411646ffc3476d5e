package highlight

// Category is the presentation kind of an output token. Every token kind
// the lexer can produce maps to exactly one Category.
type Category uint8

const (
	// catUnset is the zero value. It never appears in classifier output;
	// a table entry left at catUnset means the kind was never mapped.
	catUnset Category = iota

	Keyword
	Pragma
	Symbol
	Variable
	Constructor
	Operator
	Char
	String
	Integer
	Rational
	Comment
	Space
	Other

	categoryCount
)

// CategoryCount is the number of valid categories, Space included.
const CategoryCount = int(categoryCount) - 1

var categoryNames = [categoryCount]string{
	catUnset:    "Unset",
	Keyword:     "Keyword",
	Pragma:      "Pragma",
	Symbol:      "Symbol",
	Variable:    "Variable",
	Constructor: "Constructor",
	Operator:    "Operator",
	Char:        "Char",
	String:      "String",
	Integer:     "Integer",
	Rational:    "Rational",
	Comment:     "Comment",
	Space:       "Space",
	Other:       "Other",
}

func (c Category) String() string {
	if c >= categoryCount {
		return "Category(?)"
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the thirteen real categories.
func (c Category) Valid() bool {
	return c > catUnset && c < categoryCount
}
