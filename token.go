package clex

import (
	"fmt"
	"strings"
)

// Category 是词法类别, 由规则表中第一个匹配的规则赋予.
type Category string

// Token 是带行号的最小词法单元.
type Token struct {
	Line     int
	Category Category
	Lexeme   []byte // 使用 []byte 避免在扫描阶段分配新字符串
}

func (t Token) String() string {
	return fmt.Sprintf("Line:%d, Category:%s, Lexeme:`%s`", t.Line, t.Category, string(t.Lexeme))
}

// Label 以 "类别: 词素" 的形式返回 token 的显示标签, 供差异比较与树渲染使用.
func (t Token) Label() string {
	return string(t.Category) + ": " + BytesToString(t.Lexeme)
}

const (
	LIBRARY          Category = "Library"
	LINE_COMMENT     Category = "Line_Comment"
	BLOCK_COMMENT    Category = "Block_Comment"
	ACCESS_SPECIFIER Category = "Access_Specifier"
	DATA_TYPE        Category = "Data_Type"
	KEYWORD          Category = "Keyword"
	BRACKET_PAREN    Category = "Bracket_Parenthesis"
	DELIMITER        Category = "Delimiter"
	ASSIGN_OP        Category = "Assignment_Operator"
	INCDEC_OP        Category = "Increment_Decrement_Operator"
	ARITH_OP         Category = "Arithmetic_Operator"
	RELATIONAL_OP    Category = "Relational_Operator"
	LOGICAL_OP       Category = "Logical_Operator"
	BITWISE_OP       Category = "Bitwise_Operator"
	FLOAT_CONST      Category = "Float_Constant"
	INT_CONST        Category = "Integer_Constant"
	CHAR_LITERAL     Category = "Character_Literal"
	STRING_LITERAL   Category = "String_Literal"
	IDENTIFIER       Category = "Identifier"
	WHITESPACE       Category = "Whitespace"
	NEWLINE          Category = "Newline"
	UNKNOWN          Category = "Unknown_Token"
)

// IsOperator 报告该类别是否属于运算符, 依据类别名称判断.
func (c Category) IsOperator() bool {
	return strings.Contains(string(c), "Operator")
}

// IsConstant 报告该类别是否属于常量.
// 字符与字符串字面量的名称不含 "Constant", 因此不参与常量计数.
func (c Category) IsConstant() bool {
	return strings.Contains(string(c), "Constant")
}

// ErrKindUnknownToken 是词法错误记录的固定种类.
const ErrKindUnknownToken = "Unknown Token"

// ErrorRecord 记录一个未被任何规则 (除兜底规则外) 识别的字符.
// 词法错误是可恢复的数据级错误, 扫描在记录后继续进行.
type ErrorRecord struct {
	Line   int    `json:"line"`
	Kind   string `json:"kind"`
	Lexeme string `json:"lexeme"`
}

func (e ErrorRecord) String() string {
	return fmt.Sprintf("Line:%d, Kind:%s, Lexeme:`%s`", e.Line, e.Kind, e.Lexeme)
}
