package clex

import "regexp"

// tokenRule 将一个词法类别绑定到一个锚定在游标处的模式.
type tokenRule struct {
	cat Category
	re  *regexp.Regexp
}

// ruleTable 定义的是优先级而不是最长匹配: 在每个扫描位置上,
// 表中第一个匹配的规则获胜, 即使后面的规则能匹配更多字符.
// 顺序因此承担了全部歧义消解:
//   - 头文件引用在任何括号/关系规则看到 '<' 与 '>' 之前;
//   - 多字符运算符在其单字符前缀之前;
//   - 关键字与类型的整词匹配在通用标识符之前;
//   - 浮点常量在整型常量之前;
//   - 末尾的单字符兜底规则保证扫描在任意输入上都能前进.
//
// 块注释规则懒惰匹配到第一个 '*/', 若不存在则吞掉其余全部输入,
// 作为单个注释 token.
var ruleTable = []tokenRule{
	{LIBRARY, regexp.MustCompile(`^#include[ \t]*<[^>]+>`)},
	{LINE_COMMENT, regexp.MustCompile(`^//[^\n]*`)},
	{BLOCK_COMMENT, regexp.MustCompile(`(?s)^/\*.*?(\*/|\z)`)},
	{ACCESS_SPECIFIER, regexp.MustCompile(`^(private|protected|public)\b`)},
	{DATA_TYPE, regexp.MustCompile(`^(int|float|double|char|bool|string|long|short|void)\b`)},
	{KEYWORD, regexp.MustCompile(`^(if|else|while|for|return|break|continue|switch|case|default|sizeof|do|goto|enum|typedef|struct|class|const|static|volatile|signed|unsigned|try|catch|throw|new|delete)\b`)},
	{BRACKET_PAREN, regexp.MustCompile(`^[{}\[\]()]`)},
	{DELIMITER, regexp.MustCompile(`^[;,:]`)},
	{INCDEC_OP, regexp.MustCompile(`^(\+\+|--)`)},
	{RELATIONAL_OP, regexp.MustCompile(`^(==|!=|<=|>=)`)},
	{LOGICAL_OP, regexp.MustCompile(`^(\|\||&&|!)`)},
	{BITWISE_OP, regexp.MustCompile(`^(<<|>>)`)},
	{RELATIONAL_OP, regexp.MustCompile(`^[<>]`)},
	{ASSIGN_OP, regexp.MustCompile(`^=`)},
	{ARITH_OP, regexp.MustCompile(`^[+\-*/%]`)},
	{BITWISE_OP, regexp.MustCompile(`^[&|^~]`)},
	{FLOAT_CONST, regexp.MustCompile(`^\d+\.\d+\b`)},
	{INT_CONST, regexp.MustCompile(`^\d+\b`)},
	{CHAR_LITERAL, regexp.MustCompile(`^'([^\\']|\\.)'`)},
	{STRING_LITERAL, regexp.MustCompile(`^"([^\\"]|\\.)*"`)},
	{IDENTIFIER, regexp.MustCompile(`^[A-Za-z_][A-Za-z_0-9]*`)},
	{WHITESPACE, regexp.MustCompile(`^[ \t\r]+`)},
	{NEWLINE, regexp.MustCompile(`^\n`)},
	{UNKNOWN, regexp.MustCompile(`(?s)^.`)},
}
