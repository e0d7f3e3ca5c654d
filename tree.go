package clex

import "strings"

// treeBuilder walks a token stream with a single forward-only cursor.
// No backtracking: each shape consumes its fixed token count, and tokens
// matching no shape are skipped one at a time.
type treeBuilder struct {
	tokens []Token
	pos    int
}

// BuildTree reconstructs a labelled tree from a token stream using a fixed,
// priority-ordered set of statement shapes: declarations, comments,
// standalone assignments, a single if form, return statements, and the End
// marker. This is a fixed-shape recognizer, not a general parser; shapes
// assume well-formed input, and a shape that runs out of tokens is abandoned
// without attaching a node (the cursor stays at the failure point).
func BuildTree(tokens []Token) *ParseNode {
	b := &treeBuilder{tokens: tokens}
	root := NewParseNode("Program")
	for b.pos < len(b.tokens) {
		tok := b.tokens[b.pos]
		switch {
		case tok.Category == DELIMITER || tok.Category == BRACKET_PAREN:
			b.pos++
		case tok.Category == DATA_TYPE && (b.lexemeIs(tok, "int") || b.lexemeIs(tok, "float")):
			b.declaration(root, tok)
		case tok.Category == LINE_COMMENT || tok.Category == BLOCK_COMMENT:
			root.Add("Comment: " + strings.TrimSpace(string(tok.Lexeme)))
			b.pos++
		case tok.Category == IDENTIFIER && b.peekIs(ASSIGN_OP):
			b.assignment(root, tok)
		case tok.Category == KEYWORD && b.lexemeIs(tok, "if"):
			b.ifStatement(root)
		case tok.Category == KEYWORD && b.lexemeIs(tok, "return"):
			b.returnStatement(root)
		case tok.Category == KEYWORD && b.lexemeIs(tok, "End"):
			// The rule table never produces an `End` keyword, so this shape is
			// unreachable from Scan output. Kept for callers that assemble
			// token streams themselves.
			root.Add("End")
			b.pos++
		default:
			b.pos++
		}
	}
	return root
}

// declaration handles `int x;` and `float x = 3.14;`. The token after the
// type is consumed as the declared identifier without inspection; an optional
// initializer takes its constant category from the declared type.
func (b *treeBuilder) declaration(root *ParseNode, typ Token) {
	b.pos++ // type
	name, ok := b.take()
	if !ok {
		return
	}
	decl := NewParseNode("Declaration(" + string(typ.Lexeme) + ")")
	decl.Add("ID: " + string(name.Lexeme))
	if b.curIs(ASSIGN_OP) {
		b.pos++ // '='
		val, ok := b.take()
		if !ok {
			return
		}
		ctype := INT_CONST
		if b.lexemeIs(typ, "float") {
			ctype = FLOAT_CONST
		}
		decl.Add(string(ctype) + ": " + string(val.Lexeme))
	}
	root.Children = append(root.Children, decl)
}

// assignment handles a standalone `x = x + 1;`. The expression absorbs every
// token up to the next delimiter; identifier, arithmetic-operator and
// integer/float-constant tokens become leaves, anything else is dropped from
// the tree without an error. The trailing delimiter is consumed silently.
func (b *treeBuilder) assignment(root *ParseNode, id Token) {
	node := NewParseNode("Assignment")
	node.Add("ID: " + string(id.Lexeme))
	b.pos += 2 // identifier and '='
	expr := node.Add("Expression")
	for b.pos < len(b.tokens) && b.tokens[b.pos].Category != DELIMITER {
		t := b.tokens[b.pos]
		switch t.Category {
		case IDENTIFIER:
			expr.Add("ID: " + string(t.Lexeme))
		case ARITH_OP, INT_CONST, FLOAT_CONST:
			expr.Add(t.Label())
		}
		b.pos++
	}
	b.pos++ // trailing delimiter
	root.Children = append(root.Children, node)
}

// ifStatement handles the single supported conditional shape:
// `if ( x < 5 ) { y = y + 1 ; }`. The condition is read as exactly three
// tokens and the body as a single assignment of the form
// `identifier = identifier operator integer-constant`; roles are assumed,
// not checked, and the `=` is skipped without inspection.
func (b *treeBuilder) ifStatement(root *ParseNode) {
	b.pos++ // 'if'
	if !b.skipTo("(") {
		return
	}
	b.pos++
	node := NewParseNode("if()")
	cond := node.Add("Expression")
	lhs, ok := b.take()
	if !ok {
		return
	}
	cond.Add("ID: " + string(lhs.Lexeme))
	op, ok := b.take()
	if !ok {
		return
	}
	cond.Add(string(RELATIONAL_OP) + ": " + string(op.Lexeme))
	rhs, ok := b.take()
	if !ok {
		return
	}
	cond.Add(string(INT_CONST) + ": " + string(rhs.Lexeme))

	if !b.skipTo("{") {
		return
	}
	b.pos++
	stmt := node.Add("Statement")
	asg := stmt.Add("Assignment")
	lid, ok := b.take()
	if !ok {
		return
	}
	asg.Add("ID: " + string(lid.Lexeme))
	b.pos++ // '='

	expr := asg.Add("Expression")
	left, ok := b.take()
	if !ok {
		return
	}
	expr.Add("ID: " + string(left.Lexeme))
	arith, ok := b.take()
	if !ok {
		return
	}
	expr.Add(string(ARITH_OP) + ": " + string(arith.Lexeme))
	right, ok := b.take()
	if !ok {
		return
	}
	expr.Add(string(INT_CONST) + ": " + string(right.Lexeme))
	root.Children = append(root.Children, node)
}

// returnStatement labels the next token as an integer constant regardless of
// its true category, matching the shape's fixed assumption.
func (b *treeBuilder) returnStatement(root *ParseNode) {
	b.pos++ // 'return'
	val, ok := b.take()
	if !ok {
		return
	}
	node := NewParseNode("return()")
	node.Add(string(INT_CONST) + ": " + string(val.Lexeme))
	root.Children = append(root.Children, node)
}

// take returns the token at the cursor and advances past it. ok is false when
// the stream is exhausted, which is the shape-assumption fault the builder
// recovers from by abandoning the node under construction.
func (b *treeBuilder) take() (Token, bool) {
	if b.pos >= len(b.tokens) {
		return Token{}, false
	}
	t := b.tokens[b.pos]
	b.pos++
	return t, true
}

// skipTo advances the cursor to the next bracket/paren token with the given
// lexeme. It reports false when no such token remains.
func (b *treeBuilder) skipTo(lexeme string) bool {
	for b.pos < len(b.tokens) {
		t := b.tokens[b.pos]
		if t.Category == BRACKET_PAREN && string(t.Lexeme) == lexeme {
			return true
		}
		b.pos++
	}
	return false
}

func (b *treeBuilder) curIs(cat Category) bool {
	return b.pos < len(b.tokens) && b.tokens[b.pos].Category == cat
}

func (b *treeBuilder) peekIs(cat Category) bool {
	return b.pos+1 < len(b.tokens) && b.tokens[b.pos+1].Category == cat
}

func (b *treeBuilder) lexemeIs(t Token, s string) bool {
	return string(t.Lexeme) == s
}
