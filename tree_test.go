package clex

import (
	"bytes"
	"strings"
	"testing"
)

func mustScan(t *testing.T, src string) []Token {
	t.Helper()
	tokens, errs := ScanString(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected lexical errors in %q: %v", src, errs)
	}
	return tokens
}

func checkLabels(t *testing.T, n *ParseNode, want ...string) {
	t.Helper()
	if len(n.Children) != len(want) {
		t.Fatalf("node %q: expected %d children, got %d (%v)", n.Label, len(want), len(n.Children), n.Children)
	}
	for i, w := range want {
		if n.Children[i].Label != w {
			t.Errorf("node %q: children[%d].Label = %q, want %q", n.Label, i, n.Children[i].Label, w)
		}
	}
}

func TestBuildTreeDeclaration(t *testing.T) {
	root := BuildTree(mustScan(t, "int x = 5 ;"))
	if len(root.Children) != 1 {
		t.Fatalf("expected one statement, got %d", len(root.Children))
	}
	decl := root.Children[0]
	if decl.Label != "Declaration(int)" {
		t.Fatalf("label = %q, want Declaration(int)", decl.Label)
	}
	checkLabels(t, decl, "ID: x", "Integer_Constant: 5")
}

func TestBuildTreeFloatDeclaration(t *testing.T) {
	root := BuildTree(mustScan(t, "float rate = 3.14 ;"))
	decl := root.Children[0]
	if decl.Label != "Declaration(float)" {
		t.Fatalf("label = %q, want Declaration(float)", decl.Label)
	}
	// The initializer's category follows the declared type, not the token.
	checkLabels(t, decl, "ID: rate", "Float_Constant: 3.14")
}

func TestBuildTreeDeclarationWithoutInitializer(t *testing.T) {
	root := BuildTree(mustScan(t, "int x ;"))
	checkLabels(t, root.Children[0], "ID: x")
}

func TestBuildTreeComment(t *testing.T) {
	root := BuildTree(mustScan(t, "  // counter loop  "))
	checkLabels(t, root, "Comment: // counter loop")

	root = BuildTree(mustScan(t, "/* block */"))
	checkLabels(t, root, "Comment: /* block */")
}

func TestBuildTreeAssignment(t *testing.T) {
	root := BuildTree(mustScan(t, "x = x + 1 ;"))
	if len(root.Children) != 1 {
		t.Fatalf("expected one statement, got %d", len(root.Children))
	}
	asg := root.Children[0]
	if asg.Label != "Assignment" {
		t.Fatalf("label = %q, want Assignment", asg.Label)
	}
	checkLabels(t, asg, "ID: x", "Expression")
	checkLabels(t, asg.Children[1], "ID: x", "Arithmetic_Operator: +", "Integer_Constant: 1")
}

func TestBuildTreeAssignmentDropsForeignCategories(t *testing.T) {
	// The shift operator has no leaf mapping inside an expression; it is
	// dropped silently, no error raised.
	root := BuildTree(mustScan(t, "y = y << 2 ;"))
	expr := root.Children[0].Children[1]
	checkLabels(t, expr, "ID: y", "Integer_Constant: 2")
}

func TestBuildTreeIf(t *testing.T) {
	root := BuildTree(mustScan(t, "if ( x < 10 ) { x = x + 1 ; }"))
	if len(root.Children) != 1 {
		t.Fatalf("expected one statement, got %d (%v)", len(root.Children), root.Children)
	}
	ifNode := root.Children[0]
	if ifNode.Label != "if()" {
		t.Fatalf("label = %q, want if()", ifNode.Label)
	}
	checkLabels(t, ifNode, "Expression", "Statement")
	checkLabels(t, ifNode.Children[0], "ID: x", "Relational_Operator: <", "Integer_Constant: 10")
	stmt := ifNode.Children[1]
	checkLabels(t, stmt, "Assignment")
	asg := stmt.Children[0]
	checkLabels(t, asg, "ID: x", "Expression")
	checkLabels(t, asg.Children[1], "ID: x", "Arithmetic_Operator: +", "Integer_Constant: 1")
}

func TestBuildTreeReturn(t *testing.T) {
	root := BuildTree(mustScan(t, "return 0 ;"))
	ret := root.Children[0]
	if ret.Label != "return()" {
		t.Fatalf("label = %q, want return()", ret.Label)
	}
	checkLabels(t, ret, "Integer_Constant: 0")

	// The returned token is labelled as an integer constant regardless of
	// its true category.
	root = BuildTree(mustScan(t, "return x ;"))
	checkLabels(t, root.Children[0], "Integer_Constant: x")
}

func TestBuildTreeEndMarker(t *testing.T) {
	// Unreachable from Scan output; only a synthesized stream can hold it.
	tokens := []Token{{Line: 1, Category: KEYWORD, Lexeme: []byte("End")}}
	root := BuildTree(tokens)
	checkLabels(t, root, "End")
}

func TestBuildTreeTruncatedShapes(t *testing.T) {
	// Each shape that runs out of tokens mid-consumption is abandoned
	// without attaching a partial node.
	for _, src := range []string{
		"int",
		"int x =",
		"if",
		"if ( x <",
		"if ( x < 5 ) {",
		"if ( x < 5 ) { y =",
		"return",
	} {
		root := BuildTree(mustScan(t, src))
		if len(root.Children) != 0 {
			t.Errorf("%q: expected no nodes, got %v", src, root.Children)
		}
	}
}

func TestBuildTreeSkipsUnmatchedTokens(t *testing.T) {
	root := BuildTree(mustScan(t, "while ( x ) ;"))
	if len(root.Children) != 0 {
		t.Fatalf("expected no nodes, got %v", root.Children)
	}
}

func TestBuildTreeEmptyInput(t *testing.T) {
	root := BuildTree(nil)
	if root.Label != "Program" || len(root.Children) != 0 {
		t.Fatalf("expected bare Program root, got %v", root)
	}
}

func TestParseNodeFormat(t *testing.T) {
	root := BuildTree(mustScan(t, "if ( x < 5 ) { y = y + 1 ; }"))

	wantBranch := strings.Join([]string{
		"Program",
		"└── if()",
		"    ├── Expression",
		"    │   ├── ID: x",
		"    │   ├── Relational_Operator: <",
		"    │   └── Integer_Constant: 5",
		"    └── Statement",
		"        └── Assignment",
		"            ├── ID: y",
		"            └── Expression",
		"                ├── ID: y",
		"                ├── Arithmetic_Operator: +",
		"                └── Integer_Constant: 1",
	}, "\n")
	if got := root.String(); got != wantBranch {
		t.Errorf("branch rendering mismatch:\n--- want\n%s\n--- got\n%s", wantBranch, got)
	}

	wantIndent := strings.Join([]string{
		"Program",
		"\tif()",
		"\t\tExpression",
		"\t\t\tID: x",
		"\t\t\tRelational_Operator: <",
		"\t\t\tInteger_Constant: 5",
		"\t\tStatement",
		"\t\t\tAssignment",
		"\t\t\t\tID: y",
		"\t\t\t\tExpression",
		"\t\t\t\t\tID: y",
		"\t\t\t\t\tArithmetic_Operator: +",
		"\t\t\t\t\tInteger_Constant: 1",
	}, "\n")
	var buf bytes.Buffer
	root.Format(&buf, "", RenderOptions{Style: StyleIndent})
	if got := buf.String(); got != wantIndent {
		t.Errorf("indent rendering mismatch:\n--- want\n%s\n--- got\n%s", wantIndent, got)
	}
}
