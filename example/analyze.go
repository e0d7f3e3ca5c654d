package main

import (
	"fmt"

	"github.com/WJQSERVER/clex"
)

const source = `// demo
int x = 5 ;
if ( x < 10 ) { x = x + 1 ; }
return 0 ;
`

func main() {
	a := clex.Analyze([]byte(source))

	for _, tok := range a.Tokens {
		fmt.Println(tok)
	}
	for _, e := range a.Errors {
		fmt.Println(e)
	}

	fmt.Printf("\nKeyword: %d  Identifier: %d  Constant: %d  Operator: %d\n\n",
		a.Stats.Keyword, a.Stats.Identifier, a.Stats.Constant, a.Stats.Operator)

	fmt.Println(a.Tree)
}
