package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/WJQSERVER/clex"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/peterh/liner"
)

const usage = `clexscan: a terminal front end for the clex analyzer core.

Usage:
  clexscan <command> [arguments]

Commands:
  scan [-json] [-csv out.csv] [-concurrent] [path ...]
                                          tokenize files and report lexical errors
  stats [-json] <path>                    token category statistics
  tree [-style branch|indent] <path>      reconstructed shape tree
  diff [-json] <pathA> <pathB>            positional token-stream comparison
  repl                                    interactive live scanning
`

const historyFile = ".clexscan_history"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	scanCmd := flag.NewFlagSet("scan", flag.ExitOnError)
	scanJSON := scanCmd.Bool("json", false, "Output tokens and errors in JSON format")
	scanCSV := scanCmd.String("csv", "", "Also write tokens to a CSV file (line, category, lexeme)")
	concurrent := scanCmd.Bool("concurrent", false, "Scan multiple files concurrently")

	statsCmd := flag.NewFlagSet("stats", flag.ExitOnError)
	statsJSON := statsCmd.Bool("json", false, "Output statistics in JSON format")

	treeCmd := flag.NewFlagSet("tree", flag.ExitOnError)
	treeStyle := treeCmd.String("style", "branch", "Tree rendering style (branch, indent)")

	diffCmd := flag.NewFlagSet("diff", flag.ExitOnError)
	diffJSON := diffCmd.Bool("json", false, "Output diff rows in JSON format")

	var err error
	switch os.Args[1] {
	case "scan":
		scanCmd.Parse(os.Args[2:])
		if len(scanCmd.Args()) == 0 {
			fmt.Fprintln(os.Stderr, "Error: missing file paths for scan command.")
			os.Exit(1)
		}
		err = scanFiles(scanCmd.Args(), *scanJSON, *scanCSV, *concurrent)
	case "stats":
		statsCmd.Parse(os.Args[2:])
		if len(statsCmd.Args()) != 1 {
			fmt.Fprintln(os.Stderr, "Error: stats expects exactly one file path.")
			os.Exit(1)
		}
		err = statsFile(statsCmd.Arg(0), *statsJSON)
	case "tree":
		treeCmd.Parse(os.Args[2:])
		if len(treeCmd.Args()) != 1 {
			fmt.Fprintln(os.Stderr, "Error: tree expects exactly one file path.")
			os.Exit(1)
		}
		err = treeFile(treeCmd.Arg(0), *treeStyle)
	case "diff":
		diffCmd.Parse(os.Args[2:])
		if len(diffCmd.Args()) != 2 {
			fmt.Fprintln(os.Stderr, "Error: diff expects exactly two file paths.")
			os.Exit(1)
		}
		err = diffFiles(diffCmd.Arg(0), diffCmd.Arg(1), *diffJSON)
	case "repl":
		err = runRepl()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %q\n", os.Args[1])
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// tokenRow 是 token 的序列化形式; 词素在核心里是字节切片,
// 输出时转换为字符串.
type tokenRow struct {
	Line     int    `json:"line"`
	Category string `json:"category"`
	Lexeme   string `json:"lexeme"`
}

type fileReport struct {
	Path   string             `json:"path"`
	Tokens []tokenRow         `json:"tokens"`
	Errors []clex.ErrorRecord `json:"errors"`
}

func reportFile(path string) (fileReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileReport{}, fmt.Errorf("could not read file %s: %w", path, err)
	}
	tokens, lexErrs := clex.Scan(data)
	rows := make([]tokenRow, 0, len(tokens))
	for _, t := range tokens {
		rows = append(rows, tokenRow{Line: t.Line, Category: string(t.Category), Lexeme: string(t.Lexeme)})
	}
	return fileReport{Path: path, Tokens: rows, Errors: lexErrs}, nil
}

func scanFiles(paths []string, jsonOutput bool, csvPath string, concurrent bool) error {
	reports := make([]fileReport, len(paths))

	if !concurrent || len(paths) == 1 {
		for i, path := range paths {
			r, err := reportFile(path)
			if err != nil {
				return err
			}
			reports[i] = r
		}
	} else {
		// 并发扫描; 每个文件的结果写回自己的下标, 输出顺序保持稳定.
		numWorkers := runtime.NumCPU()
		idxChan := make(chan int, len(paths))
		errChan := make(chan error, len(paths))
		var wg sync.WaitGroup

		for i := 0; i < numWorkers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for idx := range idxChan {
					r, err := reportFile(paths[idx])
					if err != nil {
						errChan <- err
						continue
					}
					reports[idx] = r
				}
			}()
		}
		for i := range paths {
			idxChan <- i
		}
		close(idxChan)
		wg.Wait()
		close(errChan)

		var allErrors []error
		for err := range errChan {
			allErrors = append(allErrors, err)
		}
		if len(allErrors) > 0 {
			return errors.Join(allErrors...)
		}
	}

	if jsonOutput {
		if err := json.MarshalWrite(os.Stdout, reports, jsontext.Multiline(true), jsontext.WithIndent("  ")); err != nil {
			return fmt.Errorf("could not marshal json: %w", err)
		}
	} else {
		for _, r := range reports {
			printReport(os.Stdout, r)
		}
	}

	if csvPath != "" {
		if err := writeCSV(csvPath, reports); err != nil {
			return err
		}
		fmt.Printf("Tokens written to %s\n", csvPath)
	}
	return nil
}

func printReport(w io.Writer, r fileReport) {
	fmt.Fprintf(w, "%s: %d tokens, %d errors\n", r.Path, len(r.Tokens), len(r.Errors))
	for _, t := range r.Tokens {
		fmt.Fprintf(w, "  %4d  %-28s  %s\n", t.Line, t.Category, t.Lexeme)
	}
	for _, e := range r.Errors {
		fmt.Fprintf(w, "  %4d  %-28s  %s\n", e.Line, e.Kind, e.Lexeme)
	}
}

// writeCSV 以 line, category, lexeme 三列导出全部 token.
func writeCSV(path string, reports []fileReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create csv file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Line", "Category", "Lexeme"}); err != nil {
		return err
	}
	for _, r := range reports {
		for _, t := range r.Tokens {
			if err := w.Write([]string{strconv.Itoa(t.Line), t.Category, t.Lexeme}); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}

func statsFile(path string, jsonOutput bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file %s: %w", path, err)
	}
	tokens, _ := clex.Scan(data)
	st := clex.Aggregate(tokens)

	if jsonOutput {
		return json.MarshalWrite(os.Stdout, st, jsontext.Multiline(true), jsontext.WithIndent("  "))
	}
	fmt.Printf("Keyword:    %d\n", st.Keyword)
	fmt.Printf("Identifier: %d\n", st.Identifier)
	fmt.Printf("Constant:   %d\n", st.Constant)
	fmt.Printf("Operator:   %d\n", st.Operator)
	return nil
}

func treeFile(path string, style string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file %s: %w", path, err)
	}
	tokens, lexErrs := clex.Scan(data)
	for _, e := range lexErrs {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", e)
	}
	root := clex.BuildTree(tokens)
	fmt.Println(renderTree(root, style))
	return nil
}

func renderTree(root *clex.ParseNode, style string) string {
	if style == "indent" {
		var buf bytes.Buffer
		root.Format(&buf, "", clex.RenderOptions{Style: clex.StyleIndent})
		return buf.String()
	}
	return root.String()
}

func diffFiles(pathA, pathB string, jsonOutput bool) error {
	dataA, err := os.ReadFile(pathA)
	if err != nil {
		return fmt.Errorf("could not read file %s: %w", pathA, err)
	}
	dataB, err := os.ReadFile(pathB)
	if err != nil {
		return fmt.Errorf("could not read file %s: %w", pathB, err)
	}
	tokensA, _ := clex.Scan(dataA)
	tokensB, _ := clex.Scan(dataB)
	equal, rows := clex.Diff(tokensA, tokensB)

	if jsonOutput {
		result := struct {
			Equal bool           `json:"equal"`
			Rows  []clex.DiffRow `json:"rows,omitempty"`
		}{Equal: equal, Rows: rows}
		return json.MarshalWrite(os.Stdout, result, jsontext.Multiline(true), jsontext.WithIndent("  "))
	}

	if equal {
		fmt.Println("Token streams are identical.")
		return nil
	}
	fmt.Printf("Token streams differ at %d positions:\n", len(rows))
	for _, row := range rows {
		left, right := row.Left, row.Right
		if left == "" {
			left = "<missing>"
		}
		if right == "" {
			right = "<missing>"
		}
		fmt.Printf("  %4d  %-36s | %s\n", row.Position, left, right)
	}
	return nil
}

// runRepl 是原始界面 "Live Typing" 页的终端版本: 每输入一行立即扫描,
// 累积的源文本可随时用 :stats 与 :tree 查看.
func runRepl() error {
	fmt.Println("clexscan repl - type C code, :stats, :tree, :reset or :quit")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	var source strings.Builder
	for {
		line, err := ln.Prompt("clex> ")
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(line)
		switch trimmed {
		case "":
			continue
		case ":quit":
			return nil
		case ":reset":
			source.Reset()
			fmt.Println("source cleared")
			continue
		case ":stats":
			tokens, _ := clex.ScanString(source.String())
			st := clex.Aggregate(tokens)
			fmt.Printf("Keyword: %d  Identifier: %d  Constant: %d  Operator: %d\n",
				st.Keyword, st.Identifier, st.Constant, st.Operator)
			continue
		case ":tree":
			tokens, _ := clex.ScanString(source.String())
			fmt.Println(clex.BuildTree(tokens))
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}

		source.WriteString(line)
		source.WriteByte('\n')
		ln.AppendHistory(line)

		tokens, lexErrs := clex.ScanString(line)
		for _, t := range tokens {
			fmt.Printf("  %-28s  %s\n", t.Category, string(t.Lexeme))
		}
		for _, e := range lexErrs {
			fmt.Printf("  %-28s  %s\n", e.Kind, e.Lexeme)
		}
	}
}
