package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ecmago/ecmaparse/pkg/ast"
	"github.com/ecmago/ecmaparse/pkg/ecmascript"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	parseEval    string
	parseDumpAST bool
	parseExpr    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse ECMAScript source and print the AST",
	Long: `Parse ECMAScript source text and print the Abstract Syntax Tree.

The grammar parsed under is selected by --source-type (script, module, or
unknown, the default, which parses as a Module when the source has a
top-level import or export and as a Script otherwise).

If no file is provided, reads from stdin. Use -e to parse inline code,
--expression to parse a single expression, or --dump-ast to print the
tree structure instead of JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseExpr, "expression", false, "parse a single expression rather than a whole program")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "print an indented tree instead of JSON")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, name, err := readSource(parseEval, args)
	if err != nil {
		return err
	}

	typ, err := parseSourceType(sourceType)
	if err != nil {
		return err
	}

	if logger != nil {
		logger.Debug("parsing", zap.String("file", name), zap.String("source-type", sourceType))
	}

	if parseExpr {
		expr, perr := ecmascript.ParseExpression(input)
		if perr != nil {
			fmt.Fprintln(os.Stderr, perr.Error())
			return fmt.Errorf("parsing failed")
		}
		return printAST(expr)
	}

	prog, perr := ecmascript.ParseFile(input, name, typ)
	if perr != nil {
		fmt.Fprintln(os.Stderr, perr.Error())
		return fmt.Errorf("parsing failed")
	}
	return printAST(prog)
}

func printAST(n ast.Node) error {
	if parseDumpAST {
		dumpASTNode(n, 0)
		return nil
	}
	out, err := json.MarshalIndent(ecmascript.ToJSON(n), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling AST: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func parseSourceType(s string) (ecmascript.SourceType, error) {
	switch s {
	case "script":
		return ecmascript.Script, nil
	case "module":
		return ecmascript.Module, nil
	case "unknown", "":
		return ecmascript.Unknown, nil
	default:
		return 0, fmt.Errorf("invalid --source-type %q: want script, module, or unknown", s)
	}
}

func dumpASTNode(n ast.Node, indent int) {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}
	if n == nil {
		fmt.Printf("%s<nil>\n", prefix)
		return
	}
	fmt.Printf("%s%T @%s\n", prefix, n, n.Span())
	for _, child := range directChildren(n) {
		dumpASTNode(child, indent+1)
	}
}
