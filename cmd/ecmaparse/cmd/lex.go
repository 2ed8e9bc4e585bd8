package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ecmago/ecmaparse/pkg/ecmascript"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	lexEval    string
	lexShowPos bool
	lexJSON    bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize ECMAScript source and print the resulting tokens",
	Long: `Tokenize ECMAScript source text and print the resulting token stream.

If no file is provided, reads from stdin. Use -e to tokenize an inline
snippet instead.

Examples:
  ecmaparse lex script.js
  ecmaparse lex -e "const x = 1;"
  ecmaparse lex --show-pos --json script.js`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token byte-offset spans")
	lexCmd.Flags().BoolVar(&lexJSON, "json", false, "print one JSON object per token instead of the text format")
}

func runLex(cmd *cobra.Command, args []string) error {
	input, name, err := readSource(lexEval, args)
	if err != nil {
		return err
	}

	if logger != nil {
		logger.Debug("lexing", zap.String("file", name), zap.Int("bytes", len(input)))
	}

	tokens, err := ecmascript.Tokenize(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return fmt.Errorf("lexing failed")
	}

	for _, tok := range tokens {
		if lexJSON {
			if err := printTokenJSON(os.Stdout, tok); err != nil {
				return err
			}
			continue
		}
		printToken(os.Stdout, tok, lexShowPos)
	}
	return nil
}

// readSource resolves the CLI's three input modes: -e inline, a file
// argument, or stdin.
func readSource(eval string, args []string) (input, name string, err error) {
	if eval != "" {
		return eval, "<eval>", nil
	}
	if len(args) == 1 {
		data, ferr := os.ReadFile(args[0])
		if ferr != nil {
			return "", "", fmt.Errorf("reading %s: %w", args[0], ferr)
		}
		return string(data), args[0], nil
	}
	data, rerr := io.ReadAll(os.Stdin)
	if rerr != nil {
		return "", "", fmt.Errorf("reading stdin: %w", rerr)
	}
	return string(data), "<stdin>", nil
}
