// Command artscr is a thin CLI front-end over pkg/scoring's candidate
// scorer, for inspecting which subtree an HTML document's element-based
// scorer would elect as article content.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/artscr/artscr/internal/xlog"
	"github.com/artscr/artscr/pkg/charset"
	"github.com/artscr/artscr/pkg/htmlnode"
	"github.com/artscr/artscr/pkg/scoring"
)

const defaultNTopCandidates = 5

func main() {
	xlog.SetOutput(os.Stderr)
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	rootCmd := &cobra.Command{
		Use:   "artscr <html-file> [n-top-candidates]",
		Short: "Print the candidate subtree the scorer would elect as article content",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspect(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	exitCode := 0
	// A nil slice would make cobra fall back to os.Args[1:].
	rootCmd.SetArgs(append([]string{}, args...))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "artscr: %v\n", err)
		exitCode = codeFor(err)
	}
	return exitCode
}

// exitError pairs an error with the exit code §6.5 assigns it.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func codeFor(err error) int {
	if ee, ok := err.(*exitError); ok {
		return ee.code
	}
	return 3
}

func inspect(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &exitError{code: 1, err: fmt.Errorf("missing html-file argument")}
	}
	path := args[0]

	nTop := defaultNTopCandidates
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return &exitError{code: 3, err: fmt.Errorf("invalid n-top-candidates %q: %w", args[1], err)}
		}
		nTop = n
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &exitError{code: 2, err: fmt.Errorf("file not found: %s", path)}
		}
		return &exitError{code: 3, err: err}
	}

	decoded := charset.DetectAndDecode(data)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(decoded))
	if err != nil {
		return &exitError{code: 3, err: fmt.Errorf("parse: %w", err)}
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}

	result := scoring.Score(body, nTop)
	candidate, ok := scoring.ResolveAncestor(result, nTop)
	if !ok {
		return &exitError{code: 3, err: fmt.Errorf("no candidate qualified as article content")}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "path:         %s\n", elementPath(candidate.Root))
	fmt.Fprintf(cmd.OutOrStdout(), "score:        %.2f\n", candidate.ContentScore)
	fmt.Fprintf(cmd.OutOrStdout(), "token count:  %d\n", candidate.TokenCount)
	fmt.Fprintf(cmd.OutOrStdout(), "nesting level: %d\n", candidate.NestingLevel())
	return nil
}

// elementPath renders a CSS-like ancestor chain, root first, for the
// elected candidate: tag#id.class > tag#id.class > ...
func elementPath(sel *goquery.Selection) string {
	ancestors := htmlnode.Ancestors(sel)
	// Ancestors is nearest-first; reverse to root-first before appending
	// sel itself, so the displayed chain reads root -> ... -> candidate.
	for i, j := 0, len(ancestors)-1; i < j; i, j = i+1, j-1 {
		ancestors[i], ancestors[j] = ancestors[j], ancestors[i]
	}
	chain := append(ancestors, sel)

	var parts []string
	for _, node := range chain {
		parts = append(parts, describeNode(node))
	}
	return strings.Join(parts, " > ")
}

func describeNode(sel *goquery.Selection) string {
	n := sel.Nodes[0]
	if n.Type != html.ElementNode {
		return n.Data
	}
	desc := n.Data
	if id, ok := htmlnode.AttrFold(sel, "id"); ok && id != "" {
		desc += "#" + id
	}
	if class, ok := htmlnode.AttrFold(sel, "class"); ok && class != "" {
		desc += "." + strings.Join(strings.Fields(class), ".")
	}
	return desc
}
