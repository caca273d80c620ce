// Package main implements htmlwalk, a small demo CLI over the htmltag
// tokenizer: it lists matched tags (optionally filtered by name, class, or
// a --where expression) and reports a document's DOCTYPE compatibility
// mode. It is not a conformant HTML parser front end — see tree.go.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dpotapov/go-htmltag/htmltag"
)

var logLevel string

var cmdRoot = &cobra.Command{
	Use:   "htmlwalk",
	Short: "walk the tags, text, and doctype of an HTML document",
}

func main() {
	cmdRoot.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	cmdRoot.AddCommand(cmdTags, cmdDoctype)

	if err := cmdRoot.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return os.ReadFile("/dev/stdin")
	}
	return os.ReadFile(args[0])
}

var (
	tagsFilterName  string
	tagsFilterClass string
	tagsWhere       string
	tagsShowTree    bool
)

var cmdTags = &cobra.Command{
	Use:   "tags [file]",
	Short: "list matched tags, or render a naive nesting tree with --tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		html, err := readInput(args)
		if err != nil {
			return err
		}

		p := htmltag.NewProcessor(html)
		p.Logger = newLogger()

		if tagsShowTree {
			return renderTree(p, cmd.OutOrStdout())
		}

		query, err := compileTagQuery(tagsWhere)
		if err != nil {
			return err
		}

		for p.NextTag(htmltag.TagQuery{TagName: tagsFilterName, ClassName: tagsFilterClass}) {
			matched, err := query.matches(p)
			if err != nil {
				return err
			}
			if !matched {
				continue
			}

			qname, _ := p.GetQualifiedTagName()
			closing := ""
			if p.IsTagClosing() {
				closing = "/"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "<%s%s>\n", closing, qname)
		}

		return nil
	},
}

var cmdDoctype = &cobra.Command{
	Use:   "doctype [file]",
	Short: "report the document's DOCTYPE and derived compatibility mode",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		html, err := readInput(args)
		if err != nil {
			return err
		}

		p := htmltag.NewProcessor(html)
		p.Logger = newLogger()

		for p.NextToken() {
			tt, ok := p.TokenType()
			if !ok || tt != htmltag.TokenDoctype {
				continue
			}

			info, ok := p.GetDoctypeInfo()
			if !ok {
				return fmt.Errorf("malformed DOCTYPE token")
			}

			name := "(none)"
			if info.Name != nil {
				name = *info.Name
			}
			fmt.Fprintf(cmd.OutOrStdout(), "name: %s\n", name)
			fmt.Fprintf(cmd.OutOrStdout(), "public-id: %s\n", strOrNone(info.PublicIdentifier))
			fmt.Fprintf(cmd.OutOrStdout(), "system-id: %s\n", strOrNone(info.SystemIdentifier))
			fmt.Fprintf(cmd.OutOrStdout(), "compat-mode: %s\n", info.IndicatedCompatMode)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), "no DOCTYPE found")
		return nil
	},
}

func strOrNone(s *string) string {
	if s == nil {
		return "(none)"
	}
	return *s
}

func init() {
	cmdTags.Flags().StringVar(&tagsFilterName, "tag", "", "only match this tag name")
	cmdTags.Flags().StringVar(&tagsFilterClass, "class", "", "only match tags carrying this class")
	cmdTags.Flags().StringVar(&tagsWhere, "where", "", "boolean expr over Tag, Classes, Attrs")
	cmdTags.Flags().BoolVar(&tagsShowTree, "tree", false, "render a naive nesting tree instead of a flat list")
}
