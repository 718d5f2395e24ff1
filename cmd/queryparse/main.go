// Command queryparse parses a query string and prints the result as YAML or
// JSON.
//
//	queryparse -f merge-values 'a=1&a=1&b'
//	echo 'a=%20x' | queryparse -o json
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/leo-stone-dot/query_parser_go/queryparser"
)

const stdinArg = "-"

type rootCommand struct {
	Flags   []string `help:"Parser flags, e.g. merge-values or WHITE_SPACE_IS_VALID. Repeat or separate with commas." short:"f" env:"QUERYPARSE_FLAGS" placeholder:"FLAG"`
	Output  string   `help:"Output format (${enum})." short:"o" enum:"yaml,json" default:"yaml" env:"QUERYPARSE_OUTPUT"`
	Verbose bool     `help:"Log parse stages to stderr." short:"v"`
	Query   string   `arg:"" optional:"" default:"-" help:"Query string without the leading '?'. Read from stdin when omitted or '-'."`
}

func (c *rootCommand) config(log *slog.Logger) (queryparser.Config, error) {
	flags := make([]queryparser.Flag, 0, len(c.Flags))
	for _, name := range c.Flags {
		f, err := queryparser.ParseFlag(name)
		if err != nil {
			return queryparser.Config{}, err
		}
		flags = append(flags, f)
	}
	cfg, err := queryparser.NewConfig(flags...)
	if err != nil {
		return queryparser.Config{}, err
	}
	return cfg.WithLogger(log), nil
}

func (c *rootCommand) query(stdin io.Reader) (string, error) {
	if c.Query != stdinArg {
		return c.Query, nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading query from stdin: %w", err)
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

func (c *rootCommand) Run(ctx *kong.Context, stdin io.Reader) error {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(ctx.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := c.config(log)
	if err != nil {
		return usageError(err)
	}
	q, err := c.query(stdin)
	if err != nil {
		return &cliError{err: err}
	}
	log.Debug("parsing query", slog.String("query", q), slog.Any("flags", cfg.Flags()))

	r, err := cfg.Parse(q)
	if err != nil {
		return usageError(err)
	}

	var out []byte
	switch c.Output {
	case "json":
		out, err = json.MarshalIndent(r, "", "  ")
		out = append(out, '\n')
	default:
		out, err = yaml.Marshal(r)
	}
	if err != nil {
		return &cliError{err: err}
	}
	_, err = ctx.Stdout.Write(out)
	return err
}

func newParser(cli *rootCommand, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("queryparse"),
		kong.Description("Parse a URI query string into keys and their values."),
		kong.UsageOnError(),
		kong.BindTo(io.Reader(os.Stdin), (*io.Reader)(nil)),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	cli := &rootCommand{}
	parser, err := newParser(cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	ctx.FatalIfErrorf(ctx.Run())
}
