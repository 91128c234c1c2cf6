/*
Package main is the relq CLI: it selects version labels out of a release
list by criteria (latest/eq/gte/lte). Labels come from stdin, one per line,
or straight from the GitHub releases API with --repo.
*/
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/relq/relq"
	"github.com/relq/relq/github"
)

type Options struct {
	OptionsMatch  OptionsMatch  `group:"Matching"`
	OptionsSource OptionsSource `group:"Source"`

	Verbose bool `short:"v" long:"verbose" description:"Log client activity to stderr"`

	Args struct {
		Key string `positional-arg-name:"KEY" description:"Match key v?MAJOR[.MINOR[.POINT]][-DECORATOR] (required for eq/gte/lte)"`
	} `positional-args:"yes"`
}

type OptionsMatch struct {
	Criteria         string `short:"c" long:"criteria"          description:"Match criteria" choice:"latest" choice:"eq" choice:"gte" choice:"lte" default:"latest"`
	IncludeDecorated bool   `short:"d" long:"include-decorated" description:"Keep pre-release (decorated) versions in play"`
	Raw              bool   `short:"r" long:"raw"               description:"Print original labels instead of normalized MAJOR.MINOR.POINT"`
}

type OptionsSource struct {
	Repo    string        `short:"R" long:"repo"    description:"Fetch the release list for github.com OWNER/REPO instead of reading stdin"`
	Token   string        `short:"t" long:"token"   description:"GitHub bearer token" env:"GITHUB_TOKEN"`
	Timeout time.Duration `short:"T" long:"timeout" description:"HTTP timeout for --repo" default:"30s"`
}

func main() {
	var opt Options
	parser := flags.NewParser(&opt, flags.Default|flags.AllowBoolValues)
	parser.LongDescription = `relq — release version query.
Selects version labels out of a release list by a small query language:
latest, eq, gte, lte against a partial MAJOR[.MINOR[.POINT]] key.
Reads labels from stdin (one per line) or fetches them with --repo.`
	if _, err := parser.Parse(); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	log := zerolog.Nop()
	if opt.Verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	in, err := readLabels(opt, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	criteria, err := relq.ParseCriteria(opt.OptionsMatch.Criteria)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	out, err := relq.Match(in, relq.Options{
		Criteria:         criteria,
		Key:              strings.TrimSpace(opt.Args.Key),
		IncludeDecorated: opt.OptionsMatch.IncludeDecorated,
		Raw:              opt.OptionsMatch.Raw,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	for _, l := range out {
		fmt.Println(l)
	}
}

// readLabels fetches the release list with --repo, or reads stdin line by
// line skipping blanks.
func readLabels(opt Options, log zerolog.Logger) ([]string, error) {
	if repo := strings.TrimSpace(opt.OptionsSource.Repo); repo != "" {
		client := github.NewClient(github.Options{
			Token:   opt.OptionsSource.Token,
			Timeout: opt.OptionsSource.Timeout,
			Logger:  &log,
		})

		ctx, cancel := context.WithTimeout(context.Background(), opt.OptionsSource.Timeout)
		defer cancel()

		return client.Releases(ctx, repo)
	}

	in := make([]string, 0, 1024)
	sc := bufio.NewScanner(os.Stdin)
	const maxLine = 10 * 1024 * 1024
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, maxLine)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			in = append(in, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return in, nil
}
