// Command url2md extracts a single article and prints it to stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/blogkit/url2md"
	"github.com/blogkit/url2md/extract"
	"github.com/blogkit/url2md/goquery"
	"github.com/blogkit/url2md/htmltomarkdown"
	url2mdhttp "github.com/blogkit/url2md/http"
	"github.com/blogkit/url2md/markdown"
	"github.com/blogkit/url2md/readability"
	"github.com/blogkit/url2md/wayback"
)

// CLI defines the one-shot extractor's flags and arguments.
type CLI struct {
	URL string `arg:"" help:"Page URL to extract."`

	Markdown       bool          `short:"m" help:"Print only the Markdown content instead of JSON."`
	Output         string        `short:"o" placeholder:"FILE" help:"Write the result to FILE instead of stdout."`
	DirectTimeout  time.Duration `default:"10s" help:"Timeout for direct page fetches."`
	ArchiveTimeout time.Duration `default:"15s" help:"Timeout for archive fetches."`
	Converter      string        `default:"pipeline" enum:"pipeline,commonmark" help:"Markdown converter to use."`
	NoReadability  bool          `help:"Disable the readability fallback extractor."`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cli := &CLI{}
	kong.Parse(cli,
		kong.Name("url2md"),
		kong.Description("Extract an article from a URL as Markdown"),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	direct := url2mdhttp.NewFetcher(url2mdhttp.WithTimeout(cli.DirectTimeout))
	archive := wayback.NewFetcher(wayback.WithTimeout(cli.ArchiveTimeout))
	fetcher := url2mdhttp.NewFallbackFetcher(direct, archive)
	defer fetcher.Close()

	var converter url2md.Converter
	switch cli.Converter {
	case "commonmark":
		converter = htmltomarkdown.NewConverter()
	default:
		converter = markdown.NewConverter()
	}

	var opts []extract.ServiceOption
	if !cli.NoReadability {
		opts = append(opts, extract.WithFallbackExtractor(readability.NewExtractor()))
	}

	svc := extract.NewService(
		fetcher,
		extract.NewExtractor(goquery.NewParser()),
		converter,
		opts...,
	)

	article, err := svc.ExtractURL(ctx, cli.URL)
	if err != nil {
		return fmt.Errorf("%s", url2md.ErrorMessage(err))
	}

	out := os.Stdout
	if cli.Output != "" {
		f, err := os.Create(cli.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if cli.Markdown {
		_, err = fmt.Fprintln(out, article.Content)
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(article)
}
