// Command url2mdd runs the article extraction JSON API server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/blogkit/url2md"
	"github.com/blogkit/url2md/cache"
	"github.com/blogkit/url2md/extract"
	"github.com/blogkit/url2md/goquery"
	"github.com/blogkit/url2md/htmltomarkdown"
	url2mdhttp "github.com/blogkit/url2md/http"
	"github.com/blogkit/url2md/markdown"
	"github.com/blogkit/url2md/readability"
	"github.com/blogkit/url2md/wayback"
	url2mdzerolog "github.com/blogkit/url2md/zerolog"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// CLI defines the server's command-line flags.
type CLI struct {
	Addr           string        `default:":8080" help:"Address to listen on."`
	DirectTimeout  time.Duration `default:"10s" help:"Timeout for direct page fetches."`
	ArchiveTimeout time.Duration `default:"15s" help:"Timeout for archive fetches."`
	Converter      string        `default:"pipeline" enum:"pipeline,commonmark" help:"Markdown converter to use."`
	NoReadability  bool          `help:"Disable the readability fallback extractor."`
	CacheTTL       time.Duration `default:"0" help:"Cache extracted articles for this long; 0 disables caching."`
	RateLimit      float64       `default:"0" help:"Maximum requests per second; 0 disables throttling."`
	Debug          bool          `help:"Enable debug logging."`
	Pretty         bool          `help:"Human-readable log output."`
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
		kong.Name("url2mdd"),
		kong.Description("Serve the URL-to-Markdown article extraction API"),
	)

	logger := newLogger(cli)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fetcher := newFetcher(cli, logger)
	defer fetcher.Close()

	svc := newService(cli, fetcher, logger)

	server := url2mdhttp.NewServer(logger)
	server.Addr = cli.Addr
	server.ArticleService = svc
	if cli.RateLimit > 0 {
		server.Limiter = rate.NewLimiter(rate.Limit(cli.RateLimit), int(cli.RateLimit)+1)
	}

	if err := server.Open(); err != nil {
		return err
	}
	logger.Info().Str("addr", cli.Addr).Msg("listening")

	<-ctx.Done()
	logger.Info().Msg("shutting down")
	return server.Close()
}

func newLogger(cli *CLI) zerolog.Logger {
	level := zerolog.InfoLevel
	if cli.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	if cli.Pretty {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger
}

func newFetcher(cli *CLI, logger zerolog.Logger) url2md.Fetcher {
	direct := url2mdhttp.NewFetcher(url2mdhttp.WithTimeout(cli.DirectTimeout))
	archive := wayback.NewFetcher(wayback.WithTimeout(cli.ArchiveTimeout))
	return url2mdhttp.NewFallbackFetcher(
		url2mdzerolog.NewFetcher(direct, logger, "direct"),
		url2mdzerolog.NewFetcher(archive, logger, "archive"),
	)
}

func newService(cli *CLI, fetcher url2md.Fetcher, logger zerolog.Logger) url2md.ArticleService {
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

	var svc url2md.ArticleService = extract.NewService(
		fetcher,
		extract.NewExtractor(goquery.NewParser()),
		converter,
		opts...,
	)
	if cli.CacheTTL > 0 {
		svc = cache.NewService(svc, cli.CacheTTL)
	}
	return url2mdzerolog.NewArticleService(svc, logger)
}
