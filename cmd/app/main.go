package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/globelex/internal"
	"github.com/starford/globelex/internal/apperr"
	"github.com/starford/globelex/internal/lexicon"
	"github.com/starford/globelex/internal/mcpserver"
	"github.com/starford/globelex/internal/models"
	"github.com/starford/globelex/internal/render"
	pkgconfig "github.com/starford/globelex/pkg/config"
)

var version = "dev"

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if _, err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

// openLexicon loads the dataset for the one-shot commands. Logs go to stderr
// so stdout stays free for the MCP protocol and lookup output.
func openLexicon(ctx context.Context, cmd *cli.Command) (*lexicon.Service, *internal.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger := internal.NewLogger(os.Stderr, cfg.App.LogLevel)
	slog.SetDefault(logger)
	svc, _, err := internal.NewLexicon(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}

func serveMCP(ctx context.Context, cmd *cli.Command) error {
	svc, cfg, err := openLexicon(ctx, cmd)
	if err != nil {
		return err
	}
	defaults, err := cfg.Lookup.State()
	if err != nil {
		return err
	}
	return mcpserver.New(svc, defaults, version).ServeStdio()
}

func runLookup(ctx context.Context, cmd *cli.Command) error {
	svc, cfg, err := openLexicon(ctx, cmd)
	if err != nil {
		return err
	}
	st, err := cfg.Lookup.State()
	if err != nil {
		return err
	}
	if id := cmd.String("source"); id != "" {
		src, err := models.ParseSource(id)
		if err != nil {
			return err
		}
		st = st.SelectSource(src)
	}
	if id := cmd.String("compare"); id != "" {
		cmp, err := models.ParseSource(id)
		if err != nil {
			return err
		}
		if st, err = st.SelectCompare(cmp); err != nil {
			return err
		}
	}
	st = st.SetSearch(cmd.Args().First())

	hits, total, err := svc.Search(ctx, st.Active, st.Search, 0)
	if errors.Is(err, apperr.ErrNoData) {
		return fmt.Errorf("dataset %s could not be loaded", cfg.Dataset.Path)
	}
	if err != nil {
		return err
	}

	out := os.Stdout
	if total == 0 {
		fmt.Fprintf(out, "no %s term matches %q\n", st.Active.Label(), st.Search)
		return nil
	}
	for _, h := range hits {
		fmt.Fprintf(out, "%4d  %s\n", h.ID, h.Term)
	}
	if total > len(hits) {
		fmt.Fprintf(out, "      … %d more\n", total-len(hits))
	}

	if !cmd.Bool("show") {
		return nil
	}
	st = st.Select(hits[0].ID)
	view, err := svc.Term(ctx, st.Selected, st)
	if err != nil {
		return err
	}
	return printView(out, view)
}

func printView(w io.Writer, view *lexicon.TermView) error {
	for _, side := range []lexicon.SideView{view.Active, view.Compare} {
		fmt.Fprintf(w, "\n== %s ==\n", side.Label)
		if side.Term == "" {
			fmt.Fprintln(w, "(no entry)")
			continue
		}
		fmt.Fprintln(w, side.Term)
		if side.Citation != "" {
			fmt.Fprintln(w, side.Citation)
		}
		if err := render.Text(w, side.Definition); err != nil {
			return err
		}
	}
	if len(view.Equivalents) > 0 {
		fmt.Fprintln(w, "\nTermes équivalents:")
		for _, eq := range view.Equivalents {
			fmt.Fprintf(w, "  %s: %s\n", eq.Label, eq.Term)
		}
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:    "globelex",
		Usage:   "Multilingual GloBE glossary: term lookup, citation and definition formatting",
		Version: version,
		Action:  serve,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API",
				Action: serve,
			},
			{
				Name:   "mcp",
				Usage:  "Serve glossary tools over MCP on stdio",
				Action: serveMCP,
			},
			{
				Name:      "lookup",
				Usage:     "Search terms and print a comparison",
				ArgsUsage: "[query]",
				Action:    runLookup,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Usage: "Source to search (e.g. modeleFR, cgi)"},
					&cli.StringFlag{Name: "compare", Usage: "Source to compare with"},
					&cli.BoolFlag{Name: "show", Usage: "Print the first match side by side"},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
