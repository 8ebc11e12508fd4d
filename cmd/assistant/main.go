// Package main is the entry point for the equity research assistant CLI.
// It connects to the research backend, probes its capabilities and runs an
// interactive chat session with upload, search and market data commands.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/equityresearch/assistant/internal/config"
	"github.com/equityresearch/assistant/internal/core/cache"
	"github.com/equityresearch/assistant/internal/core/store"
	"github.com/equityresearch/assistant/internal/domain/models"
	memorycache "github.com/equityresearch/assistant/internal/infrastructure/cache/memory"
	rediscache "github.com/equityresearch/assistant/internal/infrastructure/cache/redis"
	"github.com/equityresearch/assistant/internal/infrastructure/store/mongodb"
	"github.com/equityresearch/assistant/internal/pkg/logging"
	"github.com/equityresearch/assistant/internal/services/chat"
	"github.com/equityresearch/assistant/internal/services/market"
	"github.com/equityresearch/assistant/internal/services/research"
	"github.com/equityresearch/assistant/internal/services/upload"
	"github.com/equityresearch/assistant/internal/transport"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := logging.Setup(cfg.Log)
	ctx := context.Background()

	// Initialize transport and research client
	transportClient, err := transport.NewClient(&transport.Config{
		BaseURL:            cfg.Backend.BaseURL,
		InteractiveTimeout: cfg.Backend.InteractiveTimeout,
		HeavyTimeout:       cfg.Backend.HeavyTimeout,
		Logger:             logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transport client")
	}

	researchClient, err := research.NewClient(&research.Config{
		Transport: transportClient,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize research client")
	}

	// Probe the backend once at startup; feature availability is gated on
	// the advertised capabilities for the rest of the session.
	status, err := researchClient.Health(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("research backend is unreachable")
	}
	logger.Info().
		Str("api_status", string(status.APIStatus)).
		Bool("agentic", status.Has(models.CapabilityAgenticReasoning)).
		Msg("connected to research backend")

	// Initialize quote cache using factory pattern
	cacheClient, err := createCacheClient(cfg.Cache)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize cache client")
	}
	defer cacheClient.Close()

	// Initialize transcript store using factory pattern. Archival is
	// optional; an empty store type disables it.
	storeClient, err := createStoreClient(ctx, cfg.Store)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transcript store")
	}
	var transcripts store.Transcripts
	if storeClient != nil {
		defer storeClient.Close(ctx)
		transcripts = storeClient
	}

	// Initialize controllers
	chatController, err := chat.NewController(&chat.Config{
		Client: researchClient,
		Status: *status,
		Store:  transcripts,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize chat controller")
	}

	uploadController, err := upload.NewController(&upload.Config{
		Client: researchClient,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize upload controller")
	}

	marketService, err := market.NewService(&market.Config{
		Client: researchClient,
		Cache:  cacheClient,
		TTL:    cfg.Cache.TTL,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize market service")
	}

	repl := &repl{
		chat:    chatController,
		uploads: uploadController,
		market:  marketService,
		client:  researchClient,
		logger:  logger,
		out:     os.Stdout,
	}
	repl.run(ctx, os.Stdin)
}

// createCacheClient creates a cache client based on the configuration.
func createCacheClient(cfg config.CacheConfig) (cache.Cache, error) {
	switch cache.Type(cfg.Type) {
	case cache.TypeRedis:
		return rediscache.NewCache(rediscache.Config{
			Host:       cfg.Host,
			Port:       cfg.Port,
			Password:   cfg.Password,
			DB:         cfg.DB,
			DefaultTTL: cfg.TTL,
		})
	case cache.TypeMemory:
		return memorycache.NewCache(memorycache.Config{DefaultTTL: cfg.TTL}), nil
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Type)
	}
}

// createStoreClient creates a transcript store client based on the
// configuration. Returns nil when no store is configured.
func createStoreClient(ctx context.Context, cfg config.StoreConfig) (store.Client, error) {
	switch store.Type(cfg.Type) {
	case store.TypeMongoDB:
		client, err := mongodb.NewClient(ctx, &mongodb.ClientConfig{
			URI:          cfg.URI,
			DatabaseName: cfg.Database,
		})
		if err != nil {
			return nil, err
		}
		if err := client.EnsureIndexes(ctx); err != nil {
			log.Printf("warning: failed to ensure indexes: %v", err)
		}
		return client, nil
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported store type: %s", cfg.Type)
	}
}

// repl runs the interactive command loop. Lines starting with "/" are
// commands; everything else is sent to the chat controller as a message.
type repl struct {
	chat    *chat.Controller
	uploads *upload.Controller
	market  *market.Service
	client  *research.Client
	logger  zerolog.Logger
	out     *os.File
}

func (r *repl) run(ctx context.Context, in *os.File) {
	r.printHistory()
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64<<10), 64<<10)

	for {
		fmt.Fprintf(r.out, "[%s] > ", r.chat.Mode())
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/") {
			if quit := r.command(ctx, line); quit {
				return
			}
			continue
		}

		reply, err := r.chat.Send(ctx, line)
		if err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
			continue
		}
		r.printMessage(reply)
	}
}

// command dispatches a slash command. Returns true when the session should
// end.
func (r *repl) command(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "/quit", "/exit":
		return true
	case "/help":
		r.printHelp()
	case "/mode":
		r.cmdMode(args)
	case "/reset":
		r.chat.Reset(ctx)
		r.printHistory()
	case "/history":
		r.printHistory()
	case "/upload":
		r.cmdUpload(ctx, args)
	case "/search":
		r.cmdSearch(ctx, args)
	case "/stats":
		r.cmdStats(ctx)
	case "/clear":
		r.cmdClear(ctx)
	case "/market":
		r.cmdMarket(ctx)
	case "/quote":
		r.cmdQuote(ctx, args)
	default:
		fmt.Fprintf(r.out, "unknown command %s, try /help\n", cmd)
	}
	return false
}

func (r *repl) cmdMode(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "current mode: %s (standard, search, agentic)\n", r.chat.Mode())
		return
	}
	mode := models.ChatMode(strings.ToLower(args[0]))
	if err := r.chat.SetMode(mode); err != nil {
		fmt.Fprintf(r.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "mode set to %s\n", mode)
}

func (r *repl) cmdUpload(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(r.out, "usage: /upload <path>")
		return
	}
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(r.out, "error: %v\n", err)
		return
	}
	defer f.Close()

	result, err := r.uploads.Upload(ctx, filepath.Base(path), f)
	if err != nil {
		fmt.Fprintf(r.out, "upload failed: %v\n", err)
		return
	}
	r.printUploadResult(result)
}

func (r *repl) cmdSearch(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(r.out, "usage: /search <query>")
		return
	}
	results, err := r.client.SearchDocuments(ctx, strings.Join(args, " "), 10)
	if err != nil {
		fmt.Fprintf(r.out, "search failed: %v\n", err)
		return
	}
	if len(results) == 0 {
		fmt.Fprintln(r.out, "no results")
		return
	}
	for i, res := range results {
		fmt.Fprintf(r.out, "%d. [%.2f] %s: %s\n", i+1, res.Relevance, res.Source(), truncate(res.Content, 120))
	}
}

func (r *repl) cmdStats(ctx context.Context) {
	stats, err := r.client.Stats(ctx)
	if err != nil {
		fmt.Fprintf(r.out, "stats failed: %v\n", err)
		return
	}
	if !stats.Available() {
		fmt.Fprintf(r.out, "index unavailable: %s\n", stats.Err)
		return
	}
	fmt.Fprintf(r.out, "documents: %d, chunks: %d\n", stats.DocumentCount, stats.ChunkCount)
}

func (r *repl) cmdClear(ctx context.Context) {
	ok, err := r.client.ClearIndex(ctx)
	if err != nil {
		fmt.Fprintf(r.out, "clear failed: %v\n", err)
		return
	}
	if ok {
		fmt.Fprintln(r.out, "document index cleared")
	} else {
		fmt.Fprintln(r.out, "document index was not cleared")
	}
}

func (r *repl) cmdMarket(ctx context.Context) {
	overview, err := r.market.Overview(ctx)
	if err != nil {
		fmt.Fprintf(r.out, "market overview failed: %v\n", err)
		return
	}
	for symbol, quote := range overview.Data {
		fmt.Fprintf(r.out, "%-6s %10.2f  %+7.2f (%+.2f%%)  %s\n",
			symbol, quote.Price, quote.Change, quote.ChangePercent, quote.CompanyName)
	}
}

func (r *repl) cmdQuote(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(r.out, "usage: /quote <symbol>")
		return
	}
	detail, err := r.market.Quote(ctx, args[0])
	if err != nil {
		fmt.Fprintf(r.out, "quote failed: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "%s  last %.2f  change %+.2f  (%d sessions)\n",
		detail.Symbol, detail.LatestPrice, detail.PriceChange, len(detail.History))
}

func (r *repl) printHistory() {
	for _, msg := range r.chat.History() {
		r.printMessage(&msg)
	}
}

func (r *repl) printMessage(msg *models.Message) {
	fmt.Fprintf(r.out, "%s: %s\n", msg.Role, msg.Content)
	if msg.Metadata == nil {
		return
	}
	if msg.Metadata.Confidence != nil {
		fmt.Fprintf(r.out, "  confidence: %.2f\n", *msg.Metadata.Confidence)
	}
	for i, step := range msg.Metadata.Plan {
		fmt.Fprintf(r.out, "  plan %d: %s\n", i+1, step)
	}
	if len(msg.Metadata.Sources) > 0 {
		fmt.Fprintf(r.out, "  sources: %s\n", strings.Join(msg.Metadata.Sources, ", "))
	}
}

func (r *repl) printUploadResult(result *models.UploadResult) {
	if !result.Success {
		fmt.Fprintf(r.out, "upload rejected: %s\n", result.Error)
		return
	}
	fmt.Fprintln(r.out, result.Message)
	if result.Preview != nil {
		switch result.Preview.Kind {
		case models.PreviewTabular:
			t := result.Preview.Tabular
			fmt.Fprintf(r.out, "  %d rows x %d columns: %s\n",
				t.RowCount, t.ColumnCount, strings.Join(t.Columns, ", "))
		case models.PreviewDocument:
			d := result.Preview.Document
			fmt.Fprintf(r.out, "  %d chars, %d words\n  %s\n",
				d.CharCount, d.WordCount, truncate(d.Excerpt, 200))
		}
	}
	if len(result.Charts) > 0 {
		fmt.Fprintf(r.out, "  %s generated\n", plural(len(result.Charts), "chart"))
	}
}

func (r *repl) printHelp() {
	fmt.Fprintln(r.out, `commands:
  /mode [standard|search|agentic]   show or switch chat mode
  /upload <path>                    upload a csv, excel or pdf file
  /search <query>                   search the document index
  /stats                            document index statistics
  /clear                            clear the document index
  /market                           market overview
  /quote <symbol>                   quote detail for one symbol
  /history                          reprint the session history
  /reset                            start a fresh session
  /quit                             exit`)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
