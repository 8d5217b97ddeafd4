package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/chromatag/chroma-tools-mcp/internal/bayer"
	"github.com/chromatag/chroma-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("chroma-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("chroma-tools-mcp - MCP server for color segmentation")
			fmt.Println()
			fmt.Println("Usage: chroma-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  CHROMA_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println("  CHROMA_MCP_MAX_WIDTH=640      Downscale loaded frames to this width")
			fmt.Println("  CHROMA_MCP_BLUR_SIGMA=1.0     Gaussian pre-blur applied before mosaicing")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Log to stderr (stdout is for MCP protocol)
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)
	if level, err := zerolog.ParseLevel(os.Getenv("CHROMA_MCP_LOG_LEVEL")); err == nil && level != zerolog.NoLevel {
		log = log.Level(level)
	}

	opt := convertOptionsFromEnv(log)

	log.Debug().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("commit", GitCommit).
		Msg("starting chroma MCP server")

	srv := server.New(opt, log)
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// convertOptionsFromEnv reads the optional frame conversion tunables.
// Malformed values are logged and ignored.
func convertOptionsFromEnv(log zerolog.Logger) bayer.ConvertOptions {
	var opt bayer.ConvertOptions

	if raw := os.Getenv("CHROMA_MCP_MAX_WIDTH"); raw != "" {
		width, err := strconv.Atoi(raw)
		if err != nil || width <= 0 {
			log.Warn().Str("value", raw).Msg("ignoring invalid CHROMA_MCP_MAX_WIDTH")
		} else {
			opt.MaxWidth = width
		}
	}

	if raw := os.Getenv("CHROMA_MCP_BLUR_SIGMA"); raw != "" {
		sigma, err := strconv.ParseFloat(raw, 64)
		if err != nil || sigma < 0 {
			log.Warn().Str("value", raw).Msg("ignoring invalid CHROMA_MCP_BLUR_SIGMA")
		} else {
			opt.BlurSigma = sigma
		}
	}

	return opt
}
