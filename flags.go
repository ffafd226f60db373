package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

type stringSlice []string

func (s *stringSlice) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *stringSlice) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// Options is the resolved startup configuration: env defaults overridden by
// command-line flags.
type Options struct {
	Seed     *int64
	Roster   string
	SavePath string
	Journal  string
	Headless bool
	Verbose  bool
	History  int

	MCPHTTP bool
	MCP     MCPOptions
}

func parseFlags(cfg Config, args []string, usageOut io.Writer) (Options, error) {
	fs := flag.NewFlagSet("gloomhold", flag.ContinueOnError)
	fs.SetOutput(usageOut)

	seedFlag := fs.Int64("seed", cfg.Seed, "Deterministic game seed (optional)")
	roster := fs.String("roster", cfg.Roster, "Roster INI file")
	savePath := fs.String("save", cfg.SavePath, "Save file path")
	journal := fs.String("journal", cfg.Journal, "SQLite run journal path (empty disables)")
	headless := fs.Bool("headless", cfg.Headless, "Run in headless mode (no raw terminal input)")
	verbose := fs.Bool("verbose", cfg.Verbose, "Debug logging on stderr")
	history := fs.Int("history", 0, "Print the last N journal runs and exit")
	mcpHTTP := fs.Bool("mcp-http", false, "Run MCP Streamable HTTP server")
	mcpAddr := fs.String("mcp-addr", cfg.MCPAddr, "MCP listen address")
	mcpPath := fs.String("mcp-path", cfg.MCPPath, "MCP endpoint path")
	mcpToken := fs.String("mcp-token", cfg.MCPToken, "Bearer token for MCP requests (optional)")
	mcpJSON := fs.Bool("mcp-json-response", false, "Force JSON responses instead of SSE")
	mcpStateless := fs.Bool("mcp-stateless", false, "Run MCP server in stateless mode (no sessions/SSE)")
	origins := stringSlice(append([]string(nil), cfg.MCPOrigin...))
	fs.Var(&origins, "mcp-origin", "Allowed Origin for MCP requests (repeatable)")

	fs.Usage = func() {
		fmt.Fprintf(usageOut, "Usage: gloomhold [options]\n\n")
		fmt.Fprintf(usageOut, "Options:\n")
		fmt.Fprintf(usageOut, "  -h, --help           Show this help message\n")
		fmt.Fprintf(usageOut, "  --headless           Read plain lines from stdin\n")
		fmt.Fprintf(usageOut, "  --seed <n>           Set the random seed\n")
		fmt.Fprintf(usageOut, "  --roster <path>      Roster file (default: data/roster.ini)\n")
		fmt.Fprintf(usageOut, "  --save <path>        Save file (default: data/save.ini)\n")
		fmt.Fprintf(usageOut, "  --journal <path>     Record runs in a SQLite journal\n")
		fmt.Fprintf(usageOut, "  --history <n>        Show the last n journal runs\n")
		fmt.Fprintf(usageOut, "  --mcp-http           Serve the game as an MCP tool\n")
	}

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	opts := Options{
		Roster:   *roster,
		SavePath: *savePath,
		Journal:  *journal,
		Headless: *headless,
		Verbose:  *verbose,
		History:  *history,
		MCPHTTP:  *mcpHTTP,
		MCP: MCPOptions{
			Addr:         *mcpAddr,
			Path:         *mcpPath,
			Origins:      origins,
			Token:        *mcpToken,
			JSONResponse: *mcpJSON,
			Stateless:    *mcpStateless,
		},
	}
	if *seedFlag >= 0 {
		seed := *seedFlag
		opts.Seed = &seed
	}
	if opts.MCPHTTP && len(opts.MCP.Origins) == 0 {
		opts.MCP.Origins = []string{"http://localhost", "http://127.0.0.1"}
	}
	return opts, nil
}
