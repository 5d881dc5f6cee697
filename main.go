package main

import (
	"flag"
	"fmt"
	"log"
)

func main() {
	headless := flag.Bool("headless", false, "Run in headless mode (no raw terminal input)")
	worldPath := flag.String("world", "", "Path to a world INI file (default: built-in world)")
	seedFlag := flag.Int64("seed", -1, "Deterministic game seed (optional)")
	mcpHTTP := flag.Bool("mcp-http", false, "Run MCP Streamable HTTP server")
	mcpAddr := flag.String("mcp-addr", "127.0.0.1:8765", "MCP listen address")
	mcpPath := flag.String("mcp-path", "/mcp", "MCP endpoint path")
	mcpToken := flag.String("mcp-token", "", "Bearer token for MCP requests (optional)")
	mcpJSON := flag.Bool("mcp-json-response", false, "Force JSON responses instead of SSE")
	mcpStateless := flag.Bool("mcp-stateless", false, "Run MCP server in stateless mode (no sessions/SSE)")
	var origins stringSlice
	flag.Var(&origins, "mcp-origin", "Allowed Origin for MCP requests (repeatable)")

	flag.Usage = func() {
		fmt.Printf("Usage: hollowhouse [options]\n\n")
		fmt.Printf("Options:\n")
		fmt.Printf("  -h, --h, --help      Show this help message\n")
		fmt.Printf("  --headless           Run in headless mode\n")
		fmt.Printf("  --world <path>       Load a world INI file instead of the built-in one\n")
		fmt.Printf("  --seed <n>           Set the random seed\n")
		fmt.Printf("  --mcp-http           Serve the game as an MCP tool over HTTP\n")
	}

	flag.Parse()

	var seed *int64
	if *seedFlag >= 0 {
		seed = seedFlag
	}

	if *mcpHTTP {
		if len(origins) == 0 {
			origins = append(origins, "http://localhost", "http://127.0.0.1")
		}
		server, err := NewMCPServer(seed, *worldPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := RunMCPHTTP(server, *mcpAddr, *mcpPath, origins, *mcpToken, *mcpJSON, *mcpStateless); err != nil {
			log.Fatal(err)
		}
		return
	}

	s, err := NewGame(seed, *worldPath, nil)
	if err != nil {
		log.Fatal(err)
	}
	s.IsHeadless = *headless

	for s.IsPlaying {
		cmd := customReadLn(s, "> ")
		processCommand(s, cmd)
	}
	outPrintln(s)
	if s.HasWon {
		outPrintln(s, "🏆 You won!")
	}
	outPrintf(s, "🏆 Final score: %d\n", s.Score)
}
