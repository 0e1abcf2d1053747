package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/afriwallet/afriwallet/internal/flagx"
)

var allowedFlags = []string{"-s", "-d", "-t", "-cc", "-l"}

// parseFlags overlays values from the command line. Unknown flags (like the
// -c/-config pair handled by parseJSON) are filtered out so the flag set
// does not choke on them.
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	server := fs.String("s", "", "wallet server base URL")
	dbPath := fs.String("d", "", "path to the local database file")
	timeout := fs.Duration("t", 0, "HTTP request timeout")
	country := fs.String("cc", "", "default country dialing code")
	level := fs.String("l", "", "log level (debug, info, warn, error)")

	args := flagx.FilterArgs(os.Args[1:], allowedFlags)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, "error parsing flags:", err)
		return
	}

	if *server != "" {
		cfg.ServerBaseURL = *server
	}
	if *dbPath != "" {
		cfg.DatabasePath = *dbPath
	}
	if *timeout != 0 {
		cfg.RequestTimeout = *timeout
	}
	if *country != "" {
		cfg.DefaultCountryCode = *country
	}
	if *level != "" {
		cfg.LogLevel = *level
	}
}
