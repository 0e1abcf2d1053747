package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignIn(ctx context.Context) error
	Unlock(ctx context.Context) error
	SignUp(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Receive(ctx context.Context) error
	History(ctx context.Context) error
	Cards(ctx context.Context) error
	Bills(ctx context.Context) error
	Profile(ctx context.Context) error
	Settings(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads a line from the provided scanner, parses the first token as
// the command and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the user
// types "exit" or "quit".
//
// Handler errors are ignored here; handlers report their own errors. This
// keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("aw %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (d)ashboard, receive, (h)istory, cards, bills, profile, settings, logout, exit")
			} else {
				printlnFn("Available commands: signin, unlock, signup, exit")
			}

		case "signin":
			_ = a.SignIn(ctx)

		case "unlock":
			_ = a.Unlock(ctx)

		case "signup", "register":
			_ = a.SignUp(ctx)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "receive":
			_ = a.Receive(ctx)

		case "h", "history":
			_ = a.History(ctx)

		case "cards":
			_ = a.Cards(ctx)

		case "bills":
			_ = a.Bills(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
