package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// Root prints the banner, greets an already-restored session if there is
// one, and hands control to the REPL.
func (a *App) Root(ctx context.Context) {
	fmt.Println("investrack CLI (type 'help' for commands)")

	if id, ok := a.session.Current(); ok {
		fmt.Printf("Welcome back, %s!\n", id.Name)
	} else {
		fmt.Println("Log in or register to manage your investments.")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
