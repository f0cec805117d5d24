// Package cli implements the command-line interface of the TeaKeeper
// client: argument parsing, password prompting, and command dispatch.
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"syscall"

	"golang.org/x/term"

	"github.com/dmitrijs2005/teakeeper/internal/client"
)

const usage = `usage: teakeeper [-addr URL] [-token TOKEN] <command> [args]

commands:
  signup <phone>               register a new account (prompts for password)
  login <phone>                log in and print an access token
  whoami                       print the caller's display id
  list                         list the caller's teas
  add <name> <price>           add a tea
  get <id>                     show a tea
  update <id> <name> <price>   replace a tea's name and price
  delete <id>                  delete a tea

The token for authenticated commands is taken from -token or the
TEAKEEPER_TOKEN environment variable.`

// readPassword is a seam for tests; the default prompts on the terminal
// without echoing.
var readPassword = func(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)
	b, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Run executes one CLI invocation. args is os.Args[1:].
func Run(ctx context.Context, args []string) error {

	fs := flag.NewFlagSet("teakeeper", flag.ContinueOnError)
	addr := fs.String("addr", "http://localhost:3000", "server base URL")
	token := fs.String("token", os.Getenv("TEAKEEPER_TOKEN"), "access token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("%s", usage)
	}

	c := client.New(*addr)
	c.SetToken(*token)

	switch cmd := rest[0]; cmd {

	case "signup":
		if len(rest) != 2 {
			return fmt.Errorf("usage: signup <phone>")
		}
		password, err := readPassword("password: ")
		if err != nil {
			return err
		}
		displayID, err := c.SignUp(ctx, rest[1], password)
		if err != nil {
			return err
		}
		fmt.Printf("registered, user id %d\n", displayID)
		return nil

	case "login":
		if len(rest) != 2 {
			return fmt.Errorf("usage: login <phone>")
		}
		password, err := readPassword("password: ")
		if err != nil {
			return err
		}
		tok, err := c.Login(ctx, rest[1], password)
		if err != nil {
			return err
		}
		fmt.Println(tok)
		return nil

	case "whoami":
		displayID, err := c.UserInfo(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("user id %d\n", displayID)
		return nil

	case "list":
		teas, err := c.ListTeas(ctx)
		if err != nil {
			return err
		}
		for _, tea := range teas {
			fmt.Printf("%s\t%s\t%.2f\n", tea.ID, tea.Name, tea.Price)
		}
		return nil

	case "add":
		if len(rest) != 3 {
			return fmt.Errorf("usage: add <name> <price>")
		}
		price, err := strconv.ParseFloat(rest[2], 64)
		if err != nil {
			return fmt.Errorf("invalid price %q", rest[2])
		}
		tea, err := c.AddTea(ctx, rest[1], price)
		if err != nil {
			return err
		}
		fmt.Printf("added %s\n", tea.ID)
		return nil

	case "get":
		if len(rest) != 2 {
			return fmt.Errorf("usage: get <id>")
		}
		tea, err := c.GetTea(ctx, rest[1])
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\t%.2f\n", tea.ID, tea.Name, tea.Price)
		return nil

	case "update":
		if len(rest) != 4 {
			return fmt.Errorf("usage: update <id> <name> <price>")
		}
		price, err := strconv.ParseFloat(rest[3], 64)
		if err != nil {
			return fmt.Errorf("invalid price %q", rest[3])
		}
		tea, err := c.UpdateTea(ctx, rest[1], rest[2], price)
		if err != nil {
			return err
		}
		fmt.Printf("updated %s\n", tea.ID)
		return nil

	case "delete":
		if len(rest) != 2 {
			return fmt.Errorf("usage: delete <id>")
		}
		tea, err := c.DeleteTea(ctx, rest[1])
		if err != nil {
			return err
		}
		fmt.Printf("deleted %s (%s)\n", tea.ID, tea.Name)
		return nil

	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}
