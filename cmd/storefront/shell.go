// cmd/storefront/shell.go
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javajoker/artwork-storefront/internal/storefront"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive storefront session",
	Long: `Loads the gallery and the menu, then reads commands from stdin.

Cards are numbered from 1 as shown in the gallery, product rows from 0.
Type "help" for the command list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		session := newSession(storefront.NewTextRenderer(lang), &terminalDisplay{out: out})
		return runShell(cmd.Context(), session, cmd.InOrStdin(), out)
	},
}

const shellHelp = `gallery                reload and show the gallery
add <card> <row>       quick-add a product row to the cart
view <card> <row>      open the detail panel on a product row
open <card>            open the detail panel on the card's last choice
select <option>        choose an option in the detail panel
detail-add             add the selected option to the cart
close                  close the detail panel
cart | hide            show or hide the cart
remove <line>          remove a cart line
checkout               preview the order and empty the cart
menu                   reload and show the menu
menu-add <item>        add a menu item to the cart
quit`

// terminalDisplay prints every region as it is re-rendered.
type terminalDisplay struct {
	out io.Writer
}

func (d *terminalDisplay) Show(region storefront.Region, content string) {
	if content == "" {
		return
	}
	fmt.Fprintln(d.out, content)
}

func runShell(ctx context.Context, session *storefront.Session, in io.Reader, out io.Writer) error {
	// Load failures are already shown inline.
	_ = session.Start(ctx)

	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			if fields[0] == "quit" || fields[0] == "exit" {
				return nil
			}
			if err := runShellCommand(ctx, session, fields, out); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		}
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

func runShellCommand(ctx context.Context, session *storefront.Session, fields []string, out io.Writer) error {
	args, err := intArgs(fields[1:])
	if err != nil {
		return err
	}
	need := func(n int) error {
		if len(args) < n {
			return fmt.Errorf("%s needs %d argument(s)", fields[0], n)
		}
		return nil
	}

	switch fields[0] {
	case "help":
		fmt.Fprintln(out, shellHelp)
		return nil
	case "gallery":
		return session.LoadGallery(ctx)
	case "menu":
		return session.LoadMenu(ctx)
	case "add":
		if err := need(2); err != nil {
			return err
		}
		return session.ClickCard(args[0], storefront.TargetQuickAdd, args[1])
	case "view":
		if err := need(2); err != nil {
			return err
		}
		return session.ClickCard(args[0], storefront.TargetDetailTrigger, args[1])
	case "open":
		if err := need(1); err != nil {
			return err
		}
		return session.ClickCard(args[0], storefront.TargetCard, 0)
	case "select":
		if err := need(1); err != nil {
			return err
		}
		return session.SelectOption(args[0])
	case "detail-add":
		return session.AddSelectedToCart()
	case "close":
		return session.CloseDetail()
	case "cart":
		return session.OpenCart()
	case "hide":
		return session.CloseCart()
	case "remove":
		if err := need(1); err != nil {
			return err
		}
		return session.RemoveFromCart(args[0])
	case "checkout":
		preview, err := session.Checkout()
		if errors.Is(err, storefront.ErrEmptyCart) {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out, preview.String())
		return nil
	case "menu-add":
		if err := need(1); err != nil {
			return err
		}
		return session.ClickMenu(args[0])
	default:
		return fmt.Errorf("unknown command %q, try help", fields[0])
	}
}

func intArgs(raw []string) ([]int, error) {
	args := make([]int, len(raw))
	for i, value := range raw {
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("argument %q is not a number", value)
		}
		args[i] = n
	}
	return args, nil
}
