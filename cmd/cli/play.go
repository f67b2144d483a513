package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matthewfinger/solitaire-lightweight/display"
	"github.com/matthewfinger/solitaire-lightweight/engine"
	"github.com/matthewfinger/solitaire-lightweight/protocol"
	"github.com/matthewfinger/solitaire-lightweight/store"
	"github.com/spf13/cobra"
)

var ErrQuit = errors.New("quit")

const helpText = `commands:
  tap <pile> [index]   click a card of a pile (deck, waste, t1-t7, f1-f4)
  click <x> <y>        click a point on the table
  move <x> <y>         move the pointer
  draw                 turn over cards from the deck
  new                  deal a new game
  show                 print the table
  help                 print this help
  quit                 leave
`

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	Long: `Play deals a game and reads commands from stdin.
Cards are picked up by clicking them and put down by clicking the card
they should go onto. Tap a card with "tap t3" or "tap waste"; a number
after the pile picks a card further down a tableau column.

Examples:
  solitaire play
  solitaire play --seed 42
  solitaire play --drag`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		seed := cfg.Seed
		if cmd.Flags().Changed("seed") {
			seed, _ = cmd.Flags().GetInt64("seed")
		}
		dragMode := cfg.DragMode
		if cmd.Flags().Changed("drag") {
			dragMode, _ = cmd.Flags().GetBool("drag")
		}

		ge, err := engine.NewGameEngine(engine.GameEngineOpts{
			GameID:   store.NewID(),
			Seed:     seed,
			Layout:   cfg.GameLayout(),
			DragMode: dragMode,
		})
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go ge.Listen(ctx)

		r := display.NewRenderer(os.Stdout, useColor(cfg.Color))
		return play(ctx, os.Stdin, r, ge)
	},
}

func init() {
	playCmd.Flags().Int64("seed", 0, "seed for shuffling (0 uses the clock)")
	playCmd.Flags().Bool("drag", false, "pick up on press and drop on release")
}

// play reads commands from in until it runs out or the player quits
func play(ctx context.Context, in io.Reader, r *display.Renderer, ge engine.GameEngine) error {
	out, err := ge.Receive(ctx, protocol.InboundMessage{Command: protocol.State})
	if err != nil {
		return err
	}
	r.Message(out)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		msg, err := parseCommand(line)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			r.Message(protocol.OutboundMessage{Command: protocol.Error, Error: err.Error()})
			continue
		}
		if msg.Command == protocol.Null {
			display.SendText(r.Writer(), helpText)
			continue
		}

		out, err := ge.Receive(ctx, msg)
		if err != nil {
			return err
		}
		r.Message(out)
	}

	return scanner.Err()
}

// parseCommand turns one line of input into a message for the engine.
// help parses to a Null command.
func parseCommand(line string) (protocol.InboundMessage, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return protocol.InboundMessage{}, fmt.Errorf("empty command")
	}

	switch fields[0] {
	case "quit", "q", "exit":
		return protocol.InboundMessage{}, ErrQuit
	case "help", "h", "?":
		return protocol.InboundMessage{Command: protocol.Null}, nil
	case "draw", "d":
		return protocol.InboundMessage{Command: protocol.Draw}, nil
	case "new", "n":
		return protocol.InboundMessage{Command: protocol.NewGame}, nil
	case "show", "s":
		return protocol.InboundMessage{Command: protocol.State}, nil
	case "click", "move":
		if len(fields) != 3 {
			return protocol.InboundMessage{}, fmt.Errorf("usage: %s <x> <y>", fields[0])
		}
		x, errX := strconv.Atoi(fields[1])
		y, errY := strconv.Atoi(fields[2])
		if errX != nil || errY != nil {
			return protocol.InboundMessage{}, fmt.Errorf("usage: %s <x> <y>", fields[0])
		}
		cmd := protocol.PointerDown
		if fields[0] == "move" {
			cmd = protocol.PointerMove
		}
		return protocol.InboundMessage{Command: cmd, X: x, Y: y}, nil
	case "tap", "t":
		if len(fields) < 2 || len(fields) > 3 {
			return protocol.InboundMessage{}, fmt.Errorf("usage: tap <pile> [index]")
		}
		msg := protocol.InboundMessage{Command: protocol.Tap, Pile: fields[1]}
		if len(fields) == 3 {
			index, err := strconv.Atoi(fields[2])
			if err != nil || index < 0 {
				return protocol.InboundMessage{}, fmt.Errorf("bad index %q", fields[2])
			}
			msg.Index = &index
		}
		return msg, nil
	}

	return protocol.InboundMessage{}, fmt.Errorf("unknown command %q, try help", fields[0])
}
