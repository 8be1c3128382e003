package net

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
)

// Client connects to a lab server and provides a terminal REPL.
type Client struct {
	enc *json.Encoder
	dec *json.Decoder
	in  *bufio.Reader
	out io.Writer
}

// NewClient creates a REPL client reading commands from in and rendering to out.
func NewClient(conn io.ReadWriter, in io.Reader, out io.Writer) *Client {
	return &Client{
		enc: json.NewEncoder(conn),
		dec: json.NewDecoder(conn),
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Connect connects to a server and runs the REPL on the terminal.
func Connect(ctx context.Context, addr string) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	fmt.Println("Connected! Setting up the lab...")
	return NewClient(conn, os.Stdin, os.Stdout).RunREPL(ctx)
}

// RunREPL renders server messages and sends the player's commands until the
// player quits or the connection drops.
func (c *Client) RunREPL(ctx context.Context) error {
	reply, err := c.await()
	if err != nil {
		return err
	}

	for {
		if ctx.Err() != nil {
			return nil
		}
		st := reply.State
		if st != nil && st.Greeting != "" {
			c.renderGreeting(st.Greeting)
			if reply, err = c.request(ClientMessage{Type: "ack_greeting"}); err != nil {
				return err
			}
			continue
		}
		c.renderState(st)

		msg, quit := c.readCommand()
		if quit {
			return nil
		}
		if reply, err = c.request(msg); err != nil {
			return err
		}
		c.renderResult(msg.Type, reply)
	}
}

// request sends one command and waits for its reply.
func (c *Client) request(msg ClientMessage) (ServerMessage, error) {
	if err := c.enc.Encode(msg); err != nil {
		return ServerMessage{}, fmt.Errorf("send %s: %w", msg.Type, err)
	}
	return c.await()
}

// await renders notifications until a "state" or "error" reply arrives.
func (c *Client) await() (ServerMessage, error) {
	for {
		var msg ServerMessage
		if err := c.dec.Decode(&msg); err != nil {
			return ServerMessage{}, fmt.Errorf("read message: %w", err)
		}
		switch msg.Type {
		case "notify":
			c.renderEvent(msg.Event)
		case "state", "error":
			return msg, nil
		}
	}
}

func (c *Client) renderEvent(ev *EventView) {
	if ev == nil {
		return
	}
	// Format like the TextLogger
	kind := ev.Type
	for len(kind) < 14 {
		kind += " "
	}
	fmt.Fprintf(c.out, "D%-3d %s| %s\n", ev.Draws, kind, ev.Details)
}

func (c *Client) renderGreeting(greeting string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "🎈🎈🎈 "+greeting)
}

func (c *Client) renderState(sv *StateView) {
	if sv == nil {
		return
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "╔══════════════════════════════════════════════════════╗")
	fmt.Fprintf(c.out, "║  🧪 %s's Bio Lab   Status: %s\n", sv.Player, sv.Status)

	pass := "❌"
	if sv.HasBossReward {
		pass = "✅"
	}
	found := 0
	for _, a := range sv.Awards {
		if a.Found {
			found++
		}
	}
	fmt.Fprintf(c.out, "║  Combos: %d  Boss: %s  Homework Pass: %s  Awards: %d/%d\n",
		sv.ComboCount, sv.Boss.Display, pass, found, len(sv.Awards))
	fmt.Fprintf(c.out, "║  Deck: %d  Draws: %d  Selected: %d\n", sv.DeckCount, sv.Draws, sv.SelectedCount)
	fmt.Fprintln(c.out, "║──────────────────────────────────────────────────────")
	fmt.Fprintf(c.out, "║  %s\n", sv.LastAction)
	fmt.Fprintln(c.out, "╚══════════════════════════════════════════════════════╝")

	if len(sv.Pool) > 0 {
		fmt.Fprintln(c.out, "\nCards in play:")
		for _, cv := range sv.Pool {
			fmt.Fprintf(c.out, "  %s\n", formatCard(cv))
		}
	}
	if len(sv.Inventory) > 0 {
		fmt.Fprintf(c.out, "\nInventory: %s\n", strings.Join(sv.Inventory, ", "))
	}

	switch sv.Status {
	case "game_over":
		fmt.Fprintln(c.out, "\n💀 GAME OVER. Type n to start again.")
	case "victory":
		fmt.Fprintf(c.out, "\n🏆 VICTORY! %s mastered biological card science!\n", sv.Player)
	}
}

func formatCard(cv CardView) string {
	mark := "[ ]"
	if cv.Selected {
		mark = "[x]"
	}
	s := fmt.Sprintf("%2d) %s %s %s", cv.Index+1, mark, cv.Suit, cv.Name)
	if cv.Boss {
		s += "  ⚠️ BOSS"
	}
	return s
}

func (c *Client) renderResult(cmd string, reply ServerMessage) {
	if reply.Type == "error" {
		fmt.Fprintf(c.out, "! %s\n", reply.Error)
		return
	}
	if reply.State != nil && reply.State.Celebrate {
		fmt.Fprintln(c.out, "🎈🎈🎈")
	}
	switch cmd + ":" + reply.Result {
	case "combo:no_match":
		fmt.Fprintln(c.out, "Nothing happens.")
	case "combo:invalid_selection":
		fmt.Fprintln(c.out, "Select exactly 2 cards to combine.")
	case "attack:no_ammo":
		fmt.Fprintln(c.out, "Select ATP cards to attack the boss.")
	case "attack:inactive":
		fmt.Fprintln(c.out, "There is no boss to attack.")
	case "code:unrecognized":
		fmt.Fprintln(c.out, "Nothing happens. Unknown code.")
	case "code:already_found":
		fmt.Fprintln(c.out, "You already found that award.")
	}
}

const replHelp = `Commands:
  d            draw a card
  s <n>        select or unselect card n
  x            clear the selection
  c            combine the two selected cards
  a            attack the boss with the selected ATP cards
  code <text>  enter a secret code
  n            new game
  r            refresh
  q            quit`

// readCommand reads one command from the terminal. quit is set on "q" or
// end of input.
func (c *Client) readCommand() (msg ClientMessage, quit bool) {
	for {
		fmt.Fprint(c.out, "> ")
		line, err := c.in.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" && err != nil {
			return ClientMessage{}, true
		}
		if msg, ok := parseCommand(line); ok {
			return msg, false
		}
		if line == "q" || line == "quit" {
			return ClientMessage{}, true
		}
		fmt.Fprintln(c.out, replHelp)
	}
}

// parseCommand turns a REPL line into a client message. Card numbers are 1-based.
func parseCommand(line string) (ClientMessage, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ClientMessage{}, false
	}
	switch strings.ToLower(fields[0]) {
	case "d", "draw":
		return ClientMessage{Type: "draw"}, true
	case "s", "select":
		if len(fields) != 2 {
			return ClientMessage{}, false
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return ClientMessage{}, false
		}
		return ClientMessage{Type: "select", Index: n - 1}, true
	case "x", "clear":
		return ClientMessage{Type: "clear"}, true
	case "c", "combo":
		return ClientMessage{Type: "combo"}, true
	case "a", "attack":
		return ClientMessage{Type: "attack"}, true
	case "code":
		code := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
		if code == "" {
			return ClientMessage{}, false
		}
		return ClientMessage{Type: "code", Code: code}, true
	case "n", "new":
		return ClientMessage{Type: "new_game"}, true
	case "r", "refresh":
		return ClientMessage{Type: "state"}, true
	}
	return ClientMessage{}, false
}
