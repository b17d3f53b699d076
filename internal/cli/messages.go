package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/back2me/internal/models"
	"github.com/dustin/go-humanize"
)

// Messages lists conversations, most recent activity first.
func (a *App) Messages(ctx context.Context) error {
	convs, err := a.conversations.ListConversations(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	if len(convs) == 0 {
		fmt.Fprintln(a.out, "No conversations yet.")
		return nil
	}

	for _, c := range convs {
		fmt.Fprintf(a.out, "%-7s %s (%s), %s\n", c.ID, c.CounterpartName, c.SubjectLabel,
			humanize.RelTime(c.LastActivity, a.now(), "ago", "from now"))
		fmt.Fprintf(a.out, "%7s %s\n", "", c.LastMessage)
	}
	return nil
}

// Open prints a conversation with all of its messages.
func (a *App) Open(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: open <id>")
		return nil
	}

	c, err := a.conversations.Get(ctx, args[0])
	if err != nil {
		return a.report(ctx, err)
	}

	fmt.Fprintf(a.out, "%s: %s\n", c.CounterpartName, c.SubjectLabel)
	for _, m := range c.Messages {
		a.printMessage(c, m)
	}
	return nil
}

// Send appends a message to a conversation. The text is taken from the
// remaining arguments or prompted for.
func (a *App) Send(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "Usage: send <id> [text]")
		return nil
	}

	text := strings.Join(args[1:], " ")
	if text == "" {
		var err error
		text, err = getSimpleText(a.reader, "Message", a.out)
		if err != nil {
			return err
		}
	}

	if err := a.simulate(ctx); err != nil {
		return a.report(ctx, err)
	}

	m, err := a.conversations.AppendMessage(ctx, args[0], a.session.UserID, text)
	if err != nil {
		return a.report(ctx, err)
	}

	fmt.Fprintf(a.out, "Sent (%s).\n", m.ID)
	return nil
}

func (a *App) printMessage(c models.Conversation, m models.Message) {
	who := c.CounterpartName
	if m.SentBy(a.session.UserID) {
		who = "You"
	}
	fmt.Fprintf(a.out, "  [%s] %s: %s\n", m.SentAt.Local().Format("Jan 2 15:04"), who, m.Text)
}
