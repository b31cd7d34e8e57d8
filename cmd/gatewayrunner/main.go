// Command gatewayrunner is a bare example host process: it wires a Session
// together with the pieces spec.md §1 leaves to the embedder (process
// bootstrap, token loading, signal handling) and logs every API Message it
// receives to stderr. Grounded on arikawa's _example/simple, trimmed to this
// module's narrower surface (no command framework, no REST client).
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/finchwire/gatecore/busmsg"
	"github.com/finchwire/gatecore/session"
)

func main() {
	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatalln("no $BOT_TOKEN given")
	}

	cfg := session.Config{
		Token:                token,
		LargeThreshold:       50,
		ShardNum:             0,
		ShardTotal:           1,
		MaxReconnectAttempts: 10,
	}

	urlFn := session.NewRESTGatewayURLFunc(http.DefaultClient, session.DefaultGatewayEndpoint, token)

	s, err := session.New(cfg, urlFn, nil)
	if err != nil {
		log.Fatalln("failed to construct session:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go logMessages(s)

	if err := s.Run(ctx); err != nil {
		log.Fatalln("session terminated:", err)
	}
}

// logMessages drains the API Message Bus until it closes, logging a
// one-line summary per message. A real embedder would switch on the
// concrete busmsg types instead of just naming them.
func logMessages(s *session.Session) {
	for msg := range s.Messages() {
		switch m := msg.(type) {
		case busmsg.Ready:
			log.Println("ready: session", m.SessionID)
		case busmsg.MessageCreated:
			log.Println("message create:", m.Message.Author.Username, m.Message.Content)
		case busmsg.MessageUpdated:
			log.Println("message update:", m.Message.ID)
		case busmsg.MessageDeleted:
			log.Println("message delete:", m.MessageID)
		case busmsg.GuildCreated:
			log.Println("guild create:", m.Guild.Name)
		default:
			log.Printf("%T", m)
		}
	}
}
