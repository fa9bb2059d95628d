package main

import (
	"chat-metrics/repositories"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "", "Path to badger DB")
	chat := flag.String("chat", "", "Chat to dump, every chat summary when empty")
	flag.Parse()
	if *dbPath == "" {
		log.Fatal("-db is required")
	}

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repository := repositories.NewMessageRepository(db, slog.Default(), nil)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	if *chat == "" {
		chats, err := repository.ListChats()
		if err != nil {
			log.Fatal(err)
		}
		table.SetHeader([]string{"Chat", "Messages", "Imported at"})
		for _, c := range chats {
			table.Append([]string{c.Name, strconv.Itoa(c.Messages), c.ImportedAt.Format("2006-01-02 15:04:05")})
		}
		table.Render()
		return
	}

	messages, err := repository.GetMessages(*chat)
	if err != nil {
		log.Fatal(err)
	}
	table.SetHeader([]string{"At", "Sender", "Period", "Content"})
	for _, m := range messages {
		content := strings.ReplaceAll(m.Content, "\n", `\n`)
		if len([]rune(content)) > 60 {
			content = string([]rune(content)[:60]) + "…"
		}
		table.Append([]string{m.At.Format("2006-01-02 15:04"), m.Sender, m.Period(), content})
	}
	table.Render()
	fmt.Printf("%d messages\n", len(messages))
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
