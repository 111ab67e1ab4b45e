package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/bookstore/internal/config"
	"github.com/mrlokans/bookstore/internal/database"
	"github.com/mrlokans/bookstore/internal/database/audit"
	"github.com/mrlokans/bookstore/internal/entities"
)

var eventTypes = []entities.InventoryEventType{
	entities.InventoryEventBookCreated,
	entities.InventoryEventBookPriceUpdated,
	entities.InventoryEventBookDeleted,
}

type AuditLogCommand struct {
	DatabasePath string
	Limit        int
	EventType    string
	BookID       int

	out io.Writer
}

func NewAuditLogCommand() *AuditLogCommand {
	return &AuditLogCommand{out: os.Stdout}
}

func (cmd *AuditLogCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("audit-log", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultAuditDatabasePath, "Path to the audit database")
	fs.IntVar(&cmd.Limit, "limit", 50, "Maximum number of events to print")
	fs.StringVar(&cmd.EventType, "type", "", "Only print events of this type (book_created, book_price_updated, book_deleted)")
	fs.IntVar(&cmd.BookID, "book", 0, "Print the full history of one book id instead")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s audit-log [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print the most recent inventory audit events as JSON.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s audit-log -limit 10\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s audit-log -type book_deleted -db ./bookstore-audit.db\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s audit-log -book 3\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", cmd.Limit)
	}
	if cmd.EventType != "" && !isKnownEventType(cmd.EventType) {
		return fmt.Errorf("unknown event type: %s", cmd.EventType)
	}

	return nil
}

func (cmd *AuditLogCommand) Run() error {
	if _, err := os.Stat(cmd.DatabasePath); os.IsNotExist(err) {
		return fmt.Errorf("audit database does not exist: %s", cmd.DatabasePath)
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open audit database: %w", err)
	}
	defer db.Close()

	repo := audit.NewRepository(db.DB)

	var events []entities.InventoryEvent
	switch {
	case cmd.BookID > 0:
		events, err = repo.GetEventsForBook(cmd.BookID)
	case cmd.EventType != "":
		events, _, err = repo.GetEventsByType(entities.InventoryEventType(cmd.EventType), cmd.Limit, 0)
	default:
		events, _, err = repo.GetEvents(cmd.Limit, 0)
	}
	if err != nil {
		return fmt.Errorf("failed to read audit events: %w", err)
	}
	if events == nil {
		events = []entities.InventoryEvent{}
	}

	encoder := json.NewEncoder(cmd.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(events)
}

func isKnownEventType(name string) bool {
	for _, t := range eventTypes {
		if string(t) == name {
			return true
		}
	}
	return false
}
