package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	contacts "github.com/smileynet/contacts"
	"github.com/smileynet/contacts/internal/book"
	"github.com/smileynet/contacts/internal/config"
	"github.com/smileynet/contacts/internal/contact"
	"github.com/smileynet/contacts/internal/form"
	"github.com/smileynet/contacts/internal/logging"
	"github.com/smileynet/contacts/internal/store"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Globals holds flags shared by every command.
type Globals struct {
	File string `help:"Contacts file (overrides config)." short:"f" placeholder:"PATH"`
}

// CLI is the top-level command structure for contacts.
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Show version." short:"V"`
	Form    FormCmd          `cmd:"" default:"1" help:"Open the interactive contact form."`
	List    ListCmd          `cmd:"" help:"List all contacts."`
	Add     AddCmd           `cmd:"" help:"Add a contact."`
	Update  UpdateCmd        `cmd:"" help:"Replace the contact at a row."`
	Delete  DeleteCmd        `cmd:"" help:"Delete the contact at a row."`
	Init    InitCmd          `cmd:"" help:"Write an example config to .contacts/config.yaml."`
}

// contactBook abstracts book.Book for testing.
type contactBook interface {
	Add(name, phone, email string) error
	Update(index int, name, phone, email string) error
	Remove(index int) error
	List() []contact.Contact
	Len() int
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/contacts/config.yaml"),
		projectConfigPath,
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// projectConfigPath is the per-directory config layer written by init.
var projectConfigPath = filepath.Join(".contacts", "config.yaml")

// session holds the dependencies wired for one command invocation.
type session struct {
	cfg   *config.Config
	log   *logging.Logger
	store *store.FileStore
}

// openSession resolves config (applying the --file override), opens the
// logger and builds the file store.
func openSession(g *Globals) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if g.File != "" {
		cfg.Store.Path = g.File
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	fs := store.NewFileStore(cfg.Store.Path,
		store.WithAtomicWrite(cfg.Store.AtomicWrite),
		store.WithLogger(log.With("component", "store")),
	)
	return &session{cfg: cfg, log: log, store: fs}, nil
}

// openBook loads the contacts file into a book. One-shot commands treat a
// load failure as fatal so they never overwrite a file they could not read.
func (s *session) openBook() (*book.Book, error) {
	initial, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return book.New(s.store, initial, book.WithLogger(s.log.With("component", "book"))), nil
}

// withBook runs fn against a freshly loaded book.
func withBook(g *Globals, name string, fn func(b contactBook) error) error {
	s, err := openSession(g)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	defer s.log.Sync()

	b, err := s.openBook()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return fn(b)
}

// --- Form command ---

// FormCmd opens the interactive form TUI.
type FormCmd struct{}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run builds real dependencies and launches the form TUI.
func (c *FormCmd) Run(g *Globals) error {
	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !isTTY {
		return c.run(false, nil)
	}

	s, err := openSession(g)
	if err != nil {
		return fmt.Errorf("form: %w", err)
	}
	defer s.log.Sync()

	// A load failure is shown in the form rather than aborting; the session
	// starts empty.
	initial, loadErr := s.store.Load()
	if loadErr != nil {
		s.log.Error("load failed", "path", s.store.Path(), "error", loadErr)
	}
	b := book.New(s.store, initial, book.WithLogger(s.log.With("component", "book")))

	m := form.NewModel(b,
		form.WithLogger(s.log.With("component", "form")),
		form.WithLoadError(loadErr),
	)

	var opts []tea.ProgramOption
	if s.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return c.run(true, tea.NewProgram(m, opts...))
}

// run executes the tea program, enabling testable wiring.
func (c *FormCmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return fmt.Errorf("form: requires a terminal (TTY); use list, add, update or delete instead")
	}
	_, err := prog.Run()
	return err
}

// --- One-shot commands ---

// ListCmd prints every contact with its row number.
type ListCmd struct{}

// Run executes the list command.
func (c *ListCmd) Run(g *Globals) error {
	return withBook(g, "list", func(b contactBook) error {
		return c.run(os.Stdout, b)
	})
}

func (c *ListCmd) run(w io.Writer, b contactBook) error {
	list := b.List()
	if len(list) == 0 {
		_, _ = fmt.Fprintln(w, "No contacts to display.")
		return nil
	}
	_, _ = io.WriteString(w, contact.FormatList(list))
	return nil
}

// AddCmd appends a contact.
type AddCmd struct {
	Name  string `arg:"" help:"Contact name."`
	Phone string `arg:"" help:"Phone number."`
	Email string `arg:"" help:"Email address."`
}

// Run executes the add command.
func (c *AddCmd) Run(g *Globals) error {
	return withBook(g, "add", func(b contactBook) error {
		return c.run(os.Stdout, b)
	})
}

func (c *AddCmd) run(w io.Writer, b contactBook) error {
	if err := b.Add(c.Name, c.Phone, c.Email); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Added contact %d.\n", b.Len())
	return nil
}

// UpdateCmd replaces all fields of the contact at a row.
type UpdateCmd struct {
	Row   int    `arg:"" help:"Row number as shown by list."`
	Name  string `arg:"" help:"Contact name."`
	Phone string `arg:"" help:"Phone number."`
	Email string `arg:"" help:"Email address."`
}

// Run executes the update command.
func (c *UpdateCmd) Run(g *Globals) error {
	return withBook(g, "update", func(b contactBook) error {
		return c.run(os.Stdout, b)
	})
}

func (c *UpdateCmd) run(w io.Writer, b contactBook) error {
	if err := b.Update(c.Row-1, c.Name, c.Phone, c.Email); err != nil {
		return fmt.Errorf("update: row %d: %w", c.Row, err)
	}
	_, _ = fmt.Fprintf(w, "Updated contact %d.\n", c.Row)
	return nil
}

// DeleteCmd removes the contact at a row.
type DeleteCmd struct {
	Row int `arg:"" help:"Row number as shown by list."`
}

// Run executes the delete command.
func (c *DeleteCmd) Run(g *Globals) error {
	return withBook(g, "delete", func(b contactBook) error {
		return c.run(os.Stdout, b)
	})
}

func (c *DeleteCmd) run(w io.Writer, b contactBook) error {
	if err := b.Remove(c.Row - 1); err != nil {
		return fmt.Errorf("delete: row %d: %w", c.Row, err)
	}
	_, _ = fmt.Fprintf(w, "Deleted contact %d.\n", c.Row)
	return nil
}

// --- Init command ---

// InitCmd writes the example config into the current directory.
type InitCmd struct {
	Force bool `help:"Overwrite an existing config."`
}

// ErrConfigExists indicates init would overwrite an existing config.
var ErrConfigExists = errors.New("config already exists")

// Run executes the init command.
func (c *InitCmd) Run() error {
	return c.run(os.Stdout, projectConfigPath)
}

func (c *InitCmd) run(w io.Writer, path string) error {
	if _, err := os.Stat(path); err == nil && !c.Force {
		return fmt.Errorf("init: %w: %s (use --force to overwrite)", ErrConfigExists, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("init: creating directory: %w", err)
	}
	if err := os.WriteFile(path, contacts.ExampleConfig, 0o644); err != nil {
		return fmt.Errorf("init: writing %s: %w", path, err)
	}
	_, _ = fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}

// Exit codes.
const (
	exitSuccess    = 0
	exitValidation = 1
	exitIO         = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if contact.IsValidation(err) {
		return exitValidation
	}
	return exitIO
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("contacts"),
		kong.Description("Manage a flat-file list of contacts."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run(&cli.Globals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
