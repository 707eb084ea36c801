// Package logic wires parsing, execution, history and persistence together.
package logic

import (
	"github.com/nikbrunner/bizbook/internal/command"
	"github.com/nikbrunner/bizbook/internal/errors"
	"github.com/nikbrunner/bizbook/internal/logger"
	"github.com/nikbrunner/bizbook/internal/model"
	"github.com/nikbrunner/bizbook/internal/parser"
	"github.com/nikbrunner/bizbook/internal/storage"
)

// Manager runs command lines against one address book. It is not safe for
// concurrent use; hosts that accept concurrent requests serialize calls.
type Manager struct {
	ctx     *command.Context
	storage storage.Storage
	log     *logger.Logger
}

// ManagerParams holds parameters for creating a Manager.
type ManagerParams struct {
	// Book is the initial content. Nil starts empty.
	Book *model.AddressBook
	// Storage receives the address book after every change. Nil keeps the
	// book in memory only.
	Storage storage.Storage
	Logger  *logger.Logger
}

// NewManager creates a Manager.
func NewManager(params ManagerParams) *Manager {
	log := params.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{
		ctx:     command.NewContext(model.NewStore(params.Book)),
		storage: params.Storage,
		log:     log.WithComponent("logic"),
	}
}

// Load reads the address book from s and creates a Manager over it.
func Load(s storage.Storage, log *logger.Logger) (*Manager, error) {
	book, err := s.Load()
	if err != nil {
		return nil, err
	}
	m := NewManager(ManagerParams{Book: book, Storage: s, Logger: log})
	m.log.Info().Int("persons", len(book.Persons)).Int("folders", len(book.Folders)).Msg("address book loaded")
	return m, nil
}

// Execute parses and runs one command line. A successful mutable command is
// recorded for undo, and the address book is saved whenever it changed.
func (m *Manager) Execute(line string) (command.Result, error) {
	word := parser.CommandWord(line)
	m.log.Debug().Str("command", word).Msg("execute")

	c, err := parser.Parse(line)
	if err != nil {
		m.log.Debug().Err(err).Str("command", word).Msg("parse failed")
		return command.Result{}, err
	}

	before := m.ctx.Store.Version()
	res, err := c.Execute(m.ctx)
	if err != nil {
		m.logFailure(err, word)
		return command.Result{}, err
	}
	m.ctx.History.Record(c)

	if m.ctx.Store.Version() != before {
		if err := m.save(); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Store returns the address book being managed.
func (m *Manager) Store() *model.Store {
	return m.ctx.Store
}

// History returns the undo/redo history.
func (m *Manager) History() *command.History {
	return m.ctx.History
}

func (m *Manager) save() error {
	if m.storage == nil {
		return nil
	}
	if err := m.storage.Save(m.ctx.Store.AddressBook()); err != nil {
		m.log.Error().Err(err).Msg("failed to save address book")
		return errors.NewStorage(err)
	}
	m.log.Debug().Uint64("version", m.ctx.Store.Version()).Msg("address book saved")
	return nil
}

func (m *Manager) logFailure(err error, word string) {
	if errors.KindOf(err) == errors.KindFatal {
		m.log.Error().Err(err).Str("command", word).Msg("command failed")
		return
	}
	m.log.Debug().Err(err).Str("command", word).Msg("command rejected")
}
