package library

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrAlreadyBorrowed = errors.New("item is already borrowed")
	ErrNotBorrowed     = errors.New("item is not currently borrowed")
)

var now = time.Now

// Item is anything the library catalogues.
type Item interface {
	ID() string
	Title() string
	Description() string
	Info() string
}

// Borrowable items can be checked out by one borrower at a time.
type Borrowable interface {
	Borrow(borrower string) error
	Return() error
	Available() bool
}

type item struct {
	id         string
	title      string
	borrowed   bool
	borrowedAt time.Time
	borrower   string
}

func (i *item) ID() string            { return i.id }
func (i *item) Title() string         { return i.title }
func (i *item) Available() bool       { return !i.borrowed }
func (i *item) Borrower() string      { return i.borrower }
func (i *item) BorrowedAt() time.Time { return i.borrowedAt }

func (i *item) Info() string {
	return fmt.Sprintf("ID: %s | Title: %s | Available: %t", i.id, i.title, !i.borrowed)
}

func (i *item) borrow(kind, borrower string) error {
	if i.borrowed {
		return fmt.Errorf("%s %q: %w", kind, i.title, ErrAlreadyBorrowed)
	}
	i.borrowed = true
	i.borrowedAt = now()
	i.borrower = borrower
	return nil
}

func (i *item) giveBack(kind string) error {
	if !i.borrowed {
		return fmt.Errorf("%s %q: %w", kind, i.title, ErrNotBorrowed)
	}
	i.borrowed = false
	i.borrowedAt = time.Time{}
	i.borrower = ""
	return nil
}

type Book struct {
	item
	Author string
	Pages  int
	Genre  string
}

func NewBook(id, title, author string, pages int, genre string) *Book {
	return &Book{item: item{id: id, title: title}, Author: author, Pages: pages, Genre: genre}
}

func (b *Book) Description() string {
	return fmt.Sprintf("Book: %s by %s (%d pages, %s)", b.title, b.Author, b.Pages, b.Genre)
}

func (b *Book) Borrow(borrower string) error { return b.borrow("book", borrower) }
func (b *Book) Return() error                { return b.giveBack("book") }

type Magazine struct {
	item
	Issue     int
	Publisher string
}

func NewMagazine(id, title string, issue int, publisher string) *Magazine {
	return &Magazine{item: item{id: id, title: title}, Issue: issue, Publisher: publisher}
}

func (m *Magazine) Description() string {
	return fmt.Sprintf("Magazine: %s - Issue #%d (%s)", m.title, m.Issue, m.Publisher)
}

func (m *Magazine) Borrow(borrower string) error { return m.borrow("magazine", borrower) }
func (m *Magazine) Return() error                { return m.giveBack("magazine") }
