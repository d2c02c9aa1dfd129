package library

import (
	"errors"
	"fmt"
)

const MaxBorrowed = 5

var (
	ErrUnavailable  = errors.New("item is not available for borrowing")
	ErrLimitReached = fmt.Errorf("maximum borrowing limit reached (%d items)", MaxBorrowed)
	ErrNotHeld      = errors.New("item not found in member's borrowed items")
)

type Member struct {
	ID    string
	Name  string
	Email string

	borrowed []Borrowable
}

func NewMember(id, name, email string) *Member {
	return &Member{ID: id, Name: name, Email: email}
}

func (m *Member) BorrowItem(it Borrowable) error {
	if !it.Available() {
		return ErrUnavailable
	}
	if len(m.borrowed) >= MaxBorrowed {
		return ErrLimitReached
	}
	if err := it.Borrow(m.ID); err != nil {
		return err
	}
	m.borrowed = append(m.borrowed, it)
	return nil
}

func (m *Member) ReturnItem(it Borrowable) error {
	for i, held := range m.borrowed {
		if held != it {
			continue
		}
		if err := it.Return(); err != nil {
			return err
		}
		m.borrowed = append(m.borrowed[:i], m.borrowed[i+1:]...)
		return nil
	}
	return ErrNotHeld
}

func (m *Member) Borrowed() []Borrowable {
	out := make([]Borrowable, len(m.borrowed))
	copy(out, m.borrowed)
	return out
}

func (m *Member) Info() string {
	return fmt.Sprintf("Member: %s (%s) - Borrowed: %d items", m.Name, m.Email, len(m.borrowed))
}
