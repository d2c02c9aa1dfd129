package library

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func seeded() (*Library, *Book, *Magazine, *Member) {
	lib := New("City Library", nil)
	b := NewBook("B001", "The Go Programming Language", "Donovan", 380, "Programming")
	m := NewMagazine("M001", "Tech Monthly", 42, "Tech Press")
	mem := NewMember("U001", "Ada", "ada@example.com")
	lib.AddItem(b)
	lib.AddItem(m)
	lib.AddItem(NewBook("B002", "Clean Code", "Martin", 464, "Programming"))
	lib.AddMember(mem)
	return lib, b, m, mem
}

func TestBookBorrowAndReturn(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	fixedNow(t, at)

	b := NewBook("B001", "Dune", "Herbert", 412, "Sci-Fi")
	require.True(t, b.Available())
	require.NoError(t, b.Borrow("U001"))
	require.False(t, b.Available())
	require.Equal(t, "U001", b.Borrower())
	require.Equal(t, at, b.BorrowedAt())

	err := b.Borrow("U002")
	require.ErrorIs(t, err, ErrAlreadyBorrowed)
	require.Equal(t, "U001", b.Borrower())

	require.NoError(t, b.Return())
	require.True(t, b.Available())
	require.Empty(t, b.Borrower())
	require.True(t, b.BorrowedAt().IsZero())
	require.ErrorIs(t, b.Return(), ErrNotBorrowed)
}

func TestDescriptions(t *testing.T) {
	b := NewBook("B001", "Dune", "Herbert", 412, "Sci-Fi")
	m := NewMagazine("M001", "Wired", 7, "Conde Nast")

	require.Equal(t, "Book: Dune by Herbert (412 pages, Sci-Fi)", b.Description())
	require.Equal(t, "Magazine: Wired - Issue #7 (Conde Nast)", m.Description())
	require.Equal(t, "ID: B001 | Title: Dune | Available: true", b.Info())

	require.NoError(t, m.Borrow("U001"))
	require.Equal(t, "ID: M001 | Title: Wired | Available: false", m.Info())
}

func TestMemberBorrowLimit(t *testing.T) {
	mem := NewMember("U001", "Ada", "ada@example.com")
	for i := 0; i < MaxBorrowed; i++ {
		require.NoError(t, mem.BorrowItem(NewBook("B", "t", "a", 1, "g")))
	}
	extra := NewBook("B9", "extra", "a", 1, "g")
	require.ErrorIs(t, mem.BorrowItem(extra), ErrLimitReached)
	require.True(t, extra.Available())
	require.Len(t, mem.Borrowed(), MaxBorrowed)
	require.Equal(t, "Member: Ada (ada@example.com) - Borrowed: 5 items", mem.Info())
}

func TestMemberUnavailableAndNotHeld(t *testing.T) {
	_, b, m, mem := seeded()
	other := NewMember("U002", "Grace", "grace@example.com")

	require.NoError(t, mem.BorrowItem(b))
	require.ErrorIs(t, other.BorrowItem(b), ErrUnavailable)
	require.ErrorIs(t, other.ReturnItem(b), ErrNotHeld)
	require.ErrorIs(t, mem.ReturnItem(m), ErrNotHeld)

	require.NoError(t, mem.ReturnItem(b))
	require.Empty(t, mem.Borrowed())
	require.True(t, b.Available())
}

func TestLibrarySearchAndStats(t *testing.T) {
	lib, b, _, mem := seeded()

	got := lib.SearchByTitle("go programming")
	require.Len(t, got, 1)
	require.Equal(t, "B001", got[0].ID())

	require.Len(t, lib.SearchByTitle("B00"), 2)
	require.Empty(t, lib.SearchByTitle("nothing"))

	require.NoError(t, mem.BorrowItem(b))
	require.Equal(t, Stats{Total: 3, Available: 2, Borrowed: 1, Members: 1}, lib.Stats())
	require.Contains(t, lib.Stats().String(), "- Borrowed: 1")

	avail := lib.AvailableItems()
	require.Len(t, avail, 2)
	for _, it := range avail {
		require.NotEqual(t, "B001", it.ID())
	}

	// "available: false" is part of the info line
	require.Len(t, lib.SearchByTitle("available: false"), 1)
}

func TestLibraryLookup(t *testing.T) {
	lib, _, _, _ := seeded()

	it, ok := lib.Item("M001")
	require.True(t, ok)
	require.Equal(t, "Tech Monthly", it.Title())

	_, ok = lib.Item("X")
	require.False(t, ok)

	m, ok := lib.Member("U001")
	require.True(t, ok)
	require.Equal(t, "Ada", m.Name)

	_, ok = lib.Member("U404")
	require.False(t, ok)
}

func TestBorrowErrorWrapsTitle(t *testing.T) {
	m := NewMagazine("M001", "Wired", 7, "Conde Nast")
	require.NoError(t, m.Borrow("x"))
	err := m.Borrow("y")
	require.True(t, errors.Is(err, ErrAlreadyBorrowed))
	require.Contains(t, err.Error(), `magazine "Wired"`)
}
