package main

import (
	"fmt"
	"io"

	"github.com/jasperayawan/oop-showcase-go/internal/library"
)

func (a *app) runLibrary(w io.Writer) error {
	fmt.Fprintln(w, "=== LIBRARY MANAGEMENT SYSTEM ===")

	lib := library.New("Central Public Library", a.logger)

	handbook := library.NewBook("B001", "TypeScript Handbook", "Microsoft", 450, "Programming")
	cleanCode := library.NewBook("B002", "Clean Code", "Robert Martin", 320, "Software Engineering")
	patterns := library.NewBook("B003", "Design Patterns", "Gang of Four", 600, "Programming")
	weekly := library.NewMagazine("M001", "Tech Weekly", 42, "Tech Publications")
	science := library.NewMagazine("M002", "Science Today", 15, "Science Press")

	for _, it := range []library.Item{handbook, cleanCode, patterns, weekly, science} {
		lib.AddItem(it)
		fmt.Fprintf(w, "✅ Added: %s\n", it.Description())
	}

	alice := library.NewMember("U001", "Alice Johnson", "alice@email.com")
	bob := library.NewMember("U002", "Bob Smith", "bob@email.com")
	lib.AddMember(alice)
	lib.AddMember(bob)
	fmt.Fprintf(w, "👤 Members: %s, %s\n", alice.Name, bob.Name)

	heading(w, "BORROWING ACTIVITIES")
	loans := []struct {
		member *library.Member
		item   interface {
			library.Item
			library.Borrowable
		}
	}{
		{alice, handbook},
		{alice, weekly},
		{bob, cleanCode},
		{bob, handbook},
	}
	for _, l := range loans {
		if err := l.member.BorrowItem(l.item); err != nil {
			fmt.Fprintf(w, "❌ %s cannot borrow %q: %v\n", l.member.Name, l.item.Title(), err)
			continue
		}
		fmt.Fprintf(w, "📖 %s borrowed %q\n", l.member.Name, l.item.Title())
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, lib.Stats())

	heading(w, "SEARCH RESULTS")
	for _, it := range lib.SearchByTitle("TypeScript") {
		fmt.Fprintln(w, it.Info())
	}

	heading(w, "MEMBER BORROWED ITEMS")
	fmt.Fprintln(w, alice.Info())
	fmt.Fprintln(w, bob.Info())

	heading(w, "RETURNING ITEMS")
	if err := alice.ReturnItem(handbook); err != nil {
		return err
	}
	fmt.Fprintf(w, "📚 %s returned %q\n", alice.Name, handbook.Title())
	if err := bob.ReturnItem(patterns); err != nil {
		fmt.Fprintf(w, "❌ %s cannot return %q: %v\n", bob.Name, patterns.Title(), err)
	}
	fmt.Fprintln(w, alice.Info())
	return nil
}
