package main

import (
	"fmt"
	"io"

	"github.com/jasperayawan/oop-showcase-go/internal/family"
)

func (a *app) runFamily(w io.Writer) error {
	fmt.Fprintln(w, "=== FAMILY ===")

	father := family.NewParent("John", 40, family.Male, "Engineer")
	mother := family.NewParent("Maria", 38, family.Female, "Teacher")
	alex := family.NewChild("Alex", 10, family.Male, "Greenwood Elementary", "basketball")
	ella := family.NewChild("Ella", 7, family.Female, "Greenwood Elementary", "drawing")

	var fam family.Family
	for _, m := range []family.Member{father, mother, alex, ella} {
		fam.Add(m)
	}
	for _, p := range []*family.Parent{father, mother} {
		p.AddChild(alex)
		p.AddChild(ella)
	}

	heading(w, "INTRODUCTIONS")
	for _, m := range fam.Members() {
		fmt.Fprintln(w, m.Introduce())
	}

	heading(w, "DAILY ROUTINE")
	fmt.Fprintln(w, father.Work())
	fmt.Fprintln(w, mother.Work())
	fmt.Fprintln(w, alex.Study())
	fmt.Fprintln(w, ella.Play())

	heading(w, "CHILDREN")
	lines(w, father.ChildrenReport())

	fmt.Fprintln(w, "\nFamily Members:")
	lines(w, fam.Roster())
	return nil
}
