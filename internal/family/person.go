package family

import "fmt"

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

type Person struct {
	Name   string
	Age    int
	Gender Gender
}

func (p *Person) Introduce() string {
	return fmt.Sprintf("Hi, I'm %s %d years old.", p.Name, p.Age)
}

// Self lets Parent and Child be stored as family members.
func (p *Person) Self() *Person { return p }

type Parent struct {
	Person
	Occupation string

	children []*Child
}

func NewParent(name string, age int, gender Gender, occupation string) *Parent {
	return &Parent{Person: Person{Name: name, Age: age, Gender: gender}, Occupation: occupation}
}

// AddChild reports false when the child is already listed.
func (p *Parent) AddChild(c *Child) bool {
	for _, existing := range p.children {
		if existing == c {
			return false
		}
	}
	p.children = append(p.children, c)
	return true
}

func (p *Parent) Children() []*Child {
	out := make([]*Child, len(p.children))
	copy(out, p.children)
	return out
}

func (p *Parent) Work() string {
	return fmt.Sprintf("%s is working as a %s.", p.Name, p.Occupation)
}

func (p *Parent) ChildrenReport() []string {
	if len(p.children) == 0 {
		return []string{fmt.Sprintf("%s has no children yet.", p.Name)}
	}
	lines := []string{fmt.Sprintf("%s's children:", p.Name)}
	for _, c := range p.children {
		lines = append(lines, fmt.Sprintf("👶 %s (%d years old)", c.Name, c.Age))
	}
	return lines
}

type Child struct {
	Person
	School string
	Hobby  string
}

func NewChild(name string, age int, gender Gender, school, hobby string) *Child {
	return &Child{Person: Person{Name: name, Age: age, Gender: gender}, School: school, Hobby: hobby}
}

func (c *Child) Play() string {
	return fmt.Sprintf("Hi, I'm %s I love playing %s", c.Name, c.Hobby)
}

func (c *Child) Study() string {
	return fmt.Sprintf("I love studying at %s", c.School)
}
