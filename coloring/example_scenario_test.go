package coloring_test

import (
	"fmt"

	"github.com/katalvlaran/brocs/coloring"
	"github.com/katalvlaran/brocs/core"
)

// ExampleBrooks_examTimetable assigns exam slots so that no student sits two
// exams at once.
//
// Scenario:
//   - Courses: Algebra, Biology, Chemistry, Databases, Economics, French, Geometry.
//   - Two courses conflict when they share a student.
//   - A slot is a color; conflicting courses need different slots.
//
// Expectation: the conflict graph is neither complete nor an odd cycle, so
// Brooks needs at most Δ slots, one fewer than the greedy Δ+1 bound.
func ExampleBrooks_examTimetable() {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"Algebra", "Biology"}, {"Algebra", "Chemistry"}, {"Biology", "Chemistry"},
		{"Biology", "Databases"}, {"Chemistry", "Databases"}, {"Chemistry", "Geometry"},
		{"Databases", "Economics"}, {"Economics", "French"}, {"French", "Geometry"},
		{"Geometry", "Economics"},
	} {
		_ = g.AddEdge(e[0], e[1])
	}

	slots, err := coloring.NewBrooks().ColorGraph(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	delta := coloring.MaxDegree(g)
	fmt.Println("max conflicts per course:", delta)
	fmt.Println("slots within Δ:", coloring.UniqueColors(slots) <= delta)
	fmt.Println("conflict-free:", coloring.IsProper(g, slots))
	// Output:
	// max conflicts per course: 4
	// slots within Δ: true
	// conflict-free: true
}
