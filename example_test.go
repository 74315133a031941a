package paper_test

import (
	"fmt"

	"honnef.co/go/paper"
)

func ExamplePathFitter() {
	var pts []paper.Point
	for i := range 10 {
		pts = append(pts, paper.Pt(float64(i), 0))
	}
	segs, err := paper.NewPathFitter(pts, false).Fit(0.1)
	if err != nil {
		panic(err)
	}
	for _, s := range segs {
		fmt.Println(s)
	}
	// Output:
	// { point: (0, 0) }
	// { point: (9, 0) }
}

func ExamplePath_Elements() {
	p := paper.NewPathFromPoints(paper.Pt(0, 0), paper.Pt(10, 0), paper.Pt(10, 10), paper.Pt(0, 10))
	p.SetClosed(true)
	for el := range p.Elements() {
		switch el.Kind {
		case paper.MoveToKind:
			fmt.Printf("M%g,%g ", el.P0.X, el.P0.Y)
		case paper.LineToKind:
			fmt.Printf("L%g,%g ", el.P0.X, el.P0.Y)
		case paper.CubicToKind:
			fmt.Printf("C%g,%g %g,%g %g,%g ", el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case paper.ClosePathKind:
			fmt.Println("Z")
		}
	}
	// Output:
	// M0,0 L10,0 L10,10 L0,10 Z
}

func ExamplePath_Contains() {
	c := paper.NewCirclePath(paper.Pt(0, 0), 10)
	b, _ := c.Bounds()
	fmt.Printf("bounds: %.2f %.2f %.2f %.2f\n", b.X0, b.Y0, b.X1, b.Y1)
	fmt.Println(c.Contains(paper.Pt(3, 4)))
	fmt.Println(c.Contains(paper.Pt(8, 8)))
	// Output:
	// bounds: -10.00 -10.00 10.00 10.00
	// true
	// false
}

func ExamplePath_Intersections() {
	a := paper.NewRectanglePath(paper.Rect{X0: 0, Y0: 0, X1: 10, Y1: 10})
	b := paper.NewRectanglePath(paper.Rect{X0: 5, Y0: 5, X1: 15, Y1: 15})
	for _, loc := range a.Intersections(b) {
		pt := loc.Point()
		fmt.Printf("(%.1f, %.1f)\n", pt.X, pt.Y)
	}
	// Output:
	// (10.0, 5.0)
	// (5.0, 10.0)
}
