package geometry

import "testing"

func TestSegmentProjectPointOnZeroLength(t *testing.T) {
	start := NewPoint(2, 3)
	seg := NewSegment(start, start)
	got := seg.ProjectPoint(NewPoint(10, 10))
	if got != start {
		t.Fatalf("expected degenerate segment to project to its single point, got %v", got)
	}
}

func TestSegmentProjectPointClamped(t *testing.T) {
	seg := NewSegment(NewPoint(0, 0), NewPoint(10, 0))
	got := seg.ProjectPoint(NewPoint(5, 5))
	if got != (Point{X: 5, Y: 0}) {
		t.Fatalf("expected projection (5,0), got %v", got)
	}
}

func TestSegmentSquaredDistanceToPoint(t *testing.T) {
	seg := NewSegment(NewPoint(0, 0), NewPoint(5, 0))
	if got := seg.SquaredDistanceToPoint(NewPoint(0, 3)); got != 9 {
		t.Fatalf("expected squared distance 9, got %v", got)
	}
}

func TestSegmentWindingContributionSquare(t *testing.T) {
	// A CCW 2x2 square from (0,0) to (2,2).
	pts := []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	contour := NewContourFromPoints(pts)

	inside := NewPoint(1, 1)
	sum := 0
	for _, s := range contour.Segments {
		sum += s.WindingContribution(inside)
	}
	if sum == 0 {
		t.Fatalf("expected nonzero winding number for point inside square, got 0")
	}

	outside := NewPoint(5, 5)
	sum = 0
	for _, s := range contour.Segments {
		sum += s.WindingContribution(outside)
	}
	if sum != 0 {
		t.Fatalf("expected zero winding number for point outside square, got %d", sum)
	}
}

func TestCrossProductOrientation(t *testing.T) {
	p0 := NewPoint(0, 0)
	p1 := NewPoint(1, 0)
	above := NewPoint(0.5, 1)
	below := NewPoint(0.5, -1)
	onLine := NewPoint(0.5, 0)
	if crossProduct(p0, p1, above) <= 0 {
		t.Fatalf("expected positive cross product for point above line")
	}
	if crossProduct(p0, p1, below) >= 0 {
		t.Fatalf("expected negative cross product for point below line")
	}
	if crossProduct(p0, p1, onLine) != 0 {
		t.Fatalf("expected zero cross product for collinear point")
	}
}
