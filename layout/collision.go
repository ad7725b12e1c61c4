package layout

// contact is how an already placed word relates to a candidate placement.
type contact int

const (
	// contactNone: the word stays clear of the candidate's danger zone.
	contactNone contact = iota
	// contactCorner: a same-orientation word sharing a single corner cell
	// with the candidate next to the word being crossed.
	contactCorner
	// contactCrossing: a perpendicular word crossed at a matching character.
	contactCrossing
	// contactIllegal: the words touch without forming a valid crossing.
	contactIllegal
)

// dangerRects pads r by one cell along the word and by one cell across it.
// Any other word reaching into these rects touches the candidate.
func dangerRects(r Rect, horizontal bool) [2]Rect {
	along := Rect{Left: r.Left - 1, Top: r.Top, Right: r.Right + 1, Bottom: r.Bottom}
	across := Rect{Left: r.Left, Top: r.Top - 1, Right: r.Right, Bottom: r.Bottom + 1}
	if !horizontal {
		along, across = across, along
	}
	return [2]Rect{along, across}
}

// classifyContact applies the collision rule between a candidate and one
// placed word. inserted is the word the candidate crosses, nil for a plain
// placement; it must not be passed as other.
func classifyContact(candidate, other, inserted *WordLayout) contact {
	result := contactNone
	for _, danger := range dangerRects(candidate.rect, candidate.horizontal) {
		common, ok := other.rect.Intersection(danger)
		if !ok {
			continue
		}
		if inserted == nil {
			return contactIllegal
		}

		if other.horizontal == candidate.horizontal {
			// Parallel words may only meet on a cell of the word being crossed:
			//
			//   s
			//   a
			//   w a s
			//     s
			//
			// "as" hangs from the "a" of "was", right beside the end of "saw".
			if other.rect.Overlaps(inserted.rect) && common.Area() == 1 && inserted.CanIntersect() {
				result = max(result, contactCorner)
				continue
			}
			return contactIllegal
		}

		if !other.CanIntersect() || !candidate.CrossesWithMatchingChar(other) {
			return contactIllegal
		}
		result = contactCrossing
	}
	return result
}
