package editor

// reverseSearch drives Ctrl-R's prompt until Enter accepts a match
// (returned as a completed Result, short-circuiting ReadLine's own
// loop) or Ctrl-G cancels back to the line being edited before Ctrl-R
// was pressed (spec.md §4.E).
func (e *Editor) reverseSearch(prompt string) (*Result, error) {
	prior := e.buf
	search := newSearch(e.hist)
	e.drawSearch(search)

	for {
		r, err := e.readRune()
		if err != nil {
			return nil, err
		}

		switch r {
		case ctrlG:
			e.buf = prior
			return nil, nil

		case cr, lf:
			if idx := search.current(); idx >= 0 {
				if v, ok := e.hist.At(idx); ok {
					e.out.WriteString("\r\n")
					e.hist.Add(v)
					return &Result{Line: v}, nil
				}
			}
			e.buf = prior
			return nil, nil

		case ctrlR:
			search.next()
			e.drawSearch(search)

		case bs8, del:
			search.backspace(e.hist)
			e.drawSearch(search)

		default:
			if r >= 32 {
				search.typeRune(e.hist, r)
				e.drawSearch(search)
			}
		}
	}
}

// drawSearch renders bash-style "(reverse-i-search)`query': match".
func (e *Editor) drawSearch(s *searchState) {
	e.out.WriteString("\r\x1b[K")
	e.out.WriteString("(reverse-i-search)`" + s.query + "': ")
	if idx := s.current(); idx >= 0 {
		if v, ok := e.hist.At(idx); ok {
			e.buf.setText(v)
			e.out.WriteString(v)
		}
	}
}
