// Package command parses the loosely structured text returned by a text
// generation service into per-page directive lists.
//
// The accepted grammar is:
//
//	Page <integer>:        (the colon may also be the full-width '：')
//	Title: <text>          (text ends at ';' or newline)
//	Subtitle: <text>
//	Bullet: <text>         (repeatable)
//	Draw: <Shape>(<params>) (repeatable)
//
// Shape is one of Line, Rectangle, Arrow (four parameters x1,y1,x2,y2) or
// Circle (three parameters centerX,centerY,radius).
//
// Text before the first page marker is discarded and unrecognized lines are
// ignored. A malformed Draw directive is dropped and reported as a
// [Warning]; the rest of the page is still parsed:
//
//	p := command.NewParser()
//	pages, warnings := p.Parse(text)
//
// Because ';' terminates a text field, a semicolon inside title or bullet
// text cuts the text short at that point.
package command
