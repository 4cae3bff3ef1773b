package definition

// Run is a presentation group: either a single paragraph or a maximal stretch
// of consecutive list items that renders as one list.
type Run struct {
	List   bool
	Blocks []Block
}

// Runs groups d into runs. Grouping is derived from the finished document
// only; Structure itself keeps no list state.
func (d Document) Runs() []Run {
	var out []Run
	for _, b := range d {
		if b.Kind == ListItem && len(out) > 0 && out[len(out)-1].List {
			last := &out[len(out)-1]
			last.Blocks = append(last.Blocks, b)
			continue
		}
		out = append(out, Run{List: b.Kind == ListItem, Blocks: []Block{b}})
	}
	return out
}
