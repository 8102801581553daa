// FILE: lixenwraith/proptype/lens.go
package proptype

// Lens pairs the enhanced getter and setter of one public name.
type Lens struct {
	Get func(rec Record) any
	Set func(value any) func(rec Record) Record
}

// View reads the property through the lens.
func (l Lens) View(rec Record) any { return l.Get(rec) }

// Over reads the property, applies fn and writes the result back.
// The input record is not modified.
func (l Lens) Over(fn func(any) any) func(rec Record) Record {
	return func(rec Record) Record {
		return l.Set(fn(l.Get(rec)))(rec)
	}
}

// Finder searches a sequence of records for the first one whose property equals a value.
type Finder func(value any) func(records []Record) (Record, bool)

// Find is the uncurried form of the finder. The second return is false when nothing matches.
func (f Finder) Find(value any, records []Record) (Record, bool) {
	return f(value)(records)
}
