package siglist

import (
	"sync/atomic"

	"github.com/atmafra/poli-sub001/internal/cplx"
	"github.com/atmafra/poli-sub001/internal/errs"
)

// nextIndexID is the process-wide, strictly increasing index-id counter
// (spec §3/§4.3). Every Index gets an id from here at construction.
var nextIndexID uint64

// NextIndexID allocates and returns the next process-wide index id.
func NextIndexID() uint64 { return atomic.AddUint64(&nextIndexID, 1) }

// Entry is a named, filed reference to one List, with a position in its
// owning Index and an optional, non-owning link to the Entry it was
// derived from in a parent Index.
type Entry struct {
	ID       uint64
	Position int
	Name     string
	File     string
	List     *List
	Parent   *Entry // weak: may belong to a different, still-alive Index
}

// Index is a doubly-linked (by traversal order) catalogue of entries,
// addressed by stable ids rather than raw pointers (design note §9): an
// arena (entries map) plus an explicit order slice standing in for the
// prev/next links, so swaps are pointer-free and cannot corrupt the
// backbone. Invariants: order[i].Position == i+1 for all i, always; and
// Current is repositioned to the predecessor whenever the current entry
// is destroyed.
type Index struct {
	id        uint64
	parent    *Index // weak
	entries   map[uint64]*Entry
	order     []uint64
	current   uint64
	nextEID   uint64
	destroyed bool
}

// NewIndex creates a new, empty Index, optionally rooted at a parent
// Index (the parent link is weak: this Index does not own it).
func NewIndex(parent *Index) *Index {
	return &Index{
		id:      NextIndexID(),
		parent:  parent,
		entries: make(map[uint64]*Entry),
	}
}

// ID returns this Index's process-unique id.
func (idx *Index) ID() uint64 { return idx.id }

// Parent returns the weak parent-index pointer, or nil at the root.
func (idx *Index) Parent() *Index { return idx.parent }

// Count returns the number of entries currently in the index.
func (idx *Index) Count() int { return len(idx.order) }

func (idx *Index) repairPositions() {
	for i, eid := range idx.order {
		idx.entries[eid].Position = i + 1
	}
}

// AddEntry appends a new entry to the tail, wrapping a freshly created
// List of the given kind and time scale. If setCurrent is true, the new
// entry becomes the current one. It returns the new entry's 1-based
// position.
func (idx *Index) AddEntry(name, file string, parentEntry *Entry, kind Kind, scale TimeScale, setCurrent bool) (int, error) {
	if idx.destroyed {
		return 0, errs.New(errs.NotInitialized, "siglist.AddEntry", "index is destroyed")
	}
	idx.nextEID++
	e := &Entry{
		ID:     idx.nextEID,
		Name:   name,
		File:   file,
		List:   New(kind, scale),
		Parent: parentEntry,
	}
	idx.entries[e.ID] = e
	idx.order = append(idx.order, e.ID)
	e.Position = len(idx.order)
	if setCurrent || idx.current == 0 {
		idx.current = e.ID
	}
	return e.Position, nil
}

// DestroyEntry removes the tail entry — this is a fixed policy, not
// arbitrary removal, per spec §4.3. It fails with errs.NotInitialized
// if the index is empty. If the destroyed entry was current, Current
// moves to its predecessor (or zero, if it was also the head).
func (idx *Index) DestroyEntry() error {
	if idx.destroyed {
		return errs.New(errs.NotInitialized, "siglist.DestroyEntry", "index is destroyed")
	}
	if len(idx.order) == 0 {
		return errs.New(errs.NotInitialized, "siglist.DestroyEntry", "index is empty")
	}
	tailID := idx.order[len(idx.order)-1]
	idx.order = idx.order[:len(idx.order)-1]
	delete(idx.entries, tailID)
	if idx.current == tailID {
		if len(idx.order) > 0 {
			idx.current = idx.order[len(idx.order)-1]
		} else {
			idx.current = 0
		}
	}
	return nil
}

// DestroyIndex releases the index's own storage — every contained entry
// and the lists they wrap. Per spec §3/§5's resource-lifetime invariant,
// destroying a non-empty index without cascade is a contract violation,
// not a partial release: it is refused outright, the index untouched.
// With cascade set, a non-empty index is released regardless of count.
// Destroying an already-empty index always succeeds, cascade or not.
// Once destroyed, AddEntry, DestroyEntry, EntryAt, MoveToEntry,
// SetCurrentEntry, SetCurrentEntryPos and SwitchEntries refuse with
// errs.NotInitialized; Count, Entries, Current and ApplyFunction do not
// check and see an empty index. DestroyIndex itself is
// idempotent-refusing (a second call on an already-destroyed index also
// refuses).
func (idx *Index) DestroyIndex(cascade bool) error {
	if idx.destroyed {
		return errs.New(errs.NotInitialized, "siglist.DestroyIndex", "index already destroyed")
	}
	if len(idx.order) > 0 && !cascade {
		return errs.New(errs.Domain, "siglist.DestroyIndex", "refusing to destroy a non-empty index without cascade")
	}
	idx.entries = nil
	idx.order = nil
	idx.current = 0
	idx.destroyed = true
	return nil
}

// entryAt returns the entry at 1-based position pos.
func (idx *Index) entryAt(pos int) (*Entry, error) {
	if idx.destroyed {
		return nil, errs.New(errs.NotInitialized, "siglist.entryAt", "index is destroyed")
	}
	if pos < 1 || pos > len(idx.order) {
		return nil, errs.New(errs.Domain, "siglist.entryAt", "position out of range")
	}
	return idx.entries[idx.order[pos-1]], nil
}

// EntryAt returns the entry at 1-based position pos.
func (idx *Index) EntryAt(pos int) (*Entry, error) { return idx.entryAt(pos) }

// Current returns the current entry, or nil if the index is empty.
func (idx *Index) Current() *Entry {
	if idx.current == 0 {
		return nil
	}
	return idx.entries[idx.current]
}

// MoveToEntry sets Current to the entry at 1-based position pos.
func (idx *Index) MoveToEntry(pos int) error {
	e, err := idx.entryAt(pos)
	if err != nil {
		return err
	}
	idx.current = e.ID
	return nil
}

// SetCurrentEntry sets Current directly to e, which must belong to idx.
func (idx *Index) SetCurrentEntry(e *Entry) error {
	if idx.destroyed {
		return errs.New(errs.NotInitialized, "siglist.SetCurrentEntry", "index is destroyed")
	}
	if e == nil || idx.entries[e.ID] != e {
		return errs.New(errs.Domain, "siglist.SetCurrentEntry", "entry does not belong to this index")
	}
	idx.current = e.ID
	return nil
}

// SetCurrentEntryPos is an alias for MoveToEntry, named to mirror the
// original's set_current_entry_pos/set_current_entry pair.
func (idx *Index) SetCurrentEntryPos(pos int) error { return idx.MoveToEntry(pos) }

// SwitchEntries swaps the entries at 1-based positions pos1 and pos2,
// atomically: it exchanges order slots and repairs both Position
// fields, so head/tail tracking (order[0]/order[len-1]) stays correct
// without ever touching a prev/next pointer.
func (idx *Index) SwitchEntries(pos1, pos2 int) error {
	if idx.destroyed {
		return errs.New(errs.NotInitialized, "siglist.SwitchEntries", "index is destroyed")
	}
	if pos1 < 1 || pos1 > len(idx.order) || pos2 < 1 || pos2 > len(idx.order) {
		return errs.New(errs.Domain, "siglist.SwitchEntries", "position out of range")
	}
	idx.order[pos1-1], idx.order[pos2-1] = idx.order[pos2-1], idx.order[pos1-1]
	idx.repairPositions()
	return nil
}

// Entries returns the entries in traversal (position) order. The
// returned slice is owned by the caller; mutating it does not affect
// the index.
func (idx *Index) Entries() []*Entry {
	out := make([]*Entry, len(idx.order))
	for i, eid := range idx.order {
		out[i] = idx.entries[eid]
	}
	return out
}

// ApplyFunction lifts a cplx catalogue call over every sample of every
// list in the index, mutating lists in place. The call (op/mode/params)
// is captured once at the point ApplyFunction is invoked, per the
// "op + params snapshot" fix in spec §9, and is not re-evaluated as the
// traversal proceeds.
func (idx *Index) ApplyFunction(call cplx.Call) error {
	for _, e := range idx.Entries() {
		if err := ApplyListFunction(e.List, call); err != nil {
			return err
		}
	}
	return nil
}

// ApplyListFunction lifts call over every sample of list, mutating it
// in place.
func ApplyListFunction(list *List, call cplx.Call) error {
	n := list.Len()
	for i := 1; i <= n; i++ {
		v, err := list.Get(i)
		if err != nil {
			return err
		}
		result, err := cplx.Apply(call.Op, call.Mode, []complex128{v}, call.Params)
		if err != nil {
			return err
		}
		if err := list.Set(i, result); err != nil {
			return err
		}
	}
	return nil
}
