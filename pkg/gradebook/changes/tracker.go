// Package changes tracks uncommitted grade edits and student deletions.
package changes

import "sort"

// Tracker holds pending edits (sheet → registration number → subject → value)
// and pending deletes (sheet → registration numbers). It only grows until Clear.
// The zero value is ready to use.
type Tracker struct {
	edits   map[string]map[string]map[string]string
	deletes map[string][]string
}

// New returns an empty tracker.
func New() *Tracker {
	return &Tracker{}
}

// RecordEdit inserts or overwrites the pending value of one cell.
// The value is stored as given.
func (t *Tracker) RecordEdit(sheet, reg, subject, value string) {
	if t.edits == nil {
		t.edits = make(map[string]map[string]map[string]string)
	}
	bySheet, ok := t.edits[sheet]
	if !ok {
		bySheet = make(map[string]map[string]string)
		t.edits[sheet] = bySheet
	}
	byReg, ok := bySheet[reg]
	if !ok {
		byReg = make(map[string]string)
		bySheet[reg] = byReg
	}
	byReg[subject] = value
}

// RecordDelete queues a registration number for deletion. Repeats are harmless.
func (t *Tracker) RecordDelete(sheet, reg string) {
	if t.deletes == nil {
		t.deletes = make(map[string][]string)
	}
	for _, r := range t.deletes[sheet] {
		if r == reg {
			return
		}
	}
	t.deletes[sheet] = append(t.deletes[sheet], reg)
}

// Clear drops all pending edits and deletes.
func (t *Tracker) Clear() {
	t.edits = nil
	t.deletes = nil
}

// IsEmpty reports whether nothing is pending.
func (t *Tracker) IsEmpty() bool {
	return t.Len() == 0
}

// Len returns the number of pending cell edits plus pending deletes.
func (t *Tracker) Len() int {
	n := 0
	for _, bySheet := range t.edits {
		for _, byReg := range bySheet {
			n += len(byReg)
		}
	}
	for _, regs := range t.deletes {
		n += len(regs)
	}
	return n
}

// Pending returns the pending value for one cell, if any.
func (t *Tracker) Pending(sheet, reg, subject string) (string, bool) {
	v, ok := t.edits[sheet][reg][subject]
	return v, ok
}

// Sheets returns the sorted names of sheets with pending edits or deletes.
func (t *Tracker) Sheets() []string {
	seen := make(map[string]bool)
	for s, bySheet := range t.edits {
		if len(bySheet) > 0 {
			seen[s] = true
		}
	}
	for s, regs := range t.deletes {
		if len(regs) > 0 {
			seen[s] = true
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Edit is one pending cell change.
type Edit struct {
	RegistrationNumber string
	Subject            string
	Value              string
}

// Edits returns the pending edits of sheet ordered by registration number, then subject.
func (t *Tracker) Edits(sheet string) []Edit {
	var out []Edit
	for reg, byReg := range t.edits[sheet] {
		for subject, v := range byReg {
			out = append(out, Edit{RegistrationNumber: reg, Subject: subject, Value: v})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RegistrationNumber != out[j].RegistrationNumber {
			return out[i].RegistrationNumber < out[j].RegistrationNumber
		}
		return out[i].Subject < out[j].Subject
	})
	return out
}

// Deletes returns the pending deletes of sheet in the order they were recorded.
func (t *Tracker) Deletes(sheet string) []string {
	regs := t.deletes[sheet]
	out := make([]string, len(regs))
	copy(out, regs)
	return out
}
