package changes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerZeroValue(t *testing.T) {
	var tr Tracker
	assert.True(t, tr.IsEmpty())
	assert.Empty(t, tr.Sheets())
	assert.Empty(t, tr.Edits("Batch"))
	assert.Empty(t, tr.Deletes("Batch"))

	_, ok := tr.Pending("Batch", "R1", "ACC")
	assert.False(t, ok)
}

func TestRecordEditOverwrites(t *testing.T) {
	tr := New()
	tr.RecordEdit("Batch", "R1", "ACC", "B")
	tr.RecordEdit("Batch", "R1", "ACC", "A-")
	tr.RecordEdit("Batch", "R1", "LAW", "not a grade")

	assert.False(t, tr.IsEmpty())
	assert.Equal(t, 2, tr.Len())

	v, ok := tr.Pending("Batch", "R1", "ACC")
	assert.True(t, ok)
	assert.Equal(t, "A-", v)

	assert.Equal(t, []Edit{
		{RegistrationNumber: "R1", Subject: "ACC", Value: "A-"},
		{RegistrationNumber: "R1", Subject: "LAW", Value: "not a grade"},
	}, tr.Edits("Batch"))
}

func TestRecordDeleteIsIdempotent(t *testing.T) {
	tr := New()
	tr.RecordDelete("Batch", "R2")
	tr.RecordDelete("Batch", "R1")
	tr.RecordDelete("Batch", "R2")

	assert.Equal(t, []string{"R2", "R1"}, tr.Deletes("Batch"))
	assert.Equal(t, 2, tr.Len())
}

func TestSheetsUnionSorted(t *testing.T) {
	tr := New()
	tr.RecordEdit("Intake B", "R1", "ACC", "A")
	tr.RecordDelete("Intake A", "R9")
	tr.RecordDelete("Intake B", "R2")

	assert.Equal(t, []string{"Intake A", "Intake B"}, tr.Sheets())
}

func TestClear(t *testing.T) {
	tr := New()
	tr.RecordEdit("Batch", "R1", "ACC", "A")
	tr.RecordDelete("Batch", "R2")
	tr.Clear()

	assert.True(t, tr.IsEmpty())
	assert.Empty(t, tr.Sheets())

	// Still usable after Clear.
	tr.RecordDelete("Batch", "R3")
	assert.Equal(t, []string{"R3"}, tr.Deletes("Batch"))
}

func TestDeletesReturnsCopy(t *testing.T) {
	tr := New()
	tr.RecordDelete("Batch", "R1")
	d := tr.Deletes("Batch")
	d[0] = "changed"
	assert.Equal(t, []string{"R1"}, tr.Deletes("Batch"))
}
