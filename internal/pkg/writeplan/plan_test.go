package writeplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_AddIgnoresNil(t *testing.T) {
	p := NewPlan()
	assert.True(t, p.IsEmpty())

	p.Add(nil)
	assert.True(t, p.IsEmpty())

	p.Add(&Op{Kind: OpCreate, Collection: "listings", DocID: "a"})
	assert.False(t, p.IsEmpty())
	require.Len(t, p.Ops(), 1)
}

func TestPlan_PreservesOrder(t *testing.T) {
	p := NewPlan()
	p.Add(&Op{Kind: OpCreate, Collection: "listings", DocID: "a"})
	p.Add(nil)
	p.Add(&Op{Kind: OpUpdate, Collection: "listings", DocID: "b"})
	p.Add(&Op{Kind: OpCreate, Collection: "outbox", DocID: "c"})

	ops := p.Ops()
	require.Len(t, ops, 3)
	assert.Equal(t, "a", ops[0].DocID)
	assert.Equal(t, "b", ops[1].DocID)
	assert.Equal(t, "c", ops[2].DocID)
}
