package tracker

import (
	"testing"

	"growthlog/backend/models"

	"github.com/stretchr/testify/assert"
)

func TestStoreAppendInsertsAtHead(t *testing.T) {
	var s Store
	s = s.Append(models.ProgressEntry{Date: "2024-01-02", Focus: "first"})
	s = s.Append(models.ProgressEntry{Date: "2023-12-31", Focus: "second"})

	all := s.All()
	assert.Len(t, all, 2)
	assert.Equal(t, "second", all[0].Focus, "a past date must not reorder the list")
	assert.Equal(t, "first", all[1].Focus)
}

func TestStoreAppendLeavesReceiverUnchanged(t *testing.T) {
	before := Store{}.Append(models.ProgressEntry{Focus: "a"})
	after := before.Append(models.ProgressEntry{Focus: "b"})

	assert.Equal(t, 1, before.Len())
	assert.Equal(t, 2, after.Len())
}

func TestStoreAllReturnsCopy(t *testing.T) {
	s := Store{}.Append(models.ProgressEntry{Focus: "a"})
	all := s.All()
	all[0].Focus = "changed"

	assert.Equal(t, "a", s.All()[0].Focus)
}
