package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderNotes(t *testing.T) {
	assert.Nil(t, orderNotes(""))

	notes := orderNotes("ring the back door")
	require.NotNil(t, notes)
	assert.Equal(t, "ring the back door", *notes)
}
