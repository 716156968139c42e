package service

import (
	"testing"

	"github.com/roshdman/backend/src/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharityList_SeededOnEmptyStore(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := NewCharityService(store)

	charities, err := svc.List(testutil.Context())
	require.NoError(t, err)

	require.Len(t, charities, 2)
	assert.Equal(t, "charity1", charities[0].ID)
	assert.Equal(t, "Mahak", charities[0].Name)
	assert.Equal(t, "charity2", charities[1].ID)
	assert.Equal(t, "Kahrizak", charities[1].Name)
}
