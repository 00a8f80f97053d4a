package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_PairsUpAndDown(t *testing.T) {
	sub, err := Source()
	require.NoError(t, err)

	ups, err := fs.Glob(sub, "*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, ups)

	for _, up := range ups {
		down := strings.TrimSuffix(up, ".up.sql") + ".down.sql"
		_, err := fs.Stat(sub, down)
		assert.NoError(t, err, "missing %s", down)
	}
}

func TestSource_DeclaresDailyUniqueness(t *testing.T) {
	sub, err := Source()
	require.NoError(t, err)

	body, err := fs.ReadFile(sub, "0001_init.up.sql")
	require.NoError(t, err)

	assert.Contains(t, string(body), "UNIQUE (user_id, vendor_id, redemption_day)")
	assert.Contains(t, string(body), "pg_notify('entitlement_changes'")
}

func TestUp_NilDB(t *testing.T) {
	assert.Error(t, Up(nil))
}
