package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

func TestOpenSetGetClose(t *testing.T) {
	gdb, err := Open(sqlite.Open(":memory:"))
	require.NoError(t, err)

	Set(gdb)
	assert.Same(t, gdb, Get())

	require.NoError(t, Close())
	Set(nil)
	assert.NoError(t, Close())
}

func TestFilteredLogger_DropsHousekeeping(t *testing.T) {
	l := &filteredLogger{}
	assert.NotPanics(t, func() {
		l.Printf("%s", "SELECT VERSION()")
		l.Printf("%s", "slow sql >= 200ms")
		l.Printf("%s", "[error] record broken")
	})
}
