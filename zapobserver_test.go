package npmkit_test

import (
	"testing"

	npmkit "github.com/typestrap/npmkit-go"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapObserverLogsEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	memo := npmkit.Memoize(func(name string) (string, error) {
		return "v", nil
	}, npmkit.WithObserver(npmkit.NewZapObserver(zap.New(core))))

	memo("left-pad")
	memo("left-pad")

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "memoize cache event", entries[0].Message)
	assert.Equal(t, "miss", entries[0].ContextMap()["event"])
	assert.Equal(t, "left-pad", entries[0].ContextMap()["key"])

	assert.Equal(t, "hit", entries[1].ContextMap()["event"])
	assert.Equal(t, "left-pad", entries[1].ContextMap()["key"])
}
