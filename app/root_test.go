package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_rootFlags(t *testing.T) {
	r := require.New(t)

	fs := RootCmd().PersistentFlags()
	for _, name := range []string{"log-lvl", "gomaxprocs", "pprof"} {
		r.NotNil(fs.Lookup(name), name)
	}
	r.Equal("", fs.Lookup("pprof").DefValue)

	r.NoError(fs.Set("log-lvl", "debug"))
	r.NoError(RootCmd().PersistentPreRunE(RootCmd(), nil))
	r.NoError(fs.Set("log-lvl", "bogus"))
	r.Error(RootCmd().PersistentPreRunE(RootCmd(), nil))
	r.NoError(fs.Set("log-lvl", "info"))
}
