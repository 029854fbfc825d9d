package mlog

import (
	"bytes"
	"encoding/json"
	"log"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func Test_WriteToLogger(t *testing.T) {
	r := require.New(t)

	b := new(bytes.Buffer)
	logger := zerolog.New(b)
	std := log.New(WriteToLogger(&logger, zerolog.WarnLevel, "std", "data"), "", 0)
	std.Print("hello\n")

	m := make(map[string]any)
	r.NoError(json.Unmarshal(b.Bytes(), &m))
	r.Equal("warn", m["level"])
	r.Equal("std", m["message"])
	r.Equal("hello", m["data"])
}
