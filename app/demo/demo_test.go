package demo

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IrineSistiana/dlist/internal/mlog"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func Test_run_default(t *testing.T) {
	r := require.New(t)

	b := new(bytes.Buffer)
	r.NoError(run(context.Background(), defaultConfig(), b, mlog.Nop()))

	want := strings.Join([]string{
		"",
		"Print the whole list forwards",
		"App data 100 and description 'test1'",
		"App data 101 and description 'test2'",
		"App data 102 and description 'test3'",
		"App data 103 and description 'test4'",
		"App data 104 and description 'test5'",
		"",
		"Print the whole list backwards",
		"App data 104 and description 'test5'",
		"App data 103 and description 'test4'",
		"App data 102 and description 'test3'",
		"App data 101 and description 'test2'",
		"App data 100 and description 'test1'",
		"",
	}, "\n")
	r.Equal(want, b.String())
}

func Test_run_remove(t *testing.T) {
	r := require.New(t)

	cfg := defaultConfig()
	cfg.Records = cfg.Records[:4]
	cfg.Remove = []int{0}
	b := new(bytes.Buffer)
	r.NoError(run(context.Background(), cfg, b, nil))

	s := b.String()
	i := strings.LastIndex(s, "Print the whole list forwards")
	r.Positive(i)
	r.Equal("Print the whole list forwards\n"+
		"App data 101 and description 'test2'\n"+
		"App data 102 and description 'test3'\n"+
		"App data 103 and description 'test4'\n", s[i:])
}

func Test_run_metricsEndpoint(t *testing.T) {
	r := require.New(t)

	cfg := defaultConfig()
	cfg.Metrics.Addr = "127.0.0.1:0"
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r.NoError(run(ctx, cfg, new(bytes.Buffer), nil))
}

func Test_demo_metrics(t *testing.T) {
	r := require.New(t)

	d := newDemo(new(bytes.Buffer), nil)
	d.load([]RecordConfig{
		{ID: 1, Index: 0, Mode: modeInsert},
		{ID: 2, Index: 1, Mode: modeEmplace},
		{ID: 3, Index: 5, Mode: modeInsert}, // out of range
	})
	d.remove([]int{9, 0})

	r.Equal(1, d.l.Len())
	v, err := d.l.At(0)
	r.NoError(err)
	r.Equal(2, v.ID)

	r.Equal(1.0, testutil.ToFloat64(d.metrics.ops.WithLabelValues(modeInsert, "ok")))
	r.Equal(1.0, testutil.ToFloat64(d.metrics.ops.WithLabelValues(modeInsert, "err")))
	r.Equal(1.0, testutil.ToFloat64(d.metrics.ops.WithLabelValues(modeEmplace, "ok")))
	r.Equal(1.0, testutil.ToFloat64(d.metrics.ops.WithLabelValues("remove", "ok")))
	r.Equal(1.0, testutil.ToFloat64(d.metrics.ops.WithLabelValues("remove", "err")))
	r.Equal(1.0, testutil.ToFloat64(d.metrics.length))
}

func Test_loadConfig(t *testing.T) {
	r := require.New(t)

	data := `
records:
  - id: 7
    description: seven
    index: 0
  - id: 8
    description: eight
    index: 1
    mode: emplace
remove: [1]
metrics:
  addr: 127.0.0.1:9100
`
	cfg, err := loadConfig([]byte(data))
	r.NoError(err)
	r.Equal([]RecordConfig{
		{ID: 7, Description: "seven", Index: 0, Mode: modeInsert},
		{ID: 8, Description: "eight", Index: 1, Mode: modeEmplace},
	}, cfg.Records)
	r.Equal([]int{1}, cfg.Remove)
	r.Equal("127.0.0.1:9100", cfg.Metrics.Addr)

	_, err = loadConfig([]byte("records:\n  - id: 1\n    mode: push\n"))
	r.Error(err)

	_, err = loadConfig([]byte("unknown_key: 1\n"))
	r.Error(err)
}

func Test_genConfigTemplate(t *testing.T) {
	r := require.New(t)

	p := filepath.Join(t.TempDir(), "config.yaml")
	r.NoError(genConfigTemplate(p))

	cfg, err := loadConfigFile(p)
	r.NoError(err)
	want := defaultConfig()
	want.Remove = []int{0}
	r.Equal(want, cfg)
}
