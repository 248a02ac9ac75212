package config

import (
	"testing"

	"github.com/nspcc-dev/txdump/pkg/payload"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile("./testdata/txdump.good.yml")
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.ApplicationConfiguration.LogLevel)
	require.Equal(t, "", cfg.ApplicationConfiguration.LogPath)
	require.Equal(t, OutputJSON, cfg.ApplicationConfiguration.Output)
	require.Equal(t, 2, len(cfg.Schemas))
	require.Equal(t, []payload.Length{payload.Fixed(16), payload.Fixed(2), payload.Dynamic(1)}, cfg.Schemas[0].Lengths)

	tbl, err := cfg.Table()
	require.NoError(t, err)
	require.Equal(t, payload.DefaultTable().Len()+1, tbl.Len())
	s, ok := tbl.Get(payload.TagAccountLink)
	require.True(t, ok)
	require.Equal(t, "Account link v2", s.Name)
}

func TestLoadFileErrors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := LoadFile("./testdata/nonexistent.yml")
		require.Error(t, err)
	})
	t.Run("bad output", func(t *testing.T) {
		_, err := LoadFile("./testdata/txdump.bad_output.yml")
		require.Error(t, err)
	})
	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadFile("./testdata/txdump.unknown_field.yml")
		require.Error(t, err)
	})
	t.Run("bad schema", func(t *testing.T) {
		cfg, err := LoadFile("./testdata/txdump.bad_schema.yml")
		require.NoError(t, err)
		_, err = cfg.Table()
		require.ErrorIs(t, err, payload.ErrInvalidSchema)
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	tbl, err := cfg.Table()
	require.NoError(t, err)
	require.Same(t, payload.DefaultTable(), tbl)
}

func TestSampleConfig(t *testing.T) {
	cfg, err := LoadFile("../../config/txdump.yml")
	require.NoError(t, err)
	require.Equal(t, OutputText, cfg.ApplicationConfiguration.Output)
	tbl, err := cfg.Table()
	require.NoError(t, err)
	_, ok := tbl.Get("5041")
	require.True(t, ok)
}
