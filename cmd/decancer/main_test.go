package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/decancer"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DECANCER_CONFIGURATION_PATH", "")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(ioutil.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCureCommand(t *testing.T) {
	out, err := run(t, "", "cure", "vＥⓡ𝔂 𝔽𝕌Ňℕｙ ţ乇𝕏𝓣", "ＨＥＬＬＯ")
	require.NoError(t, err)
	assert.Equal(t, "very funny text\nhello\n", out)
	out, err = run(t, "ＨＥＬＬＯ\r\nwörld\n", "cure", "-o", "retain_capitalization")
	require.NoError(t, err)
	assert.Equal(t, "HELLO\nworld\n", out)
	_, err = run(t, "", "cure", "-o", "retain_everything", "x")
	assert.True(t, errors.Is(err, decancer.ErrInvalidInput))
}

func TestCensorCommand(t *testing.T) {
	out, err := run(t, "", "censor", "-w", "hello", "wow heellllo wow hello wow!")
	require.NoError(t, err)
	assert.Equal(t, "wow ******** wow ***** wow!\n", out)
	out, err = run(t, "word word this is a word\n", "censor", "-w", "word", "-f", "#")
	require.NoError(t, err)
	assert.Equal(t, "#### #### this is a ####\n", out)
	_, err = run(t, "", "censor", "hello")
	assert.Error(t, err)
	_, err = run(t, "", "censor", "-w", "hello", "-f", "**", "hello")
	assert.True(t, errors.Is(err, decancer.ErrInvalidInput))
}

func TestFindCommand(t *testing.T) {
	out, err := run(t, "", "find", "hello", "wow heellllo wow hello wow!")
	require.NoError(t, err)
	assert.Equal(t, "4\t12\theellllo\n17\t22\thello\n", out)
	_, err = run(t, "", "find")
	assert.Error(t, err)
}

func TestConfigurationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decancer.yml")
	conf := "options: [retain_capitalization]\ncensor:\n  words: [hello]\n  filler: \"-\"\nlog:\n  level: debug\n"
	require.NoError(t, ioutil.WriteFile(path, []byte(conf), 0644))
	out, err := run(t, "", "censor", "-c", path, "ＨＥＬＬＯ World")
	require.NoError(t, err)
	assert.Equal(t, "----- World\n", out)
}

func TestParseConfiguration(t *testing.T) {
	config, err := Parse(strings.NewReader("options: [retain_greek]\ncache:\n  size: 10\n  ttl: 5m\n"))
	require.NoError(t, err)
	assert.Equal(t, decancer.Options(0).RetainGreek(), config.Options)
	assert.Equal(t, int64(10), config.Cache.Size)
	assert.Equal(t, 5*time.Minute, config.Cache.TTL)
	assert.Equal(t, "*", config.Censor.Filler)
	assert.Equal(t, "warning", config.Log.Level)
	_, err = Parse(strings.NewReader("unknown: 1\n"))
	assert.Error(t, err)
	_, err = Parse(strings.NewReader("censor:\n  filler: \"\"\n"))
	assert.True(t, errors.Is(err, decancer.ErrInvalidInput))
	_, err = resolveConfiguration(filepath.Join(os.TempDir(), "does-not-exist", "decancer.yml"))
	assert.Error(t, err)
}
