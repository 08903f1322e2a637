package argdef

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serveCmd struct {
	Seed       bool          `help:"seed after downloading"`
	ListenAddr string        `help:"address to listen on" required:"true"`
	DataDir    string        `name:"d" help:"where to put data" usage:"--d DIR"`
	Timeout    time.Duration `help:"give up after this long"`
	Limits     struct {
		MaxBytes Bytes `help:"stop after this much"`
	}
	internal int
	Skipped  []string `name:"-"`
}

func TestStructDefinitions(t *testing.T) {
	defs, err := StructDefinitions(new(serveCmd))
	require.NoError(t, err)
	assert.EqualValues(t, []Definition{
		{Name: "seed", Description: "seed after downloading", Usage: "--seed", Flag: true},
		{Name: "listenAddr", Description: "address to listen on", Usage: "--listenAddr LISTEN_ADDR", Required: true},
		{Name: "d", Description: "where to put data", Usage: "--d DIR"},
		{Name: "timeout", Description: "give up after this long", Usage: "--timeout TIMEOUT"},
		{Name: "maxBytes", Description: "stop after this much", Usage: "--maxBytes MAX_BYTES"},
	}, defs)
}

func TestFill(t *testing.T) {
	defs, err := StructDefinitions(new(serveCmd))
	require.NoError(t, err)
	p, err := New(defs, []string{"--listenAddr", "1.2.3.4:80", "--seed", "--maxBytes", "2GB"})
	require.NoError(t, err)
	cmd := serveCmd{DataDir: "/tmp", Timeout: time.Minute}
	require.NoError(t, p.Fill(&cmd))
	assert.True(t, cmd.Seed)
	assert.EqualValues(t, "1.2.3.4:80", cmd.ListenAddr)
	assert.EqualValues(t, "/tmp", cmd.DataDir)
	assert.EqualValues(t, time.Minute, cmd.Timeout)
	assert.EqualValues(t, 2e9, cmd.Limits.MaxBytes)
}

func TestFillErrors(t *testing.T) {
	defs, err := StructDefinitions(new(serveCmd))
	require.NoError(t, err)
	p, err := New(defs, []string{"--listenAddr", "x", "--timeout", "never"})
	require.NoError(t, err)
	var cmd serveCmd
	err = p.Fill(&cmd)
	var tpe TypeParseError
	require.ErrorAs(t, err, &tpe)
	assert.EqualValues(t, "timeout", tpe.Name)

	var other struct {
		Unknown string
	}
	assert.EqualValues(t, UndefinedArgument{"unknown"}, p.Fill(&other))
}

func TestBadStructs(t *testing.T) {
	_, err := StructDefinitions(serveCmd{})
	assert.Error(t, err)
	_, err = StructDefinitions((*serveCmd)(nil))
	assert.Error(t, err)
	var badType struct {
		Wtf *int
	}
	_, err = StructDefinitions(&badType)
	assert.Contains(t, err.Error(), "*int")
	var badTag struct {
		A string `required:"maybe"`
	}
	_, err = StructDefinitions(&badTag)
	assert.Contains(t, err.Error(), "required")
}

func TestDefaultLongFlagName(t *testing.T) {
	assert.EqualValues(t, "noUpload", fieldFlagName("NoUpload"))
	assert.EqualValues(t, "dht", fieldFlagName("DHT"))
	assert.EqualValues(t, "noIPv6", fieldFlagName("NoIPv6"))
	assert.EqualValues(t, "tcpAddr", fieldFlagName("TCPAddr"))
	assert.EqualValues(t, "addr", fieldFlagName("Addr"))
	assert.EqualValues(t, "v", fieldFlagName("V"))
	assert.EqualValues(t, "a", fieldFlagName("A"))
}
