package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/rebuild/internal/ui/output"
)

func TestProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.Profile(true))
	assert.Equal(t, termenv.Ascii, output.Profile(false))

	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.ANSI, output.Profile(false))

	p := output.Profile(true)
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf, false)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestNew_Nil(t *testing.T) {
	assert.NotNil(t, output.New(nil, true))
}
