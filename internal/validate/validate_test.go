package validate

import (
	"strings"
	"testing"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/errors"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitle(t *testing.T) {
	assert.NoError(t, Title("Buy milk"))
	assert.Error(t, Title(""))
	assert.Error(t, Title(strings.Repeat("x", MaxTitleLength+1)))

	err := Title("")
	assert.True(t, errors.IsUserError(err))
}

func TestBody(t *testing.T) {
	assert.NoError(t, Body(""))
	assert.NoError(t, Body("some content"))
	assert.Error(t, Body(strings.Repeat("x", MaxBodyLength+1)))
}

func TestPriority(t *testing.T) {
	p, err := Priority("high")
	require.NoError(t, err)
	assert.Equal(t, model.PriorityHigh, p)

	_, err = Priority("urgent")
	assert.Error(t, err)
	assert.True(t, errors.IsUserError(err))
}

func TestAttendees(t *testing.T) {
	n, err := Attendees("5")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = Attendees("0")
	assert.Error(t, err)
	_, err = Attendees("-2")
	assert.Error(t, err)
	_, err = Attendees("many")
	assert.Error(t, err)
}

func TestTimeOfDay(t *testing.T) {
	assert.NoError(t, TimeOfDay("09:30"))
	assert.NoError(t, TimeOfDay("23:59"))
	assert.Error(t, TimeOfDay("24:00"))
	assert.Error(t, TimeOfDay("9:30"))
	assert.Error(t, TimeOfDay("noon"))
}

func TestSanitizeTitle(t *testing.T) {
	assert.Equal(t, "hello", SanitizeTitle("  hello \n"))
	assert.Equal(t, "ab", SanitizeTitle("a\x00b"))
}
