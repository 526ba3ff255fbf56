package app

import (
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"exusiai.dev/hystats/internal/app/appcontext"
	"exusiai.dev/hystats/internal/service"
)

func TestNewProvidesInspector(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })
	t.Setenv("HYSTATS_DEFAULT_CATEGORY", "Walls")

	var inspector *service.Inspector
	app := New(appcontext.Declare(appcontext.EnvTest), fx.Populate(&inspector))
	require.NoError(t, app.Err())

	require.NotNil(t, inspector)
	assert.Equal(t, "Walls", inspector.Config.DefaultCategory)
	assert.Equal(t, appcontext.EnvTest, inspector.Config.AppContext.Env)
}
