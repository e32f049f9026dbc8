package workspace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarat-asymmetrica/dockvedic/internal/model"
	"github.com/sarat-asymmetrica/dockvedic/internal/object"
	"github.com/sarat-asymmetrica/dockvedic/internal/workspace"
)

type recordingObserver struct {
	updates int
}

func (r *recordingObserver) Update(object.Subject)  { r.updates++ }
func (r *recordingObserver) Deleted(object.Subject) {}

func TestGetModelOutOfRangeReturnsModelError(t *testing.T) {
	ws := workspace.New()
	_, err := ws.GetModel(0)
	assert.Error(t, err)
}

func TestAddModelsNotifiesObservers(t *testing.T) {
	ws := workspace.New()
	obs := &recordingObserver{}
	ws.Attach(obs)
	ws.AddModels(&model.Model{Name: "ligand"})
	assert.Equal(t, 1, obs.updates)
	assert.Equal(t, 1, ws.GetNumModels())
}

func TestDetachStopsNotifications(t *testing.T) {
	ws := workspace.New()
	obs := &recordingObserver{}
	ws.Attach(obs)
	ws.Detach(obs)
	ws.AddModels(&model.Model{})
	assert.Equal(t, 0, obs.updates)
}

func TestSetModelReplacesAndNotifies(t *testing.T) {
	ws := workspace.New()
	ws.AddModels(&model.Model{Name: "a"})
	obs := &recordingObserver{}
	ws.Attach(obs)
	require.NoError(t, ws.SetModel(0, &model.Model{Name: "b"}))
	got, err := ws.GetModel(0)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Name)
	assert.Equal(t, 1, obs.updates)
}
