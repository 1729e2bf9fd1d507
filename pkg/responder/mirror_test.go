package responder

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirror_SetSnapshot_ReplacesContents(t *testing.T) {
	m := &mirror{}
	m.upsert(&models.HelpRequest{ID: uuid.New()})

	snapshot := []*models.HelpRequest{
		{ID: uuid.New(), EmergencyType: "Fire"},
		{ID: uuid.New(), EmergencyType: "Flood"},
	}
	m.setSnapshot(snapshot)

	assert.Equal(t, snapshot, m.all())
}

func TestMirror_Upsert_PrependsUnknownID(t *testing.T) {
	m := &mirror{}
	older := &models.HelpRequest{ID: uuid.New()}
	newer := &models.HelpRequest{ID: uuid.New()}

	m.upsert(older)
	m.upsert(newer)

	// Новые заявки встают в начало списка
	assert.Equal(t, []*models.HelpRequest{newer, older}, m.all())
}

func TestMirror_Upsert_ReplacesKnownIDInPlace(t *testing.T) {
	m := &mirror{}
	id := uuid.New()
	first := &models.HelpRequest{ID: uuid.New()}
	second := &models.HelpRequest{ID: id, Status: models.StatusPending}
	third := &models.HelpRequest{ID: uuid.New()}
	m.setSnapshot([]*models.HelpRequest{first, second, third})

	// Повторная доставка newHelpRequest не создаёт дубликата
	updated := &models.HelpRequest{ID: id, Status: models.StatusInProgress}
	m.upsert(updated)

	all := m.all()
	require.Len(t, all, 3)
	assert.Equal(t, []*models.HelpRequest{first, updated, third}, all)
}

func TestMirror_Replace_KnownID(t *testing.T) {
	m := &mirror{}
	id := uuid.New()
	m.setSnapshot([]*models.HelpRequest{{ID: id, Status: models.StatusPending}})

	updated := &models.HelpRequest{ID: id, Status: models.StatusResolved}
	assert.True(t, m.replace(updated))

	got, ok := m.get(id)
	require.True(t, ok)
	assert.Equal(t, models.StatusResolved, got.Status)
}

func TestMirror_Replace_UnknownID_Dropped(t *testing.T) {
	m := &mirror{}
	m.setSnapshot([]*models.HelpRequest{{ID: uuid.New()}})

	// requestUpdated для незнакомой заявки молча отбрасывается
	assert.False(t, m.replace(&models.HelpRequest{ID: uuid.New()}))
	assert.Len(t, m.all(), 1)
}

func TestMirror_Get(t *testing.T) {
	m := &mirror{}
	id := uuid.New()
	m.setSnapshot([]*models.HelpRequest{{ID: id, EmergencyType: "Fire"}})

	got, ok := m.get(id)
	require.True(t, ok)
	assert.Equal(t, "Fire", got.EmergencyType)

	_, ok = m.get(uuid.New())
	assert.False(t, ok)
}

func TestMirror_Filtered_PartitionsByResolved(t *testing.T) {
	m := &mirror{}
	pending := &models.HelpRequest{ID: uuid.New(), Status: models.StatusPending}
	onScene := &models.HelpRequest{ID: uuid.New(), Status: models.StatusOnScene}
	resolved := &models.HelpRequest{ID: uuid.New(), Status: models.StatusResolved}
	m.setSnapshot([]*models.HelpRequest{pending, resolved, onScene})

	assert.Equal(t, []*models.HelpRequest{pending, onScene}, m.filtered(false))
	assert.Equal(t, []*models.HelpRequest{resolved}, m.filtered(true))
}

func TestMirror_All_ReturnsCopy(t *testing.T) {
	m := &mirror{}
	m.setSnapshot([]*models.HelpRequest{{ID: uuid.New()}})

	out := m.all()
	out[0] = nil

	// Мутация копии не трогает зеркало
	got := m.all()
	require.Len(t, got, 1)
	assert.NotNil(t, got[0])
}
